package ecs

import "testing"

// stub component used only in tests
type testComp struct{ val int }

func (testComp) Type() ComponentType { return 1 }
func (c testComp) Clone() Component { return c }

type otherComp struct{}

func (otherComp) Type() ComponentType { return 2 }
func (c otherComp) Clone() Component { return c }

// sliceComp carries a slice so Clone has something to deep-copy.
type sliceComp struct{ vals []int }

func (sliceComp) Type() ComponentType { return 3 }
func (c sliceComp) Clone() Component {
	return sliceComp{vals: append([]int(nil), c.vals...)}
}

func TestCreateEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	if id == NilEntity {
		t.Fatal("expected non-nil entity ID")
	}
	if !w.Alive(id) {
		t.Fatal("expected entity to be alive after creation")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 42})

	c := w.Get(id, ComponentType(1))
	if c == nil {
		t.Fatal("expected component, got nil")
	}
	tc, ok := c.(testComp)
	if !ok {
		t.Fatal("wrong component type returned")
	}
	if tc.val != 42 {
		t.Fatalf("expected val=42, got %d", tc.val)
	}
}

func TestDestroyEntityRemovesComponents(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 7})
	w.DestroyEntity(id)

	if w.Alive(id) {
		t.Fatal("entity should not be alive after DestroyEntity")
	}
	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be gone after DestroyEntity")
	}
}

func TestRemoveNonexistentIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Remove(id, ComponentType(99))
	if w.Has(id, ComponentType(99)) {
		t.Fatal("Has should stay false after removing a missing component")
	}
}

func TestHasComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()

	if w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return false before Add")
	}
	w.Add(id, testComp{val: 1})
	if !w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return true after Add")
	}
	w.Remove(id, ComponentType(1))
	if w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return false after Remove")
	}
}

func TestDestroyedIDsAreNotReused(t *testing.T) {
	w := NewWorld()
	first := w.CreateEntity()
	w.DestroyEntity(first)
	w.DestroyEntity(first)
	second := w.CreateEntity()
	if second == first {
		t.Fatalf("CreateEntity reused destroyed ID %v", first)
	}
	if w.Alive(first) {
		t.Fatal("a destroyed ID must stay dead")
	}
}

func TestCloneCopiesEveryComponent(t *testing.T) {
	w := NewWorld()
	src := w.CreateEntity()
	w.Add(src, testComp{val: 9})
	w.Add(src, otherComp{})

	dst := w.Clone(src)
	if dst == NilEntity || dst == src {
		t.Fatalf("Clone returned %v; want a fresh ID", dst)
	}
	if got := w.Get(dst, ComponentType(1)).(testComp).val; got != 9 {
		t.Errorf("cloned val = %d; want 9", got)
	}
	if !w.Has(dst, ComponentType(2)) {
		t.Error("clone is missing otherComp")
	}
}

func TestCloneDoesNotAliasSlices(t *testing.T) {
	w := NewWorld()
	src := w.CreateEntity()
	w.Add(src, sliceComp{vals: []int{1, 2, 3}})

	dst := w.Clone(src)
	sc := w.Get(dst, ComponentType(3)).(sliceComp)
	sc.vals[0] = 100
	w.Add(dst, sc)

	if orig := w.Get(src, ComponentType(3)).(sliceComp); orig.vals[0] != 1 {
		t.Fatalf("template slice mutated through clone: %v", orig.vals)
	}
}

func TestCloneOfDeadEntityReturnsNil(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.DestroyEntity(id)
	if got := w.Clone(id); got != NilEntity {
		t.Fatalf("Clone(dead) = %v; want NilEntity", got)
	}
}
