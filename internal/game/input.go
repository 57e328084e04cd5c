package game

import "github.com/gdamore/tcell/v2"

// Command is a player request decoded from a key press.
type Command uint8

const (
	CmdNone Command = iota
	CmdMoveN
	CmdMoveS
	CmdMoveE
	CmdMoveW
	CmdMoveNE
	CmdMoveNW
	CmdMoveSE
	CmdMoveSW
	CmdWait
	CmdPickup
	CmdDrop
	CmdUse
	CmdQuit
)

// keyToCommand maps a tcell key event to a command. For CmdUse the second
// value is the inventory slot.
func keyToCommand(ev *tcell.EventKey) (Command, int) {
	switch ev.Key() {
	case tcell.KeyUp:
		return CmdMoveN, 0
	case tcell.KeyDown:
		return CmdMoveS, 0
	case tcell.KeyRight:
		return CmdMoveE, 0
	case tcell.KeyLeft:
		return CmdMoveW, 0
	case tcell.KeyEscape:
		return CmdQuit, 0
	case tcell.KeyRune:
	default:
		return CmdNone, 0
	}

	r := ev.Rune()
	if r >= '1' && r <= '9' {
		return CmdUse, int(r - '1')
	}
	switch r {
	case 'k', 'K':
		return CmdMoveN, 0
	case 'j', 'J':
		return CmdMoveS, 0
	case 'l', 'L':
		return CmdMoveE, 0
	case 'h', 'H':
		return CmdMoveW, 0
	case 'y', 'Y':
		return CmdMoveNW, 0
	case 'u', 'U':
		return CmdMoveNE, 0
	case 'b', 'B':
		return CmdMoveSW, 0
	case 'n', 'N':
		return CmdMoveSE, 0
	case '.', '5':
		return CmdWait, 0
	case ',', 'g':
		return CmdPickup, 0
	case 'd':
		return CmdDrop, 0
	case 'q', 'Q':
		return CmdQuit, 0
	}
	return CmdNone, 0
}

// commandToDelta converts a movement command to (dx, dy).
func commandToDelta(c Command) (int, int) {
	switch c {
	case CmdMoveN:
		return 0, -1
	case CmdMoveS:
		return 0, 1
	case CmdMoveE:
		return 1, 0
	case CmdMoveW:
		return -1, 0
	case CmdMoveNE:
		return 1, -1
	case CmdMoveNW:
		return -1, -1
	case CmdMoveSE:
		return 1, 1
	case CmdMoveSW:
		return -1, 1
	}
	return 0, 0
}
