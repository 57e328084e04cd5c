package game

// maxMessages bounds the retained history.
const maxMessages = 50

// MessageLog collects player-facing text. It implements action.MessageSink.
type MessageLog struct {
	lines []string
}

func (l *MessageLog) Add(text string) {
	l.lines = append(l.lines, text)
	if len(l.lines) > maxMessages {
		l.lines = l.lines[len(l.lines)-maxMessages:]
	}
}

// Lines returns the retained messages, oldest first.
func (l *MessageLog) Lines() []string { return l.lines }
