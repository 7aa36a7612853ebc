package battle

import "strings"

// Log is the append-only narration of a battle.
type Log struct {
	lines []string
}

func (l *Log) Append(line string) {
	l.lines = append(l.lines, line)
}

// Render joins all lines with newlines for display.
func (l *Log) Render() string {
	return strings.Join(l.lines, "\n")
}

func (l *Log) Len() int {
	return len(l.lines)
}

// Lines returns a copy of every line in append order.
func (l *Log) Lines() []string {
	return append([]string(nil), l.lines...)
}

// Tail returns at most the last n lines.
func (l *Log) Tail(n int) []string {
	if n <= 0 {
		return nil
	}
	if n > len(l.lines) {
		n = len(l.lines)
	}
	return append([]string(nil), l.lines[len(l.lines)-n:]...)
}
