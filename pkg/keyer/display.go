package keyer

import (
	"golang.org/x/term"
	"io"
	"strings"
)

// Display shows the keyed marks and the decoded text.
type Display interface {
	Print(string)
	// Erase removes the given number of characters before the cursor.
	Erase(n int)
}

func NewConsole(output io.Writer) *Console {
	return &Console{Output: output}
}

// Console is a Display which writes directly into a terminal.
type Console struct {
	Output io.Writer
}

func (this *Console) Print(s string) {
	_, _ = io.WriteString(this.Output, s)
}

func (this *Console) Erase(n int) {
	if n <= 0 {
		return
	}
	_, _ = io.WriteString(this.Output, strings.Repeat("\b \b", n))
}

// IsTerminal reports whether erasing characters will have a visible effect.
func (this *Console) IsTerminal() bool {
	if f, ok := this.Output.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
