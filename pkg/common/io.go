package common

import (
	"errors"
	"fmt"
	"github.com/chzyer/readline"
	log "github.com/echocat/slf4g"
	"io"
	"os"
	"strconv"
	"strings"
)

var ErrNoChoices = errors.New("nothing to choose from")

// RequestChoiceFromTerminal lists the given choices on stderr and asks the
// user to pick one of them by its number. Returns the index of the chosen
// entry.
func RequestChoiceFromTerminal(promptName string, choices []string) (int, error) {
	return requestChoice(promptName, choices, os.Stdin, os.Stderr)
}

func requestChoice(promptName string, choices []string, in io.ReadCloser, out io.Writer) (int, error) {
	if len(choices) == 0 {
		return -1, fmt.Errorf("could not request %s: %w", promptName, ErrNoChoices)
	}
	if len(choices) == 1 {
		return 0, nil
	}

	l, err := readline.NewEx(&readline.Config{
		Stdin:  in,
		Stdout: out,
	})
	if err != nil {
		return -1, fmt.Errorf("could not read from terminal for prompt %q: %w", promptName, err)
	}
	defer func() {
		_ = l.Close()
	}()

	_, _ = fmt.Fprintf(out, "Available %ss:\n", promptName)
	for i, choice := range choices {
		_, _ = fmt.Fprintf(out, "  %d: %s\n", i, choice)
	}

	l.SetPrompt(fmt.Sprintf("Select %s [0-%d]: ", promptName, len(choices)-1))
	l.ResetHistory()
	for {
		line, err := l.Readline()
		if err != nil {
			return -1, fmt.Errorf("could not read from terminal for prompt %q: %w", promptName, err)
		}
		i, err := parseChoice(line, len(choices))
		if err != nil {
			log.WithError(err).
				Error()
			continue
		}
		return i, nil
	}
}

func parseChoice(plain string, numberOfChoices int) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(plain))
	if err != nil {
		return -1, fmt.Errorf("illegal-choice: %s", plain)
	}
	if i < 0 || i >= numberOfChoices {
		return -1, fmt.Errorf("illegal-choice: %d is not between 0 and %d", i, numberOfChoices-1)
	}
	return i, nil
}
