package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"victorine/internal/domain"
)

// consolePrompter implements app.Prompter over the shared console reader.
// The session runner blocks in Ask until the user submits a line.
type consolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *consolePrompter) Shortage(category string, available int) {
	failColor.Fprintf(p.out, "Category %s does not have enough questions. Only %d selected.\n", category, available)
}

func (p *consolePrompter) Ask(number int, q domain.Question) (string, error) {
	fmt.Fprintf(p.out, "\nQuestion %d: %s\n", number, q.Text)
	for i, option := range q.Options {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, option)
	}

	promptColor.Fprint(p.out, "Pick the correct answer (or several, comma-separated): ")
	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *consolePrompter) Feedback(correct bool) {
	if correct {
		okColor.Fprintln(p.out, "Correct!")
	} else {
		failColor.Fprintln(p.out, "Wrong.")
	}
}

func (p *consolePrompter) Summary(score, total int) {
	infoColor.Fprintf(p.out, "\nYour score: %d of %d\n", score, total)
}
