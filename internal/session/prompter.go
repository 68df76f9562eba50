package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the user one question and waits for a single line.
// Ask returns the answer trimmed of surrounding whitespace, or io.EOF once
// input is exhausted.
type Prompter interface {
	Ask(prompt string) (string, error)
}

// LinePrompter reads answers line by line from an io.Reader and writes
// prompts to an io.Writer. It works with a terminal or with piped input.
type LinePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

var _ Prompter = (*LinePrompter)(nil)

// NewLinePrompter returns a LinePrompter reading from in and prompting on out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Ask writes prompt and returns the next trimmed input line.
func (p *LinePrompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}
