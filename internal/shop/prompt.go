package shop

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads operator input line by line. Validation failures
// re-prompt; the only error it ever returns is input exhaustion, which
// unwinds the current flow.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter returns a prompter reading from in and writing prompts to
// out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Line prints the prompt and returns the next input line.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

// NonEmpty re-prompts until a non-empty line is entered.
func (p *Prompter) NonEmpty(prompt, emptyMsg string) (string, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return "", err
		}
		if line == "" {
			fmt.Fprintln(p.out, emptyMsg)
			continue
		}
		return line, nil
	}
}

// Int re-prompts until a line parses as an integer.
func (p *Prompter) Int(prompt string) (int, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter a number.")
			continue
		}
		return n, nil
	}
}

// YesNo re-prompts until one of yes/y/no/n is entered, case-insensitive.
func (p *Prompter) YesNo(prompt string) (bool, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Please enter 'yes' or 'no'.")
	}
}
