// Package prompt reads validated answers from an interactive terminal,
// asking again until the answer is usable.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gradebook-cli/gradebook/internal/marks"
)

// ErrInputClosed is returned once the input stream has no more lines.
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Line prints prompt and returns the trimmed answer.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// Choice asks until the lowercased answer is one of options.
func (p *Prompter) Choice(prompt string, options []string, retry string) (string, error) {
	for {
		answer, err := p.Line(prompt)
		if err != nil {
			return "", err
		}
		answer = strings.ToLower(answer)
		for _, opt := range options {
			if answer == opt {
				return answer, nil
			}
		}
		fmt.Fprintln(p.out, retry)
	}
}

// Count asks for a positive number of students.
func (p *Prompter) Count() (int, error) {
	for {
		answer, err := p.Line("Enter number of students: ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(p.out, "Enter a valid integer.")
			continue
		}
		if n <= 0 {
			fmt.Fprintln(p.out, "Please enter a positive integer.")
			continue
		}
		return n, nil
	}
}

// Score asks for a mark in [0,100] for the i-th student.
func (p *Prompter) Score(i int) (float64, error) {
	for {
		answer, err := p.Line(fmt.Sprintf("Student %d Marks (0-100): ", i))
		if err != nil {
			return 0, err
		}
		score, err := marks.ParseBoundedScore(answer)
		switch {
		case errors.Is(err, marks.ErrOutOfRange):
			fmt.Fprintln(p.out, "Please enter marks between 0 and 100.")
		case err != nil:
			fmt.Fprintln(p.out, "Enter a valid numeric mark.")
		default:
			return score, nil
		}
	}
}

// Students asks for a count and then each student's name and mark.
func (p *Prompter) Students() (*marks.Scores, error) {
	n, err := p.Count()
	if err != nil {
		return nil, err
	}

	scores := marks.New()
	for i := 1; i <= n; i++ {
		name, err := p.Line(fmt.Sprintf("Student %d Name: ", i))
		if err != nil {
			return nil, err
		}
		score, err := p.Score(i)
		if err != nil {
			return nil, err
		}
		scores.Set(name, score)
	}

	return scores, nil
}
