package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out), out
}

func TestLineTrims(t *testing.T) {
	p, out := newPrompter("  hello world \r\n")
	answer, err := p.Line("Say: ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", answer)
	assert.Equal(t, "Say: ", out.String())
}

func TestLineWithoutTrailingNewline(t *testing.T) {
	p, _ := newPrompter("last")
	answer, err := p.Line("> ")
	require.NoError(t, err)
	assert.Equal(t, "last", answer)

	_, err = p.Line("> ")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestCountReprompts(t *testing.T) {
	p, out := newPrompter("two\n0\n-3\n2.5\n3\n")
	n, err := p.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, 2, strings.Count(out.String(), "Enter a valid integer."))
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter a positive integer."))
	assert.Equal(t, 5, strings.Count(out.String(), "Enter number of students: "))
}

func TestScoreReprompts(t *testing.T) {
	p, out := newPrompter("abc\n101\n-1\n\n99.5\n")
	score, err := p.Score(1)
	require.NoError(t, err)
	assert.Equal(t, 99.5, score)

	assert.Equal(t, 2, strings.Count(out.String(), "Enter a valid numeric mark."))
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter marks between 0 and 100."))
}

func TestStudents(t *testing.T) {
	p, out := newPrompter("2\n  Priya  \n88\nTom\nx\n45\n")
	scores, err := p.Students()
	require.NoError(t, err)

	assert.Equal(t, []string{"Priya", "Tom"}, scores.Names())
	assert.Equal(t, []float64{88, 45}, scores.Values())
	assert.Contains(t, out.String(), "Student 2 Name: ")
	assert.Contains(t, out.String(), "Student 2 Marks (0-100): ")
}

func TestStudentsInputClosed(t *testing.T) {
	p, _ := newPrompter("2\nAna\n70\n")
	_, err := p.Students()
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestChoice(t *testing.T) {
	p, out := newPrompter("maybe\n Y \n")
	answer, err := p.Choice("Export? (y/n): ", []string{"y", "n"}, "Enter 'y' or 'n'.")
	require.NoError(t, err)
	assert.Equal(t, "y", answer)
	assert.Equal(t, 1, strings.Count(out.String(), "Enter 'y' or 'n'."))
}
