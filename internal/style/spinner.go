package style

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

type Spinner interface {
	SetSuffix(suffix string)
	Start()
	Stop()
}

type TerminalSpinner struct {
	spinner *spinner.Spinner
}

func NewTerminalSpinner(cs []string, d time.Duration, options ...spinner.Option) *TerminalSpinner {
	return &TerminalSpinner{
		spinner: spinner.New(cs, d, options...),
	}
}

func (s *TerminalSpinner) SetSuffix(suffix string) {
	s.spinner.Suffix = suffix
}

func (s *TerminalSpinner) Start() {
	s.spinner.Start()
}

func (s *TerminalSpinner) Stop() {
	s.spinner.Stop()
}

// NopSpinner satisfies Spinner without drawing anything.
type NopSpinner struct{}

func (NopSpinner) SetSuffix(string) {}
func (NopSpinner) Start()           {}
func (NopSpinner) Stop()            {}

// NewSpinner returns a terminal spinner on w, or a silent one under test.
func NewSpinner(w io.Writer) Spinner {
	if os.Getenv("GRADEBOOK_TEST") == "true" {
		return NopSpinner{}
	}

	return NewTerminalSpinner(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(w))
}
