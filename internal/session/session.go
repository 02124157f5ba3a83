// Package session drives the interactive menu loop: it collects marks,
// shows the graded results, optionally exports them and asks what to do
// next.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"

	"github.com/gradebook-cli/gradebook/internal/execcontext"
	"github.com/gradebook-cli/gradebook/internal/grading"
	"github.com/gradebook-cli/gradebook/internal/importer"
	"github.com/gradebook-cli/gradebook/internal/marks"
	"github.com/gradebook-cli/gradebook/internal/prompt"
	"github.com/gradebook-cli/gradebook/internal/report"
	"github.com/gradebook-cli/gradebook/internal/style"
)

// State is a step of the menu loop.
type State int

const (
	StateMenu State = iota
	StateManualEntry
	StateFileImport
	StateDisplay
	StateExportPrompt
	StateContinuation
	StateExit
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateManualEntry:
		return "manual_entry"
	case StateFileImport:
		return "file_import"
	case StateDisplay:
		return "display"
	case StateExportPrompt:
		return "export_prompt"
	case StateContinuation:
		return "continuation"
	case StateExit:
		return "exit"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const goodbye = "Exiting program. Goodbye!"

// analysis is the data of one pass through the loop. It is replaced every
// time the loop returns to the menu.
type analysis struct {
	scores *marks.Scores
	grades *grading.Grades
}

// Option configures a Session.
type Option func(*Session)

// WithSpinnerFunc overrides how file progress spinners are created.
func WithSpinnerFunc(fn func(io.Writer) style.Spinner) Option {
	return func(s *Session) {
		s.newSpinner = fn
	}
}

// WithQuiet suppresses the banner and spinners.
func WithQuiet(quiet bool) Option {
	return func(s *Session) {
		s.quiet = quiet
	}
}

// Session is one interactive run of the grade book.
type Session struct {
	ctx        execcontext.RunContext
	prompt     *prompt.Prompter
	newSpinner func(io.Writer) style.Spinner
	quiet      bool
}

// New creates a Session reading answers from ctx.StdIn.
func New(ctx execcontext.RunContext, opts ...Option) *Session {
	s := &Session{
		ctx:        ctx,
		prompt:     prompt.New(ctx.StdIn, ctx.StdOut),
		newSpinner: style.NewSpinner,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops until the user exits. Closing the input ends the session
// without an error.
func (s *Session) Run() error {
	if !s.quiet {
		s.header()
	}

	state := StateMenu
	current := analysis{}

	for state != StateExit {
		if s.ctx.Cancelled() {
			return s.ctx.Context.Err()
		}

		next, err := s.step(state, &current)
		if errors.Is(err, prompt.ErrInputClosed) {
			log.Debug().Str("state", state.String()).Msg("Input closed, ending session")
			s.ctx.Printf("\n")
			return nil
		}
		if err != nil {
			return err
		}

		log.Debug().
			Str("from", state.String()).
			Str("to", next.String()).
			Msg("Session transition")

		if next == StateMenu {
			current = analysis{}
		}
		state = next
	}

	return nil
}

func (s *Session) step(state State, current *analysis) (State, error) {
	switch state {
	case StateMenu:
		return s.menu()
	case StateManualEntry:
		return s.manualEntry(current)
	case StateFileImport:
		return s.fileImport(current)
	case StateDisplay:
		return s.display(current)
	case StateExportPrompt:
		return s.exportPrompt(current)
	case StateContinuation:
		return s.continuation()
	default:
		return StateExit, fmt.Errorf("unknown session state %s", state)
	}
}

func (s *Session) header() {
	rule := color.New(color.FgCyan)
	title := color.New(color.FgCyan, color.Bold)

	rule.Fprintln(s.ctx, "============================================================")
	title.Fprintln(s.ctx, style.Banner("GradeBook Analyzer CLI"))
	s.ctx.Printf("%s\n", style.Banner("Marks, statistics and letter grades"))
	rule.Fprintln(s.ctx, "============================================================")
}

func (s *Session) menu() (State, error) {
	for {
		s.ctx.Printf("\nMenu:\n1. Enter Marks Manually\n2. Load Marks from File\n3. Exit\n")

		choice, err := s.prompt.Line("Enter choice (1/2/3): ")
		if err != nil {
			return StateExit, err
		}

		switch choice {
		case "1":
			return StateManualEntry, nil
		case "2":
			return StateFileImport, nil
		case "3":
			s.ctx.Printf("%s\n", goodbye)
			return StateExit, nil
		default:
			s.ctx.Printf("Invalid option. Try again.\n")
		}
	}
}

func (s *Session) manualEntry(current *analysis) (State, error) {
	scores, err := s.prompt.Students()
	if err != nil {
		return StateExit, err
	}
	current.scores = scores
	return StateDisplay, nil
}

func (s *Session) fileImport(current *analysis) (State, error) {
	path, err := s.prompt.Line("Enter CSV or XLSX filename (e.g. marks.csv): ")
	if err != nil {
		return StateExit, err
	}

	spin := s.spinner()
	spin.SetSuffix(" Loading marks from " + path)
	spin.Start()
	res, err := importer.ReadScores(path)
	spin.Stop()

	switch {
	case errors.Is(err, importer.ErrNotFound):
		style.Error(s.ctx.StdErr, fmt.Sprintf("File '%s' not found.", path))
	case err != nil:
		style.Error(s.ctx.StdErr, fmt.Sprintf("Error reading file: %v", err))
	}
	for _, row := range res.Skipped {
		style.Warning(s.ctx.StdErr, row.String())
	}

	if res.Scores.Len() == 0 {
		s.ctx.Printf("No marks loaded. Returning to menu.\n")
		return StateMenu, nil
	}

	current.scores = res.Scores
	return StateDisplay, nil
}

func (s *Session) display(current *analysis) (State, error) {
	current.grades = grading.Assign(current.scores)
	report.DisplayResults(s.ctx, current.scores, current.grades)
	report.SummaryAndMetrics(s.ctx, current.scores, current.grades)
	return StateExportPrompt, nil
}

func (s *Session) exportPrompt(current *analysis) (State, error) {
	answer, err := s.prompt.Choice("\nDo you want to export the result? (y/n): ", []string{"y", "n"}, "Enter 'y' or 'n'.")
	if err != nil {
		return StateExit, err
	}
	if answer == "n" {
		return StateContinuation, nil
	}

	path, err := s.prompt.Line("Enter output filename (e.g. grade_report.csv): ")
	if err != nil {
		return StateExit, err
	}

	spin := s.spinner()
	spin.SetSuffix(" Writing " + path)
	spin.Start()
	err = importer.ExportReport(path, current.scores, current.grades)
	spin.Stop()

	if err != nil {
		style.Error(s.ctx.StdErr, fmt.Sprintf("Failed to export: %v", err))
	} else {
		style.Success(s.ctx, fmt.Sprintf("Grades exported to '%s'", style.FormatFilePath(path)))
	}

	return StateContinuation, nil
}

func (s *Session) continuation() (State, error) {
	answer, err := s.prompt.Choice(
		"\nDo another analysis? (y to continue / m for menu / e to exit): ",
		[]string{"y", "m", "e"},
		"Enter y, m, or e.",
	)
	if err != nil {
		return StateExit, err
	}

	if answer == "e" {
		s.ctx.Printf("%s\n", goodbye)
		return StateExit, nil
	}
	return StateMenu, nil
}

func (s *Session) spinner() style.Spinner {
	if s.quiet {
		return style.NopSpinner{}
	}
	return s.newSpinner(s.ctx.StdOut)
}
