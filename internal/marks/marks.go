// Package marks holds the score mapping shared by every stage of an
// analysis: student names mapped to numeric marks in entry order.
package marks

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// MinScore and MaxScore bound a manually entered mark.
	MinScore = 0.0
	MaxScore = 100.0
)

var (
	ErrNotNumeric = errors.New("score is not a number")
	ErrOutOfRange = errors.New("score out of range")
)

// Scores maps student names to marks. Iteration follows the order in which
// names were first added; setting an existing name replaces its mark but
// keeps its position.
type Scores struct {
	names  []string
	values map[string]float64
}

// New returns an empty score mapping.
func New() *Scores {
	return &Scores{values: make(map[string]float64)}
}

// Set records a mark for name.
func (s *Scores) Set(name string, score float64) {
	if s.values == nil {
		s.values = make(map[string]float64)
	}
	if _, exists := s.values[name]; !exists {
		s.names = append(s.names, name)
	}
	s.values[name] = score
}

// Get returns the mark for name.
func (s *Scores) Get(name string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	v, ok := s.values[name]
	return v, ok
}

// Len returns the number of students.
func (s *Scores) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Names returns a copy of the student names in entry order.
func (s *Scores) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Values returns the marks in entry order.
func (s *Scores) Values() []float64 {
	if s == nil {
		return nil
	}
	out := make([]float64, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.values[name])
	}
	return out
}

// Each calls fn for every entry in order.
func (s *Scores) Each(fn func(name string, score float64)) {
	if s == nil {
		return
	}
	for _, name := range s.names {
		fn(name, s.values[name])
	}
}

// ParseScore parses a mark without range checking, as used for imported
// rows.
func ParseScore(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty value", ErrNotNumeric)
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, trimmed)
	}
	return v, nil
}

// ParseBoundedScore parses a mark and requires it to lie in
// [MinScore, MaxScore].
func ParseBoundedScore(raw string) (float64, error) {
	v, err := ParseScore(raw)
	if err != nil {
		return 0, err
	}
	if v < MinScore || v > MaxScore {
		return 0, fmt.Errorf("%w: %.2f", ErrOutOfRange, v)
	}
	return v, nil
}
