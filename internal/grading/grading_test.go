package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradebook-cli/gradebook/internal/marks"
)

func TestForScoreBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  Grade
	}{
		{100, GradeA},
		{90, GradeA},
		{89.99, GradeB},
		{80, GradeB},
		{79.99, GradeC},
		{70, GradeC},
		{69.99, GradeD},
		{60, GradeD},
		{59.99, GradeF},
		{0, GradeF},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ForScore(tt.score), "score %.2f", tt.score)
	}
}

func TestAssignKeepsKeySetAndOrder(t *testing.T) {
	s := marks.New()
	s.Set("Riya", 95)
	s.Set("Omar", 61)
	s.Set("Lena", 12)

	g := Assign(s)
	require.Equal(t, s.Len(), g.Len())
	assert.Equal(t, s.Names(), g.Names())

	grade, ok := g.Get("Omar")
	require.True(t, ok)
	assert.Equal(t, GradeD, grade)

	_, ok = g.Get("Nobody")
	assert.False(t, ok)
}

func TestCountDistribution(t *testing.T) {
	s := marks.New()
	s.Set("a", 91)
	s.Set("b", 99)
	s.Set("c", 72)
	s.Set("d", 10)

	dist := CountDistribution(Assign(s))
	assert.Equal(t, Distribution{GradeA: 2, GradeC: 1, GradeF: 1}, dist)
	assert.Equal(t, s.Len(), dist.Total())

	_, seen := dist[GradeB]
	assert.False(t, seen, "unseen letters must be absent")
	assert.Equal(t, "{A: 2, C: 1, F: 1}", dist.String())
}

func TestCountDistributionEmpty(t *testing.T) {
	assert.Empty(t, CountDistribution(Assign(marks.New())))
	assert.Equal(t, "{}", CountDistribution(nil).String())
}

func TestPassFail(t *testing.T) {
	s := marks.New()
	s.Set("edge", 40)
	s.Set("below", 39.99)
	s.Set("top", 100)
	s.Set("zero", 0)

	passed, failed := PassFail(s)
	assert.Equal(t, []string{"edge", "top"}, passed)
	assert.Equal(t, []string{"below", "zero"}, failed)
	assert.Len(t, append(passed, failed...), s.Len())

	seen := map[string]int{}
	for _, name := range append(passed, failed...) {
		seen[name]++
	}
	for _, name := range s.Names() {
		assert.Equal(t, 1, seen[name], name)
	}
}

func TestPassFailEmpty(t *testing.T) {
	passed, failed := PassFail(marks.New())
	assert.Empty(t, passed)
	assert.Empty(t, failed)
}
