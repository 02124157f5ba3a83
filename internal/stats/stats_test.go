package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradebook-cli/gradebook/internal/marks"
)

func scoresOf(values ...float64) *marks.Scores {
	s := marks.New()
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, v := range values {
		s.Set(names[i], v)
	}
	return s
}

func TestEmptyScoresAreZero(t *testing.T) {
	for _, s := range []*marks.Scores{marks.New(), nil} {
		assert.Zero(t, Average(s))
		assert.Zero(t, Median(s))
		assert.Zero(t, Max(s))
		assert.Zero(t, Min(s))
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"single", []float64{42}, 42},
		{"three", []float64{70, 80, 90}, 80},
		{"fractional", []float64{50.5, 60.25}, 55.375},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Average(scoresOf(tt.values...)), 1e-9)
		})
	}
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 80.0, Median(scoresOf(70, 80, 90)))
	assert.Equal(t, 75.0, Median(scoresOf(70, 80)))
	assert.Equal(t, 80.0, Median(scoresOf(90, 70, 80)))
	assert.Equal(t, 65.0, Median(scoresOf(100, 10, 60, 70)))
}

func TestMedianDoesNotReorderScores(t *testing.T) {
	s := scoresOf(90, 10, 50)
	_ = Median(s)
	assert.Equal(t, []float64{90, 10, 50}, s.Values())
}

func TestMaxMin(t *testing.T) {
	s := scoresOf(55, 99.5, 0, 73)
	assert.Equal(t, 99.5, Max(s))
	assert.Equal(t, 0.0, Min(s))

	one := scoresOf(61)
	assert.Equal(t, 61.0, Max(one))
	assert.Equal(t, 61.0, Min(one))
}
