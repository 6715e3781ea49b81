package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats(time.Unix(0, 0))

	s.Update(1, 100, 250*time.Millisecond)
	assert.Equal(t, 1, s.TotalGenerations)
	assert.InDelta(t, 4.0, s.GenerationsPerSecond, 1e-9)
	assert.InDelta(t, 100.0, s.AveragePopulation, 1e-9)
	assert.Equal(t, 100, s.PeakPopulation)

	s.Update(2, 200, 0)
	assert.Equal(t, 2, s.TotalGenerations)
	assert.InDelta(t, 4.0, s.GenerationsPerSecond, 1e-9, "zero duration keeps the last rate")
	assert.InDelta(t, 110.0, s.AveragePopulation, 1e-9)
	assert.Equal(t, 200, s.PeakPopulation)

	s.Update(3, 50, time.Second)
	assert.Equal(t, 200, s.PeakPopulation)
}
