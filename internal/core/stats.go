package core

import "time"

// Stats tracks simulation throughput and population over a run.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	StartTime            time.Time
}

// NewStats starts tracking at the given time.
func NewStats(start time.Time) *Stats {
	return &Stats{StartTime: start}
}

// Update records one generation that took duration to produce.
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
	s.PeakPopulation = max(s.PeakPopulation, population)

	// exponential moving average
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}
