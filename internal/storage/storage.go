package storage

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrInvalidSample indicates the provided sample violates validation rules.
	ErrInvalidSample = errors.New("sample must have a positive round, non-negative count and non-negative duration")
)

// Sample is one timed benchmark round.
type Sample struct {
	Round    int
	Count    int
	Duration time.Duration
	Value    string
}

// Stats aggregates the recorded samples.
type Stats struct {
	Rounds int
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	Total  time.Duration
}

// Storage records benchmark samples.
type Storage interface {
	AddSample(sample Sample) error
	Samples() []Sample
	Stats() Stats
}

// MemoryStorage keeps samples in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu      sync.RWMutex
	samples []Sample
}

// NewMemoryStorage returns an empty store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// AddSample validates and appends a sample.
func (s *MemoryStorage) AddSample(sample Sample) error {
	if sample.Round < 1 || sample.Count < 0 || sample.Duration < 0 {
		return ErrInvalidSample
	}

	s.mu.Lock()
	s.samples = append(s.samples, sample)
	s.mu.Unlock()

	return nil
}

// Samples returns a defensive copy of the recorded samples in insertion order.
func (s *MemoryStorage) Samples() []Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

// Stats summarises the recorded durations. It returns the zero value when no
// samples exist.
func (s *MemoryStorage) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.samples) == 0 {
		return Stats{}
	}

	stats := Stats{
		Rounds: len(s.samples),
		Min:    s.samples[0].Duration,
		Max:    s.samples[0].Duration,
	}
	for _, sample := range s.samples {
		stats.Total += sample.Duration
		stats.Min = min(stats.Min, sample.Duration)
		stats.Max = max(stats.Max, sample.Duration)
	}
	stats.Mean = stats.Total / time.Duration(stats.Rounds)

	return stats
}
