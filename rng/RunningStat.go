package rng

import "gonum.org/v1/gonum/stat"

// RunningStat records a stream of samples and reports their mean, variance,
// and standard deviation via gonum/stat, used by the experiment harness's
// return statistics (mirroring rrlib.h's RESULTS.Reward accumulator).
type RunningStat struct {
	samples []float64
}

// NewRunningStat returns an empty RunningStat.
func NewRunningStat() *RunningStat {
	return &RunningStat{samples: make([]float64, 0, 16)}
}

// Add records a new sample.
func (r *RunningStat) Add(x float64) {
	r.samples = append(r.samples, x)
}

// Count returns the number of samples recorded so far.
func (r *RunningStat) Count() int {
	return len(r.samples)
}

// Mean returns the sample mean, or 0 if no samples have been recorded.
func (r *RunningStat) Mean() float64 {
	if len(r.samples) == 0 {
		return 0
	}
	return stat.Mean(r.samples, nil)
}

// Variance returns the sample variance, or 0 if fewer than two samples have
// been recorded.
func (r *RunningStat) Variance() float64 {
	if len(r.samples) < 2 {
		return 0
	}
	return stat.Variance(r.samples, nil)
}

// StdDev returns the sample standard deviation.
func (r *RunningStat) StdDev() float64 {
	if len(r.samples) < 2 {
		return 0
	}
	return stat.StdDev(r.samples, nil)
}
