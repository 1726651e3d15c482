// Package statistics summarizes generator output for the stats command:
// moment accumulation over scalar draws plus a bucketed chi-square
// uniformity check.
package statistics

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Sample accumulates scalar draws for summary statistics.
type Sample struct {
	N    int
	Sum  float64
	Sum2 float64 // Sum of squares for variance calculation
	Min  float64
	Max  float64

	Values []float64 // Stored for median/percentile calculation
}

// Add incorporates one draw.
func (s *Sample) Add(v float64) {
	if s.N == 0 || v < s.Min {
		s.Min = v
	}
	if s.N == 0 || v > s.Max {
		s.Max = v
	}
	s.N++
	s.Sum += v
	s.Sum2 += v * v
	s.Values = append(s.Values, v)
}

// Mean returns the arithmetic mean of all draws.
func (s *Sample) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance of all draws.
func (s *Sample) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.N)*mean*mean) / float64(s.N-1)
}

// StdDev returns the sample standard deviation.
func (s *Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Sample) StdError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.N))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Sample) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median draw.
func (s *Sample) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Buckets histograms draws from a known interval for a uniformity check.
type Buckets struct {
	lo, hi float64
	Counts []int
	total  int
}

// NewBuckets creates n equal-width buckets over [lo, hi).
func NewBuckets(lo, hi float64, n int) (*Buckets, error) {
	if n <= 0 {
		return nil, fmt.Errorf("statistics: bucket count must be positive, got %d", n)
	}
	if hi <= lo {
		return nil, fmt.Errorf("statistics: bucket interval [%v, %v) is empty", lo, hi)
	}
	return &Buckets{lo: lo, hi: hi, Counts: make([]int, n)}, nil
}

// Add places a draw into its bucket. Draws outside [lo, hi) clamp into the
// edge buckets so a stray rounding artifact doesn't panic a report.
func (b *Buckets) Add(v float64) {
	idx := int((v - b.lo) / (b.hi - b.lo) * float64(len(b.Counts)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(b.Counts) {
		idx = len(b.Counts) - 1
	}
	b.Counts[idx]++
	b.total++
}

// ChiSquare returns the chi-square statistic against the uniform
// expectation. For k buckets the statistic has k-1 degrees of freedom;
// values far above k suggest non-uniform output.
func (b *Buckets) ChiSquare() float64 {
	if b.total == 0 {
		return 0
	}
	expected := float64(b.total) / float64(len(b.Counts))
	var chi2 float64
	for _, c := range b.Counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	return chi2
}

// Report renders a fixed-width histogram with the chi-square summary.
func (b *Buckets) Report() string {
	var sb strings.Builder
	width := b.hi - b.lo
	for i, c := range b.Counts {
		lo := b.lo + width*float64(i)/float64(len(b.Counts))
		hi := b.lo + width*float64(i+1)/float64(len(b.Counts))
		fmt.Fprintf(&sb, "[%8.4f, %8.4f)  %d\n", lo, hi, c)
	}
	fmt.Fprintf(&sb, "chi-square: %.2f (%d buckets, %d draws)\n", b.ChiSquare(), len(b.Counts), b.total)
	return sb.String()
}
