// Package stats reduces sequences of per-frame durations to the summary
// metrics the benchmark reports.
package stats

import (
	"math"
	"sort"
)

// Frame-budget thresholds in milliseconds.
const (
	Budget60FPS = 16.67
	Budget30FPS = 33.33
)

// Metrics summarizes one simulation run. All durations are milliseconds.
type Metrics struct {
	Avg    float64
	Min    float64
	Max    float64
	P50    float64
	P95    float64
	P99    float64
	StdDev float64
	// Percent60 and Percent30 are the share of frames within the 60 fps and
	// 30 fps budgets, in percent.
	Percent60 float64
	Percent30 float64
	// Jank sums a running counter of consecutive over-budget frames: a
	// streak of length k contributes 1+2+...+k, penalizing sustained jank
	// super-linearly.
	Jank uint32
}

// Aggregate reduces an ordered sequence of frame durations. An empty input
// yields the zero Metrics; no field is ever NaN.
func Aggregate(samples []float64) Metrics {
	if len(samples) == 0 {
		return Metrics{}
	}

	n := float64(len(samples))
	sum := 0.0
	min, max := samples[0], samples[0]
	for _, v := range samples {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	avg := sum / n

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	variance := 0.0
	for _, v := range samples {
		d := v - avg
		variance += d * d
	}
	variance /= n

	within60, within30 := 0, 0
	for _, v := range samples {
		if v <= Budget60FPS {
			within60++
		}
		if v <= Budget30FPS {
			within30++
		}
	}

	var jank, streak uint32
	for _, v := range samples {
		if v > Budget30FPS {
			streak++
			jank += streak
		} else {
			streak = 0
		}
	}

	return Metrics{
		Avg:       avg,
		Min:       min,
		Max:       max,
		P50:       sorted[percentileIndex(len(sorted), 0.50)],
		P95:       sorted[percentileIndex(len(sorted), 0.95)],
		P99:       sorted[percentileIndex(len(sorted), 0.99)],
		StdDev:    math.Sqrt(variance),
		Percent60: float64(within60) / n * 100.0,
		Percent30: float64(within30) / n * 100.0,
		Jank:      jank,
	}
}

// percentileIndex keeps the historical floor(len*q) indexing so results stay
// comparable with the other renditions of this harness. It is not clamped;
// q must stay below 1.
func percentileIndex(n int, q float64) int {
	return int(float64(n) * q)
}

// Average reduces repeated runs of one configuration to a single row. Max
// takes the true maximum across runs, Jank the integer mean; every other
// metric is an arithmetic mean.
func Average(runs []Metrics) Metrics {
	if len(runs) == 0 {
		return Metrics{}
	}

	var out Metrics
	var jank uint64
	for _, m := range runs {
		out.Avg += m.Avg
		out.Min += m.Min
		out.P50 += m.P50
		out.P95 += m.P95
		out.P99 += m.P99
		out.StdDev += m.StdDev
		out.Percent60 += m.Percent60
		out.Percent30 += m.Percent30
		if m.Max > out.Max {
			out.Max = m.Max
		}
		jank += uint64(m.Jank)
	}

	n := float64(len(runs))
	out.Avg /= n
	out.Min /= n
	out.P50 /= n
	out.P95 /= n
	out.P99 /= n
	out.StdDev /= n
	out.Percent60 /= n
	out.Percent30 /= n
	out.Jank = uint32(jank / uint64(len(runs)))
	return out
}
