package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/user/o3as_viz_go/internal/o3as"
)

// QuantileMethod selects how quantiles (median, percentile, box-plot quartiles) are estimated.
type QuantileMethod int

const (
	// Linear interpolates between the two closest ranks, h = (n-1)p.
	Linear QuantileMethod = iota
	// Empirical returns the smallest sample whose empirical CDF reaches p (gonum's stat.Empirical).
	Empirical
)

func (m QuantileMethod) String() string {
	if m == Empirical {
		return "empirical"
	}
	return "linear"
}

// ParseQuantileMethod maps "linear" or "empirical" to a QuantileMethod.
func ParseQuantileMethod(name string) (QuantileMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return Linear, nil
	case "empirical":
		return Empirical, nil
	}
	return Linear, fmt.Errorf("unknown quantile method %q", name)
}

// Reducer collapses the filtered values at one axis index to a statistic.
// It returns NaN when the statistic is undefined for the input.
type Reducer func(values []float64) float64

// Reducers maps each computed statistic to its reducer.
func Reducers(method QuantileMethod) map[o3as.StatKind]Reducer {
	return map[o3as.StatKind]Reducer{
		o3as.StatMean:       calculateMean,
		o3as.StatStdMean:    calculateMean,
		o3as.StatMedian:     func(v []float64) float64 { return Quantile(v, 0.5, method) },
		o3as.StatDerivative: calculateStdDev,
		o3as.StatPercentile: func(v []float64) float64 { return Quantile(v, o3as.PercentileRank, method) },
	}
}

func calculateMean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	return stat.Mean(data, nil)
}

// calculateStdDev is the population standard deviation; a single value has a spread of 0.
func calculateStdDev(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	_, std := stat.PopMeanStdDev(data, nil)
	return std
}

// Quantile estimates the p-quantile of data, NaN for empty data.
// data does not need to be sorted.
func Quantile(data []float64, p float64, method QuantileMethod) float64 {
	if len(data) == 0 || p < 0 || p > 1 {
		return math.NaN()
	}
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	return quantileSorted(sorted, p, method)
}

func quantileSorted(sorted []float64, p float64, method QuantileMethod) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if method == Empirical {
		return stat.Quantile(p, stat.Empirical, sorted, nil)
	}
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	hi := math.Ceil(h)
	if lo == hi {
		return sorted[int(lo)]
	}
	return sorted[int(lo)] + (h-lo)*(sorted[int(hi)]-sorted[int(lo)])
}
