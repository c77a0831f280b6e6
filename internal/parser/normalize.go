package parser

import (
	"fmt"

	"github.com/user/o3as_viz_go/internal/o3as"
)

// NormalizeArray densifies sparse year data onto axis: one pass over the axis
// with a cursor into the sparse input, emitting the next y value whenever the
// next x equals the current axis year and Null otherwise.
//
// xs must be strictly ascending and within the axis; anything else misaligns
// the output. PreTransform checks this before calling.
//
//	axis 1960..1967, x = [1960 1963 1965 1966], y = [0 1 2 3]
//	-> [0 null null 1 null 2 3 null]
func NormalizeArray(axis o3as.YearAxis, xs []int, ys []o3as.Value) []o3as.Value {
	result := make([]o3as.Value, 0, axis.Len())
	cursor := 0
	for year := axis.Start; year <= axis.End; year++ {
		if cursor < len(xs) && cursor < len(ys) && xs[cursor] == year {
			result = append(result, ys[cursor])
			cursor++
		} else {
			result = append(result, o3as.Null)
		}
	}
	return result
}

// placeByYear is the fallback for input that violates NormalizeArray's
// precondition: every pair is written at its own axis offset, later
// duplicates win, years outside the axis are dropped.
func placeByYear(axis o3as.YearAxis, xs []int, ys []o3as.Value) []o3as.Value {
	result := make([]o3as.Value, axis.Len())
	for i, year := range xs {
		if idx, ok := axis.Index(year); ok {
			result[idx] = ys[i]
		}
	}
	return result
}

// checkYears reports why xs cannot be densified with the single-pass cursor,
// or "" when it can.
func checkYears(axis o3as.YearAxis, xs []int) string {
	for i, year := range xs {
		if _, ok := axis.Index(year); !ok {
			return fmt.Sprintf("year %d outside axis %d..%d", year, axis.Start, axis.End)
		}
		if i > 0 && year <= xs[i-1] {
			if year == xs[i-1] {
				return fmt.Sprintf("duplicate year %d", year)
			}
			return fmt.Sprintf("years not ascending at %d", year)
		}
	}
	return ""
}

// PreTransform builds the per-model lookup for one API response. It runs
// once per fetched payload and never fails on malformed data: problems are
// recorded in Lookup.Warnings and the affected values are placed best-effort.
func PreTransform(kind o3as.PlotKind, axis o3as.YearAxis, raw []RawModel) (*Lookup, error) {
	if err := axis.Validate(); err != nil {
		return nil, err
	}
	switch kind {
	case o3as.TCO3Zm, o3as.TCO3Return:
	default:
		return nil, fmt.Errorf("cannot normalize data: %w: %v", o3as.ErrUnknownPlotKind, kind)
	}

	lookup := NewLookup(kind, axis)
	for _, datum := range raw {
		n := len(datum.X)
		if len(datum.Y) != n {
			lookup.warnf("model %s: %d x values but %d y values, extra values ignored", datum.Model, len(datum.X), len(datum.Y))
			n = min(n, len(datum.Y))
		}

		entry := &ModelEntry{PlotStyle: datum.PlotStyle}
		switch kind {
		case o3as.TCO3Zm:
			entry.Years = normalizeYears(lookup, datum, n)
		case o3as.TCO3Return:
			entry.Regions = make(map[string]o3as.Value, n)
			for i := 0; i < n; i++ {
				entry.Regions[string(datum.X[i])] = datum.Y[i]
			}
		}

		if _, exists := lookup.Models[datum.Model]; exists {
			lookup.warnf("model %s: listed more than once, keeping the last entry", datum.Model)
		} else {
			lookup.Order = append(lookup.Order, datum.Model)
		}
		lookup.Models[datum.Model] = entry
	}
	return lookup, nil
}

func normalizeYears(lookup *Lookup, datum RawModel, n int) []o3as.Value {
	xs := make([]int, 0, n)
	ys := make([]o3as.Value, 0, n)
	for i := 0; i < n; i++ {
		year, ok := datum.X[i].Year()
		if !ok {
			lookup.warnf("model %s: x value %q is not a year, skipped", datum.Model, datum.X[i])
			continue
		}
		xs = append(xs, year)
		ys = append(ys, datum.Y[i])
	}

	if problem := checkYears(lookup.Axis, xs); problem != "" {
		lookup.warnf("model %s: %s, placing values by year", datum.Model, problem)
		return placeByYear(lookup.Axis, xs, ys)
	}
	return NormalizeArray(lookup.Axis, xs, ys)
}
