package analysis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/o3as_viz_go/internal/analysis"
	"github.com/user/o3as_viz_go/internal/o3as"
	"github.com/user/o3as_viz_go/internal/parser"
)

func model(name string, visible bool, include ...o3as.StatKind) parser.ModelSelection {
	m := parser.ModelSelection{Name: name, IsVisible: visible, Include: map[o3as.StatKind]bool{}}
	for _, kind := range include {
		m.Include[kind] = true
	}
	return m
}

func yearLookup(axis o3as.YearAxis, data map[string][]o3as.Value) *parser.Lookup {
	lookup := parser.NewLookup(o3as.TCO3Zm, axis)
	for name, years := range data {
		lookup.Models[name] = &parser.ModelEntry{Years: years}
		lookup.Order = append(lookup.Order, name)
	}
	return lookup
}

func TestFilterRow(t *testing.T) {
	row := []o3as.Value{o3as.Some(10), o3as.Null, o3as.Some(20), o3as.Some(30)}
	models := []parser.ModelSelection{
		model("a", true, o3as.StatMean),
		model("b", true, o3as.StatMean),
		model("c", true),
		model("d", true, o3as.StatMean),
	}

	filtered := analysis.FilterRow(row, models, o3as.StatMean)
	assert.Equal(t, []float64{10, 30}, filtered)
	assert.Equal(t, 20.0, analysis.Reducers(analysis.Linear)[o3as.StatMean](filtered))
}

func TestYearMatrixKeepsNullsAndModelOrder(t *testing.T) {
	axis := o3as.YearAxis{Start: 2000, End: 2002}
	lookup := yearLookup(axis, map[string][]o3as.Value{
		"a": {o3as.Some(1), o3as.Null, o3as.Some(3)},
		"b": {o3as.Some(4), o3as.Some(5), o3as.Null},
	})

	matrix := analysis.YearMatrix{Axis: axis}.BuildMatrix([]string{"b", "a", "missing"}, lookup)

	assert.Equal(t, analysis.Matrix{
		{o3as.Some(4), o3as.Some(1), o3as.Null},
		{o3as.Some(5), o3as.Null, o3as.Null},
		{o3as.Null, o3as.Some(3), o3as.Null},
	}, matrix)
}

func TestRegionMatrix(t *testing.T) {
	lookup := parser.NewLookup(o3as.TCO3Return, o3as.DefaultYearAxis)
	lookup.Models["a"] = &parser.ModelEntry{Regions: map[string]o3as.Value{"Tropics": o3as.Some(2041)}}

	builder := analysis.RegionMatrix{Regions: []string{"Global", "Tropics"}}
	assert.Equal(t, 2, builder.AxisLen())
	assert.Equal(t, analysis.Matrix{{o3as.Null}, {o3as.Some(2041)}}, builder.BuildMatrix([]string{"a"}, lookup))
}

func TestCalculateSvForModels(t *testing.T) {
	axis := o3as.YearAxis{Start: 2000, End: 2002}
	lookup := yearLookup(axis, map[string][]o3as.Value{
		"a": {o3as.Some(47), o3as.Some(10), o3as.Null},
		"b": {o3as.Some(53), o3as.Some(20), o3as.Null},
		"c": {o3as.Some(1000), o3as.Some(30), o3as.Null},
	})
	group := parser.Group{
		ID:   "g",
		Name: "G",
		Models: []parser.ModelSelection{
			model("a", true, o3as.StatMean, o3as.StatDerivative, o3as.StatMedian),
			model("b", false, o3as.StatMean, o3as.StatDerivative, o3as.StatMedian),
			model("c", true, o3as.StatMedian),
		},
	}

	stats := analysis.CalculateSvForModels(group, lookup, analysis.YearMatrix{Axis: axis}, analysis.Linear)
	assert.Equal(t, "G", stats.GroupName)

	mean, ok := stats.Get(o3as.StatMean)
	require.True(t, ok)
	assert.Equal(t, []o3as.Value{o3as.Some(50), o3as.Some(15), o3as.Null}, mean)

	median, _ := stats.Get(o3as.StatMedian)
	assert.Equal(t, []o3as.Value{o3as.Some(53), o3as.Some(20), o3as.Null}, median)

	std, _ := stats.Get(o3as.StatDerivative)
	assert.Equal(t, o3as.Some(3), std[0])
	assert.Equal(t, o3as.Some(5), std[1])
	assert.True(t, std[2].IsNull())

	plus, _ := stats.Get(o3as.StatMeanPlus)
	minus, _ := stats.Get(o3as.StatMeanMinus)
	assert.Equal(t, o3as.Some(53), plus[0])
	assert.Equal(t, o3as.Some(47), minus[0])
	assert.True(t, plus[2].Valid)
	assert.True(t, math.IsNaN(plus[2].V))

	_, ok = stats.Get(o3as.StatStdMean)
	assert.False(t, ok)

	for _, kind := range o3as.StatDisplayOrder {
		values, ok := stats.Get(kind)
		require.True(t, ok, kind)
		assert.Len(t, values, axis.Len())
	}
}

func TestStdBandUsesDerivativeSubset(t *testing.T) {
	axis := o3as.YearAxis{Start: 2000, End: 2000}
	lookup := yearLookup(axis, map[string][]o3as.Value{
		"a": {o3as.Some(10)},
		"b": {o3as.Some(20)},
	})
	group := parser.Group{Models: []parser.ModelSelection{
		model("a", true, o3as.StatMean),
		model("b", true, o3as.StatDerivative),
	}}

	stats := analysis.CalculateSvForModels(group, lookup, analysis.YearMatrix{Axis: axis}, analysis.Linear)

	mean, _ := stats.Get(o3as.StatMean)
	plus, _ := stats.Get(o3as.StatMeanPlus)
	assert.Equal(t, o3as.Some(10), mean[0])
	// centre is b alone (20) and a single value has zero spread
	assert.Equal(t, o3as.Some(20), plus[0])
}

func TestQuantile(t *testing.T) {
	data := []float64{40, 10, 30, 20}

	assert.Equal(t, 25.0, analysis.Quantile(data, 0.5, analysis.Linear))
	assert.Equal(t, 20.0, analysis.Quantile(data, 0.5, analysis.Empirical))
	assert.InDelta(t, 37.0, analysis.Quantile(data, 0.9, analysis.Linear), 1e-9)
	assert.True(t, math.IsNaN(analysis.Quantile(nil, 0.5, analysis.Linear)))
	assert.Equal(t, []float64{40, 10, 30, 20}, data, "input must not be reordered")

	method, err := analysis.ParseQuantileMethod("Empirical")
	require.NoError(t, err)
	assert.Equal(t, analysis.Empirical, method)
	_, err = analysis.ParseQuantileMethod("tukey")
	assert.Error(t, err)
}

func TestBoxPlotValues(t *testing.T) {
	lookup := parser.NewLookup(o3as.TCO3Return, o3as.DefaultYearAxis)
	selection := &parser.Selection{Groups: []parser.Group{
		{IsVisible: true, Models: []parser.ModelSelection{
			model("m1", true), model("m2", true), model("hidden", false),
		}},
		{IsVisible: true, Models: []parser.ModelSelection{
			model("m3", true), model("m4", true), model("m5", true),
		}},
		{IsVisible: false, Models: []parser.ModelSelection{model("m6", true)}},
	}}
	for name, year := range map[string]float64{"m1": 50, "m2": 10, "m3": 40, "m4": 30, "m5": 20, "hidden": 1, "m6": 1} {
		lookup.Models[name] = &parser.ModelEntry{Regions: map[string]o3as.Value{"Global": o3as.Some(year)}}
	}

	for _, method := range []analysis.QuantileMethod{analysis.Linear, analysis.Empirical} {
		box := analysis.BoxPlotValues(lookup, selection, []string{"Global", "Tropics"}, method)

		assert.Equal(t, [5]o3as.Value{
			o3as.Some(10), o3as.Some(20), o3as.Some(30), o3as.Some(40), o3as.Some(50),
		}, box["Global"].Values(), method.String())
		assert.True(t, box["Tropics"].IsEmpty())
	}
}
