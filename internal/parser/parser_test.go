package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/o3as_viz_go/internal/o3as"
	"github.com/user/o3as_viz_go/internal/parser"
)

var testAxis = o3as.YearAxis{Start: 1960, End: 1967}

func values(vs ...float64) []o3as.Value {
	out := make([]o3as.Value, len(vs))
	for i, v := range vs {
		out[i] = o3as.Some(v)
	}
	return out
}

func TestNormalizeArray(t *testing.T) {
	got := parser.NormalizeArray(testAxis, []int{1960, 1963, 1965, 1966}, values(0, 1, 2, 3))

	assert.Equal(t, []o3as.Value{
		o3as.Some(0), o3as.Null, o3as.Null, o3as.Some(1),
		o3as.Null, o3as.Some(2), o3as.Some(3), o3as.Null,
	}, got)
}

func TestNormalizeArrayRoundTrip(t *testing.T) {
	xs := []int{1961, 1962, 1964, 1967}
	ys := values(280.5, 281, 290.25, 300)

	dense := parser.NormalizeArray(testAxis, xs, ys)
	require.Len(t, dense, testAxis.Len())

	present := map[int]bool{}
	for i, year := range xs {
		idx, ok := testAxis.Index(year)
		require.True(t, ok)
		assert.Equal(t, ys[i], dense[idx])
		present[idx] = true
	}
	for idx, v := range dense {
		if !present[idx] {
			assert.True(t, v.IsNull(), "offset %d should be null", idx)
		}
	}
}

func TestParsePayload(t *testing.T) {
	payload := `[
		{"model": "CCMI-1_ACCESS_refC2", "plotstyle": {"color": "red", "linestyle": "solid"},
		 "x": ["1960", "1963", "1965", "1966"], "y": [0, 1, 2, 3]},
		{"model": "CCMI-1_CCSRNIES_refC2", "plotstyle": {"color": "Blue", "linestyle": "dashed"},
		 "x": [1961, 1962], "y": [5, null]}
	]`

	raw, err := parser.ParsePayload(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, raw, 2)
	assert.Equal(t, parser.Key("1963"), raw[0].X[1])
	assert.Equal(t, parser.Key("1962"), raw[1].X[1])
	assert.True(t, raw[1].Y[1].IsNull())

	lookup, err := parser.PreTransform(o3as.TCO3Zm, testAxis, raw)
	require.NoError(t, err)
	assert.Empty(t, lookup.Warnings)
	assert.Equal(t, []string{"CCMI-1_ACCESS_refC2", "CCMI-1_CCSRNIES_refC2"}, lookup.Order)

	first, ok := lookup.Model("CCMI-1_ACCESS_refC2")
	require.True(t, ok)
	assert.Equal(t, "red", first.PlotStyle.Color)
	assert.Equal(t, o3as.Some(1), first.Year(3))
	assert.True(t, first.Year(1).IsNull())
	assert.True(t, first.Year(99).IsNull())
}

func TestParsePayloadRejectsMissingModel(t *testing.T) {
	_, err := parser.ParsePayload(strings.NewReader(`[{"x": [], "y": []}]`))
	assert.ErrorContains(t, err, "no model name")

	_, err = parser.ParsePayload(strings.NewReader(`{`))
	assert.ErrorContains(t, err, "failed to decode API payload")
}

func TestPreTransformUnsortedYearsPlacedByYear(t *testing.T) {
	raw := []parser.RawModel{{
		Model: "m",
		X:     []parser.Key{"1965", "1960", "1960", "2010"},
		Y:     values(2, 0, 1, 9),
	}}

	lookup, err := parser.PreTransform(o3as.TCO3Zm, testAxis, raw)
	require.NoError(t, err)
	require.Len(t, lookup.Warnings, 1)
	assert.Contains(t, lookup.Warnings[0], "not ascending")

	entry, _ := lookup.Model("m")
	assert.Equal(t, o3as.Some(1), entry.Year(0))
	assert.Equal(t, o3as.Some(2), entry.Year(5))
	assert.Len(t, entry.Years, testAxis.Len())
}

func TestPreTransformLengthMismatchAndBadKeys(t *testing.T) {
	raw := []parser.RawModel{{
		Model: "m",
		X:     []parser.Key{"1960", "abc", "1962"},
		Y:     values(1, 2),
	}}

	lookup, err := parser.PreTransform(o3as.TCO3Zm, testAxis, raw)
	require.NoError(t, err)
	assert.Len(t, lookup.Warnings, 2)

	entry, _ := lookup.Model("m")
	assert.Equal(t, o3as.Some(1), entry.Year(0))
	assert.True(t, entry.Year(2).IsNull())
}

func TestPreTransformRegions(t *testing.T) {
	raw := []parser.RawModel{{
		Model: "m",
		X:     []parser.Key{"Antarctic(Oct)", "Tropics"},
		Y:     values(2064, 2041),
	}}

	lookup, err := parser.PreTransform(o3as.TCO3Return, testAxis, raw)
	require.NoError(t, err)

	entry, _ := lookup.Model("m")
	assert.Equal(t, o3as.Some(2064), entry.Region("Antarctic(Oct)"))
	assert.True(t, entry.Region("Global").IsNull())
	assert.Nil(t, entry.Years)
}

func TestPreTransformUnknownKind(t *testing.T) {
	_, err := parser.PreTransform(o3as.PlotKind(42), testAxis, nil)
	assert.ErrorIs(t, err, o3as.ErrUnknownPlotKind)
}

func TestParseSelectionModelGroupsKeepsOrder(t *testing.T) {
	doc := `{
  "modelGroups": {
    "7": {
      "name": "refC2",
      "isVisible": true,
      "visibleSV": {"mean": true, "derivative": false},
      "models": {
        "zeta": {"isVisible": true, "mean": true, "derivative": true},
        "alpha": {"isVisible": false, "mean": false, "median": true}
      }
    },
    "2": {"name": "second", "isVisible": false, "visibleSV": {}, "models": {}}
  }
}`

	sel, err := parser.ParseSelection(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, sel.Groups, 2)

	group := sel.Groups[0]
	assert.Equal(t, "7", group.ID)
	assert.Equal(t, "refC2", group.Name)
	assert.True(t, group.VisibleSV[o3as.StatMean])
	assert.False(t, group.VisibleSV[o3as.StatDerivative])
	assert.Equal(t, []string{"zeta", "alpha"}, group.ModelNames())

	zeta := group.Models[0]
	assert.True(t, zeta.IsVisible)
	assert.True(t, zeta.IncludedIn(o3as.StatMean))
	assert.True(t, zeta.IncludedIn(o3as.StatStdMean))
	assert.False(t, group.Models[1].IncludedIn(o3as.StatStdMean))
	assert.True(t, group.Models[1].IncludedIn(o3as.StatMedian))

	assert.Equal(t, "2", sel.Groups[1].ID)
}

func TestParseSelectionGroupsSequence(t *testing.T) {
	doc := `
groups:
  - name: A
    isVisible: true
    visibleSV: {mean: true}
    models:
      - {name: m1, isVisible: true, mean: true}
      - {name: m2, isVisible: true, mean: false}
`
	sel, err := parser.ParseSelectionBytes([]byte(doc))
	require.NoError(t, err)
	require.Len(t, sel.Groups, 1)
	assert.Equal(t, "0", sel.Groups[0].ID)
	assert.Equal(t, []string{"m1", "m2"}, sel.Groups[0].ModelNames())
}

func TestParseSelectionErrors(t *testing.T) {
	_, err := parser.ParseSelectionBytes([]byte(`groups: {a: 1}`))
	assert.ErrorContains(t, err, "groups must be a sequence")

	_, err = parser.ParseSelectionBytes([]byte(`groups: [{models: [{isVisible: true}]}]`))
	assert.ErrorContains(t, err, "model without name")

	sel, err := parser.ParseSelectionBytes(nil)
	require.NoError(t, err)
	assert.Empty(t, sel.Groups)
}
