package series_test

import (
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/o3as_viz_go/internal/o3as"
	"github.com/user/o3as_viz_go/internal/series"
)

func TestCombineKeepsAlignmentAndInputs(t *testing.T) {
	a := series.NewBundle()
	a.Append(series.Series{Name: "m1"}, "#ff0000", 2, 0)
	b := series.NewBundle()
	b.Append(series.Series{Name: "mean(G)"}, "#000000", 1, 0)
	b.Append(series.Series{Name: "median(G)"}, "#1e90ff", 1, 3)

	combined, err := series.Combine(a, b)
	require.NoError(t, err)
	require.NoError(t, combined.Verify())

	assert.Equal(t, 3, combined.Len())
	assert.Equal(t, []string{"#ff0000", "#000000", "#1e90ff"}, combined.Styling.Colors)
	assert.Equal(t, []int{2, 1, 1}, combined.Styling.Width)
	assert.Equal(t, []int{0, 0, 3}, combined.Styling.DashArray)

	combined.Styling.Colors[0] = "#ffffff"
	assert.Equal(t, "#ff0000", a.Styling.Colors[0])
	assert.Equal(t, 1, a.Len())
}

func TestCombineRejectsMisalignedInput(t *testing.T) {
	broken := series.NewBundle()
	broken.Data = append(broken.Data, series.Series{Name: "orphan"})

	_, err := series.Combine(series.NewBundle(), broken)
	assert.ErrorIs(t, err, series.ErrMisaligned)
}

func TestStylingClone(t *testing.T) {
	s := series.Styling{Colors: []string{"#000000"}, Width: []int{1}, DashArray: []int{0}}
	c := s.Clone()
	c.Colors[0] = "#ffffff"
	c.Width[0] = 5
	assert.Equal(t, "#000000", s.Colors[0])
	assert.Equal(t, 1, s.Width[0])
}

func TestPointJSON(t *testing.T) {
	box := [5]o3as.Value{o3as.Some(1), o3as.Some(2), o3as.Some(3), o3as.Some(4), o3as.Null}
	s := series.Series{Name: "x", Type: series.Line, Points: []series.Point{
		{Year: 1960, Y: o3as.Some(300.5)},
		{Year: 1961, Y: o3as.Null},
		{Region: "Global", Y: o3as.Some(2050)},
		{Region: "Tropics", Box: &box},
	}}

	encoded, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "x",
		"type": "line",
		"data": [
			[1960, 300.5],
			[1961, null],
			{"x": "Global", "y": 2050},
			{"x": "Tropics", "y": [1, 2, 3, 4, null]}
		]
	}`, string(encoded))
}
