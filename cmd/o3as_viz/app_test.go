package main

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/o3as_viz_go/internal/config"
	"github.com/user/o3as_viz_go/internal/o3as"
	"github.com/user/o3as_viz_go/internal/series"
)

const payload = `[
  {"model": "m1", "plotstyle": {"color": "red", "linestyle": "solid"}, "x": [2000, 2001, 2002], "y": [300, null, 310]},
  {"model": "m2", "plotstyle": {"color": "navy", "linestyle": "dashed"}, "x": ["2000", "2001"], "y": [290, 295]}
]`

const selection = `{
  "modelGroups": {
    "1": {
      "name": "G",
      "isVisible": true,
      "visibleSV": {"mean": true},
      "models": {
        "m1": {"isVisible": true, "mean": true},
        "m2": {"isVisible": false, "mean": true}
      }
    }
  }
}`

func newTestApp(t *testing.T) *App {
	v, err := config.New("")
	require.NoError(t, err)
	v.Set(config.KeyYearStart, 2000)
	v.Set(config.KeyYearEnd, 2002)
	cfg, err := config.Load(v)
	require.NoError(t, err)
	return NewApp(cfg)
}

func TestAppSeriesFlow(t *testing.T) {
	app := newTestApp(t)

	_, err := app.GenerateSeries("tco3_zm", selection)
	assert.Error(t, err, "no payload loaded yet")

	warnings, err := app.LoadPayload("tco3_zm", payload)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	bundle, err := app.GenerateSeries("tco3_zm", selection)
	require.NoError(t, err)
	require.Equal(t, 2, bundle.Len())
	assert.Equal(t, "m1", bundle.Data[0].Name)
	assert.Equal(t, "mean(G)", bundle.Data[1].Name)
	assert.Equal(t, []string{"#ff0000", "#000000"}, bundle.Styling.Colors)

	mean := bundle.Data[1].Points
	// a null year of m1 leaves m2 as the only contributor
	assert.Equal(t, o3as.Some(295), mean[0].Y)
	assert.Equal(t, o3as.Some(295), mean[1].Y)
	assert.Equal(t, o3as.Some(310), mean[2].Y)

	opts, err := app.GetOptions("tco3_zm", bundle.Styling, "OCTS Plot")
	require.NoError(t, err)
	assert.Equal(t, []int{2000, 2001, 2002}, opts.XAxis.Categories)
	assert.Equal(t, bundle.Styling.Colors, opts.Colors)
}

func TestAppRejectsUnknownPlot(t *testing.T) {
	app := newTestApp(t)
	_, err := app.LoadPayload("tco3_xyz", payload)
	assert.ErrorIs(t, err, o3as.ErrUnknownPlotKind)
	_, err = app.GetOptions("", series.Styling{}, "t")
	assert.ErrorIs(t, err, o3as.ErrUnknownPlotKind)
}

func TestAppFindLatitudeBand(t *testing.T) {
	app := newTestApp(t)
	band, err := app.FindLatitudeBand(-90, 90, false)
	require.NoError(t, err)
	assert.Equal(t, "Global (90S-90N)", band.Description)

	_, err = app.FindLatitudeBand(-12, 7, false)
	assert.Error(t, err)
}

func TestAppConcurrentAccess(t *testing.T) {
	app := newTestApp(t)
	_, err := app.LoadPayload("tco3_zm", payload)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := app.GenerateSeries("tco3_zm", selection)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := app.LoadPayload("tco3_zm", payload)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestAppExportReport(t *testing.T) {
	app := newTestApp(t)
	_, err := app.LoadPayload("tco3_zm", payload)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, app.exportReport(o3as.TCO3Zm, selection, "OCTS Plot", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
