package root

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/o3as_viz_go/internal/config"
)

const zmPayload = `[
  {"model": "m1", "plotstyle": {"color": "red", "linestyle": "solid"}, "x": [1960, 1961], "y": [300, 302]},
  {"model": "m2", "plotstyle": {"color": "blue", "linestyle": "dotted"}, "x": [1960, 1961], "y": [310, null]}
]`

const returnPayload = `[
  {"model": "m1", "plotstyle": {"color": "red"}, "x": ["Global", "Tropics"], "y": [2050, 2040]},
  {"model": "m2", "plotstyle": {"color": "blue"}, "x": ["Global"], "y": [2060]}
]`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	config.SetDefaults(viper.GetViper())

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenderJSON(t *testing.T) {
	data := writeTemp(t, "zm.json", zmPayload)
	out, err := run(t, "render", "--data", data, "--title", "My plot")
	require.NoError(t, err)

	var decoded struct {
		Series []struct {
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"series"`
		Options struct {
			Colors []string `json:"colors"`
			Title  struct {
				Text string `json:"text"`
			} `json:"title"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	names := make([]string, len(decoded.Series))
	for i, s := range decoded.Series {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"m1", "m2", "mean(All models)", "median(All models)"}, names)
	assert.Len(t, decoded.Options.Colors, 4)
	assert.Equal(t, "My plot", decoded.Options.Title.Text)
}

func TestRenderWithSelection(t *testing.T) {
	data := writeTemp(t, "return.json", returnPayload)
	selection := writeTemp(t, "selection.yaml", `
groups:
  - name: G
    isVisible: true
    visibleSV: {median: true}
    models:
      - {name: m1, isVisible: true, median: true}
      - {name: m2, isVisible: false, median: true}
`)
	out, err := run(t, "render", "--plot", "tco3_return", "--data", data, "--selection", selection)
	require.NoError(t, err)
	assert.Contains(t, out, `"boxPlot"`)
	assert.Contains(t, out, `"median(G)"`)
	assert.Contains(t, out, `"Return/Recovery"`)
}

func TestRenderFilesAndFormats(t *testing.T) {
	data := writeTemp(t, "zm.json", zmPayload)
	dir := t.TempDir()

	for _, format := range []string{"csv", "png", "html", "pdf"} {
		out := filepath.Join(dir, "plot."+format)
		_, err := run(t, "render", "--data", data, "--format", format, "--out", out)
		require.NoError(t, err, format)
		info, err := os.Stat(out)
		require.NoError(t, err, format)
		assert.Positive(t, info.Size(), format)
	}

	_, err := run(t, "render", "--data", data, "--format", "svg")
	assert.ErrorContains(t, err, "invalid format")

	_, err = run(t, "render", "--data", data, "--format", "pdf")
	assert.ErrorContains(t, err, "needs --out")
}

func TestRenderRequiresData(t *testing.T) {
	_, err := run(t, "render")
	assert.Error(t, err)
}

func TestOptionsCommand(t *testing.T) {
	out, err := run(t, "options", "--plot", "tco3_return")
	require.NoError(t, err)
	assert.Contains(t, out, `"tco3_return"`)
	assert.Contains(t, out, `"#8def4e"`)
}

func TestBandsCommand(t *testing.T) {
	out, err := run(t, "bands")
	require.NoError(t, err)
	assert.Contains(t, out, "Tropics (20S-20N)")

	out, err = run(t, "bands", "--min", "-20", "--max", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "Tropics (20S-20N)")
	assert.NotContains(t, out, "Global")

	_, err = run(t, "bands", "--min", "-5", "--max", "5")
	assert.Error(t, err)
}
