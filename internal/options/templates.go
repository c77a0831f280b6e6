package options

import (
	"fmt"

	"github.com/user/o3as_viz_go/internal/o3as"
)

func ptr[T any](v T) *T {
	return &v
}

func defaultTitle(text string) *Title {
	return &Title{
		Text:     text,
		Align:    "center",
		Floating: false,
		Style: TitleStyle{
			FontSize:   "30px",
			FontWeight: "bold",
			Color:      "#4350af",
		},
	}
}

// defaultTCO3Zm is the template of the time series plot. Colors and the
// stroke arrays are filled per call. Never modify it: Template hands out clones.
var defaultTCO3Zm = Options{
	XAxis: &XAxis{
		Type:            "numeric",
		Min:             ptr(float64(o3as.StartYear)),
		Max:             ptr(float64(o3as.EndYear)),
		DecimalsInFloat: ptr(0),
		Labels:          &Labels{Rotate: 0},
	},
	YAxis: &YAxis{
		Min:             ptr(200.0),
		Max:             ptr(400.0),
		ForceNiceScale:  true,
		DecimalsInFloat: ptr(0),
	},
	Chart: &Chart{
		ID:         o3as.TCO3Zm.String(),
		Animations: &Animations{Enabled: false, Easing: "linear"},
		Toolbar: &Toolbar{
			Show:    true,
			OffsetX: -60,
			OffsetY: 10,
			Tools:   &ToolbarTools{Download: true, Pan: false},
		},
		Zoom:  &Zoom{Enabled: true, Type: "xy"},
		Width: "100%",
	},
	Legend: &Legend{
		Show:        true,
		OnItemClick: &OnItemClick{ToggleDataSeries: false},
	},
	DataLabels: &Toggle{Enabled: false},
	Tooltip:    &Tooltip{Enabled: ptr(true), Shared: false},
	Colors:     nil,
	Stroke:     &Stroke{},
	Title:      defaultTitle("OCTS Plot"),
}

// defaultTCO3Return is the template of the return year box plot. The box
// series' colour slot is carried by the styling passed to GetOptions.
var defaultTCO3Return = Options{
	YAxis: &YAxis{
		ForceNiceScale:  true,
		DecimalsInFloat: ptr(0),
	},
	Chart: &Chart{
		ID:         o3as.TCO3Return.String(),
		Type:       "boxPlot",
		Animations: &Animations{Enabled: false},
		Zoom:       &Zoom{Enabled: false, Type: "xy"},
	},
	Colors: []string{},
	Title:  defaultTitle("Return/Recovery"),
	Tooltip: &Tooltip{
		Shared:    false,
		Intersect: ptr(true),
	},
	PlotOptions: &PlotOptions{
		BoxPlot: &BoxPlotOptions{
			Colors: BoxPlotColors{Upper: "#8def4e", Lower: "#63badb"},
		},
	},
	Legend: &Legend{Show: true},
	Markers: &Markers{
		Size:               5,
		Colors:             []string{},
		StrokeColors:       "#000",
		StrokeWidth:        0,
		StrokeOpacity:      0.2,
		StrokeDashArray:    0,
		FillOpacity:        0.7,
		Discrete:           []string{},
		Radius:             1,
		ShowNullDataPoints: true,
		Hover:              MarkersHover{Size: 10, SizeOffset: 10},
	},
}

// DefaultTitle is the title the template of kind carries.
func DefaultTitle(kind o3as.PlotKind) string {
	switch kind {
	case o3as.TCO3Zm:
		return defaultTCO3Zm.Title.Text
	case o3as.TCO3Return:
		return defaultTCO3Return.Title.Text
	}
	return ""
}

// Template returns a private copy of the default options of kind.
func Template(kind o3as.PlotKind) (Options, error) {
	switch kind {
	case o3as.TCO3Zm:
		return defaultTCO3Zm.Clone(), nil
	case o3as.TCO3Return:
		return defaultTCO3Return.Clone(), nil
	}
	return Options{}, fmt.Errorf("no chart template: %w: %v", o3as.ErrUnknownPlotKind, kind)
}
