package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/samber/lo"

	"github.com/user/o3as_viz_go/internal/o3as"
	"github.com/user/o3as_viz_go/internal/series"
)

// missing is how the chart library marks an absent data point.
const missing = "-"

// RenderHTML writes an interactive page showing the bundle.
func RenderHTML(w io.Writer, bundle *series.Bundle, kind o3as.PlotKind, axis o3as.YearAxis, title string) error {
	if bundle == nil || bundle.Len() == 0 {
		return fmt.Errorf("no series to render")
	}
	if err := bundle.Verify(); err != nil {
		return err
	}

	page := components.NewPage()
	page.PageTitle = title
	switch kind {
	case o3as.TCO3Zm:
		if err := axis.Validate(); err != nil {
			return err
		}
		page.AddCharts(lineChart(bundle, axis, title))
	case o3as.TCO3Return:
		page.AddCharts(boxChart(bundle, title))
	default:
		return fmt.Errorf("cannot render series: %w: %v", o3as.ErrUnknownPlotKind, kind)
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render chart page: %w", err)
	}
	return nil
}

func globalOpts(title, trigger string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: trigger}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	}
}

func lineChart(bundle *series.Bundle, axis o3as.YearAxis, title string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(append(globalOpts(title, "axis"),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: "Year"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "DU", Scale: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
	)...)
	line.SetXAxis(lo.Map(axis.Years(), func(y int, _ int) string { return strconv.Itoa(y) }))

	for i, s := range bundle.Data {
		data := make([]opts.LineData, axis.Len())
		for j := range data {
			data[j] = opts.LineData{Value: missing}
		}
		for _, pt := range s.Points {
			if idx, ok := axis.Index(pt.Year); ok {
				data[idx] = opts.LineData{Value: chartValue(pt.Y)}
			}
		}

		lineStyle := opts.LineStyle{Width: float32(max(bundle.Styling.Width[i], 1)), Type: dashType(bundle.Styling.DashArray[i])}
		seriesOpts := []charts.SeriesOpts{
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		}
		if c := bundle.Styling.Colors[i]; c != "" {
			lineStyle.Color = c
			seriesOpts = append(seriesOpts, charts.WithItemStyleOpts(opts.ItemStyle{Color: c}))
		}
		seriesOpts = append(seriesOpts, charts.WithLineStyleOpts(lineStyle))
		line.AddSeries(s.Name, data, seriesOpts...)
	}
	return line
}

func boxChart(bundle *series.Bundle, title string) *charts.BoxPlot {
	regions := regionCategories(bundle)
	index := make(map[string]int, len(regions))
	for i, region := range regions {
		index[region] = i
	}

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(append(globalOpts(title, "item"),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Return year", Scale: opts.Bool(true)}),
	)...)
	box.SetXAxis(regions)

	scatter := charts.NewScatter()
	scatter.SetXAxis(regions)

	for i, s := range bundle.Data {
		switch s.Type {
		case series.BoxPlot:
			data := make([]opts.BoxPlotData, len(regions))
			for _, pt := range s.Points {
				data[index[pt.Region]] = opts.BoxPlotData{Name: pt.Region, Value: boxValue(pt.Box)}
			}
			box.AddSeries(s.Name, data,
				charts.WithItemStyleOpts(opts.ItemStyle{Color: boxUpperHex, BorderColor: boxLowerHex}))
		case series.Scatter:
			data := make([]opts.ScatterData, len(regions))
			for j := range data {
				data[j] = opts.ScatterData{Value: missing}
			}
			for _, pt := range s.Points {
				if idx, ok := index[pt.Region]; ok {
					data[idx] = opts.ScatterData{Value: chartValue(pt.Y), SymbolSize: 10}
				}
			}
			var seriesOpts []charts.SeriesOpts
			if c := bundle.Styling.Colors[i]; c != "" {
				seriesOpts = append(seriesOpts, charts.WithItemStyleOpts(opts.ItemStyle{Color: c}))
			}
			scatter.AddSeries(s.Name, data, seriesOpts...)
		}
	}
	box.Overlap(scatter)
	return box
}

// chartValue maps a value to the chart's data format. NaN is not valid JSON.
func chartValue(v o3as.Value) any {
	f := v.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return missing
	}
	return f
}

func boxValue(summary *[5]o3as.Value) any {
	if summary == nil {
		return missing
	}
	out := make([]float64, 0, len(summary))
	for _, v := range summary {
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return missing
		}
		out = append(out, f)
	}
	return out
}

func dashType(dash int) string {
	switch {
	case dash == 0:
		return "solid"
	case dash == 1:
		return "dotted"
	default:
		return "dashed"
	}
}
