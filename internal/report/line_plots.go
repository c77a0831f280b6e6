package report

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/user/o3as_viz_go/internal/o3as"
	"github.com/user/o3as_viz_go/internal/series"
)

// Size is the extent of a rendered chart in points.
type Size struct {
	Width  float64
	Height float64
}

// DefaultSize matches the landscape report page.
var DefaultSize = Size{Width: 800, Height: 400}

// defaultSeriesColor is used for series whose styling leaves the colour to the chart.
var defaultSeriesColor = color.RGBA{R: 0x43, G: 0x50, B: 0xaf, A: 255}

// CreateSeriesPlot renders a bundle as PNG. Time series are drawn as lines,
// region bundles as a box plot with scatter markers per region.
func CreateSeriesPlot(bundle *series.Bundle, kind o3as.PlotKind, axis o3as.YearAxis, title string, size Size) ([]byte, error) {
	if bundle == nil || bundle.Len() == 0 {
		return nil, fmt.Errorf("no series to plot")
	}
	if err := bundle.Verify(); err != nil {
		return nil, err
	}

	var (
		p   *plot.Plot
		err error
	)
	switch kind {
	case o3as.TCO3Zm:
		p, err = timeSeriesPlot(bundle, axis)
	case o3as.TCO3Return:
		p, err = regionPlot(bundle)
	default:
		return nil, fmt.Errorf("cannot plot series: %w: %v", o3as.ErrUnknownPlotKind, kind)
	}
	if err != nil {
		return nil, err
	}
	p.Title.Text = title
	return renderPNG(p, size)
}

func timeSeriesPlot(bundle *series.Bundle, axis o3as.YearAxis) (*plot.Plot, error) {
	if err := axis.Validate(); err != nil {
		return nil, err
	}

	p := plot.New()
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Total column ozone (DU)"
	p.X.Min = float64(axis.Start)
	p.X.Max = float64(axis.End)
	p.X.Tick.Marker = plot.ConstantTicks(yearTicks(axis.Start, axis.End, 10))
	p.Add(plotter.NewGrid())

	for i, s := range bundle.Data {
		runs := splitRuns(s.Points)
		if len(runs) == 0 {
			continue
		}
		style := bundle.Styling
		lineColor := seriesColor(style.Colors[i])

		var legendThumb plot.Thumbnailer
		for _, run := range runs {
			if len(run) == 1 {
				// a lone value between gaps is shown as a dot
				dot, err := plotter.NewScatter(run)
				if err != nil {
					return nil, fmt.Errorf("failed to create point for %s: %w", s.Name, err)
				}
				dot.GlyphStyle.Color = lineColor
				dot.GlyphStyle.Radius = vg.Points(1.5)
				p.Add(dot)
				continue
			}
			line, err := plotter.NewLine(run)
			if err != nil {
				return nil, fmt.Errorf("failed to create line for %s: %w", s.Name, err)
			}
			line.Color = lineColor
			line.LineStyle.Width = vg.Points(float64(max(style.Width[i], 1)))
			if dash := style.DashArray[i]; dash > 0 {
				line.LineStyle.Dashes = []vg.Length{vg.Points(float64(dash)), vg.Points(float64(dash))}
			}
			p.Add(line)
			if legendThumb == nil {
				legendThumb = line
			}
		}
		if legendThumb != nil {
			p.Legend.Add(s.Name, legendThumb)
		}
	}

	p.Legend.Top = true
	p.Legend.XOffs = vg.Points(10)
	return p, nil
}

// splitRuns breaks a time series into runs of consecutive defined values.
// The plotter rejects NaN, and nulls must show as gaps.
func splitRuns(points []series.Point) []plotter.XYs {
	var (
		runs    []plotter.XYs
		current plotter.XYs
	)
	for _, pt := range points {
		v := pt.Y.Float()
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if len(current) > 0 {
				runs = append(runs, current)
				current = nil
			}
			continue
		}
		current = append(current, plotter.XY{X: float64(pt.Year), Y: v})
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}
	return runs
}

// yearTicks labels every step-th year, plus the first and last year of the axis.
func yearTicks(start, end, step int) []plot.Tick {
	var ticks []plot.Tick
	if start%step != 0 {
		ticks = append(ticks, plot.Tick{Value: float64(start), Label: fmt.Sprintf("%d", start)})
	}
	first := start + (step-start%step)%step
	for y := first; y <= end; y += step {
		ticks = append(ticks, plot.Tick{Value: float64(y), Label: fmt.Sprintf("%d", y)})
	}
	if end%step != 0 {
		ticks = append(ticks, plot.Tick{Value: float64(end), Label: fmt.Sprintf("%d", end)})
	}
	return ticks
}

func seriesColor(hex string) color.Color {
	if c, ok := parseHexColor(hex); ok {
		return c
	}
	return defaultSeriesColor
}

func renderPNG(p *plot.Plot, size Size) ([]byte, error) {
	if size.Width <= 0 || size.Height <= 0 {
		size = DefaultSize
	}
	writer, err := p.WriterTo(vg.Points(size.Width), vg.Points(size.Height), "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %w", err)
	}
	return buf.Bytes(), nil
}
