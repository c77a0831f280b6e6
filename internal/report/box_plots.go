package report

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/user/o3as_viz_go/internal/series"
)

// Box colours of the region chart.
const (
	boxUpperHex = "#8def4e"
	boxLowerHex = "#63badb"
)

// regionPlot draws the region box plot and the per-model and statistic
// markers over a nominal region axis.
func regionPlot(bundle *series.Bundle) (*plot.Plot, error) {
	regions := regionCategories(bundle)
	if len(regions) == 0 {
		return nil, fmt.Errorf("no regions to plot")
	}
	index := make(map[string]int, len(regions))
	for i, region := range regions {
		index[region] = i
	}

	p := plot.New()
	p.Y.Label.Text = "Return year"
	p.NominalX(regions...)
	p.Add(plotter.NewGrid())

	for i, s := range bundle.Data {
		switch s.Type {
		case series.BoxPlot:
			for _, pt := range s.Points {
				box, ok, err := summaryBox(pt, index[pt.Region])
				if err != nil {
					return nil, fmt.Errorf("failed to create box for %s: %w", pt.Region, err)
				}
				if ok {
					p.Add(box)
				}
			}
		case series.Scatter:
			pts := make(plotter.XYs, 0, len(s.Points))
			for _, pt := range s.Points {
				v := pt.Y.Float()
				x, known := index[pt.Region]
				if !known || math.IsNaN(v) || math.IsInf(v, 0) {
					continue
				}
				pts = append(pts, plotter.XY{X: float64(x), Y: v})
			}
			if len(pts) == 0 {
				continue
			}
			sc, err := plotter.NewScatter(pts)
			if err != nil {
				return nil, fmt.Errorf("failed to create markers for %s: %w", s.Name, err)
			}
			sc.GlyphStyle.Color = seriesColor(bundle.Styling.Colors[i])
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
			sc.GlyphStyle.Radius = vg.Points(3)
			p.Add(sc)
			p.Legend.Add(s.Name, sc)
		}
	}

	p.Legend.Top = true
	return p, nil
}

// regionCategories returns the region order of the first series.
func regionCategories(bundle *series.Bundle) []string {
	var regions []string
	for _, pt := range bundle.Data[0].Points {
		regions = append(regions, pt.Region)
	}
	return regions
}

// summaryBox builds a box from a precomputed five-number summary. The
// plotter derives its quartiles from raw values, so they are overwritten.
// Regions without a complete summary yield no box.
func summaryBox(pt series.Point, location int) (*plotter.BoxPlot, bool, error) {
	if pt.Box == nil {
		return nil, false, nil
	}
	var v [5]float64
	for i, value := range pt.Box {
		v[i] = value.Float()
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			return nil, false, nil
		}
	}
	box, err := plotter.NewBoxPlot(vg.Points(20), float64(location), plotter.Values(v[:]))
	if err != nil {
		return nil, false, err
	}
	box.Min, box.Quartile1, box.Median, box.Quartile3, box.Max = v[0], v[1], v[2], v[3], v[4]
	box.AdjLow, box.AdjHigh = v[0], v[4]
	box.Outside = nil
	box.FillColor = seriesColor(boxUpperHex)
	box.BoxStyle.Color = seriesColor(boxLowerHex)
	return box, true, nil
}
