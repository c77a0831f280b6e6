package report

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"

	"github.com/user/o3as_viz_go/internal/o3as"
	"github.com/user/o3as_viz_go/internal/parser"
)

// coverageGrid exposes a normalized time-series lookup as a models x years grid.
// Columns are axis indices, rows are models in payload order.
type coverageGrid struct {
	lookup *parser.Lookup
}

func (g coverageGrid) Dims() (c, r int) {
	return g.lookup.Axis.Len(), len(g.lookup.Order)
}

func (g coverageGrid) Z(c, r int) float64 {
	entry, ok := g.lookup.Model(g.lookup.Order[r])
	if !ok {
		return math.NaN()
	}
	return entry.Year(c).Float()
}

func (g coverageGrid) X(c int) float64 {
	return float64(g.lookup.Axis.Year(c))
}

func (g coverageGrid) Y(r int) float64 {
	return float64(r)
}

// CreateCoverageHeatmap renders the ozone values of every model per year.
// Years a model does not cover show as grey cells.
func CreateCoverageHeatmap(lookup *parser.Lookup, title string, size Size) ([]byte, error) {
	if lookup == nil || len(lookup.Order) == 0 {
		return nil, fmt.Errorf("no model data to plot heatmap")
	}
	if lookup.Kind != o3as.TCO3Zm {
		return nil, fmt.Errorf("heatmap needs time series data, got %v", lookup.Kind)
	}

	grid := coverageGrid{lookup: lookup}
	cols, rows := grid.Dims()
	var valid []float64
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if z := grid.Z(c, r); !math.IsNaN(z) && !math.IsInf(z, 0) {
				valid = append(valid, z)
			}
		}
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("no values to plot heatmap")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Model"

	yTicks := make([]plot.Tick, rows)
	for i, name := range lookup.Order {
		yTicks[i] = plot.Tick{Value: float64(i), Label: name}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	p.X.Tick.Marker = plot.ConstantTicks(yearTicks(lookup.Axis.Start, lookup.Axis.End, 10))

	hm := plotter.NewHeatMap(grid, palette.Heat(12, 1))
	hm.Min = floats.Min(valid)
	hm.Max = floats.Max(valid)
	if hm.Min == hm.Max {
		hm.Max = hm.Min + 1
	}
	hm.NaN = color.Gray{Y: 200}
	p.Add(hm)

	return renderPNG(p, size)
}
