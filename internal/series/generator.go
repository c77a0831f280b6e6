package series

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/user/o3as_viz_go/internal/analysis"
	"github.com/user/o3as_viz_go/internal/o3as"
	"github.com/user/o3as_viz_go/internal/parser"
)

// Generate builds the series and styling of a plot from the normalized data
// and the current selection. Groups and models are walked in their stored
// order, skipping invisible ones: one raw series per visible model, then per
// group one series per enabled statistic.
//
// The result is always freshly allocated; lookup and selection are only read.
func Generate(kind o3as.PlotKind, lookup *parser.Lookup, selection *parser.Selection, method analysis.QuantileMethod) (*Bundle, error) {
	if lookup == nil {
		return nil, fmt.Errorf("no data loaded for %v", kind)
	}
	if lookup.Kind != kind {
		return nil, fmt.Errorf("data was normalized for %v, not %v", lookup.Kind, kind)
	}
	if selection == nil {
		selection = &parser.Selection{}
	}

	switch kind {
	case o3as.TCO3Zm:
		return generateTco3ZmSeries(lookup, selection, method)
	case o3as.TCO3Return:
		return generateTco3ReturnSeries(lookup, selection, method)
	}
	return nil, fmt.Errorf("cannot generate series: %w: %v", o3as.ErrUnknownPlotKind, kind)
}

func generateTco3ZmSeries(lookup *parser.Lookup, selection *parser.Selection, method analysis.QuantileMethod) (*Bundle, error) {
	axis := lookup.Axis
	raw := NewBundle()

	eachVisibleModel(selection, func(group parser.Group, model parser.ModelSelection) {
		entry, ok := lookup.Model(model.Name)
		if !ok {
			raw.warnf("model %s of group %s has no data, skipped", model.Name, group.Name)
			return
		}
		raw.Append(Series{
			Name: model.Name,
			Type: Line,
			Points: lo.Map(entry.Years, func(v o3as.Value, i int) Point {
				return Point{Year: axis.Year(i), Y: v}
			}),
		}, modelColor(raw, model.Name, entry.PlotStyle), o3as.ModelLineThickness, modelDash(raw, model.Name, entry.PlotStyle))
	})

	sv := buildStatisticalSeries(lookup, selection, analysis.YearMatrix{Axis: axis}, method, func(name string, values []o3as.Value) Series {
		return Series{
			Name: name,
			Type: Line,
			Points: lo.Map(values, func(v o3as.Value, i int) Point {
				return Point{Year: axis.Year(i), Y: v}
			}),
		}
	})
	return Combine(raw, sv)
}

func generateTco3ReturnSeries(lookup *parser.Lookup, selection *parser.Selection, method analysis.QuantileMethod) (*Bundle, error) {
	regions := o3as.AllRegionsOrdered
	raw := NewBundle()

	// the box plot comes first and is drawn with the template's fixed box colours
	boxValues := analysis.BoxPlotValues(lookup, selection, regions, method)
	raw.Append(Series{
		Name: "box",
		Type: BoxPlot,
		Points: lo.Map(regions, func(region string, _ int) Point {
			summary := boxValues[region].Values()
			return Point{Region: region, Box: &summary}
		}),
	}, "", 0, 0)

	eachVisibleModel(selection, func(group parser.Group, model parser.ModelSelection) {
		entry, ok := lookup.Model(model.Name)
		if !ok {
			raw.warnf("model %s of group %s has no data, skipped", model.Name, group.Name)
			return
		}
		raw.Append(Series{
			Name: model.Name,
			Type: Scatter,
			Points: lo.Map(regions, func(region string, _ int) Point {
				return Point{Region: region, Y: entry.Region(region)}
			}),
		}, modelColor(raw, model.Name, entry.PlotStyle), 0, 0)
	})

	sv := buildStatisticalSeries(lookup, selection, analysis.RegionMatrix{Regions: regions}, method, func(name string, values []o3as.Value) Series {
		return Series{
			Name: name,
			Type: Scatter,
			Points: lo.Map(regions, func(region string, i int) Point {
				return Point{Region: region, Y: values[i]}
			}),
		}
	})
	return Combine(raw, sv)
}

// buildStatisticalSeries emits, per visible group, one series per enabled
// statistic in display order. The raw std and the percentile are not drawn;
// the mean±std bands follow the derivative's visibility flag.
func buildStatisticalSeries(lookup *parser.Lookup, selection *parser.Selection, builder analysis.MatrixBuilder,
	method analysis.QuantileMethod, single func(name string, values []o3as.Value) Series) *Bundle {

	sv := NewBundle()
	for _, group := range selection.Groups {
		if !group.IsVisible || len(group.Models) == 0 {
			continue
		}
		stats := analysis.CalculateSvForModels(group, lookup, builder, method)

		for _, kind := range o3as.StatDisplayOrder {
			if kind == o3as.StatDerivative || kind == o3as.StatPercentile {
				continue
			}
			if !statVisible(group, kind) {
				continue
			}
			values, ok := stats.Get(kind)
			if !ok {
				continue
			}
			sv.Append(single(fmt.Sprintf("%s(%s)", kind, group.Name), values),
				o3as.SVColoring[kind], o3as.StatLineThickness, 0)
		}
	}
	return sv
}

func statVisible(group parser.Group, kind o3as.StatKind) bool {
	if kind.IsStdBand() {
		return group.VisibleSV[o3as.StatDerivative]
	}
	return group.VisibleSV[kind]
}

func eachVisibleModel(selection *parser.Selection, fn func(parser.Group, parser.ModelSelection)) {
	for _, group := range selection.Groups {
		if !group.IsVisible {
			continue
		}
		for _, model := range group.Models {
			if !model.IsVisible {
				continue
			}
			fn(group, model)
		}
	}
}

func modelColor(b *Bundle, model string, style parser.PlotStyle) string {
	hex, ok := o3as.ColorNameToHex(style.Color)
	if !ok {
		b.warnf("model %s: unknown color %q, using chart default", model, style.Color)
		return ""
	}
	return hex
}

func modelDash(b *Bundle, model string, style parser.PlotStyle) int {
	dash, ok := o3as.StrokeStyle(style.Linestyle)
	if !ok {
		b.warnf("model %s: unknown line style %q, drawing solid", model, style.Linestyle)
		return 0
	}
	return dash
}
