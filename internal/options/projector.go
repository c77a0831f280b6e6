package options

import (
	"fmt"

	"github.com/user/o3as_viz_go/internal/o3as"
	"github.com/user/o3as_viz_go/internal/series"
)

// GetOptions produces the chart configuration of kind for the given styling
// and title. The result shares nothing with the templates, the styling or
// earlier results. The title is always a new value because the chart only
// notices a title change when the title object itself changes.
func GetOptions(kind o3as.PlotKind, axis o3as.YearAxis, styling series.Styling, title string) (*Options, error) {
	opts, err := Template(kind)
	if err != nil {
		return nil, err
	}
	styling = styling.Clone()

	switch kind {
	case o3as.TCO3Zm:
		if err := axis.Validate(); err != nil {
			return nil, err
		}
		opts.XAxis.Min = ptr(float64(axis.Start))
		opts.XAxis.Max = ptr(float64(axis.End))
		opts.XAxis.Categories = axis.Years()
		opts.Colors = styling.Colors
		opts.Stroke.Width = styling.Width
		opts.Stroke.DashArray = styling.DashArray
	case o3as.TCO3Return:
		// legend colours of the per-model entries
		opts.Colors = append(opts.Colors, styling.Colors...)
	default:
		return nil, fmt.Errorf("cannot project options: %w: %v", o3as.ErrUnknownPlotKind, kind)
	}

	opts.Title = opts.Title.Clone()
	opts.Title.Text = title
	return &opts, nil
}
