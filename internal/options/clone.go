package options

// Clone returns a deep copy of o. No pointer, slice or nested section is
// shared between o and the copy.
func (o Options) Clone() Options {
	return Options{
		XAxis:       o.XAxis.clone(),
		YAxis:       o.YAxis.clone(),
		Chart:       o.Chart.clone(),
		Legend:      o.Legend.clone(),
		DataLabels:  clonePtr(o.DataLabels),
		Tooltip:     o.Tooltip.clone(),
		Colors:      cloneSlice(o.Colors),
		Stroke:      o.Stroke.clone(),
		Title:       o.Title.Clone(),
		PlotOptions: o.PlotOptions.clone(),
		Markers:     o.Markers.clone(),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

func (x *XAxis) clone() *XAxis {
	if x == nil {
		return nil
	}
	return &XAxis{
		Type:            x.Type,
		Min:             clonePtr(x.Min),
		Max:             clonePtr(x.Max),
		DecimalsInFloat: clonePtr(x.DecimalsInFloat),
		Labels:          clonePtr(x.Labels),
		Categories:      cloneSlice(x.Categories),
	}
}

func (y *YAxis) clone() *YAxis {
	if y == nil {
		return nil
	}
	return &YAxis{
		Min:             clonePtr(y.Min),
		Max:             clonePtr(y.Max),
		ForceNiceScale:  y.ForceNiceScale,
		DecimalsInFloat: clonePtr(y.DecimalsInFloat),
	}
}

func (c *Chart) clone() *Chart {
	if c == nil {
		return nil
	}
	chart := *c
	chart.Animations = clonePtr(c.Animations)
	chart.Zoom = clonePtr(c.Zoom)
	if c.Toolbar != nil {
		toolbar := *c.Toolbar
		toolbar.Tools = clonePtr(c.Toolbar.Tools)
		chart.Toolbar = &toolbar
	}
	return &chart
}

func (l *Legend) clone() *Legend {
	if l == nil {
		return nil
	}
	return &Legend{Show: l.Show, OnItemClick: clonePtr(l.OnItemClick)}
}

func (t *Tooltip) clone() *Tooltip {
	if t == nil {
		return nil
	}
	return &Tooltip{
		Enabled:   clonePtr(t.Enabled),
		Shared:    t.Shared,
		Intersect: clonePtr(t.Intersect),
	}
}

func (s *Stroke) clone() *Stroke {
	if s == nil {
		return nil
	}
	return &Stroke{Width: cloneSlice(s.Width), DashArray: cloneSlice(s.DashArray)}
}

// Clone returns a distinct copy of the title.
func (t *Title) Clone() *Title {
	return clonePtr(t)
}

func (p *PlotOptions) clone() *PlotOptions {
	if p == nil {
		return nil
	}
	return &PlotOptions{BoxPlot: clonePtr(p.BoxPlot)}
}

func (m *Markers) clone() *Markers {
	if m == nil {
		return nil
	}
	markers := *m
	markers.Colors = cloneSlice(m.Colors)
	markers.Discrete = cloneSlice(m.Discrete)
	return &markers
}
