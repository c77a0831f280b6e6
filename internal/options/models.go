package options

// Options is the chart configuration handed to the charting component.
// Optional sections are pointers so that the two plot templates serialize
// to exactly the keys they define.
type Options struct {
	XAxis       *XAxis       `json:"xaxis,omitempty"`
	YAxis       *YAxis       `json:"yaxis,omitempty"`
	Chart       *Chart       `json:"chart,omitempty"`
	Legend      *Legend      `json:"legend,omitempty"`
	DataLabels  *Toggle      `json:"dataLabels,omitempty"`
	Tooltip     *Tooltip     `json:"tooltip,omitempty"`
	Colors      []string     `json:"colors"`
	Stroke      *Stroke      `json:"stroke,omitempty"`
	Title       *Title       `json:"title,omitempty"`
	PlotOptions *PlotOptions `json:"plotOptions,omitempty"`
	Markers     *Markers     `json:"markers,omitempty"`
}

type XAxis struct {
	Type            string   `json:"type,omitempty"`
	Min             *float64 `json:"min,omitempty"`
	Max             *float64 `json:"max,omitempty"`
	DecimalsInFloat *int     `json:"decimalsInFloat,omitempty"`
	Labels          *Labels  `json:"labels,omitempty"`
	Categories      []int    `json:"categories,omitempty"`
}

type Labels struct {
	Rotate int `json:"rotate"`
}

type YAxis struct {
	Min             *float64 `json:"min,omitempty"`
	Max             *float64 `json:"max,omitempty"`
	ForceNiceScale  bool     `json:"forceNiceScale"`
	DecimalsInFloat *int     `json:"decimalsInFloat,omitempty"`
}

type Chart struct {
	ID         string      `json:"id"`
	Type       string      `json:"type,omitempty"`
	Animations *Animations `json:"animations,omitempty"`
	Toolbar    *Toolbar    `json:"toolbar,omitempty"`
	Zoom       *Zoom       `json:"zoom,omitempty"`
	Width      string      `json:"width,omitempty"`
}

type Animations struct {
	Enabled bool   `json:"enabled"`
	Easing  string `json:"easing,omitempty"`
}

type Toolbar struct {
	Show    bool          `json:"show"`
	OffsetX int           `json:"offsetX"`
	OffsetY int           `json:"offsetY"`
	Tools   *ToolbarTools `json:"tools,omitempty"`
}

type ToolbarTools struct {
	Download bool `json:"download"`
	Pan      bool `json:"pan"`
}

type Zoom struct {
	Enabled bool   `json:"enabled"`
	Type    string `json:"type,omitempty"`
}

type Legend struct {
	Show        bool         `json:"show"`
	OnItemClick *OnItemClick `json:"onItemClick,omitempty"`
}

type OnItemClick struct {
	ToggleDataSeries bool `json:"toggleDataSeries"`
}

// Toggle is a section that only carries an enabled flag.
type Toggle struct {
	Enabled bool `json:"enabled"`
}

type Tooltip struct {
	Enabled   *bool `json:"enabled,omitempty"`
	Shared    bool  `json:"shared"`
	Intersect *bool `json:"intersect,omitempty"`
}

type Stroke struct {
	Width     []int `json:"width"`
	DashArray []int `json:"dashArray"`
}

type Title struct {
	Text     string     `json:"text"`
	Align    string     `json:"align"`
	Floating bool       `json:"floating"`
	Style    TitleStyle `json:"style"`
}

type TitleStyle struct {
	FontSize   string `json:"fontSize"`
	FontWeight string `json:"fontWeight"`
	FontFamily string `json:"fontFamily,omitempty"`
	Color      string `json:"color"`
}

type PlotOptions struct {
	BoxPlot *BoxPlotOptions `json:"boxPlot,omitempty"`
}

type BoxPlotOptions struct {
	Colors BoxPlotColors `json:"colors"`
}

type BoxPlotColors struct {
	Upper string `json:"upper"`
	Lower string `json:"lower"`
}

type Markers struct {
	Size               int          `json:"size"`
	Colors             []string     `json:"colors"`
	StrokeColors       string       `json:"strokeColors"`
	StrokeWidth        int          `json:"strokeWidth"`
	StrokeOpacity      float64      `json:"strokeOpacity"`
	StrokeDashArray    int          `json:"strokeDashArray"`
	FillOpacity        float64      `json:"fillOpacity"`
	Discrete           []string     `json:"discrete"`
	Radius             int          `json:"radius"`
	OffsetX            int          `json:"offsetX"`
	OffsetY            int          `json:"offsetY"`
	ShowNullDataPoints bool         `json:"showNullDataPoints"`
	Hover              MarkersHover `json:"hover"`
}

type MarkersHover struct {
	Size       int `json:"size"`
	SizeOffset int `json:"sizeOffset"`
}
