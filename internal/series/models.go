package series

import (
	"errors"
	"fmt"

	"github.com/segmentio/encoding/json"

	"github.com/user/o3as_viz_go/internal/o3as"
)

// ErrMisaligned is returned when a bundle's styling arrays do not line up with its series.
var ErrMisaligned = errors.New("series and styling are misaligned")

// ChartType is the per-series type understood by the charting component.
type ChartType string

const (
	Line    ChartType = "line"
	Scatter ChartType = "scatter"
	BoxPlot ChartType = "boxPlot"
)

// Point is one data point. Time series points carry Year, region points
// carry Region; box-plot points carry the five-number summary in Box.
type Point struct {
	Year   int
	Region string
	Y      o3as.Value
	Box    *[5]o3as.Value
}

// MarshalJSON writes [year, value] for time series points and {"x": region, "y": ...} otherwise.
func (p Point) MarshalJSON() ([]byte, error) {
	if p.Region == "" {
		return json.Marshal([2]any{p.Year, p.Y})
	}
	if p.Box != nil {
		return json.Marshal(struct {
			X string        `json:"x"`
			Y [5]o3as.Value `json:"y"`
		}{p.Region, *p.Box})
	}
	return json.Marshal(struct {
		X string     `json:"x"`
		Y o3as.Value `json:"y"`
	}{p.Region, p.Y})
}

// Series is one chart series.
type Series struct {
	Name   string    `json:"name"`
	Type   ChartType `json:"type"`
	Points []Point   `json:"data"`
}

// Styling holds per-series styling, index-aligned with Bundle.Data.
type Styling struct {
	Colors    []string `json:"colors"`
	Width     []int    `json:"width"`
	DashArray []int    `json:"dashArray"`
}

// Clone returns a copy that shares no backing arrays with s.
func (s Styling) Clone() Styling {
	return Styling{
		Colors:    append(make([]string, 0, len(s.Colors)), s.Colors...),
		Width:     append(make([]int, 0, len(s.Width)), s.Width...),
		DashArray: append(make([]int, 0, len(s.DashArray)), s.DashArray...),
	}
}

// Bundle is the series of a plot together with its styling.
type Bundle struct {
	Data     []Series `json:"data"`
	Styling  Styling  `json:"styling"`
	Warnings []string `json:"warnings,omitempty"`
}

// NewBundle returns an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{
		Data: make([]Series, 0),
		Styling: Styling{
			Colors:    make([]string, 0),
			Width:     make([]int, 0),
			DashArray: make([]int, 0),
		},
		Warnings: make([]string, 0),
	}
}

// Append adds a series and its styling triple.
func (b *Bundle) Append(s Series, color string, width, dash int) {
	b.Data = append(b.Data, s)
	b.Styling.Colors = append(b.Styling.Colors, color)
	b.Styling.Width = append(b.Styling.Width, width)
	b.Styling.DashArray = append(b.Styling.DashArray, dash)
}

// Len returns the number of series.
func (b *Bundle) Len() int {
	return len(b.Data)
}

// Verify checks that every styling array is aligned with the series.
func (b *Bundle) Verify() error {
	n := len(b.Data)
	if len(b.Styling.Colors) != n || len(b.Styling.Width) != n || len(b.Styling.DashArray) != n {
		return fmt.Errorf("%w: %d series, %d colors, %d widths, %d dash patterns",
			ErrMisaligned, n, len(b.Styling.Colors), len(b.Styling.Width), len(b.Styling.DashArray))
	}
	return nil
}

func (b *Bundle) warnf(format string, args ...any) {
	b.Warnings = append(b.Warnings, fmt.Sprintf(format, args...))
}

// Combine returns a new bundle holding a's series followed by b's.
// Neither input is modified.
func Combine(a, b *Bundle) (*Bundle, error) {
	if err := a.Verify(); err != nil {
		return nil, fmt.Errorf("first bundle: %w", err)
	}
	if err := b.Verify(); err != nil {
		return nil, fmt.Errorf("second bundle: %w", err)
	}

	combined := &Bundle{
		Data: append(append(make([]Series, 0, a.Len()+b.Len()), a.Data...), b.Data...),
		Styling: Styling{
			Colors:    append(append(make([]string, 0, a.Len()+b.Len()), a.Styling.Colors...), b.Styling.Colors...),
			Width:     append(append(make([]int, 0, a.Len()+b.Len()), a.Styling.Width...), b.Styling.Width...),
			DashArray: append(append(make([]int, 0, a.Len()+b.Len()), a.Styling.DashArray...), b.Styling.DashArray...),
		},
		Warnings: append(append(make([]string, 0, len(a.Warnings)+len(b.Warnings)), a.Warnings...), b.Warnings...),
	}
	if err := combined.Verify(); err != nil {
		return nil, err
	}
	return combined, nil
}
