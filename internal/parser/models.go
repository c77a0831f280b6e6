package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/user/o3as_viz_go/internal/o3as"
)

// PlotStyle is the styling the API attaches to every model.
type PlotStyle struct {
	Color     string `json:"color" yaml:"color"`
	Linestyle string `json:"linestyle" yaml:"linestyle"`
	Marker    string `json:"marker,omitempty" yaml:"marker,omitempty"`
}

// Key is an x value of the API payload: a year for tco3_zm, a region name for tco3_return.
// The API sends years either as numbers or as strings.
type Key string

func (k *Key) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	*k = Key(s)
	return nil
}

// Year interprets the key as a year.
func (k Key) Year() (int, bool) {
	if year, err := strconv.Atoi(string(k)); err == nil {
		return year, true
	}
	f, err := strconv.ParseFloat(string(k), 64)
	if err != nil || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// RawModel is one entry of the API payload: parallel x/y arrays for a model.
type RawModel struct {
	Model     string       `json:"model"`
	PlotStyle PlotStyle    `json:"plotstyle"`
	X         []Key        `json:"x"`
	Y         []o3as.Value `json:"y"`
}

// ModelEntry holds the normalized data of a single model. Exactly one of
// Years (tco3_zm) or Regions (tco3_return) is populated.
type ModelEntry struct {
	PlotStyle PlotStyle
	Years     []o3as.Value          // dense, index i is year axis.Start+i
	Regions   map[string]o3as.Value // region -> return year
}

// Region returns the return year of region, Null when the model has none.
func (m *ModelEntry) Region(region string) o3as.Value {
	if m == nil {
		return o3as.Null
	}
	v, ok := m.Regions[region]
	if !ok {
		return o3as.Null
	}
	return v
}

// Year returns the value at axis offset i, Null when out of range.
func (m *ModelEntry) Year(i int) o3as.Value {
	if m == nil || i < 0 || i >= len(m.Years) {
		return o3as.Null
	}
	return m.Years[i]
}

// Lookup is the per-model lookup built once per API response.
type Lookup struct {
	Kind     o3as.PlotKind
	Axis     o3as.YearAxis
	Models   map[string]*ModelEntry
	Order    []string // model names in payload order
	Warnings []string // non-fatal problems found while normalizing
}

// NewLookup initializes an empty lookup for kind.
func NewLookup(kind o3as.PlotKind, axis o3as.YearAxis) *Lookup {
	return &Lookup{
		Kind:     kind,
		Axis:     axis,
		Models:   make(map[string]*ModelEntry),
		Order:    make([]string, 0),
		Warnings: make([]string, 0),
	}
}

// Model returns the entry for name.
func (l *Lookup) Model(name string) (*ModelEntry, bool) {
	if l == nil {
		return nil, false
	}
	entry, ok := l.Models[name]
	return entry, ok
}

func (l *Lookup) warnf(format string, args ...any) {
	l.Warnings = append(l.Warnings, fmt.Sprintf(format, args...))
}

// ModelSelection is a model's entry within a group of the selection state.
type ModelSelection struct {
	Name      string
	IsVisible bool
	// Include holds the per-statistic inclusion flags.
	Include map[o3as.StatKind]bool
}

// IncludedIn reports whether the model counts towards statistic kind. The std
// band centre shares the derivative's subset.
func (m ModelSelection) IncludedIn(kind o3as.StatKind) bool {
	if kind == o3as.StatStdMean {
		return m.Include[o3as.StatDerivative]
	}
	return m.Include[kind]
}

// Group is a named collection of models sharing statistic display settings.
type Group struct {
	ID        string
	Name      string
	IsVisible bool
	VisibleSV map[o3as.StatKind]bool
	Models    []ModelSelection // insertion order
}

// ModelNames returns the names of every model of the group, visible or not.
func (g Group) ModelNames() []string {
	names := make([]string, len(g.Models))
	for i, m := range g.Models {
		names[i] = m.Name
	}
	return names
}

// Selection is the read-only model group state of the dashboard.
type Selection struct {
	Groups []Group // insertion order
}
