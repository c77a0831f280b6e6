package o3as

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPlotKind is returned when a plot identifier does not name a supported plot.
var ErrUnknownPlotKind = errors.New("unknown plot kind")

// PlotKind identifies one of the supported ozone plots.
type PlotKind int

const (
	// TCO3Zm is the total column ozone zonal mean time series (x = year).
	TCO3Zm PlotKind = iota + 1
	// TCO3Return is the return/recovery year per region plot (x = region).
	TCO3Return
)

var plotKindNames = map[PlotKind]string{
	TCO3Zm:     "tco3_zm",
	TCO3Return: "tco3_return",
}

func (k PlotKind) String() string {
	if name, ok := plotKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PlotKind(%d)", int(k))
}

// ParsePlotKind maps an API plot identifier ("tco3_zm", "tco3_return") to its PlotKind.
func ParsePlotKind(id string) (PlotKind, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for kind, name := range plotKindNames {
		if name == id {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlotKind, id)
}

// PlotKinds lists the supported plots in a stable order.
var PlotKinds = []PlotKind{TCO3Zm, TCO3Return}

const (
	StartYear = 1960
	EndYear   = 2100
)

// ModelLineThickness is the stroke width of every raw model series.
const ModelLineThickness = 2

// StatLineThickness is the stroke width of statistical value series.
const StatLineThickness = 1

// YearAxis is the fixed contiguous year range every time series is densified onto.
type YearAxis struct {
	Start int
	End   int
}

// DefaultYearAxis spans StartYear..EndYear.
var DefaultYearAxis = YearAxis{Start: StartYear, End: EndYear}

// Len returns the number of years on the axis (0 for an inverted range).
func (a YearAxis) Len() int {
	if a.End < a.Start {
		return 0
	}
	return a.End - a.Start + 1
}

// Year returns the year at offset i.
func (a YearAxis) Year(i int) int {
	return a.Start + i
}

// Index returns the offset of year on the axis.
func (a YearAxis) Index(year int) (int, bool) {
	if year < a.Start || year > a.End {
		return 0, false
	}
	return year - a.Start, true
}

// Years returns the implicit year list of the axis.
func (a YearAxis) Years() []int {
	years := make([]int, a.Len())
	for i := range years {
		years[i] = a.Start + i
	}
	return years
}

// Validate reports whether the axis describes a non-empty range.
func (a YearAxis) Validate() error {
	if a.Len() == 0 {
		return fmt.Errorf("invalid year axis %d..%d", a.Start, a.End)
	}
	return nil
}

// AllRegionsOrdered is the category axis of the return-year plot.
var AllRegionsOrdered = []string{
	"Antarctic(Oct)",
	"SH mid-lat",
	"Tropics",
	"NH mid-lat",
	"Arctic(Mar)",
	"Near global",
	"Global",
	"User region",
}

// StatKind names a statistical value computed per axis index for a model group.
type StatKind string

const (
	StatMean       StatKind = "mean"
	StatMedian     StatKind = "median"
	StatDerivative StatKind = "derivative" // standard deviation
	StatPercentile StatKind = "percentile"
	StatMeanPlus   StatKind = "mean+std"
	StatMeanMinus  StatKind = "mean-std"

	// StatStdMean is the mean used as the centre of the std band. It shares
	// the derivative's included-model subset and is never displayed.
	StatStdMean StatKind = "stdMean"
)

// StatisticalValuesList holds the base statistics in enumeration order.
var StatisticalValuesList = []StatKind{StatMean, StatMedian, StatDerivative, StatPercentile}

// StatDisplayOrder is the order statistic series are emitted in.
var StatDisplayOrder = []StatKind{StatMean, StatMedian, StatDerivative, StatPercentile, StatMeanPlus, StatMeanMinus}

// PercentileRank is the rank the "percentile" statistic reports.
const PercentileRank = 0.9

// SVColoring maps each statistic to the colour of its series.
var SVColoring = map[StatKind]string{
	StatMean:       "#000000",
	StatMedian:     "#1e90ff",
	StatDerivative: "#808080",
	StatPercentile: "#9932cc",
	StatMeanPlus:   "#a9a9a9",
	StatMeanMinus:  "#a9a9a9",
}

// IsStdBand reports whether k is one of the synthetic mean±std bands.
func (k StatKind) IsStdBand() bool {
	return k == StatMeanPlus || k == StatMeanMinus
}
