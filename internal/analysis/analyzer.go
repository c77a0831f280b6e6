package analysis

import (
	"sort"

	"github.com/user/o3as_viz_go/internal/o3as"
	"github.com/user/o3as_viz_go/internal/parser"
)

// MatrixBuilder arranges the data of the candidate models along a plot's primary axis.
type MatrixBuilder interface {
	// BuildMatrix returns one row per axis index with one entry per model, in model order.
	BuildMatrix(models []string, lookup *parser.Lookup) Matrix
	// AxisLen is the number of rows BuildMatrix produces.
	AxisLen() int
}

// YearMatrix transposes dense year sequences (tco3_zm).
type YearMatrix struct {
	Axis o3as.YearAxis
}

func (b YearMatrix) AxisLen() int {
	return b.Axis.Len()
}

func (b YearMatrix) BuildMatrix(models []string, lookup *parser.Lookup) Matrix {
	matrix := make(Matrix, b.Axis.Len())
	for i := range matrix {
		row := make([]o3as.Value, len(models))
		for j, model := range models {
			entry, _ := lookup.Model(model)
			row[j] = entry.Year(i) // nulls stay in place to keep the model index mapping
		}
		matrix[i] = row
	}
	return matrix
}

// RegionMatrix arranges return years by region (tco3_return).
type RegionMatrix struct {
	Regions []string
}

func (b RegionMatrix) AxisLen() int {
	return len(b.Regions)
}

func (b RegionMatrix) BuildMatrix(models []string, lookup *parser.Lookup) Matrix {
	matrix := make(Matrix, len(b.Regions))
	for i, region := range b.Regions {
		row := make([]o3as.Value, len(models))
		for j, model := range models {
			entry, _ := lookup.Model(model)
			row[j] = entry.Region(region)
		}
		matrix[i] = row
	}
	return matrix
}

// FilterRow keeps the non-null values of row whose model is included in kind.
// row[j] belongs to models[j].
func FilterRow(row []o3as.Value, models []parser.ModelSelection, kind o3as.StatKind) []float64 {
	filtered := make([]float64, 0, len(row))
	for j, v := range row {
		if v.IsNull() || j >= len(models) || !models[j].IncludedIn(kind) {
			continue
		}
		filtered = append(filtered, v.V)
	}
	return filtered
}

// CalculateSvForModels computes every statistic of group along the builder's axis.
//
// All models of the group are candidates, visible or not; the per-statistic
// inclusion flags decide membership. An index whose filtered set yields no
// value holds Null. The mean±std bands are derived from the std centre and the
// std afterwards without a null guard, so a null operand makes the band NaN.
func CalculateSvForModels(group parser.Group, lookup *parser.Lookup, builder MatrixBuilder, method QuantileMethod) *GroupStatistics {
	matrix := builder.BuildMatrix(group.ModelNames(), lookup)
	reducers := Reducers(method)

	kinds := append(append([]o3as.StatKind(nil), o3as.StatisticalValuesList...), o3as.StatStdMean)
	values := make(map[o3as.StatKind][]o3as.Value, len(kinds)+2)
	for _, kind := range kinds {
		values[kind] = make([]o3as.Value, 0, len(matrix))
	}

	for _, row := range matrix {
		for _, kind := range kinds {
			filtered := FilterRow(row, group.Models, kind)
			values[kind] = append(values[kind], o3as.FromReduced(reducers[kind](filtered)))
		}
	}

	std := values[o3as.StatDerivative]
	centre := values[o3as.StatStdMean]
	plus := make([]o3as.Value, len(std))
	minus := make([]o3as.Value, len(std))
	for i := range std {
		plus[i] = centre[i].Add(std[i])
		minus[i] = centre[i].Sub(std[i])
	}
	values[o3as.StatMeanPlus] = plus
	values[o3as.StatMeanMinus] = minus
	delete(values, o3as.StatStdMean)

	return &GroupStatistics{
		GroupID:   group.ID,
		GroupName: group.Name,
		Values:    values,
	}
}

// BoxPlotValues summarizes, per region, the return years of every visible
// model of every visible group. Statistic inclusion flags are ignored.
func BoxPlotValues(lookup *parser.Lookup, selection *parser.Selection, regions []string, method QuantileMethod) map[string]BoxSummary {
	holder := make(map[string][]float64, len(regions))
	for _, region := range regions {
		holder[region] = make([]float64, 0)
	}

	if selection != nil {
		for _, group := range selection.Groups {
			if !group.IsVisible {
				continue
			}
			for _, model := range group.Models {
				if !model.IsVisible {
					continue
				}
				entry, ok := lookup.Model(model.Name)
				if !ok {
					continue
				}
				for _, region := range regions {
					if v := entry.Region(region); !v.IsNull() {
						holder[region] = append(holder[region], v.V)
					}
				}
			}
		}
	}

	summaries := make(map[string]BoxSummary, len(regions))
	for _, region := range regions {
		arr := holder[region]
		if len(arr) == 0 {
			summaries[region] = BoxSummary{}
			continue
		}
		sort.Float64s(arr)
		summaries[region] = BoxSummary{
			Min:    o3as.Some(arr[0]),
			Q1:     o3as.FromReduced(quantileSorted(arr, 0.25, method)),
			Median: o3as.FromReduced(quantileSorted(arr, 0.5, method)),
			Q3:     o3as.FromReduced(quantileSorted(arr, 0.75, method)),
			Max:    o3as.Some(arr[len(arr)-1]),
		}
	}
	return summaries
}
