package analysis

import (
	"github.com/user/o3as_viz_go/internal/o3as"
)

// Matrix is the transposed model data of a group: row i holds, for every
// candidate model in order, the model's value at axis index i.
type Matrix [][]o3as.Value

// GroupStatistics holds the per-index statistical values of a model group.
type GroupStatistics struct {
	GroupID   string
	GroupName string
	Values    map[o3as.StatKind][]o3as.Value
}

// Get returns the sequence computed for kind.
func (g *GroupStatistics) Get(kind o3as.StatKind) ([]o3as.Value, bool) {
	if g == nil {
		return nil, false
	}
	values, ok := g.Values[kind]
	return values, ok
}

// BoxSummary is the five-number summary of one region of the box plot.
type BoxSummary struct {
	Min    o3as.Value
	Q1     o3as.Value
	Median o3as.Value
	Q3     o3as.Value
	Max    o3as.Value
}

// Values returns min, q1, median, q3, max in that order.
func (b BoxSummary) Values() [5]o3as.Value {
	return [5]o3as.Value{b.Min, b.Q1, b.Median, b.Q3, b.Max}
}

// IsEmpty reports whether no model contributed to the summary.
func (b BoxSummary) IsEmpty() bool {
	return b.Min.IsNull()
}
