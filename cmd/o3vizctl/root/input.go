package root

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/user/o3as_viz_go/internal/o3as"
	"github.com/user/o3as_viz_go/internal/parser"
)

func loadLookup(kind o3as.PlotKind, axis o3as.YearAxis, dataPath string) (*parser.Lookup, error) {
	if dataPath == "" {
		return nil, fmt.Errorf("--data is required")
	}
	raw, err := parser.ParsePayloadFile(dataPath)
	if err != nil {
		return nil, err
	}
	lookup, err := parser.PreTransform(kind, axis, raw)
	if err != nil {
		return nil, err
	}
	log.Info("Payload loaded", "file", dataPath, "plot", kind, "models", len(lookup.Order))
	for _, w := range lookup.Warnings {
		log.Warn(w)
	}
	return lookup, nil
}

// loadSelection reads the selection state file. Without one, every model of
// the payload is shown in a single group with mean and median.
func loadSelection(path string, lookup *parser.Lookup) (*parser.Selection, error) {
	if path != "" {
		return parser.ParseSelectionFile(path)
	}
	log.Debug("No selection given, showing every model")
	all := []o3as.StatKind{o3as.StatMean, o3as.StatMedian, o3as.StatDerivative, o3as.StatPercentile}
	return &parser.Selection{Groups: []parser.Group{{
		ID:        "0",
		Name:      "All models",
		IsVisible: true,
		VisibleSV: map[o3as.StatKind]bool{o3as.StatMean: true, o3as.StatMedian: true},
		Models: lo.Map(lookup.Order, func(name string, _ int) parser.ModelSelection {
			return parser.ModelSelection{
				Name:      name,
				IsVisible: true,
				Include:   lo.Associate(all, func(k o3as.StatKind) (o3as.StatKind, bool) { return k, true }),
			}
		}),
	}}}, nil
}
