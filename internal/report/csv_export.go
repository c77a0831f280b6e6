package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/user/o3as_viz_go/internal/o3as"
	"github.com/user/o3as_viz_go/internal/series"
)

var boxColumns = []string{"min", "q1", "median", "q3", "max"}

// WriteCSV writes the bundle as a table, one row per year or region and one
// column per series. Box-plot series take five columns. Nulls are empty cells.
func WriteCSV(w io.Writer, bundle *series.Bundle, kind o3as.PlotKind, axis o3as.YearAxis) error {
	if bundle == nil || bundle.Len() == 0 {
		return fmt.Errorf("no series to export")
	}
	if err := bundle.Verify(); err != nil {
		return err
	}

	var (
		header []string
		rows   [][]string
	)
	switch kind {
	case o3as.TCO3Zm:
		if err := axis.Validate(); err != nil {
			return err
		}
		header = append(header, "year")
		rows = make([][]string, axis.Len())
		for i := range rows {
			rows[i] = []string{strconv.Itoa(axis.Year(i))}
		}
		for _, s := range bundle.Data {
			header = append(header, s.Name)
			column := make([]string, axis.Len())
			for _, pt := range s.Points {
				if idx, ok := axis.Index(pt.Year); ok {
					column[idx] = formatCell(pt.Y)
				}
			}
			for i := range rows {
				rows[i] = append(rows[i], column[i])
			}
		}
	case o3as.TCO3Return:
		regions := regionCategories(bundle)
		index := make(map[string]int, len(regions))
		header = append(header, "region")
		rows = make([][]string, len(regions))
		for i, region := range regions {
			index[region] = i
			rows[i] = []string{region}
		}
		for _, s := range bundle.Data {
			width := 1
			if s.Type == series.BoxPlot {
				width = len(boxColumns)
				for _, col := range boxColumns {
					header = append(header, fmt.Sprintf("%s %s", s.Name, col))
				}
			} else {
				header = append(header, s.Name)
			}
			cells := make([][]string, len(regions))
			for i := range cells {
				cells[i] = make([]string, width)
			}
			for _, pt := range s.Points {
				idx, ok := index[pt.Region]
				if !ok {
					continue
				}
				if s.Type == series.BoxPlot {
					if pt.Box != nil {
						for j, v := range pt.Box {
							cells[idx][j] = formatCell(v)
						}
					}
					continue
				}
				cells[idx][0] = formatCell(pt.Y)
			}
			for i := range rows {
				rows[i] = append(rows[i], cells[i]...)
			}
		}
	default:
		return fmt.Errorf("cannot export series: %w: %v", o3as.ErrUnknownPlotKind, kind)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}
	return nil
}

func formatCell(v o3as.Value) string {
	f := v.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
