package root

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/user/o3as_viz_go/internal/config"
	"github.com/user/o3as_viz_go/internal/o3as"
	"github.com/user/o3as_viz_go/internal/options"
	"github.com/user/o3as_viz_go/internal/report"
	"github.com/user/o3as_viz_go/internal/series"
)

var validFormats = []string{"json", "csv", "png", "html", "pdf"}

// renderOutput is the json format: what the dashboard hands to the chart.
type renderOutput struct {
	Series   []series.Series  `json:"series"`
	Options  *options.Options `json:"options"`
	Warnings []string         `json:"warnings,omitempty"`
}

func NewRenderCmd() *cobra.Command {
	var (
		plotID        string
		dataPath      string
		selectionPath string
		outPath       string
		format        string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a plot from an API response",
		Example: heredoc.Doc(`
			# Chart series and options as JSON
			$ o3vizctl render --plot tco3_zm --data zm.json --selection selection.yaml

			# Interactive page of the return year plot
			$ o3vizctl render --plot tco3_return --data return.json --format html --out return.html

			# Series table
			$ o3vizctl render --data zm.json --format csv --out zm.csv

			# PDF report
			$ o3vizctl render --data zm.json --format pdf --out report.pdf --title "OCTS Plot"
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlag(config.KeyTitle, cmd.Flags().Lookup("title")); err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			kind, err := o3as.ParsePlotKind(plotID)
			if err != nil {
				return err
			}

			lookup, err := loadLookup(kind, cfg.Axis, dataPath)
			if err != nil {
				return err
			}
			selection, err := loadSelection(selectionPath, lookup)
			if err != nil {
				return err
			}
			bundle, err := series.Generate(kind, lookup, selection, cfg.QuantileMethod)
			if err != nil {
				return err
			}
			for _, w := range bundle.Warnings {
				log.Warn(w)
			}
			log.Info("Series generated", "plot", kind, "series", bundle.Len())

			title := cfg.Title
			if title == "" {
				title = options.DefaultTitle(kind)
			}
			var out bytes.Buffer
			switch format {
			case "json":
				opts, err := options.GetOptions(kind, cfg.Axis, bundle.Styling, title)
				if err != nil {
					return err
				}
				encoded, err := json.MarshalIndent(renderOutput{
					Series:   bundle.Data,
					Options:  opts,
					Warnings: append(append([]string{}, lookup.Warnings...), bundle.Warnings...),
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode output: %w", err)
				}
				out.Write(encoded)
				out.WriteByte('\n')
			case "csv":
				if err := report.WriteCSV(&out, bundle, kind, cfg.Axis); err != nil {
					return err
				}
			case "png":
				img, err := report.CreateSeriesPlot(bundle, kind, cfg.Axis, title, cfg.Size)
				if err != nil {
					return err
				}
				out.Write(img)
			case "html":
				if err := report.RenderHTML(&out, bundle, kind, cfg.Axis, title); err != nil {
					return err
				}
			case "pdf":
				if outPath == "" || outPath == "-" {
					return fmt.Errorf("pdf output needs --out")
				}
				images := []report.ReportImage{}
				img, err := report.CreateSeriesPlot(bundle, kind, cfg.Axis, title, cfg.Size)
				if err != nil {
					log.Error("failed to render chart", "err", err)
				}
				images = append(images, report.ReportImage{Key: "series", Title: "Chart", PNG: img})
				if kind == o3as.TCO3Zm {
					heat, err := report.CreateCoverageHeatmap(lookup, "Model coverage", cfg.Size)
					if err != nil {
						log.Error("failed to render heatmap", "err", err)
					}
					images = append(images, report.ReportImage{Key: "coverage", Title: "Model coverage", PNG: heat})
				}
				err = report.BuildPDFReport(outPath, report.ReportInput{
					Title:    title,
					Kind:     kind,
					Bundle:   bundle,
					Warnings: append(append([]string{}, lookup.Warnings...), bundle.Warnings...),
					Images:   images,
				})
				if err != nil {
					return err
				}
				log.Info("Report written", "file", outPath)
				return nil
			default:
				return fmt.Errorf("invalid format %q, valid formats are: %v", format, validFormats)
			}

			return writeOutput(cmd.OutOrStdout(), outPath, out.Bytes())
		},
	}

	cmd.Flags().StringVar(&plotID, "plot", o3as.TCO3Zm.String(), "Plot type (tco3_zm or tco3_return)")
	cmd.Flags().StringVar(&dataPath, "data", "", "API response file (JSON)")
	cmd.Flags().StringVar(&selectionPath, "selection", "", "Selection state file (JSON or YAML)")
	cmd.Flags().StringVar(&outPath, "out", "-", "Output file, - for stdout")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, csv, png, html or pdf")
	cmd.Flags().String("title", "", "Chart title")
	cmd.MarkFlagRequired("data")

	return cmd
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Info("Output written", "file", path)
	return nil
}
