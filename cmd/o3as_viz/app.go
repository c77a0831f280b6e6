package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/user/o3as_viz_go/internal/config"
	"github.com/user/o3as_viz_go/internal/o3as"
	"github.com/user/o3as_viz_go/internal/options"
	"github.com/user/o3as_viz_go/internal/parser"
	"github.com/user/o3as_viz_go/internal/report"
	"github.com/user/o3as_viz_go/internal/series"
)

// App is bound to the frontend. It keeps the normalized payload of every
// plot kind between selection changes.
type App struct {
	ctx    context.Context
	cfg    config.Config
	logger *log.Logger

	mu      sync.RWMutex
	lookups map[o3as.PlotKind]*parser.Lookup
}

// NewApp creates the application with the resolved configuration.
func NewApp(cfg config.Config) *App {
	return &App{
		cfg: cfg,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Level:           cfg.LogLevel,
			ReportTimestamp: true,
			Prefix:          "o3as_viz",
		}),
		lookups: make(map[o3as.PlotKind]*parser.Lookup),
	}
}

// Startup is called when the app starts. The context is saved
// so we can call the runtime methods.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	runtime.WindowSetTitle(a.ctx, "O3as Visualizer")
}

func (a *App) sendStatus(message string, keyvals ...any) {
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, "statusUpdate", message)
	}
	a.logger.Info(message, keyvals...)
}

func (a *App) sendWarnings(source string, warnings []string) {
	for _, w := range warnings {
		if a.ctx != nil {
			runtime.EventsEmit(a.ctx, "statusUpdate", fmt.Sprintf("- %s", w))
		}
		a.logger.Warn(w, "source", source)
	}
}

func (a *App) lookup(kind o3as.PlotKind) (*parser.Lookup, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	lookup, ok := a.lookups[kind]
	if !ok {
		return nil, fmt.Errorf("no data loaded for %s", kind)
	}
	return lookup, nil
}

// LoadPayload normalizes a freshly fetched API response and keeps it for
// later selection changes. It returns the normalization warnings.
func (a *App) LoadPayload(plotID string, payloadJSON string) ([]string, error) {
	kind, err := o3as.ParsePlotKind(plotID)
	if err != nil {
		return nil, err
	}
	raw, err := parser.ParsePayloadBytes([]byte(payloadJSON))
	if err != nil {
		a.logger.Error("failed to parse payload", "plot", plotID, "err", err)
		return nil, fmt.Errorf("error parsing payload: %w", err)
	}
	lookup, err := parser.PreTransform(kind, a.cfg.Axis, raw)
	if err != nil {
		return nil, fmt.Errorf("error normalizing payload: %w", err)
	}

	a.mu.Lock()
	a.lookups[kind] = lookup
	a.mu.Unlock()

	a.sendStatus("Payload loaded", "plot", plotID, "models", len(lookup.Order))
	a.sendWarnings("normalize", lookup.Warnings)
	return lookup.Warnings, nil
}

// GenerateSeries builds the chart series for the current selection state.
func (a *App) GenerateSeries(plotID string, selectionJSON string) (*series.Bundle, error) {
	kind, err := o3as.ParsePlotKind(plotID)
	if err != nil {
		return nil, err
	}
	lookup, err := a.lookup(kind)
	if err != nil {
		return nil, err
	}
	selection, err := parser.ParseSelectionBytes([]byte(selectionJSON))
	if err != nil {
		return nil, fmt.Errorf("error parsing selection: %w", err)
	}

	bundle, err := series.Generate(kind, lookup, selection, a.cfg.QuantileMethod)
	if err != nil {
		a.logger.Error("failed to generate series", "plot", plotID, "err", err)
		return nil, err
	}
	a.logger.Debug("series generated", "plot", plotID, "series", bundle.Len())
	a.sendWarnings("series", bundle.Warnings)
	return bundle, nil
}

// GetOptions returns the chart configuration for the given styling.
func (a *App) GetOptions(plotID string, styling series.Styling, title string) (*options.Options, error) {
	kind, err := o3as.ParsePlotKind(plotID)
	if err != nil {
		return nil, err
	}
	return options.GetOptions(kind, a.cfg.Axis, styling, title)
}

// FindLatitudeBand maps a latitude range to its sidebar band.
func (a *App) FindLatitudeBand(minLat, maxLat float64, custom bool) (o3as.LatitudeBand, error) {
	band, ok := o3as.FindLatitudeBand(o3as.Location{MinLat: minLat, MaxLat: maxLat}, custom)
	if !ok {
		return o3as.LatitudeBand{}, fmt.Errorf("no latitude band for %g..%g", minLat, maxLat)
	}
	return band, nil
}

// HandleExportReport writes a PDF report of the current selection. The work
// runs in the background; progress is reported through events.
func (a *App) HandleExportReport(plotID string, selectionJSON string, title string, pdfFilePath string) (string, error) {
	kind, err := o3as.ParsePlotKind(plotID)
	if err != nil {
		return "", err
	}
	if pdfFilePath == "" {
		return "", fmt.Errorf("no output file given")
	}
	a.sendStatus("Report requested", "plot", plotID, "pdf", pdfFilePath)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				errMsg := fmt.Sprintf("PANIC recovered: %v", r)
				a.sendStatus(errMsg)
				a.emit("exportComplete", false, errMsg)
			}
		}()
		a.emit("exportStart")

		if err := a.exportReport(kind, selectionJSON, title, pdfFilePath); err != nil {
			errMsg := fmt.Sprintf("Error generating PDF report: %v", err)
			a.sendStatus(errMsg)
			a.emit("exportComplete", false, errMsg)
			return
		}
		successMsg := fmt.Sprintf("PDF report successfully generated: %s", pdfFilePath)
		a.sendStatus(successMsg)
		a.emit("exportComplete", true, successMsg)
	}()

	return "Report generation started in background.", nil
}

func (a *App) exportReport(kind o3as.PlotKind, selectionJSON, title, pdfFilePath string) error {
	bundle, err := a.GenerateSeries(kind.String(), selectionJSON)
	if err != nil {
		return err
	}
	lookup, err := a.lookup(kind)
	if err != nil {
		return err
	}

	a.sendStatus("Generating charts...")
	var images []report.ReportImage
	img, err := report.CreateSeriesPlot(bundle, kind, a.cfg.Axis, title, a.cfg.Size)
	if err != nil {
		a.sendStatus(fmt.Sprintf("Error generating chart: %v", err))
	}
	images = append(images, report.ReportImage{Key: "series", Title: title, PNG: img})

	if kind == o3as.TCO3Zm {
		heat, err := report.CreateCoverageHeatmap(lookup, "Model coverage", a.cfg.Size)
		if err != nil {
			a.sendStatus(fmt.Sprintf("Error generating heatmap: %v", err))
		}
		images = append(images, report.ReportImage{Key: "coverage", Title: "Model coverage", Caption: "Total column ozone per model and year", PNG: heat})
	}

	a.sendStatus(fmt.Sprintf("Generating PDF: %s...", pdfFilePath))
	return report.BuildPDFReport(pdfFilePath, report.ReportInput{
		Title:    title,
		Kind:     kind,
		Bundle:   bundle,
		Warnings: append(append([]string{}, lookup.Warnings...), bundle.Warnings...),
		Images:   images,
	})
}

func (a *App) emit(event string, data ...any) {
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, event, data...)
	}
}
