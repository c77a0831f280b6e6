package config

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/user/o3as_viz_go/internal/analysis"
	"github.com/user/o3as_viz_go/internal/o3as"
	"github.com/user/o3as_viz_go/internal/report"
)

// Config keys.
const (
	KeyYearStart      = "year_start"
	KeyYearEnd        = "year_end"
	KeyTitle          = "title"
	KeyWidth          = "width"
	KeyHeight         = "height"
	KeyLogLevel       = "log_level"
	KeyQuantileMethod = "quantile_method"
)

// Config is the resolved runtime configuration shared by the dashboard and the CLI.
type Config struct {
	Axis           o3as.YearAxis
	Title          string
	Size           report.Size
	LogLevel       log.Level
	QuantileMethod analysis.QuantileMethod
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyYearStart, o3as.StartYear)
	v.SetDefault(KeyYearEnd, o3as.EndYear)
	v.SetDefault(KeyTitle, "")
	v.SetDefault(KeyWidth, report.DefaultSize.Width)
	v.SetDefault(KeyHeight, report.DefaultSize.Height)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyQuantileMethod, analysis.Linear.String())
}

// New returns a viper instance with defaults, reading path when it is set.
// Environment variables prefixed O3AS_ override file values.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("o3as")
	v.AutomaticEnv()

	if path == "" {
		return v, nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return v, nil
}

// Load resolves and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	axis := o3as.YearAxis{Start: v.GetInt(KeyYearStart), End: v.GetInt(KeyYearEnd)}
	if err := axis.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid year range: %w", err)
	}

	level, err := log.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}

	method, err := analysis.ParseQuantileMethod(v.GetString(KeyQuantileMethod))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", KeyQuantileMethod, err)
	}

	size := report.Size{Width: v.GetFloat64(KeyWidth), Height: v.GetFloat64(KeyHeight)}
	if size.Width <= 0 || size.Height <= 0 {
		return Config{}, fmt.Errorf("invalid chart size %gx%g", size.Width, size.Height)
	}

	return Config{
		Axis:           axis,
		Title:          v.GetString(KeyTitle),
		Size:           size,
		LogLevel:       level,
		QuantileMethod: method,
	}, nil
}
