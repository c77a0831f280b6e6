package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/user/o3as_viz_go/internal/config"
	"github.com/user/o3as_viz_go/internal/o3as"
	"github.com/user/o3as_viz_go/internal/options"
	"github.com/user/o3as_viz_go/internal/series"
)

func NewOptionsCmd() *cobra.Command {
	var (
		plotID        string
		dataPath      string
		selectionPath string
	)

	cmd := &cobra.Command{
		Use:   "options",
		Short: "Print the chart options of a plot",
		Long: heredoc.Doc(`
			Prints the chart configuration as JSON. Without --data the options
			carry no per-series styling.
		`),
		Example: heredoc.Doc(`
			$ o3vizctl options --plot tco3_return --title "Return/Recovery"
			$ o3vizctl options --data zm.json --selection selection.yaml
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

			styling := series.Styling{}
			if dataPath != "" {
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
				styling = bundle.Styling
			}

			title := cfg.Title
			if title == "" {
				title = options.DefaultTitle(kind)
			}
			opts, err := options.GetOptions(kind, cfg.Axis, styling, title)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&plotID, "plot", o3as.TCO3Zm.String(), "Plot type (tco3_zm or tco3_return)")
	cmd.Flags().StringVar(&dataPath, "data", "", "API response file (JSON)")
	cmd.Flags().StringVar(&selectionPath, "selection", "", "Selection state file (JSON or YAML)")
	cmd.Flags().String("title", "", "Chart title")

	return cmd
}
