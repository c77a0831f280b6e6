package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/user/o3as_viz_go/internal/config"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "o3vizctl <command>",
		Short: "Render O3as ozone model plots",
		Long: heredoc.Doc(`
			Turns O3as API responses and a model selection into chart series,
			chart options, images and reports.
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlag(config.KeyLogLevel, cmd.Flags().Lookup("log-level")); err != nil {
				return err
			}
			level, err := log.ParseLevel(viper.GetString(config.KeyLogLevel))
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
	}

	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewOptionsCmd())
	cmd.AddCommand(NewBandsCmd())

	return cmd
}

// loadConfig resolves the configuration after flags were bound.
func loadConfig() (config.Config, error) {
	return config.Load(viper.GetViper())
}
