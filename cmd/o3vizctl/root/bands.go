package root

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"

	"github.com/user/o3as_viz_go/internal/o3as"
)

func NewBandsCmd() *cobra.Command {
	var (
		minLat float64
		maxLat float64
		custom bool
	)

	cmd := &cobra.Command{
		Use:   "bands",
		Short: "List the latitude bands or look one up",
		Example: heredoc.Doc(`
			# All bands
			$ o3vizctl bands

			# Band of a latitude range
			$ o3vizctl bands --min -20 --max 20
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("min") && !cmd.Flags().Changed("max") && !custom {
				return printJSON(cmd.OutOrStdout(), o3as.LatitudeBands)
			}
			band, ok := o3as.FindLatitudeBand(o3as.Location{MinLat: minLat, MaxLat: maxLat}, custom)
			if !ok {
				return fmt.Errorf("no latitude band for %g..%g", minLat, maxLat)
			}
			return printJSON(cmd.OutOrStdout(), band)
		},
	}

	cmd.Flags().Float64Var(&minLat, "min", -90, "Southern bound in degrees north")
	cmd.Flags().Float64Var(&maxLat, "max", 90, "Northern bound in degrees north")
	cmd.Flags().BoolVar(&custom, "custom", false, "Individual latitude band")

	return cmd
}

func printJSON(w io.Writer, v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}
