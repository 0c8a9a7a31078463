package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tanocee/bikdecimal"
	"go.uber.org/zap"
)

// round <value>: print the value rescaled with --scale and --mode.
func roundCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round <value>",
		Short: "Round a value to the given scale",
		Long: `Round a value to the given scale.

The --scale flag is required here. Negative scales round to the left of the
decimal point, so --scale -2 rounds to hundreds. With --mode UNNECESSARY the
command fails unless the value already fits the scale.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("scale") {
				return Error.New("round: --scale is required")
			}
			d, err := bikdecimal.Parse(args[0])
			if err != nil {
				return Error.Wrap(err)
			}
			res, err := d.SetScale(cfg.scale, cfg.mode)
			if err != nil {
				return Error.Wrap(err)
			}
			cfg.log().Debug("rounded",
				zap.Stringer("value", d),
				zap.Int("scale", cfg.scale),
				zap.Stringer("mode", cfg.mode),
				zap.Stringer("result", res),
			)
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
	return cmd
}
