package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tanocee/bikdecimal"
)

// compare <a> <b>: print -1, 0 or 1.
func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two values numerically, ignoring scale",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bikdecimal.Parse(args[0])
			if err != nil {
				return Error.Wrap(err)
			}
			b, err := bikdecimal.Parse(args[1])
			if err != nil {
				return Error.Wrap(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.Cmp(b))
			return nil
		},
	}
	return cmd
}
