package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tanocee/bikdecimal/internal/calc"
)

// eval <expr>...: evaluate each expression and print its value.
func evalCmd(cfg *config) *cobra.Command {
	var prefix bool
	cmd := &cobra.Command{
		Use:   "eval <expr>...",
		Short: "Evaluate arithmetic expressions",
		Example: `  bikdecimal eval "10 * (1.23 + 4.56)"
  bikdecimal eval --prefix "* 10 + 1.23 4.56"
  bikdecimal eval --scale 5 --mode HALF_UP "2 / 3"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev := &calc.Evaluator{Scale: cfg.scale, Mode: cfg.mode, Logger: cfg.log()}
			eval := ev.Eval
			if prefix {
				eval = ev.EvalPrefix
			}
			for _, expr := range args {
				d, err := eval(expr)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&prefix, "prefix", false, "read expressions in prefix (Polish) notation")
	return cmd
}
