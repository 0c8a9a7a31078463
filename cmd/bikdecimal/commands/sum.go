package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tanocee/bikdecimal"
	"go.uber.org/zap"
)

// sum [value]...: add the arguments, or the lines of standard input when
// there are none.
func sumCmd(cfg *config) *cobra.Command {
	var (
		def    string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "sum [value]...",
		Short: "Sum values from arguments or standard input",
		Long: `Sum values from arguments or, when no arguments are given, from the
lines of standard input. Blank lines are skipped.

Values that cannot be parsed count as --default unless --strict is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fallback, err := bikdecimal.Parse(def)
			if err != nil {
				return Error.New("--default: %w", err)
			}

			values := args
			if len(values) == 0 {
				values, err = readLines(cmd)
				if err != nil {
					return err
				}
			}

			total, err := sumValues(values, fallback, strict, cfg.log())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), total)
			return nil
		},
	}
	cmd.Flags().StringVar(&def, "default", "0", "value used in place of unparsable input")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on unparsable input")
	return cmd
}

func sumValues(values []string, fallback bikdecimal.Decimal, strict bool, log *zap.Logger) (bikdecimal.Decimal, error) {
	if strict {
		ds := make([]bikdecimal.Decimal, 0, len(values))
		for _, s := range values {
			d, err := bikdecimal.Parse(s)
			if err != nil {
				return bikdecimal.Decimal{}, Error.Wrap(err)
			}
			ds = append(ds, d)
		}
		return bikdecimal.Sum(ds...), nil
	}
	return bikdecimal.SumOf(values, func(s string) bikdecimal.Decimal {
		if ce := log.Check(zap.DebugLevel, "value replaced by default"); ce != nil {
			if _, err := bikdecimal.Parse(s); err != nil {
				ce.Write(zap.String("value", s), zap.Stringer("default", fallback), zap.Error(err))
			}
		}
		return bikdecimal.ParseOr(s, fallback)
	}), nil
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, Error.New("reading input: %w", err)
	}
	return lines, nil
}
