package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tanocee/bikdecimal"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

// Error is the error class of the CLI.
var Error = errs.Class("bikdecimal")

const logLevelEnv = "BIKDECIMAL_LOG_LEVEL"

// config holds the values of the persistent flags and the logger built from them.
type config struct {
	scale     int
	mode      bikdecimal.RoundingMode
	logLevel  string
	logFormat string

	logger *zap.Logger
}

func (cfg *config) log() *zap.Logger {
	if cfg.logger == nil {
		return zap.NewNop()
	}
	return cfg.logger
}

// Execute runs the CLI with the process arguments.
// Failures are logged and returned, the caller decides the exit code.
func Execute() error {
	cfg := &config{}
	root := newRootCmd(cfg)
	err := root.Execute()
	if err != nil {
		if cfg.logger != nil {
			cfg.logger.Error("command failed", zap.Error(err))
		} else {
			fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		}
	}
	_ = cfg.log().Sync()
	return err
}

func newRootCmd(cfg *config) *cobra.Command {
	root := &cobra.Command{
		Use:           "bikdecimal",
		Short:         "Arbitrary-precision decimal calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cfg.logLevel, cfg.logFormat)
			if err != nil {
				return err
			}
			cfg.logger = logger.Named("bikdecimal")
			cfg.logger.Debug("configured",
				zap.Int("scale", cfg.scale),
				zap.Stringer("mode", cfg.mode),
				zap.String("command", cmd.Name()),
			)
			return nil
		},
	}

	addRoundingFlags(root.PersistentFlags(), cfg)
	root.PersistentFlags().StringVar(&cfg.logLevel, "log-level", envOr(logLevelEnv, "warn"), "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&cfg.logFormat, "log-format", "console", "log format (console or json)")

	root.AddCommand(evalCmd(cfg), roundCmd(cfg), sumCmd(cfg), compareCmd(), demoCmd(cfg))
	return root
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
