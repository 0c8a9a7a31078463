package commands

import (
	"github.com/spf13/pflag"
	"github.com/tanocee/bikdecimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// modeValue adapts a rounding mode to [pflag.Value].
type modeValue bikdecimal.RoundingMode

var _ pflag.Value = (*modeValue)(nil)

func newModeValue(val bikdecimal.RoundingMode, p *bikdecimal.RoundingMode) *modeValue {
	*p = val
	return (*modeValue)(p)
}

func (m *modeValue) Set(s string) error {
	mode, err := bikdecimal.ParseRoundingMode(s)
	if err != nil {
		return err
	}
	*m = modeValue(mode)
	return nil
}

func (m *modeValue) String() string {
	return bikdecimal.RoundingMode(*m).String()
}

func (m *modeValue) Type() string {
	return "mode"
}

func addRoundingFlags(fs *pflag.FlagSet, cfg *config) {
	fs.IntVar(&cfg.scale, "scale", bikdecimal.NaturalScale, "digits after the decimal point kept by division, negative for exact division")
	fs.Var(newModeValue(bikdecimal.RoundHalfEven, &cfg.mode), "mode", "rounding mode (UP, DOWN, CEILING, FLOOR, HALF_UP, HALF_DOWN, HALF_EVEN, UNNECESSARY)")
}

// newLogger builds a logger writing to standard error.
// The json format uses the production encoder, console the development one.
func newLogger(level, format string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, Error.New("log level %q: %w", level, err)
	}

	var zcfg zap.Config
	switch format {
	case "json":
		zcfg = zap.NewProductionConfig()
	case "console":
		zcfg = zap.NewDevelopmentConfig()
	default:
		return nil, Error.New("unknown log format %q", format)
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return logger, nil
}
