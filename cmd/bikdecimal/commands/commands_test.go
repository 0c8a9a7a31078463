package commands

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tanocee/bikdecimal"
	"github.com/tanocee/bikdecimal/internal/calc"
	"go.uber.org/zap/zapcore"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(&config{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	out, err := run(t, "", "eval", "10 * (1.23 + 4.56)", "1 / 8")
	require.NoError(t, err)
	require.Equal(t, "57.90\n0.125\n", out)

	out, err = run(t, "", "eval", "--prefix", "* 10 + 1.23 4.56")
	require.NoError(t, err)
	require.Equal(t, "57.90\n", out)

	out, err = run(t, "", "eval", "--scale", "5", "2 / 3")
	require.NoError(t, err)
	require.Equal(t, "0.66667\n", out)

	out, err = run(t, "", "eval", "--scale", "5", "--mode", "down", "2 / 3")
	require.NoError(t, err)
	require.Equal(t, "0.66666\n", out)
}

func TestEval_Error(t *testing.T) {
	_, err := run(t, "", "eval", "1 / 3")
	require.ErrorIs(t, err, bikdecimal.ErrNonTerminating)
	require.True(t, calc.Error.Has(err))

	_, err = run(t, "", "eval", "1 / 0")
	require.ErrorIs(t, err, bikdecimal.ErrDivisionByZero)

	_, err = run(t, "", "eval")
	require.Error(t, err)

	_, err = run(t, "", "eval", "--mode", "sideways", "1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid argument")
}

func TestRound(t *testing.T) {
	type TC struct {
		args []string
		want string
	}

	tcs := []TC{
		{[]string{"round", "--scale", "2", "2.345"}, "2.34\n"},
		{[]string{"round", "--scale", "2", "--mode", "HALF_UP", "2.345"}, "2.35\n"},
		{[]string{"round", "--scale", "-2", "1250"}, "1200\n"},
		{[]string{"round", "--scale", "0", "--mode", "CEILING", "--", "-1.5"}, "-1\n"},
		{[]string{"round", "--scale", "4", "1.5"}, "1.5000\n"},
	}

	for _, tc := range tcs {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, err := run(t, "", tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestRound_Error(t *testing.T) {
	_, err := run(t, "", "round", "1.5")
	require.Error(t, err)
	require.True(t, Error.Has(err))

	_, err = run(t, "", "round", "--scale", "1", "--mode", "UNNECESSARY", "1.25")
	require.ErrorIs(t, err, bikdecimal.ErrInexactRounding)

	_, err = run(t, "", "round", "--scale", "1", "abc")
	require.ErrorIs(t, err, bikdecimal.ErrInvalidDecimal)
}

func TestSum(t *testing.T) {
	type TC struct {
		stdin string
		args  []string
		want  string
	}

	tcs := []TC{
		{"", []string{"sum", "1.20", "0.80", "1.50"}, "3.50\n"},
		{"", []string{"sum", "1", "x", "2"}, "3\n"},
		{"", []string{"sum", "--default", "10", "1", "x"}, "11\n"},
		{"1.5\n\n  2.25\n", []string{"sum"}, "3.75\n"},
		{"", []string{"sum"}, "0\n"},
	}

	for _, tc := range tcs {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, err := run(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestSum_Error(t *testing.T) {
	_, err := run(t, "", "sum", "--strict", "1", "x")
	require.ErrorIs(t, err, bikdecimal.ErrInvalidDecimal)
	require.True(t, Error.Has(err))

	_, err = run(t, "", "sum", "--default", "none", "1")
	require.ErrorIs(t, err, bikdecimal.ErrInvalidDecimal)
}

func TestCompare(t *testing.T) {
	type TC struct {
		a, b string
		want string
	}

	tcs := []TC{
		{"100", "200", "-1\n"},
		{"200", "100", "1\n"},
		{"100", "100.00", "0\n"},
		{"-1", "-2", "1\n"},
	}

	for _, tc := range tcs {
		t.Run(tc.a+" "+tc.b, func(t *testing.T) {
			out, err := run(t, "", "compare", "--", tc.a, tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}

	_, err := run(t, "", "compare", "1")
	require.Error(t, err)
	_, err = run(t, "", "compare", "1", "one")
	require.ErrorIs(t, err, bikdecimal.ErrInvalidDecimal)
}

func TestDemo(t *testing.T) {
	out, err := run(t, "", "demo")
	require.NoError(t, err)
	for _, want := range []string{
		"191.34",
		"55.56",
		"8381.0205",
		"1.8183826779",
		"999.99",
		"3.14159",
		"-42.5",
		"123.456",
		"100.5",
		"3.50",
	} {
		require.Contains(t, out, want)
	}

	out, err = run(t, "", "demo", "--scale", "2", "--mode", "DOWN")
	require.NoError(t, err)
	require.Contains(t, out, "1.81")
	require.NotContains(t, out, "1.8183826779")
}

func TestModeValue(t *testing.T) {
	var mode bikdecimal.RoundingMode
	v := newModeValue(bikdecimal.RoundHalfEven, &mode)
	require.Equal(t, bikdecimal.RoundHalfEven, mode)
	require.Equal(t, "HALF_EVEN", v.String())
	require.Equal(t, "mode", v.Type())

	require.NoError(t, v.Set("half-up"))
	require.Equal(t, bikdecimal.RoundHalfUp, mode)

	err := v.Set("sideways")
	require.ErrorIs(t, err, bikdecimal.ErrInvalidRoundingMode)
	require.Equal(t, bikdecimal.RoundHalfUp, mode)
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug", "json")
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = newLogger("warn", "console")
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = newLogger("loud", "console")
	require.Error(t, err)
	require.True(t, Error.Has(err))

	_, err = newLogger("info", "xml")
	require.Error(t, err)
}

func TestLogLevelEnv(t *testing.T) {
	t.Setenv(logLevelEnv, "debug")
	cmd := newRootCmd(&config{})
	require.Equal(t, "debug", cmd.PersistentFlags().Lookup("log-level").DefValue)

	t.Setenv(logLevelEnv, "")
	cmd = newRootCmd(&config{})
	require.Equal(t, "warn", cmd.PersistentFlags().Lookup("log-level").DefValue)
}
