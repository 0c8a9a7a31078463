package commands

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tanocee/bikdecimal"
)

// demoDivisionScale is used by the division example when --scale requests
// exact division, since 123.45 / 67.89 does not terminate.
const demoDivisionScale = 10

// demo: print a tour of the decimal API.
func demoCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print examples of decimal arithmetic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scale := cfg.scale
			if scale < 0 {
				scale = demoDivisionScale
			}
			return writeDemo(cmd.OutOrStdout(), scale, cfg.mode)
		},
	}
	return cmd
}

type product struct {
	name  string
	price string
}

func writeDemo(out io.Writer, scale int, mode bikdecimal.RoundingMode) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	section := func(title string) {
		fmt.Fprintf(w, "%s\n", title)
	}
	row := func(label, operation string, result any) {
		fmt.Fprintf(w, "  %s\t%s\t%v\n", label, operation, result)
	}

	section("Basic Arithmetic Operations")
	a := bikdecimal.MustParse("123.45")
	b := bikdecimal.MustParse("67.89")
	row("Addition", "123.45 + 67.89", a.Add(b))
	row("Subtraction", "123.45 - 67.89", a.Sub(b))
	row("Multiplication", "123.45 * 67.89", a.Mul(b))
	q, err := a.QuoScale(b, scale, mode)
	if err != nil {
		return Error.Wrap(err)
	}
	row("Division", fmt.Sprintf("123.45 / 67.89 (scale %v, %v)", scale, mode), q)

	section("Constructors")
	row("From string", `"999.99"`, bikdecimal.MustParse("999.99"))
	row("From float64", "3.14159", bikdecimal.MustNewFromFloat64(3.14159))
	row("From int64", "42", bikdecimal.NewFromInt64(42))

	section("Constants")
	row("Zero", "bikdecimal.Zero", bikdecimal.Zero)
	row("One", "bikdecimal.One", bikdecimal.One)

	section("Comparison")
	x := bikdecimal.MustParse("100")
	y := bikdecimal.MustParse("200")
	z := bikdecimal.MustParse("100.00")
	row("100 vs 200", "Cmp", x.Cmp(y))
	row("200 vs 100", "Cmp", y.Cmp(x))
	row("100 vs 100.00", "Cmp", x.Cmp(z))

	section("Negative")
	v := bikdecimal.MustParse("42.5")
	row("Original", "42.5", v)
	row("Negative", "Neg", v.Neg())

	section("Conversions")
	c := bikdecimal.MustParse("123.456")
	row("String", "123.456", c.String())
	row("Float64", "123.456", strconv.FormatFloat(c.Float64(), 'g', -1, 64))
	row("Int64", "123.456", c.Int64())

	section("Safe Parsing")
	row("Valid", `ParseOr("100.5", Zero)`, bikdecimal.ParseOr("100.5", bikdecimal.Zero))
	row("Invalid", `ParseOr("invalid", Zero)`, bikdecimal.ParseOr("invalid", bikdecimal.Zero))

	section("Collection Operations")
	products := []product{
		{"Apple", "1.20"},
		{"Banana", "0.80"},
		{"Orange", "1.50"},
	}
	for _, p := range products {
		row(p.name, "", p.price)
	}
	total := bikdecimal.SumOf(products, func(p product) bikdecimal.Decimal {
		return bikdecimal.ParseOr(p.price, bikdecimal.Zero)
	})
	row("Total", "SumOf", total)

	return w.Flush()
}
