package calc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	toks, err := tokenize("-(1.5e+3 * .2)/ 4E2")
	require.NoError(t, err)

	var kinds []tokenKind
	var texts []string
	for _, tok := range toks {
		kinds = append(kinds, tok.kind)
		texts = append(texts, tok.text)
	}
	require.Equal(t, []tokenKind{
		tokOperator, tokLParen, tokNumber, tokOperator, tokNumber, tokRParen, tokOperator, tokNumber, tokEOF,
	}, kinds)
	require.Equal(t, []string{"-", "(", "1.5e+3", "*", ".2", ")", "/", "4E2", ""}, texts)
	require.Equal(t, 19, toks[len(toks)-1].pos)
}

func TestTokenize_Error(t *testing.T) {
	for _, expr := range []string{"1 % 2", "2e", "x", "1,5"} {
		t.Run(expr, func(t *testing.T) {
			_, err := tokenize(expr)
			require.Error(t, err)
			require.True(t, Error.Has(err))
		})
	}
}

func TestScanNumber(t *testing.T) {
	type TC struct {
		s    string
		want int
	}

	tcs := []TC{
		{"123", 3},
		{"1.5e3", 5},
		{"1.5e-3)", 6},
		{"2e", 1},
		{"2e+", 1},
		{"2E+1", 4},
		{"1..2", 4},
	}

	for _, tc := range tcs {
		require.Equal(t, tc.want, scanNumber(tc.s, 0), tc.s)
	}
}
