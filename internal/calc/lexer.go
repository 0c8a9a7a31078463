package calc

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokOperator
	tokLParen
	tokRParen
	tokEOF
)

func (k tokenKind) String() string {
	switch k {
	case tokNumber:
		return "number"
	case tokOperator:
		return "operator"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	default:
		return "end of expression"
	}
}

type token struct {
	kind tokenKind
	text string
	pos  int // byte offset in the expression
}

// tokenize splits an infix expression into tokens.
// The last token is always of kind tokEOF.
func tokenize(expr string) ([]token, error) {
	var toks []token
	for pos := 0; pos < len(expr); {
		c := expr[pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			pos++
		case c == '+' || c == '-' || c == '*' || c == '/':
			toks = append(toks, token{kind: tokOperator, text: expr[pos : pos+1], pos: pos})
			pos++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: pos})
			pos++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: pos})
			pos++
		case isDigit(c) || c == '.':
			end := scanNumber(expr, pos)
			toks = append(toks, token{kind: tokNumber, text: expr[pos:end], pos: pos})
			pos = end
		default:
			return nil, Error.New("unexpected character %q at position %d", c, pos)
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(expr)}), nil
}

// scanNumber returns the end of the number literal starting at pos.
// An exponent is consumed only when it has at least one digit, so that
// "2e" is left for the caller to reject.
func scanNumber(s string, pos int) int {
	for pos < len(s) && (isDigit(s[pos]) || s[pos] == '.') {
		pos++
	}
	if pos < len(s) && (s[pos] == 'e' || s[pos] == 'E') {
		end := pos + 1
		if end < len(s) && (s[end] == '+' || s[end] == '-') {
			end++
		}
		if end < len(s) && isDigit(s[end]) {
			for end < len(s) && isDigit(s[end]) {
				end++
			}
			return end
		}
	}
	return pos
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
