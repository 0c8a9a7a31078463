// Package calc evaluates arithmetic expressions over decimals.
//
// Two notations are supported: the usual infix notation with parentheses
// and unary signs, and prefix (Polish) notation with space separated tokens.
// Addition, subtraction and multiplication are always exact. Division is
// exact or rounded depending on the settings of the [Evaluator].
package calc

import (
	"slices"
	"strings"

	"github.com/tanocee/bikdecimal"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

// Error is the error class of this package.
// Errors reported by the decimal engine are wrapped, so they can still be
// matched with errors.Is.
var Error = errs.Class("calc")

// Evaluator evaluates expressions.
// The zero value performs division rounded to scale 0 using [bikdecimal.RoundUp],
// use [New] for exact division.
type Evaluator struct {
	// Scale is the number of digits after the decimal point kept by
	// division. A negative scale requests exact division.
	Scale int

	// Mode rounds quotients when Scale is not negative.
	Mode bikdecimal.RoundingMode

	// Logger receives a debug entry for every operator application.
	// A nil Logger discards them.
	Logger *zap.Logger
}

// New returns an evaluator with exact division and [bikdecimal.RoundHalfEven]
// as the rounding mode for a scale set later.
func New(logger *zap.Logger) *Evaluator {
	return &Evaluator{
		Scale:  bikdecimal.NaturalScale,
		Mode:   bikdecimal.RoundHalfEven,
		Logger: logger,
	}
}

func (ev *Evaluator) logger() *zap.Logger {
	if ev.Logger == nil {
		return zap.NewNop()
	}
	return ev.Logger
}

// Apply applies the binary operator op, one of "+", "-", "*" and "/",
// to left and right.
func (ev *Evaluator) Apply(op string, left, right bikdecimal.Decimal) (bikdecimal.Decimal, error) {
	var (
		res bikdecimal.Decimal
		err error
	)
	switch op {
	case "+":
		res = left.Add(right)
	case "-":
		res = left.Sub(right)
	case "*":
		res = left.Mul(right)
	case "/":
		if ev.Scale < 0 {
			res, err = left.Quo(right)
		} else {
			res, err = left.QuoScale(right, ev.Scale, ev.Mode)
		}
	default:
		return bikdecimal.Decimal{}, Error.New("unknown operator %q", op)
	}
	if err != nil {
		ev.logger().Debug("operator failed",
			zap.Stringer("left", left),
			zap.String("op", op),
			zap.Stringer("right", right),
			zap.Error(err),
		)
		return bikdecimal.Decimal{}, Error.New("evaluating \"%s %s %s\": %w", left, op, right, err)
	}
	ev.logger().Debug("operator applied",
		zap.Stringer("left", left),
		zap.String("op", op),
		zap.Stringer("right", right),
		zap.Stringer("result", res),
	)
	return res, nil
}

// Eval evaluates an infix expression such as "(1.5 + 2) * -3".
// Multiplication and division bind tighter than addition and subtraction,
// operators of the same precedence are applied from left to right.
func (ev *Evaluator) Eval(expr string) (d bikdecimal.Decimal, err error) {
	defer Error.WrapP(&err)

	toks, err := tokenize(expr)
	if err != nil {
		return bikdecimal.Decimal{}, err
	}
	p := &parser{ev: ev, toks: toks}
	d, err = p.expr()
	if err != nil {
		return bikdecimal.Decimal{}, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return bikdecimal.Decimal{}, Error.New("unexpected %v %q at position %d", t.kind, t.text, t.pos)
	}
	ev.logger().Debug("expression evaluated", zap.String("expr", expr), zap.Stringer("result", d))
	return d, nil
}

// EvalPrefix evaluates an expression written in prefix (Polish) notation,
// such as "* 10 + 1.23 4.56".
// Tokens must be separated by white space.
func (ev *Evaluator) EvalPrefix(expr string) (d bikdecimal.Decimal, err error) {
	defer Error.WrapP(&err)

	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return bikdecimal.Decimal{}, Error.New("no tokens")
	}
	stack := make([]bikdecimal.Decimal, 0, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/":
			if len(stack) < 2 {
				return bikdecimal.Decimal{}, Error.New("processing token %q: not enough operands", token)
			}
			left := stack[len(stack)-1]
			right := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			res, err := ev.Apply(token, left, right)
			if err != nil {
				return bikdecimal.Decimal{}, err
			}
			stack = append(stack, res)
		default:
			x, err := bikdecimal.Parse(token)
			if err != nil {
				return bikdecimal.Decimal{}, Error.New("processing token %q: %w", token, err)
			}
			stack = append(stack, x)
		}
	}
	if len(stack) != 1 {
		return bikdecimal.Decimal{}, Error.New("post-processed stack contains %v, expected exactly one item", stack)
	}
	ev.logger().Debug("expression evaluated", zap.String("expr", expr), zap.Stringer("result", stack[0]))
	return stack[0], nil
}

// parser is a recursive descent parser for the grammar:
//
//	expr    ::= term { ('+' | '-') term }
//	term    ::= unary { ('*' | '/') unary }
//	unary   ::= ('+' | '-') unary | primary
//	primary ::= number | '(' expr ')'
type parser struct {
	ev   *Evaluator
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expr() (bikdecimal.Decimal, error) {
	return p.binary(p.term, "+", "-")
}

func (p *parser) term() (bikdecimal.Decimal, error) {
	return p.binary(p.unary, "*", "/")
}

// binary parses a left-associative chain of operands joined by ops.
func (p *parser) binary(operand func() (bikdecimal.Decimal, error), ops ...string) (bikdecimal.Decimal, error) {
	left, err := operand()
	if err != nil {
		return bikdecimal.Decimal{}, err
	}
	for {
		t := p.peek()
		if t.kind != tokOperator || !slices.Contains(ops, t.text) {
			return left, nil
		}
		p.next()
		right, err := operand()
		if err != nil {
			return bikdecimal.Decimal{}, err
		}
		left, err = p.ev.Apply(t.text, left, right)
		if err != nil {
			return bikdecimal.Decimal{}, err
		}
	}
}

func (p *parser) unary() (bikdecimal.Decimal, error) {
	t := p.peek()
	if t.kind == tokOperator && (t.text == "-" || t.text == "+") {
		p.next()
		d, err := p.unary()
		if err != nil {
			return bikdecimal.Decimal{}, err
		}
		if t.text == "-" {
			d = d.Neg()
		}
		return d, nil
	}
	return p.primary()
}

func (p *parser) primary() (bikdecimal.Decimal, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		d, err := bikdecimal.Parse(t.text)
		if err != nil {
			return bikdecimal.Decimal{}, Error.New("number %q at position %d: %w", t.text, t.pos, err)
		}
		return d, nil
	case tokLParen:
		d, err := p.expr()
		if err != nil {
			return bikdecimal.Decimal{}, err
		}
		if c := p.next(); c.kind != tokRParen {
			return bikdecimal.Decimal{}, Error.New("expected ')' at position %d, found %v", c.pos, c.kind)
		}
		return d, nil
	default:
		return bikdecimal.Decimal{}, Error.New("unexpected %v at position %d", t.kind, t.pos)
	}
}
