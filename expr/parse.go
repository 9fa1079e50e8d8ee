package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/scanner"

	"calctools/calcerr"
)

// Grammar, in precedence order:
//
//	expression := term (('+'|'-') term)*
//	term       := unary (('*'|'/') unary)*
//	unary      := ('+'|'-') unary | power
//	power      := atom ('^' unary)?          right associative
//	atom       := number | ident | ident '(' expression ')' | '(' expression ')'
//
// Division a/b is represented as a * b^-1 and negation as -1 * e, so the
// node set stays small and the differentiation rules compose.

var functions = map[string]func(Expr) Expr{
	"sin":  SinOf,
	"cos":  CosOf,
	"tan":  TanOf,
	"exp":  ExpOf,
	"ln":   LnOf,
	"log":  LnOf,
	"sqrt": SqrtOf,
	"abs":  AbsOf,
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

type parser struct {
	sc      scanner.Scanner
	tok     rune
	lit     string
	pos     int
	scanErr string
}

// Parse turns a textual formula into an expression tree. Malformed input
// yields a ParseError carrying the byte offset of the offending token.
func Parse(input string) (Expr, error) {
	p := &parser{}
	p.sc.Init(strings.NewReader(input))
	p.sc.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats
	p.sc.Error = func(_ *scanner.Scanner, msg string) {
		if p.scanErr == "" {
			p.scanErr = msg
		}
	}
	p.next()
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.scanErr != "" {
		return nil, &calcerr.ParseError{Pos: p.pos, Msg: p.scanErr}
	}
	if p.tok != scanner.EOF {
		return nil, p.errorf("unexpected %q", p.lit)
	}
	return e, nil
}

// MustParse is a test and example helper; it panics on malformed input.
func MustParse(input string) Expr {
	e, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return e
}

func (p *parser) next() {
	p.tok = p.sc.Scan()
	p.lit = p.sc.TokenText()
	p.pos = p.sc.Position.Offset
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &calcerr.ParseError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expression() (Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.tok == '+' || p.tok == '-' {
		op := p.tok
		p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			left = AddOf(left, right)
		} else {
			left = AddOf(left, Neg(right))
		}
	}
	return left, nil
}

func (p *parser) term() (Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.tok == '*' || p.tok == '/' {
		op := p.tok
		p.next()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		if op == '*' {
			left = MulOf(left, right)
		} else {
			left = MulOf(left, PowOf(right, Num(-1)))
		}
	}
	return left, nil
}

func (p *parser) unary() (Expr, error) {
	switch p.tok {
	case '-':
		p.next()
		e, err := p.unary()
		if err != nil {
			return nil, err
		}
		return Neg(e), nil
	case '+':
		p.next()
		return p.unary()
	}
	return p.power()
}

func (p *parser) power() (Expr, error) {
	base, err := p.atom()
	if err != nil {
		return nil, err
	}
	if p.tok != '^' {
		return base, nil
	}
	p.next()
	// Right associative, and the exponent may carry its own sign: x^-2.
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}
	return PowOf(base, exp), nil
}

func (p *parser) atom() (Expr, error) {
	switch p.tok {
	case scanner.Int, scanner.Float:
		v, err := strconv.ParseFloat(p.lit, 64)
		if err != nil {
			return nil, p.errorf("bad number %q", p.lit)
		}
		p.next()
		return Num(v), nil

	case scanner.Ident:
		name := p.lit
		p.next()
		if p.tok == '(' {
			fn, ok := functions[name]
			if !ok {
				return nil, p.errorf("unknown function %q", name)
			}
			p.next()
			if p.tok == ')' {
				return nil, p.errorf("%s expects one argument", name)
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			if p.tok != ')' {
				return nil, p.errorf("expected ) after %s argument, got %q", name, p.lit)
			}
			p.next()
			return fn(arg), nil
		}
		if v, ok := constants[name]; ok {
			return Num(v), nil
		}
		return Var(name), nil

	case '(':
		p.next()
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		if p.tok != ')' {
			return nil, p.errorf("expected ), got %q", p.lit)
		}
		p.next()
		return e, nil

	case scanner.EOF:
		return nil, p.errorf("unexpected end of expression")
	}
	return nil, p.errorf("unexpected %q", p.lit)
}
