// Package expr parses and evaluates integer arithmetic expressions in a
// single left-to-right pass.
//
// The grammar, from lowest to highest precedence:
//
//	AddSub   = MulDiv { ('+' | '-') MulDiv }
//	MulDiv   = Exponent { ('*' | '/') Exponent }
//	Exponent = Unary [ '^' Exponent ]
//	Unary    = { '-' | '+' } Parens
//	Parens   = '(' AddSub ')' | Literal
//	Literal  = digit { digit }
//
// Each rule is one parsing function and precedence comes from the call
// order alone: there is no token list, no syntax tree and no operator
// stack, because evaluation happens during the parse. Left-associative
// tiers accumulate their result in a loop; '^' instead recurses into its
// own tier for the right operand, which makes it right-associative
// ("2^3^2" is 2^(3^2), not (2^3)^2).
package expr

// parser threads the cursor and the error state through one evaluation.
// A parser value serves exactly one Eval call and is never shared: the
// cursor only moves forward, and once an error is recorded no tier
// advances it again.
type parser struct {
	input  []byte
	pos    int
	code   ErrorCode
	errPos int
}

// Eval parses and evaluates an arithmetic expression. On failure the
// returned error is a *Error carrying the byte offset at which parsing
// stopped.
//
// Parentheses nest by recursion, so inputs with pathologically deep
// nesting are limited by the goroutine stack rather than an explicit
// depth check.
func Eval(input string) (int64, error) {
	p := &parser{input: []byte(input)}
	result := p.parseInput()
	if p.code != ErrNone {
		return 0, &Error{Code: p.code, Offset: p.errPos, Input: input}
	}
	return result, nil
}

// fail records the first error together with the cursor position at which
// it was detected. The first error wins: later calls are no-ops, and the
// recorded position is never re-derived.
func (p *parser) fail(code ErrorCode) {
	if p.code != ErrNone {
		return
	}
	p.code = code
	p.errPos = p.pos
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
		p.pos++
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parseInput is the entry point: one full expression followed by nothing
// but whitespace. Leftover input means the lowest tier stopped at a
// character no rule could accept.
func (p *parser) parseInput() int64 {
	result := p.parseAddSub()
	if p.code != ErrNone {
		return 0
	}
	p.skipWhitespace()
	if p.pos < len(p.input) {
		p.fail(ErrSyntax)
		return 0
	}
	return result
}

// parseAddSub handles '+' and '-', the lowest-precedence tier. It is also
// the rule parseParens re-enters for the body of a parenthesized
// sub-expression, so the whole grammar hangs off this one function.
func (p *parser) parseAddSub() int64 {
	result := p.parseMulDiv()
	if p.code != ErrNone {
		return 0
	}
	for {
		p.skipWhitespace()
		c := p.peek()
		if c != '+' && c != '-' {
			return result
		}
		p.pos++
		rhs := p.parseMulDiv()
		if p.code != ErrNone {
			return 0
		}
		if c == '+' {
			result += rhs
		} else {
			result -= rhs
		}
	}
}

// parseMulDiv handles '*' and '/'. Same shape as parseAddSub one tier up,
// plus the division-by-zero check on the right operand.
func (p *parser) parseMulDiv() int64 {
	result := p.parseExponent()
	if p.code != ErrNone {
		return 0
	}
	for {
		p.skipWhitespace()
		c := p.peek()
		if c != '*' && c != '/' {
			return result
		}
		p.pos++
		rhs := p.parseExponent()
		if p.code != ErrNone {
			return 0
		}
		if c == '*' {
			result *= rhs
			continue
		}
		if rhs == 0 {
			p.fail(ErrDivisionByZero)
			return 0
		}
		result /= rhs
	}
}

// parseExponent handles '^'. Recursing into this same tier for the right
// operand, instead of looping over the next-higher one, is what makes the
// operator right-associative: the rightmost '^' binds first.
func (p *parser) parseExponent() int64 {
	base := p.parseUnary()
	if p.code != ErrNone {
		return 0
	}
	p.skipWhitespace()
	if p.peek() != '^' {
		return base
	}
	p.pos++
	exp := p.parseExponent()
	if p.code != ErrNone {
		return 0
	}
	return p.power(base, exp)
}

// power applies the integer exponentiation policy: x^0 is 1 for every x
// including 0, a negative exponent of base 0 is a division by zero, and a
// negative exponent of any other base truncates to 0.
func (p *parser) power(base, exp int64) int64 {
	if exp == 0 {
		return 1
	}
	if exp < 0 {
		if base == 0 {
			p.fail(ErrDivisionByZero)
			return 0
		}
		return 0
	}
	result := base
	for ; exp > 1; exp-- {
		result *= base
	}
	return result
}

// parseUnary consumes any run of unary '-' and '+' signs and negates the
// operand on an odd count of minuses. Accepting a whole run keeps chained
// signs consistent: "2--5" and "2----5" both evaluate to 7.
//
// Note that unary minus sits below '^' in the tier chain and therefore
// binds tighter: "-2^4" is (-2)^4 = 16, not -(2^4).
func (p *parser) parseUnary() int64 {
	negate := false
	for {
		p.skipWhitespace()
		c := p.peek()
		if c != '-' && c != '+' {
			break
		}
		if c == '-' {
			negate = !negate
		}
		p.pos++
	}
	result := p.parseParens()
	if p.code != ErrNone {
		return 0
	}
	if negate {
		return -result
	}
	return result
}

// parseParens handles grouping. Without a '(' it falls through to the
// literal tier; with one it re-enters the lowest tier for the body and
// then requires the matching ')'.
func (p *parser) parseParens() int64 {
	p.skipWhitespace()
	if p.peek() != '(' {
		return p.parseLiteral()
	}
	p.pos++
	result := p.parseAddSub()
	if p.code != ErrNone {
		return 0
	}
	p.skipWhitespace()
	if p.peek() != ')' {
		p.fail(ErrUnclosedParen)
		return 0
	}
	p.pos++
	return result
}

// parseLiteral scans a run of decimal digits. Signs belong to parseUnary
// one tier down, so a literal here is digits only; int64 overflow wraps.
func (p *parser) parseLiteral() int64 {
	p.skipWhitespace()
	start := p.pos
	var result int64
	for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
		result = result*10 + int64(p.input[p.pos]-'0')
		p.pos++
	}
	if p.pos == start {
		p.fail(ErrSyntax)
		return 0
	}
	return result
}
