package parser

import "strconv"

// readNumber implements spec.md §4.2: greedily consume a numeric
// lexeme (optional '-', then '0' or a digit run, then an optional
// fractional part, then an optional exponent) and convert it with
// strconv.ParseFloat. No recovery is attempted mid-number; whatever
// garbage follows a successful lexeme is left for the caller, the
// same "make at least one char of progress, let the enclosing
// context sort out the rest" philosophy as the teacher's
// scanner.scanNumber.
func (p *parser) readNumber() Value {
	start := p.sc.Pos()

	if p.sc.Peek() == '-' {
		p.sc.Advance()
	}

	if p.sc.Peek() == '0' {
		p.sc.Advance()
	} else {
		for isDecimalDigit(p.sc.Peek()) {
			p.sc.Advance()
		}
	}

	if p.sc.Peek() == '.' {
		p.sc.Advance()
		for isDecimalDigit(p.sc.Peek()) {
			p.sc.Advance()
		}
	}

	if p.sc.Peek() == 'e' || p.sc.Peek() == 'E' {
		p.sc.Advance()
		if p.sc.Peek() == '+' || p.sc.Peek() == '-' {
			p.sc.Advance()
		}
		for isDecimalDigit(p.sc.Peek()) {
			p.sc.Advance()
		}
	}

	lexeme := p.sc.Slice(start, p.sc.Pos())
	n, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		p.recoverf(start, "Invalid number at pos %d", start)
		return NumberVal(0)
	}
	return NumberVal(n)
}

func isDecimalDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
