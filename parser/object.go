package parser

import "strings"

// readObject implements spec.md §4.5. The cursor is on '{' at entry.
func (p *parser) readObject() Value {
	p.containerDepth++
	if p.containerDepth > p.opts.MaxDepth {
		pos := p.sc.Pos()
		p.recoverf(pos, "Max depth exceeded at pos %d", pos)
		p.skipBalanced('{', '}')
		p.containerDepth--
		return ObjectVal(NewObj())
	}

	p.sc.Advance() // consume '{'
	obj := NewObj()

	for {
		p.sc.SkipWhitespaceAndComments(p.opts.AllowComments)

		if p.sc.EOF() {
			break
		}
		if p.sc.Peek() == ',' {
			pos := p.sc.Pos()
			p.sc.Advance()
			if !p.opts.AllowTrailingComma {
				p.sc.SkipWhitespaceAndComments(p.opts.AllowComments)
				if p.sc.Peek() == '}' {
					p.recoverf(pos, "Trailing comma at pos %d", pos)
				}
			}
			continue
		}
		if p.sc.Peek() == '}' {
			break
		}
		if p.sc.Peek() == ']' {
			pos := p.sc.Pos()
			p.recover(pos, "Unexpected ']' inside object")
			p.sc.Advance()
			continue
		}

		key, ok := p.readObjectKey()
		if !ok {
			continue
		}

		p.sc.SkipWhitespaceAndComments(p.opts.AllowComments)
		key = p.sanitizeKey(key)

		if p.sc.Peek() != ':' {
			b, hasByte := p.sc.PeekByte()
			if p.sc.EOF() || (hasByte && (b == ',' || b == '}')) {
				obj.Set(key, NullValue())
				continue
			}
			pos := p.sc.Pos()
			p.recover(pos, "Expected ':' after key")
		} else {
			p.sc.Advance() // consume ':'
		}

		p.sc.SkipWhitespaceAndComments(p.opts.AllowComments)
		if p.sc.EOF() {
			obj.Set(key, NullValue())
			pos := p.sc.Pos()
			p.recoverf(pos, "Truncated object at pos %d", pos)
			break
		}

		val := p.dispatch()
		if val.Kind() == absent {
			val = NullValue()
		}
		obj.Set(key, val)

		p.sc.SkipWhitespaceAndComments(p.opts.AllowComments)
		switch {
		case p.sc.Peek() == ',':
			pos := p.sc.Pos()
			p.sc.Advance()
			if !p.opts.AllowTrailingComma {
				p.sc.SkipWhitespaceAndComments(p.opts.AllowComments)
				if p.sc.Peek() == '}' {
					p.recoverf(pos, "Trailing comma at pos %d", pos)
				}
			}
		case p.sc.Peek() == '}':
			// fall through to loop condition
		case p.sc.EOF():
			// loop condition breaks on next iteration
		default:
			pos := p.sc.Pos()
			p.recover(pos, "Expected ',' or '}'")
		}
	}

	if p.sc.Peek() == '}' {
		p.sc.Advance()
	} else {
		pos := p.sc.Pos()
		p.recover(pos, "Unclosed object, auto-closing")
	}

	p.containerDepth--
	return ObjectVal(obj)
}

// readObjectKey implements step 5 of spec.md §4.5. ok is false when
// the loop should continue without adding a member.
func (p *parser) readObjectKey() (key string, ok bool) {
	switch {
	case p.sc.Peek() == '"' || p.sc.Peek() == '\'':
		return p.readString().StringValue(), true
	case isIdentStart(p.sc.Peek()):
		pos := p.sc.Pos()
		word := p.scanBareWord()
		p.recover(pos, "Unquoted key")
		return word, true
	default:
		pos := p.sc.Pos()
		p.recover(pos, "Expected key")
		p.sc.Advance()
		return "", false
	}
}

// sanitizeKey implements the leading-comma key sanitation of spec.md
// §4.5 step 6.
func (p *parser) sanitizeKey(key string) string {
	trimmed := strings.TrimLeft(key, ",")
	trimmed = strings.TrimLeft(trimmed, " \t\n\r")
	if trimmed != key {
		pos := p.sc.Pos()
		p.recover(pos, "Leading comma in key, trimmed")
	}
	return trimmed
}

// skipBalanced consumes a balanced open/close span starting at the
// cursor, which must be positioned on open. It is EOF-safe: if the
// span is never closed, it simply stops at EOF.
func (p *parser) skipBalanced(open, close rune) {
	depth := 0
	for !p.sc.EOF() {
		ch := p.sc.Peek()
		p.sc.Advance()
		switch ch {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return
			}
		}
	}
}
