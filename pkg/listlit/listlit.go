// Package listlit parses bracketed list literals that the new-games tables
// embed in single CSV cells, such as ["Men's 100m", 'Women\'s 4 x 100m'].
//
// Only string elements are accepted. Parse is strict; ParseLenient falls back
// to treating a malformed cell as one bare element, which is how a cell like
// [Swimming] (missing quotes) is read.
package listlit

import (
	"fmt"
	"strings"
)

// SyntaxError describes where a literal stopped being well formed.
type SyntaxError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("list literal %q: %s at offset %d", e.Input, e.Msg, e.Offset)
}

// Parse reads a list literal of quoted strings.
func Parse(s string) ([]string, error) {
	p := &parser{src: s}
	p.skipSpace()
	if !p.consume('[') {
		return nil, p.fail("expected '['")
	}

	out := []string{}
	p.skipSpace()
	if p.consume(']') {
		return out, p.end()
	}

	for {
		p.skipSpace()
		item, err := p.str()
		if err != nil {
			return nil, err
		}
		out = append(out, item)

		p.skipSpace()
		switch {
		case p.consume(']'):
			return out, p.end()
		case p.consume(','):
			p.skipSpace()
			// trailing comma before the closing bracket
			if p.consume(']') {
				return out, p.end()
			}
		default:
			return nil, p.fail("expected ',' or ']'")
		}
	}
}

// ParseLenient parses s and, when it is not a well-formed literal, strips
// every bracket and returns the remainder as a single element.
func ParseLenient(s string) []string {
	if items, err := Parse(s); err == nil {
		return items
	}
	bare := strings.NewReplacer("[", "", "]", "").Replace(s)
	return []string{bare}
}

type parser struct {
	src string
	pos int
}

func (p *parser) fail(msg string) error {
	return &SyntaxError{Input: p.src, Offset: p.pos, Msg: msg}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) consume(b byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == b {
		p.pos++
		return true
	}
	return false
}

func (p *parser) end() error {
	p.skipSpace()
	if p.pos != len(p.src) {
		return p.fail("unexpected trailing input")
	}
	return nil
}

// str reads one single- or double-quoted string with backslash escapes.
func (p *parser) str() (string, error) {
	if p.pos >= len(p.src) {
		return "", p.fail("unexpected end of input")
	}
	quote := p.src[p.pos]
	if quote != '\'' && quote != '"' {
		return "", p.fail("expected quoted string")
	}
	p.pos++

	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == quote:
			p.pos++
			return b.String(), nil
		case c == '\\' && p.pos+1 < len(p.src):
			b.WriteByte(unescape(p.src[p.pos+1]))
			p.pos += 2
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", p.fail("unterminated string")
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return c
	}
}
