package dot

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for DOT parsing.
var (
	// ErrSyntax is returned for any malformed token or statement.
	ErrSyntax = errors.New("dot: syntax error")

	// ErrEdgeOp is returned when the edge operator does not match the
	// graph kind (`--` in graph, `->` in digraph).
	ErrEdgeOp = errors.New("dot: edge operator does not match graph kind")
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokID            // identifier, numeral, or quoted string (unquoted text)
	tokLBrace
	tokRBrace
	tokLBracket
	tokRBracket
	tokSemi
	tokComma
	tokEqual
	tokUndirEdge // --
	tokDirEdge   // ->
)

type token struct {
	kind tokenKind
	text string
	line int
}

// scanner is a single-pass tokenizer over the whole input.
type scanner struct {
	data []byte
	pos  int
	line int
}

func newScanner(data []byte) *scanner {
	return &scanner{data: data, line: 1}
}

func (s *scanner) errf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, s.line, fmt.Sprintf(format, args...))
}

func (s *scanner) peek() byte {
	if s.pos >= len(s.data) {
		return 0
	}
	return s.data[s.pos]
}

func (s *scanner) advance() byte {
	c := s.data[s.pos]
	s.pos++
	if c == '\n' {
		s.line++
	}
	return c
}

// skipBlanks consumes whitespace and the three comment forms.
func (s *scanner) skipBlanks() error {
	for s.pos < len(s.data) {
		c := s.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.advance()
		case c == '#':
			for s.pos < len(s.data) && s.peek() != '\n' {
				s.advance()
			}
		case c == '/' && s.pos+1 < len(s.data) && s.data[s.pos+1] == '/':
			for s.pos < len(s.data) && s.peek() != '\n' {
				s.advance()
			}
		case c == '/' && s.pos+1 < len(s.data) && s.data[s.pos+1] == '*':
			s.advance()
			s.advance()
			closed := false
			for s.pos+1 < len(s.data) {
				if s.peek() == '*' && s.data[s.pos+1] == '/' {
					s.advance()
					s.advance()
					closed = true
					break
				}
				s.advance()
			}
			if !closed {
				return s.errf("unterminated comment")
			}
		default:
			return nil
		}
	}
	return nil
}

// next returns the following token.
func (s *scanner) next() (token, error) {
	if err := s.skipBlanks(); err != nil {
		return token{}, err
	}
	line := s.line
	if s.pos >= len(s.data) {
		return token{kind: tokEOF, line: line}, nil
	}
	c := s.peek()
	switch c {
	case '{':
		s.advance()
		return token{kind: tokLBrace, line: line}, nil
	case '}':
		s.advance()
		return token{kind: tokRBrace, line: line}, nil
	case '[':
		s.advance()
		return token{kind: tokLBracket, line: line}, nil
	case ']':
		s.advance()
		return token{kind: tokRBracket, line: line}, nil
	case ';':
		s.advance()
		return token{kind: tokSemi, line: line}, nil
	case ',':
		s.advance()
		return token{kind: tokComma, line: line}, nil
	case '=':
		s.advance()
		return token{kind: tokEqual, line: line}, nil
	case '"':
		return s.quoted()
	case '-':
		s.advance()
		switch s.peek() {
		case '-':
			s.advance()
			return token{kind: tokUndirEdge, line: line}, nil
		case '>':
			s.advance()
			return token{kind: tokDirEdge, line: line}, nil
		}
		if isDigit(s.peek()) || s.peek() == '.' {
			t, err := s.bare()
			if err != nil {
				return token{}, err
			}
			t.text = "-" + t.text
			t.line = line
			return t, nil
		}
		return token{}, s.errf("dangling '-'")
	}
	if isIdentByte(c) {
		return s.bare()
	}
	return token{}, s.errf("unexpected character %q", string(c))
}

// quoted consumes a double-quoted string with \" and \\ escapes.
func (s *scanner) quoted() (token, error) {
	line := s.line
	s.advance() // opening quote
	var b strings.Builder
	for s.pos < len(s.data) {
		c := s.advance()
		switch c {
		case '\\':
			if s.pos >= len(s.data) {
				return token{}, s.errf("unterminated string escape")
			}
			e := s.advance()
			switch e {
			case '"', '\\':
				b.WriteByte(e)
			case '\n':
				// line continuation
			default:
				b.WriteByte('\\')
				b.WriteByte(e)
			}
		case '"':
			return token{kind: tokID, text: b.String(), line: line}, nil
		default:
			b.WriteByte(c)
		}
	}
	return token{}, s.errf("unterminated string")
}

// bare consumes an unquoted identifier or numeral.
func (s *scanner) bare() (token, error) {
	line := s.line
	start := s.pos
	for s.pos < len(s.data) && isIdentByte(s.peek()) {
		s.advance()
	}
	return token{kind: tokID, text: string(s.data[start:s.pos]), line: line}, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentByte(c byte) bool {
	return c == '_' || c == '.' || isDigit(c) ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}
