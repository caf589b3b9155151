// Package lexer breaks source text down into individual tokens. It filters
// out whitespace and line comments and returns any unexpected input as an
// Invalid token; scanning itself never fails.
package lexer

// Scanner performs lexical analysis over a complete, in-memory source string.
// The cursor only moves forward, with one character of lookahead for the
// two-character operators and comment detection. A Scanner is not safe for
// concurrent use.
type Scanner struct {
	source    string
	cursor    int
	line      int
	lineStart int // cursor position just past the most recent newline
}

// New creates a scanner for the given source. An empty source is valid and
// lexes to a single EOF token.
func New(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(source string) {
	s.source = source
	s.cursor = 0
	s.line = 1
	s.lineStart = 0
}

// Next returns the next token from the source. Once the input is exhausted
// every further call keeps returning an EOF token.
func (s *Scanner) Next() Token {
	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return Token{Kind: KindEOF, Offset: s.cursor, Line: s.line, Column: s.column(s.cursor)}
	}

	start := s.cursor
	line, column := s.line, s.column(start)
	ch := s.source[s.cursor]
	s.cursor++

	// Comments start with // and run to the end of the line. They produce
	// no token, so resume scanning after the skipped span.
	if ch == '/' && s.peek() == '/' {
		s.skipComment()
		return s.Next()
	}

	if isAlpha(ch) {
		return s.scanIdentifier(start, line, column)
	}
	if isDigit(ch) {
		return s.scanNumber(start, line, column)
	}
	if ch == '"' {
		return s.scanString(start, line, column)
	}

	kind := KindInvalid
	switch ch {
	case '=':
		kind = KindAssign
		if s.peek() == '=' {
			kind = KindEqual
			s.cursor++
		}
	case '*':
		kind = KindMultiply
	case '/':
		kind = KindDivide
	case '+':
		kind = KindPlus
	case '-':
		kind = KindMinus
	case '>':
		kind = KindGreater
		if s.peek() == '=' {
			kind = KindGreaterEqual
			s.cursor++
		}
	case '<':
		kind = KindLesser
		if s.peek() == '=' {
			kind = KindLesserEqual
			s.cursor++
		}
	case '{':
		kind = KindBraceOpen
	case '}':
		kind = KindBraceClose
	case '(':
		kind = KindParenOpen
	case ')':
		kind = KindParenClose
	case ',':
		kind = KindComma
	case ':':
		kind = KindColon
	case ';':
		kind = KindSemiColon
	}

	return s.token(kind, start, line, column)
}

// Tokenize drains the scanner, returning every remaining token up to and
// including the EOF token.
func (s *Scanner) Tokenize() []Token {
	var tokens []Token
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			return tokens
		}
	}
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		if ch == ' ' || ch == '\t' || ch == '\r' {
			s.cursor++
		} else if ch == '\n' {
			s.line++
			s.cursor++
			s.lineStart = s.cursor
		} else {
			break
		}
	}
}

// skipComment advances to the terminating newline without consuming it, so
// line accounting stays with skipWhitespace.
func (s *Scanner) skipComment() {
	for s.cursor < len(s.source) && s.source[s.cursor] != '\n' {
		s.cursor++
	}
}

// scanIdentifier is called with the cursor just past the first alphabetic
// character. Continuation characters are alphanumeric. The lexeme is checked
// against the keyword table before falling back to KindIdentifier.
func (s *Scanner) scanIdentifier(start, line, column int) Token {
	for s.cursor < len(s.source) && isAlphaNumeric(s.source[s.cursor]) {
		s.cursor++
	}

	lexeme := s.source[start:s.cursor]
	if kind, ok := keywords[lexeme]; ok {
		return Token{Kind: kind, Text: lexeme, Offset: start, Line: line, Column: column}
	}

	return Token{Kind: KindIdentifier, Text: lexeme, Offset: start, Line: line, Column: column}
}

// scanNumber is called with the cursor just past the first digit. A decimal
// point makes this a float literal, but only when a digit follows: "1." is
// the integer 1 and a stray point. Signs and exponents are not part of the
// grammar; a leading - lexes as a Minus token.
func (s *Scanner) scanNumber(start, line, column int) Token {
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		s.cursor++
	}

	if s.cursor+1 < len(s.source) && s.source[s.cursor] == '.' && isDigit(s.source[s.cursor+1]) {
		s.cursor++
		for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
			s.cursor++
		}
		return s.token(KindFloatLiteral, start, line, column)
	}

	return s.token(KindIntegerLiteral, start, line, column)
}

// scanString is called with the cursor just past the opening quote. The token
// text is the raw source span, quotes included; escape sequences are consumed
// but not decoded, so \" does not terminate the literal. An unterminated
// literal yields an Invalid token covering the whole open span.
func (s *Scanner) scanString(start, line, column int) Token {
	for s.cursor < len(s.source) && s.source[s.cursor] != '"' {
		switch s.source[s.cursor] {
		case '\\':
			if s.cursor+1 < len(s.source) {
				s.cursor++
				if s.source[s.cursor] == '\n' {
					s.line++
					s.lineStart = s.cursor + 1
				}
			}
		case '\n':
			s.line++
			s.lineStart = s.cursor + 1
		}
		s.cursor++
	}

	if s.cursor >= len(s.source) {
		return s.token(KindInvalid, start, line, column)
	}

	s.cursor++ // closing quote
	return s.token(KindStringLiteral, start, line, column)
}

func (s *Scanner) token(kind Kind, start, line, column int) Token {
	return Token{
		Kind:   kind,
		Text:   s.source[start:s.cursor],
		Offset: start,
		Line:   line,
		Column: column,
	}
}

// peek returns the character at the cursor, or 0 at the end of the source.
func (s *Scanner) peek() byte {
	if s.cursor >= len(s.source) {
		return 0
	}
	return s.source[s.cursor]
}

func (s *Scanner) column(pos int) int {
	return pos - s.lineStart + 1
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isAlphaNumeric(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}
