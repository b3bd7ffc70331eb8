// Package scan walks C-family source text and classifies every identifier
// with a keywords.Session. It understands just enough syntax to skip
// comments, string and character literals and numbers, and to track the
// preprocessor state the session needs: a '#' at the start of a line opens
// a directive, "#define" switches to the macro body, and an unescaped
// newline closes either.
package scan

import (
	"kwclass/internal/keywords"
	"kwclass/internal/source"
	"kwclass/internal/token"
)

// Lexeme is one classified identifier, or the '#' that opens a directive
// (Kind token.Preproc).
type Lexeme struct {
	Text    string
	Span    source.Span
	Kind    token.Kind
	Preproc keywords.Preproc // state after classification
}

// Scanner yields the lexemes of one file. It drives the session's
// preprocessor state, so a session must not be shared between scanners
// running at the same time.
type Scanner struct {
	cur     cursor
	sess    *keywords.Session
	words   *source.Interner
	atLine  bool // only blanks and comments since the last newline
	ppFirst bool // the next word names the directive
}

// New creates a scanner over f and resets the session to ordinary code.
// words may be nil.
func New(f *source.File, sess *keywords.Session, words *source.Interner) *Scanner {
	if words == nil {
		words = source.NewInterner()
	}
	sess.SetPreproc(keywords.PreprocNone)
	return &Scanner{
		cur:    newCursor(f),
		sess:   sess,
		words:  words,
		atLine: true,
	}
}

// Next returns the next lexeme; ok is false at end of input.
func (s *Scanner) Next() (lx Lexeme, ok bool) {
	for !s.cur.eof() {
		b := s.cur.peek()
		switch {
		case b == '\n':
			s.cur.bump()
			s.endLine()
		case b == '\\' && s.cur.peekAt(1) == '\n':
			// continuation: the directive goes on
			s.cur.bump()
			s.cur.bump()
		case isBlank(b):
			s.cur.bump()
		case b == '/' && s.cur.peekAt(1) == '/':
			s.skipLineComment()
		case b == '/' && s.cur.peekAt(1) == '*':
			s.skipBlockComment()
		case b == '#':
			start := s.cur.off
			s.cur.bump()
			if s.atLine && s.sess.Preproc() == keywords.PreprocNone {
				s.atLine = false
				s.ppFirst = true
				s.sess.SetPreproc(keywords.PreprocDirective)
				return Lexeme{Text: "#", Span: s.cur.spanFrom(start), Kind: token.Preproc, Preproc: keywords.PreprocDirective}, true
			}
			s.atLine = false
		case b == '"' || b == '\'':
			s.atLine = false
			s.skipQuoted(b)
		case isDigit(b) || (b == '.' && isDigit(s.cur.peekAt(1))):
			s.atLine = false
			s.skipNumber()
		case isWordStart(b) || (b == '@' && isWordStart(s.cur.peekAt(1))):
			s.atLine = false
			return s.word(), true
		default:
			s.atLine = false
			s.cur.bump()
		}
	}
	return Lexeme{}, false
}

// All drains the scanner.
func (s *Scanner) All() []Lexeme {
	var out []Lexeme
	for {
		lx, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, lx)
	}
}

func (s *Scanner) endLine() {
	s.atLine = true
	s.ppFirst = false
	if s.sess.Preproc() != keywords.PreprocNone {
		s.sess.SetPreproc(keywords.PreprocNone)
	}
}

func (s *Scanner) word() Lexeme {
	start := s.cur.off
	s.cur.bump() // first byte, possibly '@'
	for !s.cur.eof() && isWordByte(s.cur.peek()) {
		s.cur.bump()
	}
	span := s.cur.spanFrom(start)
	text, _ := s.words.Lookup(s.words.InternBytes(s.cur.text(span)))

	kind := s.sess.Classify(text)
	if s.ppFirst {
		s.ppFirst = false
		if kind == token.PPDefine {
			s.sess.SetPreproc(keywords.PreprocDefine)
		}
	}
	return Lexeme{Text: text, Span: span, Kind: kind, Preproc: s.sess.Preproc()}
}

func (s *Scanner) skipLineComment() {
	for !s.cur.eof() && s.cur.peek() != '\n' {
		s.cur.bump()
	}
}

func (s *Scanner) skipBlockComment() {
	s.cur.bump()
	s.cur.bump()
	for !s.cur.eof() {
		if s.cur.peek() == '*' && s.cur.peekAt(1) == '/' {
			s.cur.bump()
			s.cur.bump()
			return
		}
		s.cur.bump()
	}
}

// skipQuoted skips a string or character literal. An unescaped newline
// ends an unterminated literal and is left for Next.
func (s *Scanner) skipQuoted(quote byte) {
	s.cur.bump()
	for !s.cur.eof() {
		switch s.cur.peek() {
		case '\\':
			s.cur.bump()
			s.cur.bump()
		case '\n':
			return
		case quote:
			s.cur.bump()
			return
		default:
			s.cur.bump()
		}
	}
}

// skipNumber consumes a numeric literal with suffixes, exponents and digit
// separators, so "0x1Fu" or "1e-5f" yield no words.
func (s *Scanner) skipNumber() {
	for !s.cur.eof() {
		b := s.cur.peek()
		switch {
		case isWordByte(b) || b == '.':
			s.cur.bump()
			if (b == 'e' || b == 'E' || b == 'p' || b == 'P') && (s.cur.peek() == '+' || s.cur.peek() == '-') {
				s.cur.bump()
			}
		case b == '\'' && isWordByte(s.cur.peekAt(1)):
			s.cur.bump()
		default:
			return
		}
	}
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\f' || b == '\v'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isWordStart accepts ASCII letters, '_', '$' and any non-ASCII byte; the
// session decides what the word means.
func isWordStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' || b == '$' || b >= 0x80
}

func isWordByte(b byte) bool { return isWordStart(b) || isDigit(b) }
