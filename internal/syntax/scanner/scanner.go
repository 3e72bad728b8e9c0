// Package scanner implements a lexical scanner for .scss stylesheets, reading
// the raw source text and emitting a stream of tokens to be consumed by the
// parser.
//
// The scanner is a concurrent, state-function based scanner similar to that
// described by Rob Pike in his talk [Lexical Scanning in Go], based on the
// implementation of text/template in the Go standard library.
//
// The scanner proceeds one utf-8 rune at a time until a particular token is
// recognised, the token is then "emitted" over a channel where it may be
// consumed by a client e.g. the parser.
//
// The state of the scanner is maintained between token emits unlike a more
// conventional switch-based scanner that must determine it's current state
// from scratch in every loop.
//
// This scanner uses "scanFns" to pass the state from one loop to another.
// The 'run' method consumes these "scanFns" in a continual loop until nil is
// returned, marking either "there is nothing more to scan" or "we've hit an
// error", at which point the scanner closes the tokens channel, which will be
// picked up by the parser as a signal that the input stream has ended.
//
// A similar approach is used in [BurntSushi/toml].
//
// [Lexical Scanning in Go]: https://go.dev/talks/2011/lex.slide#1
// [BurntSushi/toml]: https://github.com/BurntSushi/toml/blob/master/lex.go
package scanner

import (
	"bytes"
	"fmt"
	"slices"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/yidnekachew0/sass/internal/source"
	"github.com/yidnekachew0/sass/internal/syntax"
	"github.com/yidnekachew0/sass/internal/syntax/token"
)

const (
	eof        = rune(-1) // eof signifies we have reached the end of the input.
	bufferSize = 32       // benchmarks in similar scanners suggest this is the optimum token channel buffer size
)

// scanFn represents the state of the scanner as a function that does the work
// associated with the current state, then returns the next state.
type scanFn func(*Scanner) scanFn

// Scanner is the .scss stylesheet scanner.
type Scanner struct {
	tokens      chan token.Token    // Channel on which to emit scanned tokens
	name        string              // Name of the file
	diagnostics []syntax.Diagnostic // Diagnostics gathered during scanning
	src         []byte              // Raw source text
	start       int                 // The start position of the current token
	pos         int                 // Current scanner position in src (bytes, 0 indexed)
	mu          sync.RWMutex        // Guards diagnostics
}

// New returns a new [Scanner] and kicks off the state machine in a goroutine.
func New(name string, src []byte) *Scanner {
	s := &Scanner{
		tokens: make(chan token.Token, bufferSize),
		name:   name,
		src:    src,
	}

	// run terminates when the scanning state machine is finished and all the
	// tokens are drained from s.tokens, so no other synchronisation needed here
	go s.run()

	return s
}

// Scan scans the input and returns the next token.
func (s *Scanner) Scan() token.Token {
	return <-s.tokens
}

// Diagnostics returns the list of diagnostics gathered during scanning.
func (s *Scanner) Diagnostics() []syntax.Diagnostic {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Create a copy so caller can't mutate the original diagnostics slice
	diagCopy := make([]syntax.Diagnostic, 0, len(s.diagnostics))
	diagCopy = append(diagCopy, s.diagnostics...)

	return diagCopy
}

// char returns the next utf8 rune in the input, or [eof], along with
// its width.
func (s *Scanner) char() (rune, int) {
	if s.pos >= len(s.src) {
		return eof, 0
	}

	char, width := utf8.DecodeRune(s.src[s.pos:])
	if char == utf8.RuneError || char == 0 {
		s.errorf("invalid utf8 character at position %d: %q", s.pos, s.src[s.pos])
		// Prevent cascading errors by consuming all remaining input
		s.pos = len(s.src)

		return utf8.RuneError, 0
	}

	return char, width
}

// next returns the next utf8 rune in the input, or [eof], and advances the scanner
// over that rune such that successive calls to [Scanner.next] iterate through
// src one rune at a time.
func (s *Scanner) next() rune {
	char, width := s.char()
	s.pos += width

	return char
}

// peek returns the next utf8 rune in the input, or [eof], but does not
// advance the scanner.
//
// Successive calls to peek simply return the same rune again and again.
func (s *Scanner) peek() rune {
	char, _ := s.char()
	return char
}

// rest returns the rest of the input from the current scanner position,
// or nil if the scanner is at EOF.
func (s *Scanner) rest() []byte {
	if s.pos >= len(s.src) {
		return nil
	}

	return s.src[s.pos:]
}

// restHasPrefix reports whether the remainder of the input begins with the
// provided run of characters.
func (s *Scanner) restHasPrefix(prefix string) bool {
	return bytes.HasPrefix(s.rest(), []byte(prefix))
}

// skip ignores any characters for which the predicate returns true, stopping at the
// first one that returns false such that after it returns, [Scanner.next] returns the
// first 'false' char.
//
// The scanner start position is brought up to the current position before returning,
// effectively ignoring everything it's travelled over in the meantime.
func (s *Scanner) skip(predicate func(r rune) bool) {
	for predicate(s.peek()) {
		s.next()
	}

	s.start = s.pos
}

// takeWhile consumes characters so long as the predicate returns true, stopping at the
// first one that returns false such that after it returns, [Scanner.next] returns the
// first 'false' rune.
func (s *Scanner) takeWhile(predicate func(r rune) bool) {
	for predicate(s.peek()) {
		s.next()
	}
}

// takeUntil consumes characters until it hits any of the specified runes.
//
// It stops before it consumes the first specified rune such that after it returns,
// the next call to [Scanner.next] returns the offending rune.
//
//	s.takeUntil('\n', '\t') // Consume runes until you hit a newline or a tab
func (s *Scanner) takeUntil(runes ...rune) {
	// Implicitly also break on RuneError
	runes = append(runes, utf8.RuneError)

	for {
		next := s.peek()
		if slices.Contains(runes, next) {
			return
		}
		// Otherwise, advance the scanner
		s.next()
	}
}

// emit passes a token over the tokens channel, using the scanner's internal
// state to populate position information.
func (s *Scanner) emit(kind token.Kind) {
	s.tokens <- token.Token{
		Kind:  kind,
		Start: s.start,
		End:   s.pos,
	}

	s.start = s.pos
}

// run starts the state machine for the scanner, it runs with each [scanFn] returning
// the next state until one returns nil (typically in response to an error or eof), at
// which point the tokens channel is closed as a signal to the receiver that no more
// tokens will be sent.
func (s *Scanner) run() {
	for state := scanStart; state != nil; {
		state = state(s)
	}

	close(s.tokens)
}

// error records a diagnostic spanning the current token and emits an
// error token.
//
// The diagnostic is recorded before the token is sent so that a receiver
// that has seen the error token also sees its diagnostic.
func (s *Scanner) error(msg string) {
	file := source.NewFile(s.name, s.src)

	diag := syntax.Diagnostic{
		Msg:  msg,
		Span: file.Span(s.start, s.pos),
	}

	s.mu.Lock()
	s.diagnostics = append(s.diagnostics, diag)
	s.mu.Unlock()

	s.emit(token.Error)
}

// errorf calls error with a formatted message.
func (s *Scanner) errorf(format string, a ...any) {
	s.error(fmt.Sprintf(format, a...))
}

// scanStart is the initial state of the scanner.
func scanStart(s *Scanner) scanFn {
	s.skip(unicode.IsSpace)

	switch char := s.next(); char {
	case eof:
		s.emit(token.EOF)
		return nil
	case utf8.RuneError:
		// char has already recorded the error and exhausted the input
		return nil
	case '/':
		return scanSlash
	case '@':
		s.emit(token.At)
		return scanAtIdent
	case '"', '\'':
		return scanString(char)
	case ';':
		s.emit(token.Semicolon)
		return scanStart
	case '{':
		s.emit(token.OpenBrace)
		return scanStart
	case '}':
		s.emit(token.CloseBrace)
		return scanStart
	default:
		return scanText
	}
}

// scanSlash scans a '/' which either opens a '//' line comment, a '/* */'
// block comment, or is simply part of a run of text.
//
// The opening '/' has already been consumed.
func scanSlash(s *Scanner) scanFn {
	switch s.peek() {
	case '/':
		s.next()
		return scanLineComment
	case '*':
		s.next()
		return scanBlockComment
	default:
		return scanText
	}
}

// scanLineComment scans a '//' line comment, absorbing the rest of the line.
//
// The opening '//' has already been consumed, the emitted token covers the
// comment content only.
func scanLineComment(s *Scanner) scanFn {
	s.skip(isLineSpace)
	s.takeUntil('\n', eof)
	s.emit(token.Comment)

	return scanStart
}

// scanBlockComment scans a '/* */' block comment, which may span multiple
// lines.
//
// The opening '/*' has already been consumed, the emitted token covers the
// comment content without the delimiters.
func scanBlockComment(s *Scanner) scanFn {
	s.skip(isLineSpace)

	for {
		if next := s.peek(); next == eof || next == utf8.RuneError {
			s.error("unterminated block comment")
			return nil
		}

		if s.restHasPrefix("*/") {
			s.emit(token.Comment)

			// Consume the closing '*/' without emitting it
			s.next()
			s.next()
			s.start = s.pos

			return scanStart
		}

		s.next()
	}
}

// scanAtIdent scans the identifier naming an at-rule, e.g. the 'warn'
// in '@warn'.
//
// The '@' itself has already been consumed and emitted.
func scanAtIdent(s *Scanner) scanFn {
	s.takeWhile(isIdent)

	if s.pos == s.start {
		s.errorf("expected identifier after '@', got %q", s.peek())
		return nil
	}

	s.emit(token.Ident)

	return scanStart
}

// scanString scans a quoted string literal opened by quote, the emitted
// token includes the surrounding quotes.
//
// The opening quote has already been consumed.
func scanString(quote rune) scanFn {
	return func(s *Scanner) scanFn {
		for {
			if next := s.peek(); next == eof || next == '\n' || next == utf8.RuneError {
				s.error("unterminated string literal")
				return nil
			}

			switch s.next() {
			case '\\':
				// Escape, blindly consume the next char so an escaped
				// quote doesn't terminate the string
				s.next()
			case quote:
				s.emit(token.String)
				return scanStart
			}
		}
	}
}

// scanText absorbs a continuous run of text, anything that is not
// syntactically interesting to directive extraction, selectors,
// property values etc.
//
// The first character of the run has already been consumed.
func scanText(s *Scanner) scanFn {
	s.takeWhile(isText)
	s.emit(token.Text)

	return scanStart
}

// isIdent reports whether r is a valid identifier character.
func isIdent(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-'
}

// isText reports whether r is valid in a continuous run of text.
func isText(r rune) bool {
	switch r {
	case eof, utf8.RuneError, '@', '"', '\'', ';', '{', '}', '/':
		return false
	default:
		return !unicode.IsSpace(r)
	}
}

// isLineSpace reports whether r is a non line terminating whitespace character,
// imagine [unicode.IsSpace] but without '\n' or '\r'.
func isLineSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
