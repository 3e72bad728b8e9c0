// Package parser implements the .scss stylesheet parser.
//
// The parser consumes the stream of tokens from the scanner and extracts the
// diagnostic producing directives (@warn, @debug, @import), building a
// [source.Span] for each so the resulting events can be attributed back to
// the original stylesheet. Everything else in the stylesheet is recognised
// and skipped.
//
// If a parse error occurs, the partial file is returned rather than the
// idiomatic Go norm of <zero value>, error. This is intentional, it aids
// error reporting and keeps the parser fault tolerant on incomplete or
// incorrect input.
package parser

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/yidnekachew0/sass/internal/source"
	"github.com/yidnekachew0/sass/internal/syntax"
	"github.com/yidnekachew0/sass/internal/syntax/scanner"
	"github.com/yidnekachew0/sass/internal/syntax/token"
)

// ErrParse is a generic parsing error, details are carried by the
// diagnostics gathered during the parse, see [Parser.Diagnostics].
var ErrParse = errors.New("parse error")

// Parser is the .scss stylesheet parser.
type Parser struct {
	scanner     *scanner.Scanner    // Scanner to produce tokens
	file        *source.File        // Offset to Location mapping for src
	diagnostics []syntax.Diagnostic // Diagnostics gathered during parsing
	name        string              // Name of the file being parsed
	src         []byte              // Raw source text
	current     token.Token         // Current token under inspection
	next        token.Token         // Next token in the stream
}

// New initialises and returns a new [Parser] that parses src.
func New(name string, src []byte) *Parser {
	p := &Parser{
		scanner: scanner.New(name, src),
		file:    source.NewFile(name, src),
		name:    name,
		src:     src,
	}

	// Read 2 tokens so current and next are set
	p.advance()
	p.advance()

	return p
}

// Parse parses the file to completion, returning a [syntax.File] containing
// the directives found, in source order.
//
// The returned error simply signifies whether or not there were parse
// errors, the full detail is available from [Parser.Diagnostics]. Even when
// the error is non-nil the (partial) file is still returned.
func (p *Parser) Parse() (syntax.File, error) {
	file := syntax.File{Name: p.name}

	for !p.current.Is(token.EOF) {
		switch {
		case p.current.Is(token.Error):
			// The scanner has already recorded the detail as a diagnostic
			p.advance()
		case p.current.Is(token.At):
			file.Directives = append(file.Directives, p.parseDirective()...)
		default:
			p.advance()
		}
	}

	if len(p.Diagnostics()) > 0 {
		return file, ErrParse
	}

	return file, nil
}

// Diagnostics returns the list of diagnostics gathered during scanning and
// parsing, in span order.
func (p *Parser) Diagnostics() []syntax.Diagnostic {
	diagnostics := append(p.scanner.Diagnostics(), p.diagnostics...)

	slices.SortStableFunc(diagnostics, func(a, b syntax.Diagnostic) int {
		return source.CompareSpan(a.Span, b.Span)
	})

	return diagnostics
}

// advance advances the parser by one token.
func (p *Parser) advance() {
	p.current = p.next
	p.next = p.scanner.Scan()
}

// text returns the raw source text covered by a token.
func (p *Parser) text(tok token.Token) string {
	return string(p.src[tok.Start:tok.End])
}

// error records a parse error against a span of source.
func (p *Parser) error(span source.Span, msg string) {
	p.diagnostics = append(p.diagnostics, syntax.Diagnostic{Msg: msg, Span: span})
}

// errorf calls error with a formatted message.
func (p *Parser) errorf(span source.Span, format string, a ...any) {
	p.error(span, fmt.Sprintf(format, a...))
}

// parseDirective parses a single at-rule, returning any diagnostic
// producing directives it describes.
//
// At-rules that produce no diagnostics (@media, @mixin, @use etc.) are
// skipped and return nil. The current token is the '@'.
func (p *Parser) parseDirective() []syntax.Directive {
	atStart := p.current.Start

	p.advance() // Over the '@'

	if !p.current.Is(token.Ident) {
		// The scanner guarantees an identifier follows '@' unless it
		// errored, which the main loop deals with
		return nil
	}

	kind, ok := token.Directive(p.text(p.current))
	identEnd := p.current.End

	p.advance() // Over the identifier

	if !ok {
		p.skipRule()
		return nil
	}

	switch kind {
	case token.Warn:
		return p.parseExpression(atStart, identEnd, syntax.Warn)
	case token.Debug:
		return p.parseExpression(atStart, identEnd, syntax.Debug)
	case token.Import:
		return p.parseImport(atStart)
	default:
		return nil
	}
}

// parseExpression parses the expression following a '@warn' or '@debug',
// everything up to the terminating semicolon.
//
// A single quoted string is unquoted to form the message, anything else is
// carried as the raw expression text.
func (p *Parser) parseExpression(atStart, identEnd int, kind syntax.DirectiveKind) []syntax.Directive {
	exprStart, exprEnd := -1, -1
	count := 0

	var str token.Token

	for !p.current.Is(token.Semicolon, token.OpenBrace, token.CloseBrace, token.EOF, token.Error) {
		if exprStart == -1 {
			exprStart = p.current.Start
		}

		exprEnd = p.current.End

		if p.current.Is(token.String) {
			str = p.current
		}

		count++

		p.advance()
	}

	name := strings.ToLower(kind.String())

	if exprStart == -1 {
		// Don't cascade on top of a scanner error, it has already been recorded
		if !p.current.Is(token.Error) {
			p.errorf(p.file.Span(atStart, identEnd), "missing expression in @%s", name)
		}

		return nil
	}

	message := strings.TrimSpace(string(p.src[exprStart:exprEnd]))
	if count == 1 && str.Is(token.String) {
		message = unquote(p.text(str))
	}

	directive := syntax.Directive{
		Kind:    kind,
		Message: message,
		Span:    p.file.Span(atStart, exprEnd),
	}

	return []syntax.Directive{directive}
}

// parseImport parses a '@import' rule.
//
// Each quoted url in the rule produces one Import directive. A rule with no
// quoted urls (e.g. 'url(...)' imports) is plain CSS and produces nothing.
func (p *Parser) parseImport(atStart int) []syntax.Directive {
	var directives []syntax.Directive

	for p.current.Is(token.String) {
		directive := syntax.Directive{
			Kind:    syntax.Import,
			Message: unquote(p.text(p.current)),
			Span:    p.file.Span(atStart, p.current.End),
		}

		directives = append(directives, directive)

		p.advance() // Over the url

		// Absorb separating commas (scanned as text) between urls
		for p.current.Is(token.Text, token.Comment) {
			p.advance()
		}
	}

	if len(directives) == 0 {
		p.skipRule()
	}

	return directives
}

// skipRule skips the remainder of an at-rule the parser has no interest in,
// stopping at the terminating semicolon or the opening brace of its block.
func (p *Parser) skipRule() {
	for !p.current.Is(token.Semicolon, token.OpenBrace, token.EOF, token.Error) {
		p.advance()
	}
}

// unquote strips the surrounding quotes from a string literal and resolves
// backslash escapes.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}

	s = s[1 : len(s)-1]

	if !strings.ContainsRune(s, '\\') {
		return s
	}

	builder := &strings.Builder{}
	escaped := false

	for _, char := range s {
		if escaped {
			builder.WriteRune(char)
			escaped = false

			continue
		}

		if char == '\\' {
			escaped = true
			continue
		}

		builder.WriteRune(char)
	}

	return builder.String()
}
