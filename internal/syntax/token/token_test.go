package token_test

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"testing"

	"go.followtheprocess.codes/test"

	"github.com/yidnekachew0/sass/internal/syntax/token"
)

var (
	// Everything else has these, this allows passing -update or -clean to go test ./...
	// and not getting a flag not defined error.
	_ = flag.Bool("update", false, "Update snapshots")
	_ = flag.Bool("clean", false, "Clean all snapshots and recreate")
)

func FuzzTokenString(f *testing.F) {
	// Generate some random integers as seeds
	for range 100 {
		f.Add(rand.Int(), rand.Int(), rand.Int())
	}

	f.Fuzz(func(t *testing.T, kind, start, end int) {
		tok := token.Token{
			Kind:  token.Kind(kind),
			Start: start,
			End:   end,
		}

		got := tok.String()

		// It should always look like this, regardless of the numbers
		want := fmt.Sprintf("<Token::%s start=%d, end=%d>", token.Kind(kind), start, end)

		test.Equal(t, got, want)
	})
}

func TestDirective(t *testing.T) {
	tests := []struct {
		text string     // Text input
		want token.Kind // Expected token Kind return
		ok   bool       // Expected ok return
	}{
		{text: "warn", want: token.Warn, ok: true},
		{text: "debug", want: token.Debug, ok: true},
		{text: "import", want: token.Import, ok: true},
		{text: "media", want: token.Ident, ok: false},
		{text: "mixin", want: token.Ident, ok: false},
		{text: "WARN", want: token.Ident, ok: false},
		{text: "warning", want: token.Ident, ok: false},
		{text: "lots of random crap", want: token.Ident, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := token.Directive(tt.text)
			test.Equal(t, ok, tt.ok)
			test.Equal(t, got, tt.want)
		})
	}
}

func TestIs(t *testing.T) {
	tok := token.Token{Kind: token.Semicolon, Start: 4, End: 5}

	test.True(t, tok.Is(token.Semicolon))
	test.True(t, tok.Is(token.EOF, token.Error, token.Semicolon))
	test.Equal(t, tok.Is(token.EOF, token.Error), false)
	test.Equal(t, tok.Is(), false)
}
