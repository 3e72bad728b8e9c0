package token

// Kind is the kind of a token.
type Kind int

// Token definitions.
//
//go:generate stringer -type Kind -linecomment
const (
	EOF        Kind = iota // EOF
	Error                  // Error
	Comment                // Comment
	At                     // At
	Ident                  // Ident
	String                 // String
	Semicolon              // Semicolon
	OpenBrace              // OpenBrace
	CloseBrace             // CloseBrace
	Text                   // Text
	Warn                   // Warn
	Debug                  // Debug
	Import                 // Import
)

// MarshalText implements [encoding.TextMarshaler] for [Kind].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
