// Package parse converts raw command-line arguments into typed tokens.
// Tokenization is purely lexical - it has no knowledge of any command or
// flag definition.
package parse

import (
	"strings"
)

// TokenKind identifies the shape of a raw argument after classification
type TokenKind int

const (
	// Text is a bare positional word
	Text TokenKind = iota
	// LongFlag is an argument which began with "--", optionally carrying an
	// inline "=" value
	LongFlag
	// ShortBundle is an argument which began with a single "-". Its letters
	// may represent several single-character flags concatenated, or one flag
	// followed by an attached value.
	ShortBundle
	// EndOfOptions is the literal "--" separator. Every argument after it is
	// classified as Text, including ones which look like flags.
	EndOfOptions
)

// Token is one classified unit of the raw argument sequence
type Token struct {
	Kind TokenKind
	// Text holds the bare word of a Text token, the flag name including its
	// leading dashes for a LongFlag token and the letters after the dash for
	// a ShortBundle token.
	Text string
	// Value holds the inline value of a LongFlag token when HasValue is true
	Value    string
	HasValue bool
}

// TextToken returns a Text token for a bare word
func TextToken(text string) Token {
	return Token{Kind: Text, Text: text}
}

// LongFlagToken returns a LongFlag token without an inline value. The name
// includes the leading dashes, e.g. "--verbose".
func LongFlagToken(name string) Token {
	return Token{Kind: LongFlag, Text: name}
}

// LongFlagValueToken returns a LongFlag token carrying an inline "=" value
func LongFlagValueToken(name, value string) Token {
	return Token{Kind: LongFlag, Text: name, Value: value, HasValue: true}
}

// ShortBundleToken returns a ShortBundle token. The letters exclude the
// leading dash, e.g. "-aBc" yields letters "aBc".
func ShortBundleToken(letters string) Token {
	return Token{Kind: ShortBundle, Text: letters}
}

// EndOfOptionsToken returns the token for the literal "--" separator
func EndOfOptionsToken() Token {
	return Token{Kind: EndOfOptions, Text: "--"}
}

// Name returns the name of a LongFlag token without its dash prefix
func (t Token) Name() string {
	return strings.TrimPrefix(t.Text, "--")
}

// String reconstructs an approximation of the raw argument the token was
// produced from. Used in error messages.
func (t Token) String() string {
	switch t.Kind {
	case LongFlag:
		if t.HasValue {
			return t.Text + "=" + t.Value
		}
		return t.Text
	case ShortBundle:
		return "-" + t.Text
	default:
		return t.Text
	}
}

// Tokenize classifies each raw argument in order. It is total - any string is
// representable as some token - and produces exactly one token per argument.
// Once the literal "--" has been seen every later argument is lowered to Text
// unconditionally.
func Tokenize(raw []string) []Token {
	tokens := make([]Token, 0, len(raw))
	literal := false

	for _, arg := range raw {
		switch {
		case literal:
			tokens = append(tokens, TextToken(arg))
		case arg == "--":
			tokens = append(tokens, EndOfOptionsToken())
			literal = true
		case strings.HasPrefix(arg, "--"):
			if i := strings.IndexByte(arg, '='); i >= 0 {
				tokens = append(tokens, LongFlagValueToken(arg[:i], arg[i+1:]))
			} else {
				tokens = append(tokens, LongFlagToken(arg))
			}
		case strings.HasPrefix(arg, "-"):
			tokens = append(tokens, ShortBundleToken(arg[1:]))
		default:
			tokens = append(tokens, TextToken(arg))
		}
	}

	return tokens
}
