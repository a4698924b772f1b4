package optree

import (
	"fmt"
	"strings"

	"github.com/tbriard/optree/parse"
)

// Args answers flag presence and value queries over a token sequence without
// reference to any command tree. Useful for quick scripts which don't declare
// commands - full dispatch goes through Parser.
type Args struct {
	tokens []parse.Token
}

// ScanArgs tokenizes a raw argument vector for querying
func ScanArgs(raw []string) *Args {
	return &Args{tokens: parse.Tokenize(raw)}
}

// ArgsFromTokens wraps an already-produced token sequence for querying
func ArgsFromTokens(tokens []parse.Token) *Args {
	return &Args{tokens: tokens}
}

// Tokens returns the underlying token sequence in raw argument order
func (a *Args) Tokens() []parse.Token {
	return a.tokens
}

// flagSpec holds a parsed query spec - one long name, one short letter, or both
type flagSpec struct {
	long  string // including dashes, e.g. "--add"
	short string // single letter without dash
}

// parseFlagSpecs accepts "--long" and "-s" forms. A spec without a dash prefix
// or a short spec longer than one letter is a configuration error.
func parseFlagSpecs(specs []string) (flagSpec, error) {
	var fs flagSpec
	if len(specs) == 0 {
		return fs, fmt.Errorf("%w: no flag given", ErrInvalidFlagSpec)
	}
	for _, spec := range specs {
		switch {
		case strings.HasPrefix(spec, "--") && len(spec) > 2:
			fs.long = spec
		case strings.HasPrefix(spec, "-") && !strings.HasPrefix(spec, "--"):
			letters := []rune(spec[1:])
			if len(letters) != 1 {
				return fs, fmt.Errorf(FmtErrorWithString, ErrInvalidFlagSpec, spec)
			}
			fs.short = string(letters[0])
		default:
			return fs, fmt.Errorf(FmtErrorWithString, ErrInvalidFlagSpec, spec)
		}
	}

	return fs, nil
}

// Has reports whether the flag appears anywhere in the sequence. A short
// letter matches anywhere inside a bundle - bundled flags are each
// individually present. Matching is case-sensitive.
func (a *Args) Has(specs ...string) (bool, error) {
	fs, err := parseFlagSpecs(specs)
	if err != nil {
		return false, err
	}

	for _, tok := range a.tokens {
		switch tok.Kind {
		case parse.LongFlag:
			if fs.long != "" && tok.Text == fs.long {
				return true, nil
			}
		case parse.ShortBundle:
			if fs.short != "" && strings.Contains(tok.Text, fs.short) {
				return true, nil
			}
		}
	}

	return false, nil
}

// Get returns the value of the flag - the last occurrence wins. A long flag's
// value is its inline "=" value, else the immediately following text token,
// else the empty string. A bundle yields a value only when the queried letter
// is the bundle's first - the value is the remainder of the bundle.
func (a *Args) Get(specs ...string) (string, bool, error) {
	fs, err := parseFlagSpecs(specs)
	if err != nil {
		return "", false, err
	}

	var (
		value string
		found bool
	)
	for i, tok := range a.tokens {
		switch tok.Kind {
		case parse.LongFlag:
			if fs.long == "" || tok.Text != fs.long {
				continue
			}
			found = true
			switch {
			case tok.HasValue:
				value = tok.Value
			case i+1 < len(a.tokens) && a.tokens[i+1].Kind == parse.Text:
				value = a.tokens[i+1].Text
			default:
				value = ""
			}
		case parse.ShortBundle:
			if fs.short == "" || !strings.HasPrefix(tok.Text, fs.short) {
				continue
			}
			found = true
			value = tok.Text[len(fs.short):]
		}
	}

	return value, found, nil
}
