package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_Classification(t *testing.T) {
	tokens := Tokenize([]string{"--hello", "world", "-aBc"})

	assert.Equal(t, []Token{
		LongFlagToken("--hello"),
		TextToken("world"),
		ShortBundleToken("aBc"),
	}, tokens)
}

func TestTokenize_InlineValue(t *testing.T) {
	tokens := Tokenize([]string{"--add=5", "--empty=", "--a=b=c"})

	assert.Equal(t, LongFlagValueToken("--add", "5"), tokens[0])
	assert.Equal(t, LongFlagValueToken("--empty", ""), tokens[1])
	// only the first '=' separates name from value
	assert.Equal(t, LongFlagValueToken("--a", "b=c"), tokens[2])
}

func TestTokenize_EndOfOptions(t *testing.T) {
	tokens := Tokenize([]string{"-a", "--", "-b", "--long", "--"})

	assert.Equal(t, ShortBundle, tokens[0].Kind)
	assert.Equal(t, EndOfOptions, tokens[1].Kind)
	// everything after the marker is lowered to Text, even flag look-alikes
	assert.Equal(t, TextToken("-b"), tokens[2])
	assert.Equal(t, TextToken("--long"), tokens[3])
	assert.Equal(t, TextToken("--"), tokens[4])
}

func TestTokenize_DashEdgeCases(t *testing.T) {
	tokens := Tokenize([]string{"-", "---", "--="})

	// a bare dash is a short bundle with empty letters
	assert.Equal(t, ShortBundleToken(""), tokens[0])
	// only the exact string "--" triggers end-of-options
	assert.Equal(t, LongFlagToken("---"), tokens[1])
	assert.Equal(t, LongFlagValueToken("--", ""), tokens[2])
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(nil))
	assert.Empty(t, Tokenize([]string{}))
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "--add=5", LongFlagValueToken("--add", "5").String())
	assert.Equal(t, "--add", LongFlagToken("--add").String())
	assert.Equal(t, "-aBc", ShortBundleToken("aBc").String())
	assert.Equal(t, "word", TextToken("word").String())
}

func TestToken_Name(t *testing.T) {
	assert.Equal(t, "hello", LongFlagToken("--hello").Name())
}

func FuzzTokenize(f *testing.F) {
	f.Add("--hello", "world", "-aBc")
	f.Add("--", "-x", "--y=z")
	f.Add("-", "---", "")
	f.Add("-漢字", "--漢=字", "こんにちは")
	f.Fuzz(func(t *testing.T, a, b, c string) {
		raw := []string{a, b, c}
		tokens := Tokenize(raw)

		// total and one token per input string
		if len(tokens) != len(raw) {
			t.Fatalf("expected %d tokens, got %d", len(raw), len(tokens))
		}

		// nothing after an end-of-options marker is classified as a flag
		literal := false
		for i, tok := range tokens {
			if literal && tok.Kind != Text {
				t.Fatalf("token %d after end-of-options has kind %d", i, tok.Kind)
			}
			if tok.Kind == EndOfOptions {
				literal = true
			}
		}
	})
}
