package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	args, err := Split(`build --tag "hello world" -v`)
	assert.Nil(t, err)
	assert.Equal(t, []string{"build", "--tag", "hello world", "-v"}, args)
}

func TestSplit_SingleQuotes(t *testing.T) {
	args, err := Split(`--message='a b c'`)
	assert.Nil(t, err)
	assert.Equal(t, []string{"--message=a b c"}, args)
}

func TestSplit_Unbalanced(t *testing.T) {
	_, err := Split(`--tag "unterminated`)
	assert.NotNil(t, err)
}

func TestSplit_Empty(t *testing.T) {
	args, err := Split("")
	assert.Nil(t, err)
	assert.Empty(t, args)
}

func TestTokenizeString(t *testing.T) {
	tokens, err := TokenizeString(`build --tag "hello world" -- raw`)
	assert.Nil(t, err)
	assert.Equal(t, []Token{
		TextToken("build"),
		LongFlagToken("--tag"),
		TextToken("hello world"),
		EndOfOptionsToken(),
		TextToken("raw"),
	}, tokens)

	_, err = TokenizeString(`"unterminated`)
	assert.NotNil(t, err)
}
