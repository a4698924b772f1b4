package optree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgs_Has(t *testing.T) {
	args := ScanArgs([]string{"--verbose", "input.txt", "-aBc"})

	has, err := args.Has("--verbose")
	assert.Nil(t, err)
	assert.True(t, has)

	has, err = args.Has("--quiet")
	assert.Nil(t, err)
	assert.False(t, has)

	// bundled flags are each individually present
	has, err = args.Has("-B")
	assert.Nil(t, err)
	assert.True(t, has)

	// bundle matching is case-sensitive
	has, err = args.Has("-b")
	assert.Nil(t, err)
	assert.False(t, has)

	// a (long, short) pair matches on either form
	has, err = args.Has("--all", "-a")
	assert.Nil(t, err)
	assert.True(t, has)
}

func TestArgs_HasIgnoresTextAfterEndOfOptions(t *testing.T) {
	args := ScanArgs([]string{"--", "--verbose"})

	has, err := args.Has("--verbose")
	assert.Nil(t, err)
	assert.False(t, has, "flag look-alikes after -- are text, not flags")
}

func TestArgs_GetLastOccurrenceWins(t *testing.T) {
	args := ScanArgs([]string{"--add", "3", "--add=5"})

	value, found, err := args.Get("--add")
	assert.Nil(t, err)
	assert.True(t, found)
	assert.Equal(t, "5", value)
}

func TestArgs_GetFollowingWord(t *testing.T) {
	args := ScanArgs([]string{"--out", "result.txt", "--flagless"})

	value, found, _ := args.Get("--out")
	assert.True(t, found)
	assert.Equal(t, "result.txt", value)

	// a matching flag with no inline value and no following text yields ""
	value, found, _ = args.Get("--flagless")
	assert.True(t, found)
	assert.Equal(t, "", value)
}

func TestArgs_GetShortAttachedValue(t *testing.T) {
	args := ScanArgs([]string{"-m2"})

	value, found, _ := args.Get("-m")
	assert.True(t, found)
	assert.Equal(t, "2", value)
}

func TestArgs_GetMidBundleContributesNoValue(t *testing.T) {
	args := ScanArgs([]string{"-aBc"})

	// has sees B anywhere in the bundle
	has, _ := args.Has("-B")
	assert.True(t, has)

	// get only considers bundles whose first letter matches
	_, found, err := args.Get("-B")
	assert.Nil(t, err)
	assert.False(t, found)
}

func TestArgs_InvalidFlagSpec(t *testing.T) {
	args := ScanArgs([]string{"-a"})

	_, err := args.Has("a")
	assert.ErrorIs(t, err, ErrInvalidFlagSpec)
	assert.True(t, IsConfigError(err))

	_, err = args.Has("-ab")
	assert.ErrorIs(t, err, ErrInvalidFlagSpec)

	_, err = args.Has()
	assert.ErrorIs(t, err, ErrInvalidFlagSpec)

	_, _, err = args.Get("value")
	assert.ErrorIs(t, err, ErrInvalidFlagSpec)
}

func TestArgs_PackageLevelHelpers(t *testing.T) {
	raw := []string{"--mode", "fast"}

	has, err := Has(raw, "--mode")
	assert.Nil(t, err)
	assert.True(t, has)

	value, found, err := Get(raw, "--mode")
	assert.Nil(t, err)
	assert.True(t, found)
	assert.Equal(t, "fast", value)
}

func TestArgs_Tokens(t *testing.T) {
	args := ScanArgs([]string{"--a", "b"})
	assert.Len(t, args.Tokens(), 2)
}
