package optree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func usageTestTree() *Command {
	return &Command{
		Name:        "tool",
		Description: "does things",
		Arguments: []*Argument{
			{Name: "verbose", Description: "chatty output", Long: "verbose", Short: "v"},
			{Name: "level", Description: "log level", Long: "level", Arity: Exactly(1), DefaultValue: "info"},
			{Name: "input", Description: "file to read", Positional: true},
		},
		Subcommands: []*Subcommand{
			{
				Command: Command{
					Name:        "remote",
					Description: "manage remotes",
					Subcommands: []*Subcommand{
						{Command: Command{Name: "add", Description: "add a remote"}},
					},
				},
			},
			{
				Command:   Command{Name: "build", Description: "build it"},
				Default:   true,
				Aliases:   []string{"b"},
				LongFlag:  "build",
				ShortFlag: "B",
			},
			{
				Command:             Command{Name: "hidden", Description: "flag only"},
				LongFlag:            "hidden",
				DisallowWithoutFlag: true,
			},
		},
	}
}

func TestPrintUsage(t *testing.T) {
	p, err := NewParserWith(WithRootCommand(usageTestTree()), WithUsageWidth(120))
	assert.Nil(t, err)

	var buf bytes.Buffer
	p.PrintUsage(&buf)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "usage: tool\n"))
	assert.Contains(t, out, "--verbose or -v")
	assert.Contains(t, out, "defaults to: info")
	assert.Contains(t, out, "<input>")
	assert.Contains(t, out, "(required)")
	assert.Contains(t, out, "\ncommands:\n")
	assert.Contains(t, out, "remote")
}

func TestPrintCommands(t *testing.T) {
	p := NewParser(usageTestTree())

	var buf bytes.Buffer
	p.PrintCommands(&buf)
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 5, "root plus four subcommands")

	assert.Equal(t, " + tool \"does things\"", lines[0])
	// remote has children, add is terminal and one level deeper
	assert.Equal(t, " │─ remote \"manage remotes\"", lines[1])
	assert.Equal(t, " └── add \"add a remote\"", lines[2])
	// aliases and flag selectors are listed, the default is marked
	assert.Equal(t, " └─ build, b, --build, -B (default) \"build it\"", lines[3])
	// flag-only subcommands don't advertise their bare name
	assert.Equal(t, " └─ --hidden \"flag only\"", lines[4])
}

func TestPrintCommandsUsing_CustomConfig(t *testing.T) {
	p := NewParser(&Command{
		Name: "tool",
		Subcommands: []*Subcommand{
			{Command: Command{Name: "run"}},
		},
	})

	var buf bytes.Buffer
	p.PrintCommandsUsing(&buf, &PrettyPrintConfig{
		NewCommandPrefix: ">",
		DefaultPrefix:    "|",
		TerminalPrefix:   "*",
		LevelBindPrefix:  "..",
	})

	assert.Equal(t, "> tool \"\"\n*.. run \"\"\n", buf.String())
}

func TestPrintUsage_NilRoot(t *testing.T) {
	p := NewParser(nil)

	var buf bytes.Buffer
	p.PrintUsage(&buf)
	assert.Empty(t, buf.String())
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "short", wrap("short", 80))
	assert.Equal(t, "no wrapping at zero width", wrap("no wrapping at zero width", 0))

	wrapped := wrap("alpha beta gamma delta", 12)
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), 12+3)
	}
	assert.Equal(t, "alpha beta\n   gamma delta", wrapped)

	// an unbreakable run stays on one line
	assert.Equal(t, "abcdefghij", wrap("abcdefghij", 5))
}
