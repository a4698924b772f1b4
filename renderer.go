package optree

import (
	"fmt"
	"io"
	"strings"

	"github.com/tbriard/optree/util"
)

const defaultUsageWidth = 80

// PrintUsage pretty prints the root command's arguments and the command tree
// to io.Writer
func (p *Parser) PrintUsage(writer io.Writer) {
	if p.root == nil {
		return
	}
	_, _ = writer.Write([]byte(fmt.Sprintf("usage: %s\n", p.root.Name)))
	p.PrintArguments(writer, p.root)
	if len(p.root.Subcommands) > 0 {
		_, _ = writer.Write([]byte("\ncommands:\n"))
		p.PrintCommands(writer)
	}
}

// PrintArguments pretty prints a command's declared flags and positionals to
// io.Writer
func (p *Parser) PrintArguments(writer io.Writer, cmd *Command) {
	width := p.usageWidth
	if width == 0 {
		width = util.TerminalWidth(defaultUsageWidth)
	}
	for _, argument := range cmd.Arguments {
		line := " " + argument.String()
		_, _ = writer.Write([]byte(wrap(line, width) + "\n"))
	}
}

// PrintCommands writes the declared command tree to io.Writer
func (p *Parser) PrintCommands(writer io.Writer) {
	p.PrintCommandsUsing(writer, &PrettyPrintConfig{
		NewCommandPrefix: " +",
		DefaultPrefix:    " │",
		TerminalPrefix:   " └",
		LevelBindPrefix:  "─",
	})
}

// PrintCommandsUsing writes the declared command tree to io.Writer using
// PrettyPrintConfig. PrettyPrintConfig.NewCommandPrefix precedes the start of
// a new command, DefaultPrefix precedes sub-commands by default,
// TerminalPrefix precedes Command structs which don't have sub-commands and
// LevelBindPrefix is repeated for each level under the root.
func (p *Parser) PrintCommandsUsing(writer io.Writer, config *PrettyPrintConfig) {
	if p.root == nil {
		return
	}
	line := fmt.Sprintf("%s %s \"%s\"\n", config.NewCommandPrefix, p.root.Name, p.root.Description)
	if _, err := writer.Write([]byte(line)); err != nil {
		return
	}
	for _, sub := range p.root.Subcommands {
		if !printSubcommand(writer, config, sub, 1) {
			return
		}
	}
}

func printSubcommand(writer io.Writer, config *PrettyPrintConfig, sub *Subcommand, level int) bool {
	start := config.DefaultPrefix
	if len(sub.Subcommands) == 0 {
		start = config.TerminalPrefix
	}
	line := fmt.Sprintf("%s%s %s \"%s\"\n", start, strings.Repeat(config.LevelBindPrefix, level),
		describeSubcommand(sub), sub.Description)
	if _, err := writer.Write([]byte(line)); err != nil {
		return false
	}
	for _, nested := range sub.Subcommands {
		if !printSubcommand(writer, config, nested, level+1) {
			return false
		}
	}

	return true
}

// describeSubcommand renders a subcommand's invocation forms: name, aliases
// and any flag selectors
func describeSubcommand(sub *Subcommand) string {
	forms := make([]string, 0, 4)
	if !sub.DisallowWithoutFlag {
		forms = append(forms, sub.Name)
		forms = append(forms, sub.Aliases...)
	}
	if sub.LongFlag != "" {
		forms = append(forms, "--"+sub.LongFlag)
	}
	if sub.ShortFlag != "" {
		forms = append(forms, "-"+sub.ShortFlag)
	}
	if len(forms) == 0 {
		forms = append(forms, sub.Name)
	}
	name := strings.Join(forms, ", ")
	if sub.Default {
		name += " (default)"
	}

	return name
}

// wrap folds a line at the last space before width, indenting continuations
func wrap(line string, width int) string {
	if width <= 0 || len(line) <= width {
		return line
	}

	var b strings.Builder
	for len(line) > width {
		cut := strings.LastIndexByte(line[:width], ' ')
		if cut <= 0 {
			break
		}
		b.WriteString(line[:cut])
		b.WriteString("\n   ")
		line = line[cut+1:]
	}
	b.WriteString(line)

	return b.String()
}
