package optree

import (
	"fmt"
	"io"
)

// WithRootCommand sets the command tree the parser resolves against
func WithRootCommand(root *Command) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if root == nil {
			*err = fmt.Errorf("%w: nil root command", ErrCommandNameMissing)
			return
		}
		p.root = root
	}
}

// WithStdout sets the writer used for usage output
func WithStdout(w io.Writer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.stdout = w
	}
}

// WithStderr sets the writer used for diagnostics
func WithStderr(w io.Writer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.stderr = w
	}
}

// WithUsageWidth overrides the terminal width used to wrap usage output.
// Zero means detect from the terminal.
func WithUsageWidth(width int) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if width < 0 {
			*err = fmt.Errorf("usage width must be >= 0, got %d", width)
			return
		}
		p.usageWidth = width
	}
}
