// Package optree provides declarative command-line processing.
//
// A program describes its commands, subcommands, flags and positional
// arguments once as a static tree. Dispatch tokenizes the raw argument vector
// according to Unix conventions, validates the declared tree for internal
// consistency and resolves the tokens against it, walking down the tree one
// token at a time. A subcommand may be selected by bare name, by alias, by a
// long or short flag, or implicitly as its parent's default - explicit
// selectors win over the default, and the default wins over argument binding.
package optree

import (
	"fmt"
	"io"
	"os"

	"github.com/tbriard/optree/parse"
	"github.com/tbriard/optree/types/orderedmap"
	"github.com/tbriard/optree/util"
)

// Parser resolves argument vectors against a declared command tree. The tree
// is validated before the first resolution and never mutated by resolution.
type Parser struct {
	root               *Command
	registeredCommands *orderedmap.OrderedMap[string, *Command]
	validated          bool
	usageWidth         int
	stdout             io.Writer
	stderr             io.Writer
}

// NewParser creates a parser for the given command tree. The tree is
// validated on the first Dispatch or by an explicit Validate call.
func NewParser(root *Command) *Parser {
	return &Parser{
		root:               root,
		registeredCommands: orderedmap.NewOrderedMap[string, *Command](),
		stdout:             os.Stdout,
		stderr:             os.Stderr,
	}
}

// NewParserWith creates a parser configured by option functions
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	p := NewParser(nil)
	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Root returns the root of the declared command tree
func (p *Parser) Root() *Command {
	return p.root
}

// AddCommand attaches another subcommand under the root after construction.
// The subcommand's subtree is validated immediately and the whole tree is
// re-validated on the next Dispatch.
func (p *Parser) AddCommand(sub *Subcommand) error {
	if p.root == nil || sub == nil {
		return fmt.Errorf("%w: no command to attach to", ErrCommandNameMissing)
	}
	if err := sub.validateSelectors(p.root.Name); err != nil {
		return err
	}
	if err := sub.Command.Validate(); err != nil {
		return err
	}
	p.root.Subcommands = append(p.root.Subcommands, sub)
	p.validated = false

	return nil
}

// Validate checks the declared tree once. Subsequent calls are no-ops for a
// tree which already passed. A validation failure is a configuration error
// and prevents any resolution from starting.
func (p *Parser) Validate() error {
	if p.validated {
		return nil
	}
	if p.root == nil {
		return fmt.Errorf("%w: no root command", ErrCommandNameMissing)
	}
	if err := p.root.Validate(); err != nil {
		return err
	}
	p.registerCommandRecursive(p.root, p.root.Name)
	p.validated = true

	return nil
}

// Dispatch tokenizes args and resolves them against the command tree. On
// success the terminal command's callback has been invoked and the returned
// Result holds the bound argument values. Errors are either configuration
// errors (IsConfigError) raised before resolution starts, or usage errors
// (IsUsageError) describing end-user input which doesn't fit the tree.
func (p *Parser) Dispatch(args []string) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p.resolve(p.root, parse.Tokenize(args))
}

// DispatchTokens resolves an already-produced token sequence
func (p *Parser) DispatchTokens(tokens []parse.Token) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p.resolve(p.root, tokens)
}

// DispatchString splits a whole command-line string using shell quoting rules
// and dispatches it
func (p *Parser) DispatchString(commandLine string) (*Result, error) {
	args, err := parse.Split(commandLine)
	if err != nil {
		return nil, err
	}

	return p.Dispatch(args)
}

// DispatchOS dispatches the process's own argument vector with the leading
// executable path stripped
func (p *Parser) DispatchOS() (*Result, error) {
	return p.Dispatch(util.PruneExecPath(os.Args))
}

// HasCommand returns true when the space-joined path names a command in the
// declared tree, e.g. "tool build image"
func (p *Parser) HasCommand(path string) bool {
	_, found := p.registeredCommands.Get(path)

	return found
}

// GetCommand returns the command registered under the space-joined path
func (p *Parser) GetCommand(path string) (*Command, bool) {
	return p.registeredCommands.Get(path)
}

// CommandPaths returns every registered command path in declaration order
func (p *Parser) CommandPaths() []string {
	paths := make([]string, 0, p.registeredCommands.Count())
	for kv := p.registeredCommands.Front(); kv != nil; kv = kv.Next() {
		paths = append(paths, *kv.Key)
	}

	return paths
}

// SetStdout replaces the writer used for usage output. Returns the previous writer.
func (p *Parser) SetStdout(w io.Writer) io.Writer {
	old := p.stdout
	p.stdout = w

	return old
}

// SetStderr replaces the writer used for diagnostics. Returns the previous writer.
func (p *Parser) SetStderr(w io.Writer) io.Writer {
	old := p.stderr
	p.stderr = w

	return old
}

func (p *Parser) registerCommandRecursive(cmd *Command, path string) {
	p.registeredCommands.Set(path, cmd)
	for _, sub := range cmd.Subcommands {
		p.registerCommandRecursive(&sub.Command, path+" "+sub.Name)
	}
}

// Has reports whether the flag appears anywhere in the raw argument vector,
// without reference to the command tree. See Args.Has.
func Has(raw []string, specs ...string) (bool, error) {
	return ScanArgs(raw).Has(specs...)
}

// Get returns the value of the flag from the raw argument vector, last
// occurrence winning, without reference to the command tree. See Args.Get.
func Get(raw []string, specs ...string) (string, bool, error) {
	return ScanArgs(raw).Get(specs...)
}
