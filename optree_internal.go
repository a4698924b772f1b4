package optree

import (
	"fmt"
	"strings"

	"github.com/tbriard/optree/parse"
	"github.com/tbriard/optree/types/queue"
)

// bindState tracks argument-binding progress for one command on the matched
// chain. Positional slots fill in declaration order; fill counts are kept per
// slot so arity minima can be enforced once the token queue is exhausted.
type bindState struct {
	cmd         *Command
	positionals []*Argument
	posIdx      int
	fill        map[*Argument]int
	seen        map[*Argument]bool
}

func newBindState(cmd *Command) *bindState {
	st := &bindState{
		cmd:  cmd,
		fill: map[*Argument]int{},
		seen: map[*Argument]bool{},
	}
	for _, argument := range cmd.Arguments {
		if argument.Positional {
			st.positionals = append(st.positionals, argument)
		}
	}

	return st
}

func (st *bindState) markSeen(argument *Argument) {
	st.seen[argument] = true
}

// fillPositional claims the next unfilled positional slot for one value, or
// returns nil when every slot of this command is full
func (st *bindState) fillPositional() *Argument {
	for st.posIdx < len(st.positionals) {
		argument := st.positionals[st.posIdx]
		if argument.effectiveArity().wants(st.fill[argument]) {
			st.fill[argument]++
			st.seen[argument] = true

			return argument
		}
		st.posIdx++
	}

	return nil
}

// finalize applies defaults and enforces required flags and positional minima
// once the token queue is exhausted
func (st *bindState) finalize(result *Result) error {
	for _, argument := range st.cmd.Arguments {
		if st.seen[argument] {
			if argument.Positional && st.fill[argument] < argument.effectiveArity().Min {
				return fmt.Errorf("%w: %s expects at least %d value(s), got %d",
					ErrMissingPositionals, argument.Name, argument.effectiveArity().Min, st.fill[argument])
			}
			continue
		}
		if argument.DefaultValue != "" {
			result.bind(argument.Name, argument.DefaultValue)
			continue
		}
		if argument.Positional {
			if argument.Required || argument.effectiveArity().Min > 0 {
				return fmt.Errorf(FmtErrorWithString, ErrMissingPositionals, argument.Name)
			}
			continue
		}
		if argument.Required {
			return fmt.Errorf(FmtErrorWithString, ErrMissingRequiredFlag, argument.Display())
		}
	}

	return nil
}

// resolver walks the command tree against the token queue. The queue only
// shrinks - re-injection of a shortened bundle strictly reduces remaining
// letters - so the walk always terminates.
type resolver struct {
	p      *Parser
	tokens *queue.Q[parse.Token]
	chain  []*bindState
	result *Result
}

func (p *Parser) resolve(root *Command, tokens []parse.Token) (*Result, error) {
	r := &resolver{
		p:      p,
		tokens: queue.New[parse.Token](),
		result: newResult(),
	}
	for _, tok := range tokens {
		r.tokens.Enqueue(tok)
	}
	r.chain = []*bindState{newBindState(root)}

	for r.tokens.Len() > 0 {
		tok, ok := r.tokens.Dequeue()
		if !ok {
			return nil, fmt.Errorf("%w: token queue drained mid-iteration", ErrInternal)
		}

		cur := r.current()
		sub, rest, err := matchSubcommand(cur.cmd, tok)
		if err != nil {
			return nil, err
		}
		if sub != nil {
			if rest != "" {
				// -ab selecting subcommand a still delivers -b afterwards
				r.tokens.Requeue(parse.ShortBundleToken(rest))
			}
			r.descend(&sub.Command)
			continue
		}

		if def := cur.cmd.defaultSubcommand(); def != nil {
			// advance without consuming - the token is re-evaluated against
			// the default subcommand on the next iteration
			r.tokens.Requeue(tok)
			r.descend(&def.Command)
			continue
		}

		if err := r.bindToken(tok); err != nil {
			return nil, err
		}
	}

	// a bare invocation still routes through default subcommands
	for {
		def := r.current().cmd.defaultSubcommand()
		if def == nil {
			break
		}
		r.descend(&def.Command)
	}

	terminal := r.current().cmd
	if terminal.SubcommandRequired {
		return nil, fmt.Errorf(FmtErrorWithString, ErrSubcommandRequired, r.path())
	}

	for _, st := range r.chain {
		if err := st.finalize(r.result); err != nil {
			return nil, err
		}
	}

	r.result.Command = terminal
	r.result.Path = r.path()
	if terminal.Callback != nil {
		if err := terminal.Callback(p, terminal); err != nil {
			return r.result, err
		}
	}

	return r.result, nil
}

func (r *resolver) current() *bindState {
	return r.chain[len(r.chain)-1]
}

func (r *resolver) descend(cmd *Command) {
	r.chain = append(r.chain, newBindState(cmd))
}

func (r *resolver) path() string {
	names := make([]string, 0, len(r.chain))
	for _, st := range r.chain {
		names = append(names, st.cmd.Name)
	}

	return strings.Join(names, " ")
}

// matchSubcommand applies the three selector rules - text name, long flag,
// first bundle letter - against the declared subcommands in declaration
// order. For a bundle with more than one letter the unconsumed remainder is
// returned for re-injection.
func matchSubcommand(cmd *Command, tok parse.Token) (*Subcommand, string, error) {
	switch tok.Kind {
	case parse.Text:
		for _, sub := range cmd.Subcommands {
			if sub.matchesName(tok.Text) {
				return sub, "", nil
			}
		}
	case parse.LongFlag:
		name := tok.Name()
		for _, sub := range cmd.Subcommands {
			if sub.matchesLongFlag(name) {
				if tok.HasValue {
					return nil, "", fmt.Errorf(FmtErrorWithString, ErrSubcommandFlagValue, tok.String())
				}

				return sub, "", nil
			}
		}
	case parse.ShortBundle:
		if tok.Text == "" {
			return nil, "", nil
		}
		letters := []rune(tok.Text)
		first := string(letters[0])
		for _, sub := range cmd.Subcommands {
			if sub.matchesShortFlag(first) {
				return sub, string(letters[1:]), nil
			}
		}
	}

	return nil, "", nil
}

// bindToken hands a token which selected no subcommand to the argument
// binding logic of the matched chain, deepest command first
func (r *resolver) bindToken(tok parse.Token) error {
	switch tok.Kind {
	case parse.Text:
		return r.bindPositional(tok.Text)
	case parse.LongFlag:
		argument, st := r.findLong(tok.Name())
		if argument == nil {
			return fmt.Errorf(FmtErrorWithString, ErrUnknownFlag, tok.Text)
		}

		return r.bindFlag(st, argument, tok.Value, tok.HasValue)
	case parse.ShortBundle:
		if tok.Text == "" {
			// a bare "-" conventionally names stdin - treat it as a positional
			return r.bindPositional("-")
		}
		letters := []rune(tok.Text)
		first := string(letters[0])
		rest := string(letters[1:])
		argument, st := r.findShort(first)
		if argument == nil {
			return fmt.Errorf("%w: -%s", ErrUnknownFlag, first)
		}
		if argument.effectiveArity().TakesValues() {
			if rest != "" {
				// -m2 binds "2" as the attached value
				return r.bindFlag(st, argument, rest, true)
			}

			return r.bindFlag(st, argument, "", false)
		}
		if rest != "" {
			// remaining letters are further bundled flags
			r.tokens.Requeue(parse.ShortBundleToken(rest))
		}

		return r.bindFlag(st, argument, "", false)
	case parse.EndOfOptions:
		return r.captureTrailing()
	}

	return fmt.Errorf("%w: unhandled token kind %d", ErrInternal, tok.Kind)
}

// bindFlag records the presence and value(s) of a flag argument. inline holds
// an "=" value or an attached bundle remainder when hasInline is true.
func (r *resolver) bindFlag(st *bindState, argument *Argument, inline string, hasInline bool) error {
	arity := argument.effectiveArity()
	if !arity.TakesValues() {
		if hasInline {
			return fmt.Errorf(FmtErrorWithString, ErrUnexpectedFlagValue, argument.Display())
		}
		st.markSeen(argument)
		r.result.bind(argument.Name, argument.presenceValue())

		return nil
	}

	var values []string
	switch {
	case hasInline:
		values = argument.splitValue(inline)
	case argument.RequireEquals:
		// a following word must not be consumed as the value
		if argument.ImplicitValue != "" {
			values = []string{argument.ImplicitValue}
		} else if arity.Min > 0 {
			return fmt.Errorf(FmtErrorWithString, ErrEqualsRequired, argument.Display())
		}
	default:
		for arity.wants(len(values)) {
			next, ok := r.tokens.Peek()
			if !ok || next.Kind != parse.Text {
				break
			}
			r.tokens.Dequeue()
			values = append(values, argument.splitValue(next.Text)...)
		}
		if len(values) == 0 && argument.ImplicitValue != "" {
			values = []string{argument.ImplicitValue}
		}
		if len(values) < arity.Min {
			return fmt.Errorf("%w: %s expects at least %d value(s), got %d",
				ErrFlagValueExpected, argument.Display(), arity.Min, len(values))
		}
	}

	st.markSeen(argument)
	r.result.bind(argument.Name, values...)

	return nil
}

// bindPositional fills the next unfilled positional slot of the deepest
// command, overflowing to ancestors when every slot below is full
func (r *resolver) bindPositional(text string) error {
	for i := len(r.chain) - 1; i >= 0; i-- {
		if argument := r.chain[i].fillPositional(); argument != nil {
			r.result.bind(argument.Name, text)

			return nil
		}
	}

	return fmt.Errorf(FmtErrorWithString, ErrTooManyPositionals, text)
}

// captureTrailing handles the end-of-options marker: when an argument on the
// chain declares Last, everything after "--" becomes its values. Otherwise
// the trailing words bind as ordinary positionals. Either way the remaining
// tokens never re-enter subcommand matching.
func (r *resolver) captureTrailing() error {
	argument, st := r.findLast()
	if argument == nil {
		for r.tokens.Len() > 0 {
			tok, _ := r.tokens.Dequeue()
			if err := r.bindPositional(tok.Text); err != nil {
				return err
			}
		}

		return nil
	}

	var values []string
	for r.tokens.Len() > 0 {
		tok, _ := r.tokens.Dequeue()
		values = append(values, tok.Text)
	}
	if min := argument.effectiveArity().Min; len(values) < min {
		return fmt.Errorf("%w: %s expects at least %d value(s), got %d",
			ErrMissingPositionals, argument.Name, min, len(values))
	}
	st.markSeen(argument)
	r.result.bind(argument.Name, values...)

	return nil
}

func (r *resolver) findLong(name string) (*Argument, *bindState) {
	for i := len(r.chain) - 1; i >= 0; i-- {
		for _, argument := range r.chain[i].cmd.Arguments {
			if argument.matchesLong(name) {
				return argument, r.chain[i]
			}
		}
	}

	return nil, nil
}

func (r *resolver) findShort(letter string) (*Argument, *bindState) {
	for i := len(r.chain) - 1; i >= 0; i-- {
		for _, argument := range r.chain[i].cmd.Arguments {
			if argument.matchesShort(letter) {
				return argument, r.chain[i]
			}
		}
	}

	return nil, nil
}

func (r *resolver) findLast() (*Argument, *bindState) {
	for i := len(r.chain) - 1; i >= 0; i-- {
		for _, argument := range r.chain[i].cmd.Arguments {
			if argument.Last {
				return argument, r.chain[i]
			}
		}
	}

	return nil, nil
}
