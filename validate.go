package optree

import (
	"fmt"
	"unicode/utf8"
)

// Validate walks the command tree depth-first and returns a configuration
// error for the first structural violation found. A tree which fails
// validation is never resolved against user input.
func (c *Command) Validate() error {
	return c.validate(c.Name, 0, DefaultMaxCommandDepth)
}

func (c *Command) validate(path string, level, maxDepth int) error {
	if level > maxDepth {
		return fmt.Errorf("%w (%d) at %s", ErrMaxDepthExceeded, maxDepth, path)
	}
	if c.Name == "" {
		return fmt.Errorf("%w at level %d", ErrCommandNameMissing, level)
	}
	if c.SubcommandRequired && len(c.Subcommands) == 0 {
		return fmt.Errorf(FmtErrorWithString, ErrNoSubcommands, path)
	}

	for _, argument := range c.Arguments {
		if err := argument.validate(path); err != nil {
			return err
		}
	}

	defaults := 0
	for _, sub := range c.Subcommands {
		if sub.Default {
			defaults++
			if defaults > 1 {
				return fmt.Errorf(FmtErrorWithString, ErrMultipleDefaults, path)
			}
		}
		if err := sub.validateSelectors(path); err != nil {
			return err
		}
		if err := sub.Command.validate(path+" "+sub.Name, level+1, maxDepth); err != nil {
			return err
		}
	}

	return nil
}

func (s *Subcommand) validateSelectors(parentPath string) error {
	at := parentPath + " " + s.Name
	if s.DisallowWithoutFlag && s.LongFlag == "" && s.ShortFlag == "" {
		return fmt.Errorf(FmtErrorWithString, ErrFlagRequiredForSubcommand, at)
	}
	if s.ShortFlag != "" && utf8.RuneCountInString(s.ShortFlag) != 1 {
		return fmt.Errorf("%w: %q on %s", ErrShortFlagLength, s.ShortFlag, at)
	}
	for _, alias := range s.ShortFlagAliases {
		if utf8.RuneCountInString(alias) != 1 {
			return fmt.Errorf("%w: %q on %s", ErrShortFlagLength, alias, at)
		}
	}
	if len(s.LongFlagAliases) > 0 && s.LongFlag == "" {
		return fmt.Errorf(FmtErrorWithString, ErrAliasWithoutFlag, at)
	}
	if len(s.ShortFlagAliases) > 0 && s.ShortFlag == "" {
		return fmt.Errorf(FmtErrorWithString, ErrAliasWithoutFlag, at)
	}

	return nil
}

// validate applies the flag-shape rules to an argument declaration. The same
// rules govern subcommand selectors and argument flags.
func (a *Argument) validate(commandPath string) error {
	at := commandPath + " " + a.Name
	if a.Name == "" {
		return fmt.Errorf("%w: argument of %s", ErrCommandNameMissing, commandPath)
	}
	if a.Short != "" && utf8.RuneCountInString(a.Short) != 1 {
		return fmt.Errorf("%w: %q on %s", ErrShortFlagLength, a.Short, at)
	}
	for _, alias := range a.ShortAliases {
		if utf8.RuneCountInString(alias) != 1 {
			return fmt.Errorf("%w: %q on %s", ErrShortFlagLength, alias, at)
		}
	}
	if len(a.LongAliases) > 0 && a.Long == "" {
		return fmt.Errorf(FmtErrorWithString, ErrAliasWithoutFlag, at)
	}
	if len(a.ShortAliases) > 0 && a.Short == "" {
		return fmt.Errorf(FmtErrorWithString, ErrAliasWithoutFlag, at)
	}
	if a.Positional && (a.Long != "" || a.Short != "") {
		return fmt.Errorf(FmtErrorWithString, ErrPositionalWithFlags, at)
	}

	return nil
}
