package optree

// NewCommand creates and returns a new Command. Takes variadic
// ConfigureCommandFunc functions to customize the created command.
func NewCommand(configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{}
	for _, config := range configs {
		config(cmd)
	}

	return cmd
}

// NewSubcommand creates and returns a new Subcommand. Shared command fields
// are configured through WithCommand.
func NewSubcommand(configs ...ConfigureSubcommandFunc) *Subcommand {
	sub := &Subcommand{}
	for _, config := range configs {
		config(sub)
	}

	return sub
}

// Set is a helper config function that allows setting multiple configuration
// functions on a command.
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// Set is a helper config function that allows setting multiple configuration
// functions on a subcommand.
func (s *Subcommand) Set(configs ...ConfigureSubcommandFunc) {
	for _, config := range configs {
		config(s)
	}
}

// Visit traverses a command and its subcommands from top to bottom. Returning
// false from the visitor stops the traversal of the current subtree.
func (c *Command) Visit(visitor func(cmd *Command, level int) bool, level int) {
	if visitor != nil {
		if !visitor(c, level) {
			return
		}
	}

	for _, sub := range c.Subcommands {
		sub.Command.Visit(visitor, level+1)
	}
}

// defaultSubcommand returns the subcommand marked Default, or nil. The
// validator guarantees at most one exists per sibling list.
func (c *Command) defaultSubcommand() *Subcommand {
	for _, sub := range c.Subcommands {
		if sub.Default {
			return sub
		}
	}

	return nil
}

// matchesName reports whether text selects the subcommand by name or alias
func (s *Subcommand) matchesName(text string) bool {
	if s.DisallowWithoutFlag {
		return false
	}
	if text == s.Name {
		return true
	}
	for _, alias := range s.Aliases {
		if text == alias {
			return true
		}
	}

	return false
}

// matchesLongFlag reports whether the long flag name (without dashes) selects
// the subcommand
func (s *Subcommand) matchesLongFlag(name string) bool {
	if s.LongFlag == "" {
		return false
	}
	if name == s.LongFlag {
		return true
	}
	for _, alias := range s.LongFlagAliases {
		if name == alias {
			return true
		}
	}

	return false
}

// matchesShortFlag reports whether the single bundle letter selects the
// subcommand
func (s *Subcommand) matchesShortFlag(letter string) bool {
	if s.ShortFlag == "" {
		return false
	}
	if letter == s.ShortFlag {
		return true
	}
	for _, alias := range s.ShortFlagAliases {
		if letter == alias {
			return true
		}
	}

	return false
}
