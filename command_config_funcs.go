package optree

// WithName sets the name for the command. The name is used to identify the
// command and invoke it from the command line.
func WithName(name string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Name = name
	}
}

// WithCommandDescription sets the description for the command
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Description = description
	}
}

// WithCallback sets the callback function invoked when the command is the
// terminal match of a Dispatch
func WithCallback(callback CommandFunc) ConfigureCommandFunc {
	return func(command *Command) {
		command.Callback = callback
	}
}

// WithArguments declares the command's own flags and positional arguments
func WithArguments(arguments ...*Argument) ConfigureCommandFunc {
	return func(command *Command) {
		command.Arguments = append(command.Arguments, arguments...)
	}
}

// SetSubcommandRequired when true, resolution terminating at this command
// without a subcommand having been selected is a usage error
func SetSubcommandRequired(required bool) ConfigureCommandFunc {
	return func(command *Command) {
		command.SubcommandRequired = required
	}
}

// WithSubcommands attaches subcommands in declaration order
func WithSubcommands(subcommands ...*Subcommand) ConfigureCommandFunc {
	return func(command *Command) {
		command.Subcommands = append(command.Subcommands, subcommands...)
	}
}

// WithCommand applies shared command options to a subcommand
func WithCommand(configs ...ConfigureCommandFunc) ConfigureSubcommandFunc {
	return func(sub *Subcommand) {
		sub.Command.Set(configs...)
	}
}

// SetDefault marks the subcommand as implicitly selected when no token
// matches any of its siblings. At most one default per sibling list.
func SetDefault(isDefault bool) ConfigureSubcommandFunc {
	return func(sub *Subcommand) {
		sub.Default = isDefault
	}
}

// WithAliases adds extra text names selecting the subcommand
func WithAliases(aliases ...string) ConfigureSubcommandFunc {
	return func(sub *Subcommand) {
		sub.Aliases = append(sub.Aliases, aliases...)
	}
}

// WithLongSelector enables invocation of the subcommand as --flag
func WithLongSelector(longFlag string, aliases ...string) ConfigureSubcommandFunc {
	return func(sub *Subcommand) {
		sub.LongFlag = longFlag
		sub.LongFlagAliases = append(sub.LongFlagAliases, aliases...)
	}
}

// WithShortSelector enables invocation of the subcommand as a single-character -f
func WithShortSelector(shortFlag string, aliases ...string) ConfigureSubcommandFunc {
	return func(sub *Subcommand) {
		sub.ShortFlag = shortFlag
		sub.ShortFlagAliases = append(sub.ShortFlagAliases, aliases...)
	}
}

// SetFlagOnly forbids matching the subcommand by bare text name - it must be
// invoked through one of its flags
func SetFlagOnly(flagOnly bool) ConfigureSubcommandFunc {
	return func(sub *Subcommand) {
		sub.DisallowWithoutFlag = flagOnly
	}
}
