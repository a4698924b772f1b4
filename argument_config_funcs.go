package optree

import (
	"fmt"
	"unicode/utf8"
)

// WithArgName sets the name under which bound values are retrieved from a Result
func WithArgName(name string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Name = name
	}
}

// WithArgDescription the description will be used in usage output presented to the user
func WithArgDescription(description string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Description = description
	}
}

// SetPositional marks the argument as filled by bare words instead of flags
func SetPositional(positional bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Positional = positional
	}
}

// SetRequired when true, the argument must be supplied on the command-line
func SetRequired(required bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Required = required
	}
}

// WithLongFlag sets the long flag name (without dashes) and optional aliases
func WithLongFlag(long string, aliases ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Long = long
		argument.LongAliases = append(argument.LongAliases, aliases...)
	}
}

// WithShortFlag sets the single-character short flag and optional
// single-character aliases
func WithShortFlag(short string, aliases ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		if err != nil && *err == nil && utf8.RuneCountInString(short) != 1 {
			*err = fmt.Errorf(FmtErrorWithString, ErrShortFlagLength, short)
			return
		}
		argument.Short = short
		argument.ShortAliases = append(argument.ShortAliases, aliases...)
	}
}

// WithArity bounds the number of values the argument consumes
func WithArity(arity Arity) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Arity = arity
	}
}

// WithDefaultValue is bound when the argument was never seen on the command line
func WithDefaultValue(value string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.DefaultValue = value
	}
}

// WithImplicitValue is bound when the flag is present without a supplied value
func WithImplicitValue(value string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.ImplicitValue = value
	}
}

// SetRequireEquals rejects following-word values - a long-form value must be
// attached with '='
func SetRequireEquals(requireEquals bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.RequireEquals = requireEquals
	}
}

// WithValueDelimiter splits a single supplied value into several
func WithValueDelimiter(delimiter rune) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.ValueDelimiter = delimiter
	}
}

// SetLast captures everything after the "--" separator as this argument's values
func SetLast(last bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Last = last
	}
}
