package optree

import (
	"fmt"
	"strings"
)

// NewArg convenience initialization method to configure arguments
func NewArg(configs ...ConfigureArgumentFunc) *Argument {
	argument := &Argument{}
	for _, config := range configs {
		config(argument, nil)
	}

	return argument
}

// Set configures the Argument instance with the provided ConfigureArgumentFunc(s),
// and returns an error if a configuration results in an error.
func (a *Argument) Set(configs ...ConfigureArgumentFunc) error {
	var err error
	for _, config := range configs {
		config(a, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// String returns a usage-style representation of the Argument
func (a *Argument) String() string {
	if a.Positional {
		return fmt.Sprintf("<%s> %s %s", a.Name, a.describe(), a.requiredString())
	}

	return strings.TrimLeft(fmt.Sprintf("%s%s %s %s", a.longString(), a.shortString(), a.describe(), a.requiredString()), " ")
}

// Display returns the form of the argument suitable for error messages - the
// dashed flag name for flags, the bare name for positionals.
func (a *Argument) Display() string {
	switch {
	case a.Positional:
		return a.Name
	case a.effectiveLong() != "":
		return "--" + a.effectiveLong()
	default:
		return "-" + a.Short
	}
}

// presenceValue is bound when a valueless flag is present on the command line
func (a *Argument) presenceValue() string {
	if a.ImplicitValue != "" {
		return a.ImplicitValue
	}

	return "true"
}

// effectiveLong returns the long name the argument answers to. A flag with no
// declared long or short form is addressable under its Name. The declaration
// itself is never mutated.
func (a *Argument) effectiveLong() string {
	if a.Positional {
		return ""
	}
	if a.Long == "" && a.Short == "" {
		return a.Name
	}

	return a.Long
}

// effectiveArity returns the arity used during binding. A positional slot
// declared with a zero arity holds exactly one value.
func (a *Argument) effectiveArity() Arity {
	if a.Positional && a.Arity == (Arity{}) {
		return Exactly(1)
	}

	return a.Arity
}

// matchesLong reports whether name (without dashes) addresses this argument
func (a *Argument) matchesLong(name string) bool {
	if a.Positional || name == "" {
		return false
	}
	if name == a.effectiveLong() {
		return true
	}
	for _, alias := range a.LongAliases {
		if name == alias {
			return true
		}
	}

	return false
}

// matchesShort reports whether the single letter addresses this argument
func (a *Argument) matchesShort(letter string) bool {
	if a.Positional || letter == "" {
		return false
	}
	if letter == a.Short {
		return true
	}
	for _, alias := range a.ShortAliases {
		if letter == alias {
			return true
		}
	}

	return false
}

// splitValue applies the configured value delimiter, dropping empty segments
func (a *Argument) splitValue(value string) []string {
	if a.ValueDelimiter == 0 {
		return []string{value}
	}

	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == a.ValueDelimiter
	})
	if len(parts) == 0 {
		return []string{""}
	}

	return parts
}

func (a *Argument) longString() string {
	if a.Long == "" {
		return ""
	}

	return "--" + a.Long
}

func (a *Argument) shortString() string {
	if a.Short == "" {
		return ""
	}

	return " or -" + a.Short
}

func (a *Argument) requiredString() string {
	requiredOrOptional := "optional"
	if a.Required || (a.Positional && a.effectiveArity().Min > 0) {
		requiredOrOptional = "required"
	}

	return "(" + requiredOrOptional + ")"
}

func (a *Argument) describe() string {
	if a.DefaultValue != "" {
		return fmt.Sprintf("\"%s\" (defaults to: %s)", a.Description, a.DefaultValue)
	}

	return fmt.Sprintf("\"%s\"", a.Description)
}
