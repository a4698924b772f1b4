package parse

import "github.com/google/shlex"

// Split tokenizes a whole command-line string into an argument vector using
// shell quoting rules.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}

// TokenizeString splits a whole command-line string using shell quoting rules
// and classifies the resulting arguments
func TokenizeString(s string) ([]Token, error) {
	args, err := Split(s)
	if err != nil {
		return nil, err
	}

	return Tokenize(args), nil
}
