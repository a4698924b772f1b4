package util

import (
	"os"
	"strings"
)

// PruneExecPath strips the leading executable path from an argument vector
// when present, so that os.Args can be passed to resolution as-is.
func PruneExecPath(args []string) []string {
	if len(args) > 0 && strings.EqualFold(os.Args[0], args[0]) {
		return args[1:]
	}

	return args
}
