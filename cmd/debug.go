package cmd

import (
	"strconv"
	"strings"
)

// DebugRequested reports whether argv asks for --debug. The logger is built
// before cobra parses flags, so main looks ahead to pick zap's development
// config. Scanning stops at "--".
func DebugRequested(args []string) bool {
	requested := false
	for _, a := range args {
		if a == "--" {
			break
		}
		if a == "--debug" {
			requested = true
			continue
		}
		if v, ok := strings.CutPrefix(a, "--debug="); ok {
			b, err := strconv.ParseBool(v)
			requested = err == nil && b
		}
	}
	return requested
}
