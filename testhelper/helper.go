// Package testhelper holds helpers shared by the tests of this module.
package testhelper

import (
	"regexp"
	"strings"
	"testing"
)

var leadingTabs = regexp.MustCompile(`^\t+`)

// TrimIndent removes the indentation of the first content line from every
// line of an indented raw string literal, so YAML fixtures can be written
// inline. The first line (right after the opening backquote) is dropped and
// remaining leading tabs become two spaces each.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) < 2 {
		return src
	}

	if last := len(lines) - 1; strings.TrimSpace(lines[last]) == "" {
		lines[last] = ""
	}

	first := lines[1]
	indent := first[:len(first)-len(strings.TrimLeft(first, " \t"))]

	for i, line := range lines {
		line = strings.TrimPrefix(line, indent)
		lines[i] = leadingTabs.ReplaceAllStringFunc(line, func(m string) string {
			return strings.Repeat("  ", len(m))
		})
	}

	return strings.Join(lines[1:], "\n")
}
