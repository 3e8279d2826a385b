package main

import (
	"path"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/postfix/testhelper"
)

func TestAcceptance(t *testing.T) {
	dirs, err := testhelper.GetAcceptanceTestDirs()
	assert.NoError(t, err)
	assert.NotZero(t, len(dirs))

	for _, dir := range dirs {
		t.Run(path.Base(dir), func(t *testing.T) {
			input, err := testhelper.ReadTestFile(path.Join(dir, "input.txt"))
			assert.NoError(t, err)

			expected, err := testhelper.ReadTestFile(path.Join(dir, "expected.txt"))
			assert.NoError(t, err)

			code, stdout, stderr := runCLI(t, string(input), "--quiet")

			if testhelper.IsErrorTest(dir) {
				assert.Equal(t, 1, code)
				assert.Equal(t, "", stdout)
				assert.Contains(t, stderr, strings.TrimSpace(string(expected)))

				return
			}

			assert.Equal(t, 0, code, stderr)
			assert.Equal(t, string(expected), stdout)
		})
	}
}
