package testhelper

import (
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"strings"

	"github.com/shibukawa/postfix/testdata"
)

var acceptanceDir = regexp.MustCompile(`^[0-9]{3}.*$`)

// GetAcceptanceTestDirs returns the embedded acceptance case directories in
// name order.
func GetAcceptanceTestDirs() ([]string, error) {
	entries, err := fs.ReadDir(testdata.GetFS(), "acceptancetests")
	if err != nil {
		return nil, fmt.Errorf("failed to read acceptancetests directory: %w", err)
	}

	var dirs []string

	for _, entry := range entries {
		if entry.IsDir() && acceptanceDir.MatchString(entry.Name()) {
			dirs = append(dirs, path.Join("acceptancetests", entry.Name()))
		}
	}

	return dirs, nil
}

// ReadTestFile reads a file from the embedded test data
func ReadTestFile(filePath string) ([]byte, error) {
	return fs.ReadFile(testdata.GetFS(), filePath)
}

// IsErrorTest reports whether the case in testPath is expected to fail.
func IsErrorTest(testPath string) bool {
	return strings.HasSuffix(path.Base(testPath), "_err")
}
