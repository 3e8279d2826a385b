package postfix

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineSource supplies input lines one at a time.
type LineSource interface {
	// NextLine returns the next line without its terminator, or io.EOF
	// when no line is left.
	NextLine() (string, error)
}

type readerLineSource struct {
	r *bufio.Reader
}

// NewLineSource returns a LineSource reading newline-terminated lines from r.
// A final line without a newline is still returned.
func NewLineSource(r io.Reader) LineSource {
	return &readerLineSource{r: bufio.NewReader(r)}
}

func (s *readerLineSource) NextLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}

		if line == "" {
			return "", io.EOF
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}
