package textio

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"os"
	"strings"
)

// defaultBufferSize is the initial scanner buffer; lines may grow up to
// maxLineSize before scanning fails.
const (
	defaultBufferSize = 64 * 1024
	maxLineSize       = 16 * 1024 * 1024
)

// Option configures line reading.
type Option func(*options)

type options struct {
	separator string
	skipEmpty bool
}

// WithSeparator sets the substring used to split the input into lines.
// The default is "\n".
func WithSeparator(sep string) Option {
	return func(o *options) {
		if sep != "" {
			o.separator = sep
		}
	}
}

// WithSkipEmpty makes the reader silently drop lines that are empty after
// trimming. By default empty lines are yielded as "".
func WithSkipEmpty() Option {
	return func(o *options) { o.skipEmpty = true }
}

// Reader yields the lines of an input stream, each trimmed of surrounding
// whitespace. Like bufio.Scanner, any read error is reported by Err after
// the iteration ends.
type Reader struct {
	scanner *bufio.Scanner
	opts    options
	err     error
}

// NewReader creates a line reader over r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	o := options{separator: "\n"}
	for _, opt := range opts {
		opt(&o)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, defaultBufferSize), maxLineSize)
	if o.separator != "\n" {
		scanner.Split(splitOn([]byte(o.separator)))
	}

	return &Reader{scanner: scanner, opts: o}
}

// Lines returns a sequence over the trimmed lines of the input. A trailing
// separator does not produce a phantom final line.
func (r *Reader) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for r.scanner.Scan() {
			line := strings.TrimSpace(r.scanner.Text())
			if line == "" && r.opts.skipEmpty {
				continue
			}
			if !yield(line) {
				return
			}
		}
		r.err = r.scanner.Err()
	}
}

// Err returns the first error encountered while reading, if any.
func (r *Reader) Err() error {
	return r.err
}

// Lines is a convenience over NewReader(r, opts...).Lines() for inputs where
// read errors cannot occur (strings, byte buffers).
func Lines(r io.Reader, opts ...Option) iter.Seq[string] {
	return NewReader(r, opts...).Lines()
}

// FileLines reads the whole file at path and returns its trimmed lines.
func FileLines(path string, opts ...Option) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := NewReader(f, opts...)
	var lines []string
	for line := range reader.Lines() {
		lines = append(lines, line)
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// splitOn builds a bufio.SplitFunc that tokenizes on an arbitrary separator,
// including multi-byte ones.
func splitOn(sep []byte) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if i := bytes.Index(data, sep); i >= 0 {
			return i + len(sep), data[:i], nil
		}
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}
