package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrCorpusAccess wraps any failure to open or read corpus input. It is an I/O
// concern, separate from the errors raised by the model itself.
var ErrCorpusAccess = errors.New("corpus: access failure")

// maxLineLength bounds a single line of input.
const maxLineLength = 64 * 1024

// ReadNames returns every whitespace-delimited token in r, in order.
func ReadNames(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	scanner.Split(bufio.ScanWords)

	var names []string
	for scanner.Scan() {
		names = append(names, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpusAccess, err)
	}
	return names, nil
}

// ReadLines returns every non-blank line in r with surrounding whitespace
// trimmed. Both "\n" and "\r\n" endings are accepted, and a line may hold a
// multi-word name.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpusAccess, err)
	}
	return lines, nil
}

// LoadNames reads whitespace-delimited names from the file at path.
func LoadNames(path string) ([]string, error) {
	return loadFile(path, ReadNames)
}

// LoadLines reads one name per line from the file at path.
func LoadLines(path string) ([]string, error) {
	return loadFile(path, ReadLines)
}

func loadFile(path string, read func(io.Reader) ([]string, error)) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpusAccess, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	names, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return names, nil
}
