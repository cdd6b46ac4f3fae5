// Package puzzle loads puzzle input files.
package puzzle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Input is one puzzle input.
type Input struct {
	// Raw is the file content, untouched.
	Raw string
	// Lines holds Raw split on newlines with surrounding whitespace trimmed.
	// A final newline does not produce an empty last line.
	Lines []string
	// Test marks the example input rather than the real one.
	Test bool
}

// FromContents builds an Input from an in-memory string.
func FromContents(contents string, test bool) Input {
	return Input{Raw: contents, Lines: splitLines(contents), Test: test}
}

// Load reads the file at path.
func Load(path string, test bool) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("puzzle: read %s: %w", path, err)
	}
	return FromContents(string(data), test), nil
}

// Path returns the input location for day under dir:
// <dir>/<day>/test.txt when test is set, <dir>/<day>/input.txt otherwise.
func Path(dir, day string, test bool) string {
	name := "input.txt"
	if test {
		name = "test.txt"
	}
	return filepath.Join(dir, day, name)
}

func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
