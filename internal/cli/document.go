package cli

import (
	"fmt"
	"os"
	"strings"
)

// readLines reads a Markdown document and returns its lines with trailing
// whitespace trimmed, the form the checkers expect. A trailing newline does
// not produce a final empty line.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}

	return lines, nil
}
