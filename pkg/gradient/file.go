package gradient

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const maxLineLength = 16 * 1024 * 1024

// ReadLines reads a G-code file and returns its lines without terminators,
// together with the newline sequence the file uses
func ReadLines(filename string) ([]string, string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}

	newline := "\n"
	if bytes.Contains(data, []byte("\r\n")) {
		newline = "\r\n"
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lines := make([]string, 0, bytes.Count(data, []byte("\n"))+1)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, "", fmt.Errorf("error reading G-code: %w", err)
	}

	return lines, newline, nil
}

// WriteLines replaces filename with lines. The content is written to a
// temporary file in the same directory first and renamed over the target,
// so a failed write never leaves a truncated file behind. An existing file
// keeps its permissions.
func WriteLines(filename string, lines []string, newline string) error {
	return replaceFile(filename, func(out io.Writer) error {
		w := bufio.NewWriter(out)
		for _, line := range lines {
			if _, err := w.WriteString(line); err != nil {
				return err
			}
			if _, err := w.WriteString(newline); err != nil {
				return err
			}
		}
		return w.Flush()
	})
}

// Analyze runs the full pipeline on a file without writing anything
func Analyze(filename string, params Params) (*Stats, error) {
	start := time.Now()

	lines, _, err := ReadLines(filename)
	if err != nil {
		return nil, err
	}
	result, err := Process(lines, params)
	if err != nil {
		return nil, err
	}

	result.Stats.Duration = time.Since(start)
	return &result.Stats, nil
}

// ProcessFile rewrites the infill of input and writes the result to output,
// or back to input when output is empty. A non-empty marker is appended as the
// last line. Nothing is written when processing fails.
func ProcessFile(input, output string, params Params, marker string) (*Stats, error) {
	start := time.Now()

	lines, newline, err := ReadLines(input)
	if err != nil {
		return nil, err
	}

	result, err := Process(lines, params)
	if err != nil {
		return nil, err
	}

	out := result.Lines
	if marker != "" {
		out = append(out, marker)
	}

	if output == "" {
		output = input
	}
	if err := WriteLines(output, out, newline); err != nil {
		return nil, err
	}

	result.Stats.OutputLines = len(out)
	result.Stats.Duration = time.Since(start)
	return &result.Stats, nil
}

// IsProcessed reports whether the file already carries the processed marker
func IsProcessed(filename string) (bool, error) {
	lines, _, err := ReadLines(filename)
	if err != nil {
		return false, err
	}
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.HasPrefix(lines[i], MarkerPrefix) {
			return true, nil
		}
	}
	return false, nil
}
