package gradient

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, lines []string, newline string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "part.gcode")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, newline)+newline), 0600))
	return path
}

func TestProcessFileInPlace(t *testing.T) {
	path := writeFile(t, gcodeFile("gyroid", "G0 X0 Y20", "G1 X1 Y20 E1"), "\n")

	stats, err := ProcessFile(path, "", defaultParams, Marker("test"))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ModifiedLines)
	assert.Equal(t, stats.TotalLines+1, stats.OutputLines)

	lines, newline, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, "\n", newline)
	assert.Equal(t, "G1 X1 Y20 E0.5 F2400", lines[len(lines)-2])
	assert.Equal(t, Marker("test"), lines[len(lines)-1])

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	processed, err := IsProcessed(path)
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestProcessFileToOutput(t *testing.T) {
	input := writeFile(t, gcodeFile("gyroid", "G0 X0 Y20", "G1 X1 Y20 E1"), "\n")
	before, err := os.ReadFile(input)
	require.NoError(t, err)

	output := filepath.Join(t.TempDir(), "out.gcode")
	_, err = ProcessFile(input, output, defaultParams, "")
	require.NoError(t, err)

	after, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	lines, _, err := ReadLines(output)
	require.NoError(t, err)
	assert.Equal(t, "G1 X1 Y20 E0.5 F2400", lines[len(lines)-1])

	processed, err := IsProcessed(output)
	require.NoError(t, err)
	assert.False(t, processed)
}

func TestProcessFileKeepsCRLF(t *testing.T) {
	path := writeFile(t, gcodeFile("gyroid", "G0 X0 Y20", "G1 X1 Y20 E1"), "\r\n")

	_, err := ProcessFile(path, "", defaultParams, "")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "G1 X1 Y20 E0.5 F2400\r\n"))
	assert.Equal(t, strings.Count(string(data), "\n"), strings.Count(string(data), "\r\n"))
}

func TestProcessFileAbsoluteExtrusionLeavesFileUntouched(t *testing.T) {
	lines := gcodeFile("gyroid", "G0 X0 Y5", "G1 X1 Y5 E1")
	lines[2] = "M82"
	path := writeFile(t, lines, "\n")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	stats, err := ProcessFile(path, "", defaultParams, Marker("test"))
	assert.Nil(t, stats)
	require.ErrorIs(t, err, ErrAbsoluteExtrusion)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestAnalyzeDoesNotWrite(t *testing.T) {
	path := writeFile(t, gcodeFile("rectilinear", "G0 X0 Y5", "G1 X10 Y5 E1"), "\n")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	stats, err := Analyze(path, defaultParams)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ModifiedLines)
	assert.Equal(t, stats.TotalLines+6, stats.OutputLines)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestReadLinesMissingFile(t *testing.T) {
	_, _, err := ReadLines(filepath.Join(t.TempDir(), "missing.gcode"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteLinesReplacesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "part.gcode")
	require.NoError(t, os.WriteFile(path, []byte("old content\nmore\n"), 0640))

	require.NoError(t, WriteLines(path, []string{"G0 X0 Y0", "G1 X1 Y0 E1"}, "\r\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "G0 X0 Y0\r\nG1 X1 Y0 E1\r\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteLinesCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.gcode")
	require.NoError(t, WriteLines(path, []string{"M83"}, "\n"))

	lines, newline, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"M83"}, lines)
	assert.Equal(t, "\n", newline)
}
