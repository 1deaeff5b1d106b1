//go:build windows

package gradient

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// renameio does not build on Windows, there the replace is done by hand
func replaceFile(filename string, write func(io.Writer) error) (err error) {
	mode := os.FileMode(0644)
	if info, statErr := os.Stat(filename); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	if err = os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filename, err)
	}
	return nil
}
