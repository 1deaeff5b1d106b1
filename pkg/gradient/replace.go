//go:build !windows

package gradient

import (
	"fmt"
	"io"

	"github.com/google/renameio/v2"
)

func replaceFile(filename string, write func(io.Writer) error) error {
	pending, err := renameio.NewPendingFile(filename,
		renameio.WithPermissions(0644),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer pending.Cleanup()

	if err := write(pending); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filename, err)
	}
	return nil
}
