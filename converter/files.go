// SPDX-License-Identifier: EPL-2.0

package converter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const outputPerm = 0o644

// writeAtomic runs write against a temporary file next to path and renames
// it into place only when write succeeded. On any failure the temporary file
// is removed, so path is either untouched or complete.
func writeAtomic(path string, write func(f *os.File) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary output: %w", err)
	}

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(outputPerm); err != nil {
		return fmt.Errorf("setting output mode: %w", err)
	}

	if err = write(tmp); err != nil {
		return err
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary output: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming output into place: %w", err)
	}

	return nil
}

// copyFile duplicates src at dst byte for byte.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	return writeAtomic(dst, func(f *os.File) error {
		if _, err := io.Copy(f, in); err != nil {
			return fmt.Errorf("copying data: %w", err)
		}
		return nil
	})
}
