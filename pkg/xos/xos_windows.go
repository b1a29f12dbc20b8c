//go:build windows

package xos

import (
	"os"

	"github.com/cockroachdb/errors"
)

// WriteFile writes the given file with the given data and permissions.
// Renames over an open file fail on windows, so the write is not atomic.
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	return errors.WithStack(os.WriteFile(filename, data, perm))
}
