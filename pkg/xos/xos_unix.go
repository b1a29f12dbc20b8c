//go:build !windows

// Package xos provides cross-platform helper functions.
package xos

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/google/renameio/v2"
)

// WriteFile writes the given file with the given data and permissions.
//
// The write is atomic: the data goes to a temporary file that is renamed
// over filename, so readers never observe a partial file.
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	return errors.WithStack(renameio.WriteFile(filename, data, perm))
}
