// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package db

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// sidecarSuffixes name the files SQLite keeps beside a database in WAL or rollback mode.
var sidecarSuffixes = []string{"-wal", "-shm", "-journal"}

// Delete removes the database file at path along with its sidecar files.
// Missing files are ignored. Every handle on the file should be closed first.
func Delete(path string) error {
	switch {
	case path == "":
		return fmt.Errorf("delete: empty path")
	case isMemory(path):
		return fmt.Errorf("delete %s: in-memory database has no file", path)
	}
	if info, err := os.Lstat(path); err == nil && !info.Mode().IsRegular() {
		return fmt.Errorf("delete %s: not a regular file", path)
	}

	var errs []error
	for _, suffix := range append([]string{""}, sidecarSuffixes...) {
		if err := os.Remove(path + suffix); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}
