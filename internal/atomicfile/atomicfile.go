// Package atomicfile replaces files through a temporary file and a rename, so
// a failed write never disturbs an existing destination.
package atomicfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Error reports a file system step of Write that failed. Errors returned by
// the write callback are passed through unchanged.
type Error struct {
	Op   string // "create", "chmod", "close" or "rename"
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("atomicfile: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Write creates a temporary file next to path, passes it to write and renames
// it over path once write and Close have succeeded. On any failure the
// temporary file is removed and path is left as it was. The final file has
// the given permissions.
func Write(path string, perm os.FileMode, write func(io.Writer) error) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return &Error{Op: "create", Path: path, Err: err}
	}
	tmp := f.Name()

	fail := func(err error) error {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}

	if err := write(f); err != nil {
		return fail(err)
	}
	if err := f.Chmod(perm); err != nil {
		return fail(&Error{Op: "chmod", Path: path, Err: err})
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return &Error{Op: "close", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &Error{Op: "rename", Path: path, Err: err}
	}
	return nil
}

// IsCreate reports whether err is a failure to create the temporary file,
// meaning the destination directory cannot be written.
func IsCreate(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Op == "create"
}
