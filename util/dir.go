package util

import (
	"os"
	"path/filepath"
	"syscall"
)

// exists returns whether the given file or directory exists or not
func exists(p string) (bool, error) {
	_, err := os.Stat(p)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return true, err
}

// EnsureDir ensures a directory exists. Creation is racy on shared
// filesystems, so an already-existing directory is never an error.
func EnsureDir(p string) error {
	e, err := exists(p)
	if err != nil {
		return err
	}
	if !e {
		// Cluster log directories are shared with downstream tools,
		// so the umask must not restrict the mode.
		_ = syscall.Umask(0000)
		err := os.MkdirAll(p, 0777)
		if err != nil {
			return err
		}
	}
	return nil
}

// EnsurePath ensures a directory exists, given a file path.
// This calls filepath.Dir(p).
func EnsurePath(p string) error {
	dir := filepath.Dir(p)
	return EnsureDir(dir)
}
