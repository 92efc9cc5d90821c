// Where: internal/infra/fileops/file_ops.go
// What: Filesystem primitives used by housekeeping operations.
// Why: Keep existence checks, removal and copying consistent across commands.
package fileops

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrSameFile is returned by CopyFile when src and dst resolve to the same file.
var ErrSameFile = errors.New("source and target are the same file")

// OS implements the housekeeping file operations against the real filesystem.
type OS struct{}

func (OS) DirExists(path string) (bool, error) { return DirExists(path) }

func (OS) FileExists(path string) (bool, error) { return FileExists(path) }

func (OS) RemoveDir(path string) error { return RemoveDir(path) }

func (OS) EnsureDir(path string) error { return EnsureDir(path) }

func (OS) CopyFile(src, dst string) (int64, error) { return CopyFile(src, dst) }

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// RemoveDir deletes path recursively. A missing path is not an error.
func RemoveDir(path string) error {
	if path == "" {
		return nil
	}
	if err := os.RemoveAll(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// DirExists reports whether path exists and is a directory, following symlinks.
// Stat failures other than "not exist" are returned.
func DirExists(path string) (bool, error) {
	info, err := stat(path)
	if err != nil || info == nil {
		return false, err
	}
	return info.IsDir(), nil
}

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) (bool, error) {
	info, err := stat(path)
	if err != nil || info == nil {
		return false, err
	}
	return !info.IsDir(), nil
}

func stat(path string) (fs.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return info, nil
}

// CopyFile copies src to dst byte-for-byte, creating parent directories and
// keeping the source permission bits. An existing dst is truncated unless it
// resolves to src, which yields ErrSameFile and leaves both untouched.
func CopyFile(src, dst string) (int64, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("copy %s: source is a directory", src)
	}
	dstInfo, err := stat(dst)
	if err != nil {
		return 0, err
	}
	if dstInfo != nil && os.SameFile(info, dstInfo) {
		return 0, ErrSameFile
	}
	return copyFileWithMode(src, dst, info.Mode().Perm())
}

func copyFileWithMode(src, dst string, mode fs.FileMode) (int64, error) {
	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return 0, err
	}
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return 0, err
	}
	written, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return written, err
	}
	if err := out.Close(); err != nil {
		return written, err
	}
	return written, os.Chmod(dst, mode)
}
