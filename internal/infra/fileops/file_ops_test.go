package fileops

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDirExists(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "build")
	file := filepath.Join(root, "exe")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFixtureFile(t, file, "not a dir", 0o644)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "directory", path: dir, want: true},
		{name: "regular file", path: file, want: false},
		{name: "missing", path: filepath.Join(root, "missing"), want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DirExists(tc.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("DirExists(%s) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}

func TestDirExistsFollowsSymlink(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "real")
	link := filepath.Join(root, "build")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	ok, err := DirExists(link)
	if err != nil || !ok {
		t.Fatalf("expected symlinked dir to count as dir, got %v %v", ok, err)
	}
}

func TestFileExists(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, ".env.prod")
	writeFixtureFile(t, file, "X=1", 0o600)

	if ok, err := FileExists(file); err != nil || !ok {
		t.Fatalf("expected file to exist, got %v %v", ok, err)
	}
	if ok, err := FileExists(root); err != nil || ok {
		t.Fatalf("expected directory not to count as file, got %v %v", ok, err)
	}
	if ok, err := FileExists(filepath.Join(root, "missing")); err != nil || ok {
		t.Fatalf("expected missing file, got %v %v", ok, err)
	}
}

func TestRemoveDir(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "build")
	writeFixtureFile(t, filepath.Join(dir, "nested", "deeper", "a.o"), "obj", 0o644)

	if err := RemoveDir(dir); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("expected %s removed, stat err=%v", dir, err)
	}
	if err := RemoveDir(dir); err != nil {
		t.Fatalf("second remove should be a no-op: %v", err)
	}
	if err := RemoveDir(""); err != nil {
		t.Fatalf("empty path should be a no-op: %v", err)
	}
}

func TestCopyFilePreservesBytesAndMode(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, ".env.prod")
	dst := filepath.Join(root, "exe", "main", ".env")
	content := "X=1\nSECRET=\"a b\"\r\n\x00tail"
	writeFixtureFile(t, src, content, 0o640)

	n, err := CopyFile(src, dst)
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if n != int64(len(content)) {
		t.Fatalf("expected %d bytes written, got %d", len(content), n)
	}
	assertFile(t, dst, content, 0o640)
}

func TestCopyFileOverwritesExistingTarget(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	dst := filepath.Join(root, "dst")
	writeFixtureFile(t, src, "short", 0o600)
	writeFixtureFile(t, dst, "a much longer previous content", 0o600)

	if _, err := CopyFile(src, dst); err != nil {
		t.Fatalf("copy: %v", err)
	}
	assertFile(t, dst, "short", 0o600)
}

func TestCopyFileOntoItself(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, ".env.prod")
	writeFixtureFile(t, src, "SECRET=1\n", 0o600)

	link := filepath.Join(root, "exe", "main", ".env")
	if err := os.MkdirAll(filepath.Dir(link), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	symlinkOK := os.Symlink(filepath.Join("..", "..", ".env.prod"), link) == nil

	tests := []struct {
		name string
		dst  string
		skip bool
	}{
		{name: "same path", dst: src},
		{name: "symlink to source", dst: link, skip: !symlinkOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.skip {
				t.Skip("symlinks unsupported")
			}
			n, err := CopyFile(src, tc.dst)
			if !errors.Is(err, ErrSameFile) {
				t.Fatalf("expected ErrSameFile, got %v", err)
			}
			if n != 0 {
				t.Fatalf("expected nothing written, got %d", n)
			}
			assertFile(t, src, "SECRET=1\n", 0o600)
		})
	}
}

func TestCopyFileRejectsDirectorySource(t *testing.T) {
	root := t.TempDir()
	if _, err := CopyFile(root, filepath.Join(root, "out")); err == nil {
		t.Fatalf("expected error copying a directory")
	}
}

func writeFixtureFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if err := os.Chmod(path, perm); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
}

func assertFile(t *testing.T, path, wantContent string, wantPerm os.FileMode) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if string(data) != wantContent {
		t.Fatalf("content mismatch for %s: got %q want %q", path, string(data), wantContent)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if got := info.Mode().Perm(); got != wantPerm {
		t.Fatalf("perm mismatch for %s: got %o want %o", path, got, wantPerm)
	}
}
