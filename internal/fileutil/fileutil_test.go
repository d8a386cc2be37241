package fileutil_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/idelchi/gofish/internal/fileutil"
)

func TestOSResolvesAgainstRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	fsys := fileutil.NewOS(root)

	file, err := fsys.Create("hello.txt")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := file.Write([]byte("hi")); err != nil {
		t.Fatal(err)
	}

	if err := file.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(root, "hello.txt")); err != nil {
		t.Fatalf("file not created under root: %v", err)
	}

	if err := fsys.MkdirAll("sub/dir", 0o755); err != nil {
		t.Fatal(err)
	}

	if err := fsys.Chdir("sub"); err != nil {
		t.Fatalf("Chdir: %v", err)
	}

	wd, err := fsys.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	if want := filepath.Join(root, "sub"); wd != want {
		t.Errorf("Getwd() = %q, want %q", wd, want)
	}

	info, err := fsys.Stat("dir")
	if err != nil || !info.IsDir() {
		t.Errorf("Stat(dir) after Chdir = %v, %v", info, err)
	}

	// Absolute names ignore the root.
	reader, err := fsys.Open(filepath.Join(root, "hello.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil || string(data) != "hi" {
		t.Errorf("ReadAll = %q, %v", data, err)
	}
}

func TestChdirRejectsFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "f"), nil, 0o600); err != nil {
		t.Fatal(err)
	}

	if err := fileutil.NewOS(root).Chdir("f"); err == nil {
		t.Error("Chdir(file) = nil, want error")
	}
}

func TestFinalizeOutput(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	fsys := fileutil.NewOS(root)

	if err := os.WriteFile(filepath.Join(root, "f"), []byte("12345"), 0o600); err != nil {
		t.Fatal(err)
	}

	stamp := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	size, err := fileutil.FinalizeOutput(fsys, "f", true, stamp)
	if err != nil {
		t.Fatalf("FinalizeOutput: %v", err)
	}

	if size != 5 {
		t.Errorf("size = %d, want 5", size)
	}

	info, err := fsys.Stat("f")
	if err != nil {
		t.Fatal(err)
	}

	if !info.ModTime().Equal(stamp) {
		t.Errorf("ModTime = %v, want %v", info.ModTime(), stamp)
	}

	if _, err := fileutil.FinalizeOutput(fsys, "missing", false, stamp); err == nil {
		t.Error("FinalizeOutput(missing) = nil, want error")
	}
}
