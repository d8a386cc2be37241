package fileutil

import (
	"os"
	"path/filepath"
	"time"

	"github.com/absfs/absfs"
)

// OS is an absfs.FileSystem backed by the host filesystem.
// Relative names resolve against root, or against the process working directory when root is empty.
type OS struct {
	root string
}

var _ absfs.FileSystem = (*OS)(nil)

// NewOS returns a filesystem rooted at root.
func NewOS(root string) *OS {
	return &OS{root: root}
}

func (o *OS) path(name string) string {
	if o.root == "" || filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(o.root, name)
}

// OpenFile opens name with the given flags and permissions.
func (o *OS) OpenFile(name string, flag int, perm os.FileMode) (absfs.File, error) {
	file, err := os.OpenFile(o.path(name), flag, perm)
	if err != nil {
		// Avoid returning a typed nil inside the interface.
		return nil, err
	}

	return file, nil
}

// Open opens name for reading.
func (o *OS) Open(name string) (absfs.File, error) {
	return o.OpenFile(name, os.O_RDONLY, 0)
}

// Create creates or truncates name.
func (o *OS) Create(name string) (absfs.File, error) {
	return o.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666) //nolint:mnd
}

func (o *OS) Mkdir(name string, perm os.FileMode) error {
	return os.Mkdir(o.path(name), perm)
}

func (o *OS) MkdirAll(name string, perm os.FileMode) error {
	return os.MkdirAll(o.path(name), perm)
}

func (o *OS) Remove(name string) error {
	return os.Remove(o.path(name))
}

func (o *OS) RemoveAll(name string) error {
	return os.RemoveAll(o.path(name))
}

func (o *OS) Rename(oldpath, newpath string) error {
	return os.Rename(o.path(oldpath), o.path(newpath))
}

// Stat follows symbolic links.
func (o *OS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(o.path(name))
}

func (o *OS) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(o.path(name), mode)
}

func (o *OS) Chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(o.path(name), atime, mtime)
}

func (o *OS) Chown(name string, uid, gid int) error {
	return os.Chown(o.path(name), uid, gid)
}

func (o *OS) Truncate(name string, size int64) error {
	return os.Truncate(o.path(name), size)
}

func (o *OS) Separator() uint8 {
	return os.PathSeparator
}

func (o *OS) ListSeparator() uint8 {
	return os.PathListSeparator
}

// Chdir changes the root that relative names resolve against.
func (o *OS) Chdir(dir string) error {
	info, err := os.Stat(o.path(dir))
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return &os.PathError{Op: "chdir", Path: dir, Err: os.ErrInvalid}
	}

	o.root = o.path(dir)

	return nil
}

// Getwd returns the root, or the process working directory when no root is set.
func (o *OS) Getwd() (string, error) {
	if o.root == "" {
		return os.Getwd()
	}

	return filepath.Abs(o.root)
}

func (o *OS) TempDir() string {
	return os.TempDir()
}
