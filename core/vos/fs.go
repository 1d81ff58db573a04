package vos

import (
	"os"
	"time"

	"github.com/spf13/afero"
)

// VFS is the virtual filesystem commands operate on.
type VFS = afero.Fs

// PathMapper rewrites a path before it reaches the backing filesystem.
type PathMapper func(name string) string

// NewRelativeFs wraps base so that relative paths are resolved against the
// working directory reported by getwd at call time. Commands can then use
// paths exactly as typed by the user.
func NewRelativeFs(base afero.Fs, getwd func() string) afero.Fs {
	return NewPathMappingFs(base, func(name string) string {
		return Resolve(getwd(), name)
	})
}

// NewPathMappingFs maps all paths on a filesystem via callback before
// delegating to base.
func NewPathMappingFs(base afero.Fs, mapper PathMapper) afero.Fs {
	return &pathMappingFs{base: base, mapper: mapper}
}

type pathMappingFs struct {
	base   afero.Fs
	mapper PathMapper
}

var _ afero.Fs = (*pathMappingFs)(nil)

func (b *pathMappingFs) Name() string {
	return "pathMappingFs"
}

func (b *pathMappingFs) Create(name string) (afero.File, error) {
	return b.base.Create(b.mapper(name))
}

func (b *pathMappingFs) Mkdir(name string, perm os.FileMode) error {
	return b.base.Mkdir(b.mapper(name), perm)
}

func (b *pathMappingFs) MkdirAll(name string, perm os.FileMode) error {
	return b.base.MkdirAll(b.mapper(name), perm)
}

func (b *pathMappingFs) Open(name string) (afero.File, error) {
	return b.base.Open(b.mapper(name))
}

func (b *pathMappingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	return b.base.OpenFile(b.mapper(name), flag, perm)
}

func (b *pathMappingFs) Remove(name string) error {
	return b.base.Remove(b.mapper(name))
}

func (b *pathMappingFs) RemoveAll(name string) error {
	return b.base.RemoveAll(b.mapper(name))
}

func (b *pathMappingFs) Rename(oldname, newname string) error {
	return b.base.Rename(b.mapper(oldname), b.mapper(newname))
}

func (b *pathMappingFs) Stat(name string) (os.FileInfo, error) {
	return b.base.Stat(b.mapper(name))
}

func (b *pathMappingFs) Chmod(name string, mode os.FileMode) error {
	return b.base.Chmod(b.mapper(name), mode)
}

func (b *pathMappingFs) Chown(name string, uid, gid int) error {
	return b.base.Chown(b.mapper(name), uid, gid)
}

func (b *pathMappingFs) Chtimes(name string, atime, mtime time.Time) error {
	return b.base.Chtimes(b.mapper(name), atime, mtime)
}
