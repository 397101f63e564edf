// Package filesystem implements types.FS.
//
// Production code runs on the real disk through NewOS; tests swap in
// an afero MemMapFs through NewAferoFS. Both run through the same
// adapter, so the two paths cannot drift apart.
package filesystem

import (
	"io/fs"

	"github.com/disnet/flint-note-sub011/pkg/types"
	"github.com/spf13/afero"
)

type fsAdapter struct {
	inner afero.Fs
}

// NewOS returns a types.FS backed by the real filesystem.
func NewOS() types.FS {
	return NewAferoFS(afero.NewOsFs())
}

// NewAferoFS adapts any afero.Fs to types.FS.
func NewAferoFS(inner afero.Fs) types.FS {
	return &fsAdapter{inner: inner}
}

func (f *fsAdapter) Stat(name string) (fs.FileInfo, error) {
	return f.inner.Stat(name)
}

// ReadFile rejects directories up front; MemMapFs would otherwise
// hand back nonsense content for them.
func (f *fsAdapter) ReadFile(name string) ([]byte, error) {
	info, err := f.inner.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(f.inner, name)
}

func (f *fsAdapter) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(f.inner, name, data, perm)
}

func (f *fsAdapter) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := afero.ReadDir(f.inner, name)
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = fs.FileInfoToDirEntry(info)
	}
	return entries, nil
}

func (f *fsAdapter) MkdirAll(path string, perm fs.FileMode) error {
	return f.inner.MkdirAll(path, perm)
}
