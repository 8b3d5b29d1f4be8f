package layout

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Writer writes materialized files under a root directory.
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a writer on top of fs.
func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// Write creates root/folder/<file.Path> for every file, in order, and returns
// the absolute paths written. The first failure is returned wrapped with the
// path; files already written are left in place.
func (w *Writer) Write(root, folder string, files []File) ([]string, error) {
	base := filepath.Join(root, filepath.FromSlash(folder))
	written := make([]string, 0, len(files))
	for _, f := range files {
		p := filepath.Join(base, filepath.FromSlash(f.Path))
		if err := w.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return written, fmt.Errorf("create directory %s: %w", filepath.Dir(p), err)
		}
		if err := w.atomicWrite(p, []byte(f.Content)); err != nil {
			return written, fmt.Errorf("write %s: %w", p, err)
		}
		written = append(written, p)
	}
	return written, nil
}

// atomicWrite writes content to a fresh temp file beside path and renames
// it into place.
func (w *Writer) atomicWrite(path string, content []byte) error {
	f, err := afero.TempFile(w.fs, filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(content); err != nil {
		f.Close()
		_ = w.fs.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = w.fs.Remove(tmp)
		return err
	}
	if err := w.fs.Chmod(tmp, 0o644); err != nil {
		_ = w.fs.Remove(tmp)
		return err
	}
	if err := w.fs.Rename(tmp, path); err != nil {
		_ = w.fs.Remove(tmp)
		return err
	}
	return nil
}
