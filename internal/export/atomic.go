// Package export writes the render and data outputs. Every writer streams
// into a temp file and renames it into place, so a failed run never leaves a
// partially written artifact behind.
package export

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

// writeAtomic streams the payload into path+".tmp" and renames it over path
// once the write has fully succeeded.
func writeAtomic(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	w := bufio.NewWriterSize(f, 1<<20)
	if err := write(w); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
