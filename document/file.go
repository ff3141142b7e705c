// Copyright (c) 2026 MpackOps and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package document

import (
	"io"
	"io/fs"
	"sync"
)

// FileReader reads a payload file, opening it lazily on first read so
// it can be handed straight to [FromJSON] or [FromYAML], which take
// care of closing it.
type FileReader struct {
	fsys fs.FS
	path string

	openOnce sync.Once
	file     io.ReadCloser
}

// NewFileReader configures a FileReader for the payload at path.
func NewFileReader(fsys fs.FS, path string) *FileReader {
	return &FileReader{
		fsys: fsys,
		path: path,
	}
}

// Read implements the [io.Reader] interface.
func (r *FileReader) Read(b []byte) (int, error) {
	var err error
	r.openOnce.Do(func() {
		r.file, err = r.fsys.Open(r.path)
	})
	if err != nil {
		return 0, err
	}
	if r.file == nil {
		return 0, fs.ErrClosed
	}
	return r.file.Read(b)
}

// Close implements the [io.Closer] interface.
func (r *FileReader) Close() error {
	if r.file == nil {
		return nil
	}

	err := r.file.Close()
	r.file = nil
	return err
}
