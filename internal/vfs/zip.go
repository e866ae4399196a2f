// Copyright (C) 2026 The AndResGuard Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vfs

import (
	"archive/zip"
	"bytes"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrZipSlip is returned when an archive entry's name would resolve
// outside the archive root once joined and cleaned, a sign of a
// maliciously crafted zip. See https://snyk.io/research/zip-slip-vulnerability.
var ErrZipSlip = errors.New("vfs: illegal zip entry path")

// Zip is a Directory backed by an APK (or any zip archive) held entirely
// in memory. Unlike FS, writes are buffered: nothing is committed back to
// an underlying writer until WriteTo is called, since archive/zip has no
// way to update a single entry of an existing archive in place.
type Zip struct {
	entries map[string][]byte
	dirs    map[string]bool
	order   []string
}

// NewZip reads every entry of the archive in r (of the given size) into
// memory.
func NewZip(r io.ReaderAt, size int64) (*Zip, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, errors.Wrap(err, "vfs: open zip")
	}
	z := &Zip{
		entries: make(map[string][]byte),
		dirs:    make(map[string]bool),
	}
	for _, f := range zr.File {
		name := path.Clean(f.Name)
		if strings.HasPrefix(name, "../") || name == ".." {
			return nil, errors.Wrapf(ErrZipSlip, "%q", f.Name)
		}
		if f.FileInfo().IsDir() {
			z.dirs[name] = true
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, errors.Wrapf(err, "vfs: open zip entry %q", f.Name)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "vfs: read zip entry %q", f.Name)
		}
		z.entries[name] = data
		z.order = append(z.order, name)
	}
	return z, nil
}

// NewEmptyZip returns a Zip with no entries, for building an archive from
// scratch.
func NewEmptyZip() *Zip {
	return &Zip{entries: make(map[string][]byte), dirs: make(map[string]bool)}
}

// ListFiles implements Directory.
func (z *Zip) ListFiles() ([]string, error) {
	out := make([]string, 0, len(z.entries))
	for name := range z.entries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// ListDirs implements Directory.
func (z *Zip) ListDirs() ([]string, error) {
	seen := map[string]bool{"": true}
	var out []string
	add := func(d string) {
		for {
			if seen[d] {
				return
			}
			seen[d] = true
			out = append(out, d)
			parent, _ := Split(d)
			d = parent
		}
	}
	for d := range z.dirs {
		add(d)
	}
	for name := range z.entries {
		dir, _ := Split(name)
		add(dir)
	}
	out = append(out, "")
	sort.Strings(out)
	return out, nil
}

// OpenForRead implements Directory.
func (z *Zip) OpenForRead(path string) (io.ReadCloser, error) {
	data, ok := z.entries[path]
	if !ok {
		return nil, errors.Wrapf(errors.New("vfs: no such entry"), "%q", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

type zipWriteCloser struct {
	z    *Zip
	name string
	buf  bytes.Buffer
}

func (w *zipWriteCloser) Write(p []byte) (int, error) { return w.buf.Write(p) }

func (w *zipWriteCloser) Close() error {
	if _, exists := w.z.entries[w.name]; !exists {
		w.z.order = append(w.z.order, w.name)
	}
	w.z.entries[w.name] = w.buf.Bytes()
	return nil
}

// OpenForWrite implements Directory. Data is buffered in memory and only
// becomes part of the archive's entry set when the returned writer is
// closed; nothing is written to an underlying file until WriteTo runs.
func (z *Zip) OpenForWrite(path string) (io.WriteCloser, error) {
	dir, _ := Split(path)
	if dir != "" {
		z.dirs[dir] = true
	}
	return &zipWriteCloser{z: z, name: path}, nil
}

// CreateDir implements Directory.
func (z *Zip) CreateDir(path string) error {
	z.dirs[path] = true
	return nil
}

// RemoveFile implements Directory.
func (z *Zip) RemoveFile(path string) error {
	if _, ok := z.entries[path]; !ok {
		return nil
	}
	delete(z.entries, path)
	for i, name := range z.order {
		if name == path {
			z.order = append(z.order[:i], z.order[i+1:]...)
			break
		}
	}
	return nil
}

// WriteTo serializes every current entry into a fresh zip archive written
// to w, in the order entries were first seen (matching NewZip's read
// order where an entry was never rewritten, which keeps incidental diffs
// in an otherwise-unchanged APK minimal).
func (z *Zip) WriteTo(w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, name := range z.order {
		data, ok := z.entries[name]
		if !ok {
			continue
		}
		fw, err := zw.Create(name)
		if err != nil {
			return errors.Wrapf(err, "vfs: create zip entry %q", name)
		}
		if _, err := fw.Write(data); err != nil {
			return errors.Wrapf(err, "vfs: write zip entry %q", name)
		}
	}
	return zw.Close()
}
