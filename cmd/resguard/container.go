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

package main

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/jessie345/AndResGuard/internal/vfs"
)

// container bundles the bytes of the file a verb operates on together with
// a save function that writes a replacement back to wherever it came from:
// in place for a raw arsc/xml file, or as a re-zipped entry for an apk.
type container struct {
	data []byte
	save func(replacement []byte) error
}

// loadContainer opens path for a verb. When entry is non-empty, path is
// treated as a zip archive (an apk) and entry names the file inside it to
// operate on; otherwise path itself is read and written directly.
func loadContainer(path, entry string) (*container, error) {
	if entry == "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "resguard: read %q", path)
		}
		return &container{
			data: data,
			save: func(replacement []byte) error {
				return os.WriteFile(path, replacement, 0o644)
			},
		}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resguard: open %q", path)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "resguard: stat %q", path)
	}

	z, err := vfs.NewZip(f, info.Size())
	if err != nil {
		return nil, errors.Wrapf(err, "resguard: open %q as zip", path)
	}
	r, err := z.OpenForRead(entry)
	if err != nil {
		return nil, errors.Wrapf(err, "resguard: entry %q", entry)
	}
	data, err := io.ReadAll(r)
	r.Close()
	if err != nil {
		return nil, errors.Wrapf(err, "resguard: read entry %q", entry)
	}

	return &container{
		data: data,
		save: func(replacement []byte) error {
			w, err := z.OpenForWrite(entry)
			if err != nil {
				return err
			}
			if _, err := w.Write(replacement); err != nil {
				w.Close()
				return err
			}
			if err := w.Close(); err != nil {
				return err
			}
			out, err := os.Create(path)
			if err != nil {
				return err
			}
			defer out.Close()
			return z.WriteTo(out)
		},
	}, nil
}

// isApkPath reports whether path ends in ".apk", ignoring case. The verbs
// do not call it: they treat a path as an apk only when -entry is given.
func isApkPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".apk")
}
