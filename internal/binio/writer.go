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

package binio

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Writer encodes little-endian values to an underlying io.Writer, with the
// same sticky-error behavior as Reader.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w for little-endian encoding.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered by this Writer, or nil.
func (w *Writer) Err() error { return w.err }

// SetErr records err as the Writer's sticky error if one isn't already set.
func (w *Writer) SetErr(err error) {
	if w.err == nil {
		w.err = err
	}
}

// Bytes writes b verbatim.
func (w *Writer) Bytes(b []byte) {
	if w.err != nil {
		return
	}
	n, err := w.w.Write(b)
	if err != nil {
		w.err = errors.Wrap(err, "short write")
		return
	}
	if n != len(b) {
		w.err = io.ErrShortWrite
	}
}

// Uint8 writes a single byte.
func (w *Writer) Uint8(v uint8) {
	w.Bytes([]byte{v})
}

// Uint16 writes a little-endian 16 bit value.
func (w *Writer) Uint16(v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	w.Bytes(buf[:])
}

// Uint32 writes a little-endian 32 bit value.
func (w *Writer) Uint32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.Bytes(buf[:])
}

// Uint32Array writes vs as successive little-endian 32 bit values.
func (w *Writer) Uint32Array(vs []uint32) {
	if len(vs) == 0 {
		return
	}
	buf := make([]byte, len(vs)*4)
	for i, v := range vs {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	w.Bytes(buf)
}

// Tee copies exactly n bytes from r to w verbatim, without interpreting
// them. Used for pass-through copies of chunk bodies that aren't being
// rewritten.
func (w *Writer) Tee(r *Reader, n int) {
	if w.err != nil || r.err != nil {
		return
	}
	if n == 0 {
		return
	}
	buf := r.Bytes(n)
	if r.err != nil {
		w.err = r.err
		return
	}
	w.Bytes(buf)
}

// WriteCheckChunkType reads a chunk-type tag from r, validates it against
// expected (per Reader.ChunkType), and writes the same value to w. The
// value read is returned regardless of outcome.
func (w *Writer) WriteCheckChunkType(r *Reader, expected uint32, alsoNull bool) uint32 {
	got := r.ChunkType(expected, alsoNull)
	if r.err != nil {
		w.err = r.err
		return got
	}
	w.Uint32(got)
	return got
}
