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

// Package binio is a minimal little-endian binary I/O adapter for Android
// resource chunks. It follows the sticky-error Reader/Writer shape of
// gapid's core/data/binary and core/data/endian packages: every method
// becomes a no-op once an error has been recorded, so a caller can issue a
// whole sequence of reads or writes and check Err() once at the end rather
// than threading an error return through every call. Android chunk streams
// are always little-endian, so unlike the teacher package there is no
// device.Endian parameter.
package binio

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// ErrUnexpectedChunkType is wrapped with the offending and expected values
// whenever ChunkType observes a value that is neither the expected type nor
// (when allowed) the null-chunk synonym.
var ErrUnexpectedChunkType = errors.New("unexpected chunk type")

// Reader decodes little-endian values from an underlying io.Reader. Once an
// operation fails, every subsequent operation is a no-op returning the zero
// value; Err reports the first error encountered.
type Reader struct {
	r   io.Reader
	err error
}

// NewReader wraps r for little-endian decoding.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Err returns the first error encountered by this Reader, or nil.
func (r *Reader) Err() error { return r.err }

// SetErr records err as the Reader's sticky error if one isn't already set.
func (r *Reader) SetErr(err error) {
	if r.err == nil {
		r.err = err
	}
}

// ReadExact fills buf in its entirety or records an error.
func (r *Reader) ReadExact(buf []byte) {
	if r.err != nil {
		return
	}
	if _, err := io.ReadFull(r.r, buf); err != nil {
		r.err = errors.Wrap(err, "short read")
	}
}

// Bytes reads and returns n raw bytes.
func (r *Reader) Bytes(n int) []byte {
	buf := make([]byte, n)
	r.ReadExact(buf)
	if r.err != nil {
		return nil
	}
	return buf
}

// Uint8 reads a single byte.
func (r *Reader) Uint8() uint8 {
	var buf [1]byte
	r.ReadExact(buf[:])
	return buf[0]
}

// Uint16 reads a little-endian 16 bit value.
func (r *Reader) Uint16() uint16 {
	var buf [2]byte
	r.ReadExact(buf[:])
	if r.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint16(buf[:])
}

// Uint32 reads a little-endian 32 bit value.
func (r *Reader) Uint32() uint32 {
	var buf [4]byte
	r.ReadExact(buf[:])
	if r.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint32(buf[:])
}

// Uint32Array reads n little-endian 32 bit values.
func (r *Reader) Uint32Array(n int) []uint32 {
	if n == 0 {
		return nil
	}
	buf := r.Bytes(n * 4)
	if r.err != nil {
		return nil
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return out
}

// ChunkType reads a u32 chunk-type tag and validates it against expected.
// When alsoNull is true, the all-zero null-chunk tag is also accepted (some
// malformed real-world resource tables use it as a padding synonym). The
// raw value read is always returned, even on mismatch, so a caller that
// wants to report more context can do so; the Reader's sticky error is set
// to ErrUnexpectedChunkType on mismatch.
func (r *Reader) ChunkType(expected uint32, alsoNull bool) uint32 {
	got := r.Uint32()
	if r.err != nil {
		return got
	}
	if got == expected {
		return got
	}
	if alsoNull && got == 0 {
		return got
	}
	r.err = errors.Wrapf(ErrUnexpectedChunkType, "want 0x%08X, got 0x%08X", expected, got)
	return got
}
