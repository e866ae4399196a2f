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

// Package stringpool is a codec for the Android resource String Pool
// chunk: the variable-length, encoding-polymorphic structure that backs
// every symbolic name and string constant in a compiled resources.arsc
// file and in binary XML resources. See https://android.googlesource.com/platform/frameworks/base/+/master/tools/aapt2/StringPool.cpp
// for the reference C++ implementation this codec is bit-compatible with.
package stringpool

import (
	"context"
	"unicode/utf16"

	"github.com/jessie345/AndResGuard/internal/log"
)

const (
	// ChunkType is the little-endian chunk-type tag of a string pool
	// chunk (RES_STRING_POOL_TYPE).
	ChunkType uint32 = 0x001C0001
	// NullChunkType is accepted as a synonym for ChunkType by Read and
	// WriteAll, for compatibility with certain malformed inputs observed
	// in the wild.
	NullChunkType uint32 = 0x00000000
	// UTF8Flag, when set in a pool's header flags, indicates payload
	// entries are UTF-8; otherwise they are UTF-16LE.
	UTF8Flag uint32 = 0x00000100
	// SortedFlag marks a pool as sorted. This codec preserves the flag
	// verbatim but, per spec.md's non-goals, never enforces sort order.
	SortedFlag uint32 = 0x00000001
	// HeaderSize is the fixed size, in bytes, of a string pool chunk's
	// header: 7 little-endian u32 fields (chunk type, chunk size, string
	// count, style count, flags, strings offset, styles offset).
	HeaderSize = 28
)

// StringPool is the in-memory representation of a parsed string pool
// chunk. It is read-only: the rewrite engine never mutates one, it only
// ever produces a fresh pool to hand to a writer. See spec.md §3 for the
// invariants every StringPool satisfies.
type StringPool struct {
	// IsUTF8 is derived from Flags&UTF8Flag.
	IsUTF8 bool
	// Flags is the raw header flag word, preserved verbatim on write.
	Flags uint32
	// StringOffsets holds, for each entry, the byte offset of its length
	// prefix relative to the start of Payload.
	StringOffsets []uint32
	// Payload holds every length-prefixed, null-terminated entry
	// concatenated together. len(Payload) is always a multiple of 4.
	Payload []byte
	// StyleOffsets is empty if the pool carries no styles.
	StyleOffsets []uint32
	// Styles holds the raw, opaque style spans; nil when StyleOffsets is
	// empty.
	Styles []uint32
}

// Count returns the number of entries in the pool.
func (p *StringPool) Count() int {
	return len(p.StringOffsets)
}

// RawOffset returns the byte offset, relative to the start of Payload, of
// entry i's length prefix.
func (p *StringPool) RawOffset(i int) (uint32, bool) {
	if i < 0 || i >= len(p.StringOffsets) {
		return 0, false
	}
	return p.StringOffsets[i], true
}

// Get decodes and returns entry i using the pool's active encoding. An
// out-of-range index returns ("", false) silently; a malformed entry
// returns ("", false) and logs a warning rather than failing, so a caller
// can survive a single corrupt entry during an exploratory read (spec.md
// §7). Decoding always trusts the entry's declared length field rather
// than scanning for a terminating null (spec.md §9's resolved Open
// Question).
func (p *StringPool) Get(ctx context.Context, i int) (string, bool) {
	off, ok := p.RawOffset(i)
	if !ok {
		return "", false
	}
	if p.IsUTF8 {
		dataOff, dataLen, err := decodeUTF8Entry(p.Payload, int(off))
		if err != nil {
			log.W(ctx, "stringpool: entry %d malformed (utf-8): %v", i, err)
			return "", false
		}
		return string(p.Payload[dataOff : dataOff+dataLen]), true
	}
	dataOff, dataLen, err := decodeUTF16Entry(p.Payload, int(off))
	if err != nil {
		log.W(ctx, "stringpool: entry %d malformed (utf-16le): %v", i, err)
		return "", false
	}
	units := make([]uint16, dataLen/2)
	for u := range units {
		units[u] = uint16(p.Payload[dataOff+u*2]) | uint16(p.Payload[dataOff+u*2+1])<<8
	}
	return string(utf16.Decode(units)), true
}

// Find performs a linear search for s, returning the index of the first
// matching entry. For a UTF-16LE pool, entries are compared code-unit by
// code-unit against the entry's declared char length rather than via a
// decode-then-compare, mirroring the reference implementation's search
// path. The reference implementation has no equivalent UTF-8 search path;
// this codec preserves that limitation rather than inventing new search
// semantics for it; a UTF-8 pool's Find always returns (0, false). See
// spec.md §4.3.
func (p *StringPool) Find(s string) (int, bool) {
	if p.IsUTF8 {
		return 0, false
	}
	want := utf16.Encode([]rune(s))
	for i, off := range p.StringOffsets {
		charCount, dataOff, err := readUTF16Length(p.Payload, int(off))
		if err != nil || charCount != len(want) {
			continue
		}
		match := true
		for u := 0; u < charCount; u++ {
			unit := uint16(p.Payload[dataOff+u*2]) | uint16(p.Payload[dataOff+u*2+1])<<8
			if unit != want[u] {
				match = false
				break
			}
		}
		if match {
			return i, true
		}
	}
	return 0, false
}
