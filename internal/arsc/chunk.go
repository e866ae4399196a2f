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

// Package arsc walks the generic Android resource chunk tree — the
// container format shared by a compiled resources.arsc table and a binary
// XML document — to locate every string pool chunk it contains, wherever
// it is nested. The string pool codec itself only understands a single
// chunk; this package is what lets a caller hand that codec the right byte
// range inside a real resources.arsc or AndroidManifest.xml.
package arsc

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Chunk type tags. Every resource chunk opens with a 2-byte type, a 2-byte
// header size, and a 4-byte total size (type and header size are packed
// into the low/high half-words of the same little-endian u32 word that
// stringpool.ChunkType compares whole).
const (
	ResNullType       uint16 = 0x0000
	ResStringPoolType uint16 = 0x0001
	ResTableType      uint16 = 0x0002
	ResXMLType        uint16 = 0x0003

	ResXMLFirstChunkType     uint16 = 0x0100
	ResXMLStartNamespaceType uint16 = 0x0100
	ResXMLEndNamespaceType   uint16 = 0x0101
	ResXMLStartElementType   uint16 = 0x0102
	ResXMLEndElementType     uint16 = 0x0103
	ResXMLCDataType          uint16 = 0x0104
	ResXMLLastChunkType      uint16 = 0x017f
	ResXMLResourceMapType    uint16 = 0x0180

	ResTablePackageType  uint16 = 0x0200
	ResTableTypeType     uint16 = 0x0201
	ResTableTypeSpecType uint16 = 0x0202
)

// ErrTruncatedChunk is returned when a chunk header or body runs past the
// end of the buffer being walked.
var ErrTruncatedChunk = errors.New("arsc: truncated chunk")

// ErrChunkTooSmall is returned when a chunk's declared size is smaller than
// its own header, which every chunk format in this family requires.
var ErrChunkTooSmall = errors.New("arsc: chunk size smaller than its header")

// Header is the 8-byte prefix common to every resource chunk.
type Header struct {
	Type       uint16
	HeaderSize uint16
	Size       uint32
}

func readHeader(data []byte, offset int) (Header, error) {
	if offset+8 > len(data) {
		return Header{}, ErrTruncatedChunk
	}
	h := Header{
		Type:       binary.LittleEndian.Uint16(data[offset:]),
		HeaderSize: binary.LittleEndian.Uint16(data[offset+2:]),
		Size:       binary.LittleEndian.Uint32(data[offset+4:]),
	}
	if int(h.HeaderSize) < 8 || h.Size < uint32(h.HeaderSize) {
		return Header{}, ErrChunkTooSmall
	}
	if offset+int(h.Size) > len(data) {
		return Header{}, ErrTruncatedChunk
	}
	return h, nil
}

// isContainer reports whether chunks of this type hold a sequence of
// further chunks in the region following their own header, rather than an
// opaque, type-specific body. RES_TABLE_PACKAGE_TYPE is a container in
// practice (its type-string and key-string pools, and its ResTableType
// children, all follow as ordinary nested chunks) even though its header
// also carries fixed package metadata fields this walker does not
// interpret.
func isContainer(t uint16) bool {
	switch t {
	case ResTableType, ResXMLType, ResTablePackageType:
		return true
	default:
		return false
	}
}
