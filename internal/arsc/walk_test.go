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

package arsc

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeHeader appends an 8-byte chunk header to buf and returns the new
// slice along with the offset of the size field, so a caller can patch it
// once the chunk's body length is known.
func writeHeader(buf []byte, typ, headerSize uint16, size uint32) ([]byte, int) {
	sizeOffset := len(buf) + 4
	var h [8]byte
	binary.LittleEndian.PutUint16(h[0:], typ)
	binary.LittleEndian.PutUint16(h[2:], headerSize)
	binary.LittleEndian.PutUint32(h[4:], size)
	return append(buf, h[:]...), sizeOffset
}

func patchUint32(buf []byte, offset int, v uint32) {
	binary.LittleEndian.PutUint32(buf[offset:], v)
}

func minimalStringPoolChunk() []byte {
	// An empty string pool chunk: 28-byte header, no entries, no styles.
	buf := make([]byte, 28)
	binary.LittleEndian.PutUint32(buf[0:], 0x001C0001)
	binary.LittleEndian.PutUint32(buf[4:], 28)
	binary.LittleEndian.PutUint32(buf[16:], 0x100)
	binary.LittleEndian.PutUint32(buf[20:], 28)
	return buf
}

func TestLocateFindsXMLStringPool(t *testing.T) {
	pool := minimalStringPoolChunk()
	body := append([]byte{}, pool...)
	body, _ = writeHeader(body, ResXMLEndElementType, 8, 8) // opaque trailing node chunk stand-in

	var buf []byte
	var sizeOff int
	buf, sizeOff = writeHeader(buf, ResXMLType, 8, 0)
	buf = append(buf, body...)
	patchUint32(buf, sizeOff, uint32(len(buf)))

	locs, err := Locate(buf)
	require.NoError(t, err)
	require.Len(t, locs, 1)
	require.Equal(t, KindXML, locs[0].Kind)
	require.Equal(t, 8, locs[0].Offset)
	require.Equal(t, 28, locs[0].Size)
	require.Equal(t, []int{4}, locs[0].Ancestors)
}

func TestLocateFindsNestedPackagePool(t *testing.T) {
	typePool := minimalStringPoolChunk()

	var pkgBuf []byte
	var pkgSizeOff int
	pkgBuf, pkgSizeOff = writeHeader(pkgBuf, ResTablePackageType, 8, 0)
	pkgBuf = append(pkgBuf, typePool...)
	patchUint32(pkgBuf, pkgSizeOff, uint32(len(pkgBuf)))

	globalPool := minimalStringPoolChunk()

	var tableBuf []byte
	var tableSizeOff int
	tableBuf, tableSizeOff = writeHeader(tableBuf, ResTableType, 12, 0)
	tableBuf = append(tableBuf, []byte{0, 0, 0, 0}...) // package-count field, unused by the walker
	tableBuf = append(tableBuf, globalPool...)
	tableBuf = append(tableBuf, pkgBuf...)
	patchUint32(tableBuf, tableSizeOff, uint32(len(tableBuf)))

	locs, err := Locate(tableBuf)
	require.NoError(t, err)
	require.Len(t, locs, 2)
	require.Equal(t, KindTableGlobal, locs[0].Kind)
	require.Equal(t, KindPackage, locs[1].Kind)
	require.Equal(t, []int{4, 12 + len(globalPool) + 4}, locs[1].Ancestors)
}

func TestPatchAdjustsAncestorSizes(t *testing.T) {
	pool := minimalStringPoolChunk()

	var buf []byte
	var sizeOff int
	buf, sizeOff = writeHeader(buf, ResXMLType, 8, 0)
	buf = append(buf, pool...)
	patchUint32(buf, sizeOff, uint32(len(buf)))
	origTotal := len(buf)

	locs, err := Locate(buf)
	require.NoError(t, err)
	require.Len(t, locs, 1)

	replacement := make([]byte, 32) // a 4-byte-larger replacement pool
	binary.LittleEndian.PutUint32(replacement[0:], 0x001C0001)
	binary.LittleEndian.PutUint32(replacement[4:], 32)

	patched := Patch(buf, locs[0], replacement)
	require.Equal(t, origTotal+4, len(patched))
	require.Equal(t, uint32(origTotal+4), binary.LittleEndian.Uint32(patched[4:8]))
}

func TestLocateRejectsTruncatedChunk(t *testing.T) {
	buf := []byte{0x01, 0x00, 0x08, 0x00, 0xFF, 0xFF, 0x00, 0x00}
	_, err := Locate(buf)
	require.Error(t, err)
}
