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

package stringpool

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildPool hand-assembles a complete string pool chunk, byte for byte, per
// the on-disk layout in spec.md §6. It is independent of Read/the rewrite
// engine (only the entry encoders are shared), so tests built on it exercise
// the codec against a known-good fixture rather than against itself.
func buildPool(t *testing.T, utf8 bool, entries []string, styleOffsets, styleWords []uint32) []byte {
	t.Helper()

	flags := uint32(0)
	if utf8 {
		flags |= UTF8Flag
	}

	var payload []byte
	offsets := make([]uint32, len(entries))
	for i, e := range entries {
		offsets[i] = uint32(len(payload))
		entry, err := encodeName(utf8, e)
		require.NoError(t, err)
		payload = append(payload, entry...)
	}
	for len(payload)%4 != 0 {
		payload = append(payload, 0)
	}

	stringCount := uint32(len(entries))
	styleCount := uint32(len(styleOffsets))
	stringsOffset := uint32(HeaderSize) + 4*stringCount + 4*styleCount
	var stylesOffset uint32
	if styleCount > 0 {
		stylesOffset = stringsOffset + uint32(len(payload))
	}
	totalSize := stringsOffset + uint32(len(payload)) + 4*uint32(len(styleWords))

	buf := make([]byte, 0, totalSize)
	putU32 := func(v uint32) {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		buf = append(buf, b[:]...)
	}
	putU32(ChunkType)
	putU32(totalSize)
	putU32(stringCount)
	putU32(styleCount)
	putU32(flags)
	putU32(stringsOffset)
	putU32(stylesOffset)
	for _, o := range offsets {
		putU32(o)
	}
	for _, o := range styleOffsets {
		putU32(o)
	}
	buf = append(buf, payload...)
	for _, s := range styleWords {
		putU32(s)
	}
	return buf
}
