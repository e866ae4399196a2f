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
	"io"

	"github.com/pkg/errors"

	"github.com/jessie345/AndResGuard/internal/binio"
)

// parsedHeader is the fixed 28-byte string pool header, decoded but not
// yet interpreted into a StringPool.
type parsedHeader struct {
	chunkSize     uint32
	stringCount   uint32
	styleCount    uint32
	flags         uint32
	stringsOffset uint32
	stylesOffset  uint32
}

func readHeader(br *binio.Reader, alsoNullChunkType bool) (parsedHeader, error) {
	br.ChunkType(ChunkType, alsoNullChunkType)
	var h parsedHeader
	h.chunkSize = br.Uint32()
	h.stringCount = br.Uint32()
	h.styleCount = br.Uint32()
	h.flags = br.Uint32()
	h.stringsOffset = br.Uint32()
	h.stylesOffset = br.Uint32()
	return h, classifyReadErr(br.Err())
}

// classifyReadErr turns binio's generic chunk-type mismatch into this
// package's ErrInvalidChunkType, and passes every other error (I/O
// failures) through unchanged, per spec.md §7.
func classifyReadErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, binio.ErrUnexpectedChunkType) {
		return errors.Wrap(ErrInvalidChunkType, err.Error())
	}
	return err
}

func payloadSizeOf(h parsedHeader) (uint32, error) {
	var size uint32
	if h.stylesOffset == 0 {
		size = h.chunkSize - h.stringsOffset
	} else {
		size = h.stylesOffset - h.stringsOffset
	}
	if size%4 != 0 {
		return 0, ErrUnalignedPayload
	}
	return size, nil
}

func styleWordCountOf(h parsedHeader) (int, error) {
	diff := h.chunkSize - h.stylesOffset
	if diff%4 != 0 {
		return 0, ErrUnalignedStyles
	}
	return int(diff / 4), nil
}

// Read consumes a string-pool chunk (or, if alsoNullChunkType is true, a
// null-chunk synonym) positioned at r and returns the parsed pool. See
// spec.md §4.4.1.
func Read(r io.Reader, alsoNullChunkType bool) (*StringPool, error) {
	br := binio.NewReader(r)
	h, err := readHeader(br, alsoNullChunkType)
	if err != nil {
		return nil, err
	}

	stringOffsets := br.Uint32Array(int(h.stringCount))
	var styleOffsets []uint32
	if h.styleCount > 0 {
		styleOffsets = br.Uint32Array(int(h.styleCount))
	}
	if err := classifyReadErr(br.Err()); err != nil {
		return nil, err
	}

	payloadSize, err := payloadSizeOf(h)
	if err != nil {
		return nil, err
	}
	payload := br.Bytes(int(payloadSize))

	var styles []uint32
	if h.stylesOffset != 0 {
		n, err := styleWordCountOf(h)
		if err != nil {
			return nil, err
		}
		styles = br.Uint32Array(n)
	}
	if err := classifyReadErr(br.Err()); err != nil {
		return nil, err
	}

	return &StringPool{
		IsUTF8:        h.flags&UTF8Flag != 0,
		Flags:         h.flags,
		StringOffsets: stringOffsets,
		Payload:       payload,
		StyleOffsets:  styleOffsets,
		Styles:        styles,
	}, nil
}

// WriteAll validates the chunk type at r and copies the chunk verbatim to
// w, for pools that aren't being rewritten. See spec.md §4.4.2.
func WriteAll(r io.Reader, w io.Writer, alsoNullChunkType bool) error {
	br := binio.NewReader(r)
	bw := binio.NewWriter(w)

	bw.WriteCheckChunkType(br, ChunkType, alsoNullChunkType)
	if err := classifyReadErr(br.Err()); err != nil {
		return err
	}
	if err := bw.Err(); err != nil {
		return errors.Wrap(err, "stringpool: write_all")
	}

	chunkSize := br.Uint32()
	bw.Uint32(chunkSize)
	if err := classifyReadErr(br.Err()); err != nil {
		return err
	}

	bw.Tee(br, int(chunkSize)-8)
	if err := br.Err(); err != nil {
		return errors.Wrap(err, "stringpool: write_all body")
	}
	if err := bw.Err(); err != nil {
		return errors.Wrap(err, "stringpool: write_all body")
	}
	return nil
}

func encodeName(utf8 bool, name string) ([]byte, error) {
	if utf8 {
		return encodeUTF8Entry(name)
	}
	return encodeUTF16Entry(name)
}

// RewriteSpecNames replaces the entire string table of the pool at r with
// newNames, in order, and writes the result to w. The input pool must
// carry no styles (ErrUnexpectedStyles otherwise); this form is for
// attribute/type-name pools, which never carry styles by convention. It
// returns the difference between the original and new chunk sizes (so a
// caller can adjust an enclosing chunk's size field) and the index each
// name in newNames was assigned, in newNames' iteration order. See
// spec.md §4.4.3.
func RewriteSpecNames(r io.Reader, w io.Writer, newNames []string) (remaining int32, assignedIndex map[string]int, err error) {
	br := binio.NewReader(r)
	h, err := readHeader(br, false)
	if err != nil {
		return 0, nil, err
	}
	if h.styleCount != 0 {
		return 0, nil, ErrUnexpectedStyles
	}

	// Discard the original offset table and payload; spec-name rewrite
	// replaces the whole string table.
	br.Uint32Array(int(h.stringCount))
	payloadSize, perr := payloadSizeOf(h)
	if perr == nil {
		br.Bytes(int(payloadSize))
	}
	if err := classifyReadErr(br.Err()); err != nil {
		return 0, nil, err
	}
	if perr != nil {
		return 0, nil, perr
	}

	utf8 := h.flags&UTF8Flag != 0
	payload := make([]byte, 0, 64)
	offsets := make([]uint32, 0, len(newNames))
	assignedIndex = make(map[string]int, len(newNames))
	for i, name := range newNames {
		entry, eerr := encodeName(utf8, name)
		if eerr != nil {
			return 0, nil, errors.Wrapf(eerr, "stringpool: encode name %q", name)
		}
		offsets = append(offsets, uint32(len(payload)))
		payload = append(payload, entry...)
		assignedIndex[name] = i
	}
	for len(payload)%4 != 0 {
		payload = append(payload, 0)
	}

	newStringsOffset := uint32(HeaderSize) + 4*uint32(len(offsets))
	totalSize := newStringsOffset + uint32(len(payload))

	bw := binio.NewWriter(w)
	bw.Uint32(ChunkType)
	bw.Uint32(totalSize)
	bw.Uint32(uint32(len(offsets)))
	bw.Uint32(0)
	bw.Uint32(h.flags)
	bw.Uint32(newStringsOffset)
	bw.Uint32(0)
	bw.Uint32Array(offsets)
	bw.Bytes(payload)
	if err := bw.Err(); err != nil {
		return 0, nil, errors.Wrap(err, "stringpool: rewrite_spec_names write")
	}

	return int32(h.chunkSize) - int32(totalSize), assignedIndex, nil
}

// RewriteTableNames substitutes the strings at the indices named in
// rename, leaving every other entry byte-identical, and preserves any
// styles verbatim. This form is for the global value pool, which may
// carry styles. It returns the difference between the original and new
// chunk sizes. See spec.md §4.4.4.
func RewriteTableNames(r io.Reader, w io.Writer, rename map[int]string) (remaining int32, err error) {
	br := binio.NewReader(r)
	h, err := readHeader(br, false)
	if err != nil {
		return 0, err
	}

	origOffsets := br.Uint32Array(int(h.stringCount))
	var origStyleOffsets []uint32
	if h.styleCount > 0 {
		origStyleOffsets = br.Uint32Array(int(h.styleCount))
	}
	if err := classifyReadErr(br.Err()); err != nil {
		return 0, err
	}
	payloadSize, perr := payloadSizeOf(h)
	if perr != nil {
		return 0, perr
	}
	origPayload := br.Bytes(int(payloadSize))

	var styleWords []uint32
	if h.stylesOffset != 0 {
		n, werr := styleWordCountOf(h)
		if werr != nil {
			return 0, werr
		}
		styleWords = br.Uint32Array(n)
	}
	if err := classifyReadErr(br.Err()); err != nil {
		return 0, err
	}

	utf8 := h.flags&UTF8Flag != 0
	newOffsets := make([]uint32, len(origOffsets))
	payload := make([]byte, 0, len(origPayload))
	for i := range origOffsets {
		newOffsets[i] = uint32(len(payload))
		if name, ok := rename[i]; ok {
			entry, eerr := encodeName(utf8, name)
			if eerr != nil {
				return 0, errors.Wrapf(eerr, "stringpool: encode name %q at index %d", name, i)
			}
			payload = append(payload, entry...)
			continue
		}
		start := origOffsets[i]
		end := uint32(len(origPayload))
		if i+1 < len(origOffsets) {
			end = origOffsets[i+1]
		}
		payload = append(payload, origPayload[start:end]...)
	}
	for len(payload)%4 != 0 {
		payload = append(payload, 0)
	}

	newStringsOffset := uint32(HeaderSize) + 4*uint32(len(newOffsets)) + 4*uint32(len(origStyleOffsets))
	var newStylesOffset uint32
	if h.stylesOffset != 0 {
		newStylesOffset = newStringsOffset + uint32(len(payload))
	}
	totalSize := newStringsOffset + uint32(len(payload)) + 4*uint32(len(styleWords))

	bw := binio.NewWriter(w)
	bw.Uint32(ChunkType)
	bw.Uint32(totalSize)
	bw.Uint32(h.stringCount)
	bw.Uint32(h.styleCount)
	bw.Uint32(h.flags)
	bw.Uint32(newStringsOffset)
	bw.Uint32(newStylesOffset)
	bw.Uint32Array(newOffsets)
	if len(origStyleOffsets) > 0 {
		bw.Uint32Array(origStyleOffsets)
	}
	bw.Bytes(payload)
	if len(styleWords) > 0 {
		bw.Uint32Array(styleWords)
	}
	if err := bw.Err(); err != nil {
		return 0, errors.Wrap(err, "stringpool: rewrite_table_names write")
	}

	return int32(h.chunkSize) - int32(totalSize), nil
}
