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
)

// Kind classifies a located string pool by the container it was found in,
// since a resources.arsc table and a binary XML document both nest pools
// the same way but a rename plan treats them differently (spec.md
// distinguishes rewrite_spec_names from rewrite_table_names by role, not
// by byte layout).
type Kind int

const (
	// KindUnknown is a string pool chunk found outside any container this
	// walker recognizes as a table or XML document (e.g. a bare pool
	// chunk handed in directly for testing).
	KindUnknown Kind = iota
	// KindTableGlobal is the value string pool directly under a
	// RES_TABLE_TYPE root: the pool rewrite_table_names targets.
	KindTableGlobal
	// KindPackage is a type-string or key-string pool nested inside a
	// RES_TABLE_PACKAGE_TYPE chunk: a pool rewrite_spec_names targets.
	KindPackage
	// KindXML is the string pool of a binary XML document (element and
	// attribute names and string values).
	KindXML
)

func (k Kind) String() string {
	switch k {
	case KindTableGlobal:
		return "table"
	case KindPackage:
		return "package"
	case KindXML:
		return "xml"
	default:
		return "unknown"
	}
}

// Location identifies a string pool chunk nested somewhere within a larger
// resource container, and every ancestor chunk whose Size field must be
// adjusted if the pool changes size.
type Location struct {
	Kind Kind
	// Offset is the byte offset, within the buffer originally passed to
	// Locate, of the pool chunk's own 8-byte header.
	Offset int
	// Size is the pool chunk's total size, header included, as declared
	// by its own header.
	Size int
	// Ancestors lists the byte offsets of every enclosing chunk's size
	// field (offset+4, ready for a direct binary.LittleEndian.PutUint32),
	// outermost first. Patch uses this to keep enclosing chunks' declared
	// sizes consistent after a pool is resized.
	Ancestors []int
}

// Locate walks data as a resource chunk tree and returns every string pool
// chunk found, in depth-first encounter order. It recurses into the
// container chunk types this family of formats defines (RES_TABLE_TYPE,
// RES_TABLE_PACKAGE_TYPE, RES_XML_TYPE) and treats every other chunk type
// as an opaque leaf, skipping its full declared size. This is enough to
// find every pool without fully modeling every chunk's type-specific
// fields.
func Locate(data []byte) ([]Location, error) {
	var out []Location
	if err := walk(data, 0, len(data), KindUnknown, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func walk(data []byte, start, end int, containerKind Kind, ancestors []int, out *[]Location) error {
	offset := start
	for offset < end {
		h, err := readHeader(data, offset)
		if err != nil {
			return err
		}
		chunkEnd := offset + int(h.Size)

		if h.Type == ResStringPoolType {
			kind := containerKind
			if kind == KindUnknown && len(ancestors) == 0 {
				kind = KindUnknown
			}
			*out = append(*out, Location{
				Kind:      kind,
				Offset:    offset,
				Size:      int(h.Size),
				Ancestors: append([]int(nil), ancestors...),
			})
		} else if isContainer(h.Type) {
			childKind := containerKind
			switch h.Type {
			case ResTableType:
				childKind = KindTableGlobal
			case ResTablePackageType:
				childKind = KindPackage
			case ResXMLType:
				childKind = KindXML
			}
			childAncestors := append(append([]int(nil), ancestors...), offset+4)
			if err := walk(data, offset+int(h.HeaderSize), chunkEnd, childKind, childAncestors, out); err != nil {
				return err
			}
		}

		offset = chunkEnd
	}
	return nil
}

// Patch replaces the pool chunk at loc with replacement and adjusts every
// ancestor chunk's declared size by the resulting delta. It returns a new
// buffer; data is left untouched.
func Patch(data []byte, loc Location, replacement []byte) []byte {
	out := make([]byte, 0, len(data)-loc.Size+len(replacement))
	out = append(out, data[:loc.Offset]...)
	out = append(out, replacement...)
	out = append(out, data[loc.Offset+loc.Size:]...)

	delta := int64(len(replacement)) - int64(loc.Size)
	if delta != 0 {
		for _, sizeOffset := range loc.Ancestors {
			cur := binary.LittleEndian.Uint32(out[sizeOffset:])
			binary.LittleEndian.PutUint32(out[sizeOffset:], uint32(int64(cur)+delta))
		}
	}
	return out
}
