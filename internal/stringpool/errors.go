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

import "errors"

// Format errors. These abort the current chunk; callers treat them as fatal
// for the artifact being processed, per spec.md's error handling design.
var (
	// ErrInvalidChunkType is returned when the leading chunk-type tag is
	// neither CHUNK_STRINGPOOL_TYPE nor (where accepted) CHUNK_NULL_TYPE.
	ErrInvalidChunkType = errors.New("stringpool: invalid chunk type")

	// ErrUnalignedPayload is returned when a parsed payload's size is not
	// a multiple of 4 bytes.
	ErrUnalignedPayload = errors.New("stringpool: payload size is not 4-byte aligned")

	// ErrUnalignedStyles is returned when a parsed style trailer's size is
	// not a multiple of 4 bytes.
	ErrUnalignedStyles = errors.New("stringpool: style trailer size is not 4-byte aligned")

	// ErrUnexpectedStyles is returned by RewriteSpecNames when the input
	// pool carries styles; spec-name pools never carry styles by
	// convention and this codec refuses to silently drop them.
	ErrUnexpectedStyles = errors.New("stringpool: spec-name rewrite of a pool that carries styles")

	// ErrEncodingLengthMismatch is returned when a name's declared char
	// count doesn't match its encoded byte length under the short-form
	// assumption described in spec.md's length codec (ASCII-only for
	// UTF-8, BMP-only for UTF-16LE).
	ErrEncodingLengthMismatch = errors.New("stringpool: name's char length doesn't match its encoded byte length")

	// ErrNameTooLong is returned when a name's length would require the
	// long-form length prefix; the rewrite engine only ever emits
	// short-form entries.
	ErrNameTooLong = errors.New("stringpool: name too long for short-form length prefix")
)
