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

// Package poolstats reports how much of a string pool's bulk is
// redundant, as a diagnostic for deciding whether a pool is worth
// rewriting at all: a pool of mostly unique, already-short names gains
// little from renaming, while one full of long, repetitive resource IDs
// (the common case for aapt-generated type and key string pools) stands
// to shrink substantially. It measures this by training an FSST symbol
// table on the pool's decoded entries and reporting the ratio between
// encoded and raw size, rather than hand-rolling an entropy estimate.
package poolstats

import (
	"context"

	"github.com/axiomhq/fsst"

	"github.com/jessie345/AndResGuard/internal/stringpool"
)

// Report summarizes one pool's size and compressibility.
type Report struct {
	// Entries is the number of strings in the pool.
	Entries int
	// RawBytes is the total size, in bytes, of every entry's decoded
	// string form concatenated together.
	RawBytes int
	// EncodedBytes is the total size FSST needed to encode the same
	// strings, after training a symbol table on them.
	EncodedBytes int
}

// Ratio returns EncodedBytes/RawBytes, or 1 for an empty pool. A value
// well below 1 indicates a pool with a lot of shared structure across
// entries (e.g. "ic_launcher_round", "ic_launcher_background" sharing the
// "ic_launcher" prefix).
func (r Report) Ratio() float64 {
	if r.RawBytes == 0 {
		return 1
	}
	return float64(r.EncodedBytes) / float64(r.RawBytes)
}

// Estimate decodes every entry of p and reports its FSST compressibility.
func Estimate(ctx context.Context, p *stringpool.StringPool) Report {
	entries := make([][]byte, 0, p.Count())
	rawBytes := 0
	for i := 0; i < p.Count(); i++ {
		s, ok := p.Get(ctx, i)
		if !ok {
			continue
		}
		b := []byte(s)
		entries = append(entries, b)
		rawBytes += len(b)
	}

	if len(entries) == 0 {
		return Report{Entries: p.Count()}
	}

	table := fsst.Train(entries)
	encoded := 0
	for _, e := range entries {
		encoded += len(table.EncodeAll(e))
	}

	return Report{
		Entries:      p.Count(),
		RawBytes:     rawBytes,
		EncodedBytes: encoded,
	}
}
