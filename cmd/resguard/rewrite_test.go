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

package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jessie345/AndResGuard/internal/arsc"
	"github.com/jessie345/AndResGuard/internal/renameplan"
	"github.com/jessie345/AndResGuard/internal/stringpool"
)

func buildUTF8PoolChunk(t *testing.T, entries []string) []byte {
	t.Helper()
	var payload []byte
	offsets := make([]uint32, len(entries))
	for i, e := range entries {
		offsets[i] = uint32(len(payload))
		b := []byte(e)
		payload = append(payload, byte(len(b)), byte(len(b)))
		payload = append(payload, b...)
		payload = append(payload, 0)
	}
	for len(payload)%4 != 0 {
		payload = append(payload, 0)
	}
	stringCount := uint32(len(entries))
	stringsOffset := uint32(stringpool.HeaderSize) + 4*stringCount
	totalSize := stringsOffset + uint32(len(payload))

	buf := make([]byte, 0, totalSize)
	put := func(v uint32) {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		buf = append(buf, b[:]...)
	}
	put(stringpool.ChunkType)
	put(totalSize)
	put(stringCount)
	put(0)
	put(stringpool.UTF8Flag)
	put(stringsOffset)
	put(0)
	for _, o := range offsets {
		put(o)
	}
	buf = append(buf, payload...)
	return buf
}

func wrapInTableChunk(t *testing.T, pool []byte) []byte {
	t.Helper()
	var buf []byte
	var b [8]byte
	binary.LittleEndian.PutUint16(b[0:], arsc.ResTableType)
	binary.LittleEndian.PutUint16(b[2:], 12)
	buf = append(buf, b[:]...)
	buf = append(buf, 0, 0, 0, 0) // package count, unused by the walker
	buf = append(buf, pool...)
	binary.LittleEndian.PutUint32(buf[4:], uint32(len(buf)))
	return buf
}

func TestApplyPlanRewritesTablePool(t *testing.T) {
	pool := buildUTF8PoolChunk(t, []string{"app_name", "button_ok"})
	data := wrapInTableChunk(t, pool)

	plan := &renameplan.Document{
		Table: []renameplan.TableNames{
			{Pool: "table", Rename: map[string]string{"app_name": "a"}},
		},
	}

	out, err := applyPlan(context.Background(), data, plan)
	require.NoError(t, err)

	locs, err := arsc.Locate(out)
	require.NoError(t, err)
	require.Len(t, locs, 1)

	p, err := stringpool.Read(bytes.NewReader(out[locs[0].Offset:locs[0].Offset+locs[0].Size]), false)
	require.NoError(t, err)
	s0, ok := p.Get(context.Background(), 0)
	require.True(t, ok)
	require.Equal(t, "a", s0)
	s1, ok := p.Get(context.Background(), 1)
	require.True(t, ok)
	require.Equal(t, "button_ok", s1)

	require.Equal(t, uint32(len(out)), binary.LittleEndian.Uint32(out[4:8]))
}

func TestApplyPlanLeavesUnmatchedPoolsUntouched(t *testing.T) {
	pool := buildUTF8PoolChunk(t, []string{"app_name"})
	data := wrapInTableChunk(t, pool)

	out, err := applyPlan(context.Background(), data, &renameplan.Document{})
	require.NoError(t, err)
	require.Equal(t, data, out)
}
