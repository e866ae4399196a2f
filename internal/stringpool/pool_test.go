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
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringPoolGetUTF8(t *testing.T) {
	raw := buildPool(t, true, []string{"ok"}, nil, nil)
	p, err := Read(bytes.NewReader(raw), false)
	require.NoError(t, err)
	require.Equal(t, 1, p.Count())

	s, ok := p.Get(context.Background(), 0)
	require.True(t, ok)
	require.Equal(t, "ok", s)

	_, ok = p.Get(context.Background(), 1)
	require.False(t, ok)
}

func TestStringPoolGetUTF16(t *testing.T) {
	raw := buildPool(t, false, []string{"app", "res"}, nil, nil)
	p, err := Read(bytes.NewReader(raw), false)
	require.NoError(t, err)

	s, ok := p.Get(context.Background(), 0)
	require.True(t, ok)
	require.Equal(t, "app", s)

	s, ok = p.Get(context.Background(), 1)
	require.True(t, ok)
	require.Equal(t, "res", s)
}

func TestStringPoolFindUTF16(t *testing.T) {
	raw := buildPool(t, false, []string{"app", "res", "id"}, nil, nil)
	p, err := Read(bytes.NewReader(raw), false)
	require.NoError(t, err)

	i, ok := p.Find("res")
	require.True(t, ok)
	require.Equal(t, 1, i)

	_, ok = p.Find("missing")
	require.False(t, ok)
}

func TestStringPoolFindUTF8AlwaysMisses(t *testing.T) {
	raw := buildPool(t, true, []string{"app"}, nil, nil)
	p, err := Read(bytes.NewReader(raw), false)
	require.NoError(t, err)

	_, ok := p.Find("app")
	require.False(t, ok)
}

func TestStringPoolCountAndRawOffset(t *testing.T) {
	raw := buildPool(t, true, []string{"a", "bb"}, nil, nil)
	p, err := Read(bytes.NewReader(raw), false)
	require.NoError(t, err)
	require.Equal(t, 2, p.Count())

	off, ok := p.RawOffset(0)
	require.True(t, ok)
	require.Equal(t, uint32(0), off)

	_, ok = p.RawOffset(2)
	require.False(t, ok)
}
