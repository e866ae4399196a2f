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

package renameplan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadParsesSpecAndTablePlans(t *testing.T) {
	doc, err := Load(strings.NewReader(`
spec:
  - pool: package/typeStrings
    names: [a, b, c]
table:
  - pool: global
    rename:
      app_name: a
      button_ok: b
`))
	require.NoError(t, err)
	require.Len(t, doc.Spec, 1)
	require.Equal(t, []string{"a", "b", "c"}, doc.Spec[0].Names)
	require.Len(t, doc.Table, 1)
	require.Equal(t, "a", doc.Table[0].Rename["app_name"])
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader(`
spec:
  - pool: package/typeStrings
    name: a
`))
	require.Error(t, err)
}

func TestLoadRejectsOverlongNames(t *testing.T) {
	_, err := Load(strings.NewReader(`
spec:
  - pool: p
    names: ["` + strings.Repeat("a", 0x8000) + `"]
`))
	require.ErrorIs(t, err, ErrNameTooLong)
}

func TestResolveTableRename(t *testing.T) {
	entries := []string{"app_name", "button_ok", "title"}
	get := func(i int) (string, bool) {
		if i < 0 || i >= len(entries) {
			return "", false
		}
		return entries[i], true
	}
	out := ResolveTableRename(len(entries), get, map[string]string{
		"app_name": "a",
		"missing":  "z",
	})
	require.Equal(t, map[int]string{0: "a"}, out)
}
