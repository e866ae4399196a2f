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

// Package renameplan loads the user-authored YAML documents that tell the
// rewrite engine what to rename. A plan never names byte offsets or pool
// indices directly; it is resolved against a parsed stringpool.StringPool
// at rewrite time, by name or by position, which keeps a plan portable
// across two builds of an app whose underlying pool layout differs.
package renameplan

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrNameTooLong is returned when a plan names a replacement string too
// long for a short-form length prefix under either encoding (see
// checkLength); resolving it earlier here produces a much clearer error
// than letting the rewrite engine's own ErrNameTooLong surface deep inside
// a chunk walk.
var ErrNameTooLong = errors.New("renameplan: replacement name exceeds short-form length limit")

const (
	utf8ShortLimit  = 0x80
	utf16ShortLimit = 0x8000
)

// SpecNames is a rewrite_spec_names plan: the full, ordered replacement
// string table for a spec pool (attribute or type names), listed in pool
// order.
type SpecNames struct {
	// Pool names the kind of pool this plan applies to ("package" or
	// "xml"), compared by the caller against an arsc.Location's
	// Kind.String(). The plan is applied to every located pool of that
	// kind; a package's type-string and key-string pools are not told
	// apart.
	Pool string `yaml:"pool"`
	// Names lists replacements in original pool order: Names[i] replaces
	// the i'th original entry. A plan that doesn't want to touch an entry
	// still lists its original (unchanged) value.
	Names []string `yaml:"names"`
}

// TableNames is a rewrite_table_names plan: a sparse substitution map for
// the global value pool, by original string.
type TableNames struct {
	Pool string `yaml:"pool"`
	// Rename maps an original string to its replacement. Only entries
	// that match an original string present in the target pool are
	// applied; everything else in the pool is left untouched.
	Rename map[string]string `yaml:"rename"`
}

// Document is the top-level shape of a rename plan file: zero or more
// spec-name plans and zero or more table-name plans, applied independently
// against whichever pools they name.
type Document struct {
	Spec  []SpecNames  `yaml:"spec"`
	Table []TableNames `yaml:"table"`
}

// Load parses a rename plan document from r.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "renameplan: parse")
	}
	for _, s := range doc.Spec {
		for _, name := range s.Names {
			if err := checkLength(name); err != nil {
				return nil, errors.Wrapf(err, "renameplan: pool %q", s.Pool)
			}
		}
	}
	for _, tbl := range doc.Table {
		for _, name := range tbl.Rename {
			if err := checkLength(name); err != nil {
				return nil, errors.Wrapf(err, "renameplan: pool %q", tbl.Pool)
			}
		}
	}
	return &doc, nil
}

// checkLength rejects a replacement name that could not possibly be
// encoded with a short-form length prefix under either encoding; it can't
// know which encoding the target pool actually uses, so it only rejects
// names that would overflow both.
func checkLength(name string) error {
	runes := []rune(name)
	if len(name) >= utf8ShortLimit && len(runes) >= utf16ShortLimit {
		return ErrNameTooLong
	}
	return nil
}

// ResolveTableRename turns a TableNames plan's by-string rename map into
// the by-index map RewriteTableNames expects, using get to look up each
// pool entry by index (typically stringpool.StringPool.Get bound to a
// context). Unmatched plan entries are silently ignored: a plan is often
// written once and applied across several builds whose pools don't all
// contain the same strings.
func ResolveTableRename(count int, get func(i int) (string, bool), rename map[string]string) map[int]string {
	out := make(map[int]string, len(rename))
	for i := 0; i < count; i++ {
		s, ok := get(i)
		if !ok {
			continue
		}
		if replacement, ok := rename[s]; ok {
			out[i] = replacement
		}
	}
	return out
}
