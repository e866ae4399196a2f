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
	"flag"
	"os"
	"sort"

	"github.com/pkg/errors"

	"github.com/jessie345/AndResGuard/internal/arsc"
	"github.com/jessie345/AndResGuard/internal/log"
	"github.com/jessie345/AndResGuard/internal/renameplan"
	"github.com/jessie345/AndResGuard/internal/stringpool"
)

func runRewrite(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("rewrite", flag.ExitOnError)
	entry := fs.String("entry", "", "entry name within the file given, when it is an apk")
	planPath := fs.String("plan", "", "path to a rename plan YAML file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("resguard rewrite: expected exactly one file argument")
	}
	if *planPath == "" {
		return errors.New("resguard rewrite: -plan is required")
	}

	planFile, err := os.Open(*planPath)
	if err != nil {
		return errors.Wrapf(err, "resguard rewrite: open plan %q", *planPath)
	}
	plan, err := renameplan.Load(planFile)
	planFile.Close()
	if err != nil {
		return err
	}

	c, err := loadContainer(fs.Arg(0), *entry)
	if err != nil {
		return err
	}

	data, err := applyPlan(ctx, c.data, plan)
	if err != nil {
		return err
	}
	if err := c.save(data); err != nil {
		return errors.Wrap(err, "resguard rewrite: save")
	}
	log.I(ctx, "resguard: rewrote %s", fs.Arg(0))
	return nil
}

func applyPlan(ctx context.Context, data []byte, plan *renameplan.Document) ([]byte, error) {
	locs, err := arsc.Locate(data)
	if err != nil {
		return nil, errors.Wrap(err, "resguard rewrite: locate string pools")
	}

	specByPool := make(map[string]renameplan.SpecNames, len(plan.Spec))
	for _, s := range plan.Spec {
		specByPool[s.Pool] = s
	}
	tableByPool := make(map[string]renameplan.TableNames, len(plan.Table))
	for _, tbl := range plan.Table {
		tableByPool[tbl.Pool] = tbl
	}

	// Process locations highest-offset-first: patching a pool only ever
	// shifts bytes after it, so earlier (lower-offset) locations and every
	// ancestor size-field offset recorded against them stay valid across
	// each successive patch.
	order := make([]int, len(locs))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return locs[order[a]].Offset > locs[order[b]].Offset })

	for _, idx := range order {
		loc := locs[idx]
		kind := loc.Kind.String()

		var replacement []byte
		switch {
		case kind == "table":
			tbl, ok := tableByPool[kind]
			if !ok {
				continue
			}
			pool, err := stringpool.Read(bytes.NewReader(data[loc.Offset:loc.Offset+loc.Size]), false)
			if err != nil {
				return nil, errors.Wrapf(err, "resguard rewrite: read pool at 0x%x", loc.Offset)
			}
			byIndex := renameplan.ResolveTableRename(pool.Count(), func(i int) (string, bool) {
				return pool.Get(ctx, i)
			}, tbl.Rename)

			var buf bytes.Buffer
			if _, err := stringpool.RewriteTableNames(bytes.NewReader(data[loc.Offset:loc.Offset+loc.Size]), &buf, byIndex); err != nil {
				return nil, errors.Wrapf(err, "resguard rewrite: table pool at 0x%x", loc.Offset)
			}
			replacement = buf.Bytes()

		case kind == "package" || kind == "xml":
			spec, ok := specByPool[kind]
			if !ok {
				continue
			}
			var buf bytes.Buffer
			if _, _, err := stringpool.RewriteSpecNames(bytes.NewReader(data[loc.Offset:loc.Offset+loc.Size]), &buf, spec.Names); err != nil {
				return nil, errors.Wrapf(err, "resguard rewrite: spec pool at 0x%x", loc.Offset)
			}
			replacement = buf.Bytes()

		default:
			continue
		}

		data = arsc.Patch(data, loc, replacement)
	}

	return data, nil
}
