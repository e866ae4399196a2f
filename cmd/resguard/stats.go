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
	"fmt"

	"github.com/pkg/errors"

	"github.com/jessie345/AndResGuard/internal/arsc"
	"github.com/jessie345/AndResGuard/internal/poolstats"
	"github.com/jessie345/AndResGuard/internal/stringpool"
)

func runStats(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	entry := fs.String("entry", "", "entry name within the file given, when it is an apk")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("resguard stats: expected exactly one file argument")
	}

	c, err := loadContainer(fs.Arg(0), *entry)
	if err != nil {
		return err
	}

	locs, err := arsc.Locate(c.data)
	if err != nil {
		return errors.Wrap(err, "resguard stats: locate string pools")
	}

	for i, loc := range locs {
		pool, err := stringpool.Read(bytes.NewReader(c.data[loc.Offset:loc.Offset+loc.Size]), false)
		if err != nil {
			fmt.Printf("pool %d (%s): unreadable: %v\n", i, loc.Kind, err)
			continue
		}
		r := poolstats.Estimate(ctx, pool)
		fmt.Printf("pool %d (%s): %d entries, %d raw bytes, %d encoded bytes, ratio %.2f\n",
			i, loc.Kind, r.Entries, r.RawBytes, r.EncodedBytes, r.Ratio())
	}
	return nil
}
