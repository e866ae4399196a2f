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
	"github.com/jessie345/AndResGuard/internal/stringpool"
)

func runDump(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	entry := fs.String("entry", "", "entry name within the file given, when it is an apk")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("resguard dump: expected exactly one file argument")
	}

	c, err := loadContainer(fs.Arg(0), *entry)
	if err != nil {
		return err
	}

	locs, err := arsc.Locate(c.data)
	if err != nil {
		return errors.Wrap(err, "resguard dump: locate string pools")
	}
	if len(locs) == 0 {
		fmt.Println("no string pools found")
		return nil
	}

	for i, loc := range locs {
		pool, err := stringpool.Read(bytes.NewReader(c.data[loc.Offset:loc.Offset+loc.Size]), false)
		if err != nil {
			fmt.Printf("pool %d (%s @0x%x, %d bytes): unreadable: %v\n", i, loc.Kind, loc.Offset, loc.Size, err)
			continue
		}
		encoding := "utf-16le"
		if pool.IsUTF8 {
			encoding = "utf-8"
		}
		styled := ""
		if len(pool.StyleOffsets) > 0 {
			styled = fmt.Sprintf(", %d styled", len(pool.StyleOffsets))
		}
		fmt.Printf("pool %d (%s @0x%x, %d bytes): %d entries, %s%s\n",
			i, loc.Kind, loc.Offset, loc.Size, pool.Count(), encoding, styled)
		for j := 0; j < pool.Count(); j++ {
			s, ok := pool.Get(ctx, j)
			if !ok {
				fmt.Printf("  [%d] <malformed>\n", j)
				continue
			}
			fmt.Printf("  [%d] %q\n", j, s)
		}
	}
	return nil
}
