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

// Command resguard locates and rewrites Android resource string pools,
// either directly against a raw resources.arsc/binary-XML file or against
// a whole .apk. It has three verbs: dump (inspect), rewrite (apply a
// rename plan), and stats (report pool compressibility).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jessie345/AndResGuard/internal/log"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	verb, args := os.Args[1], os.Args[2:]

	var err error
	switch verb {
	case "dump":
		err = runDump(ctx, args)
	case "rewrite":
		err = runRewrite(ctx, args)
	case "stats":
		err = runStats(ctx, args)
	case "-h", "-help", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "resguard: unknown verb %q\n", verb)
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.E(ctx, "%v", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: resguard <dump|rewrite|stats> [flags] <file>")
	fmt.Fprintln(os.Stderr, "  dump    -entry=NAME <file>        list string pools found in an arsc/xml file or an apk entry")
	fmt.Fprintln(os.Stderr, "  stats   -entry=NAME <file>        report FSST compressibility for each pool found")
	fmt.Fprintln(os.Stderr, "  rewrite -entry=NAME -plan=FILE <file>   apply a rename plan and write the result back")
}
