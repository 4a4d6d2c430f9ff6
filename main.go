// Copyright 2025 DroidPilot Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/droidpilot/droidpilot/internal/verify"
	"github.com/droidpilot/droidpilot/log"
	"github.com/droidpilot/droidpilot/version"
)

const Usage = `droidpilot <Action> [Flags]
Action:
   verify       run the scaffold smoke checks (construction and component contracts)
   version      print the version of droidpilot
`

func main() {
	flags := flag.NewFlagSet("droidpilot", flag.ExitOnError)

	flagHelp := flags.Bool("h", false, "Show help message.")
	flagVerbose := flags.Bool("verbose", false, "Verbose mode.")

	flags.Usage = func() {
		fmt.Fprint(os.Stderr, Usage)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flags.PrintDefaults()
	}

	if len(os.Args) < 2 {
		flags.Usage()
		os.Exit(1)
	}
	action := strings.ToLower(os.Args[1])

	switch action {
	case "version":
		fmt.Fprintf(os.Stdout, "%s\n", version.Version)

	case "verify":
		if len(os.Args) > 2 {
			flags.Parse(os.Args[2:])
		}
		if flagHelp != nil && *flagHelp {
			flags.Usage()
			os.Exit(0)
		}
		if flagVerbose != nil && *flagVerbose {
			log.SetLogLevel(log.DebugLevel)
		}
		os.Exit(runVerify(context.Background()))

	default:
		fmt.Fprintf(os.Stderr, "unknown action: %s\n", action)
		flags.Usage()
		os.Exit(1)
	}
}

// runVerify drives the smoke checks and prints one marker line per check.
// Construction failures and contract failures get distinct markers.
func runVerify(ctx context.Context) int {
	st := &verify.State{}
	runner := verify.NewRunner()
	runner.Report = func(rec verify.CheckRecord) {
		if rec.Status == verify.CheckOK {
			fmt.Fprintf(os.Stdout, "✅ %s\n", rec.CheckName)
		}
	}

	if err := runner.Run(ctx, st); err != nil {
		if verify.IsConstructFailure(err) {
			fmt.Fprintf(os.Stdout, "❌ Construct error: %v\n", err)
		} else {
			fmt.Fprintf(os.Stdout, "❌ Error: %v\n", err)
		}
		return 1
	}

	fmt.Fprintf(os.Stdout, "✅ All scaffold checks passed\n")
	return 0
}
