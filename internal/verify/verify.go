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

// Package verify smoke-checks the scaffold components: it instantiates
// each one and drives it through its minimal contract.
package verify

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/droidpilot/droidpilot/log"
)

// Check is one unit of verification. Checks reach the components only
// through State and the contracts under check.
type Check interface {
	Name() string
	Run(ctx context.Context, st *State) error
}

// Runner executes checks in sequence and stops at the first failure.
// There is no retry and no recovery: this is fail-fast diagnostic tooling.
type Runner struct {
	Checks []Check

	// Report, when set, is called with the record of every executed check.
	Report func(rec CheckRecord)
}

// NewRunner returns a runner with the default check sequence: construct
// the components, then exercise each contract in turn.
func NewRunner() *Runner {
	return &Runner{
		Checks: []Check{
			constructCheck{},
			adbConnectCheck{},
			visionProcessCheck{},
			plannerCreateCheck{},
		},
	}
}

// Run executes all checks against st. Each execution is appended to
// st.History; the first failure aborts the run and is returned wrapped
// with the failing check's name.
func (r *Runner) Run(ctx context.Context, st *State) error {
	for _, check := range r.Checks {
		log.Debug("running check %s", check.Name())
		rec := CheckRecord{
			CheckName: check.Name(),
			Status:    CheckOK,
			Time:      time.Now(),
		}
		if err := check.Run(ctx, st); err != nil {
			rec.Status = CheckFailed
			rec.Error = err.Error()
			st.History = append(st.History, rec)
			r.report(rec)
			return errors.Wrapf(err, "check %s", check.Name())
		}
		st.History = append(st.History, rec)
		r.report(rec)
	}
	return nil
}

func (r *Runner) report(rec CheckRecord) {
	if r.Report != nil {
		r.Report(rec)
	}
}
