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

package verify

import (
	"time"

	"github.com/droidpilot/droidpilot/actions"
	"github.com/droidpilot/droidpilot/planner"
	"github.com/droidpilot/droidpilot/vision"
)

// State is the harness's single source of truth: the component instances
// under check plus an append-only record of every check run.
type State struct {
	ADB     *actions.ADBController
	Vision  *vision.VisionProcessor
	Planner *planner.Planner

	History []CheckRecord
}

// CheckRecord is an immutable log entry for one check execution.
type CheckRecord struct {
	CheckName string
	Status    CheckStatus
	Error     string
	Time      time.Time
}

// CheckStatus is the outcome of a check run.
type CheckStatus string

const (
	CheckOK     CheckStatus = "ok"
	CheckFailed CheckStatus = "failed"
)
