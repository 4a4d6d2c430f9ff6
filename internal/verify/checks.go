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
	"context"

	"github.com/pkg/errors"

	"github.com/droidpilot/droidpilot/actions"
	"github.com/droidpilot/droidpilot/planner"
	"github.com/droidpilot/droidpilot/vision"
)

// ConstructError marks a failure to bring up the components themselves,
// as opposed to a component breaking its contract once constructed.
type ConstructError struct {
	Err error
}

func (e *ConstructError) Error() string {
	return "construct: " + e.Err.Error()
}

// IsConstructFailure reports whether err originated in the construct
// stage. The CLI uses it to pick the failure marker.
func IsConstructFailure(err error) bool {
	_, ok := errors.Cause(err).(*ConstructError)
	return ok
}

// constructCheck instantiates one of each component and stores them on
// the state for the contract checks that follow.
type constructCheck struct{}

func (constructCheck) Name() string { return "construct" }

func (constructCheck) Run(ctx context.Context, st *State) error {
	st.ADB = actions.NewADBController()
	st.Vision = vision.NewVisionProcessor()
	st.Planner = planner.NewPlanner()
	if st.ADB == nil || st.Vision == nil || st.Planner == nil {
		return &ConstructError{Err: errors.New("component constructor returned nil")}
	}
	return nil
}

// adbConnectCheck verifies Connect reports success and flips the
// observable connection state.
type adbConnectCheck struct{}

func (adbConnectCheck) Name() string { return "adb-connect" }

func (adbConnectCheck) Run(ctx context.Context, st *State) error {
	if ok := st.ADB.Connect(); !ok {
		return errors.New("Connect returned false")
	}
	if !st.ADB.Connected() {
		return errors.New("controller not marked connected after Connect")
	}
	return nil
}

// visionProcessCheck verifies the processing receipt for a fixed path.
type visionProcessCheck struct{}

func (visionProcessCheck) Name() string { return "vision-process" }

func (visionProcessCheck) Run(ctx context.Context, st *State) error {
	const want = "Processed: test.jpg"
	if got := st.Vision.ProcessImage("test.jpg"); got != want {
		return errors.Errorf("ProcessImage: got %q, want %q", got, want)
	}
	return nil
}

// plannerCreateCheck verifies a plan record comes back for a minimal
// objective list.
type plannerCreateCheck struct{}

func (plannerCreateCheck) Name() string { return "planner-create" }

func (plannerCreateCheck) Run(ctx context.Context, st *State) error {
	plan := st.Planner.CreatePlan([]string{"objective1"})
	if plan == nil {
		return errors.New("CreatePlan returned nil")
	}
	return nil
}
