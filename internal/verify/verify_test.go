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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failCheck always fails with a fixed error.
type failCheck struct {
	err error
}

func (c failCheck) Name() string { return "fail" }

func (c failCheck) Run(ctx context.Context, st *State) error { return c.err }

// markCheck records that it ran.
type markCheck struct {
	ran *bool
}

func (c markCheck) Name() string { return "mark" }

func (c markCheck) Run(ctx context.Context, st *State) error {
	*c.ran = true
	return nil
}

func TestRunner_Run_AllChecksPass(t *testing.T) {
	ctx := context.Background()
	st := &State{}
	runner := NewRunner()

	var reported []string
	runner.Report = func(rec CheckRecord) {
		reported = append(reported, rec.CheckName)
	}

	require.NoError(t, runner.Run(ctx, st))

	require.Len(t, st.History, 4)
	for _, rec := range st.History {
		assert.Equal(t, CheckOK, rec.Status, "check %s", rec.CheckName)
		assert.Empty(t, rec.Error)
		assert.False(t, rec.Time.IsZero())
	}
	assert.Equal(t,
		[]string{"construct", "adb-connect", "vision-process", "planner-create"},
		reported)

	// The checks drove the components through their contracts.
	require.NotNil(t, st.ADB)
	assert.True(t, st.ADB.Connected())
	require.NotNil(t, st.Vision)
	assert.True(t, st.Vision.Initialized())
	require.NotNil(t, st.Planner)
	require.NotNil(t, st.Planner.Current())
	assert.Equal(t, []string{"objective1"}, st.Planner.Current().Objectives)
}

func TestRunner_Run_StopsAtFirstFailure(t *testing.T) {
	ctx := context.Background()
	st := &State{}
	ran := false
	runner := &Runner{
		Checks: []Check{
			constructCheck{},
			failCheck{err: errors.New("boom")},
			markCheck{ran: &ran},
		},
	}

	err := runner.Run(ctx, st)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check fail")
	assert.False(t, ran, "checks after a failure must not run")

	require.Len(t, st.History, 2)
	assert.Equal(t, CheckOK, st.History[0].Status)
	assert.Equal(t, CheckFailed, st.History[1].Status)
	assert.Equal(t, "boom", st.History[1].Error)

	assert.False(t, IsConstructFailure(err))
}

func TestRunner_Run_ConstructFailureClassified(t *testing.T) {
	ctx := context.Background()
	st := &State{}
	runner := &Runner{
		Checks: []Check{
			failCheck{err: &ConstructError{Err: errors.New("no components")}},
		},
	}

	err := runner.Run(ctx, st)
	require.Error(t, err)
	assert.True(t, IsConstructFailure(err))
	assert.Contains(t, err.Error(), "construct: no components")
}

func TestIsConstructFailure(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		assert.False(t, IsConstructFailure(errors.New("boom")))
	})

	t.Run("wrapped construct error", func(t *testing.T) {
		err := errors.Wrap(&ConstructError{Err: errors.New("boom")}, "check construct")
		assert.True(t, IsConstructFailure(err))
	})

	t.Run("nil", func(t *testing.T) {
		assert.False(t, IsConstructFailure(nil))
	})
}
