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

// Package planner holds the strategy side of the agent scaffold.
package planner

// Plan is an ordered list of objectives and the steps derived from them.
// Steps stays empty until a strategy backend exists to fill it.
type Plan struct {
	Objectives []string `json:"objectives"`
	Steps      []string `json:"steps"`
}

// Planner holds at most one plan at a time.
type Planner struct {
	strategy *Plan
}

// NewPlanner returns a planner with no plan.
func NewPlanner() *Planner {
	return &Planner{}
}

// CreatePlan stores and returns a new plan for the given objectives,
// replacing any previous plan. The objectives are copied so later caller
// mutation of the slice cannot change the stored plan.
func (p *Planner) CreatePlan(objectives []string) *Plan {
	plan := &Plan{
		Objectives: append([]string(nil), objectives...),
		Steps:      []string{},
	}
	p.strategy = plan
	return plan
}

// ExecutePlan reports whether there is a plan to execute. No steps run
// and the stored plan is left untouched.
func (p *Planner) ExecutePlan() string {
	if p.strategy != nil {
		return "Plan executed"
	}
	return "No plan to execute"
}

// Current returns the stored plan, or nil when no plan was created.
func (p *Planner) Current() *Plan {
	return p.strategy
}
