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

// Package actions holds the device-side actuators of the agent scaffold.
package actions

// ADBController tracks the state of an Android Debug Bridge session.
// It is scaffold only: no adb binary is spawned and no device is contacted;
// the controller records whether Connect or Disconnect was called last.
type ADBController struct {
	connected bool
}

// NewADBController returns a controller in the disconnected state.
func NewADBController() *ADBController {
	return &ADBController{}
}

// Connect marks the controller connected. It cannot fail.
func (c *ADBController) Connect() bool {
	c.connected = true
	return true
}

// Disconnect marks the controller disconnected. It cannot fail.
func (c *ADBController) Disconnect() bool {
	c.connected = false
	return true
}

// Connected reports the state set by the last Connect or Disconnect call.
func (c *ADBController) Connected() bool {
	return c.connected
}
