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

package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestADBController_Connect(t *testing.T) {
	c := NewADBController()
	assert.False(t, c.Connected(), "fresh controller must start disconnected")

	assert.True(t, c.Connect())
	assert.True(t, c.Connected())
}

func TestADBController_Disconnect(t *testing.T) {
	c := NewADBController()
	c.Connect()

	assert.True(t, c.Disconnect())
	assert.False(t, c.Connected())
}

func TestADBController_StateReflectsLastCall(t *testing.T) {
	c := NewADBController()
	for i := 0; i < 3; i++ {
		assert.True(t, c.Connect())
		assert.True(t, c.Connected())
		assert.True(t, c.Disconnect())
		assert.False(t, c.Connected())
	}
}
