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

// Package vision holds the screen-analysis side of the agent scaffold.
package vision

import "fmt"

// Object is a single detection result.
type Object struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// VisionProcessor formats processing receipts for screen captures.
// It is scaffold only: the image path is never opened or validated and
// no analysis runs.
type VisionProcessor struct {
	initialized bool
}

// NewVisionProcessor returns an uninitialized processor.
func NewVisionProcessor() *VisionProcessor {
	return &VisionProcessor{}
}

// ProcessImage marks the processor initialized and returns a receipt for
// the given path, in the form "Processed: <imagePath>".
func (p *VisionProcessor) ProcessImage(imagePath string) string {
	p.initialized = true
	return fmt.Sprintf("Processed: %s", imagePath)
}

// DetectObjects returns an empty result set for any input.
func (p *VisionProcessor) DetectObjects(image []byte) []Object {
	return []Object{}
}

// Initialized reports whether ProcessImage has been called at least once.
func (p *VisionProcessor) Initialized() bool {
	return p.initialized
}
