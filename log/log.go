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

// Package log is a minimal leveled logger for the droidpilot CLI and its
// packages. Messages below the current level are dropped.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// LogLevel is the severity of a message.
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var (
	logLevel           = InfoLevel
	output   io.Writer = os.Stderr
)

// SetLogLevel sets the minimum level that will be emitted.
func SetLogLevel(l LogLevel) {
	logLevel = l
}

// SetOutput redirects log output. The default is stderr.
func SetOutput(w io.Writer) {
	output = w
}

func Debug(format string, args ...interface{}) {
	logf(DebugLevel, "[DEBUG] ", format, args...)
}

func Info(format string, args ...interface{}) {
	logf(InfoLevel, "[INFO] ", format, args...)
}

func Warn(format string, args ...interface{}) {
	logf(WarnLevel, "[WARN] ", format, args...)
}

func Error(format string, args ...interface{}) {
	logf(ErrorLevel, "[ERROR] ", format, args...)
}

// logf tolerates callers that pass a trailing newline and callers that don't.
func logf(l LogLevel, prefix, format string, args ...interface{}) {
	if l < logLevel {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprint(output, prefix+msg)
}
