// Copyright 2025 AdVocate Authors
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

// Package log is a minimal leveled logger shared by all packages.
// Levels are filtered at call time so the level can be raised mid-run.
package log

import (
	"fmt"
	stdlog "log"
	"os"
	"sync/atomic"
)

type Level int32

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

var level atomic.Int32

var logger = stdlog.New(os.Stderr, "", stdlog.LstdFlags)

func init() {
	level.Store(int32(InfoLevel))
}

// SetLogLevel sets the minimum level that will be emitted.
func SetLogLevel(l Level) {
	level.Store(int32(l))
}

// GetLogLevel returns the current minimum level.
func GetLogLevel() Level {
	return Level(level.Load())
}

func Debug(format string, args ...any) {
	output(DebugLevel, "[DEBUG] ", format, args...)
}

func Info(format string, args ...any) {
	output(InfoLevel, "[INFO] ", format, args...)
}

func Error(format string, args ...any) {
	output(ErrorLevel, "[ERROR] ", format, args...)
}

func output(l Level, prefix, format string, args ...any) {
	if l < Level(level.Load()) {
		return
	}
	logger.Output(3, prefix+fmt.Sprintf(format, args...))
}
