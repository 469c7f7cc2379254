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

package adgen

import (
	"strings"
	"unicode/utf8"
)

// Prompt excerpt caps. Stage prompts embed campaign fields truncated to
// these sizes so a verbose model cannot blow up downstream context.
const (
	CapName    = 100
	CapExcerpt = 400
	CapSummary = 200
)

// Truncate caps s at max bytes, preferring the last sentence boundary
// inside the cap. Input at or under the cap passes through unchanged.
// The cut never splits a multi-byte rune.
func Truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	cut := s[:max]
	if idx := strings.LastIndexByte(cut, '.'); idx > 0 {
		return strings.TrimSpace(cut[:idx+1])
	}
	return strings.TrimSpace(cut)
}
