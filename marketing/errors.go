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

package marketing

import "fmt"

// ParseError reports model text that no extraction rule could recover a
// structure from. The snippet is capped so errors stay loggable.
type ParseError struct {
	Stage   string
	Detail  string
	Snippet string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %q", e.Stage, e.Detail, e.Snippet)
}

func NewParseError(stage, detail, raw string) *ParseError {
	const max = 120
	if len(raw) > max {
		raw = raw[:max]
	}
	return &ParseError{Stage: stage, Detail: detail, Snippet: raw}
}

// ValidationError reports a parsed field that is present but too short to
// be a usable value.
type ValidationError struct {
	Field  string
	MinLen int
	Got    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %s: need at least %d chars, got %d", e.Field, e.MinLen, len(e.Got))
}
