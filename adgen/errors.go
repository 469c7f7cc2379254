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

import "fmt"

// PreconditionError reports a flow entered without a required input.
// These are wiring mistakes, never retried.
type PreconditionError struct {
	Stage string
	Field string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("stage %s: missing required input %q", e.Stage, e.Field)
}
