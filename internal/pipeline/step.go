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

package pipeline

import "context"

// Step is one unit of the campaign pipeline.
type Step interface {
	Name() string
	Run(ctx context.Context, st *PipelineState) (*StepResult, error)
}

// StepResult reports a step outcome. Recoverable failures may be retried
// by the Agent; unrecoverable ones abort the run.
type StepResult struct {
	Status      StepStatus
	Recoverable bool
	Snapshot    *Snapshot
}
