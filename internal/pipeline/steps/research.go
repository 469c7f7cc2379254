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

package steps

import (
	"context"
	"fmt"

	"github.com/advocate-ai/advocate/internal/pipeline"
	"github.com/advocate-ai/advocate/internal/utils"
	"github.com/advocate-ai/advocate/research"
)

// ResearchStep runs the research phase. Thin findings are recoverable so
// the Agent can retry the whole phase.
type ResearchStep struct {
	Agent *research.Agent
}

// Name implements pipeline.Step.
func (s *ResearchStep) Name() string { return "research" }

// Run implements pipeline.Step.
func (s *ResearchStep) Run(ctx context.Context, st *pipeline.PipelineState) (*pipeline.StepResult, error) {
	if st.CompanyName == "" {
		return &pipeline.StepResult{
			Status:      pipeline.StepFailed,
			Recoverable: false,
		}, &pipeline.PreconditionError{Step: s.Name(), Field: "company_name"}
	}

	rep, err := s.Agent.Research(ctx, st.CompanyName, st.TargetAudience)
	if err != nil {
		return &pipeline.StepResult{
			Status:      pipeline.StepFailed,
			Recoverable: ctx.Err() == nil,
		}, err
	}
	if len(rep.RawFindings) < research.MinReportLen {
		return &pipeline.StepResult{
			Status:      pipeline.StepFailed,
			Recoverable: true,
		}, fmt.Errorf("research findings too short: %d chars", len(rep.RawFindings))
	}

	raw, err := utils.MarshalJSONBytes(rep)
	if err != nil {
		return &pipeline.StepResult{
			Status:      pipeline.StepFailed,
			Recoverable: false,
		}, err
	}
	return &pipeline.StepResult{
		Status:   pipeline.StepOK,
		Snapshot: pipeline.NewSnapshot(pipeline.KindResearch, rep, raw),
	}, nil
}
