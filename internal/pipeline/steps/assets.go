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
	"errors"

	"github.com/advocate-ai/advocate/adgen"
	"github.com/advocate-ai/advocate/internal/pipeline"
	"github.com/advocate-ai/advocate/internal/utils"
	"github.com/advocate-ai/advocate/llm"
)

// AssetsStep runs the asset-generation flow for every campaign idea of
// the plan and persists each campaign directory.
type AssetsStep struct {
	Orchestrator *adgen.Orchestrator
}

// Name implements pipeline.Step.
func (s *AssetsStep) Name() string { return "assets" }

// Run implements pipeline.Step.
func (s *AssetsStep) Run(ctx context.Context, st *pipeline.PipelineState) (*pipeline.StepResult, error) {
	plan := st.Plan()
	if plan == nil || len(plan.Ideas) == 0 {
		return &pipeline.StepResult{
			Status:      pipeline.StepFailed,
			Recoverable: false,
		}, &pipeline.PreconditionError{Step: s.Name(), Field: "campaign_plan"}
	}
	rep := st.Report()
	if rep == nil {
		return &pipeline.StepResult{
			Status:      pipeline.StepFailed,
			Recoverable: false,
		}, &pipeline.PreconditionError{Step: s.Name(), Field: "research_report"}
	}

	results := make([]*adgen.CampaignResult, 0, len(plan.Ideas))
	for _, idea := range plan.Ideas {
		if err := ctx.Err(); err != nil {
			return &pipeline.StepResult{
				Status:      pipeline.StepFailed,
				Recoverable: false,
			}, err
		}
		res, err := s.Orchestrator.GenerateAssets(ctx, adgen.Input{
			CompanyName:    st.CompanyName,
			TargetAudience: st.TargetAudience,
			CompanySummary: rep.CompanySummary(),
			Idea:           idea,
		})
		if err != nil {
			var ext *llm.ExternalError
			return &pipeline.StepResult{
				Status:      pipeline.StepFailed,
				Recoverable: errors.As(err, &ext) && ctx.Err() == nil,
			}, err
		}
		results = append(results, res)
	}

	raw, err := utils.MarshalJSONBytes(results)
	if err != nil {
		return &pipeline.StepResult{
			Status:      pipeline.StepFailed,
			Recoverable: false,
		}, err
	}
	return &pipeline.StepResult{
		Status:   pipeline.StepOK,
		Snapshot: pipeline.NewSnapshot(pipeline.KindResults, results, raw),
	}, nil
}
