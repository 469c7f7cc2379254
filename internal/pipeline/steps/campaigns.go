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

	"github.com/advocate-ai/advocate/internal/pipeline"
	"github.com/advocate-ai/advocate/internal/utils"
	"github.com/advocate-ai/advocate/marketing"
)

// CampaignsStep runs the marketing phase: brand analysis, then campaign
// generation. Parsing never fails the step; the parser degrades to its
// fallback idea instead.
type CampaignsStep struct {
	Agent *marketing.Agent
}

// Name implements pipeline.Step.
func (s *CampaignsStep) Name() string { return "campaigns" }

// Run implements pipeline.Step.
func (s *CampaignsStep) Run(ctx context.Context, st *pipeline.PipelineState) (*pipeline.StepResult, error) {
	rep := st.Report()
	if rep == nil {
		return &pipeline.StepResult{
			Status:      pipeline.StepFailed,
			Recoverable: false,
		}, &pipeline.PreconditionError{Step: s.Name(), Field: "research_report"}
	}

	n := st.NumCampaigns
	if n <= 0 {
		n = s.Agent.NumCampaigns
	}

	analysis, err := s.Agent.AnalyzeBrand(ctx, st.CompanyName, st.TargetAudience, rep.CompanySummary())
	if err != nil {
		return &pipeline.StepResult{
			Status:      pipeline.StepFailed,
			Recoverable: ctx.Err() == nil,
		}, err
	}

	ideas, raw, err := s.Agent.GenerateNCampaigns(ctx, st.CompanyName, st.TargetAudience, analysis, n)
	if err != nil {
		return &pipeline.StepResult{
			Status:      pipeline.StepFailed,
			Recoverable: ctx.Err() == nil,
		}, err
	}

	plan := &pipeline.CampaignPlan{
		BrandAnalysis: analysis,
		Raw:           raw,
		Ideas:         ideas,
	}
	bs, err := utils.MarshalJSONBytes(plan)
	if err != nil {
		return &pipeline.StepResult{
			Status:      pipeline.StepFailed,
			Recoverable: false,
		}, err
	}
	return &pipeline.StepResult{
		Status:   pipeline.StepOK,
		Snapshot: pipeline.NewSnapshot(pipeline.KindCampaigns, plan, bs),
	}, nil
}
