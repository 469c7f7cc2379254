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

import (
	"time"

	"github.com/advocate-ai/advocate/adgen"
	"github.com/advocate-ai/advocate/marketing"
	"github.com/advocate-ai/advocate/research"
)

// PipelineState is the single source of truth of one campaign run. All
// intermediate results are carried as snapshots; rollback = restore a
// previous snapshot.
type PipelineState struct {
	RunID          string
	CompanyName    string
	TargetAudience string
	NumCampaigns   int

	Research  *Snapshot // *research.Report
	Campaigns *Snapshot // *CampaignPlan
	Results   *Snapshot // []*adgen.CampaignResult

	History []StepRecord
}

// CampaignPlan is the marketing-phase output bundled into one snapshot.
type CampaignPlan struct {
	BrandAnalysis string
	Raw           string
	Ideas         []marketing.CampaignIdea
}

// Report returns the research snapshot payload, nil before the research
// step ran.
func (st *PipelineState) Report() *research.Report {
	if st.Research == nil {
		return nil
	}
	rep, _ := st.Research.Payload.(*research.Report)
	return rep
}

// Plan returns the campaign snapshot payload, nil before the campaigns
// step ran.
func (st *PipelineState) Plan() *CampaignPlan {
	if st.Campaigns == nil {
		return nil
	}
	plan, _ := st.Campaigns.Payload.(*CampaignPlan)
	return plan
}

// CampaignResults returns the asset snapshot payload, nil before the
// assets step ran.
func (st *PipelineState) CampaignResults() []*adgen.CampaignResult {
	if st.Results == nil {
		return nil
	}
	res, _ := st.Results.Payload.([]*adgen.CampaignResult)
	return res
}

// StepRecord is an immutable log entry for one step execution.
type StepRecord struct {
	StepName string
	Attempt  int
	Status   StepStatus
	Error    string
	Time     time.Time
}

// StepStatus is the outcome of a step run.
type StepStatus string

const (
	StepOK     StepStatus = "ok"
	StepFailed StepStatus = "failed"
)
