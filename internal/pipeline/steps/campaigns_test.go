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
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/advocate-ai/advocate/internal/pipeline"
	"github.com/advocate-ai/advocate/llm"
	"github.com/advocate-ai/advocate/marketing"
	"github.com/advocate-ai/advocate/research"
)

const campaignFixture = `Campaign Idea 1:
1. Campaign Name: Acme Everywhere Tour
2. Core Message: Rockets for everyone, one launch at a time.
3. Visual Theme Description: Bold skies with bright rocket trails.
`

// campaignModel records the campaign-generation prompt it receives.
type campaignModel struct {
	campaignPrompt string
}

func (m *campaignModel) Generate(_ context.Context, msgs []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	last := msgs[len(msgs)-1].Content
	if strings.Contains(last, "marketing campaign ideas") {
		m.campaignPrompt = last
		return schema.AssistantMessage(campaignFixture, nil), nil
	}
	return schema.AssistantMessage("brand analysis with plenty of substance", nil), nil
}

func (m *campaignModel) Stream(ctx context.Context, msgs []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	out, err := m.Generate(ctx, msgs)
	if err != nil {
		return nil, err
	}
	sr, sw := schema.Pipe[*schema.Message](1)
	sw.Send(out, nil)
	sw.Close()
	return sr, nil
}

func (m *campaignModel) WithTools(_ []*schema.ToolInfo) (model.ToolCallingChatModel, error) {
	return m, nil
}

func researchSnapshot(t *testing.T) *pipeline.Snapshot {
	t.Helper()
	rep := &research.Report{
		RawFindings: "Acme builds affordable hobby rockets sold in over forty countries worldwide.",
		Analysis:    "Strong hobbyist brand.",
	}
	return pipeline.NewSnapshot(pipeline.KindResearch, rep, []byte(rep.RawFindings))
}

func TestCampaignsStepDoesNotMutateSharedAgent(t *testing.T) {
	m := &campaignModel{}
	agent := marketing.NewAgent(llm.NewClientWithModel(m))
	step := &CampaignsStep{Agent: agent}

	st := &pipeline.PipelineState{
		CompanyName:    "Acme",
		TargetAudience: "students",
		NumCampaigns:   7,
		Research:       researchSnapshot(t),
	}
	res, err := step.Run(context.Background(), st)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Status != pipeline.StepOK {
		t.Fatalf("status %s, want ok", res.Status)
	}

	if !strings.Contains(m.campaignPrompt, "propose 7 marketing campaign ideas") {
		t.Errorf("run count not in prompt: %q", m.campaignPrompt)
	}
	if agent.NumCampaigns != marketing.DefaultNumCampaigns {
		t.Errorf("shared agent mutated: NumCampaigns = %d", agent.NumCampaigns)
	}
}

func TestCampaignsStepRequiresResearch(t *testing.T) {
	agent := marketing.NewAgent(llm.NewClientWithModel(&campaignModel{}))
	step := &CampaignsStep{Agent: agent}

	st := &pipeline.PipelineState{CompanyName: "Acme", TargetAudience: "students"}
	res, err := step.Run(context.Background(), st)
	if err == nil {
		t.Fatal("expected precondition error")
	}
	if res.Recoverable {
		t.Error("missing research must not be recoverable")
	}
}
