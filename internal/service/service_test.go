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

package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advocate-ai/advocate/adgen"
	"github.com/advocate-ai/advocate/internal/cache"
	"github.com/advocate-ai/advocate/llm"
	"github.com/advocate-ai/advocate/marketing"
	"github.com/advocate-ai/advocate/research"
)

const campaignText = `Campaign Idea 1:
1. Campaign Name: Acme Everywhere Tour
2. Core Message: Rockets for everyone, one launch at a time.
3. Visual Theme Description: Bold skies with bright rocket trails.
4. Key Emotional Appeal: Wonder and ambition
5. Social Media Focus: Short launch clips on every platform
6. Campaign Timeline: 4 weeks
7. Success Metrics: Reach, Signups
8. Budget Allocation: Mostly video production
9. Risk Mitigation: Backup static creative if video underperforms
`

// routedModel answers each stage prompt by matching markers in the last
// message.
type routedModel struct{}

func (routedModel) Generate(_ context.Context, msgs []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	last := msgs[len(msgs)-1].Content
	switch {
	case strings.Contains(last, "research questions"):
		return schema.AssistantMessage("1. What does Acme sell?", nil), nil
	case strings.Contains(last, "marketing campaign ideas"):
		return schema.AssistantMessage(campaignText, nil), nil
	case strings.Contains(last, "Review these campaign assets"):
		return schema.AssistantMessage("tagline: PASS\nstory: PASS", nil), nil
	default:
		return schema.AssistantMessage("Stage output with enough substance to be useful downstream.", nil), nil
	}
}

func (m routedModel) Stream(ctx context.Context, msgs []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	out, err := m.Generate(ctx, msgs)
	if err != nil {
		return nil, err
	}
	sr, sw := schema.Pipe[*schema.Message](1)
	sw.Send(out, nil)
	sw.Close()
	return sr, nil
}

func (m routedModel) WithTools(_ []*schema.ToolInfo) (model.ToolCallingChatModel, error) {
	return m, nil
}

type answerStub struct{}

func (answerStub) Call(_ context.Context, input string) (string, error) {
	return "Acme builds affordable hobby rockets sold in over forty countries worldwide.", nil
}

func testService(t *testing.T) *Service {
	t.Helper()
	cli := llm.NewClientWithModel(routedModel{})
	orch := adgen.NewOrchestrator(cli, nil)
	orch.OutputRoot = t.TempDir()
	return &Service{
		Research:     research.NewAgentWithResearcher(cli, answerStub{}),
		Marketing:    marketing.NewAgent(cli),
		Orchestrator: orch,
		Cache:        cache.New(time.Minute),
		StepRetries:  1,
	}
}

func TestRunCampaignFlow(t *testing.T) {
	svc := testService(t)

	st, err := svc.RunCampaignFlow(context.Background(), "Acme", "students")
	require.NoError(t, err)
	require.NotEmpty(t, st.RunID)

	require.NotNil(t, st.Report())
	assert.Contains(t, st.Report().RawFindings, "hobby rockets")

	plan := st.Plan()
	require.NotNil(t, plan)
	require.Len(t, plan.Ideas, 1)
	assert.Equal(t, "Acme Everywhere Tour", plan.Ideas[0].Name)

	results := st.CampaignResults()
	require.Len(t, results, 1)
	assert.FileExists(t, results[0].Paths["tagline"])
	assert.FileExists(t, results[0].Paths["details"])
	assert.Empty(t, results[0].Assets.ImagePath)

	// Three steps, each succeeding on the first attempt.
	require.Len(t, st.History, 3)
	for _, rec := range st.History {
		assert.Equal(t, 1, rec.Attempt)
	}
}

func TestResearchCompanyCaches(t *testing.T) {
	svc := testService(t)

	first, err := svc.ResearchCompany(context.Background(), "Acme", "students")
	require.NoError(t, err)
	second, err := svc.ResearchCompany(context.Background(), "ACME", "Students")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestCacheTypeMismatchIsAMiss(t *testing.T) {
	svc := testService(t)

	// A foreign payload under the research key must be recomputed over,
	// not returned or panicked on.
	svc.Cache.Put(cache.Key("research", "Acme", "students"), "not a report", "research")

	rep, err := svc.ResearchCompany(context.Background(), "Acme", "students")
	require.NoError(t, err)
	assert.Contains(t, rep.RawFindings, "hobby rockets")
}

func TestGenerateCampaignsCaches(t *testing.T) {
	svc := testService(t)

	first, err := svc.GenerateCampaigns(context.Background(), "Acme", "students")
	require.NoError(t, err)
	second, err := svc.GenerateCampaigns(context.Background(), "Acme", "students")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestSearchToolsFromEnvTavily(t *testing.T) {
	t.Setenv("SEARCH_MCP_URL", "")
	t.Setenv("SEARCH_MCP_COMMAND", "")
	t.Setenv("SEARCH_API_KEY", "tvly-test")

	tools, err := searchToolsFromEnv(context.Background())
	require.NoError(t, err)
	require.Len(t, tools, 1)

	t.Setenv("SEARCH_API_KEY", "")
	tools, err = searchToolsFromEnv(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tools)
}
