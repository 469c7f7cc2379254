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

package research

import (
	"context"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advocate-ai/advocate/llm"
)

// stubModel answers every chat with a canned reply.
type stubModel struct {
	reply func(msgs []*schema.Message) string
}

func (s *stubModel) Generate(ctx context.Context, msgs []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	return schema.AssistantMessage(s.reply(msgs), nil), nil
}

func (s *stubModel) Stream(ctx context.Context, msgs []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	sr, sw := schema.Pipe[*schema.Message](1)
	sw.Send(schema.AssistantMessage(s.reply(msgs), nil), nil)
	sw.Close()
	return sr, nil
}

func (s *stubModel) WithTools(_ []*schema.ToolInfo) (model.ToolCallingChatModel, error) {
	return s, nil
}

// stubResearcher answers questions without tools.
type stubResearcher struct {
	calls []string
}

func (s *stubResearcher) Call(ctx context.Context, input string) (string, error) {
	s.calls = append(s.calls, input)
	return "Findings about: " + input, nil
}

func TestGenerateQuestionsParsesNumberedLines(t *testing.T) {
	cli := llm.NewClientWithModel(&stubModel{reply: func([]*schema.Message) string {
		return "1. What does Acme sell?\n2) Who buys from Acme?\n- How is Acme perceived?\nNot a question line"
	}})
	ag := NewAgentWithResearcher(cli, &stubResearcher{})

	qs, err := ag.GenerateQuestions(context.Background(), "Acme", "students")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"What does Acme sell?",
		"Who buys from Acme?",
		"How is Acme perceived?",
	}, qs)
}

func TestGenerateQuestionsFallsBackToDefaults(t *testing.T) {
	cli := llm.NewClientWithModel(&stubModel{reply: func([]*schema.Message) string {
		return "no questions here at all"
	}})
	ag := NewAgentWithResearcher(cli, &stubResearcher{})

	qs, err := ag.GenerateQuestions(context.Background(), "Acme", "students")
	require.NoError(t, err)
	require.Len(t, qs, 5)
	assert.Contains(t, qs[0], "Acme")
}

func TestRetrieveDataStitchesFindings(t *testing.T) {
	r := &stubResearcher{}
	ag := NewAgentWithResearcher(nil, r)

	out, err := ag.RetrieveData(context.Background(), []string{"Q one?", "Q two?"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Q one?", "Q two?"}, r.calls)
	assert.Contains(t, out, "Q: Q one?\nFindings: Findings about: Q one?")
	assert.Contains(t, out, "Q: Q two?")
}

func TestRetrieveDataStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ag := NewAgentWithResearcher(nil, &stubResearcher{})

	_, err := ag.RetrieveData(ctx, []string{"Q one?"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestResearchAssemblesReport(t *testing.T) {
	cli := llm.NewClientWithModel(&stubModel{reply: func(msgs []*schema.Message) string {
		last := msgs[len(msgs)-1].Content
		if strings.Contains(last, "research questions") {
			return "1. What does Acme sell?"
		}
		return "Acme is well positioned."
	}})
	ag := NewAgentWithResearcher(cli, &stubResearcher{})

	rep, err := ag.Research(context.Background(), "Acme", "students")
	require.NoError(t, err)
	assert.Equal(t, []string{"What does Acme sell?"}, rep.Questions)
	assert.Contains(t, rep.RawFindings, "Findings about: What does Acme sell?")
	assert.Equal(t, "Acme is well positioned.", rep.Analysis)

	rendered := rep.String()
	assert.Contains(t, rendered, "Research Questions:")
	assert.Contains(t, rendered, "Raw Findings:")
	assert.Contains(t, rendered, "Analysis:")
}

func TestReportSummaryCap(t *testing.T) {
	rep := &Report{RawFindings: strings.Repeat("x", SummaryCap+100)}
	assert.Len(t, rep.CompanySummary(), SummaryCap)
}

func TestParseReportRoundTrip(t *testing.T) {
	rep := &Report{
		Questions:   []string{"What does Acme sell?"},
		RawFindings: strings.Repeat("Acme sells rockets. ", 5),
		Analysis:    "Strong niche position.",
	}
	parsed, err := ParseReport(rep.String())
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(rep.RawFindings), parsed.RawFindings)
	assert.Equal(t, rep.Analysis, parsed.Analysis)
}

func TestParseReportTooShort(t *testing.T) {
	_, err := ParseReport("Raw Findings:\ntiny\n\nAnalysis:\nnone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}
