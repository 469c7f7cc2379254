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

import (
	"context"
	"strconv"
	"strings"

	"github.com/advocate-ai/advocate/llm"
	"github.com/advocate-ai/advocate/llm/log"
)

// DefaultNumCampaigns matches the generation prompt's usual ask.
const DefaultNumCampaigns = 3

// Agent runs the marketing phase: brand analysis of the researched
// company, then structured campaign ideas.
type Agent struct {
	cli          *llm.Client
	NumCampaigns int
}

func NewAgent(cli *llm.Client) *Agent {
	return &Agent{cli: cli, NumCampaigns: DefaultNumCampaigns}
}

// AnalyzeBrand produces a brand positioning write-up from the research
// summary. The raw text is passed through as-is; the campaign stage is the
// only consumer.
func (a *Agent) AnalyzeBrand(ctx context.Context, companyName, targetAudience, companySummary string) (string, error) {
	if strings.TrimSpace(companySummary) == "" {
		return "", NewParseError("analyze_brand", "empty company summary", companySummary)
	}
	msgs, err := brandAnalysisTemplate.Format(ctx, map[string]any{
		"company_name":    companyName,
		"target_audience": targetAudience,
		"company_summary": companySummary,
	})
	if err != nil {
		return "", err
	}
	out, err := a.cli.Generate(ctx, msgs)
	if err != nil {
		return "", err
	}
	log.Debug("brand analysis: %d bytes", len(out))
	return out, nil
}

// GenerateCampaigns asks for a.NumCampaigns campaign ideas and parses
// them. The returned slice is never empty; unparseable output degrades to
// the fallback idea. The raw model text is returned alongside so callers
// can persist it.
func (a *Agent) GenerateCampaigns(ctx context.Context, companyName, targetAudience, brandAnalysis string) ([]CampaignIdea, string, error) {
	return a.GenerateNCampaigns(ctx, companyName, targetAudience, brandAnalysis, a.NumCampaigns)
}

// GenerateNCampaigns is GenerateCampaigns with an explicit idea count, so
// callers sharing one Agent can vary the count per call.
func (a *Agent) GenerateNCampaigns(ctx context.Context, companyName, targetAudience, brandAnalysis string, n int) ([]CampaignIdea, string, error) {
	if n <= 0 {
		n = DefaultNumCampaigns
	}
	msgs, err := campaignTemplate.Format(ctx, map[string]any{
		"company_name":    companyName,
		"target_audience": targetAudience,
		"brand_analysis":  brandAnalysis,
		"num_campaigns":   strconv.Itoa(n),
	})
	if err != nil {
		return nil, "", err
	}
	raw, err := a.cli.Generate(ctx, msgs)
	if err != nil {
		return nil, "", err
	}
	ideas := ParseCampaigns(raw)
	log.Info("parsed %d campaign idea(s)", len(ideas))
	return ideas, raw, nil
}
