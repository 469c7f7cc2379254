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

import (
	"context"
	"regexp"
	"strings"

	"github.com/advocate-ai/advocate/marketing"
)

func (g *Graph) analyzeStrategy(ctx context.Context, s *flowState) error {
	msgs, err := strategyTemplate.Format(ctx, map[string]any{
		"company_name":     Truncate(s.in.CompanyName, CapName),
		"company_summary":  Truncate(s.in.CompanySummary, CapSummary),
		"campaign_name":    Truncate(s.in.Idea.Name, CapName),
		"core_message":     Truncate(s.in.Idea.CoreMessage, CapExcerpt),
		"emotional_appeal": Truncate(s.in.Idea.EmotionalAppeal, CapExcerpt),
	})
	if err != nil {
		return err
	}
	s.strategy, err = g.cli.Generate(ctx, msgs)
	return err
}

func (g *Graph) generateCreativeDirection(ctx context.Context, s *flowState) error {
	msgs, err := creativeDirectionTemplate.Format(ctx, map[string]any{
		"strategy":     Truncate(s.strategy, CapExcerpt),
		"visual_theme": Truncate(s.in.Idea.VisualTheme, CapExcerpt),
	})
	if err != nil {
		return err
	}
	s.direction, err = g.cli.Generate(ctx, msgs)
	return err
}

// generateAssets produces tagline, story and image prompt, three model
// calls per pass. On a quality retry the reviewer's report is fed back
// into the copy prompts.
func (g *Graph) generateAssets(ctx context.Context, s *flowState) error {
	feedback := ""
	if s.qualityRetries > 0 && s.assets.QualityReport != "" {
		feedback = "The previous attempt failed review:\n" +
			Truncate(s.assets.QualityReport, CapExcerpt) + "\nFix the flagged problems."
	}

	msgs, err := taglineTemplate.Format(ctx, map[string]any{
		"campaign_name":      Truncate(s.in.Idea.Name, CapName),
		"creative_direction": Truncate(s.direction, CapExcerpt),
		"core_message":       Truncate(s.in.Idea.CoreMessage, CapExcerpt),
		"feedback":           feedback,
	})
	if err != nil {
		return err
	}
	tagline, err := g.cli.Generate(ctx, msgs)
	if err != nil {
		return err
	}
	s.assets.Tagline = strings.TrimSpace(strings.Trim(strings.TrimSpace(tagline), `"“”`))

	msgs, err = storyTemplate.Format(ctx, map[string]any{
		"campaign_name":      Truncate(s.in.Idea.Name, CapName),
		"creative_direction": Truncate(s.direction, CapExcerpt),
		"core_message":       Truncate(s.in.Idea.CoreMessage, CapExcerpt),
		"tagline":            Truncate(s.assets.Tagline, CapName),
		"feedback":           feedback,
	})
	if err != nil {
		return err
	}
	story, err := g.cli.Generate(ctx, msgs)
	if err != nil {
		return err
	}
	s.assets.Story = strings.TrimSpace(story)

	msgs, err = imagePromptTemplate.Format(ctx, map[string]any{
		"campaign_name":      Truncate(s.in.Idea.Name, CapName),
		"creative_direction": Truncate(s.direction, CapExcerpt),
		"angle_suggestion":   Truncate(angleSuggestion(s.in.Idea), CapExcerpt),
	})
	if err != nil {
		return err
	}
	imgPrompt, err := g.cli.Generate(ctx, msgs)
	if err != nil {
		return err
	}
	s.assets.ImagePrompt = strings.TrimSpace(imgPrompt)
	return nil
}

// angleSuggestion picks the image angle for the idea, preferring the
// product shot.
func angleSuggestion(idea marketing.CampaignIdea) string {
	for _, angle := range []string{
		marketing.AngleProductFocused,
		marketing.AngleBrandFocused,
		marketing.AngleSocialMedia,
	} {
		if v := idea.PromptSuggestions[angle]; v != "" {
			return v
		}
	}
	return idea.VisualTheme
}

var verdictLine = regexp.MustCompile(`(?mi)^\s*\**(tagline|story|image[_ ]prompt)\**\s*:\s*(.+)$`)

// qualityCheck reviews the text assets and records per-asset verdicts.
// Review text the verdict parser cannot read counts as a pass; malformed
// reviewer output must never sink a run.
func (g *Graph) qualityCheck(ctx context.Context, s *flowState) error {
	msgs, err := qualityCheckTemplate.Format(ctx, map[string]any{
		"creative_direction": Truncate(s.direction, CapExcerpt),
		"tagline":            s.assets.Tagline,
		"story":              s.assets.Story,
		"image_prompt":       s.assets.ImagePrompt,
	})
	if err != nil {
		return err
	}
	report, err := g.cli.Generate(ctx, msgs)
	if err != nil {
		return err
	}
	s.assets.QualityReport = strings.TrimSpace(report)

	s.assets.Verdicts = map[string]string{}
	s.failed = s.failed[:0]
	for _, m := range verdictLine.FindAllStringSubmatch(report, -1) {
		asset := strings.ReplaceAll(strings.ToLower(m[1]), " ", "_")
		verdict := strings.TrimSpace(m[2])
		s.assets.Verdicts[asset] = verdict
		if g.Predicate(verdict) {
			s.failed = append(s.failed, asset)
		}
	}
	return nil
}
