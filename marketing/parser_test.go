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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormed = `Campaign Idea 1:
1. Campaign Name: Northern Lights Launch
2. Core Message: Bring the outdoors home with gear built for every season.
3. Visual Theme Description: Cold-toned landscapes with warm human moments.
4. Key Emotional Appeal: Adventure and belonging
5. Social Media Focus: Instagram reels and short-form video
6. Campaign Timeline: 8 weeks, two phases
7. Success Metrics: Reach, Engagement rate, Store visits
8. Budget Allocation: 60% digital, 40% out-of-home
9. Risk Mitigation: Weekly creative rotation if engagement drops

Campaign Idea 2:
1. Campaign Name: Everyday Summits Series
2. Core Message: Small daily wins deserve summit-grade equipment.
3. Visual Theme Description: Urban scenes shot like expedition photography.
4. Key Emotional Appeal: Pride in small achievements
5. Social Media Focus: TikTok challenges with user submissions
6. Campaign Timeline: 6 weeks rolling
7. Success Metrics: UGC volume, Follower growth
8. Budget Allocation: Mostly paid social
9. Risk Mitigation: Moderation plan for user submissions
`

func TestParseCampaignsWellFormed(t *testing.T) {
	ideas := ParseCampaigns(wellFormed)
	require.Len(t, ideas, 2)

	first := ideas[0]
	assert.Equal(t, "Northern Lights Launch", first.Name)
	assert.Equal(t, "Bring the outdoors home with gear built for every season.", first.CoreMessage)
	assert.Equal(t, "Cold-toned landscapes with warm human moments.", first.VisualTheme)
	assert.Equal(t, "Adventure and belonging", first.EmotionalAppeal)
	assert.Equal(t, []string{"Reach", "Engagement rate", "Store visits"}, first.SuccessMetrics)
	assert.Equal(t, "60% digital, 40% out-of-home", first.BudgetAllocation)

	assert.Equal(t, "Everyday Summits Series", ideas[1].Name)
	assert.Equal(t, []string{"UGC volume", "Follower growth"}, ideas[1].SuccessMetrics)
}

func TestParseCampaignsDerivedPrompts(t *testing.T) {
	ideas := ParseCampaigns(wellFormed)
	require.NotEmpty(t, ideas)
	ps := ideas[0].PromptSuggestions
	require.NotNil(t, ps)
	assert.Equal(t, ideas[0].VisualTheme, ps[AngleProductFocused])
	assert.Equal(t, ideas[0].CoreMessage, ps[AngleBrandFocused])
	assert.Equal(t, ideas[0].SocialMediaFocus, ps[AngleSocialMedia])
}

func TestParseCampaignsAltLabels(t *testing.T) {
	raw := `## Campaign Quiet Hours
**Name:** Quiet Hours Collection
**Message:** Calm spaces start with the right light for the evening.
**Visuals:** Muted tones, soft shadows
**KPIs:** Sleep score mentions; Newsletter signups
`
	ideas := ParseCampaigns(raw)
	require.Len(t, ideas, 1)
	assert.Equal(t, "Quiet Hours Collection", ideas[0].Name)
	assert.Equal(t, "Calm spaces start with the right light for the evening.", ideas[0].CoreMessage)
	assert.Equal(t, "Muted tones, soft shadows", ideas[0].VisualTheme)
	assert.Equal(t, []string{"Sleep score mentions", "Newsletter signups"}, ideas[0].SuccessMetrics)
}

func TestParseCampaignsFallback(t *testing.T) {
	ideas := ParseCampaigns("the model rambled and produced nothing usable here")
	require.Len(t, ideas, 1)
	assert.Equal(t, FallbackCampaign(), ideas[0])
}

func TestParseCampaignsDropsShortFields(t *testing.T) {
	raw := `Campaign Idea 1:
Campaign Name: Hi
Core Message: Too short.
`
	ideas := ParseCampaigns(raw)
	require.Len(t, ideas, 1)
	assert.Equal(t, FallbackCampaign().Name, ideas[0].Name)
}

func TestParseCampaignSectionValidation(t *testing.T) {
	_, err := parseCampaignSection("Campaign Name: Hi\nCore Message: Long enough message here.\n")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "campaign_name", verr.Field)
}

func TestExtractActionInput(t *testing.T) {
	raw := "Thought: I should answer now.\nAction Input: Campaign Name: Real Content Campaign"
	assert.Equal(t, "Campaign Name: Real Content Campaign", ExtractActionInput(raw))

	// No marker: whole text passes through.
	assert.Equal(t, "plain text", ExtractActionInput("  plain text\n"))
}

func TestSplitMetrics(t *testing.T) {
	got := splitMetrics("- Reach\n- Engagement rate, CTR;  Brand recall ")
	assert.Equal(t, []string{"Reach", "Engagement rate", "CTR", "Brand recall"}, got)
}
