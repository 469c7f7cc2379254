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

// Prompt-suggestion angles carried on every CampaignIdea.
const (
	AngleProductFocused = "product_focused"
	AngleBrandFocused   = "brand_focused"
	AngleSocialMedia    = "social_media"
)

// CampaignIdea is one marketing concept recovered from the
// campaign-generation stage output. Field order mirrors the numbered
// sections the generation prompt asks for.
type CampaignIdea struct {
	Name              string            `json:"campaign_name"`
	CoreMessage       string            `json:"core_message"`
	VisualTheme       string            `json:"visual_theme_description"`
	EmotionalAppeal   string            `json:"key_emotional_appeal"`
	SocialMediaFocus  string            `json:"social_media_focus"`
	Timeline          string            `json:"campaign_timeline"`
	SuccessMetrics    []string          `json:"success_metrics"`
	BudgetAllocation  string            `json:"budget_allocation"`
	RiskMitigation    string            `json:"risk_mitigation"`
	PromptSuggestions map[string]string `json:"prompt_suggestions"`
}

// FallbackCampaign is the deterministic idea emitted when no campaign
// parses out of the model text; downstream stages never see an empty list.
func FallbackCampaign() CampaignIdea {
	return CampaignIdea{
		Name:             "Brand Awareness Campaign",
		CoreMessage:      "Connect with your audience through authentic storytelling",
		VisualTheme:      "Clean, modern design with strong brand colors",
		EmotionalAppeal:  "Trust and aspiration",
		SocialMediaFocus: "Cross-platform presence with emphasis on visual storytelling",
		Timeline:         "6-week campaign with weekly content drops",
		SuccessMetrics:   []string{"Reach", "Engagement rate", "Brand recall"},
		BudgetAllocation: "Evenly distributed across digital channels",
		RiskMitigation:   "Weekly performance review with content adjustments",
		PromptSuggestions: map[string]string{
			AngleProductFocused: "Product hero shot with clean modern styling",
			AngleBrandFocused:   "Brand identity expressed through lifestyle imagery",
			AngleSocialMedia:    "Feed-optimized lifestyle imagery with people",
		},
	}
}
