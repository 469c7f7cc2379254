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
	"regexp"
	"sort"
	"strings"

	"github.com/advocate-ai/advocate/llm/log"
)

// MinFieldLen is the floor for the campaign name and core message. Shorter
// values mean the model produced a heading, not content.
const MinFieldLen = 10

// fieldRule binds one CampaignIdea field to an ordered ladder of label
// patterns. Earlier patterns are the canonical spellings the generation
// prompt asks for, later ones are the loose spellings models drift into.
type fieldRule struct {
	field  string
	ladder []*regexp.Regexp
	assign func(*CampaignIdea, string)
}

// labelRe matches a section label at the start of a line, tolerating list
// markers, numbering and markdown bold around the label.
func labelRe(names ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?mi)^[ \t]*(?:\d+\.[ \t]*|[-*+][ \t]*)?\**[ \t]*(?:` +
		strings.Join(names, "|") + `)[ \t]*\**[ \t]*:`)
}

var campaignRules = []fieldRule{
	{
		field: "campaign_name",
		ladder: []*regexp.Regexp{
			labelRe(`Campaign Name`),
			labelRe(`Name`, `Title`),
		},
		assign: func(c *CampaignIdea, v string) { c.Name = v },
	},
	{
		field: "core_message",
		ladder: []*regexp.Regexp{
			labelRe(`Core Message`),
			labelRe(`Key Message`, `Message`),
		},
		assign: func(c *CampaignIdea, v string) { c.CoreMessage = v },
	},
	{
		field: "visual_theme_description",
		ladder: []*regexp.Regexp{
			labelRe(`Visual Theme Description`, `Visual Theme`),
			labelRe(`Visuals?`),
		},
		assign: func(c *CampaignIdea, v string) { c.VisualTheme = v },
	},
	{
		field: "key_emotional_appeal",
		ladder: []*regexp.Regexp{
			labelRe(`Key Emotional Appeal`, `Emotional Appeal`),
			labelRe(`Appeal`),
		},
		assign: func(c *CampaignIdea, v string) { c.EmotionalAppeal = v },
	},
	{
		field: "social_media_focus",
		ladder: []*regexp.Regexp{
			labelRe(`Social Media Focus`),
			labelRe(`Social Media`, `Social Focus`),
		},
		assign: func(c *CampaignIdea, v string) { c.SocialMediaFocus = v },
	},
	{
		field: "campaign_timeline",
		ladder: []*regexp.Regexp{
			labelRe(`Campaign Timeline`, `Timeline`),
			labelRe(`Duration`),
		},
		assign: func(c *CampaignIdea, v string) { c.Timeline = v },
	},
	{
		field: "success_metrics",
		ladder: []*regexp.Regexp{
			labelRe(`Success Metrics`),
			labelRe(`Metrics`, `KPIs?`),
		},
		assign: func(c *CampaignIdea, v string) { c.SuccessMetrics = splitMetrics(v) },
	},
	{
		field: "budget_allocation",
		ladder: []*regexp.Regexp{
			labelRe(`Budget Allocation`),
			labelRe(`Budget`),
		},
		assign: func(c *CampaignIdea, v string) { c.BudgetAllocation = v },
	},
	{
		field: "risk_mitigation",
		ladder: []*regexp.Regexp{
			labelRe(`Risk Mitigation`),
			labelRe(`Risks?`),
		},
		assign: func(c *CampaignIdea, v string) { c.RiskMitigation = v },
	},
	{
		field: AngleProductFocused,
		ladder: []*regexp.Regexp{
			labelRe(`Product[- ]Focused Prompt`),
		},
		assign: func(c *CampaignIdea, v string) { setPrompt(c, AngleProductFocused, v) },
	},
	{
		field: AngleBrandFocused,
		ladder: []*regexp.Regexp{
			labelRe(`Brand[- ]Focused Prompt`),
		},
		assign: func(c *CampaignIdea, v string) { setPrompt(c, AngleBrandFocused, v) },
	},
	{
		field: AngleSocialMedia,
		ladder: []*regexp.Regexp{
			labelRe(`Social Media Prompt`),
		},
		assign: func(c *CampaignIdea, v string) { setPrompt(c, AngleSocialMedia, v) },
	},
}

func setPrompt(c *CampaignIdea, angle, v string) {
	if c.PromptSuggestions == nil {
		c.PromptSuggestions = map[string]string{}
	}
	c.PromptSuggestions[angle] = v
}

// campaignBoundary separates individual ideas in the raw stage output.
var campaignBoundary = regexp.MustCompile(`(?mi)^[ \t]*\**(?:Campaign Idea[ \t]*\d+[ \t]*:?|#{2,3}[ \t]*Campaign\b[^\n]*)\**[ \t]*`)

// actionInputRe peels the payload off a react-style transcript. Everything
// after the last Action Input or Final Answer marker is the real content.
var actionInputRe = regexp.MustCompile(`(?is).*(?:Action Input|Final Answer)[ \t]*:[ \t]*(.+)$`)

// ExtractActionInput returns the content section of an agent transcript, or
// the whole text when no marker is present.
func ExtractActionInput(raw string) string {
	if m := actionInputRe.FindStringSubmatch(raw); m != nil {
		if v := strings.TrimSpace(m[1]); v != "" {
			return v
		}
	}
	return strings.TrimSpace(raw)
}

// ParseCampaigns recovers campaign ideas from raw stage output. Sections
// that fail parsing or validation are dropped with a log line; when nothing
// survives the caller gets the deterministic fallback so the flow never
// stalls on malformed text.
func ParseCampaigns(raw string) []CampaignIdea {
	raw = ExtractActionInput(raw)
	ideas := make([]CampaignIdea, 0, 4)
	for _, section := range splitCampaignSections(raw) {
		idea, err := parseCampaignSection(section)
		if err != nil {
			log.Error("campaign section dropped: %v", err)
			continue
		}
		ideas = append(ideas, idea)
	}
	if len(ideas) == 0 {
		log.Error("no campaign parsed from %d bytes of output, using fallback", len(raw))
		ideas = append(ideas, FallbackCampaign())
	}
	return ideas
}

func splitCampaignSections(raw string) []string {
	locs := campaignBoundary.FindAllStringIndex(raw, -1)
	if len(locs) == 0 {
		return []string{raw}
	}
	sections := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(raw)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		sections = append(sections, raw[loc[1]:end])
	}
	return sections
}

// parseCampaignSection runs the rule table over one section. Each rule
// tries its ladder in order and keeps the first label hit; field values are
// the text between a label and the next matched label.
func parseCampaignSection(section string) (CampaignIdea, error) {
	type hit struct {
		rule       *fieldRule
		start, end int
	}
	hits := make([]hit, 0, len(campaignRules))
	for i := range campaignRules {
		rule := &campaignRules[i]
		for _, re := range rule.ladder {
			if loc := re.FindStringIndex(section); loc != nil {
				hits = append(hits, hit{rule: rule, start: loc[0], end: loc[1]})
				break
			}
		}
	}
	if len(hits) == 0 {
		return CampaignIdea{}, NewParseError("generate_campaigns", "no field label found", section)
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	var idea CampaignIdea
	for i, h := range hits {
		end := len(section)
		if i+1 < len(hits) {
			end = hits[i+1].start
		}
		h.rule.assign(&idea, cleanFieldValue(section[h.end:end]))
	}

	if len(idea.Name) < MinFieldLen {
		return CampaignIdea{}, &ValidationError{Field: "campaign_name", MinLen: MinFieldLen, Got: idea.Name}
	}
	if len(idea.CoreMessage) < MinFieldLen {
		return CampaignIdea{}, &ValidationError{Field: "core_message", MinLen: MinFieldLen, Got: idea.CoreMessage}
	}
	fillDerivedPrompts(&idea)
	return idea, nil
}

// fillDerivedPrompts backfills missing image-prompt angles from the parsed
// fields so asset generation always has three angles to choose from.
func fillDerivedPrompts(idea *CampaignIdea) {
	if idea.PromptSuggestions == nil {
		idea.PromptSuggestions = map[string]string{}
	}
	derive := func(angle, v string) {
		if idea.PromptSuggestions[angle] == "" && v != "" {
			idea.PromptSuggestions[angle] = v
		}
	}
	derive(AngleProductFocused, idea.VisualTheme)
	derive(AngleBrandFocused, idea.CoreMessage)
	derive(AngleSocialMedia, idea.SocialMediaFocus)
}

func cleanFieldValue(v string) string {
	v = strings.TrimSpace(v)
	v = strings.Trim(v, `"'“”`)
	v = strings.TrimSpace(strings.Trim(v, "*"))
	return v
}

func splitMetrics(v string) []string {
	parts := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == '\n' || r == ';'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.TrimLeft(p, "-*+ \t"))
		p = strings.Trim(p, `"'`)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
