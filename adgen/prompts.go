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
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

var strategyTemplate = prompt.FromMessages(schema.FString,
	schema.SystemMessage(
		`You are an advertising strategist. You distill campaigns into sharp `+
			`creative strategy.`),
	schema.UserMessage(
		`Define the creative strategy for this campaign.

Company: {company_name}
About the company: {company_summary}
Campaign: {campaign_name}
Core message: {core_message}
Emotional appeal: {emotional_appeal}

Describe the strategic angle, the audience insight it rests on, and the
single idea every asset must express.`),
)

var creativeDirectionTemplate = prompt.FromMessages(schema.FString,
	schema.SystemMessage(
		`You are a creative director. You translate strategy into concrete `+
			`creative direction.`),
	schema.UserMessage(
		`Turn this strategy into creative direction for ad production.

Strategy:
{strategy}

Visual theme: {visual_theme}

Specify tone of voice, visual style and the do's and don'ts for copy and
imagery.`),
)

var taglineTemplate = prompt.FromMessages(schema.FString,
	schema.SystemMessage(
		`You are an ad copywriter. You write short, punchy taglines. Reply `+
			`with the tagline only.`),
	schema.UserMessage(
		`Write one tagline for the campaign "{campaign_name}".

Creative direction:
{creative_direction}

Core message: {core_message}
{feedback}`),
)

var storyTemplate = prompt.FromMessages(schema.FString,
	schema.SystemMessage(
		`You are an ad copywriter. You write compelling short brand stories.`),
	schema.UserMessage(
		`Write the campaign story for "{campaign_name}" (150-250 words) following
the creative direction below. The story must land the core message and close
with the tagline.

Creative direction:
{creative_direction}

Core message: {core_message}
Tagline: {tagline}
{feedback}`),
)

var imagePromptTemplate = prompt.FromMessages(schema.FString,
	schema.SystemMessage(
		`You write prompts for an image generation model. Reply with the `+
			`prompt only, no commentary.`),
	schema.UserMessage(
		`Write one image generation prompt for the campaign "{campaign_name}".

Creative direction:
{creative_direction}

Suggested angle: {angle_suggestion}

The prompt must describe a single concrete scene, its style, lighting and
mood, and contain no text overlays.`),
)

var qualityCheckTemplate = prompt.FromMessages(schema.FString,
	schema.SystemMessage(
		`You are a strict creative reviewer. For each asset you review, reply `+
			`with a line "<asset>: PASS" or "<asset>: FAIL - <reason>".`),
	schema.UserMessage(
		`Review these campaign assets against the creative direction.

Creative direction:
{creative_direction}

tagline: {tagline}

story:
{story}

image_prompt:
{image_prompt}

Check that the tagline is short and on-message, that the story follows
the direction and lands the core message, and that the image prompt
describes a scene matching the visual style. Reply with one line per
asset (tagline, story, image_prompt) in the stated format.`),
)
