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
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

// brandAnalysisTemplate turns the research summary into brand positioning
// that the campaign generator can build on.
var brandAnalysisTemplate = prompt.FromMessages(schema.FString,
	schema.SystemMessage(
		`You are a senior brand strategist. You analyze companies and produce `+
			`concise, actionable brand positioning.`),
	schema.UserMessage(
		`Analyze the brand below and describe its positioning, tone of voice, `+
			`differentiators and the values that resonate with the target audience.

Company: {company_name}
Target audience: {target_audience}

Company research:
{company_summary}`),
)

// campaignTemplate asks for a fixed number of ideas in the labeled-section
// format the parser's rule table recognizes.
var campaignTemplate = prompt.FromMessages(schema.FString,
	schema.SystemMessage(
		`You are a creative marketing director. You produce concrete, `+
			`distinctive campaign concepts, never generic filler.`),
	schema.UserMessage(
		`Based on the brand analysis below, propose {num_campaigns} marketing campaign ideas for {company_name}
targeting {target_audience}.

Brand analysis:
{brand_analysis}

Format each idea exactly as:

Campaign Idea N:
1. Campaign Name: <short memorable name>
2. Core Message: <one or two sentences>
3. Visual Theme Description: <imagery, colors, style>
4. Key Emotional Appeal: <the feeling to evoke>
5. Social Media Focus: <platforms and content types>
6. Campaign Timeline: <duration and phases>
7. Success Metrics: <comma separated KPIs>
8. Budget Allocation: <how spend is distributed>
9. Risk Mitigation: <what could go wrong and the response>`),
)
