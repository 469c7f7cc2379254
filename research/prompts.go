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
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

// questionsTemplate asks for one research question per line so parsing
// stays trivial.
var questionsTemplate = prompt.FromMessages(schema.FString,
	schema.SystemMessage(
		`You are a market research planner. You write focused, answerable `+
			`research questions.`),
	schema.UserMessage(
		`Write {num_questions} research questions about {company_name} that would help a
marketing team understand the company and its audience ({target_audience}).
Cover products, competitors, market position, recent developments and brand
reputation. Output one question per line, numbered.`),
)

// researcherPrompt is the system prompt of the tool-calling research agent.
const researcherPrompt = `You are a market researcher with access to a web_search tool.
Answer the research question you are given. Search the web for current
information, then write a factual summary of what you found. Cite concrete
facts, not speculation. When you have enough material, answer directly.`

// analysisTemplate condenses raw findings into marketing-ready insight.
var analysisTemplate = prompt.FromMessages(schema.FString,
	schema.SystemMessage(
		`You are a market analyst. You turn raw research notes into clear, `+
			`structured insight.`),
	schema.UserMessage(
		`Analyze the research findings about {company_name} below. Summarize the
company's market position, audience, strengths and opportunities in a form a
marketing strategist can act on.

Findings:
{findings}`),
)
