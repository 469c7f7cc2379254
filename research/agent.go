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
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/flow/agent/react"

	"github.com/advocate-ai/advocate/llm"
	"github.com/advocate-ai/advocate/llm/log"
	"github.com/advocate-ai/advocate/llm/prompt"
	"github.com/advocate-ai/advocate/llm/tool"
)

const (
	DefaultNumQuestions = 5

	// researcherMaxStep bounds the tool loop per question.
	researcherMaxStep = 12
)

// Agent runs the research phase: plan questions, retrieve data with the
// web-search agent, analyze the findings.
type Agent struct {
	cli          *llm.Client
	researcher   llm.Generator
	NumQuestions int
}

// NewAgent wires the question/analysis chat client and a react agent
// carrying the given search tools.
func NewAgent(ctx context.Context, cli *llm.Client, model llm.ChatModel, tools []tool.Tool) (*Agent, error) {
	researcher, err := llm.NewReactAgent(ctx, "researcher", llm.ReactAgentOptions{
		SysPrompt: prompt.NewTextPrompt(researcherPrompt),
		AgentConfig: &react.AgentConfig{
			ToolCallingModel: model,
			ToolsConfig:      compose.ToolsNodeConfig{Tools: tools},
			MaxStep:          researcherMaxStep,
		},
	})
	if err != nil {
		return nil, err
	}
	return &Agent{cli: cli, researcher: researcher, NumQuestions: DefaultNumQuestions}, nil
}

// NewAgentWithResearcher injects a custom retrieval generator; used by
// tests and by deployments without a search backend.
func NewAgentWithResearcher(cli *llm.Client, researcher llm.Generator) *Agent {
	return &Agent{cli: cli, researcher: researcher, NumQuestions: DefaultNumQuestions}
}

// Research runs the full phase and assembles the report.
func (a *Agent) Research(ctx context.Context, companyName, targetAudience string) (*Report, error) {
	questions, err := a.GenerateQuestions(ctx, companyName, targetAudience)
	if err != nil {
		return nil, err
	}
	findings, err := a.RetrieveData(ctx, questions)
	if err != nil {
		return nil, err
	}
	analysis, err := a.AnalyzeData(ctx, companyName, findings)
	if err != nil {
		return nil, err
	}
	return &Report{Questions: questions, RawFindings: findings, Analysis: analysis}, nil
}

var questionLine = regexp.MustCompile(`(?m)^\s*(?:\d+[.)]\s*|[-*]\s*)?(.+\?)\s*$`)

// GenerateQuestions plans the research. Output that yields no parseable
// questions degrades to a default set instead of failing the run.
func (a *Agent) GenerateQuestions(ctx context.Context, companyName, targetAudience string) ([]string, error) {
	n := a.NumQuestions
	if n <= 0 {
		n = DefaultNumQuestions
	}
	msgs, err := questionsTemplate.Format(ctx, map[string]any{
		"company_name":    companyName,
		"target_audience": targetAudience,
		"num_questions":   strconv.Itoa(n),
	})
	if err != nil {
		return nil, err
	}
	out, err := a.cli.Generate(ctx, msgs)
	if err != nil {
		return nil, err
	}
	questions := parseQuestions(out, n)
	if len(questions) == 0 {
		log.Error("no question parsed from model output, using defaults")
		questions = defaultQuestions(companyName, targetAudience)
	}
	return questions, nil
}

func parseQuestions(out string, max int) []string {
	matches := questionLine.FindAllStringSubmatch(out, -1)
	questions := make([]string, 0, max)
	for _, m := range matches {
		q := strings.TrimSpace(m[1])
		if q == "" {
			continue
		}
		questions = append(questions, q)
		if len(questions) == max {
			break
		}
	}
	return questions
}

func defaultQuestions(companyName, targetAudience string) []string {
	return []string{
		fmt.Sprintf("What products or services does %s offer?", companyName),
		fmt.Sprintf("Who are the main competitors of %s?", companyName),
		fmt.Sprintf("How does %s position itself toward %s?", companyName, targetAudience),
		fmt.Sprintf("What are recent news or developments about %s?", companyName),
		fmt.Sprintf("What is the brand reputation of %s?", companyName),
	}
}

// RetrieveData answers each question with the research agent and stitches
// the findings into one block. A question that fails after retries aborts
// the phase; partial research is worse than a clean error.
func (a *Agent) RetrieveData(ctx context.Context, questions []string) (string, error) {
	var sb strings.Builder
	for i, q := range questions {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		log.Info("researching question %d/%d: %s", i+1, len(questions), q)
		answer, err := a.researcher.Call(ctx, q)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "Q: %s\nFindings: %s\n\n", q, strings.TrimSpace(answer))
	}
	return strings.TrimSpace(sb.String()), nil
}

// AnalyzeData condenses raw findings into marketing-ready insight.
func (a *Agent) AnalyzeData(ctx context.Context, companyName, findings string) (string, error) {
	msgs, err := analysisTemplate.Format(ctx, map[string]any{
		"company_name": companyName,
		"findings":     findings,
	})
	if err != nil {
		return "", err
	}
	return a.cli.Generate(ctx, msgs)
}
