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

// Package service wires the phase agents into runnable flows. Both the CLI
// and the MCP server sit on top of it.
package service

import (
	"context"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/advocate-ai/advocate/adgen"
	"github.com/advocate-ai/advocate/imagegen"
	"github.com/advocate-ai/advocate/internal/cache"
	"github.com/advocate-ai/advocate/internal/pipeline"
	"github.com/advocate-ai/advocate/internal/pipeline/steps"
	"github.com/advocate-ai/advocate/llm"
	"github.com/advocate-ai/advocate/llm/log"
	"github.com/advocate-ai/advocate/llm/tool"
	"github.com/advocate-ai/advocate/marketing"
	"github.com/advocate-ai/advocate/research"
)

// Service holds one set of agents and the result cache.
type Service struct {
	Research     *research.Agent
	Marketing    *marketing.Agent
	Orchestrator *adgen.Orchestrator
	Cache        *cache.Cache

	// StepRetries is the Agent retry budget per pipeline step.
	StepRetries int
}

// New builds a Service from the environment: model config, search backend
// and image backend.
func New(ctx context.Context) (*Service, error) {
	modelCfg, err := llm.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	model, err := llm.NewChatModel(ctx, modelCfg)
	if err != nil {
		return nil, err
	}
	cli := llm.NewClientWithModel(model)

	searchTools, err := searchToolsFromEnv(ctx)
	if err != nil {
		return nil, err
	}
	researchAgent, err := research.NewAgent(ctx, cli, model, searchTools)
	if err != nil {
		return nil, err
	}

	marketingAgent := marketing.NewAgent(cli)
	if v := os.Getenv("NUM_CAMPAIGNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			marketingAgent.NumCampaigns = n
		}
	}

	imager, ok := imagegen.NewFromEnv()
	if !ok {
		log.Info("IMAGE_API_KEY not set, image generation disabled")
		imager = nil
	}

	return &Service{
		Research:     researchAgent,
		Marketing:    marketingAgent,
		Orchestrator: adgen.NewOrchestrator(cli, imager),
		Cache:        cache.New(cache.DefaultTTL),
		StepRetries:  2,
	}, nil
}

// searchToolsFromEnv prefers an external MCP search server (SEARCH_MCP_URL
// or SEARCH_MCP_COMMAND) and falls back to the built-in Tavily client
// (SEARCH_API_KEY).
func searchToolsFromEnv(ctx context.Context) ([]tool.Tool, error) {
	if url := os.Getenv("SEARCH_MCP_URL"); url != "" {
		return tool.GetExternalSearchTools(ctx, tool.MCPConfig{Type: tool.MCPTypeSSE, SSEURL: url})
	}
	if cmd := os.Getenv("SEARCH_MCP_COMMAND"); cmd != "" {
		return tool.GetExternalSearchTools(ctx, tool.MCPConfig{Type: tool.MCPTypeStdio, Command: cmd})
	}
	if key := os.Getenv("SEARCH_API_KEY"); key != "" {
		return []tool.Tool{tool.NewWebSearchTool(tool.NewTavilyClient(key))}, nil
	}
	log.Info("no search backend configured, research runs on model knowledge only")
	return nil, nil
}

// ResearchCompany runs (or serves from cache) the research phase.
func (s *Service) ResearchCompany(ctx context.Context, companyName, targetAudience string) (*research.Report, error) {
	key := cache.Key("research", companyName, targetAudience)
	if e, ok := s.Cache.Get(key); ok {
		if rep, ok := e.Result.(*research.Report); ok {
			log.Info("research for %q served from cache", companyName)
			return rep, nil
		}
	}
	rep, err := s.Research.Research(ctx, companyName, targetAudience)
	if err != nil {
		return nil, err
	}
	s.Cache.Put(key, rep, "research")
	return rep, nil
}

// GenerateCampaigns runs research (cached) plus the marketing phase.
func (s *Service) GenerateCampaigns(ctx context.Context, companyName, targetAudience string) (*pipeline.CampaignPlan, error) {
	key := cache.Key("campaigns", companyName, targetAudience)
	if e, ok := s.Cache.Get(key); ok {
		if plan, ok := e.Result.(*pipeline.CampaignPlan); ok {
			log.Info("campaigns for %q served from cache", companyName)
			return plan, nil
		}
	}
	rep, err := s.ResearchCompany(ctx, companyName, targetAudience)
	if err != nil {
		return nil, err
	}
	analysis, err := s.Marketing.AnalyzeBrand(ctx, companyName, targetAudience, rep.CompanySummary())
	if err != nil {
		return nil, err
	}
	ideas, raw, err := s.Marketing.GenerateCampaigns(ctx, companyName, targetAudience, analysis)
	if err != nil {
		return nil, err
	}
	plan := &pipeline.CampaignPlan{BrandAnalysis: analysis, Raw: raw, Ideas: ideas}
	s.Cache.Put(key, plan, "campaigns")
	return plan, nil
}

// GenerateCampaignAssets runs the asset flow for a single idea.
func (s *Service) GenerateCampaignAssets(ctx context.Context, companyName, targetAudience, companySummary string, idea marketing.CampaignIdea) (*adgen.CampaignResult, error) {
	return s.Orchestrator.GenerateAssets(ctx, adgen.Input{
		CompanyName:    companyName,
		TargetAudience: targetAudience,
		CompanySummary: companySummary,
		Idea:           idea,
	})
}

// RunCampaignFlow runs the whole pipeline: research, campaigns, assets.
// The returned state carries every phase snapshot plus the step history.
func (s *Service) RunCampaignFlow(ctx context.Context, companyName, targetAudience string) (*pipeline.PipelineState, error) {
	st := &pipeline.PipelineState{
		RunID:          uuid.NewString(),
		CompanyName:    companyName,
		TargetAudience: targetAudience,
		NumCampaigns:   s.Marketing.NumCampaigns,
	}
	pl := &pipeline.Pipeline{
		Steps: []pipeline.Step{
			&steps.ResearchStep{Agent: s.Research},
			&steps.CampaignsStep{Agent: s.Marketing},
			&steps.AssetsStep{Orchestrator: s.Orchestrator},
		},
		Agent: &pipeline.DefaultAgent{MaxRetry: s.StepRetries},
	}
	log.Info("run %s: %q for audience %q", st.RunID, companyName, targetAudience)
	if err := pl.Run(ctx, st); err != nil {
		return st, err
	}
	if rep := st.Report(); rep != nil {
		s.Cache.Put(cache.Key("research", companyName, targetAudience), rep, "research")
	}
	if plan := st.Plan(); plan != nil {
		s.Cache.Put(cache.Key("campaigns", companyName, targetAudience), plan, "campaigns")
	}
	return st, nil
}
