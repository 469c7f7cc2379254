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

package mcp

import (
	"context"

	"github.com/advocate-ai/advocate/adgen"
	"github.com/advocate-ai/advocate/internal/service"
	"github.com/advocate-ai/advocate/llm/tool"
	"github.com/advocate-ai/advocate/marketing"
)

// Tool names and descriptions exposed by the server.
const (
	ToolResearchCompany = "research_company"
	DescResearchCompany = "research a company and its audience: questions, web findings and analysis"

	ToolGenerateCampaigns = "generate_campaigns"
	DescGenerateCampaigns = "research a company and generate structured marketing campaign ideas"

	ToolGenerateAssets = "generate_campaign_assets"
	DescGenerateAssets = "generate tagline, story and image assets for one campaign idea"

	ToolRunCampaignFlow = "run_campaign_flow"
	DescRunCampaignFlow = "run the full flow: research, campaign ideas and assets for every idea"

	ToolListCampaigns = "list_campaigns"
	DescListCampaigns = "list previously generated campaigns found under the output root"
)

var (
	SchemaResearchCompany   = tool.GetJSONSchema(ResearchCompanyReq{})
	SchemaGenerateCampaigns = tool.GetJSONSchema(GenerateCampaignsReq{})
	SchemaGenerateAssets    = tool.GetJSONSchema(GenerateAssetsReq{})
	SchemaRunCampaignFlow   = tool.GetJSONSchema(RunCampaignFlowReq{})
	SchemaListCampaigns     = tool.GetJSONSchema(ListCampaignsReq{})
)

type ResearchCompanyReq struct {
	CompanyName    string `json:"company_name" jsonschema:"description=the company to research"`
	TargetAudience string `json:"target_audience" jsonschema:"description=the audience the marketing should reach"`
}

type ResearchCompanyResp struct {
	Questions      []string `json:"questions"`
	RawFindings    string   `json:"raw_findings"`
	Analysis       string   `json:"analysis"`
	CompanySummary string   `json:"company_summary"`
}

type GenerateCampaignsReq struct {
	CompanyName    string `json:"company_name" jsonschema:"description=the company to generate campaigns for"`
	TargetAudience string `json:"target_audience" jsonschema:"description=the audience the campaigns should reach"`
}

type GenerateCampaignsResp struct {
	BrandAnalysis string                   `json:"brand_analysis"`
	Campaigns     []marketing.CampaignIdea `json:"campaigns"`
}

type GenerateAssetsReq struct {
	CompanyName    string                 `json:"company_name" jsonschema:"description=the company the campaign belongs to"`
	TargetAudience string                 `json:"target_audience" jsonschema:"description=the audience the campaign targets"`
	CompanySummary string                 `json:"company_summary,omitempty" jsonschema:"description=optional research summary of the company"`
	Campaign       marketing.CampaignIdea `json:"campaign" jsonschema:"description=the campaign idea to produce assets for"`
}

type GenerateAssetsResp struct {
	Result *adgen.CampaignResult `json:"result"`
}

type RunCampaignFlowReq struct {
	CompanyName    string `json:"company_name" jsonschema:"description=the company to run the flow for"`
	TargetAudience string `json:"target_audience" jsonschema:"description=the audience the marketing should reach"`
}

type RunCampaignFlowResp struct {
	RunID         string                   `json:"run_id"`
	BrandAnalysis string                   `json:"brand_analysis,omitempty"`
	Campaigns     []marketing.CampaignIdea `json:"campaigns,omitempty"`
	Results       []*adgen.CampaignResult  `json:"results,omitempty"`
}

type ListCampaignsReq struct{}

type ListCampaignsResp struct {
	Campaigns []*adgen.CampaignResult `json:"campaigns"`
}

// campaignTools binds the service and index to the MCP tool set.
func campaignTools(svc *service.Service, index *CampaignIndex) []Tool {
	researchCompany := func(ctx context.Context, req ResearchCompanyReq) (*ResearchCompanyResp, error) {
		rep, err := svc.ResearchCompany(ctx, req.CompanyName, req.TargetAudience)
		if err != nil {
			return nil, err
		}
		return &ResearchCompanyResp{
			Questions:      rep.Questions,
			RawFindings:    rep.RawFindings,
			Analysis:       rep.Analysis,
			CompanySummary: rep.CompanySummary(),
		}, nil
	}

	generateCampaigns := func(ctx context.Context, req GenerateCampaignsReq) (*GenerateCampaignsResp, error) {
		plan, err := svc.GenerateCampaigns(ctx, req.CompanyName, req.TargetAudience)
		if err != nil {
			return nil, err
		}
		return &GenerateCampaignsResp{BrandAnalysis: plan.BrandAnalysis, Campaigns: plan.Ideas}, nil
	}

	generateAssets := func(ctx context.Context, req GenerateAssetsReq) (*GenerateAssetsResp, error) {
		res, err := svc.GenerateCampaignAssets(ctx, req.CompanyName, req.TargetAudience, req.CompanySummary, req.Campaign)
		if err != nil {
			return nil, err
		}
		return &GenerateAssetsResp{Result: res}, nil
	}

	runFlow := func(ctx context.Context, req RunCampaignFlowReq) (*RunCampaignFlowResp, error) {
		st, err := svc.RunCampaignFlow(ctx, req.CompanyName, req.TargetAudience)
		if err != nil {
			return nil, err
		}
		resp := &RunCampaignFlowResp{RunID: st.RunID, Results: st.CampaignResults()}
		if plan := st.Plan(); plan != nil {
			resp.BrandAnalysis = plan.BrandAnalysis
			resp.Campaigns = plan.Ideas
		}
		return resp, nil
	}

	listCampaigns := func(ctx context.Context, req ListCampaignsReq) (*ListCampaignsResp, error) {
		return &ListCampaignsResp{Campaigns: index.List()}, nil
	}

	return []Tool{
		NewTool(ToolResearchCompany, DescResearchCompany, SchemaResearchCompany, researchCompany),
		NewTool(ToolGenerateCampaigns, DescGenerateCampaigns, SchemaGenerateCampaigns, generateCampaigns),
		NewTool(ToolGenerateAssets, DescGenerateAssets, SchemaGenerateAssets, generateAssets),
		NewTool(ToolRunCampaignFlow, DescRunCampaignFlow, SchemaRunCampaignFlow, runFlow),
		NewTool(ToolListCampaigns, DescListCampaigns, SchemaListCampaigns, listCampaigns),
	}
}
