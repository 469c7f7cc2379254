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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/advocate-ai/advocate/imagegen"
	abutil "github.com/advocate-ai/advocate/internal/utils"
	"github.com/advocate-ai/advocate/llm"
	"github.com/advocate-ai/advocate/llm/log"
	"github.com/advocate-ai/advocate/marketing"
)

// DefaultOutputRoot is where campaign directories land unless OUTPUT_ROOT
// overrides it.
const DefaultOutputRoot = "generated_campaigns"

// Asset file names inside a campaign directory.
const (
	FileTagline = "tagline.txt"
	FileStory   = "story.txt"
	FileQuality = "quality_check.txt"
	FileDetails = "campaign_details.json"
)

// CampaignResult is one idea with its generated assets and where they
// were written. Paths only lists files that actually exist; a failed
// image stays absent instead of pointing at nothing.
type CampaignResult struct {
	CompanyName    string                 `json:"company_name"`
	TargetAudience string                 `json:"target_audience"`
	Idea           marketing.CampaignIdea `json:"campaign"`
	Assets         Assets                 `json:"assets"`
	Dir            string                 `json:"directory"`
	Paths          map[string]string      `json:"paths"`
	GeneratedAt    time.Time              `json:"generated_at"`
}

// Orchestrator runs the flow per idea and persists the results.
type Orchestrator struct {
	graph      *Graph
	imager     imagegen.Generator
	OutputRoot string
}

// NewOrchestrator wires the flow. imager may be nil; image generation is
// then skipped and results carry no image.
func NewOrchestrator(cli *llm.Client, imager imagegen.Generator) *Orchestrator {
	root := os.Getenv("OUTPUT_ROOT")
	if root == "" {
		root = DefaultOutputRoot
	}
	return &Orchestrator{graph: NewGraph(cli), imager: imager, OutputRoot: root}
}

// GenerateAssets runs the flow for one idea and writes its campaign
// directory.
func (o *Orchestrator) GenerateAssets(ctx context.Context, in Input) (*CampaignResult, error) {
	assets, _, err := o.graph.Run(ctx, in)
	if err != nil {
		return nil, err
	}

	dir := o.campaignDir(in.Idea.Name)
	res := &CampaignResult{
		CompanyName:    in.CompanyName,
		TargetAudience: in.TargetAudience,
		Idea:           in.Idea,
		Assets:         assets,
		Dir:            dir,
		Paths:          map[string]string{},
		GeneratedAt:    time.Now().UTC(),
	}

	if o.imager != nil && assets.ImagePrompt != "" {
		imgPath, err := o.imager.Generate(ctx, assets.ImagePrompt, dir)
		if err != nil {
			log.Error("image generation failed for %q: %v", in.Idea.Name, err)
		} else {
			res.Assets.ImagePath = imgPath
			res.Paths["image"] = imgPath
		}
	}

	if err := o.save(res); err != nil {
		return nil, err
	}
	return res, nil
}

func (o *Orchestrator) save(res *CampaignResult) error {
	files := map[string]string{
		FileTagline: res.Assets.Tagline,
		FileStory:   res.Assets.Story,
		FileQuality: res.Assets.QualityReport,
	}
	for name, content := range files {
		p := filepath.Join(res.Dir, name)
		if err := abutil.WriteFile(p, []byte(content)); err != nil {
			return err
		}
		res.Paths[strings.TrimSuffix(name, filepath.Ext(name))] = p
	}

	details, err := abutil.MarshalJSONIndent(res)
	if err != nil {
		return err
	}
	p := filepath.Join(res.Dir, FileDetails)
	if err := abutil.WriteFile(p, []byte(details)); err != nil {
		return err
	}
	res.Paths["details"] = p
	log.Info("campaign %q saved to %s", res.Idea.Name, res.Dir)
	return nil
}

// campaignDir builds <root>/<sanitized name>_<timestamp>. Millisecond
// precision keeps directories of a single run from colliding.
func (o *Orchestrator) campaignDir(ideaName string) string {
	now := time.Now()
	stamp := now.Format("20060102_150405") + fmt.Sprintf("_%03d", now.Nanosecond()/1e6)
	return filepath.Join(o.OutputRoot, Sanitize(ideaName)+"_"+stamp)
}

// Sanitize maps a campaign name to a filesystem-safe directory fragment:
// alphanumerics pass through, everything else becomes '_', edges trimmed.
func Sanitize(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	return strings.Trim(sb.String(), "_")
}
