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
	"os"
	"strconv"

	"github.com/advocate-ai/advocate/llm"
	"github.com/advocate-ai/advocate/llm/log"
	"github.com/advocate-ai/advocate/marketing"
)

// Stage is a node of the asset-generation flow.
type Stage string

const (
	StageStrategy          Stage = "strategy"
	StageCreativeDirection Stage = "creative_direction"
	StageAssets            Stage = "assets"
	StageQualityCheck      Stage = "quality_check"
	StageDone              Stage = "done"
)

// DefaultMaxQualityRetries bounds the quality-check regeneration loop.
const DefaultMaxQualityRetries = 3

// Input is everything the flow needs to produce assets for one idea.
type Input struct {
	CompanyName    string
	TargetAudience string
	CompanySummary string
	Idea           marketing.CampaignIdea
}

// Assets is the flow output. ImagePath stays empty when image generation
// is disabled or failed; the other fields are always set on success.
type Assets struct {
	Tagline       string            `json:"tagline"`
	Story         string            `json:"story"`
	ImagePrompt   string            `json:"image_prompt"`
	ImagePath     string            `json:"image_path,omitempty"`
	QualityReport string            `json:"quality_report"`
	Verdicts      map[string]string `json:"verdicts"`
}

// flowState is the mutable state threaded through the stages of one run.
type flowState struct {
	in             Input
	strategy       string
	direction      string
	assets         Assets
	failed         []string
	qualityRetries int
}

// Graph is the staged asset-generation flow with a bounded quality loop:
// strategy, creative direction, assets, quality check, and back to assets
// while the reviewer fails something and retries remain.
type Graph struct {
	cli               *llm.Client
	MaxQualityRetries int
	Predicate         VerdictPredicate
}

func NewGraph(cli *llm.Client) *Graph {
	g := &Graph{
		cli:               cli,
		MaxQualityRetries: DefaultMaxQualityRetries,
		Predicate:         DefaultVerdictPredicate,
	}
	if v := os.Getenv("MAX_QUALITY_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			g.MaxQualityRetries = n
		}
	}
	if rule := os.Getenv("QUALITY_RULE"); rule != "" {
		p, err := NewRulePredicate(rule)
		if err != nil {
			log.Error("invalid QUALITY_RULE, using keyword policy: %v", err)
		} else {
			g.Predicate = p
		}
	}
	return g
}

// Run drives the flow to StageDone. The context is checked between stages
// so cancellation never waits out a whole stage chain.
func (g *Graph) Run(ctx context.Context, in Input) (Assets, []Stage, error) {
	if in.CompanyName == "" {
		return Assets{}, nil, &PreconditionError{Stage: string(StageStrategy), Field: "company_name"}
	}
	if in.Idea.Name == "" {
		return Assets{}, nil, &PreconditionError{Stage: string(StageStrategy), Field: "campaign_name"}
	}

	s := &flowState{in: in}
	trace := make([]Stage, 0, 8)
	stage := StageStrategy
	for stage != StageDone {
		if err := ctx.Err(); err != nil {
			return Assets{}, trace, err
		}
		trace = append(trace, stage)
		log.Debug("adgen stage %s (idea %q)", stage, in.Idea.Name)

		var err error
		switch stage {
		case StageStrategy:
			err = g.analyzeStrategy(ctx, s)
		case StageCreativeDirection:
			err = g.generateCreativeDirection(ctx, s)
		case StageAssets:
			err = g.generateAssets(ctx, s)
		case StageQualityCheck:
			err = g.qualityCheck(ctx, s)
		}
		if err != nil {
			return Assets{}, trace, err
		}
		stage = g.next(stage, s)
	}
	return s.assets, trace, nil
}

// next encodes the stage transitions. The only branch is after quality
// check: regenerate assets while something failed and retries remain.
func (g *Graph) next(stage Stage, s *flowState) Stage {
	switch stage {
	case StageStrategy:
		return StageCreativeDirection
	case StageCreativeDirection:
		return StageAssets
	case StageAssets:
		return StageQualityCheck
	case StageQualityCheck:
		if len(s.failed) > 0 && s.qualityRetries < g.MaxQualityRetries {
			s.qualityRetries++
			log.Info("quality check failed %v, regenerating (retry %d/%d)",
				s.failed, s.qualityRetries, g.MaxQualityRetries)
			return StageAssets
		}
		if len(s.failed) > 0 {
			log.Info("quality retries exhausted, keeping last assets for %q", s.in.Idea.Name)
		}
		return StageDone
	default:
		return StageDone
	}
}
