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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/advocate-ai/advocate/adgen"
	"github.com/advocate-ai/advocate/internal/pipeline"
	"github.com/advocate-ai/advocate/internal/service"
	"github.com/advocate-ai/advocate/internal/utils"
	"github.com/advocate-ai/advocate/llm/log"
	"github.com/advocate-ai/advocate/marketing"
	"github.com/advocate-ai/advocate/mcp"
	"github.com/advocate-ai/advocate/version"
)

const Usage = `advocate <Action> [Args] [Flags]
Action:
   run          run the full campaign flow: research, campaign ideas and assets
                args: <company_name> <target_audience>
   mcp          run as an MCP server exposing the campaign tools over stdio
   version      print the version of advocate
Environment:
   API_TYPE, API_KEY, MODEL_NAME, BASE_URL   chat model configuration
   SEARCH_API_KEY                            Tavily key for the research web search
   SEARCH_MCP_URL, SEARCH_MCP_COMMAND        external MCP search server instead of Tavily
   IMAGE_API_KEY, IMAGE_BASE_URL, IMAGE_MODEL image backend (unset: no images)
   OUTPUT_ROOT                               campaign output directory (default: generated_campaigns)
   NUM_CAMPAIGNS, MAX_QUALITY_RETRIES, QUALITY_RULE
`

func main() {
	flags := flag.NewFlagSet("advocate", flag.ExitOnError)
	flagHelp := flags.Bool("h", false, "Show help message.")
	flagVerbose := flags.Bool("verbose", false, "Verbose mode.")
	flagOutput := flags.String("o", "", "Write the run summary JSON to this path instead of stdout.")
	flagCampaigns := flags.Int("n", 0, "Number of campaign ideas to generate.")

	flags.Usage = func() {
		fmt.Fprint(os.Stderr, Usage)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flags.PrintDefaults()
	}

	if len(os.Args) < 2 {
		flags.Usage()
		os.Exit(1)
	}
	action := strings.ToLower(os.Args[1])

	switch action {
	case "version":
		fmt.Fprintf(os.Stdout, "%s\n", version.Version)

	case "run":
		companyName, targetAudience := parseRunArgs(flags, flagHelp, flagVerbose)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, err := service.New(ctx)
		if err != nil {
			log.Error("Failed to configure: %v\n", err)
			os.Exit(1)
		}
		if *flagCampaigns > 0 {
			svc.Marketing.NumCampaigns = *flagCampaigns
		}

		st, err := svc.RunCampaignFlow(ctx, companyName, targetAudience)
		if err != nil {
			log.Error("Run failed: %v\n", err)
			os.Exit(1)
		}

		out, err := utils.MarshalJSONIndent(newRunSummary(st))
		if err != nil {
			log.Error("Failed to render summary: %v\n", err)
			os.Exit(1)
		}
		if *flagOutput != "" {
			if err := utils.WriteFile(*flagOutput, []byte(out)); err != nil {
				log.Error("Failed to write output: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Fprintf(os.Stdout, "%s\n", out)
		}

	case "mcp":
		flags.Parse(os.Args[2:])
		if *flagHelp {
			flags.Usage()
			os.Exit(0)
		}
		if *flagVerbose {
			log.SetLogLevel(log.DebugLevel)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, err := service.New(ctx)
		if err != nil {
			log.Error("Failed to configure: %v\n", err)
			os.Exit(1)
		}
		svr := mcp.NewServer(mcp.ServerOptions{
			ServerName:    "advocate",
			ServerVersion: version.Version,
			Service:       svc,
			OutputRoot:    svc.Orchestrator.OutputRoot,
		})
		if err := svr.ServeStdio(); err != nil {
			log.Error("Failed to run MCP server: %v\n", err)
			os.Exit(1)
		}

	default:
		flags.Usage()
		os.Exit(1)
	}
}

func parseRunArgs(flags *flag.FlagSet, flagHelp, flagVerbose *bool) (companyName, targetAudience string) {
	companyName, targetAudience, flagArgs, ok := splitRunArgs(os.Args[2:])
	flags.Parse(flagArgs)
	if *flagHelp {
		flags.Usage()
		os.Exit(0)
	}
	if *flagVerbose {
		log.SetLogLevel(log.DebugLevel)
	}
	if !ok {
		log.Error("Arguments company_name and target_audience are required\n")
		flags.Usage()
		os.Exit(1)
	}
	return companyName, targetAudience
}

// splitRunArgs takes the two positionals ahead of the flags so that
// "run <company> <audience> -o out.json" parses the trailing flags
// instead of dropping them. A leading flag leaves the positionals empty
// and hands everything to the flag set (covers "run -h").
func splitRunArgs(args []string) (companyName, targetAudience string, flagArgs []string, ok bool) {
	if len(args) < 2 || strings.HasPrefix(args[0], "-") || strings.HasPrefix(args[1], "-") {
		return "", "", args, false
	}
	return args[0], args[1], args[2:], true
}

// runSummary is the JSON shape dumped after a run.
type runSummary struct {
	RunID          string                   `json:"run_id"`
	CompanyName    string                   `json:"company_name"`
	TargetAudience string                   `json:"target_audience"`
	BrandAnalysis  string                   `json:"brand_analysis,omitempty"`
	Campaigns      []marketing.CampaignIdea `json:"campaigns,omitempty"`
	Results        []*adgen.CampaignResult  `json:"results,omitempty"`
	Steps          []stepSummary            `json:"steps"`
}

type stepSummary struct {
	Step    string    `json:"step"`
	Attempt int       `json:"attempt"`
	Status  string    `json:"status"`
	Error   string    `json:"error,omitempty"`
	Time    time.Time `json:"time"`
}

func newRunSummary(st *pipeline.PipelineState) runSummary {
	s := runSummary{
		RunID:          st.RunID,
		CompanyName:    st.CompanyName,
		TargetAudience: st.TargetAudience,
		Results:        st.CampaignResults(),
	}
	if plan := st.Plan(); plan != nil {
		s.BrandAnalysis = plan.BrandAnalysis
		s.Campaigns = plan.Ideas
	}
	for _, rec := range st.History {
		s.Steps = append(s.Steps, stepSummary{
			Step:    rec.StepName,
			Attempt: rec.Attempt,
			Status:  string(rec.Status),
			Error:   rec.Error,
			Time:    rec.Time,
		})
	}
	return s
}
