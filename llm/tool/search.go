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

package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/tool/utils"

	abutil "github.com/advocate-ai/advocate/internal/utils"
	"github.com/advocate-ai/advocate/llm/log"
)

const (
	ToolWebSearch = "web_search"
	DescWebSearch = "search the web for current information about a company, market or audience"
)

var SchemaWebSearch = GetJSONSchema(WebSearchReq{})

// SearchClient is the search collaborator used by the retrieve-data stage.
type SearchClient interface {
	Search(ctx context.Context, query string) (string, error)
}

// TavilyClient calls the Tavily search API.
type TavilyClient struct {
	APIKey     string
	BaseURL    string
	MaxResults int
	HTTPClient *http.Client
}

func NewTavilyClient(apiKey string) *TavilyClient {
	return &TavilyClient{
		APIKey:     apiKey,
		BaseURL:    "https://api.tavily.com",
		MaxResults: 5,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type tavilyRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type tavilyResponse struct {
	Answer  string `json:"answer"`
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// Search returns the hits flattened into one text block the model can read.
func (c *TavilyClient) Search(ctx context.Context, query string) (string, error) {
	body, err := json.Marshal(tavilyRequest{Query: query, MaxResults: c.MaxResults})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", abutil.WrapError(err, "tavily search")
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", abutil.WrapError(err, "tavily search")
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tavily search: status %d: %s", resp.StatusCode, truncateBody(raw))
	}

	var tr tavilyResponse
	if err := json.Unmarshal(raw, &tr); err != nil {
		return "", abutil.WrapError(err, "tavily search: decode response")
	}

	var sb strings.Builder
	if tr.Answer != "" {
		sb.WriteString(tr.Answer)
		sb.WriteString("\n\n")
	}
	for _, r := range tr.Results {
		fmt.Fprintf(&sb, "- %s (%s)\n%s\n", r.Title, r.URL, r.Content)
	}
	return sb.String(), nil
}

func truncateBody(raw []byte) string {
	const max = 200
	if len(raw) > max {
		raw = raw[:max]
	}
	return string(raw)
}

type WebSearchReq struct {
	Query string `json:"query" jsonschema:"description=the search query"`
}

type WebSearchResp struct {
	Results string `json:"results" jsonschema:"description=flattened search results"`
}

// NewWebSearchTool wraps a SearchClient as an eino tool for the react agent.
func NewWebSearchTool(cli SearchClient) Tool {
	tt, err := utils.InferTool(ToolWebSearch, DescWebSearch,
		func(ctx context.Context, req WebSearchReq) (*WebSearchResp, error) {
			log.Debug("web_search: %q", req.Query)
			res, err := cli.Search(ctx, req.Query)
			if err != nil {
				return nil, err
			}
			return &WebSearchResp{Results: res}, nil
		},
		utils.WithMarshalOutput(func(ctx context.Context, output interface{}) (string, error) {
			return abutil.MarshalJSONIndent(output)
		}))
	if err != nil {
		panic(err)
	}
	return tt
}
