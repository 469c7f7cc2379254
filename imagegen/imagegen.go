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

package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	abutil "github.com/advocate-ai/advocate/internal/utils"
	"github.com/advocate-ai/advocate/llm"
)

// Generator produces one campaign image under outputDir and returns the
// written file path.
type Generator interface {
	Generate(ctx context.Context, prompt, outputDir string) (string, error)
}

// Client calls an OpenAI-compatible images endpoint.
type Client struct {
	APIKey     string
	BaseURL    string
	Model      string
	Size       string
	HTTPClient *http.Client
}

// NewFromEnv builds a Client from IMAGE_API_KEY, IMAGE_BASE_URL and
// IMAGE_MODEL. The second return is false when no key is configured;
// callers then skip image generation rather than fail the run.
func NewFromEnv() (Generator, bool) {
	apiKey := os.Getenv("IMAGE_API_KEY")
	if apiKey == "" {
		return nil, false
	}
	cli := &Client{
		APIKey:     apiKey,
		BaseURL:    os.Getenv("IMAGE_BASE_URL"),
		Model:      os.Getenv("IMAGE_MODEL"),
		Size:       "1024x1024",
		HTTPClient: &http.Client{Timeout: 120 * time.Second},
	}
	if cli.BaseURL == "" {
		cli.BaseURL = "https://api.openai.com/v1"
	}
	if cli.Model == "" {
		cli.Model = "dall-e-3"
	}
	return cli, true
}

type imageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format,omitempty"`
}

type imageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
		URL     string `json:"url"`
	} `json:"data"`
}

// Generate requests one image and writes it as image.<ext> in outputDir.
func (c *Client) Generate(ctx context.Context, prompt, outputDir string) (string, error) {
	body, err := json.Marshal(imageRequest{
		Model:          c.Model,
		Prompt:         prompt,
		N:              1,
		Size:           c.Size,
		ResponseFormat: "b64_json",
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.BaseURL, "/")+"/images/generations", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", llm.NewExternalError("imagegen", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", llm.NewExternalError("imagegen", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", llm.NewExternalError("imagegen",
			fmt.Errorf("status %d: %s", resp.StatusCode, truncate(raw, 200)))
	}

	var ir imageResponse
	if err := json.Unmarshal(raw, &ir); err != nil {
		return "", llm.NewExternalError("imagegen", err)
	}
	if len(ir.Data) == 0 {
		return "", llm.NewExternalError("imagegen", fmt.Errorf("empty image response"))
	}

	if ir.Data[0].B64JSON != "" {
		img, err := base64.StdEncoding.DecodeString(ir.Data[0].B64JSON)
		if err != nil {
			return "", llm.NewExternalError("imagegen", err)
		}
		out := filepath.Join(outputDir, "image.png")
		if err := abutil.WriteFile(out, img); err != nil {
			return "", err
		}
		return out, nil
	}
	return c.download(ctx, ir.Data[0].URL, outputDir)
}

// download fetches a hosted result when the endpoint returns URLs instead
// of inline data.
func (c *Client) download(ctx context.Context, url, outputDir string) (string, error) {
	if url == "" {
		return "", llm.NewExternalError("imagegen", fmt.Errorf("no image data or url"))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", llm.NewExternalError("imagegen", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", llm.NewExternalError("imagegen", fmt.Errorf("image download: status %d", resp.StatusCode))
	}
	img, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", llm.NewExternalError("imagegen", err)
	}
	ext := path.Ext(url)
	if i := strings.IndexByte(ext, '?'); i >= 0 {
		ext = ext[:i]
	}
	if ext == "" {
		ext = ".png"
	}
	out := filepath.Join(outputDir, "image"+ext)
	if err := abutil.WriteFile(out, img); err != nil {
		return "", err
	}
	return out, nil
}

func truncate(raw []byte, max int) string {
	if len(raw) > max {
		raw = raw[:max]
	}
	return string(raw)
}
