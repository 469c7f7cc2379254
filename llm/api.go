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

package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
)

// ModelConfig selects and parameterizes a chat-completion backend.
type ModelConfig struct {
	Name        string        `json:"name"` // alias of the config, not endpoint!
	APIType     ModelType     `json:"type"`
	BaseURL     string        `json:"base_url"`
	APIKey      string        `json:"api_key"`
	ModelName   string        `json:"model_name"` // the endpoint of the model, like `claude-sonnet-4-20250514`
	Temperature *float32      `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Timeout     time.Duration `json:"timeout"` // HTTP request timeout, default: 600s
	Retries     int           `json:"retries"` // Number of retries on failure, default: 3
}

type ModelType string

const (
	ModelTypeUnknown   ModelType = ""
	ModelTypeOllama    ModelType = "ollama"
	ModelTypeARK       ModelType = "ark"
	ModelTypeOpenAI    ModelType = "openai"
	ModelTypeClaude    ModelType = "claude"
	ModelTypeDashScope ModelType = "dashscope"
	ModelTypeDeepSeek  ModelType = "deepseek"
)

func NewModelType(t string) ModelType {
	switch strings.ToLower(t) {
	case "ollama":
		return ModelTypeOllama
	case "ark", "doubao":
		return ModelTypeARK
	case "openai", "gpt", "azure":
		return ModelTypeOpenAI
	case "claude", "anthropic":
		return ModelTypeClaude
	case "dashscope", "qwen", "tongyi":
		return ModelTypeDashScope
	case "deepseek":
		return ModelTypeDeepSeek
	}
	return ModelTypeUnknown
}

// ConfigFromEnv builds a ModelConfig from API_TYPE/API_KEY/MODEL_NAME/BASE_URL.
func ConfigFromEnv() (ModelConfig, error) {
	cfg := ModelConfig{
		APIType:   NewModelType(os.Getenv("API_TYPE")),
		APIKey:    os.Getenv("API_KEY"),
		ModelName: os.Getenv("MODEL_NAME"),
		BaseURL:   os.Getenv("BASE_URL"),
	}
	if cfg.APIType == ModelTypeUnknown {
		return cfg, fmt.Errorf("env API_TYPE is required")
	}
	if cfg.APIKey == "" && cfg.APIType != ModelTypeOllama {
		return cfg, fmt.Errorf("env API_KEY is required")
	}
	if cfg.ModelName == "" {
		return cfg, fmt.Errorf("env MODEL_NAME is required")
	}
	return cfg, nil
}

// Generator is the interface for calling an LLM with a single text input.
type Generator interface {
	// Call calls the LLM with the input.
	Call(ctx context.Context, input string) (string, error)
}

// ChatModel is the interface for making LLM backend.
type ChatModel interface {
	model.ToolCallingChatModel
}

// ExternalError marks a collaborator failure (LLM, search, image backend).
// A run aborts on it; retry policy, if any, belongs to the caller.
type ExternalError struct {
	Collaborator string
	Err          error
}

func (e *ExternalError) Error() string {
	return fmt.Sprintf("%s call failed: %v", e.Collaborator, e.Err)
}

func (e *ExternalError) Unwrap() error { return e.Err }

// NewExternalError wraps err as an ExternalError for the named collaborator.
func NewExternalError(collaborator string, err error) error {
	if err == nil {
		return nil
	}
	return &ExternalError{Collaborator: collaborator, Err: err}
}
