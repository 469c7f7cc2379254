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
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"

	"github.com/advocate-ai/advocate/llm/log"
)

var _ Generator = (*Client)(nil)

// Client is a plain chat caller (no tools) with retry on transient errors.
// One Client is shared by every pipeline stage of a run.
type Client struct {
	model   ChatModel
	retries int
	timeout time.Duration
}

func NewClient(ctx context.Context, cfg ModelConfig) (*Client, error) {
	model, err := NewChatModel(ctx, cfg)
	if err != nil {
		return nil, err
	}
	retries := cfg.Retries
	if retries == 0 {
		retries = 3
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 600 * time.Second
	}
	return &Client{model: model, retries: retries, timeout: timeout}, nil
}

// NewClientWithModel wraps an existing ChatModel; used by tests with stubs.
func NewClientWithModel(model ChatModel) *Client {
	return &Client{model: model, retries: 3, timeout: 600 * time.Second}
}

// Call implements Generator with a single user message.
func (c *Client) Call(ctx context.Context, input string) (string, error) {
	return c.Chat(ctx, "", input)
}

// Chat sends an optional system message plus one user message and returns
// the assistant text.
func (c *Client) Chat(ctx context.Context, system, user string) (string, error) {
	msgs := make([]*schema.Message, 0, 2)
	if system != "" {
		msgs = append(msgs, schema.SystemMessage(system))
	}
	msgs = append(msgs, schema.UserMessage(user))
	log.Debug("[User] %s", user)
	return c.Generate(ctx, msgs)
}

// Generate sends a pre-built message list, usually the output of a chat
// template. Transient failures are retried with exponential backoff;
// non-retryable failures surface immediately as ExternalError.
func (c *Client) Generate(ctx context.Context, msgs []*schema.Message) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			log.Info("Retrying LLM call (attempt %d/%d)...", attempt+1, c.retries+1)
			// Exponential backoff: 1s, 2s, 4s... capped at 10s.
			waitTime := time.Duration(1<<uint(attempt-1)) * time.Second
			if waitTime > 10*time.Second {
				waitTime = 10 * time.Second
			}
			time.Sleep(waitTime)
		}

		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		out, err := c.model.Generate(attemptCtx, msgs)
		cancel()
		if err == nil {
			if out == nil {
				return "", NewExternalError("llm", fmt.Errorf("nil response"))
			}
			log.Debug("[Assistant] %s", out.Content)
			return out.Content, nil
		}

		lastErr = err
		if !IsRetryable(err) {
			log.Error("Non-retryable error occurred: %v", err)
			return "", NewExternalError("llm", err)
		}
		log.Info("Retryable error occurred (attempt %d/%d): %v", attempt+1, c.retries+1, err)
	}
	return "", NewExternalError("llm", fmt.Errorf("failed after %d retries: %w", c.retries+1, lastErr))
}

// IsRetryable reports whether err looks like a transient transport failure.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "timed out") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "read tcp") ||
		strings.Contains(errStr, "write tcp")
}
