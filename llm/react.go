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
	"time"

	"github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/flow/agent"
	"github.com/cloudwego/eino/flow/agent/react"
	"github.com/cloudwego/eino/schema"

	"github.com/advocate-ai/advocate/llm/log"
	"github.com/advocate-ai/advocate/llm/prompt"
)

var _ Generator = (*ReactAgent)(nil)

// ReactAgent is a tool-calling agent loop; the retrieve-data research stage
// uses it so the model can drive the web-search tool.
type ReactAgent struct {
	opts ReactAgentOptions
	*react.Agent
	retries int
	timeout time.Duration
}

type ReactAgentOptions struct {
	SysPrompt prompt.Prompt `json:"-"`
	*react.AgentConfig
	Retries int           `json:"retries"` // default: 3
	Timeout time.Duration `json:"timeout"` // default: 600s
}

func NewReactAgent(ctx context.Context, name string, opts ReactAgentOptions) (*ReactAgent, error) {
	if opts.AgentConfig.MessageModifier == nil {
		opts.AgentConfig.MessageModifier = newMessageModifier(opts.SysPrompt.String(), name, opts.AgentConfig.MaxStep)
	}
	ag, err := react.NewAgent(ctx, opts.AgentConfig)
	if err != nil {
		return nil, err
	}
	retries := opts.Retries
	if retries == 0 {
		retries = 3
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 600 * time.Second
	}
	return &ReactAgent{
		opts:    opts,
		Agent:   ag,
		retries: retries,
		timeout: timeout,
	}, nil
}

func newMessageModifier(sysPrompt string, name string, limit int) func(ctx context.Context, input []*schema.Message) []*schema.Message {
	return func(ctx context.Context, input []*schema.Message) []*schema.Message {
		log.Debug("messageModifier, name: %v, limit: %d, input: %v", name, limit, len(input))
		if limit > 0 && len(input) >= limit-1 {
			input = append(input, schema.UserMessage("The step limit has been reached. Summarize your findings now without calling any more tools."))
		}
		res := make([]*schema.Message, 0, len(input)+1)
		res = append(res, schema.SystemMessage(sysPrompt))
		res = append(res, input...)
		return res
	}
}

func (p *ReactAgent) Call(ctx context.Context, input string) (string, error) {
	inputMsgs := []*schema.Message{schema.UserMessage(input)}
	log.Debug("[User] %s", input)

	var lastErr error
	for attempt := 0; attempt <= p.retries; attempt++ {
		if attempt > 0 {
			log.Info("Retrying agent call (attempt %d/%d)...", attempt+1, p.retries+1)
			waitTime := time.Duration(1<<uint(attempt-1)) * time.Second
			if waitTime > 10*time.Second {
				waitTime = 10 * time.Second
			}
			time.Sleep(waitTime)
		}

		attemptCtx, cancel := context.WithTimeout(ctx, p.timeout)
		out, err := p.Generate(attemptCtx, inputMsgs, agent.WithComposeOptions(compose.WithCallbacks(CallbackHandler{})))
		cancel()
		if err == nil {
			return out.Content, nil
		}

		lastErr = err
		if !IsRetryable(err) {
			log.Error("Non-retryable error occurred: %v", err)
			return "", NewExternalError("agent", err)
		}
		log.Info("Retryable error occurred (attempt %d/%d): %v", attempt+1, p.retries+1, err)
	}
	return "", NewExternalError("agent", fmt.Errorf("failed after %d retries: %w", p.retries+1, lastErr))
}

// CallbackHandler traces agent execution at debug level.
type CallbackHandler struct{}

var _ callbacks.Handler = (*CallbackHandler)(nil)

func (h CallbackHandler) OnStart(ctx context.Context, info *callbacks.RunInfo, input callbacks.CallbackInput) context.Context {
	log.Debug("<OnStart>\n\tINFO: %+v\n</OnStart>", info)
	return ctx
}

func (h CallbackHandler) OnEnd(ctx context.Context, info *callbacks.RunInfo, output callbacks.CallbackOutput) context.Context {
	log.Debug("<OnEnd>\n\tINFO %+v\n\tOUTPUT: %v\n</OnEnd>", info, output)
	return ctx
}

func (h CallbackHandler) OnError(ctx context.Context, info *callbacks.RunInfo, err error) context.Context {
	log.Error("<OnError>\n\tINFO: %+v\n\tERROR: %v\n</OnError>", info, err)
	return ctx
}

func (h CallbackHandler) OnStartWithStreamInput(ctx context.Context, info *callbacks.RunInfo,
	input *schema.StreamReader[callbacks.CallbackInput]) context.Context {
	input.Close()
	return ctx
}

func (h CallbackHandler) OnEndWithStreamOutput(ctx context.Context, info *callbacks.RunInfo,
	output *schema.StreamReader[callbacks.CallbackOutput]) context.Context {
	output.Close()
	return ctx
}
