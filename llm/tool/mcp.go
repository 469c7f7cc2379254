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
	"context"
	"errors"

	emcp "github.com/cloudwego/eino-ext/components/tool/mcp"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/advocate-ai/advocate/version"
)

// MCPConfig describes how to reach an external MCP tool server. A
// deployment can point the research agent at its own search server instead
// of the built-in Tavily client.
type MCPConfig struct {
	Type    MCPType
	Command string
	Args    []string
	Envs    []string
	SSEURL  string
}

type MCPType string

const (
	MCPTypeStdio MCPType = "stdio"
	MCPTypeSSE   MCPType = "sse"
)

type MCPClient struct {
	cli *client.Client
}

func NewMCPClient(opts MCPConfig) (*MCPClient, error) {
	switch opts.Type {
	case MCPTypeStdio:
		if opts.Command == "" {
			return nil, errors.New("command is empty")
		}
		cli, err := client.NewStdioMCPClient(opts.Command, opts.Envs, opts.Args...)
		if err != nil {
			return nil, err
		}
		return &MCPClient{cli: cli}, nil
	case MCPTypeSSE:
		if opts.SSEURL == "" {
			return nil, errors.New("sse url is empty")
		}
		cli, err := client.NewSSEMCPClient(opts.SSEURL)
		if err != nil {
			return nil, err
		}
		return &MCPClient{cli: cli}, nil
	default:
		return nil, errors.New("unsupported mcp type")
	}
}

func (c *MCPClient) Start(ctx context.Context) error {
	if err := c.cli.Start(ctx); err != nil {
		return err
	}
	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{
		Name:    "advocate",
		Version: version.Version,
	}
	_, err := c.cli.Initialize(ctx, initRequest)
	return err
}

func (c *MCPClient) GetTools(ctx context.Context) ([]Tool, error) {
	mcpTools, err := emcp.GetTools(ctx, &emcp.Config{Cli: c.cli})
	if err != nil {
		return nil, err
	}
	tools := make([]Tool, 0, len(mcpTools))
	for _, t := range mcpTools {
		tools = append(tools, t)
	}
	return tools, nil
}

// GetExternalSearchTools connects to a user-supplied MCP search server and
// returns its tools for the research agent.
func GetExternalSearchTools(ctx context.Context, cfg MCPConfig) ([]Tool, error) {
	cli, err := NewMCPClient(cfg)
	if err != nil {
		return nil, err
	}
	if err := cli.Start(ctx); err != nil {
		return nil, err
	}
	return cli.GetTools(ctx)
}
