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

// Package mcp exposes the campaign flows as an MCP tool server.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/advocate-ai/advocate/internal/service"
	"github.com/advocate-ai/advocate/llm/log"
)

// ServerOptions configures the MCP surface.
type ServerOptions struct {
	ServerName    string
	ServerVersion string
	Service       *service.Service
	OutputRoot    string
}

// Server is the MCP tool server plus the campaign index behind
// list_campaigns.
type Server struct {
	Server *server.MCPServer
	Index  *CampaignIndex
}

// NewServer registers the campaign tools and starts the index watcher.
func NewServer(opts ServerOptions) *Server {
	s := server.NewMCPServer(
		opts.ServerName,
		opts.ServerVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	index := NewCampaignIndex(opts.OutputRoot)
	if err := index.Watch(); err != nil {
		log.Error("campaign index watch: %v", err)
	}

	for _, t := range campaignTools(opts.Service, index) {
		s.AddTool(t.Tool, t.Handler)
	}
	return &Server{Server: s, Index: index}
}

// ServeStdio serves MCP over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.Server)
}
