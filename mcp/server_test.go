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

package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/server"
)

func sendAndRecv(t *testing.T, request any, stdinWriter *io.PipeWriter, stdoutReader *io.PipeReader) map[string]any {
	requestBytes, err := json.Marshal(request)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = stdinWriter.Write(append(requestBytes, '\n')); err != nil {
		t.Fatal(err)
	}

	scanner := bufio.NewScanner(stdoutReader)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	if !scanner.Scan() {
		t.Fatal("failed to read response")
	}
	var response map[string]any
	if err := json.Unmarshal(scanner.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return response
}

func TestServerInitializeAndListTools(t *testing.T) {
	svr := NewServer(ServerOptions{
		ServerName:    "advocate",
		ServerVersion: "test",
		OutputRoot:    t.TempDir(),
	})

	stdinReader, stdinWriter := io.Pipe()
	stdoutReader, stdoutWriter := io.Pipe()

	stdioServer := server.NewStdioServer(svr.Server)
	stdioServer.SetErrorLogger(log.New(io.Discard, "", 0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverErrCh := make(chan error, 1)
	go func() {
		err := stdioServer.Listen(ctx, stdinReader, stdoutWriter)
		if err != nil && err != io.EOF && err != context.Canceled {
			serverErrCh <- err
		}
		stdoutWriter.Close()
		close(serverErrCh)
	}()

	time.Sleep(100 * time.Millisecond)

	initRequest := map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "initialize",
		"params": map[string]any{
			"protocolVersion": "2024-11-05",
			"clientInfo": map[string]any{
				"name":    "test-client",
				"version": "1.0.0",
			},
		},
	}
	resp := sendAndRecv(t, initRequest, stdinWriter, stdoutReader)
	if resp["error"] != nil {
		t.Fatalf("initialize error: %v", resp["error"])
	}

	listRequest := map[string]any{
		"jsonrpc": "2.0",
		"id":      2,
		"method":  "tools/list",
	}
	resp = sendAndRecv(t, listRequest, stdinWriter, stdoutReader)
	result, _ := resp["result"].(map[string]any)
	tools, _ := result["tools"].([]any)
	names := map[string]bool{}
	for _, tl := range tools {
		m, _ := tl.(map[string]any)
		if name, ok := m["name"].(string); ok {
			names[name] = true
		}
	}
	for _, want := range []string{
		ToolResearchCompany,
		ToolGenerateCampaigns,
		ToolGenerateAssets,
		ToolRunCampaignFlow,
		ToolListCampaigns,
	} {
		if !names[want] {
			t.Errorf("tool %s not listed (got %v)", want, names)
		}
	}

	cancel()
	stdinWriter.Close()
	if err := <-serverErrCh; err != nil {
		t.Errorf("unexpected server error: %v", err)
	}
}
