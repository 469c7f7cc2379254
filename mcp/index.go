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
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/advocate-ai/advocate/adgen"
	"github.com/advocate-ai/advocate/internal/utils"
	"github.com/advocate-ai/advocate/llm/log"
)

// CampaignIndex mirrors the campaign directories under the output root.
// A watcher reloads it when another process (or a concurrent run) writes
// new campaigns.
type CampaignIndex struct {
	mu        sync.RWMutex
	root      string
	campaigns map[string]*adgen.CampaignResult // dir -> details
}

func NewCampaignIndex(root string) *CampaignIndex {
	return &CampaignIndex{root: root, campaigns: map[string]*adgen.CampaignResult{}}
}

// Load scans the output root for campaign_details.json files. Unreadable
// entries are skipped with a log line.
func (ix *CampaignIndex) Load() error {
	paths, err := filepath.Glob(filepath.Join(ix.root, "*", adgen.FileDetails))
	if err != nil {
		return err
	}
	campaigns := make(map[string]*adgen.CampaignResult, len(paths))
	for _, p := range paths {
		raw, err := os.ReadFile(p)
		if err != nil {
			log.Error("campaign index: read %s: %v", p, err)
			continue
		}
		var res adgen.CampaignResult
		if err := json.Unmarshal(raw, &res); err != nil {
			log.Error("campaign index: decode %s: %v", p, err)
			continue
		}
		campaigns[filepath.Dir(p)] = &res
	}
	ix.mu.Lock()
	ix.campaigns = campaigns
	ix.mu.Unlock()
	log.Debug("campaign index: %d campaign(s) under %s", len(campaigns), ix.root)
	return nil
}

// Watch reloads the index on changes under the output root. The root is
// created first so the watch can attach before the first run writes to it.
func (ix *CampaignIndex) Watch() error {
	if err := os.MkdirAll(ix.root, 0755); err != nil {
		return err
	}
	utils.WatchDir(ix.root, func(op fsnotify.Op, file string) {
		if op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
			return
		}
		if err := ix.Load(); err != nil {
			log.Error("campaign index reload: %v", err)
		}
	})
	return ix.Load()
}

// List returns the indexed campaigns, newest first.
func (ix *CampaignIndex) List() []*adgen.CampaignResult {
	ix.mu.RLock()
	out := make([]*adgen.CampaignResult, 0, len(ix.campaigns))
	for _, c := range ix.campaigns {
		out = append(out, c)
	}
	ix.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].GeneratedAt.After(out[j].GeneratedAt) })
	return out
}
