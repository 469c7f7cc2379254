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

// Package cache keeps phase results of recent runs so repeated MCP tool
// calls for the same company do not redo research.
package cache

import (
	"strings"
	"sync"
	"time"
)

// DefaultTTL is how long an entry stays servable.
const DefaultTTL = time.Hour

// Entry is one cached phase result.
type Entry struct {
	Result    any
	Timestamp time.Time
	Source    string // which phase produced it, e.g. "research"
}

// Cache is a TTL map guarded by a mutex. Entries are few (one per company
// and phase) so there is no eviction beyond expiry.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]Entry
}

func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{ttl: ttl, entries: map[string]Entry{}}
}

// Key builds a cache key from free-text parts, case-insensitively.
func Key(parts ...string) string {
	norm := make([]string, 0, len(parts))
	for _, p := range parts {
		norm = append(norm, strings.ToLower(strings.TrimSpace(p)))
	}
	return strings.Join(norm, "|")
}

// Get returns the entry for key if present and not expired.
func (c *Cache) Get(key string) (Entry, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Since(e.Timestamp) > c.ttl {
		return Entry{}, false
	}
	return e, true
}

// Put stores result under key, stamped now.
func (c *Cache) Put(key string, result any, source string) {
	c.mu.Lock()
	c.entries[key] = Entry{Result: result, Timestamp: time.Now(), Source: source}
	c.mu.Unlock()
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	c.entries = map[string]Entry{}
	c.mu.Unlock()
}
