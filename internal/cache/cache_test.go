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

package cache

import (
	"testing"
	"time"
)

func TestCachePutGet(t *testing.T) {
	c := New(time.Minute)
	key := Key("Acme", "Students")

	if _, ok := c.Get(key); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Put(key, "report", "research")
	e, ok := c.Get(key)
	if !ok {
		t.Fatal("expected hit")
	}
	if e.Result != "report" || e.Source != "research" {
		t.Errorf("entry: %+v", e)
	}

	// Key is case-insensitive.
	if _, ok := c.Get(Key("acme", "students")); !ok {
		t.Error("expected case-insensitive hit")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := New(10 * time.Millisecond)
	c.Put("k", 1, "research")
	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestCachePurge(t *testing.T) {
	c := New(time.Minute)
	c.Put("k", 1, "research")
	c.Purge()
	if _, ok := c.Get("k"); ok {
		t.Error("expected miss after purge")
	}
}
