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

package utils

import (
	"github.com/fsnotify/fsnotify"

	"github.com/advocate-ai/advocate/llm/log"
)

// WatchDir watches dir and invokes cb for every create/write/remove event.
// The watcher runs until process exit; watch failures are logged, not fatal.
func WatchDir(dir string, cb func(op fsnotify.Op, file string)) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error("fsnotify watcher: %v", err)
		return
	}
	if err := watcher.Add(dir); err != nil {
		log.Error("watch %s: %v", dir, err)
		watcher.Close()
		return
	}
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				cb(ev.Op, ev.Name)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error("watch %s: %v", dir, err)
			}
		}
	}()
}
