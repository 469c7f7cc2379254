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

package adgen

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"under cap", "short text", 100, "short text"},
		{"exactly cap", strings.Repeat("a", 10), 10, strings.Repeat("a", 10)},
		{"sentence boundary", "First sentence. Second sentence that runs long.", 30, "First sentence."},
		{"no boundary hard cut", strings.Repeat("a", 50), 20, strings.Repeat("a", 20)},
		{"boundary at position zero ignored", "." + strings.Repeat("a", 50), 20, "." + strings.Repeat("a", 19)},
		{"trims whitespace", "  padded  ", 100, "padded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.max))
		})
	}
}

func TestTruncateNeverExceedsCap(t *testing.T) {
	in := "Sentence one. Sentence two. Sentence three and then a very long tail without end"
	for max := 5; max <= len(in); max += 7 {
		got := Truncate(in, max)
		assert.LessOrEqual(t, len(got), max, "max=%d", max)
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	// 250 two-byte runes, cap landing mid-rune.
	in := strings.Repeat("é", 250)
	for _, max := range []int{401, 100, 3} {
		got := Truncate(in, max)
		assert.True(t, utf8.ValidString(got), "max=%d", max)
		assert.LessOrEqual(t, len(got), max, "max=%d", max)
	}

	// A multi-byte sentence still cuts at the boundary.
	assert.Equal(t, "Café né.", Truncate("Café né. Très long deuxième phrase qui dépasse.", 12))
}

func TestSanitize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Northern Lights Launch", "Northern_Lights_Launch"},
		{"  padded name  ", "padded_name"},
		{"100% Pure!", "100__Pure"},
		{"___", ""},
		{"Déjà Vu", "D_j__Vu"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Sanitize(tt.in), "input %q", tt.in)
	}
}
