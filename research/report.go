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

package research

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	// MinReportLen is the floor for usable raw findings; anything shorter
	// means the research stage effectively failed.
	MinReportLen = 50

	// SummaryCap bounds the company summary handed to downstream prompts.
	SummaryCap = 500
)

// Report is the output of the research phase.
type Report struct {
	Questions   []string
	RawFindings string
	Analysis    string
}

// String renders the canonical three-section report format. ParseReport
// reads this format back.
func (r *Report) String() string {
	var sb strings.Builder
	sb.WriteString("Research Questions:\n")
	for i, q := range r.Questions {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, q)
	}
	sb.WriteString("\nRaw Findings:\n")
	sb.WriteString(r.RawFindings)
	sb.WriteString("\n\nAnalysis:\n")
	sb.WriteString(r.Analysis)
	return sb.String()
}

// CompanySummary is the slice of the findings short enough to embed in
// downstream prompts.
func (r *Report) CompanySummary() string {
	s := strings.TrimSpace(r.RawFindings)
	if len(s) > SummaryCap {
		s = s[:SummaryCap]
	}
	return s
}

// ParseReport splits a rendered report back into its sections.
func ParseReport(raw string) (*Report, error) {
	findings := sectionAfter(raw, "Raw Findings:")
	if findings == "" {
		findings = raw
	}
	analysis := sectionAfter(raw, "Analysis:")
	if idx := strings.Index(findings, "\nAnalysis:"); idx >= 0 {
		findings = findings[:idx]
	}
	findings = strings.TrimSpace(findings)
	if len(findings) < MinReportLen {
		return nil, errors.Errorf("research findings too short: %d chars (min %d)", len(findings), MinReportLen)
	}
	return &Report{
		RawFindings: findings,
		Analysis:    strings.TrimSpace(analysis),
	}, nil
}

func sectionAfter(raw, header string) string {
	idx := strings.Index(raw, header)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(raw[idx+len(header):])
}
