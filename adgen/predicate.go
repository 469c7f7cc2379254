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

	"github.com/Knetic/govaluate"

	"github.com/advocate-ai/advocate/llm/log"
)

// VerdictPredicate decides whether a quality-check verdict means the asset
// failed review.
type VerdictPredicate func(verdict string) bool

// DefaultVerdictPredicate is the crude keyword policy: a verdict mentioning
// failure or an error fails the asset, everything else passes. Malformed
// review text therefore passes, never aborts.
func DefaultVerdictPredicate(verdict string) bool {
	v := strings.ToLower(verdict)
	return strings.Contains(v, "fail") || strings.Contains(v, "error")
}

// NewRulePredicate compiles an expression-based predicate, configured via
// the QUALITY_RULE environment variable. The expression sees:
//
//	verdict  - the lowercased verdict text
//	length   - len(verdict)
//	keyword  - the DefaultVerdictPredicate result
//
// Example: `keyword || verdict =~ 'rework'`. Evaluation errors fall back
// to the keyword policy.
func NewRulePredicate(rule string) (VerdictPredicate, error) {
	expr, err := govaluate.NewEvaluableExpression(rule)
	if err != nil {
		return nil, err
	}
	return func(verdict string) bool {
		res, err := expr.Evaluate(map[string]any{
			"verdict": strings.ToLower(verdict),
			"length":  len(verdict),
			"keyword": DefaultVerdictPredicate(verdict),
		})
		if err != nil {
			log.Error("quality rule evaluation failed, using keyword policy: %v", err)
			return DefaultVerdictPredicate(verdict)
		}
		failed, ok := res.(bool)
		if !ok {
			log.Error("quality rule returned %T, using keyword policy", res)
			return DefaultVerdictPredicate(verdict)
		}
		return failed
	}, nil
}
