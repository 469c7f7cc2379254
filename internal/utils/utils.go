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
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WrapError annotates err with msg, keeping the original cause chain.
func WrapError(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// MarshalJSONBytes marshals v to compact JSON.
func MarshalJSONBytes(v any) ([]byte, error) {
	return json.Marshal(v)
}

// MarshalJSONIndent marshals v to indented JSON and returns it as a string.
func MarshalJSONIndent(v any) (string, error) {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

// MarshalJSONIndentNoError is MarshalJSONIndent for log statements: the
// error is folded into the returned string.
func MarshalJSONIndentNoError(v any) string {
	s, err := MarshalJSONIndent(v)
	if err != nil {
		return "<marshal error: " + err.Error() + ">"
	}
	return s
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "create dir "+dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "write file "+path)
	}
	return nil
}
