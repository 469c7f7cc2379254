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

package tool

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	etool "github.com/cloudwego/eino/components/tool"
)

// Tool is any eino-invokable tool.
type Tool = etool.BaseTool

// GetJSONSchema reflects a request struct into a raw JSON schema for MCP
// tool registration. Panics on marshal failure since schemas are static.
func GetJSONSchema(v any) json.RawMessage {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	schema := r.Reflect(v)
	bs, err := schema.MarshalJSON()
	if err != nil {
		panic(err)
	}
	return bs
}
