/*
 * Copyright 2025 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package metadata

import (
	"github.com/bytedance/sonic"
)

// Reserved wire keys. Attachments and session travel as one JSON object
// each, so key case and value types survive transports that fold header names.
const (
	KeyAttachments = "rpc-attachments"
	KeySession     = "rpc-session"
	KeyAlias       = "rpc-alias"
)

// EncodeAttachments renders m as a JSON object. An empty map encodes to "".
func EncodeAttachments(m map[string]any) (string, error) {
	if len(m) == 0 {
		return "", nil
	}
	return sonic.MarshalString(m)
}

// DecodeAttachments parses a value produced by EncodeAttachments.
// Numbers come back as float64, as with encoding/json.
func DecodeAttachments(s string) (map[string]any, error) {
	if s == "" {
		return nil, nil
	}
	var m map[string]any
	if err := sonic.UnmarshalString(s, &m); err != nil {
		return nil, err
	}
	return m, nil
}
