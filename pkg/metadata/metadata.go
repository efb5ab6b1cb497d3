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
	"context"
	"strings"
)

type metadataKey struct{}

type metadata map[string]string

// WithValue injects key/val pair into ctx. Keys are case-insensitive.
// If there is duplicate key, original val would be overwritten.
// The metadata of the parent ctx is never modified.
func WithValue(ctx context.Context, key, val string) context.Context {
	return WithValues(ctx, map[string]string{key: val})
}

// WithValues injects all pairs of kvs into ctx in one copy.
func WithValues(ctx context.Context, kvs map[string]string) context.Context {
	if len(kvs) == 0 {
		return ctx
	}
	old, _ := ctx.Value(metadataKey{}).(metadata)
	newMd := make(metadata, len(old)+len(kvs))
	for k, v := range old {
		newMd[k] = v
	}
	for k, v := range kvs {
		newMd[strings.ToLower(k)] = v
	}
	return context.WithValue(ctx, metadataKey{}, newMd)
}

// GetValue extracts related val with key.
// If key does not exist, would return "", false
func GetValue(ctx context.Context, key string) (string, bool) {
	md, ok := ctx.Value(metadataKey{}).(metadata)
	if ok {
		res, exist := md[strings.ToLower(key)]
		return res, exist
	}
	return "", false
}

// GetAllValues extracts a copy of all key/val pairs, keys lowercased.
// If there is no key/val pairs at all, would return nil, false
func GetAllValues(ctx context.Context) (map[string]string, bool) {
	md, ok := ctx.Value(metadataKey{}).(metadata)
	if !ok {
		return nil, false
	}
	res := make(map[string]string, len(md))
	for k, v := range md {
		res[k] = v
	}
	return res, true
}
