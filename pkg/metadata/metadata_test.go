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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithValue(t *testing.T) {
	ctx := context.Background()
	_, ok := GetValue(ctx, "a")
	assert.False(t, ok)
	all, ok := GetAllValues(ctx)
	assert.False(t, ok)
	assert.Nil(t, all)

	parent := WithValue(ctx, "Rpc-Alias", "g1")
	child := WithValue(parent, "rpc-alias", "g2")

	v, ok := GetValue(parent, "rpc-alias")
	assert.True(t, ok)
	assert.Equal(t, "g1", v)
	v, ok = GetValue(child, "RPC-ALIAS")
	assert.True(t, ok)
	assert.Equal(t, "g2", v)

	all, ok = GetAllValues(child)
	assert.True(t, ok)
	assert.Equal(t, map[string]string{"rpc-alias": "g2"}, all)
	all["x"] = "y"
	_, ok = GetValue(child, "x")
	assert.False(t, ok)
}

func TestWithValues(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, WithValues(ctx, nil))

	ctx = WithValues(WithValue(ctx, "a", "1"), map[string]string{"B": "2", "a": "3"})
	all, _ := GetAllValues(ctx)
	assert.Equal(t, map[string]string{"a": "3", "b": "2"}, all)
}

func TestAttachmentCodec(t *testing.T) {
	s, err := EncodeAttachments(nil)
	require.NoError(t, err)
	assert.Equal(t, "", s)
	m, err := DecodeAttachments("")
	require.NoError(t, err)
	assert.Nil(t, m)

	s, err = EncodeAttachments(map[string]any{"userId": "u1", "retries": 3, "vip": true})
	require.NoError(t, err)
	m, err = DecodeAttachments(s)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"userId": "u1", "retries": float64(3), "vip": true}, m)

	_, err = DecodeAttachments("{not json")
	assert.Error(t, err)
}
