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

package rpcinfo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvocationCtx(t *testing.T) {
	ctx := context.Background()
	_, ok := InvocationFromCtx(ctx)
	assert.False(t, ok)
	assert.Equal(t, "", MethodFromCtx(ctx))

	ctx = NewCtxWithInvocation(ctx, NewInvocation("1", "/echo.Echo/Say"))
	inv, ok := InvocationFromCtx(ctx)
	assert.True(t, ok)
	assert.Equal(t, "1", inv.ID())
	assert.Equal(t, "/echo.Echo/Say", MethodFromCtx(ctx))
}
