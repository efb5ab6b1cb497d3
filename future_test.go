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

package callctx

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFutureComplete(t *testing.T) {
	f := NewFuture[int]()
	assert.False(t, f.IsDone())

	go f.Complete(42, nil)
	v, err := f.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.True(t, f.IsDone())

	assert.False(t, f.Complete(7, errors.New("late")))
	v, err = f.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestFutureError(t *testing.T) {
	f := NewFuture[string]()
	assert.True(t, f.Complete("", errors.New("remote failure")))
	<-f.Done()
	_, err := f.Get(context.Background())
	assert.ErrorContains(t, err, "remote failure")
}

func TestFutureGetCanceled(t *testing.T) {
	f := NewFuture[string]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := f.Get(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
