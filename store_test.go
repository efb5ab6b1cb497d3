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
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCurrentIsStable(t *testing.T) {
	s := NewStore()
	id := NewWorkerID()
	c := s.Current(id)
	assert.Same(t, c, s.Current(id))
	assert.Equal(t, 1, s.Len())
}

func TestStoreDiscard(t *testing.T) {
	s := NewStore()
	id := NewWorkerID()
	old := s.Current(id)
	old.SetProviderSide(true).SetRemoteHostPort("h", 1).SetLocalHostPort("l", 2)
	require.NoError(t, old.SetAttachment("a", 1))
	old.SetSessionAttribute("s", 1)

	s.Discard(id)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, old.Attachment("a"))

	fresh := s.Current(id)
	assert.NotSame(t, old, fresh)
	assert.Empty(t, fresh.Attachments())
	assert.Nil(t, fresh.Session())
	assert.False(t, fresh.IsProviderSide())
	assert.False(t, fresh.IsConsumerSide())
	assert.Nil(t, fresh.LocalAddress())
	assert.Nil(t, fresh.RemoteAddress())

	s.Discard("unknown")
	assert.Equal(t, 1, s.Len())
}

func TestStoreWorkersAreIsolated(t *testing.T) {
	s := NewStore()
	const workers = 64
	contexts := make([]*CallContext, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := WorkerID(fmt.Sprintf("w-%d", i))
			c := s.Current(id)
			_ = c.SetAttachment("worker", i)
			for j := 0; j < 100; j++ {
				assert.Same(t, c, s.Current(id))
			}
			contexts[i] = c
		}(i)
	}
	wg.Wait()

	assert.Equal(t, workers, s.Len())
	seen := make(map[*CallContext]bool)
	for i, c := range contexts {
		assert.False(t, seen[c])
		seen[c] = true
		assert.Equal(t, i, c.Attachment("worker"))
	}
}

func TestStoreFromContext(t *testing.T) {
	s := NewStore()
	_, ok := s.FromContext(context.Background())
	assert.False(t, ok)

	id := NewWorkerID()
	ctx := WithWorker(context.Background(), id)
	got, ok := WorkerFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	c, ok := s.FromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, s.Current(id), c)
}

func TestDefaultStore(t *testing.T) {
	id := NewWorkerID()
	defer Discard(id)
	c := Current(id)
	got, ok := FromContext(WithWorker(context.Background(), id))
	assert.True(t, ok)
	assert.Same(t, c, got)
}
