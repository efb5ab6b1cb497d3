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
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// WorkerID names the goroutine that owns a call. The dispatch loop assigns
// it and carries it through context.Context.
type WorkerID string

// NewWorkerID returns a random worker id.
func NewWorkerID() WorkerID {
	return WorkerID(uuid.New().String())
}

type workerKey struct{}

// WithWorker returns a copy of ctx carrying id.
func WithWorker(ctx context.Context, id WorkerID) context.Context {
	return context.WithValue(ctx, workerKey{}, id)
}

// WorkerFromContext extracts the worker id set by WithWorker.
func WorkerFromContext(ctx context.Context) (WorkerID, bool) {
	id, ok := ctx.Value(workerKey{}).(WorkerID)
	return id, ok
}

// Store holds exactly one CallContext per worker. Slots for different
// workers are created and removed independently; the contexts themselves
// are never shared.
type Store struct {
	slots sync.Map // WorkerID -> *CallContext
	size  atomic.Int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Default is the process-wide store used by Current and Discard.
var Default = NewStore()

// Current returns the CallContext of worker id, creating an empty one on
// first access.
func (s *Store) Current(id WorkerID) *CallContext {
	if v, ok := s.slots.Load(id); ok {
		return v.(*CallContext)
	}
	v, loaded := s.slots.LoadOrStore(id, newCallContext())
	if !loaded {
		s.size.Add(1)
	}
	return v.(*CallContext)
}

// Discard removes the CallContext of worker id. References held elsewhere
// stay valid and untouched; the next Current returns a fresh instance.
func (s *Store) Discard(id WorkerID) {
	if _, loaded := s.slots.LoadAndDelete(id); loaded {
		s.size.Add(-1)
	}
}

// FromContext returns the CallContext of the worker carried in ctx.
// It reports false when ctx carries no worker id.
func (s *Store) FromContext(ctx context.Context) (*CallContext, bool) {
	id, ok := WorkerFromContext(ctx)
	if !ok {
		return nil, false
	}
	return s.Current(id), true
}

// Len returns the number of live slots. A number that keeps growing means
// some worker never calls Discard.
func (s *Store) Len() int {
	return int(s.size.Load())
}

// Current returns the CallContext of worker id in the Default store.
func Current(id WorkerID) *CallContext {
	return Default.Current(id)
}

// Discard removes the CallContext of worker id from the Default store.
func Discard(id WorkerID) {
	Default.Discard(id)
}

// FromContext returns the CallContext of the worker carried in ctx from the
// Default store.
func FromContext(ctx context.Context) (*CallContext, bool) {
	return Default.FromContext(ctx)
}
