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

// Package filter populates and tears down call contexts around RPC
// endpoints. Transport adapters translate their request shapes into
// conninfo, rpcinfo and wire metadata in context.Context, then run the
// endpoint through ProviderContext or ConsumerContext.
package filter

import "context"

type Endpoint func(ctx context.Context, req, resp interface{}) error

type Middleware func(Endpoint) Endpoint

// Chain composes mws so that the first one is the outermost.
func Chain(mws ...Middleware) Middleware {
	return func(endpoint Endpoint) Endpoint {
		for i := len(mws) - 1; i >= 0; i-- {
			endpoint = mws[i](endpoint)
		}
		return endpoint
	}
}
