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

package filter

import (
	"context"

	"go.uber.org/zap"

	"github.com/cloudwego/callctx"
	"github.com/cloudwego/callctx/metrics"
	"github.com/cloudwego/callctx/pkg/rpcinfo"
)

// ProviderContext prepares the call context of an inbound call: provider
// side, addresses from conninfo, alias, attachments and session from wire
// metadata. The worker's slot is discarded once the endpoint returns.
// A worker id is assigned when ctx carries none.
func ProviderContext(store *callctx.Store, opts ...Option) Middleware {
	if store == nil {
		store = callctx.Default
	}
	options := buildOptions(opts)
	return func(next Endpoint) Endpoint {
		return func(ctx context.Context, req, resp interface{}) error {
			id, ok := callctx.WorkerFromContext(ctx)
			if !ok {
				id = callctx.NewWorkerID()
				ctx = callctx.WithWorker(ctx, id)
			}
			defer store.Discard(id)

			cc := store.Current(id)
			cc.SetProviderSide(true)
			applyConnInfo(ctx, cc)
			options.readWire(ctx, cc)
			options.metrics.ObserveCall(metrics.SideProvider)
			options.logger.Debug("inbound call",
				zap.String("worker", string(id)),
				zap.String("method", rpcinfo.MethodFromCtx(ctx)),
				zap.String("remote", cc.RemoteAddress().String()),
				zap.String("alias", cc.Alias()))

			return next(ctx, req, resp)
		}
	}
}
