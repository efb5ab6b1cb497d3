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

// ConsumerContext prepares the call context of an outbound call: consumer
// side, addresses from conninfo, and alias, attachments and session encoded
// into wire metadata for the transport. Attachments other than the session
// are cleared once the endpoint returns. When ctx carries no worker id a
// temporary one is used and discarded after the call.
func ConsumerContext(store *callctx.Store, opts ...Option) Middleware {
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
				defer store.Discard(id)
			}

			cc := store.Current(id)
			defer cc.ClearAttachments()
			cc.SetProviderSide(false)
			applyConnInfo(ctx, cc)
			ctx = options.writeWire(ctx, cc)
			options.metrics.ObserveCall(metrics.SideConsumer)
			options.logger.Debug("outbound call",
				zap.String("worker", string(id)),
				zap.String("method", rpcinfo.MethodFromCtx(ctx)),
				zap.String("remote", cc.RemoteAddress().String()),
				zap.String("alias", cc.Alias()))

			return next(ctx, req, resp)
		}
	}
}
