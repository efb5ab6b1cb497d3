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

// Package hertzctx binds call contexts to HTTP calls served or issued
// with hertz.
package hertzctx

import (
	"context"
	"net"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/google/uuid"

	"github.com/cloudwego/callctx"
	"github.com/cloudwego/callctx/filter"
	"github.com/cloudwego/callctx/pkg/conninfo"
	"github.com/cloudwego/callctx/pkg/metadata"
	"github.com/cloudwego/callctx/pkg/rpcinfo"
)

var wireKeys = []string{metadata.KeyAttachments, metadata.KeySession, metadata.KeyAlias}

// ServerMiddleware runs the rest of the handler chain with a provider
// call context. All request headers are visible as wire metadata.
func ServerMiddleware(store *callctx.Store, opts ...filter.Option) app.HandlerFunc {
	mw := filter.ProviderContext(store, opts...)
	return func(c context.Context, ctx *app.RequestContext) {
		headers := make(map[string]string)
		ctx.VisitAllHeaders(func(key, val []byte) {
			headers[string(key)] = string(val)
		})
		c = metadata.WithValues(c, headers)

		var local net.Addr
		if conn := ctx.GetConn(); conn != nil {
			local = conn.LocalAddr()
		}
		c = conninfo.NewCtxWithConnInfo(c, conninfo.NewConnInfo(
			conninfo.NewPeerFromAddr(local),
			conninfo.NewPeerFromAddr(ctx.RemoteAddr()),
		))
		c = rpcinfo.NewCtxWithInvocation(c, rpcinfo.NewInvocation(uuid.New().String(), string(ctx.Path())))

		_ = mw(func(c context.Context, _, _ interface{}) error {
			ctx.Next(c)
			return nil
		})(c, nil, nil)
	}
}

// ClientMiddleware sends the attachments, session and alias of the
// caller's call context as request headers.
func ClientMiddleware(store *callctx.Store, opts ...filter.Option) client.Middleware {
	mw := filter.ConsumerContext(store, opts...)
	return func(next client.Endpoint) client.Endpoint {
		return func(ctx context.Context, req *protocol.Request, resp *protocol.Response) error {
			ctx = conninfo.NewCtxWithConnInfo(ctx, conninfo.NewConnInfo(nil, conninfo.ParsePeer(string(req.Host()))))
			ctx = rpcinfo.NewCtxWithInvocation(ctx, rpcinfo.NewInvocation(uuid.New().String(), string(req.URI().Path())))
			return mw(func(ctx context.Context, _, _ interface{}) error {
				for _, key := range wireKeys {
					if v, ok := metadata.GetValue(ctx, key); ok {
						req.Header.Set(key, v)
					}
				}
				return next(ctx, req, resp)
			})(ctx, req, resp)
		}
	}
}
