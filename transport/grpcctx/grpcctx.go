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

// Package grpcctx binds call contexts to gRPC calls through interceptors.
package grpcctx

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	grpcmd "google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"

	"github.com/cloudwego/callctx"
	"github.com/cloudwego/callctx/filter"
	"github.com/cloudwego/callctx/pkg/conninfo"
	"github.com/cloudwego/callctx/pkg/metadata"
	"github.com/cloudwego/callctx/pkg/rpcinfo"
)

var wireKeys = []string{metadata.KeyAttachments, metadata.KeySession, metadata.KeyAlias}

// UnaryServerInterceptor runs unary handlers with a provider call context.
func UnaryServerInterceptor(store *callctx.Store, opts ...filter.Option) grpc.UnaryServerInterceptor {
	mw := filter.ProviderContext(store, opts...)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		var resp any
		err := mw(func(ctx context.Context, req, _ interface{}) error {
			var err error
			resp, err = handler(ctx, req)
			return err
		})(inboundContext(ctx, info.FullMethod), req, nil)
		return resp, err
	}
}

type serverStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *serverStream) Context() context.Context {
	return s.ctx
}

// StreamServerInterceptor runs stream handlers with a provider call context.
// The context lives for the whole stream.
func StreamServerInterceptor(store *callctx.Store, opts ...filter.Option) grpc.StreamServerInterceptor {
	mw := filter.ProviderContext(store, opts...)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		return mw(func(ctx context.Context, _, _ interface{}) error {
			return handler(srv, &serverStream{ServerStream: ss, ctx: ctx})
		})(inboundContext(ss.Context(), info.FullMethod), nil, nil)
	}
}

// UnaryClientInterceptor sends the attachments, session and alias of the
// caller's call context as outgoing gRPC metadata.
func UnaryClientInterceptor(store *callctx.Store, opts ...filter.Option) grpc.UnaryClientInterceptor {
	mw := filter.ConsumerContext(store, opts...)
	return func(
		ctx context.Context,
		method string,
		req any,
		reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		callOpts ...grpc.CallOption,
	) error {
		ctx = conninfo.NewCtxWithConnInfo(ctx, conninfo.NewConnInfo(nil, targetPeer(cc.Target())))
		ctx = rpcinfo.NewCtxWithInvocation(ctx, rpcinfo.NewInvocation(uuid.New().String(), method))
		return mw(func(ctx context.Context, req, reply interface{}) error {
			return invoker(outgoingContext(ctx), method, req, reply, cc, callOpts...)
		})(ctx, req, reply)
	}
}

func inboundContext(ctx context.Context, method string) context.Context {
	if md, ok := grpcmd.FromIncomingContext(ctx); ok {
		kvs := make(map[string]string, len(wireKeys))
		for _, key := range wireKeys {
			if vals := md.Get(key); len(vals) > 0 {
				kvs[key] = vals[0]
			}
		}
		ctx = metadata.WithValues(ctx, kvs)
	}
	if p, ok := peer.FromContext(ctx); ok {
		ctx = conninfo.NewCtxWithConnInfo(ctx, conninfo.NewConnInfo(
			conninfo.NewPeerFromAddr(p.LocalAddr),
			conninfo.NewPeerFromAddr(p.Addr),
		))
	}
	return rpcinfo.NewCtxWithInvocation(ctx, rpcinfo.NewInvocation(uuid.New().String(), method))
}

func outgoingContext(ctx context.Context) context.Context {
	kv := make([]string, 0, 2*len(wireKeys))
	for _, key := range wireKeys {
		if v, ok := metadata.GetValue(ctx, key); ok {
			kv = append(kv, key, v)
		}
	}
	if len(kv) == 0 {
		return ctx
	}
	return grpcmd.AppendToOutgoingContext(ctx, kv...)
}

// targetPeer strips the resolver scheme from a dial target,
// e.g. "dns:///svc:50051" becomes svc:50051.
func targetPeer(target string) conninfo.Peer {
	if i := strings.Index(target, "://"); i >= 0 {
		target = target[i+len("://"):]
		if j := strings.LastIndex(target, "/"); j >= 0 {
			target = target[j+1:]
		}
	}
	return conninfo.ParsePeer(target)
}
