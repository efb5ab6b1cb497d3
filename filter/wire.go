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
	"github.com/cloudwego/callctx/pkg/conninfo"
	"github.com/cloudwego/callctx/pkg/metadata"
)

func peerAddress(p conninfo.Peer) *callctx.Address {
	if p == nil {
		return nil
	}
	if addr := p.Addr(); addr != nil {
		return callctx.AddressOf(addr)
	}
	return callctx.UnresolvedAddress(p.Host(), p.Port())
}

func applyConnInfo(ctx context.Context, cc *callctx.CallContext) {
	ci, ok := conninfo.ConnInfoFromCtx(ctx)
	if !ok {
		return
	}
	if local := peerAddress(ci.Local()); local != nil {
		cc.SetLocalAddress(local)
	}
	if remote := peerAddress(ci.Remote()); remote != nil {
		cc.SetRemoteAddress(remote)
	}
}

// readWire copies alias, attachments and session from incoming wire
// metadata into cc. Attachments go through the lenient bulk setter.
func (o *Options) readWire(ctx context.Context, cc *callctx.CallContext) {
	if alias, ok := metadata.GetValue(ctx, metadata.KeyAlias); ok {
		cc.SetAlias(alias)
	}
	if raw, ok := metadata.GetValue(ctx, metadata.KeyAttachments); ok {
		attachments, err := metadata.DecodeAttachments(raw)
		if err != nil {
			o.logger.Warn("skip undecodable attachments", zap.Error(err))
		} else {
			dropped := 0
			for k := range attachments {
				if !callctx.IsValidKey(k) {
					dropped++
				}
			}
			cc.SetAttachments(attachments)
			if dropped > 0 {
				o.metrics.ObserveDropped(dropped)
				o.logger.Debug("dropped reserved attachment keys", zap.Int("count", dropped))
			}
		}
	}
	if raw, ok := metadata.GetValue(ctx, metadata.KeySession); ok {
		session, err := metadata.DecodeAttachments(raw)
		if err != nil {
			o.logger.Warn("skip undecodable session", zap.Error(err))
		} else if session != nil {
			cc.SetSession(session)
		}
	}
}

// writeWire encodes alias, user attachments and session of cc into
// outgoing wire metadata.
func (o *Options) writeWire(ctx context.Context, cc *callctx.CallContext) context.Context {
	kvs := make(map[string]string, 3)
	if alias := cc.Alias(); alias != "" {
		kvs[metadata.KeyAlias] = alias
	}
	user := make(map[string]interface{}, len(cc.Attachments()))
	for k, v := range cc.Attachments() {
		if callctx.IsValidKey(k) {
			user[k] = v
		}
	}
	if raw, err := metadata.EncodeAttachments(user); err != nil {
		o.logger.Warn("skip unencodable attachments", zap.Error(err))
	} else if raw != "" {
		kvs[metadata.KeyAttachments] = raw
	}
	if raw, err := metadata.EncodeAttachments(cc.Session()); err != nil {
		o.logger.Warn("skip unencodable session", zap.Error(err))
	} else if raw != "" {
		kvs[metadata.KeySession] = raw
	}
	return metadata.WithValues(ctx, kvs)
}
