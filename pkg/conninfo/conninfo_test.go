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

package conninfo

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPeerFromAddr(t *testing.T) {
	assert.Nil(t, NewPeerFromAddr(nil))

	addr := &net.TCPAddr{IP: net.ParseIP("192.168.0.7"), Port: 8888}
	p := NewPeerFromAddr(addr)
	assert.Equal(t, "192.168.0.7", p.Host())
	assert.Equal(t, 8888, p.Port())
	assert.Equal(t, addr, p.Addr())

	u := NewPeerFromAddr(&net.UnixAddr{Name: "@sock", Net: "unix"})
	assert.Equal(t, "@sock", u.Host())
	assert.Equal(t, 0, u.Port())
}

func TestParsePeer(t *testing.T) {
	assert.Nil(t, ParsePeer(""))

	p := ParsePeer("svc.local:9090")
	assert.Equal(t, "svc.local", p.Host())
	assert.Equal(t, 9090, p.Port())
	assert.Nil(t, p.Addr())

	p = ParsePeer("svc.local")
	assert.Equal(t, "svc.local", p.Host())
	assert.Equal(t, 0, p.Port())
}

func TestConnInfoCtx(t *testing.T) {
	ctx := context.Background()
	_, ok := ConnInfoFromCtx(ctx)
	assert.False(t, ok)
	assert.Equal(t, ctx, NewCtxWithConnInfo(ctx, nil))

	ci := NewConnInfo(NewPeer("l", 1), NewPeer("r", 2))
	got, ok := ConnInfoFromCtx(NewCtxWithConnInfo(ctx, ci))
	assert.True(t, ok)
	assert.Equal(t, "l", got.Local().Host())
	assert.Equal(t, 2, got.Remote().Port())
}
