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
	"strconv"
)

// ConnInfo describes the two ends of the connection a call travels on,
// as seen from the local process.
type ConnInfo interface {
	Local() Peer
	Remote() Peer
}

type connInfo struct {
	local  Peer
	remote Peer
}

func (c *connInfo) Local() Peer {
	return c.local
}

func (c *connInfo) Remote() Peer {
	return c.remote
}

func NewConnInfo(local, remote Peer) ConnInfo {
	return &connInfo{
		local:  local,
		remote: remote,
	}
}

type Peer interface {
	Host() string
	Port() int
	// Addr is the resolved address, nil when only host and port are known.
	Addr() net.Addr
}

type peer struct {
	host string
	port int
	addr net.Addr
}

func (p *peer) Host() string {
	return p.host
}

func (p *peer) Port() int {
	return p.port
}

func (p *peer) Addr() net.Addr {
	return p.addr
}

// NewPeer returns an unresolved peer.
func NewPeer(host string, port int) Peer {
	return &peer{host: host, port: port}
}

// NewPeerFromAddr returns a peer backed by a resolved address.
func NewPeerFromAddr(addr net.Addr) Peer {
	if addr == nil {
		return nil
	}
	p := &peer{addr: addr}
	if host, port, err := net.SplitHostPort(addr.String()); err == nil {
		p.host = host
		p.port, _ = strconv.Atoi(port)
	} else {
		p.host = addr.String()
	}
	return p
}

// ParsePeer parses "host:port" without resolving. A missing port yields 0.
func ParsePeer(hostport string) Peer {
	if hostport == "" {
		return nil
	}
	host, port, err := net.SplitHostPort(hostport)
	if err != nil {
		return NewPeer(hostport, 0)
	}
	p, _ := strconv.Atoi(port)
	return NewPeer(host, p)
}

type connInfoKey struct{}

func NewCtxWithConnInfo(ctx context.Context, ci ConnInfo) context.Context {
	if ci == nil {
		return ctx
	}
	return context.WithValue(ctx, connInfoKey{}, ci)
}

func ConnInfoFromCtx(ctx context.Context) (ConnInfo, bool) {
	ci, ok := ctx.Value(connInfoKey{}).(ConnInfo)
	return ci, ok
}
