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
	"net"
	"strconv"
)

const maxPort = 0xFFFF

// Address is one endpoint of a network exchange. It is either resolved
// (IP known) or unresolved (only the host text is known). No method on
// Address performs name resolution.
type Address struct {
	host string
	ip   net.IP
	port int
}

// UnresolvedAddress builds an address from host and port without a DNS lookup.
// A host that is already an IP literal is recorded as resolved. Ports outside
// [0, 65535] become 0.
func UnresolvedAddress(host string, port int) *Address {
	a := &Address{host: host, port: clampPort(port)}
	if ip := net.ParseIP(host); ip != nil {
		a.ip = ip
	}
	return a
}

// AddressOf converts a net.Addr into an Address. TCP and UDP addresses keep
// their IP; anything else is parsed from its host:port string form.
func AddressOf(addr net.Addr) *Address {
	switch v := addr.(type) {
	case nil:
		return nil
	case *net.TCPAddr:
		return &Address{host: v.IP.String(), ip: v.IP, port: clampPort(v.Port)}
	case *net.UDPAddr:
		return &Address{host: v.IP.String(), ip: v.IP, port: clampPort(v.Port)}
	}
	host, portStr, err := net.SplitHostPort(addr.String())
	if err != nil {
		return &Address{host: addr.String()}
	}
	port, _ := strconv.Atoi(portStr)
	return UnresolvedAddress(host, port)
}

// Host returns the host text as given, which may be a name or an IP literal.
func (a *Address) Host() string {
	if a == nil {
		return ""
	}
	return a.host
}

// Port returns the port, always within [0, 65535].
func (a *Address) Port() int {
	if a == nil {
		return 0
	}
	return a.port
}

// IP returns the resolved IP, or nil for an unresolved address.
func (a *Address) IP() net.IP {
	if a == nil {
		return nil
	}
	return a.ip
}

// Resolved reports whether the IP of the address is known.
func (a *Address) Resolved() bool {
	return a != nil && a.ip != nil
}

// HostName returns the IP literal when resolved, else the host text.
func (a *Address) HostName() string {
	if a == nil {
		return ""
	}
	if a.ip != nil {
		return a.ip.String()
	}
	return a.host
}

func (a *Address) String() string {
	if a == nil {
		return ""
	}
	return net.JoinHostPort(a.HostName(), strconv.Itoa(a.port))
}

func clampPort(port int) int {
	if port < 0 || port > maxPort {
		return 0
	}
	return port
}
