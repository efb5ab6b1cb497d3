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

// Package callctx carries the state of the RPC call a worker is currently
// handling: its role, peer addresses, routing alias, attachments that travel
// on the wire, a session bag and the handle of an in-flight async result.
//
// A CallContext is confined to the worker that owns it and is never locked.
// Interceptors take it from a Store before the call and discard or clear it
// afterwards; code that hands work to another goroutine must Clone it.
//
// It's a temporary record: when B handles a call from A and then calls C,
// the context on B describes A->B until the outbound call replaces it.
package callctx

type side uint8

const (
	sideUnset side = iota
	sideProvider
	sideConsumer
)

// CallContext is the per-worker record of the current call.
type CallContext struct {
	side          side
	pendingResult any
	localAddress  *Address
	remoteAddress *Address
	attachments   map[string]any
	alias         string
}

func newCallContext() *CallContext {
	return &CallContext{attachments: make(map[string]any)}
}

// IsProviderSide reports whether the worker is serving the call.
// It is false until a side has been set.
func (c *CallContext) IsProviderSide() bool {
	return c.side == sideProvider
}

// IsConsumerSide reports whether the worker issued the call.
// It is false until a side has been set.
func (c *CallContext) IsConsumerSide() bool {
	return c.side == sideConsumer
}

// SetProviderSide marks the worker as provider (true) or consumer (false).
func (c *CallContext) SetProviderSide(provider bool) *CallContext {
	if provider {
		c.side = sideProvider
	} else {
		c.side = sideConsumer
	}
	return c
}

// PendingResult returns the handle of the outstanding async call, or nil.
func (c *CallContext) PendingResult() any {
	return c.pendingResult
}

// SetPendingResult stores the handle of an async call issued by the dispatcher.
func (c *CallContext) SetPendingResult(handle any) *CallContext {
	c.pendingResult = handle
	return c
}

// PendingResultOf returns the pending result handle as T. The second result
// is false when the slot is empty or holds another type.
func PendingResultOf[T any](c *CallContext) (T, bool) {
	v, ok := c.pendingResult.(T)
	return v, ok
}

func (c *CallContext) LocalAddress() *Address {
	return c.localAddress
}

func (c *CallContext) SetLocalAddress(addr *Address) *CallContext {
	c.localAddress = addr
	return c
}

// SetLocalHostPort stores an unresolved local address. Out of range ports become 0.
func (c *CallContext) SetLocalHostPort(host string, port int) *CallContext {
	c.localAddress = UnresolvedAddress(host, port)
	return c
}

func (c *CallContext) RemoteAddress() *Address {
	return c.remoteAddress
}

func (c *CallContext) SetRemoteAddress(addr *Address) *CallContext {
	c.remoteAddress = addr
	return c
}

// SetRemoteHostPort stores an unresolved remote address. An empty host
// leaves the current remote address untouched. Out of range ports become 0.
func (c *CallContext) SetRemoteHostPort(host string, port int) *CallContext {
	if host == "" {
		return c
	}
	c.remoteAddress = UnresolvedAddress(host, port)
	return c
}

// RemoteHostName returns the remote IP literal, or the host text if the
// address was stored unresolved. It never resolves.
func (c *CallContext) RemoteHostName() string {
	return c.remoteAddress.HostName()
}

// Attachment returns the attachment stored under key, or nil.
func (c *CallContext) Attachment(key string) any {
	return c.attachments[key]
}

// SetAttachment stores value under key. A nil value removes the key.
// Keys starting with InternalKeyPrefix are rejected with ErrInvalidArgument.
func (c *CallContext) SetAttachment(key string, value any) error {
	if IsInternalKey(key) {
		return invalidKeyError(key)
	}
	c.putAttachment(key, value)
	return nil
}

func (c *CallContext) putAttachment(key string, value any) {
	if value == nil {
		delete(c.attachments, key)
		return
	}
	c.attachments[key] = value
}

func (c *CallContext) RemoveAttachment(key string) *CallContext {
	delete(c.attachments, key)
	return c
}

// Attachments returns the live attachment map, not a copy. Filters populate
// it in bulk; writes through it bypass key validation.
func (c *CallContext) Attachments() map[string]any {
	return c.attachments
}

// SetAttachments merges attachments into the current map. Internal and
// hidden keys are skipped without error.
func (c *CallContext) SetAttachments(attachments map[string]any) *CallContext {
	for k, v := range attachments {
		if IsValidKey(k) {
			c.attachments[k] = v
		}
	}
	return c
}

// ClearAttachments removes every attachment except the session.
func (c *CallContext) ClearAttachments() *CallContext {
	for k := range c.attachments {
		if k != SessionKey {
			delete(c.attachments, k)
		}
	}
	return c
}

func (c *CallContext) Alias() string {
	return c.alias
}

func (c *CallContext) SetAlias(alias string) *CallContext {
	c.alias = alias
	return c
}

// SetSessionAttribute stores a session attribute. Session keys are not
// validated. The session survives ClearAttachments and must be cleared by
// the application.
func (c *CallContext) SetSessionAttribute(key string, value any) *CallContext {
	session := c.Session()
	if session == nil {
		session = make(map[string]any)
		c.attachments[SessionKey] = session
	}
	session[key] = value
	return c
}

func (c *CallContext) SessionAttribute(key string) any {
	return c.Session()[key]
}

// Session returns the live session map, or nil if none was set.
func (c *CallContext) Session() map[string]any {
	session, _ := c.attachments[SessionKey].(map[string]any)
	return session
}

// SetSession replaces the whole session. A nil map removes it.
func (c *CallContext) SetSession(session map[string]any) *CallContext {
	if session == nil {
		return c.ClearSession()
	}
	c.putAttachment(SessionKey, session)
	return c
}

func (c *CallContext) ClearSession() *CallContext {
	return c.RemoveAttachment(SessionKey)
}

// Clone returns a copy that another worker can own. The attachment and
// session maps are copied; their values and the pending result are shared.
func (c *CallContext) Clone() *CallContext {
	cp := *c
	cp.attachments = make(map[string]any, len(c.attachments))
	for k, v := range c.attachments {
		cp.attachments[k] = v
	}
	if session := c.Session(); session != nil {
		s := make(map[string]any, len(session))
		for k, v := range session {
			s[k] = v
		}
		cp.attachments[SessionKey] = s
	}
	return &cp
}
