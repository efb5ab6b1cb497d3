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
	"errors"
	"fmt"
	"strings"
)

const (
	// InternalKeyPrefix marks keys owned by the framework. SetAttachment rejects them.
	InternalKeyPrefix = "_"
	// HiddenKeyPrefix marks keys that travel with the call but are not user parameters.
	HiddenKeyPrefix = "."
	// SessionKey is the attachment slot holding the session map.
	SessionKey = HiddenKeyPrefix + "session"
)

// ErrInvalidArgument is returned when a caller supplies a reserved attachment key.
var ErrInvalidArgument = errors.New("invalid argument")

// IsInternalKey reports whether key starts with InternalKeyPrefix.
func IsInternalKey(key string) bool {
	return strings.HasPrefix(key, InternalKeyPrefix)
}

// IsValidKey reports whether key may be set through the bulk path,
// i.e. it is neither internal nor hidden.
func IsValidKey(key string) bool {
	return !IsInternalKey(key) && !strings.HasPrefix(key, HiddenKeyPrefix)
}

func invalidKeyError(key string) error {
	return fmt.Errorf("%w: attachment key %q can not start with %q", ErrInvalidArgument, key, InternalKeyPrefix)
}
