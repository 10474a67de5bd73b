// SPDX-License-Identifier: Apache-2.0

package adapter

import "errors"

var (
	// ErrUnauthorized marks a 401 response: the credential is missing,
	// expired, or invalid. Callers treat it as "not logged in" and fall back
	// to the local store; it is never surfaced as a hard error to the user.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrUnavailable marks a transport failure or a 5xx response. Callers
	// fall back to the local store the same way they do for ErrUnauthorized.
	ErrUnavailable = errors.New("server unavailable")
)
