// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"
)

// getServerVersion also doubles as the unauthenticated reachability probe for
// clients.
func (h *Handler) getServerVersion(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.version))
}
