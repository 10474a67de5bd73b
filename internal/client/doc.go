// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires the local store, the server adapter, the credential provider, the
// connectivity monitor, the sync workers, and the terminal UI into a single
// process lifecycle.
package client
