// SPDX-License-Identifier: Apache-2.0

// Package catalog ships the built-in shrine list the client renders. The data
// is embedded so the client works offline out of the box; visited state comes
// from the local store, never from here.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed shrines.json
var shrinesJSON []byte

// Shrine is one catalog entry. IDs are stable across releases: the sync
// protocol and the local store key on them.
type Shrine struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Prefecture string `json:"prefecture"`
	City       string `json:"city"`
}

// Load parses the embedded catalog, sorted by ID.
func Load() ([]Shrine, error) {
	var shrines []Shrine
	if err := json.Unmarshal(shrinesJSON, &shrines); err != nil {
		return nil, fmt.Errorf("parsing embedded shrine catalog: %w", err)
	}

	sort.Slice(shrines, func(i, j int) bool { return shrines[i].ID < shrines[j].ID })
	return shrines, nil
}
