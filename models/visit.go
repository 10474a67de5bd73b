// SPDX-License-Identifier: Apache-2.0

package models

import (
	"fmt"
	"time"
)

// VisitRecord marks a single shrine as visited by a user.
//
// Records are never updated in place: marking a shrine visited again rewrites
// VisitedAt through an idempotent upsert, and unmarking deletes the record.
type VisitRecord struct {
	// RecordID is the deterministic composite key used by the remote store,
	// in the form "visit_{userID}_{shrineID}". It makes upserts and deletes
	// idempotent. Internal to the persistence layer.
	RecordID string `json:"-"`

	// UserID is the owner of the record. Derived from the bearer token on the
	// server; never trusted from the request body.
	UserID int64 `json:"-"`

	// ShrineID identifies the visited shrine.
	ShrineID int64 `json:"shrine_id"`

	// VisitedAt is the moment the shrine was (last) marked visited.
	VisitedAt time.Time `json:"visited_at"`
}

// RemoteRecordID builds the composite remote-store key for a user/shrine pair.
func RemoteRecordID(userID, shrineID int64) string {
	return fmt.Sprintf("visit_%d_%d", userID, shrineID)
}

// TableName returns the name of the database table backing VisitRecord.
func (VisitRecord) TableName() string {
	return "visits"
}
