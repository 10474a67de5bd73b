// SPDX-License-Identifier: Apache-2.0

// Package models holds the domain types shared between the meguri client and
// the reference server: visit records, the pending-operation queue entries of
// the local-first sync engine, reconciliation outcomes, and auth entities.
package models
