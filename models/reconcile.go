// SPDX-License-Identifier: Apache-2.0

package models

// ReconcileAction classifies the outcome of the once-per-login comparison of
// the local visited set against the remote record set.
type ReconcileAction string

const (
	// ReconcileSkip means reconciliation did not run (no session, or the
	// remote store was unreachable and local state stays authoritative).
	ReconcileSkip ReconcileAction = "skip"

	// ReconcileUseCloud means the remote set is authoritative. Depending on
	// the path taken the local cache is either cleared or kept as a read
	// cache (see ReconcileOutcome.LocalKept).
	ReconcileUseCloud ReconcileAction = "use_cloud"

	// ReconcileUploadedLocal means the local set was authoritative and its
	// missing records were pushed to the remote store.
	ReconcileUploadedLocal ReconcileAction = "uploaded_local"

	// ReconcileAskUser means neither set subsumes the other; the caller must
	// present the three-way choice carried in ReconcileOutcome.Conflict.
	ReconcileAskUser ReconcileAction = "ask_user"
)

// ConflictPartition splits the two diverged visited sets for the ask-user
// prompt. Slices are sorted ascending.
type ConflictPartition struct {
	OnlyLocal []int64 `json:"only_local"`
	OnlyCloud []int64 `json:"only_cloud"`
	Common    []int64 `json:"common"`
}

// ReconcileOutcome is the transient result of a smart-merge run. It is
// computed fresh on every login transition and never persisted.
type ReconcileOutcome struct {
	Action ReconcileAction

	// Uploaded is the number of records pushed to the remote store when
	// Action is ReconcileUploadedLocal.
	Uploaded int

	// SyncedPending is the number of leftover queued operations drained
	// before classification (step 0 of the merge algorithm).
	SyncedPending int

	// FailedPending is the number of leftover queued operations that failed
	// during the pre-classification drain and remain queued.
	FailedPending int

	// LocalKept reports that the local cache was intentionally not cleared
	// (the short-circuit path after a fully successful pending drain).
	LocalKept bool

	// Conflict carries the id partition when Action is ReconcileAskUser.
	Conflict *ConflictPartition
}
