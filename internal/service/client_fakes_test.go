// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/meguri-app/meguri/internal/auth"
	"github.com/meguri-app/meguri/models"
)

// In-memory doubles for the scenario tests. The gomock mocks in internal/mock
// cover call-level expectations; these fakes carry real state so end-to-end
// properties (toggle idempotence, coalescing, drain ordering) can be asserted
// on the resulting sets and queues.

type fakeLocalStore struct {
	mu      sync.Mutex
	visits  map[int64]bool
	queue   []models.PendingOperation
	nextOp  int64
	session *struct {
		userID int64
		login  string
		token  string
	}

	failGetAll       bool
	failClearPending bool
}

func newFakeLocalStore() *fakeLocalStore {
	return &fakeLocalStore{visits: make(map[int64]bool), nextOp: 1}
}

func (f *fakeLocalStore) GetAll(context.Context) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGetAll {
		return nil, errors.New("disk read error")
	}
	if len(f.visits) == 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(f.visits))
	for id := range f.visits {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

func (f *fakeLocalStore) Add(_ context.Context, shrineID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visits[shrineID] = true
	return nil
}

func (f *fakeLocalStore) Remove(_ context.Context, shrineID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.visits, shrineID)
	return nil
}

func (f *fakeLocalStore) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visits = make(map[int64]bool)
	return nil
}

func (f *fakeLocalStore) EnqueuePending(_ context.Context, action models.PendingAction, shrineID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	op := models.PendingOperation{ID: f.nextOp, Action: action, ShrineID: shrineID, CreatedAt: time.Now()}
	f.nextOp++
	f.queue = append(f.queue, op)
	return op.ID, nil
}

func (f *fakeLocalStore) ListPending(context.Context) ([]models.PendingOperation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.queue), nil
}

func (f *fakeLocalStore) DequeuePending(_ context.Context, opID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = slices.DeleteFunc(f.queue, func(op models.PendingOperation) bool { return op.ID == opID })
	return nil
}

func (f *fakeLocalStore) DeletePendingForShrine(_ context.Context, shrineID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = slices.DeleteFunc(f.queue, func(op models.PendingOperation) bool { return op.ShrineID == shrineID })
	return nil
}

func (f *fakeLocalStore) ClearPending(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failClearPending {
		return errors.New("disk write error")
	}
	f.queue = nil
	return nil
}

func (f *fakeLocalStore) PendingCount(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue), nil
}

func (f *fakeLocalStore) SaveSession(_ context.Context, userID int64, login, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = &struct {
		userID int64
		login  string
		token  string
	}{userID, login, token}
	return nil
}

func (f *fakeLocalStore) LoadSession(context.Context) (int64, string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.session == nil {
		return 0, "", "", auth.ErrNoSession
	}
	return f.session.userID, f.session.login, f.session.token, nil
}

func (f *fakeLocalStore) ClearSession(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = nil
	return nil
}

// fakeRemote is an in-memory remote record store with per-call counters and
// switchable failure modes.
type fakeRemote struct {
	mu      sync.Mutex
	records map[int64]bool

	upserts map[int64]int
	deletes map[int64]int

	listErr error
	callErr error
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		records: make(map[int64]bool),
		upserts: make(map[int64]int),
		deletes: make(map[int64]int),
	}
}

func (f *fakeRemote) List(context.Context) ([]models.VisitRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	ids := make([]int64, 0, len(f.records))
	for id := range f.records {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	records := make([]models.VisitRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, models.VisitRecord{ShrineID: id})
	}
	return records, nil
}

func (f *fakeRemote) Upsert(_ context.Context, shrineID int64) (models.VisitRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.callErr != nil {
		return models.VisitRecord{}, f.callErr
	}
	f.records[shrineID] = true
	f.upserts[shrineID]++
	return models.VisitRecord{ShrineID: shrineID}, nil
}

func (f *fakeRemote) Delete(_ context.Context, shrineID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.callErr != nil {
		return f.callErr
	}
	// Deleting an absent record is success, mirroring the adapter's 404
	// handling.
	delete(f.records, shrineID)
	f.deletes[shrineID]++
	return nil
}

func (f *fakeRemote) ids() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int64, 0, len(f.records))
	for id := range f.records {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// staticCreds is a CredentialProvider with a settable state.
type staticCreds struct {
	mu     sync.Mutex
	authed bool
}

func (c *staticCreds) AccessToken(context.Context) (string, error) {
	if c.IsAuthenticated() {
		return "test-token", nil
	}
	return "", nil
}

func (c *staticCreds) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authed
}

func (c *staticCreds) OnAuthChange(fn func(*models.User)) func() {
	fn(nil)
	return func() {}
}

func (c *staticCreds) setAuthenticated(authed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authed = authed
}

// staticSignal is a netwatch.Signal pinned to one state.
type staticSignal bool

func (s staticSignal) Online() bool { return bool(s) }

// inertSync satisfies ClientSyncService without doing anything, keeping
// facade tests deterministic (no background goroutine races the assertions).
type inertSync struct{}

func (inertSync) SyncPending(context.Context) (models.SyncReport, error) {
	return models.SyncReport{Skipped: true}, nil
}

func (inertSync) TriggerSync(context.Context) {}

// recordingTerminator notes whether SignOut ran.
type recordingTerminator struct {
	signedOut bool
	err       error
}

func (r *recordingTerminator) SignOut(context.Context) error {
	if r.err != nil {
		return r.err
	}
	r.signedOut = true
	return nil
}
