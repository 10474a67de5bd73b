// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meguri-app/meguri/internal/adapter"
	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/models"
)

func newTestReconcileSvc(localStore *fakeLocalStore, remote *fakeRemote) ClientReconcileService {
	creds := &staticCreds{authed: true}
	syncSvc := NewClientSyncService(localStore, remote, creds, staticSignal(true), logger.Nop())
	return NewClientReconcileService(localStore, remote, syncSvc, logger.Nop())
}

func TestSmartMerge_DecisionMatrix(t *testing.T) {
	tests := []struct {
		name       string
		local      []int64
		cloud      []int64
		wantAction models.ReconcileAction
		wantLocal  []int64 // local visited set after the merge
		wantCloud  []int64 // remote record set after the merge
	}{
		{
			name:       "local empty, cloud wins",
			local:      nil,
			cloud:      []int64{3, 7},
			wantAction: models.ReconcileUseCloud,
			wantLocal:  nil,
			wantCloud:  []int64{3, 7},
		},
		{
			name:       "cloud empty, local uploaded",
			local:      []int64{42},
			cloud:      nil,
			wantAction: models.ReconcileUploadedLocal,
			wantLocal:  nil,
			wantCloud:  []int64{42},
		},
		{
			name:       "identical sets, cloud canonical",
			local:      []int64{1, 2},
			cloud:      []int64{1, 2},
			wantAction: models.ReconcileUseCloud,
			wantLocal:  nil,
			wantCloud:  []int64{1, 2},
		},
		{
			name:       "local subset of cloud",
			local:      []int64{1, 2},
			cloud:      []int64{1, 2, 3},
			wantAction: models.ReconcileUseCloud,
			wantLocal:  nil,
			wantCloud:  []int64{1, 2, 3},
		},
		{
			name:       "cloud subset of local",
			local:      []int64{1, 2, 3},
			cloud:      []int64{1},
			wantAction: models.ReconcileUploadedLocal,
			wantLocal:  nil,
			wantCloud:  []int64{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			localStore := newFakeLocalStore()
			remote := newFakeRemote()
			for _, id := range tt.local {
				require.NoError(t, localStore.Add(ctx, id))
			}
			for _, id := range tt.cloud {
				remote.records[id] = true
			}

			svc := newTestReconcileSvc(localStore, remote)
			outcome, err := svc.SmartMerge(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAction, outcome.Action)
			assert.Nil(t, outcome.Conflict)

			gotLocal, err := localStore.GetAll(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLocal, gotLocal)
			assert.Equal(t, tt.wantCloud, remote.ids())
		})
	}
}

func TestSmartMerge_TrueConflict(t *testing.T) {
	ctx := context.Background()
	localStore := newFakeLocalStore()
	remote := newFakeRemote()
	require.NoError(t, localStore.Add(ctx, 1))
	require.NoError(t, localStore.Add(ctx, 2))
	remote.records[2] = true
	remote.records[3] = true

	svc := newTestReconcileSvc(localStore, remote)
	outcome, err := svc.SmartMerge(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.ReconcileAskUser, outcome.Action)
	require.NotNil(t, outcome.Conflict)
	assert.Equal(t, []int64{1}, outcome.Conflict.OnlyLocal)
	assert.Equal(t, []int64{3}, outcome.Conflict.OnlyCloud)
	assert.Equal(t, []int64{2}, outcome.Conflict.Common)

	// Nothing is mutated until the user decides.
	gotLocal, err := localStore.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, gotLocal)
	assert.Equal(t, []int64{2, 3}, remote.ids())
}

func TestSmartMerge_RemoteUnavailableSkips(t *testing.T) {
	ctx := context.Background()
	localStore := newFakeLocalStore()
	remote := newFakeRemote()
	remote.listErr = adapter.ErrUnavailable
	require.NoError(t, localStore.Add(ctx, 5))

	svc := newTestReconcileSvc(localStore, remote)
	outcome, err := svc.SmartMerge(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.ReconcileSkip, outcome.Action)
	gotLocal, err := localStore.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, gotLocal)
}

func TestSmartMerge_PendingDrainShortCircuits(t *testing.T) {
	ctx := context.Background()
	localStore := newFakeLocalStore()
	remote := newFakeRemote()

	// A leftover queued add from the previous session.
	require.NoError(t, localStore.Add(ctx, 42))
	_, err := localStore.EnqueuePending(ctx, models.PendingAdd, 42)
	require.NoError(t, err)

	svc := newTestReconcileSvc(localStore, remote)
	outcome, err := svc.SmartMerge(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.ReconcileUseCloud, outcome.Action)
	assert.True(t, outcome.LocalKept)
	assert.Equal(t, 1, outcome.SyncedPending)
	assert.Zero(t, outcome.FailedPending)
	assert.Equal(t, []int64{42}, remote.ids())

	// The local cache survives as an offline read cache.
	gotLocal, err := localStore.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{42}, gotLocal)
}

func TestSmartMerge_PartialDrainFallsThrough(t *testing.T) {
	ctx := context.Background()
	localStore := newFakeLocalStore()
	remote := newFakeRemote()
	remote.callErr = adapter.ErrUnavailable

	require.NoError(t, localStore.Add(ctx, 42))
	_, err := localStore.EnqueuePending(ctx, models.PendingAdd, 42)
	require.NoError(t, err)

	svc := newTestReconcileSvc(localStore, remote)
	outcome, err := svc.SmartMerge(ctx)
	require.NoError(t, err)

	// The drain failed, so the merge proceeds to classification: cloud is
	// empty, local is uploaded (which also fails here, leaving upload count 0).
	assert.Equal(t, models.ReconcileUploadedLocal, outcome.Action)
	assert.Equal(t, 1, outcome.FailedPending)
	assert.Zero(t, outcome.Uploaded)
}

func TestMergeAll(t *testing.T) {
	ctx := context.Background()
	localStore := newFakeLocalStore()
	remote := newFakeRemote()
	require.NoError(t, localStore.Add(ctx, 1))
	require.NoError(t, localStore.Add(ctx, 2))
	remote.records[2] = true
	remote.records[3] = true

	svc := newTestReconcileSvc(localStore, remote)
	union, err := svc.MergeAll(ctx, &models.ConflictPartition{
		OnlyLocal: []int64{1},
		OnlyCloud: []int64{3},
		Common:    []int64{2},
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 3}, union)
	assert.Equal(t, []int64{1, 2, 3}, remote.ids())

	gotLocal, err := localStore.GetAll(ctx)
	require.NoError(t, err)
	assert.Nil(t, gotLocal)
}

func TestUseCloud(t *testing.T) {
	ctx := context.Background()
	localStore := newFakeLocalStore()
	remote := newFakeRemote()
	require.NoError(t, localStore.Add(ctx, 1))
	remote.records[2] = true
	remote.records[3] = true

	svc := newTestReconcileSvc(localStore, remote)
	ids, err := svc.UseCloud(ctx)
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 3}, ids)
	gotLocal, err := localStore.GetAll(ctx)
	require.NoError(t, err)
	assert.Nil(t, gotLocal)
}

func TestReplaceCloudWithLocal(t *testing.T) {
	ctx := context.Background()
	localStore := newFakeLocalStore()
	remote := newFakeRemote()
	require.NoError(t, localStore.Add(ctx, 1))
	require.NoError(t, localStore.Add(ctx, 2))
	remote.records[2] = true
	remote.records[3] = true

	svc := newTestReconcileSvc(localStore, remote)
	ids, err := svc.ReplaceCloudWithLocal(ctx, &models.ConflictPartition{
		OnlyLocal: []int64{1},
		OnlyCloud: []int64{3},
		Common:    []int64{2},
	})
	require.NoError(t, err)

	// The device's set is returned directly, without a remote re-read.
	assert.Equal(t, []int64{1, 2}, ids)
	assert.Equal(t, []int64{1, 2}, remote.ids())
	assert.Equal(t, 1, remote.deletes[3])

	gotLocal, err := localStore.GetAll(ctx)
	require.NoError(t, err)
	assert.Nil(t, gotLocal)
}

func TestReplaceCloudWithLocal_Idempotent(t *testing.T) {
	ctx := context.Background()
	localStore := newFakeLocalStore()
	remote := newFakeRemote()
	remote.records[3] = true

	conflict := &models.ConflictPartition{
		OnlyLocal: []int64{1},
		OnlyCloud: []int64{3},
		Common:    nil,
	}

	svc := newTestReconcileSvc(localStore, remote)
	first, err := svc.ReplaceCloudWithLocal(ctx, conflict)
	require.NoError(t, err)

	// Re-invoking is safe: the delete of the already-gone record succeeds and
	// the upsert dedups.
	second, err := svc.ReplaceCloudWithLocal(ctx, conflict)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []int64{1}, remote.ids())
}
