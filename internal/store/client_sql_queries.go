// SPDX-License-Identifier: Apache-2.0

package store

const (
	getAllVisits = `
		SELECT shrine_id
		FROM visits
		ORDER BY shrine_id;`

	upsertVisit = `
		INSERT INTO visits (shrine_id, visited_at)
		VALUES (?, ?)
		ON CONFLICT (shrine_id) DO UPDATE SET visited_at = excluded.visited_at;`

	deleteVisit = `
		DELETE FROM visits
		WHERE shrine_id = ?;`

	clearVisits = `DELETE FROM visits;`

	enqueuePendingOp = `
		INSERT INTO pending_ops (action, shrine_id, created_at)
		VALUES (?, ?, ?);`

	listPendingOps = `
		SELECT id, action, shrine_id, created_at
		FROM pending_ops
		ORDER BY id;`

	dequeuePendingOp = `
		DELETE FROM pending_ops
		WHERE id = ?;`

	deletePendingOpsForShrine = `
		DELETE FROM pending_ops
		WHERE shrine_id = ?;`

	clearPendingOps = `DELETE FROM pending_ops;`

	countPendingOps = `SELECT COUNT(*) FROM pending_ops;`

	saveLocalSession = `
		INSERT INTO session (id, user_id, login, token, saved_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id  = excluded.user_id,
			login    = excluded.login,
			token    = excluded.token,
			saved_at = excluded.saved_at;`

	loadLocalSession = `
		SELECT user_id, login, token
		FROM session
		WHERE id = 1;`

	clearLocalSession = `DELETE FROM session;`
)
