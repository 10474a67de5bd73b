// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildCreateUserQuery(login, passwordHash, name string) (string, []any, error) {
	query, args, err := psql.
		Insert("users").
		Columns("login", "password_hash", "name").
		Values(login, passwordHash, name).
		Suffix("RETURNING user_id, login, password_hash, name, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: create user: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByLoginQuery(login string) (string, []any, error) {
	query, args, err := psql.
		Select("user_id", "login", "password_hash", "name", "created_at").
		From("users").
		Where(sq.Eq{"login": login}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: find user by login: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetAllVisitsQuery(userID int64) (string, []any, error) {
	query, args, err := psql.
		Select("record_id", "user_id", "shrine_id", "visited_at").
		From("visits").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("shrine_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: get all visits: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpsertVisitQuery(recordID string, userID, shrineID int64, visitedAt time.Time) (string, []any, error) {
	query, args, err := psql.
		Insert("visits").
		Columns("record_id", "user_id", "shrine_id", "visited_at").
		Values(recordID, userID, shrineID, visitedAt).
		Suffix("ON CONFLICT (record_id) DO UPDATE SET visited_at = EXCLUDED.visited_at").
		Suffix("RETURNING record_id, user_id, shrine_id, visited_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: upsert visit: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteVisitQuery(recordID string) (string, []any, error) {
	query, args, err := psql.
		Delete("visits").
		Where(sq.Eq{"record_id": recordID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: delete visit: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
