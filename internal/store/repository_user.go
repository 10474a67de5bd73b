// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/models"
)

type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository wraps the server database handle with the UserRepository
// contract.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

func (u *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(user.Login, user.PasswordHash, user.Name)
	if err != nil {
		return models.User{}, err
	}

	var created models.User
	row := u.DB.QueryRowContext(ctx, query, args...)
	err = row.Scan(&created.UserID, &created.Login, &created.PasswordHash, &created.Name, &created.CreatedAt)
	if err != nil {
		if postgresErrorCode(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrLoginAlreadyExists
		}

		log.Err(err).Str("func", "userRepository.CreateUser").Str("login", user.Login).Msg("failed to insert user")
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return created, nil
}

func (u *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByLoginQuery(login)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	row := u.DB.QueryRowContext(ctx, query, args...)
	err = row.Scan(&user.UserID, &user.Login, &user.PasswordHash, &user.Name, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "userRepository.FindUserByLogin").Str("login", login).Msg("failed to query user")
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	return user, nil
}
