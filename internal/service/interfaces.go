// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/meguri-app/meguri/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_services_mock.go -package=mock

// AuthService handles user registration, credential verification and the JWT
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VisitService exposes the per-user visit record operations served over the
// HTTP API.
type VisitService interface {
	ListVisits(ctx context.Context, userID int64) ([]models.VisitRecord, error)
	RecordVisit(ctx context.Context, userID, shrineID int64) (models.VisitRecord, error)
	RemoveVisit(ctx context.Context, userID, shrineID int64) error
}
