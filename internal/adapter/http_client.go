// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/meguri-app/meguri/internal/config"
	"github.com/meguri-app/meguri/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter builds a ServerAdapter talking to the meguri REST API
// at cfg.BaseURL.
func NewHTTPServerAdapter(cfg config.ClientAdapter) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.obtainToken(ctx, "/api/auth/register", user)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.obtainToken(ctx, "/api/auth/login", user)
}

func (h *httpServerAdapter) obtainToken(ctx context.Context, path string, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("auth request %s: %w", path, ErrUnavailable)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	tokenString, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("auth parse bearer token: %w", err)
	}

	token := models.Token{SignedString: tokenString}
	userID, err := parseUserIDFromJWT(tokenString)
	if err != nil {
		return models.Token{}, fmt.Errorf("auth parse user id: %w", err)
	}
	token.UserID = userID

	h.SetToken(tokenString)
	return token, nil
}

func (h *httpServerAdapter) List(ctx context.Context) ([]models.VisitRecord, error) {
	resp, err := h.authedRequest(ctx).Get("/api/visits")
	if err != nil {
		return nil, fmt.Errorf("list visits request: %w", ErrUnavailable)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.VisitRecord
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode visit list response: %w", err)
	}

	return records, nil
}

func (h *httpServerAdapter) Upsert(ctx context.Context, shrineID int64) (models.VisitRecord, error) {
	resp, err := h.authedRequest(ctx).Post(fmt.Sprintf("/api/visits/%d", shrineID))
	if err != nil {
		return models.VisitRecord{}, fmt.Errorf("upsert visit request: %w", ErrUnavailable)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VisitRecord{}, err
	}

	var record models.VisitRecord
	if err = json.Unmarshal(resp.Body(), &record); err != nil {
		return models.VisitRecord{}, fmt.Errorf("decode upsert response: %w", err)
	}

	return record, nil
}

func (h *httpServerAdapter) Delete(ctx context.Context, shrineID int64) error {
	resp, err := h.authedRequest(ctx).Delete(fmt.Sprintf("/api/visits/%d", shrineID))
	if err != nil {
		return fmt.Errorf("delete visit request: %w", ErrUnavailable)
	}

	// Already deleted is the desired end state.
	if resp.StatusCode() == http.StatusNotFound {
		return nil
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return fmt.Errorf("ping request: %w", ErrUnavailable)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()

	switch {
	case code >= http.StatusOK && code < http.StatusMultipleChoices:
		return nil
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("http %d: %w", code, ErrUnavailable)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, body)
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func parseUserIDFromJWT(tokenString string) (int64, error) {
	token := models.Token{SignedString: tokenString}

	parsed, _, err := jwt.NewParser().ParseUnverified(tokenString, &token.RegisteredClaims)
	if err != nil {
		return 0, err
	}
	token.Token = parsed

	return token.GetUserID()
}
