// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the sales-management REST backend.
//
// [ServerAdapter] decouples the service layer from HTTP. Non-2xx statuses
// are mapped to the sentinel errors in errors.go so that callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/sales-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client of the sales backend. The session token it
// holds is sent verbatim in the Authorization header of every request; a
// token stored in the request context with utils.WithAuthToken takes
// precedence for that single call.
type ServerAdapter interface {
	// SetToken installs the token attached to subsequent requests.
	SetToken(token string)

	// Token returns the installed token, or "" if none.
	Token() string

	// ClearToken removes the installed token.
	ClearToken()

	// OnUnauthorized registers fn to be called after any 401 response to a
	// request that carried a token. A later call replaces the handler; nil
	// disables it.
	OnUnauthorized(fn func())

	// Login posts the credentials to POST /auth/login/admin. It does not
	// install the returned token.
	Login(ctx context.Context, email, password string) (models.LoginResponse, error)

	// Me fetches the profile of the token owner from GET /api/account/me.
	Me(ctx context.Context) (models.User, error)

	// Fetch returns every field of one entity as sent by the backend.
	Fetch(ctx context.Context, kind models.EntityKind, id models.ID) (models.Fields, error)

	GetClient(ctx context.Context, id models.ID) (models.Client, error)
	ListClients(ctx context.Context, hidden bool) ([]models.Client, error)
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)
	UpdateClient(ctx context.Context, client models.Client) (models.Client, error)
	DeleteClient(ctx context.Context, id models.ID) (models.DeleteResult, error)

	GetAgent(ctx context.Context, id models.ID) (models.Agent, error)
	ListAgents(ctx context.Context, hidden bool) ([]models.Agent, error)
	CreateAgent(ctx context.Context, agent models.Agent) (models.Agent, error)
	UpdateAgent(ctx context.Context, agent models.Agent) (models.Agent, error)
	DeleteAgent(ctx context.Context, id models.ID) (models.DeleteResult, error)
}
