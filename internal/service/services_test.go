package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sales-admin/internal/adapter"
	"github.com/MKhiriev/sales-admin/internal/config"
	"github.com/MKhiriev/sales-admin/internal/crypto"
	"github.com/MKhiriev/sales-admin/internal/logger"
	"github.com/MKhiriev/sales-admin/internal/store"
	"github.com/MKhiriev/sales-admin/internal/utils"
	"github.com/MKhiriev/sales-admin/models"
)

// fakeBackend is a chi-routed stand-in for the sales backend.
type fakeBackend struct {
	*httptest.Server
	token   string
	revoked atomic.Bool
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{token: mintToken(t, time.Hour)}

	r := chi.NewRouter()
	r.Post("/auth/login/admin", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret" {
			utils.WriteError(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		_, _ = utils.WriteJSON(w, models.LoginResponse{Token: b.token, User: models.User{ID: "1", Email: req.Email}}, http.StatusOK)
	})
	r.Group(func(r chi.Router) {
		r.Use(b.requireToken)
		r.Get("/api/account/me", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = utils.WriteJSON(w, models.MeResponse{User: &models.User{ID: "1", Email: "admin@example.com"}}, http.StatusOK)
		})
		r.Get("/client/list", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = utils.WriteJSON(w, models.ClientList{Clients: []models.Client{{ID: "1"}, {ID: "2"}}}, http.StatusOK)
		})
		r.Delete("/client/{id}", func(w http.ResponseWriter, r *http.Request) {
			_, _ = utils.WriteJSON(w, models.DeleteResult{Deleted: chi.URLParam(r, "id") != "1"}, http.StatusOK)
		})
	})

	b.Server = httptest.NewServer(r)
	t.Cleanup(b.Close)
	return b
}

func (b *fakeBackend) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if b.revoked.Load() || r.Header.Get("Authorization") != b.token {
			utils.WriteError(w, "token is expired or invalid", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func newWiredServices(t *testing.T, backendURL, dsn string, keepSession bool) *ClientServices {
	t.Helper()
	ctx := context.Background()

	sealer, err := crypto.NewTokenSealer("local-secret")
	require.NoError(t, err)
	storages, err := store.NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, sealer, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: backendURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)

	return NewClientServices(storages, serverAdapter, config.ClientApp{KeepSessionOnUnauthorized: keepSession}, logger.Nop())
}

func TestClientServices_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend(t)
	dsn := filepath.Join(t.TempDir(), "client.db")

	first := newWiredServices(t, backend.URL, dsn, false)
	require.NoError(t, first.Sessions.Bootstrap(ctx))
	assert.False(t, first.Sessions.IsLoggedIn())

	_, err := first.Sessions.Login(ctx, "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongCredentials)
	assert.False(t, first.Sessions.IsLoggedIn())

	_, err = first.Sessions.Login(ctx, "admin@example.com", "secret")
	require.NoError(t, err)

	clients, err := first.Entities.ListClients(ctx, false)
	require.NoError(t, err)
	assert.Len(t, clients, 2)

	err = first.Entities.Delete(ctx, models.KindClient, "1")
	assert.ErrorIs(t, err, ErrHasAssociations)
	require.NoError(t, first.Entities.Delete(ctx, models.KindClient, "2"))

	// A second process on the same local store picks the session up.
	second := newWiredServices(t, backend.URL, dsn, false)
	require.NoError(t, second.Sessions.Bootstrap(ctx))
	require.True(t, second.Sessions.IsLoggedIn())
	assert.Equal(t, "admin@example.com", second.Sessions.CurrentUser().Email)

	loggedOut := make(chan struct{}, 1)
	second.Sessions.OnLoggedOut(func() { loggedOut <- struct{}{} })

	backend.revoked.Store(true)
	_, err = second.Entities.ListClients(ctx, false)
	assert.ErrorIs(t, err, ErrSessionExpired)

	select {
	case <-loggedOut:
	case <-time.After(time.Second):
		t.Fatal("rejected token did not end the session")
	}
	assert.False(t, second.Sessions.IsLoggedIn())
	assert.True(t, second.Sessions.IsInitialized())

	// The rejected token is gone from the shared store.
	backend.revoked.Store(false)
	third := newWiredServices(t, backend.URL, dsn, false)
	require.NoError(t, third.Sessions.Bootstrap(ctx))
	assert.False(t, third.Sessions.IsLoggedIn())
}

func TestClientServices_KeepSessionOnUnauthorized(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend(t)
	svc := newWiredServices(t, backend.URL, filepath.Join(t.TempDir(), "client.db"), true)

	require.NoError(t, svc.Sessions.Bootstrap(ctx))
	_, err := svc.Sessions.Login(ctx, "admin@example.com", "secret")
	require.NoError(t, err)

	backend.revoked.Store(true)
	_, err = svc.Entities.ListClients(ctx, false)

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.True(t, svc.Sessions.IsLoggedIn())
}

func TestClientServices_Drafts(t *testing.T) {
	svc := &ClientServices{ClientDraft: &draftService{kind: models.KindClient}, AgentDraft: &draftService{kind: models.KindAgent}}

	assert.Equal(t, models.KindClient, svc.Drafts(models.KindClient).Kind())
	assert.Equal(t, models.KindAgent, svc.Drafts(models.KindAgent).Kind())
	assert.Nil(t, svc.Drafts("contract"))
	assert.Len(t, svc.AllDrafts(), 2)
}
