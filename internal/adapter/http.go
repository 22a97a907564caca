package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/sales-admin/internal/config"
	"github.com/MKhiriev/sales-admin/internal/logger"
	"github.com/MKhiriev/sales-admin/internal/utils"
	"github.com/MKhiriev/sales-admin/models"
)

const authorizationHeader = "Authorization"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu             sync.RWMutex
	token          string
	onUnauthorized func()

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// adapterCfg.HTTPAddress may be a full URL or host:port, in which case
// http:// is assumed. Every request is bounded by adapterCfg.RequestTimeout.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: log,
	}
	h.client.OnAfterResponse(h.interceptUnauthorized)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ClearToken implements [ServerAdapter].
func (h *httpServerAdapter) ClearToken() {
	h.SetToken("")
}

// OnUnauthorized implements [ServerAdapter].
func (h *httpServerAdapter) OnUnauthorized(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUnauthorized = fn
}

func (h *httpServerAdapter) interceptUnauthorized(_ *resty.Client, resp *resty.Response) error {
	if resp.StatusCode() != http.StatusUnauthorized || resp.Request == nil {
		return nil
	}
	if resp.Request.Header.Get(authorizationHeader) == "" {
		return nil
	}

	h.mu.RLock()
	fn := h.onUnauthorized
	h.mu.RUnlock()

	h.logger.Warn().
		Str("url", resp.Request.URL).
		Msg("backend rejected the session token")
	if fn != nil {
		fn()
	}
	return nil
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	var out models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{Email: email, Password: password}).
		SetResult(&out).
		Post("/auth/login/admin")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	out.Token = strings.TrimSpace(out.Token)
	return out, nil
}

// Me implements [ServerAdapter].
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/account/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = decodeUnwrapped(resp.Body(), "user", &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Fetch implements [ServerAdapter].
func (h *httpServerAdapter) Fetch(ctx context.Context, kind models.EntityKind, id models.ID) (models.Fields, error) {
	body, err := h.get(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	fields := models.Fields{}
	if err = decodeUnwrapped(body, kind.String(), &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// GetClient implements [ServerAdapter].
func (h *httpServerAdapter) GetClient(ctx context.Context, id models.ID) (models.Client, error) {
	return getEntity[models.Client](ctx, h, models.KindClient, id)
}

// ListClients implements [ServerAdapter].
func (h *httpServerAdapter) ListClients(ctx context.Context, hidden bool) ([]models.Client, error) {
	return listEntities[models.Client](ctx, h, models.KindClient, hidden)
}

// CreateClient implements [ServerAdapter].
func (h *httpServerAdapter) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	return saveEntity(ctx, h, models.KindClient, http.MethodPost, "create", client)
}

// UpdateClient implements [ServerAdapter]. Clients are updated with POST.
func (h *httpServerAdapter) UpdateClient(ctx context.Context, client models.Client) (models.Client, error) {
	return saveEntity(ctx, h, models.KindClient, http.MethodPost, "update", client)
}

// DeleteClient implements [ServerAdapter].
func (h *httpServerAdapter) DeleteClient(ctx context.Context, id models.ID) (models.DeleteResult, error) {
	return h.delete(ctx, models.KindClient, id)
}

// GetAgent implements [ServerAdapter].
func (h *httpServerAdapter) GetAgent(ctx context.Context, id models.ID) (models.Agent, error) {
	return getEntity[models.Agent](ctx, h, models.KindAgent, id)
}

// ListAgents implements [ServerAdapter].
func (h *httpServerAdapter) ListAgents(ctx context.Context, hidden bool) ([]models.Agent, error) {
	return listEntities[models.Agent](ctx, h, models.KindAgent, hidden)
}

// CreateAgent implements [ServerAdapter].
func (h *httpServerAdapter) CreateAgent(ctx context.Context, agent models.Agent) (models.Agent, error) {
	return saveEntity(ctx, h, models.KindAgent, http.MethodPost, "create", agent)
}

// UpdateAgent implements [ServerAdapter]. Agents are updated with PUT.
func (h *httpServerAdapter) UpdateAgent(ctx context.Context, agent models.Agent) (models.Agent, error) {
	return saveEntity(ctx, h, models.KindAgent, http.MethodPut, "update", agent)
}

// DeleteAgent implements [ServerAdapter].
func (h *httpServerAdapter) DeleteAgent(ctx context.Context, id models.ID) (models.DeleteResult, error) {
	return h.delete(ctx, models.KindAgent, id)
}

func (h *httpServerAdapter) get(ctx context.Context, kind models.EntityKind, id models.ID) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id.String()).
		Get("/" + kind.String() + "/{id}")
	if err != nil {
		return nil, fmt.Errorf("get %s request: %w", kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// delete treats an empty 2xx body as a successful deletion.
func (h *httpServerAdapter) delete(ctx context.Context, kind models.EntityKind, id models.ID) (models.DeleteResult, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id.String()).
		Delete("/" + kind.String() + "/{id}")
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete %s request: %w", kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeleteResult{}, err
	}

	if len(strings.TrimSpace(string(resp.Body()))) == 0 {
		return models.DeleteResult{Deleted: true}, nil
	}

	var result models.DeleteResult
	if err = decodeUnwrapped(resp.Body(), "result", &result); err != nil {
		return models.DeleteResult{}, err
	}
	return result, nil
}

func getEntity[T any](ctx context.Context, h *httpServerAdapter, kind models.EntityKind, id models.ID) (T, error) {
	var out T

	body, err := h.get(ctx, kind, id)
	if err != nil {
		return out, err
	}
	if err = decodeUnwrapped(body, kind.String(), &out); err != nil {
		return out, err
	}
	return out, nil
}

func listEntities[T any](ctx context.Context, h *httpServerAdapter, kind models.EntityKind, hidden bool) ([]T, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("hidden", strconv.FormatBool(hidden)).
		Get("/" + kind.String() + "/list")
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w", kind.Plural(), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	out := make([]T, 0)
	if err = decodeUnwrapped(resp.Body(), kind.Plural(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func saveEntity[T any](ctx context.Context, h *httpServerAdapter, kind models.EntityKind, method, action string, entity T) (T, error) {
	var out T

	resp, err := h.authedRequest(ctx).
		SetBody(entity).
		Execute(method, "/"+kind.String()+"/"+action)
	if err != nil {
		return out, fmt.Errorf("%s %s request: %w", action, kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	if len(strings.TrimSpace(string(resp.Body()))) == 0 {
		return entity, nil
	}
	if err = decodeUnwrapped(resp.Body(), kind.String(), &out); err != nil {
		return out, err
	}
	return out, nil
}

// authedRequest attaches the raw token, without a "Bearer " prefix. A token
// in ctx wins over the installed one.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	token, ok := utils.AuthTokenFromContext(ctx)
	if !ok {
		token = h.Token()
	}
	if token != "" {
		req.SetHeader(authorizationHeader, token)
	}
	return req
}
