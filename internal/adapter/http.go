package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/f4f-study-portal/internal/config"
	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/internal/utils"
	"github.com/MKhiriev/f4f-study-portal/models"
)

const exportFormatJSON = "json"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu      sync.RWMutex
	baseURL string
	token   string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates cfg.ServerURL and configures
// the underlying HTTP client with the request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)

	return &httpServerAdapter{client: client, baseURL: baseURL, logger: logger}, nil
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

func (h *httpServerAdapter) SetServerURL(raw string) error {
	baseURL, err := normalizeBaseURL(raw)
	if err != nil {
		return fmt.Errorf("invalid server address: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.baseURL = baseURL
	h.client.SetBaseURL(baseURL)
	return nil
}

func (h *httpServerAdapter) ServerURL() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.baseURL
}

// SetToken implements [ServerAdapter]. The token is whitespace-trimmed.
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

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

// authedRequest returns a request carrying the bearer token. Without a token
// the server answers 401, which is mapped like any other rejection.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// ServerVersion implements [ServerAdapter] via GET /version.
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// Health implements [ServerAdapter] via GET /health.
func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.request(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}
	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/login and stores the returned access token.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	token := out.AccessToken
	if token == "" {
		token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.LoginResponse{}, fmt.Errorf("%w: no access token: %w", ErrInvalidResponse, err)
		}
		out.AccessToken = token
	}

	h.SetToken(token)
	h.logger.Debug().Str("func", "*httpServerAdapter.Login").Str("role", string(out.Role)).Msg("signed in")
	return out, nil
}

// FetchSchema implements [ServerAdapter] via the JSON export.
func (h *httpServerAdapter) FetchSchema(ctx context.Context) (models.SchemaBundle, error) {
	body, err := h.Export(ctx, exportFormatJSON)
	if err != nil {
		return models.SchemaBundle{}, err
	}

	var bundle models.SchemaBundle
	if err = json.Unmarshal(body, &bundle); err != nil {
		return models.SchemaBundle{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return bundle, nil
}

// Export implements [ServerAdapter] via GET /schema/export.
func (h *httpServerAdapter) Export(ctx context.Context, format string) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("format", format).
		Get("/schema/export")
	if err != nil {
		return nil, fmt.Errorf("export request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// Validate implements [ServerAdapter]. The server answers a dry run with
// 200 and the validation result, also when the result carries errors.
func (h *httpServerAdapter) Validate(ctx context.Context, res Resource, entity any) (schema.Result, error) {
	path, err := res.validatePath()
	if err != nil {
		return schema.Result{}, err
	}

	var out schema.Result
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entity).
		SetResult(&out).
		Post(path)
	if err != nil {
		return schema.Result{}, fmt.Errorf("validate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return schema.Result{}, err
	}
	return out, nil
}

// Delete implements [ServerAdapter]. The server answers 204 on success.
func (h *httpServerAdapter) Delete(ctx context.Context, res Resource, id string) error {
	path, err := res.itemPath(id)
	if err != nil {
		return err
	}

	resp, err := h.authedRequest(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		var serverErr *ServerError
		if errors.As(err, &serverErr) && serverErr.StatusCode == http.StatusConflict {
			h.logger.Info().Str("func", "*httpServerAdapter.Delete").
				Str("id", id).Strs("references", serverErr.References).Msg("entity is still referenced")
		}
		return err
	}
	return nil
}

func (h *httpServerAdapter) CheckIdentifier(ctx context.Context, res Resource, identifier, original string) (models.IdentifierCheckResponse, error) {
	path, err := res.checkIdentifierPath(identifier)
	if err != nil {
		return models.IdentifierCheckResponse{}, err
	}

	req := h.authedRequest(ctx)
	if original != "" {
		req.SetQueryParam("original", original)
	}

	var out models.IdentifierCheckResponse
	resp, err := req.SetResult(&out).Get(path)
	if err != nil {
		return models.IdentifierCheckResponse{}, fmt.Errorf("check identifier request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.IdentifierCheckResponse{}, err
	}
	return out, nil
}

// FoodGraph implements [ServerAdapter] via GET /schema/foodenum/graph.
func (h *httpServerAdapter) FoodGraph(ctx context.Context, initial string) (schema.FoodGraphReport, error) {
	req := h.authedRequest(ctx)
	if initial != "" {
		req.SetQueryParam("initial", initial)
	}

	var out schema.FoodGraphReport
	resp, err := req.SetResult(&out).Get("/schema/foodenum/graph")
	if err != nil {
		return schema.FoodGraphReport{}, fmt.Errorf("food graph request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return schema.FoodGraphReport{}, err
	}
	return out, nil
}
