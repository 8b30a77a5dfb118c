package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.PingerAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
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

// Login implements [ServerAdapter]. It POSTs the credentials as JSON to
// POST /login; the session cookie from the response stays in the client's
// cookie jar.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode login response: %w", err)
	}

	h.logger.Debug().Int64("user_id", user.UserID).Msg("editor session started")
	return user, nil
}

// Ping implements [ServerAdapter]. It calls GET /ping?n=<counter>.
func (h *httpServerAdapter) Ping(ctx context.Context, counter int64) (models.PingResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("n", strconv.FormatInt(counter, 10)).
		Get("/ping")
	if err != nil {
		return models.PingResponse{}, fmt.Errorf("ping request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PingResponse{}, err
	}

	var pong models.PingResponse
	if err = json.Unmarshal(resp.Body(), &pong); err != nil {
		return models.PingResponse{}, fmt.Errorf("decode ping response: %w", err)
	}

	return pong, nil
}

// Logout implements [ServerAdapter]. It calls POST /logout; the redirect to
// the login form is followed and ignored.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}
