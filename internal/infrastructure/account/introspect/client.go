package introspect

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/ptcgpocket/companion/internal/platform/logging"
	"github.com/ptcgpocket/companion/internal/platform/resilience"
	"github.com/ptcgpocket/companion/internal/usecase"
)

// Identity is the verified claim set the identity provider reports for an
// access token.
type Identity struct {
	Subject  string
	Email    string
	FullName string
	Picture  string
}

// Client verifies bearer tokens against the provider's introspection
// endpoint. A circuit breaker keeps a dead provider from stalling every
// request; while it is open callers get ErrDependencyUnavailable immediately.
type Client struct {
	httpClient    *http.Client
	introspectURL string
	breaker       *resilience.CircuitBreaker
	logger        *logging.Logger
}

func NewClient(httpClient *http.Client, baseURL, introspectPath string, breakerCfg resilience.CircuitBreakerConfig, logger *logging.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = logging.Default()
	}

	var breaker *resilience.CircuitBreaker
	if breakerCfg.Enabled {
		cfg := resilience.NormalizeCircuitBreakerConfig(breakerCfg)
		breaker = resilience.NewCircuitBreaker(cfg.FailureThreshold, cfg.OpenTimeout, cfg.HalfOpenMaxReq)
	}

	return &Client{
		httpClient:    httpClient,
		introspectURL: buildURL(baseURL, introspectPath),
		breaker:       breaker,
		logger:        logger,
	}
}

var errTransient = errors.New("identity provider transient failure")

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, errors.Mark(errors.New("token is required"), usecase.ErrUnauthorized)
	}

	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			return Identity{}, errors.Mark(errors.Wrap(err, "token introspection"), usecase.ErrDependencyUnavailable)
		}
	}

	identity, err := c.introspect(ctx, token)
	if c.breaker != nil {
		if errors.Is(err, errTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if errors.Is(err, errTransient) {
		return Identity{}, errors.Mark(err, usecase.ErrDependencyUnavailable)
	}

	return identity, err
}

func (c *Client) introspect(ctx context.Context, token string) (Identity, error) {
	encoded, err := sonic.Marshal(introspectRequest{Token: token})
	if err != nil {
		return Identity{}, errors.Wrap(err, "marshal introspect request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		return Identity{}, errors.Wrap(err, "create introspect request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Identity{}, errors.Mark(errors.Wrap(err, "request token introspection"), errTransient)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return Identity{}, errors.Mark(errors.New("introspection denied"), usecase.ErrUnauthorized)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Identity{}, errors.Mark(errors.Wrap(err, "read introspect response"), errTransient)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "token introspection non-200", "status_code", resp.StatusCode)
		err := errors.Newf("token introspection failed with status %d", resp.StatusCode)
		if resp.StatusCode >= http.StatusInternalServerError {
			err = errors.Mark(err, errTransient)
		}
		return Identity{}, err
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return Identity{}, errors.Wrap(err, "unmarshal introspect response")
	}

	if !decoded.Active {
		return Identity{}, errors.Mark(errors.New("inactive token"), usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.Subject) == "" {
		return Identity{}, errors.New("invalid introspect response: sub is empty")
	}

	return Identity{
		Subject:  decoded.Subject,
		Email:    decoded.Email,
		FullName: decoded.Name,
		Picture:  decoded.Picture,
	}, nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active  bool   `json:"active"`
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}
