package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/tupyy/achievement-tracker/internal/metrics"
	"github.com/tupyy/achievement-tracker/internal/models"
	srvErrors "github.com/tupyy/achievement-tracker/pkg/errors"
)

const (
	pathGames        = "/api/games"
	pathSchema       = "/api/schema"
	pathAchievements = "/api/achievements"

	opOwnedGames   = "get owned games"
	opSchema       = "get achievement schema"
	opAchievements = "get player achievements"

	defaultTimeout       = 15 * time.Second
	defaultMaxRetries    = 3
	defaultRetryInterval = 500 * time.Millisecond
	maxBodySize          = 16 << 20
)

// Client talks to the backend proxy that fronts the game platform API.
type Client struct {
	baseURL       *url.URL
	httpClient    *http.Client
	token         string
	maxRetries    uint
	retryInterval time.Duration
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithToken sets a bearer JWT sent to the proxy on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = strings.TrimSpace(token) }
}

func WithMaxRetries(n uint) Option {
	return func(c *Client) { c.maxRetries = n }
}

func WithRetryInterval(d time.Duration) Option {
	return func(c *Client) { c.retryInterval = d }
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse proxy url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("proxy url %q must be http or https", baseURL)
	}

	c := &Client{
		baseURL:       u,
		httpClient:    &http.Client{Timeout: defaultTimeout},
		maxRetries:    defaultMaxRetries,
		retryInterval: defaultRetryInterval,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.token != "" {
		if _, _, err := jwt.NewParser().ParseUnverified(c.token, &jwt.RegisteredClaims{}); err != nil {
			return nil, fmt.Errorf("failed to parse proxy token: %w", err)
		}
	}

	return c, nil
}

// GetOwnedGames returns the user's library.
// GET /api/games?key=&steamid=
func (c *Client) GetOwnedGames(ctx context.Context, creds models.Credentials) ([]models.Game, error) {
	var body ownedGamesResponse
	query := url.Values{"key": {creds.APIKey}, "steamid": {creds.SteamID}}
	if err := c.get(ctx, opOwnedGames, pathGames, query, &body); err != nil {
		return nil, err
	}

	games := make([]models.Game, 0, len(body.Response.Games))
	for _, g := range body.Response.Games {
		games = append(games, models.Game{
			AppID:   g.AppID,
			Name:    g.Name,
			IconRef: g.ImgIconURL,
		})
	}
	return games, nil
}

// GetSchema returns the achievement definitions of a game in schema order.
// GET /api/schema?appid=&key=
func (c *Client) GetSchema(ctx context.Context, creds models.Credentials, appID int) ([]models.AchievementDefinition, error) {
	var body schemaResponse
	query := url.Values{"appid": {strconv.Itoa(appID)}, "key": {creds.APIKey}}
	if err := c.get(ctx, opSchema, pathSchema, query, &body); err != nil {
		return nil, err
	}

	defs := make([]models.AchievementDefinition, 0, len(body.Game.AvailableGameStats.Achievements))
	for _, a := range body.Game.AvailableGameStats.Achievements {
		defs = append(defs, models.AchievementDefinition{
			APIName:     a.Name,
			DisplayName: a.DisplayName,
			Description: a.Description,
			IconRef:     a.Icon,
			IconGrayRef: a.IconGray,
			Hidden:      a.Hidden != 0,
		})
	}
	return defs, nil
}

// GetPlayerAchievements returns the player's unlocked state for a game.
// GET /api/achievements?appid=&key=&steamid=
func (c *Client) GetPlayerAchievements(ctx context.Context, creds models.Credentials, appID int) ([]models.PlayerAchievementState, error) {
	var body playerAchievementsResponse
	query := url.Values{"appid": {strconv.Itoa(appID)}, "key": {creds.APIKey}, "steamid": {creds.SteamID}}
	if err := c.get(ctx, opAchievements, pathAchievements, query, &body); err != nil {
		return nil, err
	}

	if body.PlayerStats.Success != nil && !*body.PlayerStats.Success {
		return nil, srvErrors.NewMalformedResponseError(opAchievements, fmt.Errorf("upstream reported failure: %s", body.PlayerStats.Error))
	}

	states := make([]models.PlayerAchievementState, 0, len(body.PlayerStats.Achievements))
	for _, a := range body.PlayerStats.Achievements {
		states = append(states, models.PlayerAchievementState{
			APIName:    a.APIName,
			Achieved:   a.Achieved,
			UnlockTime: a.UnlockTime,
		})
	}
	return states, nil
}

func (c *Client) get(ctx context.Context, operation, path string, query url.Values, out any) error {
	if err := c.checkToken(); err != nil {
		metrics.UpstreamRequests.WithLabelValues(operation, "unauthorized").Inc()
		return err
	}

	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	u.RawQuery = query.Encode()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryInterval

	attempt := 0
	body, err := backoff.Retry(ctx, func() ([]byte, error) {
		attempt++
		return c.do(ctx, operation, u.String())
	}, backoff.WithBackOff(b), backoff.WithMaxTries(c.maxRetries+1), backoff.WithNotify(func(err error, d time.Duration) {
		zap.S().Named("steam_client").Debugw("retrying upstream call", "operation", operation, "attempt", attempt, "backoff", d, "error", err)
	}))
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(operation, "error").Inc()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		metrics.UpstreamRequests.WithLabelValues(operation, "malformed").Inc()
		return srvErrors.NewMalformedResponseError(operation, err)
	}

	metrics.UpstreamRequests.WithLabelValues(operation, "ok").Inc()
	return nil
}

// do performs one attempt. Errors wrapped in backoff.Permanent are not retried.
func (c *Client) do(ctx context.Context, operation, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}

	zap.S().Named("steam_client").Debugw("upstream request", "operation", operation, "path", req.URL.Path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		return nil, srvErrors.NewNetworkFailureError(operation, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		if err != nil {
			return nil, srvErrors.NewNetworkFailureError(operation, err)
		}
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, backoff.Permanent(srvErrors.NewUnauthorizedError(fmt.Sprintf("%s: %s", operation, resp.Status)))
	case resp.StatusCode >= 500:
		return nil, srvErrors.NewNetworkStatusError(operation, resp.StatusCode)
	default:
		return nil, backoff.Permanent(srvErrors.NewNetworkStatusError(operation, resp.StatusCode))
	}
}

func (c *Client) checkToken() error {
	if c.token == "" {
		return nil
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.token, &claims); err != nil {
		return srvErrors.NewUnauthorizedError(fmt.Sprintf("invalid proxy token: %v", err))
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return srvErrors.NewUnauthorizedError("proxy token expired")
	}
	return nil
}
