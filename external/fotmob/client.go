package fotmob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-stats/internal/platform/cache"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/platform/resilience"
	"github.com/riskibarqy/football-stats/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL = "https://www.fotmob.com/api"
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 8 << 20

	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"
	acceptLanguage = "en-US,en;q=0.9"
	referer        = "https://www.fotmob.com/"
	tokenHeader    = "x-mas"
)

// Cache is the subset of the platform cache the client needs. Values are raw response bodies.
// GetOrLoad must run loader once for concurrent callers of the same key and must not keep errors.
type Cache interface {
	GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error)
}

// endpointFamily scopes a circuit breaker. Failures counted in one family never open another.
type endpointFamily string

const (
	familyLeague          endpointFamily = "leagues"
	familyLeaderboard     endpointFamily = "leagueseasondeepstats"
	familyTeam            endpointFamily = "teams"
	familyTeamLeaderboard endpointFamily = "teamleaderboard"
	familyPlayer          endpointFamily = "playerData"
)

var endpointFamilies = []endpointFamily{
	familyLeague,
	familyLeaderboard,
	familyTeam,
	familyTeamLeaderboard,
	familyPlayer,
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	AccessToken    string
	Timeout        time.Duration
	Retry          resilience.RetryPolicy
	CircuitBreaker resilience.CircuitBreakerConfig
	Cache          Cache
	Logger         *logging.Logger
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	retry      resilience.RetryPolicy
	breakers   map[endpointFamily]*resilience.CircuitBreaker
	cache      Cache
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	store := cfg.Cache
	if store == nil {
		store = cache.NewStore(cache.DefaultTTL)
	}

	breakers := make(map[endpointFamily]*resilience.CircuitBreaker, len(endpointFamilies))
	for _, family := range endpointFamilies {
		breakers[family] = resilience.NewCircuitBreaker(cfg.CircuitBreaker)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      strings.TrimSpace(cfg.AccessToken),
		retry:      cfg.Retry.Normalize(),
		breakers:   breakers,
		cache:      store,
		logger:     logger.Named("fotmob"),
	}
}

func (c *Client) endpoint(path string, query url.Values) string {
	full := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		full += "?" + encoded
	}
	return full
}

// resolve accepts the absolute fetch-all links embedded in team payloads as well as relative paths.
func (c *Client) resolve(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty url", usecase.ErrInvalidInput)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: parse url: %v", usecase.ErrInvalidInput, err)
	}
	if parsed.IsAbs() {
		return parsed.String(), nil
	}
	return c.baseURL + "/" + strings.TrimLeft(raw, "/"), nil
}

// getJSON serves fullURL from cache or the network and decodes it into target.
// Upstream calls ignore caller cancellation so a fetch that has started still fills the cache.
func (c *Client) getJSON(ctx context.Context, family endpointFamily, fullURL string, target any) error {
	raw, err := c.fetch(ctx, family, fullURL)
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload url=%s: %w", fullURL, err)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, family endpointFamily, fullURL string) ([]byte, error) {
	out, err := c.cache.GetOrLoad(ctx, fullURL, func(ctx context.Context) (any, error) {
		return c.load(context.WithoutCancel(ctx), family, fullURL)
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}
	return raw, nil
}

// load runs one guarded upstream call. Only a valid JSON body is returned, so only such bodies get cached.
func (c *Client) load(ctx context.Context, family endpointFamily, fullURL string) ([]byte, error) {
	breaker := c.breakers[family]

	var raw []byte
	execErr := breaker.Execute(func() error {
		return resilience.Retry(ctx, c.retry, isTransient, func(ctx context.Context) error {
			body, reqErr := c.executeRequest(ctx, fullURL)
			if reqErr != nil {
				return reqErr
			}
			raw = body
			return nil
		})
	}, isTransient)
	if execErr != nil {
		if errors.Is(execErr, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "fotmob circuit breaker rejected request",
				"url", fullURL,
				"endpoint", string(family),
				"state", breaker.State(),
			)
			return nil, fmt.Errorf("%w: sport data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		c.logger.WarnContext(ctx, "fotmob request failed", "url", fullURL, "endpoint", string(family), "error", execErr)
		return nil, execErr
	}
	if !sonic.Valid(raw) {
		return nil, crerr.Newf("provider returned invalid json url=%s body=%s", fullURL, abbreviateBody(raw))
	}
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", usecase.ErrInvalidInput, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", acceptLanguage)
	req.Header.Set("Referer", referer)
	if c.token != "" {
		req.Header.Set(tokenHeader, c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &usecase.NetworkError{URL: fullURL, Err: crerr.New(c.sanitize(err.Error()))}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &usecase.NetworkError{URL: fullURL, Err: crerr.Wrap(err, "read response body")}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.DebugContext(ctx, "fotmob unsuccessful status",
			"url", fullURL,
			"status", resp.StatusCode,
			"body", abbreviateBody(raw),
		)
		return nil, &usecase.UpstreamError{StatusCode: resp.StatusCode, URL: fullURL}
	}

	c.logger.DebugContext(ctx, "fotmob request done", "url", fullURL, "status", resp.StatusCode, "duration", time.Since(start))
	return raw, nil
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if c.token != "" {
		value = strings.ReplaceAll(value, c.token, "REDACTED")
	}
	return value
}

// isTransient covers transport failures, 429 and 5xx. Other statuses are final.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	var upstreamErr *usecase.UpstreamError
	if errors.As(err, &upstreamErr) {
		return isRetryableStatus(upstreamErr.StatusCode)
	}
	return errors.Is(err, usecase.ErrNetwork)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
