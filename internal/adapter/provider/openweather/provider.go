package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/heartmarshall/myhealth-backend/internal/config"
)

// cacheSize bounds the number of cities kept in the temperature cache.
const cacheSize = 256

// Provider fetches current weather from the OpenWeatherMap API.
// Successful lookups are cached per city for the configured TTL, so a city
// queried many times a day costs one upstream request per TTL window.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *expirable.LRU[string, float64]
	log        *slog.Logger
}

// NewProvider creates a Provider from the weather configuration.
func NewProvider(cfg config.WeatherConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      expirable.NewLRU[string, float64](cacheSize, nil, cfg.CacheTTL),
		log:        logger.With("adapter", "openweather"),
	}
}

// FetchTemperature fetches the current temperature in °C for a city.
// Returns nil, nil if the API does not know the city (HTTP 404).
func (p *Provider) FetchTemperature(ctx context.Context, city string) (*float64, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openweather: api key not configured")
	}

	key := cacheKey(city)
	if temp, ok := p.cache.Get(key); ok {
		p.log.DebugContext(ctx, "openweather cache hit", slog.String("city", city), slog.Float64("temp_c", temp))
		return &temp, nil
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", p.apiKey)
	query.Set("units", "metric")
	reqURL := p.baseURL + "/weather?" + query.Encode()

	p.log.DebugContext(ctx, "openweather request", slog.String("city", city))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("openweather: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req, city)
	if err != nil {
		p.log.ErrorContext(ctx, "openweather request failed", slog.String("city", city), slog.String("error", err.Error()))
		return nil, fmt.Errorf("openweather: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openweather: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openweather: read body: %w", err)
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("openweather: decode json: %w", err)
	}

	if payload.Main.Temp == nil {
		return nil, fmt.Errorf("openweather: response has no temperature")
	}
	temp := *payload.Main.Temp

	p.cache.Add(key, temp)

	p.log.DebugContext(ctx, "openweather response",
		slog.String("city", city),
		slog.Int("status", resp.StatusCode),
		slog.Float64("temp_c", temp),
	)

	return &temp, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, city string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "openweather retry", slog.String("city", city), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	resp, err = p.httpClient.Do(req)
	return resp, err
}

// cacheKey normalizes a city name so "Moscow" and " moscow " share one entry.
func cacheKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
