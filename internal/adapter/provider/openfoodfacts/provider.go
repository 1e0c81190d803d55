package openfoodfacts

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

	"github.com/heartmarshall/myhealth-backend/internal/config"
	"github.com/heartmarshall/myhealth-backend/internal/provider"
)

// kcalPerKJ converts kilojoules to kilocalories. Some products report only
// energy_100g (kJ) and not energy-kcal_100g.
const kcalPerKJ = 0.239006

// Provider looks up products in the OpenFoodFacts database.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from the food configuration.
func NewProvider(cfg config.FoodConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "openfoodfacts"),
	}
}

// FetchProduct searches for a product by free-text query and returns the best
// match with its energy density.
// Returns nil, nil when nothing matches or the match carries no energy data.
func (p *Provider) FetchProduct(ctx context.Context, query string) (*provider.FoodResult, error) {
	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page_size", "1")
	reqURL := p.baseURL + "/cgi/search.pl?" + params.Encode()

	p.log.DebugContext(ctx, "openfoodfacts request", slog.String("query", query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("openfoodfacts: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req, query)
	if err != nil {
		p.log.ErrorContext(ctx, "openfoodfacts request failed", slog.String("query", query), slog.String("error", err.Error()))
		return nil, fmt.Errorf("openfoodfacts: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openfoodfacts: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openfoodfacts: read body: %w", err)
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("openfoodfacts: decode json: %w", err)
	}

	if len(payload.Products) == 0 {
		p.log.DebugContext(ctx, "openfoodfacts no match", slog.String("query", query))
		return nil, nil
	}

	product := payload.Products[0]

	kcal, ok := resolveKcal(product.Nutriments)
	if !ok {
		p.log.DebugContext(ctx, "openfoodfacts match without energy data", slog.String("query", query))
		return nil, nil
	}

	name := strings.TrimSpace(product.ProductName)
	if name == "" {
		name = query
	}

	p.log.DebugContext(ctx, "openfoodfacts response",
		slog.String("query", query),
		slog.String("name", name),
		slog.Float64("kcal_per_100g", kcal),
	)

	return &provider.FoodResult{Name: name, KcalPer100g: kcal}, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, query string) (*http.Response, error) {
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
	p.log.WarnContext(ctx, "openfoodfacts retry", slog.String("query", query), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	resp, err = p.httpClient.Do(req)
	return resp, err
}

// resolveKcal extracts the per-100g energy in kcal, preferring the native kcal
// field and falling back to converting the kJ field.
func resolveKcal(n apiNutriments) (float64, bool) {
	if n.EnergyKcal100g != nil {
		return *n.EnergyKcal100g, true
	}
	if n.Energy100g != nil {
		return *n.Energy100g * kcalPerKJ, true
	}
	return 0, false
}
