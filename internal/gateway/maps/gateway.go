package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"service/internal/entities"
	retrierconfig "service/pkg/retrier"
	"service/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "maps-service"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type MapsGateway struct {
	client  httpClient
	baseURL string
	apiKey  string
	retrier retrier
}

func New(client httpClient, baseURL, apiKey string) *MapsGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &MapsGateway{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (m *MapsGateway) Route(ctx context.Context, origin, destination string) (*entities.Route, error) {
	var resp routeResponse

	err := m.executeWithMetrics(ctx, "DistanceMatrix", func(ctx context.Context) error {
		return m.fetchRoute(ctx, origin, destination, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway maps, distance matrix: %w", err)
	}

	return toDomain(&resp)
}

func (m *MapsGateway) fetchRoute(ctx context.Context, origin, destination string, out *routeResponse) error {
	query := url.Values{}
	query.Set("origins", origin)
	query.Set("destinations", destination)
	if m.apiKey != "" {
		query.Set("key", m.apiKey)
	}

	requestURL := m.baseURL + "/distancematrix?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &statusError{Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

type statusError struct {
	Code int
}

func (e *statusError) Error() string {
	return "unexpected http status " + strconv.Itoa(e.Code)
}

// isRetryableError - сетевые сбои и 429/5xx ретраим, остальные HTTP
// статусы считаем окончательными.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var httpErr *statusError
	if errors.As(err, &httpErr) {
		return httpErr.Code == http.StatusTooManyRequests || httpErr.Code >= http.StatusInternalServerError
	}

	return true
}

func (m *MapsGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getHTTPCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "200"
	}

	var httpErr *statusError
	if errors.As(err, &httpErr) {
		return strconv.Itoa(httpErr.Code)
	}
	return "UNKNOWN"
}
