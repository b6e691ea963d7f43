package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"service/internal/entities"
	retrierconfig "service/pkg/retrier"
	"service/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 5 * time.Second
	maxElapsedTime  = 15 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

// Sender доставляет уведомления внешнему push-шлюзу по webhook.
// Механика фактической рассылки остается за шлюзом.
type Sender struct {
	client     *http.Client
	webhookURL string
	retrier    retrier
}

func NewSender(webhookURL string, requestTimeout time.Duration) *Sender {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &Sender{
		client:     &http.Client{Timeout: requestTimeout},
		webhookURL: webhookURL,
		retrier:    backoff_adapter.New(retryConfig),
	}
}

type pushRequest struct {
	Channel  string            `json:"channel"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

func (s *Sender) Send(ctx context.Context, event entities.DeliveryEvent) error {
	payload, err := json.Marshal(pushRequest{
		Channel:  event.Channel,
		Title:    event.Title,
		Body:     event.Body,
		Metadata: event.Metadata,
	})
	if err != nil {
		return fmt.Errorf("marshal push request: %w", err)
	}

	err = s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.post(ctx, payload)
	})
	if err != nil {
		return fmt.Errorf("push webhook: %w", err)
	}

	return nil
}

func (s *Sender) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return &statusError{Code: resp.StatusCode}
	}

	return nil
}

type statusError struct {
	Code int
}

func (e *statusError) Error() string {
	return "unexpected http status " + strconv.Itoa(e.Code)
}

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
