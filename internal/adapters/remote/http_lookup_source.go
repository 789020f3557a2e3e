package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shipment-tracking-service/internal/domain"
	"shipment-tracking-service/internal/platform/obs"
	"shipment-tracking-service/internal/ports"
)

// HTTPLookupSource reads the status lookup tables from the inspection
// service's HTTP API:
//
//	GET {base}/inspection-statuses -> [{"value", "order", "is_optional"}]
//	GET {base}/shipment-statuses   -> [{"value", "tracking_point", "label", "is_optional"}]
type HTTPLookupSource struct {
	baseURL     string
	apiKey      string
	client      *http.Client
	maxAttempts int
	backoff     time.Duration
}

var _ ports.StatusLookupSource = (*HTTPLookupSource)(nil)

type Option func(*HTTPLookupSource)

func WithHTTPClient(c *http.Client) Option {
	return func(s *HTTPLookupSource) { s.client = c }
}

// WithRetry sets the attempt count and the first backoff delay.
func WithRetry(maxAttempts int, backoff time.Duration) Option {
	return func(s *HTTPLookupSource) {
		if maxAttempts > 0 {
			s.maxAttempts = maxAttempts
		}
		if backoff > 0 {
			s.backoff = backoff
		}
	}
}

func NewHTTPLookupSource(baseURL, apiKey string, opts ...Option) (*HTTPLookupSource, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("http lookup source: base URL is required")
	}

	s := &HTTPLookupSource{
		baseURL:     baseURL,
		apiKey:      strings.TrimSpace(apiKey),
		client:      &http.Client{Timeout: 10 * time.Second},
		maxAttempts: 4,
		backoff:     200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *HTTPLookupSource) InspectionStatuses(ctx context.Context) (_ []domain.InspectionStatus, err error) {
	defer obs.Time(ctx, "remote.InspectionStatuses")(&err)

	var out []domain.InspectionStatus
	if err := s.getJSON(ctx, "/inspection-statuses", &out); err != nil {
		return nil, fmt.Errorf("fetch inspection statuses: %w", err)
	}
	return out, nil
}

func (s *HTTPLookupSource) ShipmentStatuses(ctx context.Context) (_ []domain.ShipmentStatus, err error) {
	defer obs.Time(ctx, "remote.ShipmentStatuses")(&err)

	var out []domain.ShipmentStatus
	if err := s.getJSON(ctx, "/shipment-statuses", &out); err != nil {
		return nil, fmt.Errorf("fetch shipment statuses: %w", err)
	}
	return out, nil
}

func (s *HTTPLookupSource) getJSON(ctx context.Context, path string, v any) error {
	endpoint := s.baseURL + path

	resp, err := s.doWithRetry(ctx, func() (*http.Request, error) {
		return s.newRequest(ctx, http.MethodGet, endpoint)
	})
	if err != nil {
		return fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("GET %s: decode response: %w", endpoint, err)
	}
	return nil
}
