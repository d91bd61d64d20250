package payrollexport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ad-altun/PerTiTrack-sub000/internal/ports/messaging"
	"github.com/rs/zerolog/log"
)

// Client contract for the payroll export system
type Client interface {
	ExportDay(ctx context.Context, event messaging.DayClosedEvent) error
}

// HTTPClient talks to the payroll system's REST endpoint.
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

// NewHTTPClient new HTTPClient
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// ExportDay sends the closed-day totals to the payroll system.
func (c *HTTPClient) ExportDay(ctx context.Context, event messaging.DayClosedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal payroll payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create payroll request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call payroll api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("payroll api returned non-successful status code: %d", resp.StatusCode)
	}

	log.Ctx(ctx).Info().Str("employee_id", event.EmployeeID).Str("work_date", event.WorkDate).
		Msg("Exported closed day to payroll system")
	return nil
}
