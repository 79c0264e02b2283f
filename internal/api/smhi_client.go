package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
	"windvane/internal/metrics"
	"windvane/internal/models"

	"github.com/google/uuid"
)

const (
	DefaultBaseURL = "https://opendata-download-metfcst.smhi.se"
	DefaultTimeout = 3 * time.Second

	pointPath = "/api/category/pmp3g/version/2/geotype/point/lon/%s/lat/%s/data.json"
)

// ErrTimeout is returned when the fetch timer fires before the forecast is read
var ErrTimeout = errors.New("forecast request timed out")

// SMHIClient is a client for the SMHI point forecast API
type SMHIClient struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
}

// NewSMHIClient creates a new SMHI API client. Empty or zero arguments fall back to the defaults.
func NewSMHIClient(baseURL string, timeout time.Duration) *SMHIClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &SMHIClient{
		client:  &http.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

// BuildURL builds the point forecast URL for already formatted coordinates
func (c *SMHIClient) BuildURL(lon, lat string) string {
	return c.baseURL + fmt.Sprintf(pointPath, lon, lat)
}

// Fetch makes the one forecast request for a screen and returns its outcome.
// The request runs under its own cancellation context which the timeout timer
// cancels; whichever of the two loses is released before Fetch returns.
func (c *SMHIClient) Fetch(ctx context.Context, lon, lat string) models.Outcome {
	url := c.BuildURL(lon, lat)
	requestID := uuid.NewString()
	start := time.Now()

	log.Printf("[%s] Going to fetch %s", requestID, url)
	forecast, err := c.getWithTimeout(ctx, url)
	duration := time.Since(start)

	if errors.Is(err, ErrTimeout) {
		log.Printf("[%s] Timed out after %s", requestID, c.timeout)
		metrics.RecordFetch("timeout", duration)
		return models.FailureOutcome(TimeoutReason(c.timeout))
	}
	if err != nil {
		log.Printf("[%s] Failed to fetch weather data: %v", requestID, err)
		metrics.RecordFetch("error", duration)
		return models.FailureOutcome(LoadErrorReason(url))
	}

	current, err := forecast.Current()
	if err != nil {
		log.Printf("[%s] Failed to read weather data: %v", requestID, err)
		metrics.RecordFetch("error", duration)
		return models.FailureOutcome(LoadErrorReason(url))
	}

	log.Printf("[%s] Fetched weather data with approved time %s", requestID, forecast.ApprovedTime)
	metrics.RecordFetch("success", duration)
	return models.SuccessOutcome(current)
}

func (c *SMHIClient) getWithTimeout(ctx context.Context, url string) (*models.Forecast, error) {
	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	timer := time.AfterFunc(c.timeout, cancel)

	forecast, err := c.GetForecast(reqCtx, url)

	// Stop reports false once the timer has fired, even if the body was read in time
	if !timer.Stop() {
		return nil, ErrTimeout
	}
	return forecast, err
}

// GetForecast fetches and decodes a forecast document
func (c *SMHIClient) GetForecast(ctx context.Context, url string) (*models.Forecast, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var forecast models.Forecast
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &forecast, nil
}

// TimeoutReason is the failure text shown when the timer wins the race
func TimeoutReason(timeout time.Duration) string {
	return fmt.Sprintf("Timed out after %s", timeout)
}

// LoadErrorReason is the failure text shown for network, status and parse errors
func LoadErrorReason(url string) string {
	return fmt.Sprintf("could not load: %s", url)
}
