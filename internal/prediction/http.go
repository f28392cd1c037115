package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultBaseURL is the hosted StepSync prediction API.
const DefaultBaseURL = "https://stepsync-api-v2-production.up.railway.app"

// statusBanner is the body the status probe expects from GET /.
const statusBanner = "StepSync API is running"

// Config holds prediction client configuration.
type Config struct {
	BaseURL string

	// APIVersion selects the request schema: 1 sends the feature
	// vector form, 2 the named-field form. Default: 1.
	APIVersion int

	// Timeout bounds a single request so the prediction step can never
	// block recommendations indefinitely. Default: 10s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:    DefaultBaseURL,
		APIVersion: 1,
		Timeout:    10 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if u := os.Getenv("STEPSYNC_PREDICT_URL"); u != "" {
		cfg.BaseURL = u
	}
	if v := os.Getenv("STEPSYNC_PREDICT_API_VERSION"); v == "2" {
		cfg.APIVersion = 2
	}
	return cfg
}

// HTTPClient is the production Client over the REST API.
type HTTPClient struct {
	baseURL    string
	apiVersion int
	client     *http.Client
}

// NewHTTPClient creates an HTTPClient from configuration.
func NewHTTPClient(cfg Config) *HTTPClient {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	version := cfg.APIVersion
	if version == 0 {
		version = 1
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(base, "/"),
		apiVersion: version,
		client:     &http.Client{Timeout: timeout},
	}
}

// v1Request is the original schema: a positional feature vector.
type v1Request struct {
	Features []float64 `json:"features"`
}

// v2Request is the alternate named-field schema.
type v2Request struct {
	Age              int     `json:"age"`
	BMI              float64 `json:"bmi"`
	RestingBPM       int     `json:"restingBPM"`
	WorkoutFrequency int     `json:"workout_frequency"`
}

func (c *HTTPClient) Predict(ctx context.Context, f Features) (Result, error) {
	var payload any
	if c.apiVersion == 2 {
		payload = v2Request{
			Age:              f.Age,
			BMI:              f.BMI,
			RestingBPM:       f.RestingBPM,
			WorkoutFrequency: f.WorkoutFrequency,
		}
	} else {
		payload = v1Request{
			Features: []float64{
				float64(f.Age),
				f.BMI,
				float64(f.RestingBPM),
				float64(f.WorkoutFrequency),
			},
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, &ServiceError{Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return Result{}, &ServiceError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, &ServiceError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, &ServiceError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("non-success status"),
		}
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, &ServiceError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if result.Label() == "" {
		return Result{}, &ServiceError{Err: fmt.Errorf("response carries no class label")}
	}

	return result, nil
}

func (c *HTTPClient) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	var status struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return false
	}
	return status.Message == statusBanner
}
