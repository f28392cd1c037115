package prediction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPredictV1SendsFeatureVector(t *testing.T) {
	var got v1Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" {
			t.Errorf("path = %q, want /predict", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"predicted_class": "Medium"})
	}))
	defer srv.Close()

	c := NewHTTPClient(Config{BaseURL: srv.URL, APIVersion: 1})
	result, err := c.Predict(context.Background(), Features{
		Age: 30, BMI: 22.5, RestingBPM: 65, WorkoutFrequency: 4,
	})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}

	want := []float64{30, 22.5, 65, 4}
	if len(got.Features) != 4 {
		t.Fatalf("features = %v, want 4 entries", got.Features)
	}
	for i, f := range want {
		if got.Features[i] != f {
			t.Errorf("features[%d] = %v, want %v", i, got.Features[i], f)
		}
	}
	if result.Label() != "Medium" {
		t.Errorf("label = %q, want Medium", result.Label())
	}
}

func TestPredictV2SendsNamedFields(t *testing.T) {
	var got v2Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"difficultyLevel": "high",
			"confidenceScore": 0.92,
			"recommendation":  "hard",
			"healthScore":     71.5,
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(Config{BaseURL: srv.URL, APIVersion: 2})
	result, err := c.Predict(context.Background(), Features{
		Age: 45, BMI: 27.1, RestingBPM: 80, WorkoutFrequency: 2,
	})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if got.Age != 45 || got.WorkoutFrequency != 2 {
		t.Errorf("request = %+v", got)
	}
	if result.Label() != "high" {
		t.Errorf("label = %q, want high", result.Label())
	}
}

func TestPredictNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHTTPClient(Config{BaseURL: srv.URL})
	_, err := c.Predict(context.Background(), Features{})

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("error = %v, want *ServiceError", err)
	}
	if svcErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", svcErr.StatusCode)
	}
}

func TestPredictMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewHTTPClient(Config{BaseURL: srv.URL})
	_, err := c.Predict(context.Background(), Features{})

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("error = %v, want *ServiceError", err)
	}
}

func TestPredictMissingLabel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"healthScore": 50})
	}))
	defer srv.Close()

	c := NewHTTPClient(Config{BaseURL: srv.URL})
	_, err := c.Predict(context.Background(), Features{})
	if err == nil {
		t.Fatal("expected error for label-free response")
	}
}

func TestHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "StepSync API is running"})
	}))
	defer srv.Close()

	c := NewHTTPClient(Config{BaseURL: srv.URL})
	if !c.Healthy(context.Background()) {
		t.Error("expected healthy")
	}
}

func TestHealthyWrongBanner(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "maintenance"})
	}))
	defer srv.Close()

	c := NewHTTPClient(Config{BaseURL: srv.URL})
	if c.Healthy(context.Background()) {
		t.Error("expected unhealthy on wrong banner")
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"easy", "easy", true},
		{"MEDIUM", "medium", true},
		{"Hard", "hard", true},
		{"low", "easy", true},
		{"moderate", "medium", true},
		{"high", "hard", true},
		{"1", "easy", true},
		{"2", "medium", true},
		{"3", "hard", true},
		{" hard ", "hard", true},
		{"extreme", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseLabel(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseLabel(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && string(got) != tt.want {
			t.Errorf("ParseLabel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
