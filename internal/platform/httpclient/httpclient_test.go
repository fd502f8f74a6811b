package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewWithBaseURL_RejectsInvalid(t *testing.T) {
	if _, err := NewWithBaseURL("not a url", time.Second); err == nil {
		t.Fatalf("expected error for invalid base url")
	}

	c, err := NewWithBaseURL("http://localhost:8080/", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.BaseURL != "http://localhost:8080" {
		t.Fatalf("expected trailing slash trimmed, got %q", c.BaseURL)
	}
	if c.HTTP.Timeout != DefaultTimeout {
		t.Fatalf("expected default timeout, got %v", c.HTTP.Timeout)
	}
}

func TestDoJSON_RelativePathWithoutBaseURL(t *testing.T) {
	c := New(time.Second)
	err := c.DoJSON(context.Background(), http.MethodGet, "/health", nil, nil)
	if !errors.Is(err, ErrNoBaseURL) {
		t.Fatalf("expected ErrNoBaseURL, got %v", err)
	}
}

func TestTriggerSeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/mocks/seed" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"insertedUsers":15,"insertedPets":25,"insertedAdoptions":12,"fallback":false}`))
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := c.TriggerSeed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.InsertedUsers != 15 || res.InsertedPets != 25 || res.InsertedAdoptions != 12 || res.Fallback {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestGenerateData_SendsCounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %q", ct)
		}
		var body map[string]int
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "ok",
			"users":   body["users"],
			"pets":    body["pets"],
		})
	}))
	defer srv.Close()

	c, _ := NewWithBaseURL(srv.URL, time.Second)
	res, err := c.GenerateData(context.Background(), 3, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Users != 3 || res.Pets != 7 {
		t.Fatalf("expected 3/7, got %+v", res)
	}
}

func TestDoJSON_ParsesErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Parámetros inválidos"}`))
	}))
	defer srv.Close()

	c, _ := NewWithBaseURL(srv.URL, time.Second)
	_, err := c.GenerateData(context.Background(), -1, 0)

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", httpErr.StatusCode)
	}
	if httpErr.Message != "Parámetros inválidos" {
		t.Fatalf("expected parsed message, got %q", httpErr.Message)
	}
}

func TestDoJSON_NonJSONErrorKeepsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	c, _ := NewWithBaseURL(srv.URL, time.Second)
	err := c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil)

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPError, got %v", err)
	}
	if httpErr.Message != "" || httpErr.Body != "bad gateway" {
		t.Fatalf("unexpected error fields: %+v", httpErr)
	}
}
