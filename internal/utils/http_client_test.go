package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://localhost", time.Second)
	client2 := NewHTTPClient("http://localhost", time.Second)

	if client1.Client == client2.Client {
		t.Fatal("expected independent *resty.Client instances")
	}
}

func TestNewHTTPClient_Settings(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", 3*time.Second)

	if client.BaseURL != "http://localhost:8080" {
		t.Errorf("expected base url to be set, got %q", client.BaseURL)
	}
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", client.GetClient().Timeout)
	}
}

func TestNewHTTPClient_SendsTraceID(t *testing.T) {
	var traceID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = r.Header.Get(TraceIDHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	if _, err := client.R().Get("/"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if traceID == "" {
		t.Fatal("expected trace id header to be sent")
	}
}

func TestNewHTTPClient_KeepsExplicitTraceID(t *testing.T) {
	var traceID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = r.Header.Get(TraceIDHeader)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	if _, err := client.R().SetHeader(TraceIDHeader, "fixed").Get("/"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if traceID != "fixed" {
		t.Errorf("expected 'fixed', got %q", traceID)
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()

	a, b := g.Generate(), g.Generate()

	if a == "" || a == b {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", a, b)
	}
}
