package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroid-board/internal/asset"
	"github.com/tomz197/asteroid-board/internal/board/config"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg, err := config.New(asset.Default())
	if err != nil {
		t.Fatalf("config.New: %v", err)
	}
	srv := httptest.NewServer(newMux(cfg, log.New(io.Discard)))
	t.Cleanup(srv.Close)
	return srv
}

func TestTextReport(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Expected text/plain content type, got %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "KEY_INACTIVITY_TIMEOUT") {
		t.Errorf("Expected report to list KEY_INACTIVITY_TIMEOUT, got:\n%s", body)
	}
}

func TestJSONReport(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/config.json")
	if err != nil {
		t.Fatalf("GET /config.json: %v", err)
	}
	defer resp.Body.Close()

	var got struct {
		Tuning map[string]int `json:"tuning"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Tuning["UPDATE_RATE"] != config.UpdateRate {
		t.Errorf("Expected UPDATE_RATE %d, got %d", config.UpdateRate, got.Tuning["UPDATE_RATE"])
	}
}

func TestUnknownPath(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/missing")
	if err != nil {
		t.Fatalf("GET /missing: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}
