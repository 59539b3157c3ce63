package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/strataviz/strata/pkg/cache"
	"github.com/strataviz/strata/pkg/pipeline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	c := newTestCLI()
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, c.Logger)
	t.Cleanup(func() { runner.Close() })

	srv := httptest.NewServer(c.routes(runner))
	t.Cleanup(srv.Close)
	return srv
}

func TestServeIndex(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-Id") == "" {
		t.Error("response should carry a request ID")
	}
}

func TestServeChartList(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/charts")
	if err != nil {
		t.Fatalf("GET /charts: %v", err)
	}
	defer resp.Body.Close()

	var charts []struct {
		Name    string `json:"name"`
		Stacked bool   `json:"stacked"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&charts); err != nil {
		t.Fatalf("decode chart list: %v", err)
	}

	names := map[string]bool{}
	for _, ch := range charts {
		names[ch.Name] = ch.Stacked
	}
	if stacked, ok := names["area"]; !ok || !stacked {
		t.Error("area should be listed as stacked")
	}
	if stacked, ok := names["arcs"]; !ok || stacked {
		t.Error("arcs should be listed as a static demo")
	}
}

func TestServeChart(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/chart/area.svg?offset=expand&curve=smooth")
	if err != nil {
		t.Fatalf("GET chart: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.HasPrefix(string(body), "<svg") {
		t.Error("body should be an SVG document")
	}
}

func TestServeChartErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path string
		want int
	}{
		{"/chart/sunburst.svg", http.StatusNotFound},
		{"/chart/area.svg?style=neon", http.StatusBadRequest},
		{"/chart/area.svg?offset=wiggle", http.StatusBadRequest},
	}

	for _, tt := range tests {
		resp, err := http.Get(srv.URL + tt.path)
		if err != nil {
			t.Fatalf("GET %s: %v", tt.path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.want {
			t.Errorf("GET %s status = %d, want %d", tt.path, resp.StatusCode, tt.want)
		}
	}
}
