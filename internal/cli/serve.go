package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/strataviz/strata/pkg/chart"
	apperrors "github.com/strataviz/strata/pkg/errors"
	"github.com/strataviz/strata/pkg/pipeline"
)

// serveCommand creates the serve command, which exposes the chart gallery
// over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart gallery over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Serve.Addr
			}
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the layout/artifact cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           c.routes(runner),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Serving gallery on http://localhost%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// routes builds the HTTP router.
func (c *CLI) routes(runner *pipeline.Runner) http.Handler {
	r := chi.NewRouter()
	r.Use(c.requestID)
	r.Use(c.requestLogger)

	r.Get("/", c.handleIndex)
	r.Get("/charts", c.handleCharts)
	r.Get("/chart/{name}.svg", c.handleChart(runner))

	return r
}

// requestID attaches a request ID to each response for log correlation.
func (c *CLI) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), id)))
	})
}

type requestIDKey struct{}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// requestLogger logs each request with method, path, and duration.
func (c *CLI) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		c.Logger.Debug("request",
			"id", requestIDFrom(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

// handleIndex serves a minimal HTML gallery page linking every chart.
func (c *CLI) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, "<!DOCTYPE html>\n<html><head><title>strata gallery</title></head><body>\n<h1>strata gallery</h1>\n<ul>\n")
	for _, name := range chart.Names() {
		fmt.Fprintf(w, `<li><a href="/chart/%s.svg">%s</a></li>`+"\n", name, name)
	}
	fmt.Fprint(w, "</ul>\n</body></html>\n")
}

// handleCharts serves the chart list as JSON.
func (c *CLI) handleCharts(w http.ResponseWriter, r *http.Request) {
	type chartInfo struct {
		Name    string `json:"name"`
		Stacked bool   `json:"stacked"`
	}

	charts := make([]chartInfo, 0, len(chart.Names()))
	for _, name := range chart.Names() {
		charts = append(charts, chartInfo{Name: name, Stacked: chart.IsStacked(name)})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(charts); err != nil {
		c.Logger.Error("encode chart list", "error", err)
	}
}

// handleChart renders a chart as SVG. Style, curve, offset, order, width, and
// height may be overridden via query parameters.
func (c *CLI) handleChart(runner *pipeline.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := c.Config.pipelineOptions()
		opts.Chart = chi.URLParam(r, "name")
		opts.Formats = []string{pipeline.FormatSVG}
		opts.Logger = c.Logger

		q := r.URL.Query()
		if v := q.Get("style"); v != "" {
			opts.Style = v
		}
		if v := q.Get("curve"); v != "" {
			opts.Curve = v
		}
		if v := q.Get("offset"); v != "" {
			opts.Offset = v
		}
		if v := q.Get("order"); v != "" {
			opts.Order = v
		}
		if v := q.Get("width"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				opts.Width = n
			}
		}
		if v := q.Get("height"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				opts.Height = n
			}
		}

		result, err := runner.Execute(r.Context(), sampleData(), opts)
		if err != nil {
			c.writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		if _, err := w.Write(result.Artifacts[pipeline.FormatSVG]); err != nil {
			c.Logger.Error("write chart response", "error", err)
		}
	}
}

// writeError maps pipeline errors to HTTP status codes and writes a JSON
// error body.
func (c *CLI) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.Is(err, apperrors.ErrCodeChartNotFound):
		status = http.StatusNotFound
	case apperrors.Is(err, apperrors.ErrCodeInvalidConfig),
		apperrors.Is(err, apperrors.ErrCodeInvalidStyle),
		apperrors.Is(err, apperrors.ErrCodeInvalidCurve),
		apperrors.Is(err, apperrors.ErrCodeInvalidOffset),
		apperrors.Is(err, apperrors.ErrCodeInvalidOrder),
		apperrors.Is(err, apperrors.ErrCodeInvalidFormat):
		status = http.StatusBadRequest
	}

	c.Logger.Warn("request failed",
		"id", requestIDFrom(r.Context()),
		"path", r.URL.Path,
		"status", status,
		"error", err,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": apperrors.UserMessage(err)})
}
