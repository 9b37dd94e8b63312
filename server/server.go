// Package server exposes the reports over HTTP as a small JSON API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/stalking-stocks/stalker"
)

// requestTimeout bounds one report build, scrapes included.
const requestTimeout = 30 * time.Second

// Server routes report requests to a market provider.
type Server struct {
	log    *slog.Logger
	market stalker.MarketProvider
	router chi.Router
}

// New assembles the router. Handlers only see the provider interfaces,
// so tests run against a stub market.
func New(log *slog.Logger, market stalker.MarketProvider) *Server {
	s := &Server{log: log, market: market}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/sectors", s.handleSectors)
	r.Get("/api/sectors/{key}", s.handleSector)
	r.Get("/api/sectors/{key}/{industry}", s.handleIndustry)
	r.Get("/api/tickers/{symbol}", s.handleTicker)
	r.Get("/api/tickers/{symbol}/history", s.handleHistory)
	r.Get("/api/movers", s.handleMovers)

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, cfg *Config) error {
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("api server starting", slog.String("addr", cfg.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	s.log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

type errorResponse struct {
	Error string `json:"error"`
}

type sectorRow struct {
	Key  stalker.SectorKey `json:"key"`
	Name string            `json:"name"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSectors(w http.ResponseWriter, r *http.Request) {
	keys := stalker.AllSectors()
	rows := make([]sectorRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, sectorRow{Key: k, Name: k.Name()})
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleSector(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	key, err := stalker.ParseSectorKey(chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	report, err := stalker.NewSectorReport(ctx, s.market, key)
	if err != nil {
		s.fail(w, "sector report", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleIndustry(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	key, err := stalker.ParseSectorKey(chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	report, err := stalker.NewIndustryReport(ctx, s.market, key, chi.URLParam(r, "industry"))
	if err != nil {
		s.fail(w, "industry report", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleTicker(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	symbol, horizon, interval, err := listingParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	report, err := stalker.NewTickerReport(ctx, s.market, symbol, horizon, interval)
	if err != nil {
		s.fail(w, "ticker report", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	symbol, horizon, interval, err := listingParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	report, err := stalker.NewHistoryReport(ctx, s.market, symbol, horizon, interval, nil)
	if err != nil {
		s.fail(w, "history report", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleMovers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	count := clampInt(r.URL.Query().Get("count"), 5, 25)
	report, err := stalker.NewMoversReport(ctx, s.market, count)
	if err != nil {
		s.fail(w, "movers report", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// listingParams reads the symbol path segment and the horizon/interval
// query parameters, validating that the combination is one the chart
// source accepts.
func listingParams(r *http.Request) (stalker.Symbol, stalker.Horizon, stalker.Interval, error) {
	symbol, err := stalker.ParseSymbol(chi.URLParam(r, "symbol"))
	if err != nil {
		return "", "", "", err
	}

	horizon := stalker.Horizon1Y
	if raw := r.URL.Query().Get("horizon"); raw != "" {
		if horizon, err = stalker.ParseHorizon(raw); err != nil {
			return "", "", "", err
		}
	}

	interval := horizon.DefaultInterval()
	if raw := r.URL.Query().Get("interval"); raw != "" {
		if interval, err = stalker.ParseInterval(raw); err != nil {
			return "", "", "", err
		}
	}
	if err := horizon.Validate(interval); err != nil {
		return "", "", "", err
	}
	return symbol, horizon, interval, nil
}

// fail maps a report error to its HTTP status and logs the server-side ones.
func (s *Server) fail(w http.ResponseWriter, what string, err error) {
	if errors.Is(err, stalker.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	s.log.Error(what, slog.Any("err", err))
	writeError(w, http.StatusInternalServerError, err)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// nothing better to do
	}
}

func clampInt(raw string, fallback, max int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	if value <= 0 {
		return fallback
	}
	if value > max {
		return max
	}
	return value
}
