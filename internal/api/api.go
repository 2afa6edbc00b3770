package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"stocktracker/pkg/tracker"
)

// NewRouter builds the HTTP API router.
func NewRouter(core *tracker.Core, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLoggingMiddleware(logger))
	r.Use(recoveryLoggingMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	h := &handler{core: core, logger: logger}

	r.Get("/api/health", h.health)

	// Holdings
	r.Get("/api/holdings", h.getHoldings)
	r.Get("/api/holdings/summary", h.getHoldingsSummary)
	r.Post("/api/holdings", h.addHolding)
	r.Post("/api/holdings/rebuild", h.rebuildHoldings)

	// Trade log
	r.Get("/api/trades", h.getTrades)
	r.Get("/api/trades/summary", h.getTradesSummary)
	r.Post("/api/trades", h.addTrade)

	// Transfers
	r.Post("/api/transfers", h.addTransfer)

	// Filter dropdowns
	r.Get("/api/accounts", h.getAccounts)
	r.Get("/api/symbols", h.getSymbols)

	return r
}

type handler struct {
	core   *tracker.Core
	logger *slog.Logger
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, dst any) error {
	defer func() { _, _ = io.Copy(io.Discard, r.Body) }()
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("request body is empty")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
