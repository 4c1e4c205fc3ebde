// Package transport exposes the HTTP control API and gRPC health of the sync engine.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/service/syncer"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// SyncHandler serves on-demand passes and stored histories.
type SyncHandler struct {
	runner   Runner
	state    StateReader
	accounts AccountLookup
	health   *Health
	logger   *zap.Logger
}

func NewSyncHandler(runner Runner, state StateReader, accounts AccountLookup, health *Health, logger *zap.Logger) (*SyncHandler, error) {
	switch {
	case runner == nil:
		return nil, errors.New("sync runner is required")
	case state == nil:
		return nil, errors.New("state reader is required")
	case accounts == nil:
		return nil, errors.New("account lookup is required")
	case health == nil:
		return nil, errors.New("health is required")
	}
	return &SyncHandler{
		runner:   runner,
		state:    state,
		accounts: accounts,
		health:   health,
		logger:   logger.Named("http"),
	}, nil
}

// Handler returns the routed API wrapped in CORS.
func (h *SyncHandler) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/sync", h.sync)
	mux.HandleFunc("GET /v1/accounts/{id}/transactions", h.transactions)
	mux.HandleFunc("GET /healthz", h.healthz)
	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(mux)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *SyncHandler) sync(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("account")
	// A started pass runs to completion even if the client goes away.
	report, err := h.runner.Run(context.WithoutCancel(r.Context()), accountID)
	switch {
	case errors.Is(err, syncer.ErrUnknownAccount):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case err != nil:
		h.logger.Warn("on-demand sync failed", zap.String("account", accountID), zap.Error(err))
		h.writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
	case report.Skipped:
		h.writeJSON(w, http.StatusConflict, report)
	default:
		h.writeJSON(w, http.StatusOK, report)
	}
}

type transactionsResponse struct {
	AccountID    string              `json:"accountId"`
	Transactions []model.Transaction `json:"transactions"`
}

// transactions returns the stored history, oldest first. ?limit=N keeps the newest N.
func (h *SyncHandler) transactions(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.accounts.Account(id); !ok {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown account " + id})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	state, err := h.state.Get(r.Context())
	if err != nil {
		h.logger.Error("read sync state failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "state unavailable"})
		return
	}
	txs := state.Transactions[id]
	if limit > 0 && len(txs) > limit {
		txs = txs[len(txs)-limit:]
	}
	if txs == nil {
		txs = []model.Transaction{}
	}
	h.writeJSON(w, http.StatusOK, transactionsResponse{AccountID: id, Transactions: txs})
}

func (h *SyncHandler) healthz(w http.ResponseWriter, _ *http.Request) {
	if h.health.Serving() {
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "serving"})
		return
	}
	h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not_serving"})
}

func (h *SyncHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Debug("write response failed", zap.Error(err))
	}
}
