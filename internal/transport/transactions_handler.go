// Package transport exposes the HTTP query API.
package transport

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
	"go.uber.org/zap"
)

const dayLayout = "2006-01-02"

// TransactionsHandler serves GET /transactions.
type TransactionsHandler struct {
	querier TransactionQuerier
	logger  *zap.Logger
}

func NewTransactionsHandler(querier TransactionQuerier, logger *zap.Logger) *TransactionsHandler {
	return &TransactionsHandler{querier: querier, logger: logger}
}

type transactionResponse struct {
	Cluster     string          `json:"cluster"`
	Signature   string          `json:"signature"`
	Slot        uint64          `json:"slot"`
	TxIndex     uint32          `json:"tx_index"`
	BlockHash   string          `json:"block_hash"`
	BlockTime   time.Time       `json:"block_time"`
	Day         string          `json:"day"`
	Transaction json.RawMessage `json:"transaction"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newTransactionResponse(tx model.Transaction) transactionResponse {
	payload := json.RawMessage(tx.Payload)
	if !json.Valid(payload) {
		payload = json.RawMessage("null")
	}
	return transactionResponse{
		Cluster:     string(tx.Cluster),
		Signature:   tx.Signature,
		Slot:        tx.Slot,
		TxIndex:     tx.TxIndex,
		BlockHash:   tx.BlockHash,
		BlockTime:   tx.BlockTime.UTC(),
		Day:         tx.Day.UTC().Format(dayLayout),
		Transaction: payload,
	}
}

// ServeHTTP answers either ?day=YYYY-MM-DD with the transactions of that UTC date, or
// ?id=<signature> with a single transaction. Exactly one of the two must be given.
func (h *TransactionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	day, id := q.Get("day"), q.Get("id")
	switch {
	case day != "" && id != "":
		h.writeError(w, http.StatusBadRequest, "specify either day or id, not both")
	case day != "":
		h.byDay(w, r, day)
	case id != "":
		h.byID(w, r, id)
	default:
		h.writeError(w, http.StatusBadRequest, "day or id query parameter is required")
	}
}

func (h *TransactionsHandler) byDay(w http.ResponseWriter, r *http.Request, raw string) {
	day, err := time.Parse(dayLayout, raw)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "day must be formatted as YYYY-MM-DD")
		return
	}
	txs, err := h.querier.TransactionsByDay(r.Context(), day)
	if err != nil {
		h.logger.Error("transactions by day failed", zap.String("day", raw), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	out := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, newTransactionResponse(tx))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *TransactionsHandler) byID(w http.ResponseWriter, r *http.Request, id string) {
	tx, ok, err := h.querier.TransactionByID(r.Context(), id)
	if err != nil {
		h.logger.Error("transaction by id failed", zap.String("id", id), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		h.writeError(w, http.StatusNotFound, "transaction not found")
		return
	}
	h.writeJSON(w, http.StatusOK, newTransactionResponse(tx))
}

func (h *TransactionsHandler) writeError(w http.ResponseWriter, code int, msg string) {
	h.writeJSON(w, code, errorResponse{Error: msg})
}

func (h *TransactionsHandler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response failed", zap.Error(err))
	}
}
