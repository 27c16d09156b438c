// Package httpapi is the thin HTTP collaborator the rollstat core expects:
// request parsing, the batch-size cap, and response framing, with every
// question of numerics or data structures delegated to the registry and
// the Aggregators it owns. No router dependency is used, following the
// plain net/http precedent set by the logiface-slog examples in the
// broader joeycumines package family.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/joeycumines/logiface"
	islog "github.com/joeycumines/logiface-slog"

	"github.com/joeycumines/go-rollstat/internal/registry"
)

// MaxBatchValues is the largest batch AddBatch will accept in one request;
// the Aggregator core itself imposes no such limit.
const MaxBatchValues = 10_000

// Handler serves the add_batch and stats endpoints against a Registry.
type Handler struct {
	Registry *registry.Registry
	Logger   *logiface.Logger[*islog.Event] // nil is a safe, silent default
}

type addBatchRequest struct {
	Symbol string    `json:"symbol"`
	Values []float64 `json:"values"`
}

type statsResponse struct {
	Min  jsonFloat `json:"min"`
	Max  jsonFloat `json:"max"`
	Last jsonFloat `json:"last"`
	Avg  jsonFloat `json:"avg"`
	Var  jsonFloat `json:"var"`
}

// AddBatch handles POST /add_batch: {"symbol": "...", "values": [...]}.
func (h *Handler) AddBatch(w http.ResponseWriter, r *http.Request) {
	var req addBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errInvalidRequest("malformed request body"))
		return
	}
	if req.Symbol == "" {
		writeError(w, errInvalidRequest("symbol is required"))
		return
	}
	if len(req.Values) > MaxBatchValues {
		writeError(w, errTooManyValues())
		return
	}

	h.Logger.Info().
		Str("symbol", req.Symbol).
		Int("count", len(req.Values)).
		Log("add_batch")

	h.Registry.AddBatch(req.Symbol, req.Values)

	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

// Stats handles GET /stats?symbol=...&k=....
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		writeError(w, errInvalidRequest("symbol is required"))
		return
	}
	k, err := parseLevel(r.URL.Query().Get("k"))
	if err != nil {
		writeError(w, errInvalidRequest("k must be a positive integer"))
		return
	}

	h.Logger.Info().
		Str("symbol", symbol).
		Int("k", k).
		Log("get_stats")

	stats, ok := h.Registry.GetStats(symbol, k)
	if !ok {
		h.Logger.Warning().Str("symbol", symbol).Log("symbol not found or insufficient data")
		writeError(w, errSymbolNotFound(symbol))
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Min:  jsonFloat(stats.Min),
		Max:  jsonFloat(stats.Max),
		Last: jsonFloat(stats.Last),
		Avg:  jsonFloat(stats.Avg),
		Var:  jsonFloat(stats.Var),
	})
}

func parseLevel(s string) (int, error) {
	if s == "" {
		return 0, errInvalidRequest("k is required")
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, errInvalidRequest("k must be a positive integer")
		}
		n = n*10 + int(c-'0')
	}
	if n == 0 {
		return 0, errInvalidRequest("k must be a positive integer")
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err *apiError) {
	writeJSON(w, err.status, map[string]string{"error": err.Error()})
}
