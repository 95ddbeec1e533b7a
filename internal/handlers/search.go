package handlers

import (
	"net/http"
	"strings"

	"beatsite/internal/catalog"
	"beatsite/internal/logging"
	"beatsite/internal/metrics"
	"beatsite/internal/notify"
	"beatsite/internal/page"
	"beatsite/internal/render"
	"beatsite/internal/search"
)

// ActivateRequest identifies a selected search result.
type ActivateRequest struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
}

// ActivateResponse tells the page what to do for a selected result.
type ActivateResponse struct {
	Action       search.Action       `json:"action"`
	Notification notify.Notification `json:"notification"`
}

// SubmitRequest is the search form submission.
type SubmitRequest struct {
	Query string `json:"query"`
}

func (h *Handlers) runSearch(r *http.Request) search.Result {
	result := h.engine.Search(r.URL.Query().Get("q"))

	metrics.SearchQueriesTotal.WithLabelValues(result.State.String()).Inc()
	if result.State == search.StateShow || result.State == search.StateNoResults {
		metrics.SearchResultsReturned.Observe(float64(result.Total()))
	}
	return result
}

// Search answers GET /api/search?q= with the grouped result as JSON.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	result := h.runSearch(r)
	if result.Groups == nil {
		result.Groups = []search.Group{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, result)
}

// SearchFragment answers GET /api/search/html?q= with the results-container markup.
// Hide and ignore outcomes return 204 with an X-Search-State header so the page
// knows whether to hide the container or leave it alone.
func (h *Handlers) SearchFragment(w http.ResponseWriter, r *http.Request) {
	result := h.runSearch(r)
	w.Header().Set("X-Search-State", result.State.String())
	w.Header().Set("Cache-Control", "no-store")

	if result.State == search.StateHide || result.State == search.StateIgnore {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.HTML(w, result); err != nil {
		logging.Error("failed to render search results: %v", err)
	}
}

// Activate answers POST /api/search/activate for a selected result.
func (h *Handlers) Activate(w http.ResponseWriter, r *http.Request) {
	var req ActivateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	kind, err := catalog.ParseKind(req.Kind)
	if err != nil {
		writeJSONError(w, "Unknown result type", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeJSONError(w, "Title is required", http.StatusBadRequest)
		return
	}

	entry, ok := h.engine.Catalog().Lookup(kind, req.Title)
	if !ok {
		writeJSONError(w, "Result not found", http.StatusNotFound)
		return
	}

	action := search.Activate(entry)
	metrics.SearchActivationsTotal.WithLabelValues(kind.String()).Inc()
	metrics.NotificationsShown.WithLabelValues(string(notify.Success)).Inc()

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, ActivateResponse{
		Action:       action,
		Notification: notify.New(action.Message, notify.Success, h.now()),
	})
}

// Submit answers POST /api/search/submit. A blank query is a no-op (204).
func (h *Handlers) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	q := strings.TrimSpace(req.Query)
	if q == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if h.trending != nil {
		h.trending.Record(search.Normalize(q))
	}
	metrics.SearchSubmitsTotal.Inc()
	metrics.NotificationsShown.WithLabelValues(string(notify.Success)).Inc()

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, notify.New(page.SearchingMessage(q), notify.Success, h.now()))
}

// Trending answers GET /api/search/trending?limit= with the most submitted queries.
func (h *Handlers) Trending(w http.ResponseWriter, r *http.Request) {
	limit := positiveIntParam(r, "limit", 5)

	w.Header().Set("Content-Type", "application/json")
	if h.trending == nil {
		writeJSON(w, []struct{}{})
		return
	}
	writeJSON(w, h.trending.Top(limit))
}
