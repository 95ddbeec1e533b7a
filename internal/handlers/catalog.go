package handlers

import (
	"net/http"
)

// GetCatalog returns every catalog entry in catalog order.
func (h *Handlers) GetCatalog(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=300")
	writeJSON(w, h.engine.Catalog().Entries())
}
