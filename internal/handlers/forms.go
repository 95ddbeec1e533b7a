package handlers

import (
	"net/http"

	"beatsite/internal/catalog"
	"beatsite/internal/metrics"
	"beatsite/internal/notify"
	"beatsite/internal/page"
)

// DeferredNotification is a toast the page shows once DelayMillis has elapsed.
type DeferredNotification struct {
	Notification notify.Notification `json:"notification"`
	DelayMillis  int64               `json:"delayMs"`
}

// CheckoutRequest names the beat whose button was pressed.
type CheckoutRequest struct {
	Title string `json:"title"`
}

// Contact answers POST /api/contact. Nothing is sent anywhere; the response tells the
// page which toast to show and when.
func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	var form page.ContactForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !form.Complete() {
		metrics.ContactSubmissionsTotal.WithLabelValues("invalid").Inc()
		metrics.NotificationsShown.WithLabelValues(string(notify.Error)).Inc()
		writeJSONStatusCode(w, DeferredNotification{
			Notification: notify.New(page.MsgFillAllFields, notify.Error, h.now()),
		}, http.StatusUnprocessableEntity)
		return
	}

	metrics.ContactSubmissionsTotal.WithLabelValues("accepted").Inc()
	metrics.NotificationsShown.WithLabelValues(string(notify.Success)).Inc()
	writeJSONStatusCode(w, h.deferred(page.MsgMessageSent), http.StatusAccepted)
}

// Buy answers POST /api/beats/buy.
func (h *Handlers) Buy(w http.ResponseWriter, r *http.Request) {
	h.checkout(w, r, "buy", page.MsgPurchaseSuccess)
}

// Preview answers POST /api/beats/preview.
func (h *Handlers) Preview(w http.ResponseWriter, r *http.Request) {
	h.checkout(w, r, "preview", page.MsgPreviewStarted)
}

func (h *Handlers) checkout(w http.ResponseWriter, r *http.Request, action, message string) {
	var req CheckoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if _, ok := h.engine.Catalog().Lookup(catalog.KindBeat, req.Title); !ok {
		writeJSONError(w, "Beat not found", http.StatusNotFound)
		return
	}

	metrics.CheckoutRequestsTotal.WithLabelValues(action).Inc()
	metrics.NotificationsShown.WithLabelValues(string(notify.Success)).Inc()
	writeJSONStatusCode(w, h.deferred(message), http.StatusAccepted)
}

func (h *Handlers) deferred(message string) DeferredNotification {
	now := h.now()
	n := notify.New(message, notify.Success, now.Add(page.ProcessingDelay))
	return DeferredNotification{Notification: n, DelayMillis: page.ProcessingDelay.Milliseconds()}
}
