package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"beatsite/internal/notify"
	"beatsite/internal/page"
)

// =============================================================================
// Contact Tests
// =============================================================================

func TestContact(t *testing.T) {
	t.Parallel()

	h := newTestHandlers(t)

	tests := []struct {
		name            string
		form            page.ContactForm
		expectedStatus  int
		expectedLevel   notify.Level
		expectedMessage string
		expectedDelay   int64
	}{
		{
			name:            "Complete form",
			form:            page.ContactForm{Name: "Ann", Email: "ann@example.com", Message: "Custom beat?"},
			expectedStatus:  http.StatusAccepted,
			expectedLevel:   notify.Success,
			expectedMessage: page.MsgMessageSent,
			expectedDelay:   2000,
		},
		{
			name:            "Missing email",
			form:            page.ContactForm{Name: "Ann", Message: "Hi"},
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedLevel:   notify.Error,
			expectedMessage: page.MsgFillAllFields,
		},
		{
			name:            "Whitespace only name is accepted",
			form:            page.ContactForm{Name: "   ", Email: "ann@example.com", Message: "Hi"},
			expectedStatus:  http.StatusAccepted,
			expectedLevel:   notify.Success,
			expectedMessage: page.MsgMessageSent,
			expectedDelay:   2000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := jsonRequest(t, http.MethodPost, "/api/contact", tt.form)
			w := httptest.NewRecorder()

			h.Contact(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var resp DeferredNotification
			decodeBody(t, w, &resp)

			if resp.Notification.Level != tt.expectedLevel {
				t.Errorf("Expected level %q, got %q", tt.expectedLevel, resp.Notification.Level)
			}
			if resp.Notification.Message != tt.expectedMessage {
				t.Errorf("Expected message %q, got %q", tt.expectedMessage, resp.Notification.Message)
			}
			if resp.DelayMillis != tt.expectedDelay {
				t.Errorf("Expected delay %dms, got %d", tt.expectedDelay, resp.DelayMillis)
			}
		})
	}
}

func TestContactInvalidBody(t *testing.T) {
	t.Parallel()

	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{"))
	w := httptest.NewRecorder()

	h.Contact(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestContactBodyTooLarge(t *testing.T) {
	t.Parallel()

	h := newTestHandlers(t)

	body := `{"name":"` + strings.Repeat("a", maxBodyBytes+1) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Contact(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for oversized body, got %d", w.Code)
	}
}

// =============================================================================
// Buy / Preview Tests
// =============================================================================

func TestCheckout(t *testing.T) {
	t.Parallel()

	h := newTestHandlers(t)

	tests := []struct {
		name            string
		handler         http.HandlerFunc
		title           string
		expectedStatus  int
		expectedMessage string
	}{
		{"Buy beat", h.Buy, "R&B Vibes", http.StatusAccepted, page.MsgPurchaseSuccess},
		{"Preview beat", h.Preview, "Chill Lo-Fi Beat", http.StatusAccepted, page.MsgPreviewStarted},
		{"Buy unknown beat", h.Buy, "Polka Beat", http.StatusNotFound, ""},
		{"Preview an artist", h.Preview, "SoulBeats", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := jsonRequest(t, http.MethodPost, "/api/beats", CheckoutRequest{Title: tt.title})
			w := httptest.NewRecorder()

			tt.handler(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedMessage == "" {
				return
			}

			var resp DeferredNotification
			decodeBody(t, w, &resp)

			if resp.Notification.Message != tt.expectedMessage {
				t.Errorf("Expected message %q, got %q", tt.expectedMessage, resp.Notification.Message)
			}
			if resp.DelayMillis != page.ProcessingDelay.Milliseconds() {
				t.Errorf("Expected delay %d, got %d", page.ProcessingDelay.Milliseconds(), resp.DelayMillis)
			}
			if !resp.Notification.CreatedAt.Equal(fixedNow.Add(page.ProcessingDelay)) {
				t.Errorf("Expected toast to start after the processing delay, got %v", resp.Notification.CreatedAt)
			}
		})
	}
}
