package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	t.Parallel()

	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	w := httptest.NewRecorder()

	h.Index(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)

	for _, anchor := range []string{"#buy", "#team", "#stream", "#contact"} {
		assert.Equal(t, 1, doc.Find(anchor).Length(), "section %s", anchor)
	}

	assert.Equal(t, 6, doc.Find("#buy .beat-card").Length())
	assert.Equal(t, 3, doc.Find("#team .team-member").Length())
	assert.Equal(t, 4, doc.Find("#stream .music-card").Length())

	first := doc.Find("#buy .beat-card").First()
	title, ok := first.Attr("data-title")
	assert.True(t, ok)
	assert.Equal(t, "Hip Hop Beat #1", title)
	assert.Equal(t, "DJ MixMaster • $29.99", first.Find("p").Text())

	assert.Equal(t, 1, doc.Find("input.search-input").Length())
	assert.Equal(t, 1, doc.Find(".search-results").Length())

	assert.Equal(t, 4, doc.Find("#stream .music-card .play-btn .fa-play").Length())
	assert.Equal(t, 4, doc.Find("#stream .music-card .control-btn .fa-heart").Length())
	assert.Equal(t, 6, doc.Find("#home .music-wave .wave-bar").Length())
}

func TestStatic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path           string
		expectedStatus int
	}{
		{"/static/app.js", http.StatusOK},
		{"/static/style.css", http.StatusOK},
		{"/static/missing.js", http.StatusNotFound},
	}

	handler := Static()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

// The page script drives the markup above and consumes the JSON bodies of the
// API, including the limiter's 429.
func TestStaticScriptHooks(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	Static().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/app.js", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	script := w.Body.String()

	for _, hook := range []string{
		"new AbortController()",
		"mine !== seq || input.value !== query",
		"if (!n) {",
		"body && body.notification",
		"IntersectionObserver",
		"'scrolled'",
		"'.play-btn'",
		"'.control-btn'",
		"'.wave-bar'",
	} {
		assert.Contains(t, script, hook)
	}

	w = httptest.NewRecorder()
	Static().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/style.css", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	for _, rule := range []string{".reveal.revealed", ".navbar.scrolled", ".play-btn.playing", ".control-btn.liked", ".wave-bar"} {
		assert.Contains(t, w.Body.String(), rule)
	}
}
