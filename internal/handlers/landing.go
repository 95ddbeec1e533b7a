package handlers

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"beatsite/internal/catalog"
	"beatsite/internal/logging"
	"beatsite/internal/render"
	"beatsite/internal/startup"
)

//go:embed web
var webFS embed.FS

var landingTmpl = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"detail": render.Detail,
	"icon":   render.Icon,
}).ParseFS(webFS, "web/index.html"))

type landingData struct {
	Version string
	Beats   []catalog.Entry
	Artists []catalog.Entry
	Genres  []catalog.Entry
}

// Index renders the landing page with the catalog's beats, artists and genres.
func (h *Handlers) Index(w http.ResponseWriter, _ *http.Request) {
	data := landingData{Version: startup.Version}
	h.engine.Catalog().Each(func(e catalog.Entry) {
		switch e.Kind {
		case catalog.KindBeat:
			data.Beats = append(data.Beats, e)
		case catalog.KindArtist:
			data.Artists = append(data.Artists, e)
		case catalog.KindGenre:
			data.Genres = append(data.Genres, e)
		}
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := landingTmpl.Execute(w, data); err != nil {
		logging.Error("failed to render landing page: %v", err)
	}
}

// Static serves the embedded script and stylesheet under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(webFS, "web/static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
