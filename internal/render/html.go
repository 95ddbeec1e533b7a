package render

import (
	"html/template"
	"io"

	"beatsite/internal/catalog"
	"beatsite/internal/search"
)

// NoResultsHint is shown under the "no results" message.
const NoResultsHint = "Try searching for beats, artists, or genres"

var resultsTmpl = template.Must(template.New("results").Funcs(template.FuncMap{
	"icon":   Icon,
	"detail": Detail,
}).Parse(`{{- if eq .State.String "no_results" -}}
<div class="search-no-results">
    <i class="fas fa-search" style="margin-bottom: 10px; font-size: 2rem; color: #666;"></i>
    <p>No results found for "{{ .Query }}"</p>
    <p style="font-size: 0.8rem; margin-top: 5px;">` + NoResultsHint + `</p>
</div>
{{- else -}}
{{- range .Groups }}
<div class="search-category">{{ .Label }}</div>
{{- range .Entries }}
<div class="search-result-item" data-type="{{ .Kind }}" data-title="{{ .Title }}">
    <div class="search-result-icon">
        <i class="fas {{ icon .Kind }}"></i>
    </div>
    <div class="search-result-info">
        <h4>{{ .Title }}</h4>
        <p>{{ detail . }}</p>
    </div>
</div>
{{- end }}
{{- end }}
{{- end }}
`))

// Icon returns the Font Awesome icon class for a kind.
func Icon(k catalog.Kind) string {
	switch k {
	case catalog.KindBeat:
		return "fa-music"
	case catalog.KindArtist:
		return "fa-user"
	case catalog.KindGenre:
		return "fa-tags"
	default:
		return "fa-question"
	}
}

// Detail is the secondary line of a result: the subtitle, plus " • price" when priced.
func Detail(e catalog.Entry) string {
	if e.Price == "" {
		return e.Subtitle
	}
	return e.Subtitle + " • " + e.Price
}

// HTML writes the results-container markup for r. Hide and ignore outcomes write nothing.
func HTML(w io.Writer, r search.Result) error {
	if r.State != search.StateShow && r.State != search.StateNoResults {
		return nil
	}
	return resultsTmpl.Execute(w, r)
}

