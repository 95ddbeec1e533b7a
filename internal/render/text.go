package render

import (
	"fmt"
	"io"
	"strings"

	"beatsite/internal/catalog"
	"beatsite/internal/search"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the lipgloss styles used for terminal output.
type Palette struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Detail   lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
}

// DefaultPalette matches the site's cyan/coral colours.
func DefaultPalette() Palette {
	return Palette{
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00d4ff")).Bold(true).MarginTop(1),
		Title:    lipgloss.NewStyle().Bold(true),
		Detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("#aaaaaa")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("#0099cc")).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Italic(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#0099cc")).Padding(0, 1),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#ff5252")).Padding(0, 1),
	}
}

// PlainPalette renders without any styling, for pipes and tests.
func PlainPalette() Palette {
	s := lipgloss.NewStyle()
	return Palette{Header: s, Title: s, Detail: s, Selected: s, Muted: s, Success: s, Error: s}
}

var kindGlyph = map[catalog.Kind]string{
	catalog.KindBeat:   "♪",
	catalog.KindArtist: "@",
	catalog.KindGenre:  "#",
}

// Text renders r for a terminal. selected is the flattened index of the highlighted
// entry, or -1 for none.
func Text(r search.Result, p Palette, selected int) string {
	switch r.State {
	case search.StateHide, search.StateIgnore:
		return ""
	case search.StateNoResults:
		return p.Muted.Render(fmt.Sprintf("No results found for \"%s\"", r.Query)) + "\n" +
			p.Muted.Render(NoResultsHint)
	}

	var b strings.Builder
	i := 0
	for _, g := range r.Groups {
		b.WriteString(p.Header.Render(g.Label))
		b.WriteString("\n")
		for _, e := range g.Entries {
			cursor := "  "
			title := p.Title.Render(e.Title)
			if i == selected {
				cursor = "> "
				title = p.Selected.Render(e.Title)
			}
			fmt.Fprintf(&b, "%s%s %s  %s\n", cursor, kindGlyph[e.Kind], title, p.Detail.Render(Detail(e)))
			i++
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// WriteText writes Text(r, p, -1) followed by a newline when there is output.
func WriteText(w io.Writer, r search.Result, p Palette) error {
	out := Text(r, p, -1)
	if out == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
