package search

import (
	"fmt"
	"time"

	"beatsite/internal/catalog"
)

// ScrollDelay is how long after the notification the page scrolls to the action's target.
const ScrollDelay = time.Second

// Scroll anchors on the landing page.
const (
	AnchorBuy    = "#buy"
	AnchorTeam   = "#team"
	AnchorStream = "#stream"
)

// ActionType tags what selecting a result does.
type ActionType string

const (
	OpenBeat    ActionType = "open_beat"
	ViewArtist  ActionType = "view_artist"
	BrowseGenre ActionType = "browse_genre"
)

// Action is the instruction a host applies when a result is selected: show Message
// as a success notification, then scroll to Target after ScrollDelay.
type Action struct {
	Type        ActionType    `json:"type"`
	Kind        catalog.Kind  `json:"kind"`
	Title       string        `json:"title"`
	Message     string        `json:"message"`
	Target      string        `json:"target"`
	ScrollDelay time.Duration `json:"-"`
	DelayMillis int64         `json:"scrollDelayMs"`
}

// Activate maps a selected entry to its action. The entry is expected to come from a
// prior Search result.
func Activate(entry catalog.Entry) Action {
	a := Action{
		Kind:        entry.Kind,
		Title:       entry.Title,
		ScrollDelay: ScrollDelay,
		DelayMillis: ScrollDelay.Milliseconds(),
	}
	switch entry.Kind {
	case catalog.KindBeat:
		a.Type = OpenBeat
		a.Message = fmt.Sprintf("Opening \"%s\"...", entry.Title)
		a.Target = AnchorBuy
	case catalog.KindArtist:
		a.Type = ViewArtist
		a.Message = fmt.Sprintf("Viewing %s's profile...", entry.Title)
		a.Target = AnchorTeam
	case catalog.KindGenre:
		a.Type = BrowseGenre
		a.Message = fmt.Sprintf("Browsing %s beats...", entry.Title)
		a.Target = AnchorStream
	}
	return a
}
