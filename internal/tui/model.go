package tui

import (
	"strings"
	"time"

	"beatsite/internal/catalog"
	"beatsite/internal/notify"
	"beatsite/internal/page"
	"beatsite/internal/render"
	"beatsite/internal/schedule"
	"beatsite/internal/search"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	eventBuffer = 32
	placeholder = "Search beats, artists, genres..."
)

// refreshMsg asks for a redraw after a toast appeared or expired.
type refreshMsg struct{}

// scrollMsg carries the anchor the page scrolled to.
type scrollMsg string

// Option configures a Model.
type Option func(*Model)

// WithScheduler replaces the wall-clock scheduler.
func WithScheduler(s schedule.Scheduler) Option {
	return func(m *Model) { m.sched = s }
}

// WithPalette replaces the default colours.
func WithPalette(p render.Palette) Option {
	return func(m *Model) { m.palette = p }
}

// WithRecorder receives every submitted query.
func WithRecorder(r page.QueryRecorder) Option {
	return func(m *Model) { m.recorder = r }
}

// WithToastTTL changes how long toasts stay up.
func WithToastTTL(d time.Duration) Option {
	return func(m *Model) { m.toastTTL = d }
}

// Model is the Bubble Tea model of the search box.
type Model struct {
	engine   *search.Engine
	sched    schedule.Scheduler
	recorder page.QueryRecorder
	palette  render.Palette
	toastTTL time.Duration

	ctrl   *page.Controller
	center *notify.Center
	events chan tea.Msg

	input    textinput.Model
	keys     keyMap
	help     help.Model
	selected int
	anchor   string
}

// New builds a model searching engine's catalog.
func New(engine *search.Engine, opts ...Option) *Model {
	m := &Model{
		engine:   engine,
		sched:    schedule.Real(),
		palette:  render.DefaultPalette(),
		toastTTL: notify.DefaultTTL,
		keys:     newKeyMap(),
		help:     help.New(),
		events:   make(chan tea.Msg, eventBuffer),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.input = textinput.New()
	m.input.Placeholder = placeholder
	m.input.Prompt = "> "
	m.input.Focus()

	m.center = notify.NewCenter(m.sched,
		notify.WithTTL(m.toastTTL),
		notify.WithOnChange(func(notify.Notification, bool) { m.send(refreshMsg{}) }),
	)
	m.ctrl = page.New(page.Options{
		Engine:    engine,
		Notifier:  m.center,
		Scheduler: m.sched,
		Navigator: page.NavigatorFunc(func(anchor string) { m.send(scrollMsg(anchor)) }),
		Recorder:  m.recorder,
	})
	return m
}

// send never blocks; a dropped refresh is covered by the next keystroke.
func (m *Model) send(msg tea.Msg) {
	select {
	case m.events <- msg:
	default:
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForEvent())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 0)
		return m, nil
	case refreshMsg:
		return m, m.waitForEvent()
	case scrollMsg:
		m.anchor = string(msg)
		return m, m.waitForEvent()
	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case key.Matches(msg, m.keys.down):
		if m.selected < m.visible()-1 {
			m.selected++
		}
		return m, nil
	case key.Matches(msg, m.keys.enter):
		m.activate()
		return m, nil
	case key.Matches(msg, m.keys.close):
		m.ctrl.ClickOutside()
		return m, nil
	case key.Matches(msg, m.keys.buy):
		m.press(m.ctrl.Buy)
		return m, nil
	case key.Matches(msg, m.keys.preview):
		m.press(m.ctrl.Preview)
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.ctrl.Input(v)
		m.selected = 0
	}
	return m, cmd
}

// visible is the number of selectable results on screen.
func (m *Model) visible() int {
	st := m.ctrl.Snapshot()
	if !st.ResultsVisible {
		return 0
	}
	return st.Result.Total()
}

// activate selects the highlighted result, or submits the query when there is none.
func (m *Model) activate() {
	if m.visible() > 0 {
		if _, err := m.ctrl.Select(m.selected); err == nil {
			m.input.SetValue(m.ctrl.Snapshot().Query)
			m.input.CursorEnd()
			m.selected = 0
			return
		}
	}
	m.ctrl.Submit()
}

func (m *Model) press(fn func(title string) error) {
	title, ok := m.currentBeat()
	if !ok {
		return
	}
	_ = fn(title) // ErrBusy leaves the running press alone
}

// currentBeat is the highlighted beat, or the beat whose title is in the search box.
func (m *Model) currentBeat() (string, bool) {
	st := m.ctrl.Snapshot()
	if st.ResultsVisible {
		entries := st.Result.Entries()
		if m.selected < len(entries) && entries[m.selected].Kind == catalog.KindBeat {
			return entries[m.selected].Title, true
		}
	}
	e, ok := m.engine.Catalog().Lookup(catalog.KindBeat, strings.TrimSpace(st.Query))
	return e.Title, ok
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.palette.Header.Render("BeatSite"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	st := m.ctrl.Snapshot()
	if st.ResultsVisible {
		if out := render.Text(st.Result, m.palette, m.selected); out != "" {
			b.WriteString(out)
			b.WriteString("\n")
		}
	}

	if n, ok := m.center.Current(); ok {
		style := m.palette.Success
		if n.Level == notify.Error {
			style = m.palette.Error
		}
		b.WriteString("\n")
		b.WriteString(style.Render(n.Message))
		b.WriteString("\n")
	}
	if m.anchor != "" {
		b.WriteString(m.palette.Muted.Render("viewing " + m.anchor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
