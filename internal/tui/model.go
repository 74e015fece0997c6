// Package tui renders the portfolio hero in a terminal: the particle field,
// the custom cursor and the project counter.
package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"bavatarinee.dev/internal/field"
	"bavatarinee.dev/internal/models"
	"bavatarinee.dev/internal/reveal"
	"bavatarinee.dev/internal/services"
)

// footerRows are reserved below the field for the counter, cards and help.
const footerRows = 3

var (
	cursorColor   = colorful.Hsl(135, 0.35, 0.75)
	followerColor = colorful.Hsl(90, 0.3, 0.55)

	counterStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a8c3a0"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6f7d6b"))
	cardStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#d6e2d2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#c98b7a"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

// Syncer refreshes the project grid
type Syncer interface {
	Sync(ctx context.Context) (models.ProjectList, error)
}

// Options configures the terminal model
type Options struct {
	Field      field.Options
	Syncer     Syncer // nil disables syncing
	CursorEase float64
	Spring     bool // drive the follower with a spring instead of linear easing
}

type frameMsg time.Time

type syncedMsg struct {
	state models.ProjectList
	err   error
}

type revealedMsg []string

// Model is the bubbletea model of the terminal hero
type Model struct {
	ctx      context.Context
	canvas   *field.TermCanvas
	renderer *field.Renderer
	follower *field.Follower
	tracker  *reveal.Tracker
	syncer   Syncer
	interval time.Duration
	now      func() time.Time

	state    models.ProjectList
	syncing  bool
	syncedAt time.Time
	width    int
	quitting bool
}

// New creates a model. The field starts at the configured size and follows
// the terminal once the first WindowSizeMsg arrives.
func New(ctx context.Context, opts Options) Model {
	canvas := field.NewTermCanvas(80, 24-footerRows)
	fo := opts.Field
	fo.Width, fo.Height = canvas.PixelSize()
	if fo.FrameInterval <= 0 {
		fo.FrameInterval = field.DefaultFrameInterval
	}

	follower := field.NewFollower(opts.CursorEase)
	if opts.Spring {
		follower = field.NewSpringFollower(int(time.Second/fo.FrameInterval), 6.0, 0.5)
	}

	return Model{
		ctx:      ctx,
		canvas:   canvas,
		renderer: field.NewRenderer(canvas, fo),
		follower: follower,
		tracker:  reveal.NewTracker(reveal.FallbackDelay),
		syncer:   opts.Syncer,
		interval: fo.FrameInterval,
		now:      time.Now,
		syncing:  opts.Syncer != nil,
		width:    80,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tick()}
	if m.syncer != nil {
		cmds = append(cmds, m.sync())
	}
	return tea.Batch(cmds...)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m Model) sync() tea.Cmd {
	return func() tea.Msg {
		state, err := m.syncer.Sync(m.ctx)
		return syncedMsg{state: state, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "s":
			if m.syncer != nil && !m.syncing {
				m.syncing = true
				return m, m.sync()
			}
		}
		return m, nil

	case tea.MouseMsg:
		x := (float64(msg.X) + 0.5) * m.canvas.CellWidth
		y := (float64(msg.Y) + 0.5) * m.canvas.CellHeight
		m.follower.MoveTo(x, y)
		return m, nil

	case frameMsg:
		m.renderer.Frame()
		m.drawCursor()
		m.revealDue()
		return m, m.tick()

	case syncedMsg:
		m.syncing = false
		m.state = msg.state
		m.syncedAt = m.now()
		ids := make([]string, len(m.state.Projects))
		for i, p := range m.state.Projects {
			ids[i] = p.ID
		}
		m.tracker.Observe(ids...)
		return m, m.fallback()

	case revealedMsg:
		return m, nil
	}

	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.canvas.SetGrid(width, max(height-footerRows, 1))
	m.renderer.Resize(m.canvas.PixelSize())
}

// fallback reveals any card still hidden once the fallback delay passes.
func (m Model) fallback() tea.Cmd {
	ch := m.tracker.StartFallback(m.ctx)
	return func() tea.Msg {
		return revealedMsg(<-ch)
	}
}

// revealDue reveals cards whose stagger delay has elapsed since the sync.
func (m Model) revealDue() {
	if m.syncedAt.IsZero() {
		return
	}
	elapsed := m.now().Sub(m.syncedAt)
	for i, p := range m.state.Projects {
		if elapsed >= reveal.Stagger(0, i) {
			m.tracker.MarkVisible(p.ID)
		}
	}
}

func (m Model) drawCursor() {
	fx, fy := m.follower.Step()
	m.canvas.Set(m.canvas.CellAt(fx, fy), "○", followerColor)
	m.canvas.Set(m.canvas.CellAt(m.follower.PointerX, m.follower.PointerY), "●", cursorColor)
}

// Counter returns the hero counter text at the current time.
func (m Model) Counter() string {
	if !m.state.Synced {
		return "0"
	}
	target := strconv.Itoa(m.state.Count)
	return reveal.CountUp(target, reveal.Progress(m.now().Sub(m.syncedAt)))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.canvas.View())
	b.WriteByte('\n')

	status := m.state.Status
	if m.syncing {
		status = services.StatusPending
	}
	b.WriteString(counterStyle.Render(m.Counter()+" projects") + "  " + statusStyle.Render(status))
	b.WriteByte('\n')

	line := lipgloss.NewStyle().MaxWidth(m.width)
	switch {
	case m.state.Failed:
		b.WriteString(line.Render(errorStyle.Render("Could not load live GitHub data right now. " + m.state.ProfileURL)))
	default:
		var titles []string
		for _, p := range m.state.Projects {
			if m.tracker.Visible(p.ID) {
				titles = append(titles, p.Number+" "+p.Title)
			}
		}
		b.WriteString(line.Render(cardStyle.Render(strings.Join(titles, " · "))))
	}
	b.WriteByte('\n')

	help := "q quit"
	if m.syncer != nil {
		help += " · s sync"
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}
