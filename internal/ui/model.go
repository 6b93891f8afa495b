package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/climp-meter/internal/player"
	"github.com/olivier-w/climp-meter/internal/source"
	"github.com/olivier-w/climp-meter/internal/util"
	"github.com/olivier-w/climp-meter/meter"
)

// Config carries the demo's command-line settings.
type Config struct {
	Source   string // "sweep" or "bounce"
	FPS      int
	Hold     time.Duration
	Stereo   bool // playback: render two channels even for mono files
	NoLabels bool
	NoScale  bool
}

// Model is the Bubbletea model for the meter demo. It runs in one of two
// modes: a synthetic showcase driving several meters from a level source,
// or playback of a local file with the outgoing PCM metered live.
type Model struct {
	cfg      Config
	src      source.Source  // showcase level source (nil during playback)
	player   *player.Player // nil during the showcase
	track    player.TrackInfo
	progress progress.Model
	state    *meter.State

	levels      [source.Lanes]float64 // latest dB per lane (showcase)
	left, right float64               // latest peak amplitudes (playback)
	channels    int
	elapsed     time.Duration
	duration    time.Duration
	paused      bool
	width       int
	height      int
	quitting    bool

	labels bool
	scale  bool
	frame  bool
}

// NewShowcase creates a Model that animates meters from a synthetic source.
func NewShowcase(cfg Config) Model {
	if cfg.FPS < 1 {
		cfg.FPS = 30
	}
	m := Model{
		cfg:    cfg,
		src:    newSource(cfg),
		state:  newHoldState(cfg),
		labels: !cfg.NoLabels,
		scale:  !cfg.NoScale,
		frame:  true,
	}
	for i := range m.levels {
		m.levels[i] = meter.MinDB
	}
	return m
}

// NewPlayback creates a Model that meters p while it plays.
func NewPlayback(p *player.Player, track player.TrackInfo, cfg Config) Model {
	if cfg.FPS < 1 {
		cfg.FPS = 30
	}
	channels := p.Channels()
	if cfg.Stereo {
		channels = 2
	}
	return Model{
		cfg:      cfg,
		player:   p,
		track:    track,
		progress: newProgressBar(),
		state:    newHoldState(cfg),
		channels: channels,
		duration: p.Duration(),
		labels:   !cfg.NoLabels,
		scale:    !cfg.NoScale,
		frame:    true,
	}
}

func newSource(cfg Config) source.Source {
	if cfg.Source == "bounce" {
		return source.NewBounce(cfg.FPS)
	}
	return source.NewSweep()
}

func newHoldState(cfg Config) *meter.State {
	st := meter.NewState()
	if cfg.Hold > 0 {
		st.HoldTime = cfg.Hold
	}
	return st
}

func newProgressBar() progress.Model {
	return progress.New(
		progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
		progress.WithoutPercentage(),
	)
}

func (m Model) Init() tea.Cmd {
	if m.player != nil {
		return tea.Batch(
			tickCmd(m.cfg.FPS),
			checkDone(m.player),
			tea.SetWindowTitle(windowTitle(m.track.Title, false)),
		)
	}
	return tickCmd(m.cfg.FPS)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handleMsg(msg)
	return next, cmd
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if m.player != nil {
			m.left, m.right = m.player.Levels()
			m.elapsed = m.player.Position()
			m.paused = m.player.Paused()
		} else {
			m.levels = m.src.Step()
		}
		return m, tickCmd(m.cfg.FPS)

	case playbackEndedMsg:
		m.elapsed = m.duration
		return m.quit()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := msg.Width - 8
		if barWidth < 20 {
			barWidth = 20
		}
		if barWidth > 60 {
			barWidth = 60
		}
		m.progress.Width = barWidth
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if isQuit(msg) {
		return m.quit()
	}
	switch msg.String() {
	case " ":
		if m.player != nil {
			m.paused = m.player.TogglePause()
			return m, tea.SetWindowTitle(windowTitle(m.track.Title, m.paused))
		}
	case "l":
		m.labels = !m.labels
	case "s":
		m.scale = !m.scale
	case "b":
		m.frame = !m.frame
	case "v":
		if m.player == nil {
			if _, ok := m.src.(*source.Bounce); ok {
				m.src = source.NewSweep()
			} else {
				m.src = source.NewBounce(m.cfg.FPS)
			}
		}
	}
	return m, nil
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	if m.player != nil {
		m.player.Close()
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}
	return m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w := m.width
	if w < 30 {
		w = 68
	}
	if m.player != nil {
		return m.playbackView(w)
	}
	return m.showcaseView(w)
}

// showcaseView renders the gallery: a mono meter, a bare bar with just the
// ruler, a stereo pair and a mono meter that holds its peaks.
func (m Model) showcaseView(w int) string {
	mw := meterWidth(w)

	input := meter.Mono().
		DB(m.levels[0]).
		ShowLabels(m.labels).
		ShowScale(m.scale)
	bare := meter.Mono().
		DB(m.levels[1]).
		ShowLabels(false).
		ShowScale(m.scale)
	output := meter.Stereo().
		DB(m.levels[2], m.levels[3]).
		ShowLabels(m.labels).
		ShowScale(m.scale)
	held := meter.Mono().
		DB(m.levels[0]).
		ShowLabels(m.labels).
		ShowScale(m.scale)
	if m.frame {
		input = input.WithFrame(meter.NewFrame().WithTitle("input"))
		output = output.WithFrame(meter.NewFrame().WithTitle("output"))
		held = held.WithFrame(meter.NewFrame().WithTitle("held peaks"))
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(headerStyle.Render("climp-meter"))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(m.src.Name()))
	b.WriteString("\n\n")
	b.WriteString(indentBlock(input.View(mw, nil), "  "))
	b.WriteString("\n\n")
	b.WriteString(indentBlock(bare.View(mw, nil), "  "))
	b.WriteString("\n\n")
	b.WriteString(indentBlock(output.View(mw, nil), "  "))
	b.WriteString("\n\n")
	b.WriteString(indentBlock(held.View(mw, m.state), "  "))
	b.WriteString("\n\n  ")
	b.WriteString(helpStyle.Render(helpText(false)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) playbackView(w int) string {
	mw := meterWidth(w)

	mtr := meter.Mono()
	if m.channels == 2 {
		mtr = meter.Stereo()
	}
	mtr = mtr.
		Amplitude(m.left, m.right).
		ShowLabels(m.labels).
		ShowScale(m.scale)
	if m.frame {
		mtr = mtr.WithFrame(meter.NewFrame().WithTitle("levels"))
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(headerStyle.Render("climp-meter"))
	b.WriteString("\n\n  ")
	b.WriteString(titleStyle.Render(m.track.Title))
	b.WriteString("\n")
	if m.track.Artist != "" {
		b.WriteString("  ")
		b.WriteString(artistStyle.Render(m.track.Artist))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(indentBlock(mtr.View(mw, m.state), "  "))
	b.WriteString("\n\n")

	var pct float64
	if m.duration > 0 {
		pct = m.elapsed.Seconds() / m.duration.Seconds()
	}
	if pct > 1 {
		pct = 1
	}
	b.WriteString("  ")
	b.WriteString(timeStyle.Render(util.FormatDuration(m.elapsed)))
	b.WriteString(" ")
	b.WriteString(m.progress.ViewAs(pct))
	b.WriteString(" ")
	b.WriteString(timeStyle.Render(util.FormatDuration(m.duration)))
	b.WriteString("\n\n  ")

	statusIcon, statusText := "▶", "playing"
	if m.paused {
		statusIcon, statusText = "❚❚", "paused"
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("%s  %s", statusIcon, statusText)))
	b.WriteString("\n\n  ")
	b.WriteString(helpStyle.Render(helpText(true)))
	b.WriteString("\n")
	return b.String()
}

// meterWidth fits the meters inside the window with a two-cell margin.
func meterWidth(w int) int {
	mw := w - 4
	if mw < 24 {
		mw = 24
	}
	if mw > 76 {
		mw = 76
	}
	return mw
}

func windowTitle(title string, paused bool) string {
	if paused {
		return "⏸ " + title + " — meterdemo"
	}
	return "▶ " + title + " — meterdemo"
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
