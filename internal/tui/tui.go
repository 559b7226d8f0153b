package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/statistics"
)

// RoundEngine is the part of game.Engine the table needs
type RoundEngine interface {
	StartRound() (*game.Round, error)
	Hit(r *game.Round) (bool, error)
	Stand(r *game.Round) (game.Outcome, error)
	EventBus() game.EventBus
}

// Options configure a Model
type Options struct {
	// AutoDeal deals the next round this long after a round ends. Zero
	// waits for the player to ask for a new round.
	AutoDeal time.Duration
	Clock    quartz.Clock
	Tally    *statistics.Tally
}

// autoDealMsg is sent when the auto-deal timer for a round fires
type autoDealMsg struct {
	gen int
}

// Model is the Bubble Tea model for the blackjack table. It only calls
// the engine and renders what the round reports.
type Model struct {
	engine RoundEngine
	logger *log.Logger
	clock  quartz.Clock
	tally  *statistics.Tally

	round    *game.Round
	autoDeal time.Duration
	dealGen  int
	revealed bool
	lastErr  error

	keys    keyMap
	help    help.Model
	logView viewport.Model
	gameLog []string

	width    int
	height   int
	quitting bool
}

// NewModel creates the table model and subscribes it to the engine's
// round events
func NewModel(engine RoundEngine, logger *log.Logger, opts Options) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Tally == nil {
		opts.Tally = &statistics.Tally{}
	}

	vp := viewport.New(40, 8)
	vp.SetContent("")

	m := &Model{
		engine:   engine,
		logger:   logger.WithPrefix("tui"),
		clock:    opts.Clock,
		tally:    opts.Tally,
		autoDeal: opts.AutoDeal,
		keys:     defaultKeyMap(),
		help:     help.New(),
		logView:  vp,
		gameLog:  []string{},
	}

	bus := engine.EventBus()
	bus.Subscribe(m)
	bus.Subscribe(m.tally)
	return m
}

// Init deals the first round
func (m *Model) Init() tea.Cmd {
	return m.NewRound()
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case autoDealMsg:
		if msg.gen == m.dealGen && m.round != nil && m.round.IsTerminal() {
			return m, m.NewRound()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Hit):
			return m, m.Hit()
		case key.Matches(msg, m.keys.Stand):
			return m, m.Stand()
		case key.Matches(msg, m.keys.NewRound):
			if m.round == nil || m.round.IsTerminal() {
				return m, m.NewRound()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.logView, cmd = m.logView.Update(msg)
	return m, cmd
}

// NewRound starts a fresh round
func (m *Model) NewRound() tea.Cmd {
	m.dealGen++
	m.lastErr = nil

	r, err := m.engine.StartRound()
	if err != nil {
		m.fail("start round", err)
	}
	if r != nil {
		m.round = r
	}
	m.refreshKeys()
	return m.afterAction()
}

// Hit asks the engine for another card
func (m *Model) Hit() tea.Cmd {
	if m.round == nil || m.round.IsTerminal() {
		return nil
	}
	if _, err := m.engine.Hit(m.round); err != nil {
		m.fail("hit", err)
	}
	m.refreshKeys()
	return m.afterAction()
}

// Stand ends the player's turn and lets the dealer play
func (m *Model) Stand() tea.Cmd {
	if m.round == nil || m.round.IsTerminal() {
		return nil
	}
	if _, err := m.engine.Stand(m.round); err != nil {
		m.fail("stand", err)
	}
	m.refreshKeys()
	return m.afterAction()
}

func (m *Model) fail(action string, err error) {
	m.lastErr = err
	m.logger.Error("Engine error", "action", action, "error", err)
	if errors.Is(err, deck.ErrDeckExhausted) {
		m.AddLogEntry(ErrorStyle.Render("The deck ran out of cards; the round was abandoned."))
		return
	}
	m.AddLogEntry(ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
}

// afterAction schedules the next deal once the round is over
func (m *Model) afterAction() tea.Cmd {
	if m.round == nil || !m.round.IsTerminal() || m.autoDeal <= 0 {
		return nil
	}

	gen := m.dealGen
	timer := m.clock.NewTimer(m.autoDeal, "tui", "autodeal")
	return func() tea.Msg {
		<-timer.C
		return autoDealMsg{gen: gen}
	}
}

func (m *Model) refreshKeys() {
	active := m.round != nil && !m.round.IsTerminal()
	m.keys.Hit.SetEnabled(active)
	m.keys.Stand.SetEnabled(active)
	m.keys.NewRound.SetEnabled(!active)
}

// OnEvent turns engine events into game log lines
func (m *Model) OnEvent(event game.Event) {
	switch e := event.(type) {
	case game.RoundStartEvent:
		m.revealed = false
		m.AddLogEntry(InfoStyle.Render(fmt.Sprintf("── Round %s ──", shortID(e.RoundID))))
	case game.CardDealtEvent:
		m.AddLogEntry(m.formatDeal(e))
	case game.DealerRevealEvent:
		m.revealed = true
		m.AddLogEntry(fmt.Sprintf("Dealer reveals %s (total %d)", formatCard(e.Card), e.Total))
	case game.RoundEndEvent:
		m.AddLogEntry(outcomeStyle(e.Outcome).Render(e.Outcome.Message()))
	}
}

func (m *Model) formatDeal(e game.CardDealtEvent) string {
	switch {
	case e.To == game.Player:
		return fmt.Sprintf("You draw %s (total %d)", formatCard(e.Card), e.Total)
	case e.Hidden:
		return "Dealer draws a " + HiddenCardStyle.Render("hidden card")
	case m.revealed:
		return fmt.Sprintf("Dealer draws %s (total %d)", formatCard(e.Card), e.Total)
	default:
		return fmt.Sprintf("Dealer draws %s", formatCard(e.Card))
	}
}

// AddLogEntry adds an entry to the game log
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logView.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logView.Height > 0 && m.logView.Width > 0 {
		m.logView.GotoBottom()
	}
}

// GameLog returns a copy of the game log
func (m *Model) GameLog() []string {
	out := make([]string, len(m.gameLog))
	copy(out, m.gameLog)
	return out
}

// Round returns the round on the table
func (m *Model) Round() *game.Round {
	return m.round
}

// Tally returns the session statistics
func (m *Model) Tally() *statistics.Tally {
	return m.tally
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.round == nil {
		return "Dealing..."
	}

	s := m.round.Snapshot()

	hands := lipgloss.JoinHorizontal(lipgloss.Top,
		PaneStyle.Render(m.renderPlayer(s)),
		PaneStyle.Render(m.renderDealer(s)),
		PaneStyle.Render(m.renderSidebar()),
	)

	logWidth := max(lipgloss.Width(hands)-4, 20)
	logHeight := 8
	if m.height > 0 {
		logHeight = max(m.height-lipgloss.Height(hands)-8, 3)
	}
	m.logView.Width = logWidth
	m.logView.Height = logHeight
	logPane := PaneStyle.Render(m.logView.View())

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	b.WriteString("\n")
	b.WriteString(hands)
	b.WriteString("\n")
	b.WriteString(m.renderStatus(s))
	b.WriteString("\n")
	b.WriteString(logPane)
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderPlayer(s game.Snapshot) string {
	var b strings.Builder
	b.WriteString(PaneTitleStyle.Render("Player's Hand"))
	b.WriteString("\n")
	for _, c := range s.Player {
		b.WriteString(formatCard(c))
		b.WriteString("\n")
	}
	total := fmt.Sprintf("Total: %d", s.PlayerValue)
	if s.PlayerSoft && s.PlayerValue < game.Blackjack {
		total += " (soft)"
	}
	b.WriteString(TotalStyle.Render(total))
	return b.String()
}

func (m *Model) renderDealer(s game.Snapshot) string {
	var b strings.Builder
	b.WriteString(PaneTitleStyle.Render("Dealer's Hand"))
	b.WriteString("\n")
	for _, c := range s.VisibleDealer() {
		b.WriteString(formatCard(c))
		b.WriteString("\n")
	}
	if s.DealerHidden {
		b.WriteString(HiddenCardStyle.Render("Hidden Card"))
		return b.String()
	}
	b.WriteString(TotalStyle.Render(fmt.Sprintf("Total: %d", s.DealerValue)))
	return b.String()
}

func (m *Model) renderSidebar() string {
	t := m.tally
	var b strings.Builder
	b.WriteString(PaneTitleStyle.Render("Session"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Rounds: %d\n", t.Rounds)
	fmt.Fprintf(&b, "Won:    %d\n", t.PlayerWins)
	fmt.Fprintf(&b, "Lost:   %d\n", t.DealerWins)
	fmt.Fprintf(&b, "Pushed: %d", t.Pushes)
	return b.String()
}

func (m *Model) renderStatus(s game.Snapshot) string {
	if !s.Terminal {
		return InfoStyle.Render(fmt.Sprintf("Your move. %d cards left in the deck.", s.CardsRemaining))
	}

	status := outcomeStyle(s.Outcome).Render(s.Outcome.Message())
	if m.autoDeal > 0 {
		return status + InfoStyle.Render(fmt.Sprintf("  Next round in %s.", m.autoDeal))
	}
	return status + InfoStyle.Render("  Press n for a new round.")
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}
