// Package tui is the terminal front end of the game.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rustyeddy/stockgame/game"
	"github.com/rustyeddy/stockgame/ledger"
)

// Model is the bubbletea model. It holds no game state of its own beyond
// the last snapshot; every trade and tick goes through the session.
type Model struct {
	session  *game.Session
	interval time.Duration

	snap     game.Snapshot
	selected int
	quantity int64
	status   string

	width  int
	height int
}

func NewModel(session *game.Session, interval time.Duration) *Model {
	return &Model{
		session:  session,
		interval: interval,
		snap:     session.Snapshot(),
		quantity: 1,
		status:   "Welcome. Select a stock and press b to buy.",
	}
}

// tickMsg fires once per market tick.
type tickMsg time.Time

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.snap.Quotes)-1 {
				m.selected++
			}
		case "+", "=", "right":
			m.quantity++
		case "-", "left":
			if m.quantity > 1 {
				m.quantity--
			}
		case "b":
			m.trade(ledger.SideBuy)
		case "s":
			m.trade(ledger.SideSell)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if err := m.session.Tick(); err != nil {
			m.status = err.Error()
		}
		m.snap = m.session.Snapshot()
		return m, m.tick()
	}

	return m, nil
}

func (m *Model) trade(side ledger.Side) {
	sym, ok := m.Selected()
	if !ok {
		return
	}
	fill, err := m.session.Place(game.Order{Side: side, Symbol: sym, Quantity: m.quantity})
	m.status = game.Describe(fill, err)
	m.snap = m.session.Snapshot()
}

// Selected returns the symbol under the cursor.
func (m *Model) Selected() (string, bool) {
	if m.selected < 0 || m.selected >= len(m.snap.Quotes) {
		return "", false
	}
	return m.snap.Quotes[m.selected].Symbol, true
}

func (m *Model) Quantity() int64 { return m.quantity }
func (m *Model) Status() string  { return m.status }

func (m *Model) View() string {
	tables := lipgloss.JoinHorizontal(lipgloss.Top,
		PanelStyle.Render(MarketTable(m.snap, m.selected)),
		PanelStyle.Render(PortfolioTable(m.snap)),
	)

	qty := LabelStyle.Render("Quantity ") + InfoStyle.Render(fmt.Sprintf("%d", m.quantity))
	if sym, ok := m.Selected(); ok {
		qty += LabelStyle.Render("  of ") + InfoStyle.Render(sym)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		tables,
		" "+InfoLine(m.snap),
		" "+qty,
		StatusBarStyle.Render(m.status),
		m.renderHelp(),
	)
}

func (m *Model) renderHelp() string {
	keys := []struct{ key, desc string }{
		{"↑↓", "select"},
		{"+/-", "quantity"},
		{"b", "buy"},
		{"s", "sell"},
		{"q", "quit"},
	}
	var out string
	for i, k := range keys {
		if i > 0 {
			out += StatusBarDescStyle.Render(" │ ")
		}
		out += StatusBarKeyStyle.Render(k.key) + StatusBarDescStyle.Render(" "+k.desc)
	}
	return StatusBarStyle.Render(out)
}
