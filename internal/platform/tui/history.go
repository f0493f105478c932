package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seabattle/internal/battle"
	"github.com/vovakirdan/seabattle/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the win totals sidebar
	sidebarWidth       = 24  // Width of the win totals sidebar
	maxMatches         = 100 // Max matches to load
)

// HistorySource is the read side of the match store.
type HistorySource interface {
	RecentMatches(limit int) ([]storage.MatchRecord, error)
	WinTotals() ([]storage.WinTotal, error)
}

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Reload, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Reload, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing recorded matches.
type HistoryModel struct {
	source      HistorySource
	matches     []storage.MatchRecord
	totals      []storage.WinTotal
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewHistoryModel creates a history browser sized to the terminal.
func NewHistoryModel(source HistorySource, width, height int) HistoryModel {
	m := HistoryModel{
		source:      source,
		keys:        DefaultHistoryKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Players", Width: 22},
		{Title: "Winner", Width: 12},
		{Title: "Shots", Width: 7},
		{Title: "Acc.", Width: 6},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	// Let the players column absorb any spare width.
	if extra := tableWidth - 69; extra > 0 {
		columns[1].Width += min(extra, 18)
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *HistoryModel) load() {
	m.matches, m.totals, m.loadErr = nil, nil, nil
	if m.source != nil {
		if m.matches, m.loadErr = m.source.RecentMatches(maxMatches); m.loadErr == nil {
			m.totals, m.loadErr = m.source.WinTotals()
		}
	}
	m.updateTableRows()
}

func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.matches))
	for i, r := range m.matches {
		rows[i] = HistoryRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// HistoryRow formats a recorded match as table cells: date, players,
// winner, winner's shots and winner's accuracy.
func HistoryRow(r storage.MatchRecord) table.Row {
	shots := r.ShotsA
	if r.WinnerSide == battle.SideB.String() {
		shots = r.ShotsB
	}
	return table.Row{
		r.CreatedAt.Local().Format("Jan 02 15:04"),
		r.PlayerA + " vs " + r.PlayerB,
		r.Winner,
		fmt.Sprintf("%d", shots),
		fmt.Sprintf("%.0f%%", 100*r.Accuracy()),
	}
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Reload):
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	b.WriteString(title.Render(centerText(fmt.Sprintf("MATCH HISTORY (%d)", len(m.matches)), m.width)))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableView := box.Render(m.renderTableContent())

	if m.showSidebar {
		sidebar := box.Width(sidebarWidth).Render(m.renderTotals())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableView, "  ", sidebar))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableView))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m HistoryModel) renderTotals() string {
	var b strings.Builder
	b.WriteString("Wins\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")
	for _, t := range m.totals {
		name := t.Name
		if maxLen := sidebarWidth - 12; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		fmt.Fprintf(&b, "%-*s %3d/%-3d\n", sidebarWidth-12, name, t.Wins, t.Played)
	}
	return b.String()
}

func (m HistoryModel) renderTableContent() string {
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	switch {
	case m.loadErr != nil:
		return empty.Render("Could not read the history:\n" + m.loadErr.Error())
	case len(m.matches) == 0:
		return empty.Render("No matches recorded yet.\nFinish a game to start the log!")
	}
	return m.table.View()
}

// RunHistory runs the history browser on the local terminal.
func RunHistory(source HistorySource, width, height int) error {
	p := tea.NewProgram(NewHistoryModel(source, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
