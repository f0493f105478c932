package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seabattle/internal/battle"
	"github.com/vovakirdan/seabattle/internal/core"
	"github.com/vovakirdan/seabattle/internal/session"
)

const logLines = 6

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	logStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	winStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	loseStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for playing one match after another.
type Model struct {
	ctx    context.Context
	setup  session.Setup
	glyphs core.Glyphs
	human  [2]bool
	names  [2]string
	bridge *bridge

	grids    [2]battle.Snapshot
	lines    []string
	queue    []tea.Msg
	ticking  bool
	awaiting bool
	cursor   battle.Coord
	status   string
	result   *battle.Result
	err      error

	input    textinput.Model
	help     help.Model
	keys     KeyMap
	width    int
	quitting bool
}

// NewModel creates the play model and its first match.
func NewModel(setup session.Setup) (Model, error) {
	return NewModelContext(context.Background(), setup)
}

// NewModelContext is like NewModel, but every match it starts is
// cancelled when ctx is done.
func NewModelContext(ctx context.Context, setup session.Setup) (Model, error) {
	ti := textinput.New()
	ti.Placeholder = "row col"
	ti.Prompt = "Your shot: "
	ti.CharLimit = 8
	ti.Width = 10

	m := Model{
		ctx:    ctx,
		setup:  setup,
		glyphs: setup.Glyphs(),
		human:  setup.Interactive(),
		input:  ti,
		help:   help.New(),
		keys:   DefaultKeyMap(),
		width:  2*core.BoardWidth + 6,
	}
	if err := m.newMatch(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m *Model) newMatch() error {
	b, err := newBridge(m.ctx, m.setup)
	if err != nil {
		return err
	}
	if m.bridge != nil {
		m.bridge.stop()
	}
	m.bridge = b
	m.names = [2]string{b.match.Combatant(battle.SideA).Name(), b.match.Combatant(battle.SideB).Name()}
	m.grids = [2]battle.Snapshot{}
	m.lines = nil
	m.queue = nil
	m.awaiting = false
	m.status = ""
	m.result = nil
	m.err = nil
	m.cursor = battle.C(0, 0)
	m.keys.Rematch.SetEnabled(false)
	return nil
}

// Init starts the match goroutine and begins listening to it.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.bridge.run(m.setup), m.bridge.wait(), textinput.Blink)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case eventMsg, awaitMsg, doneMsg:
		m.queue = append(m.queue, msg)
		var next tea.Cmd
		if _, done := msg.(doneMsg); !done {
			next = m.bridge.wait()
		}
		cmd := m.pump()
		return m, tea.Batch(next, cmd)

	case TickMsg:
		m.ticking = false
		cmd := m.pump()
		return m, cmd
	}

	if m.awaiting {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// pump applies queued messages until one asks for a pause.
func (m *Model) pump() tea.Cmd {
	var cmds []tea.Cmd
	for len(m.queue) > 0 && !m.ticking {
		msg := m.queue[0]
		m.queue = m.queue[1:]
		pause, cmd := m.apply(msg)
		cmds = append(cmds, cmd)
		if pause && m.setup.Config.Display.ShotDelay > 0 {
			m.ticking = true
			cmds = append(cmds, tickCmd(m.setup.Config.Display.ShotDelay))
		}
	}
	return tea.Batch(cmds...)
}

// apply folds one match message into the view state. It reports whether
// the next message should wait, which paces the computer's shots.
func (m *Model) apply(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case awaitMsg:
		m.awaiting = true
		return false, m.input.Focus()

	case doneMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.err = msg.err
			m.status = msg.err.Error()
		}
		m.keys.Rematch.SetEnabled(true)
		return false, nil

	case eventMsg:
		pause := false
		switch e := msg.ev.(type) {
		case battle.SetupEvent:
			m.grids = e.Grids
		case battle.ShotEvent:
			m.grids[e.Side.Other()] = e.Grid
			m.status = ""
			pause = !m.human[e.Side]
		case battle.RejectedEvent:
			if m.human[e.Side] {
				m.status = session.RejectReason(e.Err)
			}
			return false, nil
		case battle.FinishedEvent:
			m.grids = e.Grids
			m.grids[battle.SideA].Reveal = true
			m.grids[battle.SideB].Reveal = true
			res := e.Result
			m.result = &res
			m.awaiting = false
		}
		if line := session.Narrate(msg.ev, m.names); line != "" {
			m.lines = append(m.lines, line)
			if len(m.lines) > logLines {
				m.lines = m.lines[len(m.lines)-logLines:]
			}
		}
		return pause, nil
	}
	return false, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.bridge.stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case m.result != nil || m.err != nil:
		if key.Matches(msg, m.keys.Rematch) {
			if err := m.newMatch(); err != nil {
				m.status = err.Error()
				return m, nil
			}
			cmd := m.Init()
			return m, cmd
		}
		if msg.String() == "q" {
			m.quitting = true
			m.bridge.stop()
			return m, tea.Quit
		}
		return m, nil

	case !m.awaiting:
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
		return m, nil

	case key.Matches(msg, m.keys.Fire):
		return m.fire()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) moveCursor(dr, dc int) {
	n := battle.GridSize
	m.cursor = battle.C((m.cursor.Row+dr+n)%n, (m.cursor.Col+dc+n)%n)
}

// fire submits the typed target, or the cursor cell when nothing is typed.
func (m Model) fire() (tea.Model, tea.Cmd) {
	row, col := m.cursor.Row+1, m.cursor.Col+1
	if text := strings.TrimSpace(m.input.Value()); text != "" {
		var err error
		row, col, err = core.ParseTarget(text)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
	}

	m.awaiting = false
	m.status = ""
	m.input.Reset()
	m.input.Blur()
	m.bridge.submit(row, col)
	return m, nil
}

// enemy returns the side the interactive player is firing at.
func (m Model) enemy() (battle.Side, bool) {
	switch {
	case m.human[battle.SideA]:
		return battle.SideB, true
	case m.human[battle.SideB]:
		return battle.SideA, true
	}
	return battle.SideB, false
}

func (m Model) boards() *core.Screen {
	styles := [2]core.BoardStyle{
		{Glyphs: m.glyphs, Title: m.names[battle.SideA] + "'s fleet"},
		{Glyphs: m.glyphs, Title: m.names[battle.SideB] + "'s fleet"},
	}
	if side, ok := m.enemy(); ok && m.awaiting {
		cur := m.cursor
		styles[side].Cursor = &cur
	}
	return core.BoardsScreen(m.grids[battle.SideA], m.grids[battle.SideB], styles[battle.SideA], styles[battle.SideB])
}

// saveScreenshot writes the boards and commentary to a text file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}
	dir := filepath.Join(home, ".seabattle", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("seabattle_%s.txt", timestamp))
	body := m.boards().String() + "\n\n" + strings.Join(m.lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}
	m.status = "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText("SEA BATTLE", m.width)))
	b.WriteString("\n\n")
	b.WriteString(RenderScreen(m.boards()))
	b.WriteString("\n\n")

	for _, line := range m.lines {
		b.WriteString(logStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.result != nil:
		style := loseStyle
		if m.human[m.result.Winner] || (!m.human[battle.SideA] && !m.human[battle.SideB]) {
			style = winStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s wins in %d shots.", m.result.WinnerName(), m.result.Shots[m.result.Winner])))
		b.WriteString("  r: rematch, q: quit")
	case m.err != nil:
		b.WriteString(loseStyle.Render("Match aborted."))
		b.WriteString("  r: new match, q: quit")
	case m.awaiting:
		b.WriteString(m.input.View())
	default:
		b.WriteString(logStyle.Render("..."))
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Err returns the error that aborted the last match, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program on the local terminal.
func Run(setup session.Setup) error {
	model, err := NewModel(setup)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		fm.bridge.stop()
		if fm.Err() != nil {
			return fm.Err()
		}
		if fm.result == nil {
			return session.ErrQuit
		}
	}
	return nil
}
