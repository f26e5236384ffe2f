package terminal

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

const (
	maxNameLength = 20
	gridWidth     = 3
	centerCell    = 4

	noticeCellTaken = "That cell is already taken"
)

// Model is a hot-seat match rendered in the terminal. Both players share the
// keyboard and take turns on the same grid.
type Model struct {
	logger *slog.Logger
	match  *tictactoe.Match

	names    [2]string
	defaults tictactoe.Names
	focus    int

	cursor int
	notice string
}

func New(logger *slog.Logger, firstDefault, secondDefault string) Model {
	return Model{
		logger:   logger.With("component", "terminal"),
		match:    tictactoe.NewMatch(),
		defaults: tictactoe.Names{First: firstDefault, Second: secondDefault},
		cursor:   centerCell,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.match.Status() {
	case tictactoe.StatusNotStarted:
		return m.updateNames(keyMsg)
	case tictactoe.StatusInProgress:
		return m.updatePlaying(keyMsg)
	case tictactoe.StatusOver:
		return m.updateOver(keyMsg)
	}

	return m, nil
}

func (m Model) updateNames(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		m.focus = 1 - m.focus
	case tea.KeyEnter:
		m.start()
	case tea.KeyBackspace, tea.KeyCtrlH:
		name := []rune(m.names[m.focus])
		if len(name) > 0 {
			m.names[m.focus] = string(name[:len(name)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		name := []rune(m.names[m.focus])
		for _, r := range msg.Runes {
			if len(name) >= maxNameLength {
				break
			}
			name = append(name, r)
		}
		m.names[m.focus] = string(name)
	}

	return m, nil
}

func (m Model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor >= gridWidth {
			m.cursor -= gridWidth
		}
	case "down", "j":
		if m.cursor < entity.BoardSize-gridWidth {
			m.cursor += gridWidth
		}
	case "left", "h":
		if m.cursor%gridWidth > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor%gridWidth < gridWidth-1 {
			m.cursor++
		}
	case "enter", " ":
		m.play(m.cursor)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.cursor = int(key[0] - '1')
		m.play(m.cursor)
	}

	return m, nil
}

func (m Model) updateOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "n":
		players := m.match.Players()
		m.match.StartWithNames(players[0].Name, players[1].Name, m.defaults)
		m.cursor = centerCell
		m.logger.Info("rematch started")
	case "r":
		m.match = tictactoe.NewMatch()
		m.focus = 0
		m.notice = ""
	}

	return m, nil
}

func (m *Model) start() {
	m.match.StartWithNames(m.names[0], m.names[1], m.defaults)
	m.cursor = centerCell
	m.notice = ""

	players := m.match.Players()
	m.logger.Info("match started", "first", players[0].Name, "second", players[1].Name)
}

func (m *Model) play(cell int) {
	placed, err := m.match.PlayTurn(cell)
	if err != nil {
		m.logger.Error("failed to play turn", "cell", cell, "error", err)
		m.notice = err.Error()
		return
	}

	if !placed {
		m.notice = noticeCellTaken
		return
	}

	m.notice = ""
	m.logger.Debug("move applied", "cell", cell)

	if m.match.IsOver() {
		m.logger.Info("match finished", "result", tictactoe.Announce(m.match))
	}
}
