package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	statusStyle = lipgloss.NewStyle().Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	inputStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(maxNameLength + 2)

	cellStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Width(3).Align(lipgloss.Center)
	cursorStyle  = cellStyle.BorderForeground(lipgloss.Color("212")).Reverse(true)
	winningStyle = cellStyle.BorderForeground(lipgloss.Color("42")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	markStyles   = map[entity.Mark]lipgloss.Style{
		entity.PlayerX: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		entity.PlayerO: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tic-Tac-Toe"))
	b.WriteString("\n")

	if m.match.Status() == tictactoe.StatusNotStarted {
		b.WriteString(m.namesView())
		b.WriteString(helpStyle.Render("tab switch player • enter start • esc quit"))
		return b.String()
	}

	b.WriteString(statusStyle.Render(tictactoe.Announce(m.match)))
	b.WriteString("\n")
	b.WriteString(m.gridView())
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	if m.match.IsOver() {
		b.WriteString(helpStyle.Render("n rematch • r new players • q quit"))
	} else {
		b.WriteString(helpStyle.Render("arrows/hjkl move • enter place • 1-9 place directly • q quit"))
	}

	return b.String()
}

func (m Model) namesView() string {
	labels := [2]string{"Player 1 (X)", "Player 2 (O)"}
	defaults := [2]string{m.defaults.First, m.defaults.Second}

	var b strings.Builder
	for i, label := range labels {
		value := m.names[i]
		if i == m.focus {
			label = focusStyle.Render("> " + label)
			value += "_"
		} else {
			label = "  " + label
		}

		if strings.TrimSpace(m.names[i]) == "" && i != m.focus {
			value = hintStyle.Render(defaults[i])
		}

		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, fmt.Sprintf("%-16s", label), inputStyle.Render(value)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) gridView() string {
	board := m.match.Board()
	winning := winningCells(board)

	rows := make([]string, 0, gridWidth)
	for row := 0; row < gridWidth; row++ {
		cells := make([]string, 0, gridWidth)
		for col := 0; col < gridWidth; col++ {
			index := row*gridWidth + col
			cells = append(cells, m.cellView(board, index, winning[index]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) cellView(board *entity.Board, index int, winning bool) string {
	mark, _ := board.Cell(index)

	text := hintStyle.Render(strconv.Itoa(index + 1))
	if style, ok := markStyles[mark]; ok {
		text = style.Render(string(mark))
	}

	switch {
	case winning:
		return winningStyle.Render(text)
	case index == m.cursor && m.match.IsInProgress():
		return cursorStyle.Render(text)
	default:
		return cellStyle.Render(text)
	}
}

func winningCells(board *entity.Board) [entity.BoardSize]bool {
	var cells [entity.BoardSize]bool

	winner := board.Winner()
	if winner == entity.EmptyCell {
		return cells
	}

	for _, combo := range entity.WinCombos {
		if board[combo[0]] == winner && board[combo[1]] == winner && board[combo[2]] == winner {
			for _, index := range combo {
				cells[index] = true
			}
		}
	}

	return cells
}
