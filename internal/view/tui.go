package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chatreplay/chatreplay/internal/display"
	"github.com/chatreplay/chatreplay/internal/transcript"
)

// Styles
var (
	listPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	detailPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("255"))
)

// model is the Bubble Tea model for the transcript viewer
type model struct {
	tr           *transcript.Transcript
	sourceName   string
	cursor       int
	listOffset   int
	detailOffset int
	width        int
	height       int
	quitting     bool
}

// NewModel creates a new viewer model over a canonical transcript
func NewModel(tr *transcript.Transcript, sourceName string) tea.Model {
	return model{tr: tr, sourceName: sourceName}
}

// Init implements tea.Model
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		// Navigation
		case "j", "down":
			if m.cursor < len(m.tr.Turns)-1 {
				m.cursor++
				m.detailOffset = 0
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
				m.detailOffset = 0
			}
		case "g", "home":
			m.cursor = 0
			m.detailOffset = 0
		case "G", "end":
			m.cursor = len(m.tr.Turns) - 1
			m.detailOffset = 0

		// Detail pane scrolling
		case "J", "shift+down":
			m.detailOffset++
		case "K", "shift+up":
			if m.detailOffset > 0 {
				m.detailOffset--
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	if m.cursor >= len(m.tr.Turns) {
		m.cursor = max(0, len(m.tr.Turns)-1)
	}
	m.adjustListScroll()

	return m, nil
}

// View implements tea.Model
func (m model) View() string {
	if m.quitting {
		return ""
	}

	if len(m.tr.Turns) == 0 {
		return "No turns to display\n"
	}

	// Wait for terminal dimensions
	if m.width < 20 || m.height < 10 {
		return "Loading..."
	}

	// Leave room for status bar (1 line) and borders (2 lines each panel)
	contentHeight := max(m.height-3, 5)
	listWidth := max(m.width*2/5, 10)
	detailWidth := max(m.width-listWidth-1, 10)

	listPanel := m.renderList(max(listWidth-2, 5), max(contentHeight-2, 3))
	detailPanel := m.renderDetail(max(detailWidth-2, 5), max(contentHeight-2, 3))

	listPanel = listPanelStyle.
		Width(max(listWidth-2, 5)).
		Height(max(contentHeight-2, 3)).
		Render(listPanel)

	detailPanel = detailPanelStyle.
		Width(max(detailWidth-2, 5)).
		Height(max(contentHeight-2, 3)).
		Render(detailPanel)

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

// renderList renders the turn list panel
func (m model) renderList(width, height int) string {
	var lines []string

	visibleStart := m.listOffset
	visibleEnd := min(m.listOffset+height, len(m.tr.Turns))

	for i := visibleStart; i < visibleEnd; i++ {
		line := m.renderTurnLine(m.tr.Turns[i], width, i == m.cursor)
		lines = append(lines, line)
	}

	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// renderTurnLine renders a single turn list line
func (m model) renderTurnLine(turn transcript.Turn, width int, selected bool) string {
	symbol := display.GetRoleSymbol(turn.Role)
	timeStr := "--:--"
	if !turn.Timestamp.IsZero() {
		timeStr = turn.Timestamp.Local().Format("15:04")
	}
	preview := display.TruncateText(strings.Join(turn.Content, " "), 30)
	line := fmt.Sprintf("%s %s %s", symbol, timeStr, preview)

	if len(line) > width {
		line = line[:width-3] + "..."
	}
	if len(line) < width {
		line = line + strings.Repeat(" ", width-len(line))
	}

	if selected {
		line = selectedStyle.Render(line)
	}

	return line
}

// renderDetail renders the detail panel for the selected turn
func (m model) renderDetail(width, height int) string {
	if m.cursor >= len(m.tr.Turns) {
		return "No selection"
	}

	turn := m.tr.Turns[m.cursor]
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role: %s %s\n", display.GetRoleSymbol(turn.Role), strings.ToUpper(turn.Role)))
	if turn.Timestamp.IsZero() {
		sb.WriteString("Time: Invalid Date\n")
	} else {
		sb.WriteString(fmt.Sprintf("Time: %s\n", turn.Timestamp.Local().Format("2006-01-02 15:04:05")))
	}
	sb.WriteString("\nContent:\n")
	sb.WriteString(wrapText(strings.Join(turn.Content, "\n"), width-2))

	for _, call := range turn.ToolCalls {
		sb.WriteString("\n\n")
		sb.WriteString(fmt.Sprintf("Tool: %s\n", call.Name))
		if len(call.Args) > 0 {
			sb.WriteString("Args:\n")
			sb.WriteString(wrapText(transcript.PrettyResult(string(call.Args)), width-2))
			sb.WriteString("\n")
		}
		if call.Result != "" {
			sb.WriteString("Result:\n")
			sb.WriteString(wrapText(transcript.PrettyResult(call.Result), width-2))
		}
	}

	lines := strings.Split(sb.String(), "\n")

	// Apply scroll offset
	if m.detailOffset > 0 && m.detailOffset < len(lines) {
		lines = lines[m.detailOffset:]
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

// renderStatusBar renders the status bar
func (m model) renderStatusBar() string {
	position := fmt.Sprintf("%d/%d", m.cursor+1, len(m.tr.Turns))
	help := "j/k:nav  g/G:jump  J/K:scroll  q:quit"
	status := fmt.Sprintf(" %s | %s | %s", position, m.sourceName, help)
	return statusBarStyle.Width(m.width).Render(status)
}

// Helper functions

func (m model) listHeight() int {
	return max(m.height-5, 1) // Account for borders and status bar
}

func (m *model) adjustListScroll() {
	visibleHeight := m.listHeight()

	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleHeight {
		m.listOffset = m.cursor - visibleHeight + 1
	}
}

func wrapText(s string, width int) string {
	if width < 1 {
		width = 1
	}

	var result strings.Builder
	for _, line := range strings.Split(s, "\n") {
		for len(line) > width {
			result.WriteString(line[:width])
			result.WriteString("\n")
			line = line[width:]
		}
		result.WriteString(line)
		result.WriteString("\n")
	}
	return strings.TrimSuffix(result.String(), "\n")
}

// RunTUI starts the interactive transcript viewer
func RunTUI(tr *transcript.Transcript, sourceName string) error {
	p := tea.NewProgram(NewModel(tr, sourceName), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
