package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/holdclock/internal/dashboard"
	"github.com/ensigniasec/holdclock/internal/timer"
)

//nolint:gochecknoglobals // immutable styles shared by the renderers.
var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	titleStyle  = lipgloss.NewStyle().Bold(true)

	timerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Foreground(lipgloss.Color("7")).
			Background(lipgloss.Color("0")).
			Align(lipgloss.Center).
			AlignVertical(lipgloss.Center)
	timeStyle  = lipgloss.NewStyle().Italic(true)
	phaseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	width, height := m.width, m.height
	if width <= 0 || height <= 0 {
		width, height = fallbackWidth, fallbackHeight
	}

	snap := m.state.Snapshot()

	footer := m.help.View(m.keys)
	bodyHeight := height - lipgloss.Height(footer)
	if bodyHeight < panelChromeLines {
		bodyHeight = panelChromeLines
	}

	listWidth := width * listPanelPercent / 100
	timerWidth := width * timerPanelPercent / 100
	legendWidth := width - listWidth - timerWidth

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderListPanel(snap, listWidth, bodyHeight),
		m.renderTimerPanel(snap, timerWidth, bodyHeight),
		renderLegendPanel(snap.Legend, legendWidth, bodyHeight),
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// renderTimerPanel centres the timer box in the middle column.
func (m Model) renderTimerPanel(snap dashboard.Snapshot, width, height int) string {
	boxWidth := width - 2*timerMarginHorizontal
	if boxWidth < timerBoxMinWidth {
		boxWidth = timerBoxMinWidth
	}
	if boxWidth > width {
		boxWidth = width
	}
	boxHeight := height - 2*timerMarginVertical
	if boxHeight < timerBoxMinHeight {
		boxHeight = timerBoxMinHeight
	}
	if boxHeight > height {
		boxHeight = height
	}
	inner := boxWidth - 2
	if inner < 1 {
		inner = 1
	}

	bar := m.progress
	bar.Width = inner
	content := strings.Join([]string{
		timeStyle.Render(snap.Display),
		phaseStyle.Render(phaseLabel(snap.Phase)),
		bar.ViewAs(snap.Remaining()),
	}, "\n")

	box := timerBoxStyle.Width(inner).Height(boxHeight - 2).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func phaseLabel(p timer.Phase) string {
	return strings.ToUpper(p.String())
}

// fit truncates s to at most w cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return lipgloss.NewStyle().MaxWidth(w).Render(s)
}
