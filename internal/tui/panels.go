package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/holdclock/internal/dashboard"
)

//nolint:gochecknoglobals // immutable styles shared by the renderers.
var (
	itemStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("7"))
	selectedItemStyle = lipgloss.NewStyle().Background(lipgloss.Color("10")).Bold(true)
	labelStyle        = lipgloss.NewStyle().Italic(true)
)

// renderListPanel draws the items, each as its label followed by its filler
// lines, scrolled so the selected item is visible.
func renderListPanel(snap dashboard.Snapshot, width, height int) string {
	inner := width - 2
	capacity := max(height-panelChromeLines, 0)

	blocks := make([][]string, len(snap.Items))
	heights := make([]int, len(snap.Items))
	for i, it := range snap.Items {
		blocks[i] = itemLines(it)
		heights[i] = len(blocks[i])
	}
	start, end := visibleWindow(heights, snap.Selected, snap.HasSelection, capacity)

	indent := ""
	if snap.HasSelection {
		indent = strings.Repeat(" ", len(selectionMarker))
	}

	lines := make([]string, 0, capacity)
	for i := start; i < end; i++ {
		selected := snap.HasSelection && i == snap.Selected
		style := itemStyle
		if selected {
			style = selectedItemStyle
		}
		for j, text := range blocks[i] {
			prefix := indent
			if selected && j == 0 {
				prefix = selectionMarker
			}
			lineStyle := style
			if j > 0 {
				lineStyle = lineStyle.Italic(true)
			}
			lines = append(lines, lineStyle.Width(max(inner, 0)).Render(fit(prefix+text, inner)))
		}
	}
	if len(lines) > capacity {
		lines = lines[:capacity]
	}

	return renderPanel("List", lines, width, height)
}

func itemLines(it dashboard.Item) []string {
	lines := make([]string, 0, it.DetailLines+1)
	lines = append(lines, it.Label)
	for i := 0; i < it.DetailLines; i++ {
		lines = append(lines, fillerText)
	}
	return lines
}

// visibleWindow returns the half-open item range [start, end) that fits in
// capacity lines and contains the selected item when there is one. The first
// item of the window is always included even if it is taller than capacity.
func visibleWindow(heights []int, selected int, hasSelection bool, capacity int) (int, int) {
	if capacity <= 0 || len(heights) == 0 {
		return 0, 0
	}

	start := 0
	if hasSelection && selected >= 0 && selected < len(heights) {
		start = selected
		used := heights[selected]
		for start > 0 && used+heights[start-1] <= capacity {
			start--
			used += heights[start]
		}
	}

	end := start + 1
	used := heights[start]
	for end < len(heights) && used+heights[end] <= capacity {
		used += heights[end]
		end++
	}
	return start, end
}

// renderLegendPanel draws the legend bottom-aligned; when it overflows, the
// earliest entries are dropped.
func renderLegendPanel(entries []dashboard.LegendEntry, width, height int) string {
	inner := width - 2
	capacity := height - panelChromeLines
	if capacity < 0 {
		capacity = 0
	}

	start := len(entries) - capacity
	if start < 0 {
		start = 0
	}
	shown := entries[start:]

	lines := make([]string, 0, capacity)
	for i := len(shown); i < capacity; i++ {
		lines = append(lines, "")
	}
	for _, e := range shown {
		category := categoryStyle(e.Category).Render(fmt.Sprintf("%-*s", categoryWidth, e.Category))
		lines = append(lines, fit(category+" "+labelStyle.Render(e.Label), inner))
	}

	return renderPanel("Keybinds", lines, width, height)
}

func categoryStyle(category string) lipgloss.Style {
	switch category {
	case "CRITICAL":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "ERROR":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	case "WARNING":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	case "INFO":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	default:
		return lipgloss.NewStyle()
	}
}

// renderPanel wraps a title and body lines in a bordered box of the given outer size.
func renderPanel(title string, lines []string, width, height int) string {
	inner := max(width-2, 0)
	content := fit(titleStyle.Render(title), inner)
	if len(lines) > 0 {
		content += "\n" + strings.Join(lines, "\n")
	}
	return panelStyle.Width(inner).Height(max(height-2, 0)).Render(content)
}
