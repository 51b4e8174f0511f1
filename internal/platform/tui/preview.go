package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vkulagin/dots-tui/internal/level"
)

var (
	dotStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	blockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// RenderGridPreview draws a level's grid with its blocked cells, one text
// row per grid row. Open cells render as dots, blocked cells as blocks.
func RenderGridPreview(lv *level.Level) string {
	size := lv.GridSize()
	if size <= 0 {
		return ""
	}

	blocked := make(map[level.Cell]bool, len(lv.BlockedCells()))
	for _, c := range lv.BlockedCells() {
		blocked[c] = true
	}

	var b strings.Builder
	for row := 0; row < size; row++ {
		if row > 0 {
			b.WriteString("\n")
		}
		for col := 0; col < size; col++ {
			if col > 0 {
				b.WriteString(" ")
			}
			if blocked[level.Cell{Row: row, Col: col}] {
				b.WriteString(blockedStyle.Render("█"))
			} else {
				b.WriteString(dotStyle.Render("·"))
			}
		}
	}
	return b.String()
}
