package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/connorcarpenter/morph"
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	headerStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	nameStyle   = lipgloss.NewStyle().Foreground(colorCyan)
	numberStyle = lipgloss.NewStyle().Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Table renders the solved boxes under root as a table with one row per
// node. Names are indented by depth. Positions are relative to the
// viewport.
func Table(tree *morph.Tree, root morph.Node) (string, error) {
	entries, err := Collect(tree, root)
	if err != nil {
		return "", err
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		name := e.Label
		if name == "" {
			name = "#" + strconv.Itoa(int(e.Node))
		}
		rows[i] = []string{
			strings.Repeat("  ", e.Depth) + name,
			formatFloat(e.Bounds.X),
			formatFloat(e.Bounds.Y),
			formatFloat(e.Bounds.Width),
			formatFloat(e.Bounds.Height),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Node", "X", "Y", "Width", "Height").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return nameStyle
			}
			return numberStyle
		})
	return t.Render(), nil
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
