// Package render draws cube states for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seamusw/nxcube"
)

// styles maps each sticker color to a colored block style.
var styles = map[nxcube.Color]lipgloss.Style{
	nxcube.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
	nxcube.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")),
	nxcube.Green:  lipgloss.NewStyle().Background(lipgloss.Color("10")).Foreground(lipgloss.Color("0")),
	nxcube.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("12")).Foreground(lipgloss.Color("15")),
	nxcube.Red:    lipgloss.NewStyle().Background(lipgloss.Color("9")).Foreground(lipgloss.Color("15")),
	nxcube.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
}

const cell = "  "

// block renders one sticker as a colored block.
func block(c nxcube.Color) string {
	style, ok := styles[c]
	if !ok {
		return "??"
	}
	return style.Render(cell)
}

// Net renders the cube as a colored unfolded net: U on top, the
// L F R B band in the middle, D at the bottom.
func Net(c *nxcube.Cube) string {
	n := c.Size()
	indent := strings.Repeat(" ", len(cell)*n)

	var sb strings.Builder

	writeRow := func(face nxcube.CubeFace, row int) {
		for col := 0; col < n; col++ {
			color, err := c.Sticker(face, row, col)
			if err != nil {
				sb.WriteString("??")
				continue
			}
			sb.WriteString(block(color))
		}
	}

	for row := 0; row < n; row++ {
		sb.WriteString(indent)
		writeRow(nxcube.CubeFaceU, row)
		sb.WriteString("\n")
	}
	for row := 0; row < n; row++ {
		for _, face := range []nxcube.CubeFace{nxcube.CubeFaceL, nxcube.CubeFaceF, nxcube.CubeFaceR, nxcube.CubeFaceB} {
			writeRow(face, row)
		}
		sb.WriteString("\n")
	}
	for row := 0; row < n; row++ {
		sb.WriteString(indent)
		writeRow(nxcube.CubeFaceD, row)
		sb.WriteString("\n")
	}

	return sb.String()
}
