package tui

import (
	"math"
	"strings"

	"taskplane/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Plane rendering: tasks plotted on the importance (x) / urgency (y) square.
// Both axes run -1..1 with the origin at the center. The dot glyph gets
// heavier with the task's estimated minutes relative to the largest estimate
// on screen.

const (
	planeMinWidth  = 11
	planeMinHeight = 7
)

func planeGlyph(minutes, maxMinutes int) rune {
	if maxMinutes <= 0 {
		return '·'
	}
	switch ratio := float64(minutes) / float64(maxMinutes); {
	case ratio <= 0.34:
		return '·'
	case ratio <= 0.67:
		return '•'
	default:
		return '●'
	}
}

func planeCell(x float64, cols int) int {
	return int(math.Round((model.ClampCoord(x) + 1) / 2 * float64(cols-1)))
}

func planeRow(y float64, rows int) int {
	// y = 1 is the most urgent and sits at the top row.
	return int(math.Round((1 - model.ClampCoord(y)) / 2 * float64(rows-1)))
}

// RenderPlane draws the urgency/importance plane as a bordered text plot.
// Width/height count the interior cells; even values are bumped to odd so
// the axes stay centered.
func RenderPlane(points []model.PlanePoint, width, height int) string {
	if width < planeMinWidth {
		width = planeMinWidth
	}
	if height < planeMinHeight {
		height = planeMinHeight
	}
	if width%2 == 0 {
		width++
	}
	if height%2 == 0 {
		height++
	}

	grid := make([][]string, height)
	cx, cy := (width-1)/2, (height-1)/2
	axis := styleMuted()
	for r := range grid {
		grid[r] = make([]string, width)
		for c := range grid[r] {
			switch {
			case r == cy && c == cx:
				grid[r][c] = axis.Render("┼")
			case r == cy:
				grid[r][c] = axis.Render("─")
			case c == cx:
				grid[r][c] = axis.Render("│")
			default:
				grid[r][c] = " "
			}
		}
	}

	maxMinutes := 0
	for _, p := range points {
		if p.Time > maxMinutes {
			maxMinutes = p.Time
		}
	}

	dot := styleAccent()
	done := styleMuted()
	for _, p := range points {
		r, c := planeRow(p.Y, height), planeCell(p.X, width)
		glyph := string(planeGlyph(p.Time, maxMinutes))
		if p.Completed {
			grid[r][c] = done.Render(glyph)
		} else {
			grid[r][c] = dot.Render(glyph)
		}
	}

	// Axis labels: "Urgent" hugs the top of the vertical axis, "Important"
	// the right end of the horizontal one.
	placeLabel(grid[0], cx+2, "Urgent")
	placeLabel(grid[cy], width-len("Important"), "Important")

	rows := make([]string, height)
	for r := range grid {
		rows[r] = strings.Join(grid[r], "")
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted)
	return box.Render(strings.Join(rows, "\n"))
}

func placeLabel(row []string, at int, label string) {
	if at < 0 {
		at = 0
	}
	lb := styleMuted()
	for i, ch := range label {
		if at+i >= len(row) {
			return
		}
		row[at+i] = lb.Render(string(ch))
	}
}
