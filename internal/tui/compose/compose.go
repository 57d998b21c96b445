// Package compose overlays rendered blocks onto a fixed-size text canvas.
//
// The workspace draws each group window as an independent lipgloss block and
// stacks them bottom-to-top at their cell coordinates, the focused window
// last. Splicing styled strings requires ANSI-aware width math, which comes
// from charmbracelet/x/ansi.
package compose

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Canvas returns an empty canvas of width x height space cells.
func Canvas(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// Overlay splices block onto base with its top-left corner at cell (x, y).
// Parts of the block outside the base are clipped; rows of the base keep
// their original width.
func Overlay(base, block string, x, y int) string {
	if block == "" {
		return base
	}

	baseRows := strings.Split(base, "\n")
	blockRows := strings.Split(block, "\n")

	for i, blockRow := range blockRows {
		row := y + i
		if row < 0 || row >= len(baseRows) {
			continue
		}
		baseRows[row] = spliceRow(baseRows[row], blockRow, x)
	}
	return strings.Join(baseRows, "\n")
}

// spliceRow replaces the cells [x, x+w) of baseRow with blockRow, where w is
// blockRow's visible width after clipping to the base row.
func spliceRow(baseRow, blockRow string, x int) string {
	baseWidth := ansi.StringWidth(baseRow)
	if x >= baseWidth {
		return baseRow
	}

	if x < 0 {
		blockRow = ansi.TruncateLeft(blockRow, -x, "")
		x = 0
	}
	blockRow = ansi.Truncate(blockRow, baseWidth-x, "")
	blockWidth := ansi.StringWidth(blockRow)
	if blockWidth == 0 {
		return baseRow
	}

	left := ansi.Truncate(baseRow, x, "")
	pad := x - ansi.StringWidth(left)
	right := ansi.TruncateLeft(baseRow, x+blockWidth, "")

	var b strings.Builder
	b.WriteString(left)
	if pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(blockRow)
	b.WriteString(right)
	return b.String()
}
