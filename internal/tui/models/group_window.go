// Package models/group_window.go - Group Window
//
// One workspace window per program group: a title bar, the item list with
// fallback glyphs, and a cursor. The window knows its own placement and
// display state; the workspace decides stacking and focus.

package models

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"progman/internal/core"
)

const (
	minWindowW = 14
	minWindowH = 4
)

// GroupWindow is the display state of one open group window.
type GroupWindow struct {
	Title string
	Rect  core.Geometry
	State core.WindowState

	cursor int
	scroll int
}

// NewGroupWindow creates a window for a group at the given placement.
func NewGroupWindow(title string, rect core.Geometry, state core.WindowState) *GroupWindow {
	return &GroupWindow{Title: title, Rect: rect, State: state}
}

// Descriptor captures the window's current placement for persistence.
func (w *GroupWindow) Descriptor() core.LayoutDescriptor {
	return core.LayoutDescriptor{Title: w.Title, Geometry: w.Rect, State: w.State}
}

// MoveCursor shifts the item cursor by delta, clamped to the item count.
func (w *GroupWindow) MoveCursor(delta, itemCount int) {
	w.cursor += delta
	if w.cursor >= itemCount {
		w.cursor = itemCount - 1
	}
	if w.cursor < 0 {
		w.cursor = 0
	}
}

// Cursor returns the item cursor, clamped in case items were deleted.
func (w *GroupWindow) Cursor(itemCount int) int {
	if w.cursor >= itemCount {
		w.cursor = itemCount - 1
	}
	if w.cursor < 0 {
		w.cursor = 0
	}
	return w.cursor
}

// Move shifts the window origin, keeping it inside the desktop.
func (w *GroupWindow) Move(dx, dy, deskW, deskH int) {
	w.Rect.X += dx
	w.Rect.Y += dy
	w.clamp(deskW, deskH)
}

// Resize grows or shrinks the window, enforcing the minimum size.
func (w *GroupWindow) Resize(dw, dh, deskW, deskH int) {
	w.Rect.W += dw
	w.Rect.H += dh
	if w.Rect.W < minWindowW {
		w.Rect.W = minWindowW
	}
	if w.Rect.H < minWindowH {
		w.Rect.H = minWindowH
	}
	w.clamp(deskW, deskH)
}

func (w *GroupWindow) clamp(deskW, deskH int) {
	if deskW <= 0 || deskH <= 0 {
		return
	}
	if w.Rect.W < minWindowW {
		w.Rect.W = minWindowW
	}
	if w.Rect.H < minWindowH {
		w.Rect.H = minWindowH
	}
	if w.Rect.W > deskW {
		w.Rect.W = deskW
	}
	if w.Rect.H > deskH {
		w.Rect.H = deskH
	}
	if w.Rect.X < 0 {
		w.Rect.X = 0
	}
	if w.Rect.Y < 0 {
		w.Rect.Y = 0
	}
	if w.Rect.X+w.Rect.W > deskW {
		w.Rect.X = deskW - w.Rect.W
	}
	if w.Rect.Y+w.Rect.H > deskH {
		w.Rect.Y = deskH - w.Rect.H
	}
}

// DisplayRect is the rectangle the window is drawn at: its own rect, or the
// whole desktop when maximized.
func (w *GroupWindow) DisplayRect(deskW, deskH int) core.Geometry {
	if w.State == core.WindowMaximized {
		return core.Geometry{X: 0, Y: 0, W: deskW, H: deskH}
	}
	return w.Rect
}

// View renders the window box. Items show a bracketed first-rune glyph as
// the icon fallback; the cursor row is highlighted only on the focused
// window.
func (w *GroupWindow) View(items []core.ProgramItem, styles Styles, focused bool, deskW, deskH int) string {
	rect := w.DisplayRect(deskW, deskH)
	innerW := rect.W - 2
	innerH := rect.H - 2
	if innerW < 1 || innerH < 1 {
		return ""
	}

	titleStyle := styles.TitleBar
	border := styles.Window
	if focused {
		titleStyle = styles.TitleBarFocus
		border = styles.WindowFocused
	}

	rows := make([]string, 0, innerH)
	rows = append(rows, titleStyle.Width(innerW).Render(truncateTitle(w.Title, innerW)))

	listH := innerH - 1
	cursor := w.Cursor(len(items))
	if cursor < w.scroll {
		w.scroll = cursor
	}
	if listH > 0 && cursor >= w.scroll+listH {
		w.scroll = cursor - listH + 1
	}

	for i := w.scroll; i < len(items) && len(rows) < innerH; i++ {
		rows = append(rows, w.itemRow(items[i], styles, focused && i == cursor, innerW))
	}
	for len(rows) < innerH {
		rows = append(rows, styles.Item.Width(innerW).Render(""))
	}

	return border.Render(strings.Join(rows, "\n"))
}

func (w *GroupWindow) itemRow(item core.ProgramItem, styles Styles, selected bool, width int) string {
	glyph := "[?]"
	for _, r := range strings.TrimSpace(item.Title) {
		glyph = "[" + strings.ToUpper(string(r)) + "]"
		break
	}

	label := ansi.Truncate(" "+item.Title, width-lipgloss.Width(glyph), "…")
	if selected {
		return styles.ItemSelected.Width(width).Render(glyph + label)
	}
	return styles.Glyph.Render(glyph) + styles.Item.Width(width-lipgloss.Width(glyph)).Render(label)
}

func truncateTitle(title string, width int) string {
	return ansi.Truncate(" "+title, width, "…")
}
