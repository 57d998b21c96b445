// Package models/workspace_model.go - Workspace Screen Model
//
// The MDI-style workspace: one window per program group, stacked on a
// desktop canvas with the focused window on top. Handles focus cycling,
// window move/resize/minimize/maximize, tile and cascade arrangement,
// launching items, and the layout capture/restore protocol around save.
//
// Restore correlates saved descriptors to groups by title (first match);
// groups without a descriptor open at a cascading default placement, and
// descriptors without a group are simply unused.

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"progman/internal/core"
	"progman/internal/tui/compose"
)

const topBarRows = 1
const statusRows = 2

// workspaceKeyMap defines the workspace key bindings.
type workspaceKeyMap struct {
	NextWin     key.Binding
	PrevWin     key.Binding
	CursorUp    key.Binding
	CursorDown  key.Binding
	Launch      key.Binding
	NewItem     key.Binding
	EditItem    key.Binding
	DeleteItem  key.Binding
	NewGroup    key.Binding
	RenameGroup key.Binding
	DeleteGroup key.Binding
	MoveWin     key.Binding
	ResizeWin   key.Binding
	Minimize    key.Binding
	Maximize    key.Binding
	Tile        key.Binding
	Cascade     key.Binding
	Theme       key.Binding
	Save        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
	Help        key.Binding
}

func defaultKeyMap() workspaceKeyMap {
	return workspaceKeyMap{
		NextWin:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next window")),
		PrevWin:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev window")),
		CursorUp:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev item")),
		CursorDown:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next item")),
		Launch:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "launch")),
		NewItem:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new program")),
		EditItem:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit program")),
		DeleteItem:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete program")),
		NewGroup:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "new group")),
		RenameGroup: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename group")),
		DeleteGroup: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete group")),
		MoveWin:     key.NewBinding(key.WithKeys("shift+up", "shift+down", "shift+left", "shift+right"), key.WithHelp("shift+arrows", "move window")),
		ResizeWin:   key.NewBinding(key.WithKeys("ctrl+up", "ctrl+down", "ctrl+left", "ctrl+right"), key.WithHelp("ctrl+arrows", "resize window")),
		Minimize:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "minimize")),
		Maximize:    key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "maximize")),
		Tile:        key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "tile")),
		Cascade:     key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "cascade")),
		Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Save:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "save & quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

// ShortHelp implements help.KeyMap.
func (k workspaceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextWin, k.Launch, k.NewItem, k.NewGroup, k.Save, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k workspaceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextWin, k.PrevWin, k.CursorUp, k.CursorDown, k.Launch},
		{k.NewItem, k.EditItem, k.DeleteItem},
		{k.NewGroup, k.RenameGroup, k.DeleteGroup},
		{k.MoveWin, k.ResizeWin, k.Minimize, k.Maximize, k.Tile, k.Cascade},
		{k.Theme, k.Save, k.Quit, k.ForceQuit, k.Help},
	}
}

// statusTickMsg expires a transient status message.
type statusTickMsg struct {
	seq int
}

// WorkspaceModel is the workspace screen.
type WorkspaceModel struct {
	cfg    core.Config
	logger *core.Logger
	shared *AppState

	windows []*GroupWindow // group display order
	stack   []string       // z-order, bottom to top
	focused string

	width  int
	height int

	status    string
	statusErr bool
	statusSeq int

	keys   workspaceKeyMap
	help   help.Model
	styles Styles
}

// NewWorkspaceModel builds the workspace from the loaded model, restoring
// each group window's placement from the saved layout.
func NewWorkspaceModel(cfg core.Config, logger *core.Logger, shared *AppState) *WorkspaceModel {
	m := &WorkspaceModel{
		cfg:    cfg,
		logger: logger,
		shared: shared,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: NewStyles(shared.Model.Theme()),
	}

	for i, g := range shared.Model.Groups() {
		rect := defaultPlacement(i)
		state := core.WindowNormal
		if d, ok := shared.Model.FindLayout(g.Title); ok {
			rect = d.Geometry
			state = d.State
		}
		m.windows = append(m.windows, NewGroupWindow(g.Title, rect, state))
		m.stack = append(m.stack, g.Title)
	}
	if len(m.stack) > 0 {
		m.focused = m.stack[len(m.stack)-1]
	}
	return m
}

// defaultPlacement is the cascading fallback for groups without a saved
// descriptor.
func defaultPlacement(i int) core.Geometry {
	return core.Geometry{X: 2 + i*4, Y: 1 + i*2, W: 34, H: 10}
}

// Init implements tea.Model.
func (m *WorkspaceModel) Init() tea.Cmd {
	return nil
}

// Update handles workspace messages.
func (m *WorkspaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		deskW, deskH := m.desktopSize()
		for _, w := range m.windows {
			w.Move(0, 0, deskW, deskH)
		}
		return m, nil

	case statusTickMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case DialogClosedMsg:
		if msg.Renamed != nil {
			m.applyRename(msg.Renamed.Old, msg.Renamed.New)
		}
		if msg.Refresh {
			m.syncWindows()
		}
		if msg.Status != "" {
			return m, m.setStatus(msg.Status, false)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	return m, nil
}

// handleKeys dispatches workspace key presses.
func (m *WorkspaceModel) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Window move/resize first: these need the direction, not just the
	// binding group.
	switch msg.String() {
	case "shift+up":
		return m, m.moveFocused(0, -1)
	case "shift+down":
		return m, m.moveFocused(0, 1)
	case "shift+left":
		return m, m.moveFocused(-2, 0)
	case "shift+right":
		return m, m.moveFocused(2, 0)
	case "ctrl+up":
		return m, m.resizeFocused(0, -1)
	case "ctrl+down":
		return m, m.resizeFocused(0, 1)
	case "ctrl+left":
		return m, m.resizeFocused(-2, 0)
	case "ctrl+right":
		return m, m.resizeFocused(2, 0)
	}

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Quit):
		// Auto-save on close. A failed save keeps the workspace open so
		// the failure is actually seen; ctrl+c still quits without saving.
		if cmd, ok := m.captureAndSave(); !ok {
			return m, cmd
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Save):
		cmd, _ := m.captureAndSave()
		return m, cmd

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextWin):
		m.cycleFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevWin):
		m.cycleFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.CursorUp):
		if w := m.focusedWindow(); w != nil {
			w.MoveCursor(-1, m.itemCount(w.Title))
		}
		return m, nil

	case key.Matches(msg, m.keys.CursorDown):
		if w := m.focusedWindow(); w != nil {
			w.MoveCursor(1, m.itemCount(w.Title))
		}
		return m, nil

	case key.Matches(msg, m.keys.Launch):
		return m, m.launchSelected()

	case key.Matches(msg, m.keys.NewItem):
		if m.focused == "" {
			return m, m.setStatus("create a group first", true)
		}
		group := m.focused
		return m, func() tea.Msg { return ShowItemFormMsg{Group: group} }

	case key.Matches(msg, m.keys.EditItem):
		item, ok := m.selectedItem()
		if !ok {
			return m, m.setStatus("nothing to edit", true)
		}
		group := m.focused
		return m, func() tea.Msg { return ShowItemFormMsg{Group: group, Edit: &item} }

	case key.Matches(msg, m.keys.DeleteItem):
		item, ok := m.selectedItem()
		if !ok {
			return m, m.setStatus("nothing to delete", true)
		}
		group := m.focused
		return m, func() tea.Msg {
			return ShowConfirmMsg{
				Question: fmt.Sprintf("Delete '%s'?", item.Title),
				Action:   ConfirmDeleteItem,
				Group:    group,
				Item:     item,
			}
		}

	case key.Matches(msg, m.keys.NewGroup):
		return m, func() tea.Msg { return ShowPromptMsg{Kind: PromptNewGroup} }

	case key.Matches(msg, m.keys.RenameGroup):
		if m.focused == "" {
			return m, m.setStatus("no group selected", true)
		}
		group := m.focused
		return m, func() tea.Msg { return ShowPromptMsg{Kind: PromptRenameGroup, Group: group} }

	case key.Matches(msg, m.keys.DeleteGroup):
		if m.focused == "" {
			return m, m.setStatus("no group selected", true)
		}
		group := m.focused
		return m, func() tea.Msg {
			return ShowConfirmMsg{
				Question: fmt.Sprintf("Delete group '%s' and all its items?", group),
				Action:   ConfirmDeleteGroup,
				Group:    group,
			}
		}

	case key.Matches(msg, m.keys.Minimize):
		if w := m.focusedWindow(); w != nil {
			if w.State == core.WindowMinimized {
				w.State = core.WindowNormal
			} else {
				w.State = core.WindowMinimized
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Maximize):
		if w := m.focusedWindow(); w != nil {
			if w.State == core.WindowMaximized {
				w.State = core.WindowNormal
			} else {
				w.State = core.WindowMaximized
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Tile):
		m.tile()
		return m, nil

	case key.Matches(msg, m.keys.Cascade):
		m.cascade()
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		next := core.ThemeClassic
		if m.shared.Model.Theme() == core.ThemeClassic {
			next = core.ThemeSystem
		}
		m.shared.Model.SetTheme(string(next))
		m.styles = NewStyles(m.shared.Model.Theme())
		return m, m.setStatus(fmt.Sprintf("theme: %s", next), false)
	}

	return m, nil
}

// View renders the top bar, desktop, status line and help line.
func (m *WorkspaceModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	deskW, deskH := m.desktopSize()
	desk := m.styledCanvas(deskW, deskH)

	for _, title := range m.stack {
		w := m.windowByTitle(title)
		if w == nil || w.State == core.WindowMinimized {
			continue
		}
		items, _ := m.shared.Model.Group(w.Title)
		block := w.View(items.Items, m.styles, title == m.focused, deskW, deskH)
		r := w.DisplayRect(deskW, deskH)
		desk = compose.Overlay(desk, block, r.X, r.Y)
	}

	if tabs := m.minimizedTabs(); tabs != "" {
		desk = compose.Overlay(desk, tabs, 1, deskH-1)
	}

	top := m.styles.TopBar.Width(m.width).Render(" Program Manager")
	statusStyle := m.styles.StatusBar
	if m.statusErr {
		statusStyle = m.styles.StatusError
	}
	status := statusStyle.Width(m.width).Render(" " + m.status)
	helpLine := m.help.View(m.keys)

	return strings.Join([]string{top, desk, status, helpLine}, "\n")
}

// CaptureLayout produces one descriptor per open group window, in group
// display order. This is the capture half of the layout protocol.
func (m *WorkspaceModel) CaptureLayout() []core.LayoutDescriptor {
	out := make([]core.LayoutDescriptor, 0, len(m.windows))
	for _, w := range m.windows {
		out = append(out, w.Descriptor())
	}
	return out
}

// captureAndSave runs the capture protocol and persists. The bool reports
// whether the save succeeded.
func (m *WorkspaceModel) captureAndSave() (tea.Cmd, bool) {
	m.shared.Model.SetLayout(m.CaptureLayout())
	if err := m.shared.Model.Save(); err != nil {
		m.logger.Error("workspace", err)
		return m.setStatus(fmt.Sprintf("save failed: %v", err), true), false
	}
	return m.setStatus("Configuration saved.", false), true
}

func (m *WorkspaceModel) desktopSize() (int, int) {
	h := m.height - topBarRows - statusRows
	if h < 1 {
		h = 1
	}
	return m.width, h
}

func (m *WorkspaceModel) styledCanvas(w, h int) string {
	base := compose.Canvas(w, h)
	if m.styles.Theme != core.ThemeClassic {
		return base
	}
	rows := strings.Split(base, "\n")
	for i, row := range rows {
		rows[i] = m.styles.Desktop.Render(row)
	}
	return strings.Join(rows, "\n")
}

func (m *WorkspaceModel) minimizedTabs() string {
	var tabs []string
	for _, w := range m.windows {
		if w.State == core.WindowMinimized {
			tabs = append(tabs, m.styles.MinimizedTab.Render(" ▪ "+w.Title+" "))
		}
	}
	return strings.Join(tabs, " ")
}

func (m *WorkspaceModel) windowByTitle(title string) *GroupWindow {
	for _, w := range m.windows {
		if w.Title == title {
			return w
		}
	}
	return nil
}

func (m *WorkspaceModel) focusedWindow() *GroupWindow {
	return m.windowByTitle(m.focused)
}

func (m *WorkspaceModel) itemCount(group string) int {
	g, _ := m.shared.Model.Group(group)
	return len(g.Items)
}

func (m *WorkspaceModel) selectedItem() (core.ProgramItem, bool) {
	w := m.focusedWindow()
	if w == nil {
		return core.ProgramItem{}, false
	}
	g, _ := m.shared.Model.Group(w.Title)
	if len(g.Items) == 0 {
		return core.ProgramItem{}, false
	}
	return g.Items[w.Cursor(len(g.Items))], true
}

// cycleFocus moves focus through windows in display order and raises the
// newly focused window to the top of the stack.
func (m *WorkspaceModel) cycleFocus(delta int) {
	if len(m.windows) == 0 {
		return
	}
	idx := 0
	for i, w := range m.windows {
		if w.Title == m.focused {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(m.windows)) % len(m.windows)
	m.focused = m.windows[idx].Title
	m.raise(m.focused)
}

func (m *WorkspaceModel) raise(title string) {
	for i, t := range m.stack {
		if t == title {
			m.stack = append(append(m.stack[:i:i], m.stack[i+1:]...), title)
			return
		}
	}
	m.stack = append(m.stack, title)
}

func (m *WorkspaceModel) moveFocused(dx, dy int) tea.Cmd {
	w := m.focusedWindow()
	if w == nil || w.State != core.WindowNormal {
		return nil
	}
	deskW, deskH := m.desktopSize()
	w.Move(dx, dy, deskW, deskH)
	return nil
}

func (m *WorkspaceModel) resizeFocused(dw, dh int) tea.Cmd {
	w := m.focusedWindow()
	if w == nil || w.State != core.WindowNormal {
		return nil
	}
	deskW, deskH := m.desktopSize()
	w.Resize(dw, dh, deskW, deskH)
	return nil
}

func (m *WorkspaceModel) launchSelected() tea.Cmd {
	item, ok := m.selectedItem()
	if !ok {
		return m.setStatus("nothing to launch", true)
	}
	if err := m.shared.Launcher.Launch(item); err != nil {
		m.logger.Error("workspace", err)
		return m.setStatus(err.Error(), true)
	}
	m.logger.Infof("workspace", "launched '%s'", item.Title)
	return m.setStatus(fmt.Sprintf("Launched %s.", item.Title), false)
}

// tile arranges all non-minimized windows in a grid covering the desktop.
func (m *WorkspaceModel) tile() {
	var open []*GroupWindow
	for _, w := range m.windows {
		if w.State != core.WindowMinimized {
			w.State = core.WindowNormal
			open = append(open, w)
		}
	}
	if len(open) == 0 {
		return
	}

	deskW, deskH := m.desktopSize()
	cols := 1
	for cols*cols < len(open) {
		cols++
	}
	rows := (len(open) + cols - 1) / cols

	cellW := deskW / cols
	cellH := deskH / rows
	if cellW < minWindowW {
		cellW = minWindowW
	}
	if cellH < minWindowH {
		cellH = minWindowH
	}

	for i, w := range open {
		w.Rect = core.Geometry{
			X: (i % cols) * cellW,
			Y: (i / cols) * cellH,
			W: cellW,
			H: cellH,
		}
		w.Move(0, 0, deskW, deskH)
	}
}

// cascade restores every window to the default cascading placement.
func (m *WorkspaceModel) cascade() {
	deskW, deskH := m.desktopSize()
	for i, w := range m.windows {
		w.State = core.WindowNormal
		w.Rect = defaultPlacement(i)
		w.Move(0, 0, deskW, deskH)
	}
}

// applyRename retitles the open window in place so an on-screen rename
// keeps its placement for the rest of the session.
func (m *WorkspaceModel) applyRename(old, new string) {
	if w := m.windowByTitle(old); w != nil {
		w.Title = new
	}
	for i, t := range m.stack {
		if t == old {
			m.stack[i] = new
		}
	}
	if m.focused == old {
		m.focused = new
	}
}

// syncWindows reconciles open windows with the model's groups: new groups
// get a window at the default placement, windows of deleted groups close.
func (m *WorkspaceModel) syncWindows() {
	existing := make(map[string]*GroupWindow, len(m.windows))
	for _, w := range m.windows {
		existing[w.Title] = w
	}

	var windows []*GroupWindow
	alive := make(map[string]bool)
	for i, g := range m.shared.Model.Groups() {
		if _, dup := alive[g.Title]; dup {
			continue
		}
		w := existing[g.Title]
		if w == nil {
			w = NewGroupWindow(g.Title, defaultPlacement(i), core.WindowNormal)
		}
		windows = append(windows, w)
		alive[g.Title] = true
	}
	m.windows = windows

	var stack []string
	for _, t := range m.stack {
		if alive[t] {
			stack = append(stack, t)
			alive[t] = false
		}
	}
	for _, w := range m.windows {
		if v, ok := alive[w.Title]; ok && v {
			stack = append(stack, w.Title)
		}
	}
	m.stack = stack

	if m.windowByTitle(m.focused) == nil {
		m.focused = ""
		if len(m.stack) > 0 {
			m.focused = m.stack[len(m.stack)-1]
		}
	}
}

func (m *WorkspaceModel) setStatus(text string, isErr bool) tea.Cmd {
	m.status = text
	m.statusErr = isErr
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return statusTickMsg{seq: seq}
	})
}
