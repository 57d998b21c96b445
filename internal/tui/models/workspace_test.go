// Package models/workspace_test.go - Tests for the Workspace Screen
//
// Covers the layout restore/capture protocol, window syncing after group
// edits, rename handling, and theme switching.

package models

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"progman/internal/core"
)

func testShared(t *testing.T) *AppState {
	t.Helper()
	logger := core.NewLogger(&core.Config{Quiet: true})
	model := core.Load(filepath.Join(t.TempDir(), "progman.json"), logger)
	return &AppState{Model: model}
}

func testWorkspace(t *testing.T, shared *AppState) *WorkspaceModel {
	t.Helper()
	logger := core.NewLogger(&core.Config{Quiet: true})
	ws := NewWorkspaceModel(core.Config{}, logger, shared)
	ws.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return ws
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestRestoreCorrelatesByTitle(t *testing.T) {
	shared := testShared(t)
	if err := shared.Model.RenameGroup("Main", "Main"); err != nil {
		t.Fatal(err)
	}
	if err := shared.Model.AddGroup("Games"); err != nil {
		t.Fatal(err)
	}
	shared.Model.SetLayout([]core.LayoutDescriptor{
		{Title: "Games", Geometry: core.Geometry{X: 10, Y: 4, W: 30, H: 8}, State: core.WindowMinimized},
		{Title: "Utils", Geometry: core.Geometry{X: 50, Y: 5, W: 20, H: 6}, State: core.WindowNormal},
	})

	ws := testWorkspace(t, shared)

	if len(ws.windows) != 2 {
		t.Fatalf("expected one window per group, got %d", len(ws.windows))
	}

	games := ws.windowByTitle("Games")
	if games == nil {
		t.Fatal("no window for Games")
	}
	if games.Rect != (core.Geometry{X: 10, Y: 4, W: 30, H: 8}) {
		t.Errorf("Games window did not restore its descriptor, got %+v", games.Rect)
	}
	if games.State != core.WindowMinimized {
		t.Errorf("Games window did not restore its state, got %q", games.State)
	}

	// Main has no descriptor and opens at the default placement.
	main := ws.windowByTitle("Main")
	if main == nil {
		t.Fatal("no window for Main")
	}
	if main.Rect != defaultPlacement(0) {
		t.Errorf("expected default placement for Main, got %+v", main.Rect)
	}

	// The stale Utils descriptor opened nothing.
	if ws.windowByTitle("Utils") != nil {
		t.Error("a descriptor without a group must not open a window")
	}
}

func TestCaptureCoversOpenWindowsOnly(t *testing.T) {
	shared := testShared(t)
	if err := shared.Model.AddGroup("Games"); err != nil {
		t.Fatal(err)
	}
	shared.Model.SetLayout([]core.LayoutDescriptor{
		{Title: "Utils", Geometry: core.Geometry{X: 1, Y: 1, W: 20, H: 5}},
	})

	ws := testWorkspace(t, shared)
	captured := ws.CaptureLayout()

	if len(captured) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(captured))
	}
	for _, d := range captured {
		if d.Title == "Utils" {
			t.Error("stale descriptor was copied forward by capture")
		}
	}
	if captured[0].Title != "Main" || captured[1].Title != "Games" {
		t.Errorf("capture must follow group order, got %+v", captured)
	}
}

func TestStaleLayoutPrunedAfterDeleteAndSave(t *testing.T) {
	shared := testShared(t)
	if err := shared.Model.AddGroup("Games"); err != nil {
		t.Fatal(err)
	}

	ws := testWorkspace(t, shared)

	// Capture while Games is still open, then delete and save.
	shared.Model.SetLayout(ws.CaptureLayout())
	if err := shared.Model.DeleteGroup("Games"); err != nil {
		t.Fatal(err)
	}
	ws.Update(DialogClosedMsg{Refresh: true})

	if _, ok := ws.captureAndSave(); !ok {
		t.Fatal("save failed")
	}

	reloaded := core.Load(shared.Model.ConfigPath(), core.NewLogger(&core.Config{Quiet: true}))
	if _, found := reloaded.FindLayout("Games"); found {
		t.Error("persisted layout still contains the deleted group")
	}
}

func TestSyncWindowsAfterGroupEdits(t *testing.T) {
	shared := testShared(t)
	ws := testWorkspace(t, shared)

	if err := shared.Model.AddGroup("Games"); err != nil {
		t.Fatal(err)
	}
	ws.Update(DialogClosedMsg{Refresh: true, Status: "Group created."})

	if ws.windowByTitle("Games") == nil {
		t.Error("expected a window for the new group")
	}

	if err := shared.Model.DeleteGroup("Main"); err != nil {
		t.Fatal(err)
	}
	ws.Update(DialogClosedMsg{Refresh: true})

	if ws.windowByTitle("Main") != nil {
		t.Error("expected the deleted group's window to close")
	}
	if ws.focused != "Games" {
		t.Errorf("expected focus to move to a surviving window, got %q", ws.focused)
	}
}

func TestRenameKeepsPlacement(t *testing.T) {
	shared := testShared(t)
	ws := testWorkspace(t, shared)

	w := ws.windowByTitle("Main")
	w.Rect = core.Geometry{X: 12, Y: 3, W: 40, H: 12}

	if err := shared.Model.RenameGroup("Main", "Primary"); err != nil {
		t.Fatal(err)
	}
	ws.Update(DialogClosedMsg{
		Refresh: true,
		Renamed: &GroupRename{Old: "Main", New: "Primary"},
	})

	renamed := ws.windowByTitle("Primary")
	if renamed == nil {
		t.Fatal("renamed window not found")
	}
	if renamed.Rect != (core.Geometry{X: 12, Y: 3, W: 40, H: 12}) {
		t.Errorf("rename lost the window placement: %+v", renamed.Rect)
	}
	if ws.focused != "Primary" {
		t.Errorf("expected focus to follow the rename, got %q", ws.focused)
	}
}

func TestThemeToggle(t *testing.T) {
	shared := testShared(t)
	ws := testWorkspace(t, shared)

	ws.Update(keyPress('t'))
	if shared.Model.Theme() != core.ThemeClassic {
		t.Errorf("expected classic after toggle, got %q", shared.Model.Theme())
	}
	if ws.styles.Theme != core.ThemeClassic {
		t.Error("styles did not follow the theme change")
	}

	ws.Update(keyPress('t'))
	if shared.Model.Theme() != core.ThemeSystem {
		t.Errorf("expected system after second toggle, got %q", shared.Model.Theme())
	}
}

func TestMinimizeAndMaximizeToggle(t *testing.T) {
	shared := testShared(t)
	ws := testWorkspace(t, shared)
	w := ws.focusedWindow()

	ws.Update(keyPress('i'))
	if w.State != core.WindowMinimized {
		t.Errorf("expected minimized, got %q", w.State)
	}
	ws.Update(keyPress('i'))
	if w.State != core.WindowNormal {
		t.Errorf("expected normal, got %q", w.State)
	}

	ws.Update(keyPress('z'))
	if w.State != core.WindowMaximized {
		t.Errorf("expected maximized, got %q", w.State)
	}
}

func TestViewShowsGroupWindows(t *testing.T) {
	shared := testShared(t)
	ws := testWorkspace(t, shared)

	view := ws.View()
	if !strings.Contains(view, "Program Manager") {
		t.Error("expected the top bar in the view")
	}
	if !strings.Contains(view, "Main") {
		t.Error("expected the group window title in the view")
	}

	// The starter item shows with its first-rune fallback glyph.
	g, _ := shared.Model.Group("Main")
	glyph := "[" + strings.ToUpper(string([]rune(g.Items[0].Title)[0])) + "]"
	if !strings.Contains(view, glyph) {
		t.Errorf("expected the fallback icon glyph %q in the view", glyph)
	}
}
