// Package models/dialogs_test.go - Tests for the Editing Dialogs
//
// Validation happens at the editing boundary: a rejected commit keeps the
// dialog open and leaves the model untouched.

package models

import (
	"testing"

	"progman/internal/core"
)

func TestItemFormRejectsBlankFields(t *testing.T) {
	shared := testShared(t)
	logger := core.NewLogger(&core.Config{Quiet: true})

	form := NewItemFormModel(core.Config{}, logger, shared, ShowItemFormMsg{Group: "Main"})
	before := len(mustGroup(t, shared, "Main").Items)

	// Empty title.
	form.inputs[fieldTitle].SetValue("")
	form.inputs[fieldCommand].SetValue("ls")
	if cmd := form.submit(); cmd != nil {
		t.Error("expected submit to fail for an empty title")
	}
	if form.errText == "" {
		t.Error("expected a validation message in the dialog")
	}

	// Whitespace-only command.
	form.inputs[fieldTitle].SetValue("List")
	form.inputs[fieldCommand].SetValue("   ")
	if cmd := form.submit(); cmd != nil {
		t.Error("expected submit to fail for a blank command")
	}

	if got := len(mustGroup(t, shared, "Main").Items); got != before {
		t.Errorf("rejected submits changed the item count: %d -> %d", before, got)
	}
}

func TestItemFormAddsItem(t *testing.T) {
	shared := testShared(t)
	logger := core.NewLogger(&core.Config{Quiet: true})

	form := NewItemFormModel(core.Config{}, logger, shared, ShowItemFormMsg{Group: "Main"})
	form.inputs[fieldTitle].SetValue("Editor")
	form.inputs[fieldCommand].SetValue("vi")
	form.inputs[fieldWorkingDir].SetValue("/tmp")

	cmd := form.submit()
	if cmd == nil {
		t.Fatalf("expected submit to succeed, dialog says: %s", form.errText)
	}
	msg, ok := cmd().(DialogClosedMsg)
	if !ok || !msg.Refresh {
		t.Errorf("expected a refreshing DialogClosedMsg, got %+v", msg)
	}

	items := mustGroup(t, shared, "Main").Items
	got := items[len(items)-1]
	want := core.ProgramItem{Title: "Editor", Command: "vi", WorkingDir: "/tmp"}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestItemFormEditsItem(t *testing.T) {
	shared := testShared(t)
	logger := core.NewLogger(&core.Config{Quiet: true})

	old := mustGroup(t, shared, "Main").Items[0]
	form := NewItemFormModel(core.Config{}, logger, shared, ShowItemFormMsg{Group: "Main", Edit: &old})

	if form.inputs[fieldTitle].Value() != old.Title {
		t.Error("expected the form to be pre-filled when editing")
	}

	form.inputs[fieldCommand].SetValue("htop")
	if cmd := form.submit(); cmd == nil {
		t.Fatalf("expected submit to succeed, dialog says: %s", form.errText)
	}

	items := mustGroup(t, shared, "Main").Items
	if items[0].Command != "htop" {
		t.Errorf("expected the edited command, got %+v", items[0])
	}
}

func TestPromptCreatesAndRenamesGroups(t *testing.T) {
	shared := testShared(t)
	logger := core.NewLogger(&core.Config{Quiet: true})

	prompt := NewPromptModel(core.Config{}, logger, shared, ShowPromptMsg{Kind: PromptNewGroup})
	prompt.input.SetValue("   ")
	if cmd := prompt.submit(); cmd != nil {
		t.Error("expected a blank group name to be rejected")
	}
	if len(shared.Model.Groups()) != 1 {
		t.Error("rejected prompt changed the group count")
	}

	prompt.input.SetValue("Games")
	if cmd := prompt.submit(); cmd == nil {
		t.Fatalf("expected submit to succeed, dialog says: %s", prompt.errText)
	}
	if _, ok := shared.Model.Group("Games"); !ok {
		t.Error("group was not created")
	}

	rename := NewPromptModel(core.Config{}, logger, shared, ShowPromptMsg{Kind: PromptRenameGroup, Group: "Games"})
	if rename.input.Value() != "Games" {
		t.Error("expected the rename prompt to be pre-filled")
	}
	rename.input.SetValue("Arcade")
	cmd := rename.submit()
	if cmd == nil {
		t.Fatalf("expected rename to succeed, dialog says: %s", rename.errText)
	}
	msg, ok := cmd().(DialogClosedMsg)
	if !ok || msg.Renamed == nil || msg.Renamed.Old != "Games" || msg.Renamed.New != "Arcade" {
		t.Errorf("expected rename info in the close message, got %+v", msg)
	}
}

func TestConfirmDeletesGroup(t *testing.T) {
	shared := testShared(t)
	logger := core.NewLogger(&core.Config{Quiet: true})

	if err := shared.Model.AddGroup("Games"); err != nil {
		t.Fatal(err)
	}
	confirm := NewConfirmModel(core.Config{}, logger, shared, ShowConfirmMsg{
		Question: "Delete group 'Games' and all its items?",
		Action:   ConfirmDeleteGroup,
		Group:    "Games",
	})

	cmd := confirm.confirm()
	if cmd == nil {
		t.Fatal("expected a close command")
	}
	msg, ok := cmd().(DialogClosedMsg)
	if !ok || !msg.Refresh {
		t.Errorf("expected a refreshing DialogClosedMsg, got %+v", msg)
	}
	if _, ok := shared.Model.Group("Games"); ok {
		t.Error("group still present after confirmed delete")
	}
}

func TestConfirmDeletesItem(t *testing.T) {
	shared := testShared(t)
	logger := core.NewLogger(&core.Config{Quiet: true})

	item := mustGroup(t, shared, "Main").Items[0]
	confirm := NewConfirmModel(core.Config{}, logger, shared, ShowConfirmMsg{
		Question: "Delete?",
		Action:   ConfirmDeleteItem,
		Group:    "Main",
		Item:     item,
	})

	if cmd := confirm.confirm(); cmd == nil {
		t.Fatal("expected a close command")
	}
	if got := len(mustGroup(t, shared, "Main").Items); got != 0 {
		t.Errorf("expected 0 items after delete, got %d", got)
	}
}

func mustGroup(t *testing.T, shared *AppState, title string) core.ProgramGroup {
	t.Helper()
	g, ok := shared.Model.Group(title)
	if !ok {
		t.Fatalf("group %q not found", title)
	}
	return g
}
