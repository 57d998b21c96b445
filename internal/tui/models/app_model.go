// Package models/app_model.go - Main Application Coordinator
//
// This file implements the coordinator that owns the workspace screen and
// routes input to modal dialogs (item form, group prompt, confirmation)
// while one is open. Dialogs are rendered as overlays centered on the
// workspace, and report back through DialogClosedMsg.

package models

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"progman/internal/core"
	"progman/internal/tui/compose"
)

// AppState holds what every screen needs to share: the application model
// and the launch service. Screens mutate the model only through its
// operations and otherwise work on display-time snapshots.
type AppState struct {
	Model    *core.AppModel
	Launcher core.Launcher
}

// ShowItemFormMsg opens the new/edit item dialog. Edit is nil for a new
// item, otherwise the item being edited.
type ShowItemFormMsg struct {
	Group string
	Edit  *core.ProgramItem
}

// PromptKind selects what a text prompt edits.
type PromptKind int

const (
	PromptNewGroup PromptKind = iota
	PromptRenameGroup
)

// ShowPromptMsg opens the single-line group name prompt.
type ShowPromptMsg struct {
	Kind  PromptKind
	Group string // the group being renamed, for PromptRenameGroup
}

// ConfirmAction selects what a confirmation dialog deletes.
type ConfirmAction int

const (
	ConfirmDeleteItem ConfirmAction = iota
	ConfirmDeleteGroup
)

// ShowConfirmMsg opens a yes/no confirmation dialog.
type ShowConfirmMsg struct {
	Question string
	Action   ConfirmAction
	Group    string
	Item     core.ProgramItem
}

// GroupRename reports a completed rename so the workspace can retitle the
// open window in place, keeping its placement.
type GroupRename struct {
	Old string
	New string
}

// DialogClosedMsg is sent by a dialog when it finishes. Refresh asks the
// workspace to resync its windows with the model.
type DialogClosedMsg struct {
	Refresh bool
	Status  string
	Renamed *GroupRename
}

func closeDialog(refresh bool, status string) tea.Cmd {
	return func() tea.Msg {
		return DialogClosedMsg{Refresh: refresh, Status: status}
	}
}

// AppModel is the top-level bubbletea model.
type AppModel struct {
	cfg    core.Config
	logger *core.Logger
	shared *AppState

	workspace *WorkspaceModel
	dialog    tea.Model

	width  int
	height int
}

// NewAppModel creates the coordinator around a loaded application model.
func NewAppModel(cfg core.Config, logger *core.Logger, model *core.AppModel) *AppModel {
	shared := &AppState{Model: model}
	return &AppModel{
		cfg:       cfg,
		logger:    logger,
		shared:    shared,
		workspace: NewWorkspaceModel(cfg, logger, shared),
	}
}

// Init initializes the workspace.
func (m *AppModel) Init() tea.Cmd {
	return m.workspace.Init()
}

// Update routes messages: size changes go everywhere, dialog-opening
// messages create the dialog, and keys go to the dialog while one is open.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		var cmd tea.Cmd
		_, cmd = m.workspace.Update(msg)
		return m, cmd

	case ShowItemFormMsg:
		m.dialog = NewItemFormModel(m.cfg, m.logger, m.shared, msg)
		return m, m.dialog.Init()

	case ShowPromptMsg:
		m.dialog = NewPromptModel(m.cfg, m.logger, m.shared, msg)
		return m, m.dialog.Init()

	case ShowConfirmMsg:
		m.dialog = NewConfirmModel(m.cfg, m.logger, m.shared, msg)
		return m, m.dialog.Init()

	case DialogClosedMsg:
		m.dialog = nil
		var cmd tea.Cmd
		_, cmd = m.workspace.Update(msg)
		return m, cmd
	}

	if m.dialog != nil {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	_, cmd = m.workspace.Update(msg)
	return m, cmd
}

// View renders the workspace, with the open dialog centered on top of it.
func (m *AppModel) View() string {
	base := m.workspace.View()
	if m.dialog == nil {
		return base
	}

	box := m.dialog.View()
	x := (m.width - lipgloss.Width(box)) / 2
	y := (m.height - lipgloss.Height(box)) / 2
	return compose.Overlay(base, box, x, y)
}
