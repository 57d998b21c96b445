// Package models/confirm_model.go - Delete Confirmation Dialog
//
// Yes/no confirmation before destructive operations. The deletion itself
// happens here on confirm, so the workspace only ever sees the result.

package models

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"progman/internal/core"
)

// ConfirmModel is the confirmation dialog.
type ConfirmModel struct {
	cfg    core.Config
	logger *core.Logger
	shared *AppState

	question string
	action   ConfirmAction
	group    string
	item     core.ProgramItem
	styles   Styles
}

// NewConfirmModel creates the dialog for one pending action.
func NewConfirmModel(cfg core.Config, logger *core.Logger, shared *AppState, msg ShowConfirmMsg) *ConfirmModel {
	return &ConfirmModel{
		cfg:      cfg,
		logger:   logger,
		shared:   shared,
		question: msg.Question,
		action:   msg.Action,
		group:    msg.Group,
		item:     msg.Item,
		styles:   NewStyles(shared.Model.Theme()),
	}
}

// Init implements tea.Model.
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update waits for a yes or no.
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y", "enter":
		return m, m.confirm()
	case "n", "N", "esc":
		return m, closeDialog(false, "")
	}
	return m, nil
}

// View renders the question box.
func (m *ConfirmModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render(" Confirm "))
	b.WriteString("\n\n")
	b.WriteString(m.question)
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("y: yes • n: no"))
	return m.styles.Dialog.Render(b.String())
}

func (m *ConfirmModel) confirm() tea.Cmd {
	switch m.action {
	case ConfirmDeleteItem:
		if err := m.shared.Model.DeleteItem(m.group, m.item); err != nil {
			m.logger.Error("confirm", err)
			return closeDialog(false, err.Error())
		}
		return closeDialog(true, "Program deleted.")

	case ConfirmDeleteGroup:
		if err := m.shared.Model.DeleteGroup(m.group); err != nil {
			m.logger.Error("confirm", err)
			return closeDialog(false, err.Error())
		}
		return closeDialog(true, "Group deleted.")
	}
	return closeDialog(false, "")
}
