// Package models/prompt_model.go - Group Name Prompt
//
// Single-line prompt used for both "new group" and "rename group". The
// commit goes through the model's editing boundary; blank names keep the
// prompt open with the validation failure shown.

package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"progman/internal/core"
)

// PromptModel is the group name dialog.
type PromptModel struct {
	cfg    core.Config
	logger *core.Logger
	shared *AppState

	kind    PromptKind
	group   string
	input   textinput.Model
	errText string
	styles  Styles
}

// NewPromptModel creates the prompt, pre-filled with the current title when
// renaming.
func NewPromptModel(cfg core.Config, logger *core.Logger, shared *AppState, msg ShowPromptMsg) *PromptModel {
	in := textinput.New()
	in.CharLimit = 128
	in.Width = 30
	in.Placeholder = "Group name"
	if msg.Kind == PromptRenameGroup {
		in.SetValue(msg.Group)
	}
	in.Focus()

	return &PromptModel{
		cfg:    cfg,
		logger: logger,
		shared: shared,
		kind:   msg.Kind,
		group:  msg.Group,
		input:  in,
		styles: NewStyles(shared.Model.Theme()),
	}
}

// Init starts the cursor blink.
func (m *PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles prompt input.
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, closeDialog(false, "")
		case "enter":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt box.
func (m *PromptModel) View() string {
	title := "New Group"
	if m.kind == PromptRenameGroup {
		title = "Rename Group"
	}

	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render(" " + title + " "))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.DialogError.Render(m.errText))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("enter: ok • esc: cancel"))

	return m.styles.Dialog.Render(b.String())
}

func (m *PromptModel) submit() tea.Cmd {
	name := m.input.Value()

	if m.kind == PromptRenameGroup {
		if err := m.shared.Model.RenameGroup(m.group, name); err != nil {
			m.errText = err.Error()
			return nil
		}
		rename := &GroupRename{Old: m.group, New: strings.TrimSpace(name)}
		return func() tea.Msg {
			return DialogClosedMsg{Refresh: true, Status: "Group renamed.", Renamed: rename}
		}
	}

	if err := m.shared.Model.AddGroup(name); err != nil {
		m.errText = err.Error()
		return nil
	}
	return closeDialog(true, "Group created.")
}
