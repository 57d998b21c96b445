// Package models/item_form_model.go - Program Item Dialog
//
// Create or edit a program item through four text inputs. Title and command
// are required; the commit goes through the model's editing boundary, and a
// validation failure keeps the dialog open with the reason shown instead of
// letting an invalid record in.

package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"progman/internal/core"
)

const (
	fieldTitle = iota
	fieldCommand
	fieldWorkingDir
	fieldIconPath
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Command", "Working Dir", "Icon Path"}

// ItemFormModel is the new/edit item dialog.
type ItemFormModel struct {
	cfg    core.Config
	logger *core.Logger
	shared *AppState

	group string
	edit  *core.ProgramItem

	inputs  [fieldCount]textinput.Model
	focus   int
	errText string
	styles  Styles
}

// NewItemFormModel creates the dialog. msg.Edit pre-fills the inputs when
// editing an existing item.
func NewItemFormModel(cfg core.Config, logger *core.Logger, shared *AppState, msg ShowItemFormMsg) *ItemFormModel {
	m := &ItemFormModel{
		cfg:    cfg,
		logger: logger,
		shared: shared,
		group:  msg.Group,
		edit:   msg.Edit,
		styles: NewStyles(shared.Model.Theme()),
	}

	for i := range m.inputs {
		in := textinput.New()
		in.CharLimit = 256
		in.Width = 36
		m.inputs[i] = in
	}
	m.inputs[fieldTitle].Placeholder = "My Program"
	m.inputs[fieldCommand].Placeholder = "program --flags"

	if msg.Edit != nil {
		m.inputs[fieldTitle].SetValue(msg.Edit.Title)
		m.inputs[fieldCommand].SetValue(msg.Edit.Command)
		m.inputs[fieldWorkingDir].SetValue(msg.Edit.WorkingDir)
		m.inputs[fieldIconPath].SetValue(msg.Edit.IconPath)
	}

	m.inputs[fieldTitle].Focus()
	return m
}

// Init starts the cursor blink.
func (m *ItemFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles dialog input.
func (m *ItemFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, closeDialog(false, "")
		case "enter":
			return m, m.submit()
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View renders the dialog box.
func (m *ItemFormModel) View() string {
	title := "New Program"
	if m.edit != nil {
		title = "Edit Program"
	}

	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render(" " + title + " "))
	b.WriteString("\n\n")
	for i := range m.inputs {
		b.WriteString(m.styles.FieldLabel.Render(fieldLabels[i] + ":"))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.DialogError.Render(m.errText))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("enter: ok • tab: next field • esc: cancel"))

	return m.styles.Dialog.Render(b.String())
}

func (m *ItemFormModel) setFocus(idx int) {
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}

// submit commits the item through the model and keeps the dialog open on a
// validation failure.
func (m *ItemFormModel) submit() tea.Cmd {
	item := core.ProgramItem{
		Title:      m.inputs[fieldTitle].Value(),
		Command:    m.inputs[fieldCommand].Value(),
		WorkingDir: m.inputs[fieldWorkingDir].Value(),
		IconPath:   m.inputs[fieldIconPath].Value(),
	}

	var err error
	status := "Program added."
	if m.edit != nil {
		err = m.shared.Model.UpdateItem(m.group, *m.edit, item)
		status = "Program updated."
	} else {
		err = m.shared.Model.AddItem(m.group, item)
	}
	if err != nil {
		m.errText = err.Error()
		return nil
	}
	return closeDialog(true, status)
}
