package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/pdxmph/contact-manager/internal/form"
	"github.com/pdxmph/contact-manager/internal/store"
)

var stateFieldIdx = slices.Index(formFields, form.FieldState)

// openForm shows the add form, or the edit form when c is set
func (m *Model) openForm(c *store.Contact) tea.Cmd {
	f := form.Form{}
	m.editingID = 0
	if c != nil {
		f = form.FromContact(*c)
		m.editingID = c.ID
	}

	for i, field := range formFields {
		m.formInputs[i].SetValue(f.Get(field))
		m.formInputs[i].CursorEnd()
		m.formInputs[i].Blur()
	}
	m.formErrors = form.Errors{}
	m.formField = 0
	m.formInputs[0].Focus()

	if m.width > 0 {
		for i := range m.formInputs {
			m.formInputs[i].Width = min(m.width-30, 50)
		}
	}

	m.mode = modeForm
	return textinput.Blink
}

// closeForm discards the form; nothing was written to the store yet
func (m *Model) closeForm() {
	m.mode = modeList
	m.editingID = 0
	m.formField = 0
	m.formErrors = form.Errors{}
	for i := range m.formInputs {
		m.formInputs[i].Blur()
		m.formInputs[i].Reset()
	}
}

// currentForm collects the input values
func (m Model) currentForm() form.Form {
	var f form.Form
	for i, field := range formFields {
		f.Set(field, m.formInputs[i].Value())
	}
	return f
}

func (m *Model) focusField(idx int) {
	m.formInputs[m.formField].Blur()
	m.formField = idx
	if idx != stateFieldIdx {
		m.formInputs[idx].Focus()
	}
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return m, nil

	case "ctrl+s":
		m.submitForm()
		return m, nil

	case "tab", "down":
		if m.formField < len(formFields)-1 {
			m.focusField(m.formField + 1)
		}
		return m, textinput.Blink

	case "shift+tab", "up":
		if m.formField > 0 {
			m.focusField(m.formField - 1)
		}
		return m, textinput.Blink

	case "enter":
		if m.formField == stateFieldIdx {
			cmd := m.openStatePicker()
			return m, cmd
		}
		if m.formField < len(formFields)-1 {
			m.focusField(m.formField + 1)
			return m, textinput.Blink
		}
		m.submitForm()
		return m, nil
	}

	// The state field only changes through the picker
	if m.formField == stateFieldIdx {
		switch msg.String() {
		case "backspace", "delete":
			m.formInputs[stateFieldIdx].SetValue("")
			delete(m.formErrors, form.FieldState)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.formInputs[m.formField], cmd = m.formInputs[m.formField].Update(msg)
	delete(m.formErrors, formFields[m.formField])
	return m, cmd
}

// submitForm validates the form and dispatches add or update. On failure the
// form stays open with the failing fields marked.
func (m *Model) submitForm() {
	f := m.currentForm()

	errs := m.validator.Validate(f)
	if !errs.Empty() {
		m.formErrors = errs
		m.log.WithField("fields", errs.Fields()).Debug("form rejected")
		return
	}

	if m.editingID != 0 {
		if !m.store.UpdateContact(f.UpdateRequest(m.editingID)) {
			m.log.WithField("id", m.editingID).Warn("edited contact no longer exists")
		} else {
			m.log.WithField("id", m.editingID).Info("contact updated")
		}
	} else {
		c := m.store.AddContact(f.AddRequest())
		m.log.WithField("id", c.ID).Info("contact added")
	}

	m.closeForm()
	m.cursor = m.ensureValidCursor()
}

func (m *Model) openStatePicker() tea.Cmd {
	m.pickedState = new(string)
	*m.pickedState = m.formInputs[stateFieldIdx].Value()

	m.statePicker = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("State").
				Options(huh.NewOptions(form.States...)...).
				Filtering(true).
				Height(12).
				Value(m.pickedState),
		),
	).WithShowHelp(false).WithWidth(50)

	m.mode = modeStatePicker
	return m.statePicker.Init()
}

func (m Model) updateStatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && (key.String() == "esc" || key.String() == "ctrl+c") {
		m.closeStatePicker()
		return m, nil
	}

	model, cmd := m.statePicker.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.statePicker = f
	}

	switch m.statePicker.State {
	case huh.StateCompleted:
		m.applyState(*m.pickedState)
		return m, nil
	case huh.StateAborted:
		m.closeStatePicker()
		return m, nil
	}
	return m, cmd
}

// applyState stores the picked state in the form and returns to it
func (m *Model) applyState(state string) {
	m.formInputs[stateFieldIdx].SetValue(state)
	delete(m.formErrors, form.FieldState)
	m.closeStatePicker()
}

func (m *Model) closeStatePicker() {
	m.mode = modeForm
	m.statePicker = nil
	m.pickedState = nil
}
