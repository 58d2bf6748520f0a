package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdxmph/contact-manager/internal/form"
)

// Column widths, address takes the rest
const (
	checkWidth   = 4
	nameWidth    = 20
	contactWidth = 12
	emailWidth   = 28
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch m.mode {
	case modeForm:
		return m.renderForm()
	case modeStatePicker:
		return m.center(m.statePicker.View())
	case modeConfirmDelete:
		return m.center(m.confirm.View())
	}

	content := m.renderList(m.width-2, m.height-3)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		borderStyle.Width(m.width-2).Height(m.height-3).Render(content),
		m.renderHelp(),
	)
}

// renderList renders the title bar and the contact table
func (m Model) renderList(width, height int) string {
	var lines []string

	title := titleStyle.Render("Contact manager")
	actions := "n: Add Contact"
	if sel := m.store.Selection(); sel.Count > 0 {
		actions = errorStyle.Render(fmt.Sprintf("D: Bulk Delete (%d)", sel.Count)) + "  " + actions
	}
	gap := max(width-lipgloss.Width(title)-lipgloss.Width(actions)-2, 1)
	lines = append(lines, title+strings.Repeat(" ", gap)+actions)

	if m.mode == modeSearch {
		lines = append(lines, m.search.View())
	} else if term := m.store.SearchTerm(); term != "" {
		lines = append(lines, labelStyle.Render("Search: ")+term)
	} else {
		lines = append(lines, labelStyle.Render("/ to search"))
	}
	lines = append(lines, "")

	contacts := m.store.Filtered()

	// Header
	header := fmt.Sprintf("Contacts (%d)", len(contacts))
	if sel := m.store.Selection(); sel.Count > 0 {
		header += fmt.Sprintf(" • Selected (%d)", sel.Count)
	}
	lines = append(lines, header)

	addressWidth := max(width-checkWidth-nameWidth-contactWidth-emailWidth-2, 10)
	lines = append(lines, labelStyle.Render(row(
		checkbox(m.store.AllFilteredSelected()),
		"Name", "Contact", "Address", "Email",
		addressWidth,
	)))
	lines = append(lines, strings.Repeat("─", max(width-2, 0)))

	if len(contacts) == 0 {
		lines = append(lines, "No data available")
		return strings.Join(lines, "\n")
	}

	// Calculate visible range
	visibleHeight := max(height-len(lines)-1, 1)
	startIdx := 0
	if m.cursor >= visibleHeight {
		startIdx = m.cursor - visibleHeight + 1
	}

	for i := startIdx; i < len(contacts) && i < startIdx+visibleHeight; i++ {
		c := contacts[i]

		contactNo := c.ContactNo
		if contactNo == "" {
			contactNo = "-"
		}

		selected := m.store.IsSelected(c.ID)
		line := row(checkbox(selected), c.Name, contactNo, c.Address, c.Email, addressWidth)

		if i == m.cursor {
			line = selectedStyle.Render(line)
		} else if selected {
			line = checkedStyle.Render(line)
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// row lays out one table line with fixed column widths
func row(check, name, contact, address, email string, addressWidth int) string {
	return cell(check, checkWidth) +
		cell(name, nameWidth) +
		cell(contact, contactWidth) +
		cell(address, addressWidth) +
		cell(email, emailWidth)
}

// cell truncates s to leave one column of gap, then pads it to width
func cell(s string, width int) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	s = lipgloss.NewStyle().MaxWidth(width - 1).Inline(true).Render(s)
	return lipgloss.NewStyle().Width(width).Inline(true).Render(s)
}

// renderHelp renders the help line
func (m Model) renderHelp() string {
	if m.mode == modeSearch {
		return " Type to search • ↑/↓: navigate • Enter: confirm • Esc: clear"
	}

	help := " j/k: navigate • space: select • a: select all • n: add • e: edit • d: delete • /: search"

	if m.store.CanBulkDelete() {
		help += " • D: bulk delete"
	}

	if m.store.SearchTerm() != "" {
		help += " • Esc: clear search"
	}

	help += " • q: quit"

	return help
}

// renderForm renders the add/edit overlay
func (m Model) renderForm() string {
	var lines []string

	if m.editingID != 0 {
		lines = append(lines, titleStyle.Render("Edit Contact"))
	} else {
		lines = append(lines, titleStyle.Render("Add Contact"))
	}
	lines = append(lines, strings.Repeat("─", 40))
	lines = append(lines, "")

	for i, field := range formFields {
		label := fmt.Sprintf("%-16s", fieldLabels[field]+":")
		if isRequired(field, m.validator) {
			label = fmt.Sprintf("%-16s", fieldLabels[field]+"*:")
		}
		if m.formErrors.Has(field) {
			label = errorStyle.Render(label)
		}

		var value string
		switch {
		case field == form.FieldState && i == m.formField:
			state := m.formInputs[i].Value()
			if state == "" {
				state = m.formInputs[i].Placeholder
			}
			value = selectedStyle.Render("< " + state + " >")
		case i == m.formField:
			value = m.formInputs[i].View()
		default:
			value = m.formInputs[i].Value()
			if value == "" {
				value = labelStyle.Render(m.formInputs[i].Placeholder)
			}
		}

		lines = append(lines, label+value)
		lines = append(lines, "")
	}

	if !m.formErrors.Empty() {
		lines = append(lines, errorStyle.Render("Please fix the highlighted fields"))
		lines = append(lines, "")
	}

	action := "add"
	if m.editingID != 0 {
		action = "update"
	}
	lines = append(lines, fmt.Sprintf("Tab/↓: next • Shift+Tab/↑: prev • Ctrl+S: %s • Esc: cancel", action))

	box := borderStyle.
		Padding(1).
		Width(70).
		Background(lipgloss.Color("235")).
		Render(strings.Join(lines, "\n"))

	return m.center(box)
}

// isRequired reports whether the form marks field as required
func isRequired(field string, v *form.Validator) bool {
	switch field {
	case form.FieldName, form.FieldEmail, form.FieldAddressLine1, form.FieldPincode:
		return true
	case form.FieldState:
		return v.RequiresState()
	}
	return false
}

func confirmTitle(count int) string {
	if count == 1 {
		return "Delete 1 contact?"
	}
	return fmt.Sprintf("Delete %d contacts?", count)
}

// center places content in the middle of the screen
func (m Model) center(content string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
