package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdxmph/contact-manager/internal/form"
	"github.com/pdxmph/contact-manager/internal/store"
)

func newTestModel(t *testing.T, names ...string) Model {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s := store.New(logger)
	for _, name := range names {
		s.AddContact(store.AddContactRequest{
			Name:    name,
			Email:   strings.ToLower(name) + "@example.com",
			Address: "L1, L2, Goa 403001",
		})
	}

	m := New(s, form.NewValidator(false), logger)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return next.(Model)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Model)
}

func TestNavigation(t *testing.T) {
	m := newTestModel(t, "Alpha", "Beta", "Gamma")

	m = press(t, m, "j", "j", "j")
	assert.Equal(t, 2, m.cursor)

	m = press(t, m, "k")
	assert.Equal(t, 1, m.cursor)

	m = press(t, m, "up", "up")
	assert.Equal(t, 0, m.cursor)
}

func TestToggleAndSelectAll(t *testing.T) {
	m := newTestModel(t, "Alpha", "Beta", "Gamma")

	m = press(t, m, " ", "j", "x")
	assert.Equal(t, []int{1, 2}, m.store.SelectedRows())

	m = press(t, m, "x")
	assert.Equal(t, []int{1}, m.store.SelectedRows())

	m = press(t, m, "a")
	assert.Equal(t, []int{1, 2, 3}, m.store.SelectedRows())

	m = press(t, m, "a")
	assert.Empty(t, m.store.SelectedRows())
}

func TestRowDeleteClearsSelection(t *testing.T) {
	m := newTestModel(t, "Alpha", "Beta", "Gamma")
	m.store.SetSelectedRows([]int{1, 3})

	m = press(t, m, "j", "d")

	assert.Equal(t, 2, m.store.Len())
	_, found := m.store.Contact(2)
	assert.False(t, found)
	assert.Empty(t, m.store.SelectedRows())
}

func TestRowDeleteKeepsCursorInRange(t *testing.T) {
	m := newTestModel(t, "Alpha", "Beta")

	m = press(t, m, "j", "d")

	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, 1, m.store.Len())
}

func TestSearch(t *testing.T) {
	m := newTestModel(t, "Alpha", "Beta", "Alphonse")

	m = press(t, m, "/")
	require.Equal(t, modeSearch, m.mode)

	m = typeText(t, m, "alph")
	assert.Equal(t, "alph", m.store.SearchTerm())
	assert.Len(t, m.store.Filtered(), 2)

	m = press(t, m, "enter")
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "alph", m.store.SearchTerm())

	// select all only covers visible rows
	m = press(t, m, "a")
	assert.Equal(t, []int{1, 3}, m.store.SelectedRows())

	m = press(t, m, "esc")
	assert.Equal(t, "", m.store.SearchTerm())
	assert.Len(t, m.store.Filtered(), 3)
	assert.Equal(t, []int{1, 3}, m.store.SelectedRows())
}

func TestSearchEscClears(t *testing.T) {
	m := newTestModel(t, "Alpha", "Beta")

	m = press(t, m, "/")
	m = typeText(t, m, "zzz")
	assert.Empty(t, m.store.Filtered())

	m = press(t, m, "esc")
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "", m.store.SearchTerm())
}

func TestAddContactThroughForm(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "n")
	require.Equal(t, modeForm, m.mode)
	assert.Equal(t, 0, m.editingID)

	m = typeText(t, m, "Priya Sharma")
	m = press(t, m, "tab")
	m = typeText(t, m, "9876543210")
	m = press(t, m, "tab")
	m = typeText(t, m, "priya@example.in")
	m = press(t, m, "tab")
	m = typeText(t, m, "12 MG Road")
	m = press(t, m, "tab")
	m = typeText(t, m, "Indiranagar")
	m = press(t, m, "tab")
	require.Equal(t, stateFieldIdx, m.formField)
	m.applyState("Karnataka")
	m = press(t, m, "tab")
	m = typeText(t, m, "560038")
	m = press(t, m, "ctrl+s")

	assert.Equal(t, modeList, m.mode)
	contacts := m.store.Contacts()
	require.Len(t, contacts, 1)
	assert.Equal(t, store.Contact{
		ID:        1,
		Name:      "Priya Sharma",
		Email:     "priya@example.in",
		Address:   "12 MG Road, Indiranagar, Karnataka 560038",
		ContactNo: "9876543210",
	}, contacts[0])
}

func TestInvalidFormBlocksSubmit(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "n", "ctrl+s")

	assert.Equal(t, modeForm, m.mode)
	assert.Equal(t, []string{
		form.FieldAddressLine1,
		form.FieldEmail,
		form.FieldName,
		form.FieldPincode,
	}, m.formErrors.Fields())
	assert.Equal(t, 0, m.store.Len())
	assert.Contains(t, m.View(), "Please fix the highlighted fields")

	// typing into a field clears its error
	m = typeText(t, m, "P")
	assert.False(t, m.formErrors.Has(form.FieldName))
}

func TestEditContactThroughForm(t *testing.T) {
	m := newTestModel(t, "Alpha", "Beta")

	m = press(t, m, "j", "e")
	require.Equal(t, modeForm, m.mode)
	assert.Equal(t, 2, m.editingID)
	assert.Equal(t, "Beta", m.formInputs[0].Value())
	assert.Equal(t, "Goa", m.formInputs[stateFieldIdx].Value())

	m = typeText(t, m, "x")
	m = press(t, m, "tab")
	m = typeText(t, m, "9123456780")
	m = press(t, m, "ctrl+s")

	assert.Equal(t, modeList, m.mode)
	c, found := m.store.Contact(2)
	require.True(t, found)
	assert.Equal(t, "Betax", c.Name)
	assert.Equal(t, "9123456780", c.ContactNo)
	assert.Equal(t, "L1, L2, Goa 403001", c.Address)
	assert.Equal(t, 2, m.store.Len())
}

func TestEditOfDeletedContactIsNoop(t *testing.T) {
	m := newTestModel(t, "Alpha")

	m = press(t, m, "e")
	m.store.DeleteContact(1)
	m = press(t, m, "ctrl+s")

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, 0, m.store.Len())
}

func TestCancelFormDiscards(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "n")
	m = typeText(t, m, "Half typed")
	m = press(t, m, "esc")

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, 0, m.store.Len())

	m = press(t, m, "n")
	assert.Equal(t, "", m.formInputs[0].Value())
}

func TestStateFieldOnlyChangesThroughPicker(t *testing.T) {
	m := newTestModel(t, "Alpha")

	m = press(t, m, "e", "tab", "tab", "tab", "tab", "tab")
	require.Equal(t, stateFieldIdx, m.formField)

	m = typeText(t, m, "abc")
	assert.Equal(t, "Goa", m.formInputs[stateFieldIdx].Value())

	m = press(t, m, "enter")
	require.Equal(t, modeStatePicker, m.mode)
	require.NotNil(t, m.statePicker)
	assert.Equal(t, "Goa", *m.pickedState)

	m = press(t, m, "esc")
	assert.Equal(t, modeForm, m.mode)
	assert.Nil(t, m.statePicker)

	m = press(t, m, "backspace")
	assert.Equal(t, "", m.formInputs[stateFieldIdx].Value())
}

func TestRequireStateValidator(t *testing.T) {
	m := newTestModel(t)
	m.validator = form.NewValidator(true)

	m = press(t, m, "n", "ctrl+s")

	assert.True(t, m.formErrors.Has(form.FieldState))
}

func TestBulkDeleteNeedsSelection(t *testing.T) {
	m := newTestModel(t, "Alpha", "Beta")

	m = press(t, m, "D")
	assert.Equal(t, modeList, m.mode)

	m = press(t, m, " ", "D")
	require.Equal(t, modeConfirmDelete, m.mode)
	require.NotNil(t, m.confirm)

	m = press(t, m, "esc")
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, 2, m.store.Len())
	assert.Equal(t, []int{1}, m.store.SelectedRows())
}

func TestFinishBulkDelete(t *testing.T) {
	m := newTestModel(t, "Alpha", "Beta", "Gamma")
	m = press(t, m, "a", "j", "j")
	m.store.ToggleRowSelection(2)

	m.finishBulkDelete(false)
	assert.Equal(t, 3, m.store.Len())
	assert.Equal(t, []int{1, 3}, m.store.SelectedRows())

	m.finishBulkDelete(true)
	assert.Equal(t, modeList, m.mode)
	assert.Empty(t, m.store.SelectedRows())
	contacts := m.store.Contacts()
	require.Len(t, contacts, 1)
	assert.Equal(t, 2, contacts[0].ID)
	assert.Equal(t, 0, m.cursor)
}

func TestViewList(t *testing.T) {
	m := newTestModel(t, "Alpha", "Beta")
	m.store.SetSelectedRows([]int{1, 2})

	view := m.View()

	assert.Contains(t, view, "Contact manager")
	assert.Contains(t, view, "Contacts (2)")
	assert.Contains(t, view, "Bulk Delete (2)")
	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "Alpha")
	assert.Contains(t, view, "alpha@example.com")
}

func TestViewEmpty(t *testing.T) {
	m := newTestModel(t)

	view := m.View()

	assert.Contains(t, view, "No data available")
	assert.NotContains(t, view, "Bulk Delete")
}

func TestViewBeforeWindowSize(t *testing.T) {
	s := store.New(nil)
	m := New(s, nil, nil)

	assert.Equal(t, "Loading...", m.View())
}

func TestViewForm(t *testing.T) {
	m := newTestModel(t, "Alpha")

	m = press(t, m, "e")
	view := m.View()
	assert.Contains(t, view, "Edit Contact")
	assert.Contains(t, view, "Address Line 1")

	m = press(t, m, "esc", "n")
	assert.Contains(t, m.View(), "Add Contact")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
