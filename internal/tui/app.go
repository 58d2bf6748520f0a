package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/pdxmph/contact-manager/internal/form"
	"github.com/pdxmph/contact-manager/internal/store"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeForm
	modeStatePicker
	modeConfirmDelete
)

// Model represents the main application state
type Model struct {
	store     *store.Store
	validator *form.Validator
	log       logrus.FieldLogger

	cursor int
	width  int
	height int
	mode   mode

	search textinput.Model

	// Form overlay
	formInputs []textinput.Model
	formField  int
	editingID  int // 0 while adding
	formErrors form.Errors

	// State picker overlay
	statePicker *huh.Form
	pickedState *string

	// Bulk delete confirmation overlay
	confirm       *huh.Form
	confirmDelete *bool
}

// Form fields in display order
var formFields = []string{
	form.FieldName,
	form.FieldContactNo,
	form.FieldEmail,
	form.FieldAddressLine1,
	form.FieldAddressLine2,
	form.FieldState,
	form.FieldPincode,
}

var fieldLabels = map[string]string{
	form.FieldName:         "Name",
	form.FieldContactNo:    "Contact No.",
	form.FieldEmail:        "Email",
	form.FieldAddressLine1: "Address Line 1",
	form.FieldAddressLine2: "Address Line 2",
	form.FieldState:        "State",
	form.FieldPincode:      "Pincode",
}

// Styles
var (
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))

	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// New creates a new application model over s
func New(s *store.Store, v *form.Validator, logger logrus.FieldLogger) *Model {
	if v == nil {
		v = form.NewValidator(false)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	ti := textinput.New()
	ti.Placeholder = "Search by name or email..."
	ti.Width = 30
	ti.CharLimit = 50
	ti.Prompt = "> "
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230"))
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	ti.SetValue(s.SearchTerm())

	inputs := make([]textinput.Model, len(formFields))
	for i, field := range formFields {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 200
		inputs[i].Prompt = ""

		switch field {
		case form.FieldContactNo:
			inputs[i].Placeholder = "10 digits"
			inputs[i].CharLimit = 15
		case form.FieldEmail:
			inputs[i].Placeholder = "name@example.com"
		case form.FieldState:
			inputs[i].Placeholder = "Enter to choose"
		case form.FieldPincode:
			inputs[i].CharLimit = 10
		default:
			inputs[i].Placeholder = fieldLabels[field]
		}
	}

	return &Model{
		store:      s,
		validator:  v,
		log:        logger.WithField("component", "tui"),
		search:     ti,
		formInputs: inputs,
		formErrors: form.Errors{},
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		if m.width > 0 {
			m.search.Width = m.width/3 - 4
		}
	}

	// huh overlays need every message, not just keys
	switch m.mode {
	case modeStatePicker:
		return m.updateStatePicker(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(key)
	case modeSearch:
		return m.updateSearch(key)
	}
	return m.updateList(key)
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	contacts := m.store.Filtered()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(contacts)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case " ", "x":
		if c, ok := m.current(); ok {
			m.store.ToggleRowSelection(c.ID)
		}

	case "a":
		// Header checkbox
		if m.store.AllFilteredSelected() {
			m.store.ClearSelection()
		} else {
			m.store.SelectAllRows()
		}

	case "n":
		cmd := m.openForm(nil)
		return m, cmd

	case "e", "enter":
		if c, ok := m.current(); ok {
			cmd := m.openForm(&c)
			return m, cmd
		}

	case "d":
		// Row delete goes through the bulk path, which also clears the selection
		if c, ok := m.current(); ok {
			m.store.DeleteContacts([]int{c.ID})
			m.log.WithField("id", c.ID).Info("contact deleted")
			m.cursor = m.ensureValidCursor()
		}

	case "D":
		if m.store.CanBulkDelete() {
			cmd := m.openConfirm()
			return m, cmd
		}

	case "/":
		m.mode = modeSearch
		m.search.Focus()
		return m, textinput.Blink

	case "esc":
		if m.store.SearchTerm() != "" {
			m.search.Reset()
			m.store.SetSearchTerm("")
			m.cursor = m.ensureValidCursor()
		}
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.search.Reset()
		m.search.Blur()
		m.store.SetSearchTerm("")
		m.cursor = m.ensureValidCursor()
		return m, nil

	case "enter":
		m.mode = modeList
		m.search.Blur()
		m.cursor = m.ensureValidCursor()
		return m, nil

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down":
		if m.cursor < len(m.store.Filtered())-1 {
			m.cursor++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.store.SetSearchTerm(m.search.Value())
	m.cursor = m.ensureValidCursor()
	return m, cmd
}

// current returns the contact under the cursor
func (m Model) current() (store.Contact, bool) {
	contacts := m.store.Filtered()
	if len(contacts) == 0 || m.cursor >= len(contacts) {
		return store.Contact{}, false
	}
	return contacts[m.cursor], true
}

// ensureValidCursor keeps the cursor within the filtered list
func (m Model) ensureValidCursor() int {
	n := len(m.store.Filtered())
	if n == 0 || m.cursor < 0 {
		return 0
	}
	if m.cursor >= n {
		return n - 1
	}
	return m.cursor
}

func (m *Model) openConfirm() tea.Cmd {
	m.confirmDelete = new(bool)
	m.confirm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(confirmTitle(m.store.Selection().Count)).
				Description("This action cannot be undone.").
				Affirmative("Delete").
				Negative("Cancel").
				Value(m.confirmDelete),
		),
	).WithShowHelp(false).WithWidth(50)

	m.mode = modeConfirmDelete
	return m.confirm.Init()
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && (key.String() == "esc" || key.String() == "ctrl+c") {
		m.closeConfirm()
		return m, nil
	}

	model, cmd := m.confirm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.confirm = f
	}

	switch m.confirm.State {
	case huh.StateCompleted:
		m.finishBulkDelete(*m.confirmDelete)
		return m, nil
	case huh.StateAborted:
		m.closeConfirm()
		return m, nil
	}
	return m, cmd
}

// finishBulkDelete applies the outcome of the confirmation dialog
func (m *Model) finishBulkDelete(confirmed bool) {
	if confirmed && m.store.CanBulkDelete() {
		ids := m.store.SelectedRows()
		m.store.DeleteContacts(ids)
		m.store.ClearSelection()
		m.log.WithField("count", len(ids)).Info("bulk delete")
	}
	m.closeConfirm()
	m.cursor = m.ensureValidCursor()
}

func (m *Model) closeConfirm() {
	m.mode = modeList
	m.confirm = nil
	m.confirmDelete = nil
}
