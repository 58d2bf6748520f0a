// Package store holds the in-memory contact collection together with the
// selection and search state the list view works from.
package store

import (
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

// Store is the single source of truth for contacts, selected rows and the
// search term. All operations are synchronous and cannot fail. A Store is
// not safe for concurrent use; the UI event loop is its only writer.
type Store struct {
	contacts     []Contact
	selectedRows []int
	searchTerm   string

	// highest id ever handed out, so deleted ids are not reissued
	lastID int

	log logrus.FieldLogger
}

// New creates an empty store. A nil logger falls back to the standard logrus logger.
func New(logger logrus.FieldLogger) *Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Store{
		log: logger.WithField("component", "store"),
	}
}

// AddContact appends a new contact and returns it with its assigned ID
func (s *Store) AddContact(req AddContactRequest) Contact {
	c := req.contact(s.nextID())
	s.lastID = c.ID
	s.contacts = append(s.contacts, c)

	s.log.WithField("id", c.ID).Debug("contact added")
	return c
}

// nextID returns max(existing ids, last assigned id) + 1
func (s *Store) nextID() int {
	maxID := s.lastID
	for _, c := range s.contacts {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	return maxID + 1
}

// UpdateContact replaces the contact with the request's ID in place.
// It reports false and changes nothing when no such contact exists.
func (s *Store) UpdateContact(req UpdateContactRequest) bool {
	i := s.indexOf(req.ID)
	if i < 0 {
		s.log.WithField("id", req.ID).Debug("update ignored: contact not found")
		return false
	}

	s.contacts[i] = req.contact()
	s.log.WithField("id", req.ID).Debug("contact updated")
	return true
}

// DeleteContact removes the contact with id and drops it from the selection.
// It reports false when no such contact exists.
func (s *Store) DeleteContact(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		s.log.WithField("id", id).Debug("delete ignored: contact not found")
		return false
	}

	s.contacts = slices.Delete(s.contacts, i, i+1)
	s.selectedRows = slices.DeleteFunc(s.selectedRows, func(rowID int) bool {
		return rowID == id
	})

	s.log.WithField("id", id).Debug("contact deleted")
	return true
}

// DeleteContacts removes every contact whose ID is in ids and then clears
// the selection, whether or not any of the ids matched.
func (s *Store) DeleteContacts(ids []int) {
	before := len(s.contacts)
	s.contacts = slices.DeleteFunc(s.contacts, func(c Contact) bool {
		return slices.Contains(ids, c.ID)
	})
	s.selectedRows = nil

	s.log.WithFields(logrus.Fields{
		"requested": len(ids),
		"deleted":   before - len(s.contacts),
	}).Debug("contacts deleted")
}

// SetSelectedRows replaces the selection. Unknown and repeated ids are dropped.
func (s *Store) SetSelectedRows(ids []int) {
	rows := make([]int, 0, len(ids))
	for _, id := range ids {
		if s.indexOf(id) >= 0 && !slices.Contains(rows, id) {
			rows = append(rows, id)
		}
	}
	s.selectedRows = rows
}

// ToggleRowSelection flips whether id is selected. Ids that do not belong
// to a contact are ignored.
func (s *Store) ToggleRowSelection(id int) {
	if i := slices.Index(s.selectedRows, id); i >= 0 {
		s.selectedRows = slices.Delete(s.selectedRows, i, i+1)
		return
	}
	if s.indexOf(id) < 0 {
		return
	}
	s.selectedRows = append(s.selectedRows, id)
}

// SelectAllRows selects every contact that passes the current search filter
func (s *Store) SelectAllRows() {
	filtered := s.Filtered()
	rows := make([]int, 0, len(filtered))
	for _, c := range filtered {
		rows = append(rows, c.ID)
	}
	s.selectedRows = rows

	s.log.WithField("count", len(rows)).Debug("all rows selected")
}

// ClearSelection empties the selection
func (s *Store) ClearSelection() {
	s.selectedRows = nil
}

// SetSearchTerm replaces the search term. The selection is left as is, so
// rows hidden by the new term may stay selected.
func (s *Store) SetSearchTerm(term string) {
	s.searchTerm = term
}

// SearchTerm returns the current search term
func (s *Store) SearchTerm() string {
	return s.searchTerm
}

// Contacts returns a copy of every contact in insertion order
func (s *Store) Contacts() []Contact {
	return slices.Clone(s.contacts)
}

// Contact looks up a single contact by ID
func (s *Store) Contact(id int) (Contact, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Contact{}, false
	}
	return s.contacts[i], true
}

// Len returns the number of contacts
func (s *Store) Len() int {
	return len(s.contacts)
}

// Filtered returns the contacts whose name or email contains the search
// term, ignoring case. A blank term matches everything.
func (s *Store) Filtered() []Contact {
	if strings.TrimSpace(s.searchTerm) == "" {
		return s.Contacts()
	}

	term := strings.ToLower(s.searchTerm)
	var filtered []Contact
	for _, c := range s.contacts {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Email), term) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// SelectedRows returns a copy of the selected ids in selection order
func (s *Store) SelectedRows() []int {
	return slices.Clone(s.selectedRows)
}

// IsSelected reports whether id is selected
func (s *Store) IsSelected(id int) bool {
	return slices.Contains(s.selectedRows, id)
}

// Selection returns the selection summary
func (s *Store) Selection() Selection {
	return Selection{
		Count: len(s.selectedRows),
		IDs:   s.SelectedRows(),
	}
}

// CanBulkDelete reports whether a bulk delete has anything to act on
func (s *Store) CanBulkDelete() bool {
	return len(s.selectedRows) > 0
}

// AllFilteredSelected mirrors the header checkbox: true when the selection
// is as large as the non-empty filtered list.
func (s *Store) AllFilteredSelected() bool {
	n := len(s.Filtered())
	return n > 0 && len(s.selectedRows) == n
}

func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.contacts, func(c Contact) bool {
		return c.ID == id
	})
}
