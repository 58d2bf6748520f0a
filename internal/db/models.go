package db

import (
	"database/sql"
	"time"

	"github.com/pdxmph/contact-manager/internal/store"
)

// Contact represents a row of the seed database
type Contact struct {
	ID        int
	Name      string
	Email     string
	Address   string
	ContactNo sql.NullString
	CreatedAt time.Time
}

// AddRequest converts the row into a store request. The seed ID is not
// carried over; the store assigns its own.
func (c Contact) AddRequest() store.AddContactRequest {
	return store.AddContactRequest{
		Name:      c.Name,
		Email:     c.Email,
		Address:   c.Address,
		ContactNo: c.ContactNo.String,
	}
}

// NewNullString creates a sql.NullString from a string
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
