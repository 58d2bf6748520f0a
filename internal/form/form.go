// Package form holds the add/edit contact form and the rules that gate its
// submission.
package form

import (
	"strings"

	"github.com/pdxmph/contact-manager/internal/address"
	"github.com/pdxmph/contact-manager/internal/store"
)

// Field names reported by validation
const (
	FieldName         = "name"
	FieldContactNo    = "contactNo"
	FieldEmail        = "email"
	FieldAddressLine1 = "addressLine1"
	FieldAddressLine2 = "addressLine2"
	FieldState        = "state"
	FieldPincode      = "pincode"
)

// Form is the editable view of a contact, with the address split into parts
type Form struct {
	Name         string `form:"name" validate:"notblank"`
	ContactNo    string `form:"contactNo" validate:"phone"`
	Email        string `form:"email" validate:"notblank,emailshape"`
	AddressLine1 string `form:"addressLine1" validate:"notblank"`
	AddressLine2 string `form:"addressLine2"`
	State        string `form:"state"`
	Pincode      string `form:"pincode" validate:"notblank"`
}

// FromContact fills a form from an existing contact
func FromContact(c store.Contact) Form {
	parts := address.Parse(c.Address)
	return Form{
		Name:         c.Name,
		ContactNo:    c.ContactNo,
		Email:        c.Email,
		AddressLine1: parts.Line1,
		AddressLine2: parts.Line2,
		State:        parts.State,
		Pincode:      parts.Pincode,
	}
}

// Address joins the address parts into the stored single-string form
func (f Form) Address() string {
	return address.Format(address.Fields{
		Line1:   f.AddressLine1,
		Line2:   f.AddressLine2,
		State:   f.State,
		Pincode: f.Pincode,
	})
}

// AddRequest builds the store request for a new contact
func (f Form) AddRequest() store.AddContactRequest {
	return store.AddContactRequest{
		Name:      f.Name,
		Email:     f.Email,
		Address:   f.Address(),
		ContactNo: f.ContactNo,
	}
}

// UpdateRequest builds the store request replacing contact id
func (f Form) UpdateRequest(id int) store.UpdateContactRequest {
	return store.UpdateContactRequest{
		ID:        id,
		Name:      f.Name,
		Email:     f.Email,
		Address:   f.Address(),
		ContactNo: f.ContactNo,
	}
}

// Get returns the value of a field by name
func (f Form) Get(field string) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldContactNo:
		return f.ContactNo
	case FieldEmail:
		return f.Email
	case FieldAddressLine1:
		return f.AddressLine1
	case FieldAddressLine2:
		return f.AddressLine2
	case FieldState:
		return f.State
	case FieldPincode:
		return f.Pincode
	}
	return ""
}

// Set updates a field by name. Unknown names are ignored.
func (f *Form) Set(field, value string) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldContactNo:
		f.ContactNo = value
	case FieldEmail:
		f.Email = value
	case FieldAddressLine1:
		f.AddressLine1 = value
	case FieldAddressLine2:
		f.AddressLine2 = value
	case FieldState:
		f.State = value
	case FieldPincode:
		f.Pincode = value
	}
}

// IsBlank reports whether every field is empty or whitespace
func (f Form) IsBlank() bool {
	for _, v := range []string{f.Name, f.ContactNo, f.Email, f.AddressLine1, f.AddressLine2, f.State, f.Pincode} {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
