package store

// Contact represents a person in the address book
type Contact struct {
	ID        int
	Name      string
	Email     string
	Address   string
	ContactNo string
}

// AddContactRequest carries the fields of a new contact. The ID is assigned
// by the store.
type AddContactRequest struct {
	Name      string
	Email     string
	Address   string
	ContactNo string
}

// UpdateContactRequest replaces every field of the contact with ID.
type UpdateContactRequest struct {
	ID        int
	Name      string
	Email     string
	Address   string
	ContactNo string
}

// Selection summarizes the rows currently marked for bulk action
type Selection struct {
	Count int
	IDs   []int
}

func (r AddContactRequest) contact(id int) Contact {
	return Contact{
		ID:        id,
		Name:      r.Name,
		Email:     r.Email,
		Address:   r.Address,
		ContactNo: r.ContactNo,
	}
}

func (r UpdateContactRequest) contact() Contact {
	return Contact{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Address:   r.Address,
		ContactNo: r.ContactNo,
	}
}
