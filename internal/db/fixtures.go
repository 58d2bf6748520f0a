package db

import (
	"fmt"

	"github.com/pdxmph/contact-manager/internal/store"
)

// Fixtures returns realistic sample contacts
func Fixtures() []Contact {
	return []Contact{
		{
			Name:      "Priya Sharma",
			Email:     "priya.sharma@example.in",
			Address:   "12 MG Road, Indiranagar, Karnataka 560038",
			ContactNo: NewNullString("9845012345"),
		},
		{
			Name:      "Rahul Verma",
			Email:     "rahul.verma@workmail.com",
			Address:   "Flat 4B, Andheri East, Maharashtra 400069",
			ContactNo: NewNullString("9820098200"),
		},
		{
			Name:    "Anita Rao",
			Email:   "anita.rao@example.in",
			Address: "221 Anna Salai, Teynampet, Tamil Nadu 600018",
		},
		{
			Name:      "Vikram Singh",
			Email:     "vikram@singhandsons.co.in",
			Address:   "House 9, Civil Lines, Rajasthan 302006",
			ContactNo: NewNullString("9414012345"),
		},
		{
			Name:      "Meera Nair",
			Email:     "meera.nair@example.com",
			Address:   "TC 15/1120, Vazhuthacaud, Kerala 695014",
			ContactNo: NewNullString("9447011223"),
		},
		{
			Name:    "Arjun Mehta",
			Email:   "arjun.mehta@startup.io",
			Address: "B-42, Sector 62, Uttar Pradesh 201309",
		},
		{
			Name:      "Sneha Das",
			Email:     "sneha.das@example.in",
			Address:   "18 Park Street, Park Circus, West Bengal 700017",
			ContactNo: NewNullString("9830012345"),
		},
		{
			Name:      "Karan Kapoor",
			Email:     "karan.kapoor@example.com",
			Address:   "Plot 7, Jubilee Hills, Telangana 500033",
			ContactNo: NewNullString("9848022338"),
		},
		{
			Name:    "Fatima Sheikh",
			Email:   "fatima.sheikh@example.in",
			Address: "Lane 3, Panjim, Goa 403001",
		},
		{
			Name:      "Deepak Joshi",
			Email:     "deepak.joshi@example.org",
			Address:   "Mall Road, Near Clock Tower, Uttarakhand 248001",
			ContactNo: NewNullString("9412098765"),
		},
	}
}

// LoadFixtures adds the sample contacts straight to s
func LoadFixtures(s *store.Store) int {
	fixtures := Fixtures()
	for _, c := range fixtures {
		s.AddContact(c.AddRequest())
	}
	return len(fixtures)
}

// CreateFixturesDatabase creates a seed database filled with the sample contacts
func CreateFixturesDatabase(dbPath string) error {
	if err := Initialize(dbPath); err != nil {
		return fmt.Errorf("initializing fixtures database: %w", err)
	}

	database, err := Open(dbPath, nil)
	if err != nil {
		return fmt.Errorf("opening fixtures database: %w", err)
	}
	defer database.Close()

	for _, contact := range Fixtures() {
		if _, err := database.AddContact(contact); err != nil {
			return fmt.Errorf("adding fixture contact %s: %w", contact.Name, err)
		}
	}

	return nil
}
