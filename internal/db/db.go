// Package db reads seed contacts from a SQLite database. The running
// application never writes contacts back; the store lives in memory.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/pdxmph/contact-manager/internal/store"
)

// DB wraps the database connection
type DB struct {
	conn *sql.DB
	log  logrus.FieldLogger
}

// Open opens an existing seed database and applies pending migrations
func Open(dbPath string, logger logrus.FieldLogger) (*DB, error) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("seed database not found at %s\nRun 'contact-manager init-seed %s' to create it", dbPath, dbPath)
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	db := &DB{
		conn: conn,
		log:  logger.WithField("component", "db"),
	}

	if err := db.RunMigrations(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// ListContacts returns all contacts in insertion order
func (db *DB) ListContacts() ([]Contact, error) {
	query := `
		SELECT id, name, email, address, contact_no, created_at
		FROM contacts
		ORDER BY id
	`

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	var contacts []Contact
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Address, &c.ContactNo, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}

		// Clean up the name field - remove newlines and trim whitespace
		c.Name = strings.TrimSpace(strings.ReplaceAll(c.Name, "\n", " "))

		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}

// AddContact inserts a contact and returns its row ID
func (db *DB) AddContact(contact Contact) (int64, error) {
	query := `
		INSERT INTO contacts (name, email, address, contact_no, created_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
	`

	result, err := db.conn.Exec(query,
		contact.Name,
		contact.Email,
		contact.Address,
		contact.ContactNo,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting contact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting insert ID: %w", err)
	}

	return id, nil
}

// LoadInto adds every seed contact to s and returns how many were added
func (db *DB) LoadInto(s *store.Store) (int, error) {
	contacts, err := db.ListContacts()
	if err != nil {
		return 0, err
	}

	for _, c := range contacts {
		s.AddContact(c.AddRequest())
	}

	db.log.WithField("count", len(contacts)).Info("seed contacts loaded")
	return len(contacts), nil
}
