package db

import (
	"fmt"
)

// RunMigrations applies any pending database migrations
func (db *DB) RunMigrations() error {
	if err := db.runContactNoMigration(); err != nil {
		return err
	}

	return nil
}

// Seed files written before phone numbers were tracked lack contact_no
func (db *DB) runContactNoMigration() error {
	var count int
	err := db.conn.QueryRow(`
		SELECT COUNT(*)
		FROM pragma_table_info('contacts')
		WHERE name = 'contact_no'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking for contact_no column: %w", err)
	}

	if count > 0 {
		return nil
	}

	db.log.Info("running migration: adding contact_no column")

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`ALTER TABLE contacts ADD COLUMN contact_no TEXT`)
	if err != nil && err.Error() != "duplicate column name: contact_no" {
		return fmt.Errorf("adding contact_no column: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration: %w", err)
	}

	db.log.Info("migration completed successfully")
	return nil
}
