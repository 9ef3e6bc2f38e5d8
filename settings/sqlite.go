package settings

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists settings groups in a single sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens the settings database at file, creating it and its
// schema as needed.
func OpenSQLite(file string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS setting (grp TEXT NOT NULL, key TEXT NOT NULL, value TEXT NOT NULL, PRIMARY KEY (grp, key))"); err != nil {
		return nil, err
	}

	return &SQLiteStore{
		db: db,
	}, nil
}

// ReadGroup returns every key/value pair stored under group.
func (s *SQLiteStore) ReadGroup(group string) (map[string]string, error) {
	rows, err := s.db.Query("SELECT key, value FROM setting WHERE grp = ?", group)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		values[key] = value
	}

	return values, rows.Err()
}

// WriteGroup stores the given key/value pairs under group, replacing
// any previous values for the same keys.
func (s *SQLiteStore) WriteGroup(group string, values map[string]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	for key, value := range values {
		if _, err := tx.Exec("INSERT OR REPLACE INTO setting (grp, key, value) VALUES (?, ?, ?)", group, key, value); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// Groups returns the names of all groups present in the database.
func (s *SQLiteStore) Groups() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT grp FROM setting ORDER BY grp")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []string
	for rows.Next() {
		var group string
		if err := rows.Scan(&group); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	return groups, rows.Err()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
