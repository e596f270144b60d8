// Package store persists engagement payloads in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Store is the SQLite-backed engagement store. Rows are keyed by
// (channel_id, engagement_type) and writes are last-write-wins.
type Store struct {
	db   *sql.DB
	path string
}

// New opens (creating if needed) the engagement database at dataDir/tubelens.db.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return Open(filepath.Join(dataDir, "tubelens.db"))
}

// Open opens the engagement database at an explicit path.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return s, nil
}

// initialize creates the engagement table.
func (s *Store) initialize() error {
	table := `
	CREATE TABLE IF NOT EXISTS channel_engagement (
		channel_id TEXT NOT NULL,
		engagement_type TEXT NOT NULL,
		json_response TEXT,
		PRIMARY KEY (channel_id, engagement_type)
	);`

	if _, err := s.db.Exec(table); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Ping verifies the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Save stores an engagement payload, replacing any previous entry for the
// same (channelID, engagementType) key.
func (s *Store) Save(channelID, engagementType string, data json.RawMessage) error {
	query := `
	INSERT OR REPLACE INTO channel_engagement (channel_id, engagement_type, json_response)
	VALUES (?, ?, ?)`

	if _, err := s.db.Exec(query, channelID, engagementType, string(data)); err != nil {
		return fmt.Errorf("failed to save engagement data: %w", err)
	}
	return nil
}

// Get retrieves one engagement payload. A missing key returns found=false
// with a nil payload and no error.
func (s *Store) Get(channelID, engagementType string) (json.RawMessage, bool, error) {
	query := `
	SELECT json_response FROM channel_engagement
	WHERE channel_id = ? AND engagement_type = ?`

	var payload string
	err := s.db.QueryRow(query, channelID, engagementType).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read engagement data: %w", err)
	}
	return json.RawMessage(payload), true, nil
}

// GetAll retrieves every engagement payload stored for a channel, keyed by
// engagement type. A channel with no rows returns an empty map.
func (s *Store) GetAll(channelID string) (map[string]json.RawMessage, error) {
	query := `
	SELECT engagement_type, json_response FROM channel_engagement
	WHERE channel_id = ?`

	rows, err := s.db.Query(query, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list engagement data: %w", err)
	}
	defer rows.Close()

	result := make(map[string]json.RawMessage)
	for rows.Next() {
		var engagementType, payload string
		if err := rows.Scan(&engagementType, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan engagement row: %w", err)
		}
		result[engagementType] = json.RawMessage(payload)
	}
	return result, rows.Err()
}

// Stats summarizes store contents for the status surface and CLI.
type Stats struct {
	Entries  int `json:"entries"`
	Channels int `json:"channels"`
}

// GetStats returns row and distinct-channel counts.
func (s *Store) GetStats() (Stats, error) {
	var stats Stats

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM channel_engagement`).Scan(&stats.Entries); err != nil {
		return stats, fmt.Errorf("failed to count entries: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(DISTINCT channel_id) FROM channel_engagement`).Scan(&stats.Channels); err != nil {
		return stats, fmt.Errorf("failed to count channels: %w", err)
	}
	return stats, nil
}

// Clear removes every stored engagement entry.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM channel_engagement`); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	return nil
}
