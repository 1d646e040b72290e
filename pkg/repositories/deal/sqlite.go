package deal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite table schemas
const (
	createDealsTableSQL = `
	CREATE TABLE IF NOT EXISTS deals (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		card TEXT NOT NULL,
		dealt_from TEXT NOT NULL,
		sequence INTEGER NOT NULL,
		dealt_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createDealsIndexSQL = `
	CREATE INDEX IF NOT EXISTS idx_deals_session_id ON deals(session_id)`
)

// SQLiteRepository implements Repository using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite repository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Ensure directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Create tables if they don't exist
	if _, err := db.Exec(createDealsTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating deals table: %w", err)
	}

	if _, err := db.Exec(createDealsIndexSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating deals index: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// SaveDeal stores a deal record for a session
func (r *SQLiteRepository) SaveDeal(ctx context.Context, record *DealRecord) error {
	query := `INSERT INTO deals (id, session_id, card, dealt_from, sequence, dealt_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.SessionID, record.Card, record.From, record.Sequence, record.DealtAt)
	if err != nil {
		return fmt.Errorf("error saving deal: %w", err)
	}
	return nil
}

// GetSessionDeals retrieves all deals for a session in deal order
func (r *SQLiteRepository) GetSessionDeals(ctx context.Context, sessionID string) ([]*DealRecord, error) {
	query := `SELECT id, session_id, card, dealt_from, sequence, dealt_at
		FROM deals WHERE session_id = ? ORDER BY sequence ASC`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error querying deals: %w", err)
	}
	defer rows.Close()

	var records []*DealRecord
	for rows.Next() {
		record := &DealRecord{}
		if err := rows.Scan(&record.ID, &record.SessionID, &record.Card,
			&record.From, &record.Sequence, &record.DealtAt); err != nil {
			return nil, fmt.Errorf("error scanning deal: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deals: %w", err)
	}

	if records == nil {
		return []*DealRecord{}, nil
	}
	return records, nil
}

// CountSessionDeals returns the number of deals recorded for a session
func (r *SQLiteRepository) CountSessionDeals(ctx context.Context, sessionID string) (int, error) {
	query := `SELECT COUNT(*) FROM deals WHERE session_id = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting deals: %w", err)
	}
	return count, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
