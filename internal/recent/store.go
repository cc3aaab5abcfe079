// Package recent persists the most recent printed transactions.
package recent

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"weighbridge/internal/domain"
)

// DefaultLimit is the size of the recent activity ring.
const DefaultLimit = 20

// ErrSkipped is returned by Save when the transaction is incomplete.
var ErrSkipped = errors.New("incomplete transaction not saved")

// Store is a fixed-size ring of transactions kept in SQLite.
// All methods are safe for concurrent use.
type Store struct {
	db    *sql.DB
	mu    sync.Mutex
	limit int
	now   func() time.Time
}

// Open opens or creates the store at dbPath. ":memory:" keeps the ring in
// memory for the lifetime of the process.
func Open(dbPath string, limit int) (*Store, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	connStr := dbPath
	if dbPath == ":memory:" {
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// one writer keeps the trim and insert of Save ordered
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: db, limit: limit, now: time.Now}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS recent (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		truck_id TEXT NOT NULL,
		customer_id TEXT NOT NULL,
		net_weight INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Limit returns the ring size.
func (s *Store) Limit() int { return s.limit }

// Load returns the stored transactions, most recent first.
func (s *Store) Load() ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT id, truck_id, customer_id, net_weight, created_at
		FROM recent ORDER BY seq DESC LIMIT ?`, s.limit)
	if err != nil {
		return nil, fmt.Errorf("query recent: %w", err)
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		var created int64
		if err := rows.Scan(&tx.ID, &tx.TruckID, &tx.CustomerID, &tx.NetWeight, &created); err != nil {
			return nil, fmt.Errorf("scan recent: %w", err)
		}
		tx.Timestamp = time.Unix(0, created)
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent: %w", err)
	}
	return out, nil
}

// Save records a transaction and drops entries beyond the ring size.
// Transactions without a truck or customer, or without positive net weight,
// are rejected with ErrSkipped.
func (s *Store) Save(truckID, customerID string, netWeight int64) (domain.Transaction, error) {
	truckID = strings.TrimSpace(truckID)
	customerID = strings.TrimSpace(customerID)
	if truckID == "" || customerID == "" || netWeight <= 0 {
		return domain.Transaction{}, ErrSkipped
	}

	tx := domain.Transaction{
		ID:         uuid.NewString(),
		TruckID:    truckID,
		CustomerID: customerID,
		NetWeight:  netWeight,
		Timestamp:  s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dbtx, err := s.db.Begin()
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("begin: %w", err)
	}
	defer dbtx.Rollback()

	if _, err := dbtx.Exec(`
		INSERT INTO recent (id, truck_id, customer_id, net_weight, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		tx.ID, tx.TruckID, tx.CustomerID, tx.NetWeight, tx.Timestamp.UnixNano()); err != nil {
		return domain.Transaction{}, fmt.Errorf("insert recent: %w", err)
	}

	if _, err := dbtx.Exec(`
		DELETE FROM recent WHERE seq NOT IN (
			SELECT seq FROM recent ORDER BY seq DESC LIMIT ?
		)`, s.limit); err != nil {
		return domain.Transaction{}, fmt.Errorf("trim recent: %w", err)
	}

	if err := dbtx.Commit(); err != nil {
		return domain.Transaction{}, fmt.Errorf("commit: %w", err)
	}
	return tx, nil
}

// Clear removes every stored transaction.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM recent`); err != nil {
		return fmt.Errorf("clear recent: %w", err)
	}
	return nil
}
