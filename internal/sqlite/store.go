package sqlite

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// Store holds the process-wide SQLite connection for the recipe store.
// It is opened once at startup and closed at shutdown; the single-writer
// model means no pooling beyond the one connection is needed.
type Store struct {
	db     *sql.DB
	config types.Config
	log    *zap.Logger
}

// execQuerier is the subset of database/sql shared by *sql.DB and *sql.Tx.
// The deduplicators run against it so they work both standalone and inside
// a revision's write transaction.
type execQuerier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Open creates the data directory if needed, opens the SQLite database,
// and ensures the schema. A nil logger disables logging. Any schema
// failure is fatal: no Store is returned.
func Open(config types.Config, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	// foreign_keys is per-connection in SQLite, so it is set through the
	// DSN rather than a one-off Exec. The declared ON DELETE CASCADE
	// clauses depend on it.
	dsn := "file:" + config.DatabasePath() + "?_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Single writer: one connection avoids SQLITE_BUSY between the
	// writer's transaction and reads.
	db.SetMaxOpenConns(1)

	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}

	logger.Info("store opened", zap.String("path", config.DatabasePath()))

	return &Store{
		db:     db,
		config: config,
		log:    logger,
	}, nil
}

// Close releases the database connection. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return err
	}
	s.db = nil
	s.log.Info("store closed")
	return nil
}

// generateUUID generates a new UUID v7 for row IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// nullString maps the empty string to NULL for optional text columns.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullInt maps zero to NULL for optional integer columns.
func nullInt(i int) any {
	if i == 0 {
		return nil
	}
	return i
}
