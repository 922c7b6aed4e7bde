package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/skapa-labs/offerta-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/skapa-labs/offerta-cli/internal/core/ports/driven"
	"github.com/skapa-labs/offerta-cli/internal/logger"
)

// dbFileName is the SQLite file under the data directory.
const dbFileName = "artifacts.db"

// Store owns the lazily-opened SQLite handle shared by all accessors.
type Store struct {
	mu      sync.Mutex
	db      *sql.DB
	dataDir string
	path    string
}

// NewStore creates a store rooted at the given data directory without
// touching the disk. If dataDir is empty, ~/.offerta/data is used.
// The database is opened and migrated on first use.
func NewStore(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// Open eagerly establishes the database handle. Calling it is optional:
// every operation opens on demand. Open is idempotent and safe to call
// from concurrent goroutines; all callers converge on the same handle.
func (s *Store) Open() error {
	_, err := s.handle()
	return err
}

// handle returns the shared database handle, opening and migrating the
// store on first call. A failed open is not memoized; the next caller
// retries.
func (s *Store) handle() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	dataDir := s.dataDir
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".offerta", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := migrate(db, migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	logger.Debug("artifact store opened at %s", dbPath)
	s.db = db
	s.path = dbPath
	return s.db, nil
}

// Close closes the database connection if it was ever opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path returns the database file path, or "" before the first open.
func (s *Store) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Artifacts returns an ArtifactStore interface backed by this store.
func (s *Store) Artifacts() driven.ArtifactStore {
	return &artifactStore{store: s}
}

// migrate runs all pending migrations. Running it against an
// already-current store is a no-op.
func migrate(db *sql.DB, fsys fs.FS) error {
	// Ensure schema_migrations table exists
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_artifacts.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}
