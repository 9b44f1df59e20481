// Package journal persists a record of every rename, skip and deletion
// so past runs can be audited with `shelfmark history`.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/leoventa/shelfmark/internal/paths"
)

// Op is the kind of operation recorded in the journal.
type Op string

const (
	OpRename     Op = "rename"
	OpRenameFile Op = "rename-file"
	OpSkip       Op = "skip"
	OpDelete     Op = "delete"
	OpError      Op = "error"
	OpVerify     Op = "verify"
)

// Entry is one journaled operation.
type Entry struct {
	ID         int64
	Op         Op
	SourcePath string
	TargetPath string
	Detail     string
	BytesFreed int64
	RecordedAt time.Time
}

// Journal is the operations database handle.
type Journal struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// Open opens or creates the journal at the default location.
func Open() (*Journal, error) {
	dbPath, err := paths.JournalPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get journal path: %w", err)
	}
	return OpenPath(dbPath)
}

// OpenPath opens or creates the journal at a specific path.
func OpenPath(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	// WAL mode for better concurrent access
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping journal: %w", err)
	}

	j := &Journal{db: db, path: path}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate journal: %w", err)
	}

	return j, nil
}

// OpenInMemory opens an in-memory journal for testing.
func OpenInMemory() (*Journal, error) {
	db, err := sql.Open("sqlite", ":memory:?_cache=shared")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory journal: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping in-memory journal: %w", err)
	}

	j := &Journal{db: db, path: ":memory:"}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate in-memory journal: %w", err)
	}

	return j, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Path returns the filesystem path to the journal file.
func (j *Journal) Path() string {
	return j.path
}

// Record appends one operation to the journal.
func (j *Journal) Record(op Op, sourcePath, targetPath, detail string, bytesFreed int64) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	_, err := j.db.Exec(`
		INSERT INTO operations (op, source_path, target_path, detail, bytes_freed)
		VALUES (?, ?, ?, ?, ?)
	`, op, sourcePath, targetPath, detail, bytesFreed)

	return err
}

// Recent returns the most recent operations, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	rows, err := j.db.Query(`
		SELECT id, op, source_path, COALESCE(target_path, ''),
		       COALESCE(detail, ''), COALESCE(bytes_freed, 0), recorded_at
		FROM operations
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var op string
		if err := rows.Scan(&e.ID, &op, &e.SourcePath, &e.TargetPath, &e.Detail, &e.BytesFreed, &e.RecordedAt); err != nil {
			return nil, err
		}
		e.Op = Op(op)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Stats returns operation counts by kind and the total bytes freed by
// deletions.
func (j *Journal) Stats() (map[Op]int, int64, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	rows, err := j.db.Query(`SELECT op, COUNT(*) FROM operations GROUP BY op`)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	counts := make(map[Op]int)
	for rows.Next() {
		var op string
		var count int
		if err := rows.Scan(&op, &count); err != nil {
			return nil, 0, err
		}
		counts[Op(op)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var bytesFreed int64
	err = j.db.QueryRow(`SELECT COALESCE(SUM(bytes_freed), 0) FROM operations WHERE op = ?`, OpDelete).Scan(&bytesFreed)
	if err != nil {
		return nil, 0, err
	}

	return counts, bytesFreed, nil
}
