package recordstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/five82/memopad/internal/memo"
)

// SchemaVersion is the version tag written to new store files.
const SchemaVersion = 2

// MemoryPath opens a private in-memory database. Useful in tests.
const MemoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS memos (
	id    TEXT PRIMARY KEY,
	text  TEXT NOT NULL DEFAULT '',
	date  INTEGER NOT NULL,
	color TEXT NOT NULL DEFAULT 'blue'
);
CREATE INDEX IF NOT EXISTS idx_memos_date ON memos(date);
`

// Store is the durable memo record store. It holds a single connection and
// serializes every call, so it is safe to share but never runs writes
// concurrently.
//
// The zero Store is an unopened store: reads return nothing and writes are
// no-ops.
type Store struct {
	mu      sync.Mutex
	db      *sql.DB
	path    string
	version int
	now     func() time.Time
	logger  *slog.Logger
}

// Option configures a Store at open time.
type Option func(*Store)

// WithClock overrides the clock used to stamp updates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used for write tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Open opens the store at path, creating the file and its directory when
// absent. A file one version behind is accepted and its tag bumped; any
// other version difference, or a file that is not a readable store, yields
// an *OpenError.
func Open(ctx context.Context, path string, version int, opts ...Option) (*Store, error) {
	if version < 1 {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("invalid schema version %d", version)}
	}
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, &OpenError{Path: path, Err: fmt.Errorf("create store dir: %w", err)}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	// One connection: the store is single-writer, and an in-memory database
	// only lives as long as its connection.
	db.SetMaxOpenConns(1)

	s := &Store{
		db:      db,
		path:    path,
		version: version,
		now:     time.Now,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.prepare(ctx); err != nil {
		_ = db.Close()
		return nil, &OpenError{Path: path, Err: err}
	}
	s.logger.Info("memo store opened", "path", path, "version", version)
	return s, nil
}

func (s *Store) prepare(ctx context.Context) error {
	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
	}
	for _, p := range pragmas {
		if _, err := s.db.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("pragma %q: %w", p, err)
		}
	}

	var stored int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&stored); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	switch {
	case stored == 0, stored == s.version:
	case stored == s.version-1:
		s.logger.Info("memo store version bumped", "from", stored, "to", s.version)
	default:
		return fmt.Errorf("%w: file has %d, want %d", ErrVersionMismatch, stored, s.version)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if stored != s.version {
		// PRAGMA does not take bind parameters.
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", s.version)); err != nil {
			return fmt.Errorf("write schema version: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT count(*) FROM memos").Scan(&count); err != nil {
		return fmt.Errorf("read memos: %w", err)
	}
	return nil
}

// Close releases the database handle. Closing an unopened store is a no-op.
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

// Path returns the file the store was opened from.
func (s *Store) Path() string {
	return s.path
}

// Version returns the schema version the store was opened with.
func (s *Store) Version() int {
	return s.version
}

func (s *Store) opened() bool {
	return s != nil && s.db != nil
}

// FindAll returns every memo ordered by date, oldest first. Memos with the
// same date come back in insertion order.
func (s *Store) FindAll(ctx context.Context) ([]memo.Memo, error) {
	if s == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.opened() {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, text, date, color FROM memos ORDER BY date ASC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("query memos: %w", err)
	}
	defer rows.Close()

	var memos []memo.Memo
	for rows.Next() {
		m, err := scanMemo(rows)
		if err != nil {
			return nil, err
		}
		memos = append(memos, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate memos: %w", err)
	}
	return memos, nil
}

// FindOne returns the memo with the given id. ok is false when none exists.
func (s *Store) FindOne(ctx context.Context, id uuid.UUID) (memo.Memo, bool, error) {
	if s == nil {
		return memo.Memo{}, false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.opened() {
		return memo.Memo{}, false, nil
	}

	row := s.db.QueryRowContext(ctx, `SELECT id, text, date, color FROM memos WHERE id = ?`, id.String())
	m, err := scanMemo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return memo.Memo{}, false, nil
	}
	if err != nil {
		return memo.Memo{}, false, err
	}
	return m, true, nil
}

// Add inserts m. Adding an ID that already exists fails.
func (s *Store) Add(ctx context.Context, m memo.Memo) error {
	if m.ID == uuid.Nil {
		return &WriteError{Op: "add", Err: ErrMissingID}
	}
	if !m.Color.Valid() {
		return &WriteError{Op: "add", ID: m.ID, Err: fmt.Errorf("%w: %q", memo.ErrInvalidColor, m.Color)}
	}
	return s.write(ctx, "add", m.ID, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO memos (id, text, date, color) VALUES (?, ?, ?, ?)`,
			m.ID.String(), m.Text, m.Date.UnixNano(), string(m.Color),
		)
		return err
	})
}

// Delete removes the memo with the given id. A missing id is not an error.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	return s.write(ctx, "delete", id, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM memos WHERE id = ?`, id.String())
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			s.logger.Debug("delete skipped, memo not found", "id", id)
		}
		return nil
	})
}

// Update rewrites text and color of the memo with the given id and stamps
// it with the current time. A missing id is not an error.
func (s *Store) Update(ctx context.Context, id uuid.UUID, text string, color memo.Color) error {
	if !color.Valid() {
		return &WriteError{Op: "update", ID: id, Err: fmt.Errorf("%w: %q", memo.ErrInvalidColor, color)}
	}
	return s.write(ctx, "update", id, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE memos SET text = ?, color = ?, date = ? WHERE id = ?`,
			text, string(color), s.now().UnixNano(), id.String(),
		)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			s.logger.Debug("update skipped, memo not found", "id", id)
		}
		return nil
	})
}

// write runs fn in a transaction. Nothing is applied unless fn succeeds and
// the commit goes through.
func (s *Store) write(ctx context.Context, op string, id uuid.UUID, fn func(*sql.Tx) error) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.opened() {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &WriteError{Op: op, ID: id, Err: fmt.Errorf("begin: %w", err)}
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		s.logger.Warn("memo write failed", "op", op, "id", id, "error", err)
		return &WriteError{Op: op, ID: id, Err: err}
	}
	if err := tx.Commit(); err != nil {
		s.logger.Warn("memo commit failed", "op", op, "id", id, "error", err)
		return &WriteError{Op: op, ID: id, Err: fmt.Errorf("commit: %w", err)}
	}
	s.logger.Debug("memo write committed", "op", op, "id", id)
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMemo(row scanner) (memo.Memo, error) {
	var (
		rawID string
		text  string
		nanos int64
		color string
	)
	if err := row.Scan(&rawID, &text, &nanos, &color); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return memo.Memo{}, err
		}
		return memo.Memo{}, fmt.Errorf("scan memo: %w", err)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return memo.Memo{}, fmt.Errorf("memo id %q: %w", rawID, err)
	}
	return memo.Memo{
		ID:    id,
		Text:  text,
		Date:  time.Unix(0, nanos),
		Color: memo.Color(color),
	}, nil
}
