package storage

import (
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// timeFormat is RFC 3339 with fixed-width nanoseconds so that lexicographic
// ordering of the stored strings matches chronological ordering.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps a SQLite database holding journal entries, chat history, and
// the user profile/settings key-value table.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite database in dataDir and runs pending
// migrations. Pass ":memory:" as dataDir for an in-memory database (used by
// tests).
func Open(dataDir string) (*Store, error) {
	var dsn string
	if dataDir == ":memory:" {
		dsn = ":memory:"
	} else {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		dsn = filepath.Join(dataDir, "mindhaven.db")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Limit to single connection to avoid "database is locked" errors.
	db.SetMaxOpenConns(1)

	// Set busy timeout so concurrent access waits briefly instead of failing immediately.
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate reads embedded SQL migration files and applies any that haven't been run yet.
func (s *Store) migrate() error {
	// Ensure schema_version table exists (bootstrap).
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort by filename to guarantee ascending order.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		version, err := parseMigrationVersion(entry.Name())
		if err != nil {
			return err
		}

		var exists int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", version).Scan(&exists); err != nil {
			return fmt.Errorf("checking migration %d: %w", version, err)
		}
		if exists > 0 {
			continue
		}

		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning transaction for migration %d: %w", version, err)
		}

		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %d: %w", version, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", version, err)
		}
	}

	return nil
}

func parseMigrationVersion(filename string) (int, error) {
	var version int
	if _, err := fmt.Sscanf(filename, "%d_", &version); err != nil {
		return 0, fmt.Errorf("parsing migration version from %q: %w", filename, err)
	}
	return version, nil
}

// AppliedMigrations returns the list of applied migration versions in ascending order.
func (s *Store) AppliedMigrations() ([]int, error) {
	rows, err := s.db.Query("SELECT version FROM schema_version ORDER BY version ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// --- Entries ---

// SaveEntry persists a journal entry. Entries are write-once; there is no
// update path.
func (s *Store) SaveEntry(e Entry) error {
	emotions := e.Emotions
	if emotions == nil {
		emotions = []string{}
	}
	emotionsJSON, err := json.Marshal(emotions)
	if err != nil {
		return fmt.Errorf("marshalling emotions: %w", err)
	}

	var analysisJSON sql.NullString
	if e.Analysis != nil {
		b, err := json.Marshal(e.Analysis)
		if err != nil {
			return fmt.Errorf("marshalling analysis: %w", err)
		}
		analysisJSON = sql.NullString{String: string(b), Valid: true}
	}

	_, err = s.db.Exec(`
		INSERT INTO entries (id, created_at, mood, content, sentiment, emotions, analysis)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.CreatedAt.UTC().Format(timeFormat), e.Mood, e.Content,
		e.Sentiment, string(emotionsJSON), analysisJSON,
	)
	return err
}

// GetEntry returns a single entry by ID.
func (s *Store) GetEntry(id string) (Entry, error) {
	row := s.db.QueryRow(`
		SELECT id, created_at, mood, content, sentiment, emotions, analysis
		FROM entries WHERE id = ?`, id,
	)
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return Entry{}, ErrNotFound
	}
	return e, err
}

// ListEntries returns entries most-recent-first. A limit <= 0 returns all
// entries.
func (s *Store) ListEntries(limit int) ([]Entry, error) {
	query := `
		SELECT id, created_at, mood, content, sentiment, emotions, analysis
		FROM entries ORDER BY created_at DESC`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = s.db.Query(query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	return results, rows.Err()
}

// CountEntries returns the total number of stored entries.
func (s *Store) CountEntries() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var (
		e            Entry
		createdAt    string
		emotionsJSON string
		analysisJSON sql.NullString
	)
	if err := row.Scan(&e.ID, &createdAt, &e.Mood, &e.Content, &e.Sentiment, &emotionsJSON, &analysisJSON); err != nil {
		return Entry{}, err
	}

	t, err := time.Parse(timeFormat, createdAt)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing created_at: %w", err)
	}
	e.CreatedAt = t

	if err := json.Unmarshal([]byte(emotionsJSON), &e.Emotions); err != nil {
		return Entry{}, fmt.Errorf("unmarshalling emotions: %w", err)
	}

	if analysisJSON.Valid {
		var a Analysis
		if err := json.Unmarshal([]byte(analysisJSON.String), &a); err != nil {
			return Entry{}, fmt.Errorf("unmarshalling analysis: %w", err)
		}
		e.Analysis = &a
	}
	return e, nil
}

// --- Chat messages ---

// SaveChatMessage appends a message to the conversation history.
func (s *Store) SaveChatMessage(m ChatMessage) error {
	_, err := s.db.Exec(`
		INSERT INTO chat_messages (id, role, content, created_at)
		VALUES (?, ?, ?, ?)`,
		m.ID, m.Role, m.Content, m.CreatedAt.UTC().Format(timeFormat),
	)
	return err
}

// ListChatMessages returns the conversation history in chronological order.
// A limit <= 0 returns the full history.
func (s *Store) ListChatMessages(limit int) ([]ChatMessage, error) {
	// The LIMIT applies to the most recent messages, so select descending
	// and reverse afterwards.
	query := `
		SELECT id, role, content, created_at
		FROM chat_messages ORDER BY created_at DESC`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = s.db.Query(query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []ChatMessage
	for rows.Next() {
		var (
			m         ChatMessage
			createdAt string
		)
		if err := rows.Scan(&m.ID, &m.Role, &m.Content, &createdAt); err != nil {
			return nil, err
		}
		t, err := time.Parse(timeFormat, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		m.CreatedAt = t
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
		results[i], results[j] = results[j], results[i]
	}
	return results, nil
}

// --- User profile / settings ---

func (s *Store) SetProfileKey(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO user_profile (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) GetProfileKey(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM user_profile WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return value, err
}

func (s *Store) GetAllProfileKeys() (map[string]string, error) {
	rows, err := s.db.Query("SELECT key, value FROM user_profile")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		result[k] = v
	}
	return result, rows.Err()
}

// --- Clear all data ---

// ClearAll wholesale-deletes every entry, chat message, and profile key.
// This is the only delete operation the product exposes; there is no
// per-entry removal.
func (s *Store) ClearAll() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning clear transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"entries", "chat_messages", "user_profile"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return tx.Commit()
}
