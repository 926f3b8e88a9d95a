package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/chrislloydHive/Career-Platform-sub000/internal/session"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id    TEXT PRIMARY KEY,
	snapshot      TEXT NOT NULL,
	created_at    TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS response_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id    TEXT NOT NULL,
	question_id   TEXT NOT NULL,
	response_json TEXT NOT NULL,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);
`

// #endregion schema

// #region store-struct

// Store persists session snapshots and an append-only response log in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// New opens a SQLite database and runs migrations.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion constructor

// #region create

// Create inserts a new session with the given snapshot and returns its ID.
func (s *Store) Create(snapshot []byte) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.Exec(
		`INSERT INTO sessions (session_id, snapshot, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		id, string(snapshot), now, now,
	)
	if err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}
	return id, nil
}

// #endregion create

// #region save

// Save replaces a session's snapshot.
func (s *Store) Save(id string, snapshot []byte) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.Exec(
		`UPDATE sessions SET snapshot = ?, updated_at = ? WHERE session_id = ?`,
		string(snapshot), now, id,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}

// #endregion save

// #region load

// ErrNotFound marks a lookup for a session ID that does not exist.
var ErrNotFound = fmt.Errorf("session not found")

// Load reads a session's snapshot.
func (s *Store) Load(id string) ([]byte, error) {
	var snapshot string
	err := s.db.QueryRow(`SELECT snapshot FROM sessions WHERE session_id = ?`, id).Scan(&snapshot)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return []byte(snapshot), nil
}

// #endregion load

// #region delete

// Delete removes a session and its response log.
func (s *Store) Delete(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM response_log WHERE session_id = ?`, id); err != nil {
		return fmt.Errorf("delete responses: %w", err)
	}
	res, err := tx.Exec(`DELETE FROM sessions WHERE session_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// #endregion delete

// #region response-log

// AppendResponse records one committed response in the append-only log.
// The log is what the replay harness consumes.
func (s *Store) AppendResponse(sessionID string, resp session.Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO response_log (session_id, question_id, response_json, created_at) VALUES (?, ?, ?, ?)`,
		sessionID, resp.QuestionID, string(data), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append response: %w", err)
	}
	return nil
}

// Responses returns a session's logged responses in commit order.
func (s *Store) Responses(sessionID string) ([]session.Response, error) {
	rows, err := s.db.Query(
		`SELECT response_json FROM response_log WHERE session_id = ? ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query responses: %w", err)
	}
	defer rows.Close()

	var out []session.Response
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		var resp session.Response
		if err := json.Unmarshal([]byte(raw), &resp); err != nil {
			return nil, fmt.Errorf("unmarshal response: %w", err)
		}
		out = append(out, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate responses: %w", err)
	}
	return out, nil
}

// #endregion response-log

// #region list

// SessionInfo is one row of the session listing.
type SessionInfo struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// List returns all sessions, most recently updated first.
func (s *Store) List() ([]SessionInfo, error) {
	rows, err := s.db.Query(
		`SELECT session_id, created_at, updated_at FROM sessions ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionInfo
	for rows.Next() {
		var info SessionInfo
		var created, updated string
		if err := rows.Scan(&info.ID, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if info.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		if info.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
			return nil, fmt.Errorf("parse updated_at: %w", err)
		}
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

// #endregion list
