package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/moodmate/backend/internal/model"
	"github.com/moodmate/backend/internal/store"
)

// Open opens (or creates) a SQLite database at the given path and enables WAL
// journal mode. The URI parameters give better concurrency for read-heavy
// workloads such as analytics.
func Open(path string) (*sql.DB, error) {
	// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// New opens the database at path, applies the schema, and returns a store.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := Bootstrap(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewWithDB(db), nil
}

// NewWithDB wires the store onto an existing connection (used by the factory
// and tests). The caller is responsible for Bootstrap.
func NewWithDB(db *sql.DB) store.Store { return &sqliteStore{db: db} }

// Bootstrap creates the schema when it does not exist. SQLite deployments are
// single-process, so idempotent DDL at startup replaces a migration runner.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
    user_id          TEXT PRIMARY KEY,
    email            TEXT NOT NULL UNIQUE,
    first_name       TEXT,
    last_name        TEXT,
    selected_persona TEXT NOT NULL DEFAULT 'sage',
    is_admin         INTEGER NOT NULL DEFAULT 0,
    last_login_at    TIMESTAMP,
    created_at       TIMESTAMP NOT NULL,
    updated_at       TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS conversations (
    conversation_id TEXT PRIMARY KEY,
    user_id         TEXT NOT NULL REFERENCES users(user_id),
    title           TEXT NOT NULL,
    persona_id      TEXT NOT NULL,
    created_at      TIMESTAMP NOT NULL,
    updated_at      TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS messages (
    message_id      TEXT PRIMARY KEY,
    conversation_id TEXT NOT NULL REFERENCES conversations(conversation_id),
    role            TEXT NOT NULL,
    content         TEXT NOT NULL,
    emotional_tone  TEXT,
    sentiment_score INTEGER,
    recommendations TEXT,
    created_at      TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS mood_entries (
    entry_id      TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL REFERENCES users(user_id),
    mood_level    INTEGER NOT NULL,
    anxiety_level INTEGER,
    notes         TEXT,
    created_at    TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS journal_entries (
    entry_id         TEXT PRIMARY KEY,
    user_id          TEXT NOT NULL REFERENCES users(user_id),
    title            TEXT NOT NULL,
    content          TEXT NOT NULL,
    prompt           TEXT,
    emotional_themes TEXT,
    created_at       TIMESTAMP NOT NULL,
    updated_at       TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS interventions (
    intervention_id TEXT PRIMARY KEY,
    user_id         TEXT NOT NULL REFERENCES users(user_id),
    type            TEXT NOT NULL,
    title           TEXT NOT NULL,
    duration        INTEGER,
    completed       INTEGER NOT NULL DEFAULT 0,
    completed_at    TIMESTAMP,
    created_at      TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS crisis_alerts (
    alert_id     TEXT PRIMARY KEY,
    user_id      TEXT NOT NULL REFERENCES users(user_id),
    severity     TEXT NOT NULL,
    trigger_type TEXT NOT NULL,
    trigger_data TEXT,
    status       TEXT NOT NULL DEFAULT 'new',
    reviewed_by  TEXT,
    notes        TEXT,
    created_at   TIMESTAMP NOT NULL,
    reviewed_at  TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_conversations_user ON conversations(user_id, created_at);
CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(conversation_id, created_at);
CREATE INDEX IF NOT EXISTS idx_mood_entries_user ON mood_entries(user_id, created_at);
CREATE INDEX IF NOT EXISTS idx_journal_entries_user ON journal_entries(user_id, created_at);
CREATE INDEX IF NOT EXISTS idx_interventions_user ON interventions(user_id, created_at);
`

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Users() store.Users                   { return &users{db: s.db} }
func (s *sqliteStore) Conversations() store.Conversations   { return &conversations{db: s.db} }
func (s *sqliteStore) Messages() store.Messages             { return &messages{db: s.db} }
func (s *sqliteStore) MoodEntries() store.MoodEntries       { return &moodEntries{db: s.db} }
func (s *sqliteStore) JournalEntries() store.JournalEntries { return &journalEntries{db: s.db} }
func (s *sqliteStore) Interventions() store.Interventions   { return &interventions{db: s.db} }
func (s *sqliteStore) CrisisAlerts() store.CrisisAlerts     { return &crisisAlerts{db: s.db} }

// HealthPing implements health.HealthPinger for the SQLite-backed store.
func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// --- Users ---
type users struct{ db *sql.DB }

func (u *users) Upsert(ctx context.Context, m *model.User) (*model.User, error) {
	now := time.Now().UTC()
	_, err := u.db.ExecContext(ctx, `
        INSERT INTO users (user_id, email, first_name, last_name, selected_persona, is_admin, created_at, updated_at)
        VALUES (?,?,?,?,?,?,?,?)
        ON CONFLICT(user_id) DO UPDATE SET
            email = excluded.email,
            first_name = excluded.first_name,
            last_name = excluded.last_name,
            updated_at = excluded.updated_at
    `, m.UserID, m.Email, m.FirstName, m.LastName, m.SelectedPersona, m.IsAdmin, now, now)
	if err != nil {
		return nil, err
	}
	return u.Get(ctx, m.UserID)
}

func (u *users) Get(ctx context.Context, userID string) (*model.User, error) {
	row := u.db.QueryRowContext(ctx, `
        SELECT user_id, email, first_name, last_name, selected_persona, is_admin, last_login_at, created_at, updated_at
        FROM users WHERE user_id = ?
    `, userID)
	return scanUser(row)
}

func (u *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row := u.db.QueryRowContext(ctx, `
        SELECT user_id, email, first_name, last_name, selected_persona, is_admin, last_login_at, created_at, updated_at
        FROM users WHERE email = ?
    `, email)
	return scanUser(row)
}

func (u *users) UpdatePersona(ctx context.Context, userID, personaID string) (*model.User, error) {
	res, err := u.db.ExecContext(ctx, `
        UPDATE users SET selected_persona = ?, updated_at = ? WHERE user_id = ?
    `, personaID, time.Now().UTC(), userID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	return u.Get(ctx, userID)
}

func (u *users) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	res, err := u.db.ExecContext(ctx, `
        UPDATE users SET last_login_at = ?, updated_at = ? WHERE user_id = ?
    `, at.UTC(), time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (u *users) ListAll(ctx context.Context) ([]*model.User, error) {
	rows, err := u.db.QueryContext(ctx, `
        SELECT user_id, email, first_name, last_name, selected_persona, is_admin, last_login_at, created_at, updated_at
        FROM users ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.User
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

type rowScanner interface{ Scan(dest ...interface{}) error }

func scanUser(row rowScanner) (*model.User, error) {
	var m model.User
	if err := row.Scan(&m.UserID, &m.Email, &m.FirstName, &m.LastName, &m.SelectedPersona, &m.IsAdmin, &m.LastLoginAt, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &m, nil
}

// --- Conversations ---
type conversations struct{ db *sql.DB }

func (c *conversations) Create(ctx context.Context, mc *model.Conversation) (*model.Conversation, error) {
	now := time.Now().UTC()
	_, err := c.db.ExecContext(ctx, `
        INSERT INTO conversations (conversation_id, user_id, title, persona_id, created_at, updated_at)
        VALUES (?,?,?,?,?,?)
    `, mc.ConversationID, mc.UserID, mc.Title, mc.PersonaID, now, now)
	if err != nil {
		return nil, err
	}
	out := *mc
	out.CreatedAt = now
	out.UpdatedAt = now
	return &out, nil
}

func (c *conversations) Get(ctx context.Context, userID, conversationID string) (*model.Conversation, error) {
	var m model.Conversation
	row := c.db.QueryRowContext(ctx, `
        SELECT conversation_id, user_id, title, persona_id, created_at, updated_at
        FROM conversations WHERE user_id = ? AND conversation_id = ?
    `, userID, conversationID)
	if err := row.Scan(&m.ConversationID, &m.UserID, &m.Title, &m.PersonaID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &m, nil
}

func (c *conversations) List(ctx context.Context, userID string) ([]*model.Conversation, error) {
	return c.query(ctx, `
        SELECT conversation_id, user_id, title, persona_id, created_at, updated_at
        FROM conversations WHERE user_id = ? ORDER BY created_at DESC
    `, userID)
}

func (c *conversations) ListAll(ctx context.Context) ([]*model.Conversation, error) {
	return c.query(ctx, `
        SELECT conversation_id, user_id, title, persona_id, created_at, updated_at
        FROM conversations ORDER BY created_at DESC
    `)
}

func (c *conversations) query(ctx context.Context, q string, args ...interface{}) ([]*model.Conversation, error) {
	rows, err := c.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.Conversation
	for rows.Next() {
		var m model.Conversation
		if err := rows.Scan(&m.ConversationID, &m.UserID, &m.Title, &m.PersonaID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// --- Messages ---
type messages struct{ db *sql.DB }

func (ms *messages) Create(ctx context.Context, m *model.Message) (*model.Message, error) {
	now := time.Now().UTC()
	recJSON, _ := json.Marshal(m.Recommendations)
	_, err := ms.db.ExecContext(ctx, `
        INSERT INTO messages (message_id, conversation_id, role, content, emotional_tone, sentiment_score, recommendations, created_at)
        VALUES (?,?,?,?,?,?,?,?)
    `, m.MessageID, m.ConversationID, m.Role, m.Content, m.EmotionalTone, m.SentimentScore, nullIfEmpty(recJSON), now)
	if err != nil {
		return nil, err
	}
	if _, err := ms.db.ExecContext(ctx, `UPDATE conversations SET updated_at = ? WHERE conversation_id = ?`, now, m.ConversationID); err != nil {
		return nil, err
	}
	out := *m
	out.CreatedAt = now
	return &out, nil
}

func (ms *messages) List(ctx context.Context, conversationID string) ([]*model.Message, error) {
	return ms.query(ctx, `
        SELECT message_id, conversation_id, role, content, emotional_tone, sentiment_score, recommendations, created_at
        FROM messages WHERE conversation_id = ? ORDER BY created_at DESC
    `, conversationID)
}

func (ms *messages) ListAll(ctx context.Context) ([]*model.Message, error) {
	return ms.query(ctx, `
        SELECT message_id, conversation_id, role, content, emotional_tone, sentiment_score, recommendations, created_at
        FROM messages ORDER BY created_at DESC
    `)
}

func (ms *messages) query(ctx context.Context, q string, args ...interface{}) ([]*model.Message, error) {
	rows, err := ms.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.Message
	for rows.Next() {
		var m model.Message
		var rec sql.NullString
		if err := rows.Scan(&m.MessageID, &m.ConversationID, &m.Role, &m.Content, &m.EmotionalTone, &m.SentimentScore, &rec, &m.CreatedAt); err != nil {
			return nil, err
		}
		if rec.Valid {
			_ = json.Unmarshal([]byte(rec.String), &m.Recommendations)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// --- Mood entries ---
type moodEntries struct{ db *sql.DB }

func (me *moodEntries) Create(ctx context.Context, e *model.MoodEntry) (*model.MoodEntry, error) {
	now := time.Now().UTC()
	_, err := me.db.ExecContext(ctx, `
        INSERT INTO mood_entries (entry_id, user_id, mood_level, anxiety_level, notes, created_at)
        VALUES (?,?,?,?,?,?)
    `, e.EntryID, e.UserID, e.MoodLevel, e.AnxietyLevel, e.Notes, now)
	if err != nil {
		return nil, err
	}
	out := *e
	out.CreatedAt = now
	return &out, nil
}

func (me *moodEntries) List(ctx context.Context, req model.ListMoodEntriesRequest) ([]*model.MoodEntry, error) {
	query := `SELECT entry_id, user_id, mood_level, anxiety_level, notes, created_at
              FROM mood_entries WHERE user_id = ?`
	args := []interface{}{req.UserID}
	if req.Start != nil {
		query += " AND created_at >= ?"
		args = append(args, req.Start.UTC())
	}
	if req.End != nil {
		query += " AND created_at <= ?"
		args = append(args, req.End.UTC())
	}
	query += " ORDER BY created_at DESC"
	if req.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", req.Limit)
	}
	return me.query(ctx, query, args...)
}

func (me *moodEntries) Latest(ctx context.Context, userID string) (*model.MoodEntry, error) {
	var m model.MoodEntry
	row := me.db.QueryRowContext(ctx, `
        SELECT entry_id, user_id, mood_level, anxiety_level, notes, created_at
        FROM mood_entries WHERE user_id = ? ORDER BY created_at DESC LIMIT 1
    `, userID)
	if err := row.Scan(&m.EntryID, &m.UserID, &m.MoodLevel, &m.AnxietyLevel, &m.Notes, &m.CreatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &m, nil
}

func (me *moodEntries) ListAll(ctx context.Context) ([]*model.MoodEntry, error) {
	return me.query(ctx, `
        SELECT entry_id, user_id, mood_level, anxiety_level, notes, created_at
        FROM mood_entries ORDER BY created_at DESC
    `)
}

func (me *moodEntries) query(ctx context.Context, q string, args ...interface{}) ([]*model.MoodEntry, error) {
	rows, err := me.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.MoodEntry
	for rows.Next() {
		var m model.MoodEntry
		if err := rows.Scan(&m.EntryID, &m.UserID, &m.MoodLevel, &m.AnxietyLevel, &m.Notes, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// --- Journal entries ---
type journalEntries struct{ db *sql.DB }

func (je *journalEntries) Create(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error) {
	now := time.Now().UTC()
	themesJSON, _ := json.Marshal(e.EmotionalThemes)
	_, err := je.db.ExecContext(ctx, `
        INSERT INTO journal_entries (entry_id, user_id, title, content, prompt, emotional_themes, created_at, updated_at)
        VALUES (?,?,?,?,?,?,?,?)
    `, e.EntryID, e.UserID, e.Title, e.Content, e.Prompt, nullIfEmpty(themesJSON), now, now)
	if err != nil {
		return nil, err
	}
	out := *e
	out.CreatedAt = now
	out.UpdatedAt = now
	return &out, nil
}

func (je *journalEntries) Get(ctx context.Context, userID, entryID string) (*model.JournalEntry, error) {
	var m model.JournalEntry
	var themes sql.NullString
	row := je.db.QueryRowContext(ctx, `
        SELECT entry_id, user_id, title, content, prompt, emotional_themes, created_at, updated_at
        FROM journal_entries WHERE user_id = ? AND entry_id = ?
    `, userID, entryID)
	if err := row.Scan(&m.EntryID, &m.UserID, &m.Title, &m.Content, &m.Prompt, &themes, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	if themes.Valid {
		_ = json.Unmarshal([]byte(themes.String), &m.EmotionalThemes)
	}
	return &m, nil
}

func (je *journalEntries) List(ctx context.Context, userID string, limit int) ([]*model.JournalEntry, error) {
	query := `SELECT entry_id, user_id, title, content, prompt, emotional_themes, created_at, updated_at
              FROM journal_entries WHERE user_id = ? ORDER BY created_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	rows, err := je.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.JournalEntry
	for rows.Next() {
		var m model.JournalEntry
		var themes sql.NullString
		if err := rows.Scan(&m.EntryID, &m.UserID, &m.Title, &m.Content, &m.Prompt, &themes, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		if themes.Valid {
			_ = json.Unmarshal([]byte(themes.String), &m.EmotionalThemes)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// --- Interventions ---
type interventions struct{ db *sql.DB }

func (iv *interventions) Create(ctx context.Context, m *model.Intervention) (*model.Intervention, error) {
	now := time.Now().UTC()
	_, err := iv.db.ExecContext(ctx, `
        INSERT INTO interventions (intervention_id, user_id, type, title, duration, created_at)
        VALUES (?,?,?,?,?,?)
    `, m.InterventionID, m.UserID, m.Type, m.Title, m.Duration, now)
	if err != nil {
		return nil, err
	}
	out := *m
	out.Completed = false
	out.CreatedAt = now
	return &out, nil
}

func (iv *interventions) List(ctx context.Context, userID string) ([]*model.Intervention, error) {
	rows, err := iv.db.QueryContext(ctx, `
        SELECT intervention_id, user_id, type, title, duration, completed, completed_at, created_at
        FROM interventions WHERE user_id = ? ORDER BY created_at DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.Intervention
	for rows.Next() {
		var m model.Intervention
		if err := rows.Scan(&m.InterventionID, &m.UserID, &m.Type, &m.Title, &m.Duration, &m.Completed, &m.CompletedAt, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (iv *interventions) Complete(ctx context.Context, userID, interventionID string, at time.Time) (*model.Intervention, error) {
	res, err := iv.db.ExecContext(ctx, `
        UPDATE interventions SET completed = 1, completed_at = ?
        WHERE user_id = ? AND intervention_id = ?
    `, at.UTC(), userID, interventionID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	var m model.Intervention
	row := iv.db.QueryRowContext(ctx, `
        SELECT intervention_id, user_id, type, title, duration, completed, completed_at, created_at
        FROM interventions WHERE user_id = ? AND intervention_id = ?
    `, userID, interventionID)
	if err := row.Scan(&m.InterventionID, &m.UserID, &m.Type, &m.Title, &m.Duration, &m.Completed, &m.CompletedAt, &m.CreatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &m, nil
}

// --- Crisis alerts ---
type crisisAlerts struct{ db *sql.DB }

func (ca *crisisAlerts) Create(ctx context.Context, a *model.CrisisAlert) (*model.CrisisAlert, error) {
	now := time.Now().UTC()
	dataJSON, _ := json.Marshal(a.TriggerData)
	_, err := ca.db.ExecContext(ctx, `
        INSERT INTO crisis_alerts (alert_id, user_id, severity, trigger_type, trigger_data, status, created_at)
        VALUES (?,?,?,?,?,?,?)
    `, a.AlertID, a.UserID, a.Severity, a.TriggerType, nullIfEmpty(dataJSON), a.Status, now)
	if err != nil {
		return nil, err
	}
	out := *a
	out.CreatedAt = now
	return &out, nil
}

func (ca *crisisAlerts) Update(ctx context.Context, alertID string, status string, notes, reviewedBy *string, reviewedAt *time.Time) (*model.CrisisAlert, error) {
	res, err := ca.db.ExecContext(ctx, `
        UPDATE crisis_alerts SET status = ?, notes = ?, reviewed_by = ?, reviewed_at = ?
        WHERE alert_id = ?
    `, status, notes, reviewedBy, reviewedAt, alertID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	var m model.CrisisAlert
	var data sql.NullString
	row := ca.db.QueryRowContext(ctx, `
        SELECT alert_id, user_id, severity, trigger_type, trigger_data, status, reviewed_by, notes, created_at, reviewed_at
        FROM crisis_alerts WHERE alert_id = ?
    `, alertID)
	if err := row.Scan(&m.AlertID, &m.UserID, &m.Severity, &m.TriggerType, &data, &m.Status, &m.ReviewedBy, &m.Notes, &m.CreatedAt, &m.ReviewedAt); err != nil {
		return nil, mapNotFound(err)
	}
	if data.Valid {
		_ = json.Unmarshal([]byte(data.String), &m.TriggerData)
	}
	return &m, nil
}

func (ca *crisisAlerts) ListAll(ctx context.Context) ([]*model.CrisisAlert, error) {
	rows, err := ca.db.QueryContext(ctx, `
        SELECT alert_id, user_id, severity, trigger_type, trigger_data, status, reviewed_by, notes, created_at, reviewed_at
        FROM crisis_alerts ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.CrisisAlert
	for rows.Next() {
		var m model.CrisisAlert
		var data sql.NullString
		if err := rows.Scan(&m.AlertID, &m.UserID, &m.Severity, &m.TriggerType, &data, &m.Status, &m.ReviewedBy, &m.Notes, &m.CreatedAt, &m.ReviewedAt); err != nil {
			return nil, err
		}
		if data.Valid {
			_ = json.Unmarshal([]byte(data.String), &m.TriggerData)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// helpers
func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}
	return err
}

func nullIfEmpty(b []byte) interface{} {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	return b
}
