package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/moodmate/backend/internal/model"
	"github.com/moodmate/backend/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a native Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Users() store.Users                   { return &users{db: s.db} }
func (s *pgStore) Conversations() store.Conversations   { return &conversations{db: s.db} }
func (s *pgStore) Messages() store.Messages             { return &messages{db: s.db} }
func (s *pgStore) MoodEntries() store.MoodEntries       { return &moodEntries{db: s.db} }
func (s *pgStore) JournalEntries() store.JournalEntries { return &journalEntries{db: s.db} }
func (s *pgStore) Interventions() store.Interventions   { return &interventions{db: s.db} }
func (s *pgStore) CrisisAlerts() store.CrisisAlerts     { return &crisisAlerts{db: s.db} }

// HealthPing implements health.HealthPinger for the Postgres-backed store.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Bootstrap performs a connectivity check to ensure Postgres is reachable.
// Schema setup is handled by the migrations directory, not at startup.
func Bootstrap(ctx context.Context, dsn string) error {
	if dsn == "" {
		return nil
	}
	db, err := Open(dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return db.PingContext(ctx)
}

// --- Users ---
type users struct{ db *sql.DB }

func (u *users) Upsert(ctx context.Context, m *model.User) (*model.User, error) {
	row := u.db.QueryRowContext(ctx, `
        INSERT INTO users (user_id, email, first_name, last_name, selected_persona, is_admin)
        VALUES ($1,$2,$3,$4,$5,$6)
        ON CONFLICT (user_id) DO UPDATE SET
            email = EXCLUDED.email,
            first_name = EXCLUDED.first_name,
            last_name = EXCLUDED.last_name,
            updated_at = now()
        RETURNING selected_persona, is_admin, last_login_at, created_at, updated_at
    `, m.UserID, m.Email, m.FirstName, m.LastName, m.SelectedPersona, m.IsAdmin)
	out := *m
	if err := row.Scan(&out.SelectedPersona, &out.IsAdmin, &out.LastLoginAt, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *users) Get(ctx context.Context, userID string) (*model.User, error) {
	row := u.db.QueryRowContext(ctx, `
        SELECT user_id, email, first_name, last_name, selected_persona, is_admin, last_login_at, created_at, updated_at
        FROM users WHERE user_id=$1
    `, userID)
	return scanUser(row)
}

func (u *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row := u.db.QueryRowContext(ctx, `
        SELECT user_id, email, first_name, last_name, selected_persona, is_admin, last_login_at, created_at, updated_at
        FROM users WHERE email=$1
    `, email)
	return scanUser(row)
}

func (u *users) UpdatePersona(ctx context.Context, userID, personaID string) (*model.User, error) {
	res, err := u.db.ExecContext(ctx, `
        UPDATE users SET selected_persona=$1, updated_at=now() WHERE user_id=$2
    `, personaID, userID)
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
        UPDATE users SET last_login_at=$1, updated_at=now() WHERE user_id=$2
    `, at, userID)
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
	row := c.db.QueryRowContext(ctx, `
        INSERT INTO conversations (conversation_id, user_id, title, persona_id)
        VALUES ($1,$2,$3,$4)
        RETURNING created_at, updated_at
    `, mc.ConversationID, mc.UserID, mc.Title, mc.PersonaID)
	out := *mc
	if err := row.Scan(&out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *conversations) Get(ctx context.Context, userID, conversationID string) (*model.Conversation, error) {
	var m model.Conversation
	row := c.db.QueryRowContext(ctx, `
        SELECT conversation_id, user_id, title, persona_id, created_at, updated_at
        FROM conversations WHERE user_id=$1 AND conversation_id=$2
    `, userID, conversationID)
	if err := row.Scan(&m.ConversationID, &m.UserID, &m.Title, &m.PersonaID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &m, nil
}

func (c *conversations) List(ctx context.Context, userID string) ([]*model.Conversation, error) {
	return c.query(ctx, `
        SELECT conversation_id, user_id, title, persona_id, created_at, updated_at
        FROM conversations WHERE user_id=$1 ORDER BY created_at DESC
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
	recJSON, _ := json.Marshal(m.Recommendations)
	row := ms.db.QueryRowContext(ctx, `
        INSERT INTO messages (message_id, conversation_id, role, content, emotional_tone, sentiment_score, recommendations)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING created_at
    `, m.MessageID, m.ConversationID, m.Role, m.Content, m.EmotionalTone, m.SentimentScore, nullIfEmpty(recJSON))
	out := *m
	if err := row.Scan(&out.CreatedAt); err != nil {
		return nil, err
	}
	if _, err := ms.db.ExecContext(ctx, `UPDATE conversations SET updated_at=now() WHERE conversation_id=$1`, m.ConversationID); err != nil {
		return nil, err
	}
	return &out, nil
}

func (ms *messages) List(ctx context.Context, conversationID string) ([]*model.Message, error) {
	return ms.query(ctx, `
        SELECT message_id, conversation_id, role, content, emotional_tone, sentiment_score, recommendations, created_at
        FROM messages WHERE conversation_id=$1 ORDER BY created_at DESC
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
	row := me.db.QueryRowContext(ctx, `
        INSERT INTO mood_entries (entry_id, user_id, mood_level, anxiety_level, notes)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING created_at
    `, e.EntryID, e.UserID, e.MoodLevel, e.AnxietyLevel, e.Notes)
	out := *e
	if err := row.Scan(&out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (me *moodEntries) List(ctx context.Context, req model.ListMoodEntriesRequest) ([]*model.MoodEntry, error) {
	query := `SELECT entry_id, user_id, mood_level, anxiety_level, notes, created_at
              FROM mood_entries WHERE user_id=$1`
	args := []interface{}{req.UserID}
	if req.Start != nil {
		args = append(args, *req.Start)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if req.End != nil {
		args = append(args, *req.End)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
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
        FROM mood_entries WHERE user_id=$1 ORDER BY created_at DESC LIMIT 1
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
	themesJSON, _ := json.Marshal(e.EmotionalThemes)
	row := je.db.QueryRowContext(ctx, `
        INSERT INTO journal_entries (entry_id, user_id, title, content, prompt, emotional_themes)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING created_at, updated_at
    `, e.EntryID, e.UserID, e.Title, e.Content, e.Prompt, nullIfEmpty(themesJSON))
	out := *e
	if err := row.Scan(&out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (je *journalEntries) Get(ctx context.Context, userID, entryID string) (*model.JournalEntry, error) {
	var m model.JournalEntry
	var themes sql.NullString
	row := je.db.QueryRowContext(ctx, `
        SELECT entry_id, user_id, title, content, prompt, emotional_themes, created_at, updated_at
        FROM journal_entries WHERE user_id=$1 AND entry_id=$2
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
              FROM journal_entries WHERE user_id=$1 ORDER BY created_at DESC`
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
	row := iv.db.QueryRowContext(ctx, `
        INSERT INTO interventions (intervention_id, user_id, type, title, duration)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING completed, created_at
    `, m.InterventionID, m.UserID, m.Type, m.Title, m.Duration)
	out := *m
	if err := row.Scan(&out.Completed, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (iv *interventions) List(ctx context.Context, userID string) ([]*model.Intervention, error) {
	rows, err := iv.db.QueryContext(ctx, `
        SELECT intervention_id, user_id, type, title, duration, completed, completed_at, created_at
        FROM interventions WHERE user_id=$1 ORDER BY created_at DESC
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
	var m model.Intervention
	row := iv.db.QueryRowContext(ctx, `
        UPDATE interventions SET completed=true, completed_at=$1
        WHERE user_id=$2 AND intervention_id=$3
        RETURNING intervention_id, user_id, type, title, duration, completed, completed_at, created_at
    `, at, userID, interventionID)
	if err := row.Scan(&m.InterventionID, &m.UserID, &m.Type, &m.Title, &m.Duration, &m.Completed, &m.CompletedAt, &m.CreatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &m, nil
}

// --- Crisis alerts ---
type crisisAlerts struct{ db *sql.DB }

func (ca *crisisAlerts) Create(ctx context.Context, a *model.CrisisAlert) (*model.CrisisAlert, error) {
	dataJSON, _ := json.Marshal(a.TriggerData)
	row := ca.db.QueryRowContext(ctx, `
        INSERT INTO crisis_alerts (alert_id, user_id, severity, trigger_type, trigger_data, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING created_at
    `, a.AlertID, a.UserID, a.Severity, a.TriggerType, nullIfEmpty(dataJSON), a.Status)
	out := *a
	if err := row.Scan(&out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (ca *crisisAlerts) Update(ctx context.Context, alertID string, status string, notes, reviewedBy *string, reviewedAt *time.Time) (*model.CrisisAlert, error) {
	var m model.CrisisAlert
	var data sql.NullString
	row := ca.db.QueryRowContext(ctx, `
        UPDATE crisis_alerts SET status=$1, notes=$2, reviewed_by=$3, reviewed_at=$4
        WHERE alert_id=$5
        RETURNING alert_id, user_id, severity, trigger_type, trigger_data, status, reviewed_by, notes, created_at, reviewed_at
    `, status, notes, reviewedBy, reviewedAt, alertID)
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
