package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"voice_control_system/internal/models"
)

type ConversationSQLite struct {
	db *sql.DB
}

func NewConversationSQLite(db *sql.DB) *ConversationSQLite {
	return &ConversationSQLite{db: db}
}

var _ Conversations = (*ConversationSQLite)(nil)

const (
	insertConversationSQL = `
		INSERT INTO conversation_logs (id, user_id, file_path, transcribed_text, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	// created_at has one-second resolution; rowid breaks ties in
	// insertion order so same-second rows keep a stable newest-first.
	selectRecentConversationsSQL = `
		SELECT id, user_id, file_path, transcribed_text, created_at
		FROM conversation_logs
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`
)

// Append inserts a new log row. Missing ID/CreatedAt are filled in.
func (r *ConversationSQLite) Append(ctx context.Context, l models.ConversationLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	} else {
		l.CreatedAt = l.CreatedAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertConversationSQL,
		l.ID, l.UserID, l.FilePath, l.TranscribedText, l.CreatedAt.Format("2006-01-02 15:04:05"))
	if err != nil {
		return fmt.Errorf("insert conversation log for %q: %w", l.UserID, err)
	}
	return nil
}

// ListRecent returns the newest rows first.
func (r *ConversationSQLite) ListRecent(ctx context.Context, userID string, limit int) ([]models.ConversationLog, error) {
	rows, err := r.db.QueryContext(ctx, selectRecentConversationsSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list conversations for %q: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.ConversationLog, 0, limit)
	for rows.Next() {
		var l models.ConversationLog
		var text sql.NullString
		if err := rows.Scan(&l.ID, &l.UserID, &l.FilePath, &text, &l.CreatedAt); err != nil {
			return nil, err
		}
		l.TranscribedText = text.String
		l.CreatedAt = l.CreatedAt.UTC()
		out = append(out, l)
	}
	return out, rows.Err()
}
