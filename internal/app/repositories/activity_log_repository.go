package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/schoolhub/internal/app/models"
)

// ActivityLogRepository handles database operations for the activity log
type ActivityLogRepository struct {
	db Querier
}

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(db Querier) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *ActivityLogRepository) WithTx(tx pgx.Tx) *ActivityLogRepository {
	return &ActivityLogRepository{db: tx}
}

// Record writes one log entry. The id and timestamp are assigned here.
func (r *ActivityLogRepository) Record(ctx context.Context, entry *models.ActivityLog) error {
	entry.ID = uuid.NewString()

	details, err := json.Marshal(entry.Details)
	if err != nil {
		return fmt.Errorf("error encoding log details: %w", err)
	}

	query := `
		INSERT INTO activity_logs (id, user_id, action, details, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`

	return r.db.QueryRow(ctx, query,
		entry.ID, entry.UserID, entry.Action, details,
	).Scan(&entry.CreatedAt)
}

// ListRecent returns the newest log entries, at most limit of them.
func (r *ActivityLogRepository) ListRecent(ctx context.Context, limit int) ([]*models.ActivityLog, error) {
	query := `
		SELECT id, user_id, action, details, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var entries []*models.ActivityLog
	for rows.Next() {
		var entry models.ActivityLog
		var details []byte
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Action,
			&details,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &entry.Details); err != nil {
				return nil, fmt.Errorf("error decoding log details: %w", err)
			}
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
