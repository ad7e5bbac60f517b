package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yigit/schoolhub/internal/app/models"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db Querier
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db Querier) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *AttendanceRepository) WithTx(tx pgx.Tx) *AttendanceRepository {
	return &AttendanceRepository{db: tx}
}

// Upsert records the student's attendance for the session. A second record
// for the same (student, session) pair overwrites the first.
func (r *AttendanceRepository) Upsert(ctx context.Context, att *models.Attendance) error {
	query := `
		INSERT INTO attendances (student_id, session_id, status, delay_minutes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (student_id, session_id)
		DO UPDATE SET status = EXCLUDED.status, delay_minutes = EXCLUDED.delay_minutes
		RETURNING id
	`

	return r.db.QueryRow(ctx, query,
		att.StudentID, att.SessionID, att.Status, att.DelayMinutes,
	).Scan(&att.ID)
}

// GetBySession retrieves all attendance records of one session
func (r *AttendanceRepository) GetBySession(ctx context.Context, sessionID int64) ([]*models.Attendance, error) {
	query := `
		SELECT id, student_id, session_id, status, delay_minutes
		FROM attendances
		WHERE session_id = $1
		ORDER BY student_id
	`

	return r.collect(ctx, query, sessionID)
}

// GetByStudent retrieves all attendance records of one student
func (r *AttendanceRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Attendance, error) {
	query := `
		SELECT id, student_id, session_id, status, delay_minutes
		FROM attendances
		WHERE student_id = $1
		ORDER BY session_id
	`

	return r.collect(ctx, query, studentID)
}

func (r *AttendanceRepository) collect(ctx context.Context, query string, arg any) ([]*models.Attendance, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var att models.Attendance
		if err := rows.Scan(
			&att.ID,
			&att.StudentID,
			&att.SessionID,
			&att.Status,
			&att.DelayMinutes,
		); err != nil {
			return nil, err
		}
		records = append(records, &att)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetByID retrieves one attendance record. Returns nil without error when no
// row matches.
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	query := `
		SELECT id, student_id, session_id, status, delay_minutes
		FROM attendances
		WHERE id = $1
	`

	var att models.Attendance
	err := r.db.QueryRow(ctx, query, id).Scan(
		&att.ID,
		&att.StudentID,
		&att.SessionID,
		&att.Status,
		&att.DelayMinutes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving attendance record: %w", err)
	}

	return &att, nil
}

// Delete deletes an attendance record by ID
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting attendance record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
