package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/pkg/helpers"
)

// SessionRepository handles database operations for sessions
type SessionRepository struct {
	db Querier
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db Querier) *SessionRepository {
	return &SessionRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *SessionRepository) WithTx(tx pgx.Tx) *SessionRepository {
	return &SessionRepository{db: tx}
}

// Create creates a new session
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (day, start_time, end_time, lesson, room_id, class_id, teacher_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	return r.db.QueryRow(ctx, query,
		session.Day, session.StartTime, session.EndTime, session.Lesson,
		session.RoomID, session.ClassID, session.TeacherID,
	).Scan(&session.ID)
}

// GetByID retrieves a plain session row by ID. Returns nil without error
// when no row matches.
func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	query := `
		SELECT id, day, start_time, end_time, lesson, room_id, class_id, teacher_id
		FROM sessions
		WHERE id = $1
	`

	var session models.Session
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.Day,
		&session.StartTime,
		&session.EndTime,
		&session.Lesson,
		&session.RoomID,
		&session.ClassID,
		&session.TeacherID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}

	return &session, nil
}

// detailColumns are the projection shared by GetDetail and List: the session
// row joined with its room, class and teacher plus the live student count of
// the linked class.
var detailColumns = []string{
	"s.id", "s.day", "s.start_time", "s.end_time", "s.lesson",
	"s.room_id", "s.class_id", "s.teacher_id",
	"r.number", "c.title", "t.personal_code",
	"(SELECT COUNT(*) FROM students st WHERE st.class_id = s.class_id)",
}

func detailQuery() squirrel.SelectBuilder {
	return squirrel.Select(detailColumns...).
		From("sessions s").
		LeftJoin("rooms r ON r.id = s.room_id").
		LeftJoin("classes c ON c.id = s.class_id").
		LeftJoin("teachers t ON t.id = s.teacher_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanDetail(rows pgx.Rows) (*models.SessionDetail, error) {
	var d models.SessionDetail
	var roomNumber sql.NullInt64
	var classTitle, personalCode sql.NullString

	if err := rows.Scan(
		&d.ID, &d.Day, &d.StartTime, &d.EndTime, &d.Lesson,
		&d.RoomID, &d.ClassID, &d.TeacherID,
		&roomNumber, &classTitle, &personalCode,
		&d.StudentCount,
	); err != nil {
		return nil, err
	}

	if d.RoomID != nil {
		d.Room = &models.RoomRef{ID: *d.RoomID, Number: int(roomNumber.Int64)}
	}
	if d.ClassID != nil {
		d.Class = &models.ClassRef{ID: *d.ClassID, Title: classTitle.String}
	}
	if d.TeacherID != nil {
		d.Teacher = &models.TeacherRef{ID: *d.TeacherID, PersonalCode: personalCode.String}
	}

	return &d, nil
}

// GetDetail retrieves one session joined with room, class and teacher.
// Returns nil without error when no row matches.
func (r *SessionRepository) GetDetail(ctx context.Context, id int64) (*models.SessionDetail, error) {
	sqlStr, args, err := detailQuery().Where("s.id = ?", id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return scanDetail(rows)
}

// List retrieves joined session views matching every set filter.
func (r *SessionRepository) List(ctx context.Context, filter models.SessionFilter) ([]*models.SessionDetail, error) {
	query := detailQuery().OrderBy("s.day", "s.start_time", "s.id")

	if filter.RoomID != 0 {
		query = query.Where("s.room_id = ?", filter.RoomID)
	}
	if filter.RoomNumber != 0 {
		query = query.Where("r.number = ?", filter.RoomNumber)
	}
	if filter.ClassID != 0 {
		query = query.Where("s.class_id = ?", filter.ClassID)
	}
	if filter.ClassNumber != "" {
		// Legacy behavior: the classNumber parameter matches the class title.
		query = query.Where("c.title = ?", filter.ClassNumber)
	}
	if filter.TeacherID != 0 {
		query = query.Where("s.teacher_id = ?", filter.TeacherID)
	}
	if filter.PersonalCode != "" {
		query = query.Where("t.personal_code = ?", filter.PersonalCode)
	}
	if filter.StudentID != 0 {
		query = query.Where("EXISTS(SELECT 1 FROM students st WHERE st.class_id = s.class_id AND st.id = ?)", filter.StudentID)
	}
	if filter.NationalCode != "" {
		query = query.Where("EXISTS(SELECT 1 FROM students st WHERE st.class_id = s.class_id AND st.national_code = ?)", filter.NationalCode)
	}
	if filter.Day != "" {
		query = query.Where("s.day = ?", filter.Day)
	}
	if filter.SlotStart != "" {
		query = query.Where("s.start_time >= ?", filter.SlotStart)
	}
	if filter.SlotEnd != "" {
		query = query.Where("s.end_time <= ?", filter.SlotEnd)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var sessions []*models.SessionDetail
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		sessions = append(sessions, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// ListByRoomAndDay returns all sessions occupying the room on the day,
// excluding the given session id (0 excludes nothing).
func (r *SessionRepository) ListByRoomAndDay(ctx context.Context, roomID int64, day models.Day, excludeID int64) ([]*models.Session, error) {
	query := `
		SELECT id, day, start_time, end_time, lesson, room_id, class_id, teacher_id
		FROM sessions
		WHERE room_id = $1 AND day = $2 AND id != $3
	`

	return r.collect(ctx, query, roomID, day, excludeID)
}

// ListByTeacherAndDay returns all sessions the teacher holds on the day,
// excluding the given session id (0 excludes nothing).
func (r *SessionRepository) ListByTeacherAndDay(ctx context.Context, teacherID int64, day models.Day, excludeID int64) ([]*models.Session, error) {
	query := `
		SELECT id, day, start_time, end_time, lesson, room_id, class_id, teacher_id
		FROM sessions
		WHERE teacher_id = $1 AND day = $2 AND id != $3
	`

	return r.collect(ctx, query, teacherID, day, excludeID)
}

func (r *SessionRepository) collect(ctx context.Context, query string, args ...any) ([]*models.Session, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		var session models.Session
		if err := rows.Scan(
			&session.ID,
			&session.Day,
			&session.StartTime,
			&session.EndTime,
			&session.Lesson,
			&session.RoomID,
			&session.ClassID,
			&session.TeacherID,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, &session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// Update persists day, times, lesson and both weak references of the
// session.
func (r *SessionRepository) Update(ctx context.Context, session *models.Session) error {
	query := `
		UPDATE sessions
		SET day = $1, start_time = $2, end_time = $3, lesson = $4,
		    room_id = $5, class_id = $6, teacher_id = $7
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		session.Day, session.StartTime, session.EndTime, helpers.GetNullString(session.Lesson),
		helpers.GetNullInt64(session.RoomID), helpers.GetNullInt64(session.ClassID), helpers.GetNullInt64(session.TeacherID),
		session.ID)
	if err != nil {
		return fmt.Errorf("error updating session: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete deletes a session by ID
func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
