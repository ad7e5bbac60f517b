package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/schoolhub/internal/app/models"
)

// TeacherRepository handles database operations for teachers
type TeacherRepository struct {
	db Querier
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db Querier) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *TeacherRepository) WithTx(tx pgx.Tx) *TeacherRepository {
	return &TeacherRepository{db: tx}
}

// Create creates a new teacher
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (first_name, last_name, personal_code, phone, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	return r.db.QueryRow(ctx, query,
		teacher.FirstName, teacher.LastName, teacher.PersonalCode, teacher.Phone, teacher.IsActive,
	).Scan(&teacher.ID)
}

// GetByID retrieves a teacher by ID. Returns nil without error when no row
// matches.
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := `
		SELECT id, first_name, last_name, personal_code, phone, is_active
		FROM teachers
		WHERE id = $1
	`

	var teacher models.Teacher
	err := r.db.QueryRow(ctx, query, id).Scan(
		&teacher.ID,
		&teacher.FirstName,
		&teacher.LastName,
		&teacher.PersonalCode,
		&teacher.Phone,
		&teacher.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return &teacher, nil
}

// GetAll retrieves teachers with pagination, newest first
func (r *TeacherRepository) GetAll(ctx context.Context, page, pageSize int) ([]*models.Teacher, int64, error) {
	offset := (page - 1) * pageSize

	query := squirrel.Select("id", "first_name", "last_name", "personal_code", "phone", "is_active", "COUNT(*) OVER()").
		From("teachers").
		OrderBy("id DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var teachers []*models.Teacher
	var total int64

	for rows.Next() {
		var teacher models.Teacher
		if err := rows.Scan(
			&teacher.ID,
			&teacher.FirstName,
			&teacher.LastName,
			&teacher.PersonalCode,
			&teacher.Phone,
			&teacher.IsActive,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		teachers = append(teachers, &teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return teachers, total, nil
}

// ExistsByPersonalCodeOrPhone checks if another teacher already uses the
// personal code or phone number, optionally excluding one id.
func (r *TeacherRepository) ExistsByPersonalCodeOrPhone(ctx context.Context, personalCode, phone string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM teachers WHERE (personal_code = $1 OR phone = $2) AND id != $3)`,
		personalCode, phone, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking teacher uniqueness: %w", err)
	}

	return exists, nil
}

// Update updates an existing teacher
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	query := `
		UPDATE teachers
		SET first_name = $1, last_name = $2, phone = $3, is_active = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		teacher.FirstName, teacher.LastName, teacher.Phone, teacher.IsActive, teacher.ID)
	if err != nil {
		return fmt.Errorf("error updating teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete deletes a teacher by ID. Sessions referencing the teacher keep
// existing with a nulled teacher_id (ON DELETE SET NULL).
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
