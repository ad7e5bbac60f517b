package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/schoolhub/internal/app/models"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db Querier
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db Querier) *StudentRepository {
	return &StudentRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *StudentRepository) WithTx(tx pgx.Tx) *StudentRepository {
	return &StudentRepository{db: tx}
}

// Create creates a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (first_name, last_name, national_code, grade, class_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	return r.db.QueryRow(ctx, query,
		student.FirstName, student.LastName, student.NationalCode, student.Grade, student.ClassID,
	).Scan(&student.ID)
}

// GetByID retrieves a student by ID. Returns nil without error when no row
// matches.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, first_name, last_name, national_code, grade, class_id
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.NationalCode,
		&student.Grade,
		&student.ClassID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetAll retrieves students with pagination, optionally filtered by class
func (r *StudentRepository) GetAll(ctx context.Context, classID *int64, page, pageSize int) ([]*models.Student, int64, error) {
	offset := (page - 1) * pageSize

	query := squirrel.Select("id", "first_name", "last_name", "national_code", "grade", "class_id", "COUNT(*) OVER()").
		From("students").
		OrderBy("id DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	if classID != nil {
		query = query.Where("class_id = ?", *classID)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	var total int64

	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.FirstName,
			&student.LastName,
			&student.NationalCode,
			&student.Grade,
			&student.ClassID,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// GetByIDs resolves students by their ids. Unknown ids are simply absent
// from the result.
func (r *StudentRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Student, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, first_name, last_name, national_code, grade, class_id
		FROM students
		WHERE id = ANY($1)
	`

	return r.collect(ctx, query, ids)
}

// GetByNationalCodes resolves students by their national codes. Unknown
// codes are simply absent from the result.
func (r *StudentRepository) GetByNationalCodes(ctx context.Context, codes []string) ([]*models.Student, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, first_name, last_name, national_code, grade, class_id
		FROM students
		WHERE national_code = ANY($1)
	`

	return r.collect(ctx, query, codes)
}

func (r *StudentRepository) collect(ctx context.Context, query string, arg any) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.FirstName,
			&student.LastName,
			&student.NationalCode,
			&student.Grade,
			&student.ClassID,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// ExistsByNationalCode checks if a student with the given national code
// exists, optionally excluding one id.
func (r *StudentRepository) ExistsByNationalCode(ctx context.Context, nationalCode string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE national_code = $1 AND id != $2)`,
		nationalCode, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// AssignClass bulk-assigns the class to all given student ids.
func (r *StudentRepository) AssignClass(ctx context.Context, studentIDs []int64, classID int64) error {
	if len(studentIDs) == 0 {
		return nil
	}

	_, err := r.db.Exec(ctx,
		`UPDATE students SET class_id = $1 WHERE id = ANY($2)`, classID, studentIDs)
	if err != nil {
		return fmt.Errorf("error assigning students to class: %w", err)
	}

	return nil
}

// ClearClass removes the student's class assignment.
func (r *StudentRepository) ClearClass(ctx context.Context, studentID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE students SET class_id = NULL WHERE id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("error clearing student class: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Update updates an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, grade = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FirstName, student.LastName, student.Grade, student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete deletes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
