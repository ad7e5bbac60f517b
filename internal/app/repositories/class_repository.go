package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yigit/schoolhub/internal/app/models"
)

// ClassRepository handles database operations for classes
type ClassRepository struct {
	db Querier
}

// NewClassRepository creates a new class repository
func NewClassRepository(db Querier) *ClassRepository {
	return &ClassRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *ClassRepository) WithTx(tx pgx.Tx) *ClassRepository {
	return &ClassRepository{db: tx}
}

// Create creates a new class
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	query := `
		INSERT INTO classes (title, number, capacity)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	return r.db.QueryRow(ctx, query, class.Title, class.Number, class.Capacity).Scan(&class.ID)
}

// GetByID retrieves a class by ID. Returns nil without error when no row
// matches.
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	query := `
		SELECT id, title, number, capacity
		FROM classes
		WHERE id = $1
	`

	var class models.Class
	err := r.db.QueryRow(ctx, query, id).Scan(&class.ID, &class.Title, &class.Number, &class.Capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}

	return &class, nil
}

// GetAll retrieves all classes with their enrolled student counts
func (r *ClassRepository) GetAll(ctx context.Context) ([]*models.Class, error) {
	query := `
		SELECT c.id, c.title, c.number, c.capacity, COUNT(s.id)
		FROM classes c
		LEFT JOIN students s ON s.class_id = c.id
		GROUP BY c.id, c.title, c.number, c.capacity
		ORDER BY c.number
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		var class models.Class
		if err := rows.Scan(&class.ID, &class.Title, &class.Number, &class.Capacity, &class.StudentCount); err != nil {
			return nil, err
		}
		classes = append(classes, &class)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// ExistsByTitleOrNumber checks if another class already uses the title or
// number, optionally excluding one id.
func (r *ClassRepository) ExistsByTitleOrNumber(ctx context.Context, title string, number int, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM classes WHERE (title = $1 OR number = $2) AND id != $3)`,
		title, number, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking class uniqueness: %w", err)
	}

	return exists, nil
}

// CountStudents returns the number of students currently enrolled in the
// class.
func (r *ClassRepository) CountStudents(ctx context.Context, classID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE class_id = $1`, classID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting enrolled students: %w", err)
	}

	return count, nil
}

// Update updates title and number of an existing class
func (r *ClassRepository) Update(ctx context.Context, class *models.Class) error {
	query := `
		UPDATE classes
		SET title = $1, number = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, class.Title, class.Number, class.ID)
	if err != nil {
		return fmt.Errorf("error updating class: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// UpdateCapacity sets a new capacity for the class
func (r *ClassRepository) UpdateCapacity(ctx context.Context, classID int64, capacity int) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE classes SET capacity = $1 WHERE id = $2`, capacity, classID)
	if err != nil {
		return fmt.Errorf("error updating class capacity: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete deletes a class by ID. Students and sessions that reference it keep
// existing with a nulled class_id (ON DELETE SET NULL).
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting class: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
