package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yigit/schoolhub/internal/app/models"
)

// RoomRepository handles database operations for rooms
type RoomRepository struct {
	db Querier
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db Querier) *RoomRepository {
	return &RoomRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *RoomRepository) WithTx(tx pgx.Tx) *RoomRepository {
	return &RoomRepository{db: tx}
}

// Create creates a new room
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO rooms (title, number)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, room.Title, room.Number).Scan(&room.ID)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a room by ID. Returns nil without error when no row
// matches.
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	query := `
		SELECT id, title, number
		FROM rooms
		WHERE id = $1
	`

	var room models.Room
	err := r.db.QueryRow(ctx, query, id).Scan(&room.ID, &room.Title, &room.Number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}

	return &room, nil
}

// GetAll retrieves all rooms ordered by number
func (r *RoomRepository) GetAll(ctx context.Context) ([]*models.Room, error) {
	query := `
		SELECT id, title, number
		FROM rooms
		ORDER BY number
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		var room models.Room
		if err := rows.Scan(&room.ID, &room.Title, &room.Number); err != nil {
			return nil, err
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rooms, nil
}

// ExistsByNumber checks if a room with the given number exists, optionally
// excluding one id (for updates).
func (r *RoomRepository) ExistsByNumber(ctx context.Context, number int, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM rooms WHERE number = $1 AND id != $2)`,
		number, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking room existence: %w", err)
	}

	return exists, nil
}

// Update updates an existing room
func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	query := `
		UPDATE rooms
		SET title = $1, number = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, room.Title, room.Number, room.ID)
	if err != nil {
		return fmt.Errorf("error updating room: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete deletes a room by ID. Sessions referencing the room keep existing
// with a nulled room_id (ON DELETE SET NULL).
func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting room: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
