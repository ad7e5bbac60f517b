package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/dberrors"
)

// RoomService defines the interface for room-related operations
type RoomService interface {
	CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*models.Room, error)
	GetRoomByID(ctx context.Context, id int64) (*models.Room, error)
	GetAllRooms(ctx context.Context) ([]*models.Room, error)
	UpdateRoom(ctx context.Context, id int64, req *dto.UpdateRoomRequest) (*models.Room, error)
	DeleteRoom(ctx context.Context, id int64) error
}

// roomServiceImpl implements the RoomService interface
type roomServiceImpl struct {
	rooms *repositories.RoomRepository
}

// NewRoomService creates a new room service instance
func NewRoomService(rooms *repositories.RoomRepository) RoomService {
	return &roomServiceImpl{rooms: rooms}
}

// CreateRoom creates a new room
func (s *roomServiceImpl) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*models.Room, error) {
	exists, err := s.rooms.ExistsByNumber(ctx, req.Number, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking room uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("a room with this number already exists")
	}

	room := &models.Room{Title: req.Title, Number: req.Number}
	if err := s.rooms.Create(ctx, room); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("a room with this number already exists")
		}
		return nil, fmt.Errorf("error creating room: %w", err)
	}

	return room, nil
}

// GetRoomByID retrieves a room by ID
func (s *roomServiceImpl) GetRoomByID(ctx context.Context, id int64) (*models.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}
	if room == nil {
		return nil, apperrors.NewNotFoundError("room not found")
	}
	return room, nil
}

// GetAllRooms retrieves all rooms
func (s *roomServiceImpl) GetAllRooms(ctx context.Context) ([]*models.Room, error) {
	rooms, err := s.rooms.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving rooms: %w", err)
	}
	return rooms, nil
}

// UpdateRoom updates an existing room
func (s *roomServiceImpl) UpdateRoom(ctx context.Context, id int64, req *dto.UpdateRoomRequest) (*models.Room, error) {
	if req.Title == nil && req.Number == nil {
		return nil, apperrors.NewValidationError("at least one of title or number must be provided")
	}

	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}
	if room == nil {
		return nil, apperrors.NewNotFoundError("room not found")
	}

	if req.Title != nil {
		room.Title = *req.Title
	}
	if req.Number != nil {
		room.Number = *req.Number
	}

	exists, err := s.rooms.ExistsByNumber(ctx, room.Number, id)
	if err != nil {
		return nil, fmt.Errorf("error checking room uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("a room with this number already exists")
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("room not found")
		}
		return nil, fmt.Errorf("error updating room: %w", err)
	}

	return room, nil
}

// DeleteRoom deletes a room by ID. Sessions scheduled in the room survive
// with their room reference cleared.
func (s *roomServiceImpl) DeleteRoom(ctx context.Context, id int64) error {
	if err := s.rooms.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("room not found")
		}
		return fmt.Errorf("error deleting room: %w", err)
	}
	return nil
}
