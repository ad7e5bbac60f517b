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
	"github.com/yigit/schoolhub/internal/pkg/helpers"
	"github.com/yigit/schoolhub/internal/pkg/validation"
)

// TeacherService defines the interface for teacher-related operations
type TeacherService interface {
	CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error)
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetAllTeachers(ctx context.Context, page, pageSize int) ([]*models.Teacher, helpers.PaginationInfo, error)
	UpdateTeacher(ctx context.Context, id int64, req *dto.UpdateTeacherRequest) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, id int64) error
}

// teacherServiceImpl implements the TeacherService interface
type teacherServiceImpl struct {
	teachers *repositories.TeacherRepository
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teachers *repositories.TeacherRepository) TeacherService {
	return &teacherServiceImpl{teachers: teachers}
}

func validateTeacherFields(personalCode, phone string) []apperrors.FieldError {
	var fields []apperrors.FieldError
	if !validation.IsPersonalCode(personalCode) {
		fields = append(fields, apperrors.FieldError{Message: "personalCode must be 3-20 letters, digits or dashes", Path: "personalCode"})
	}
	if !validation.IsPhone(phone) {
		fields = append(fields, apperrors.FieldError{Message: "phone must be a 10 or 11 digit number starting with 0", Path: "phone"})
	}
	return fields
}

// CreateTeacher creates a new teacher. New teachers start out active.
func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error) {
	if fields := validateTeacherFields(req.PersonalCode, req.Phone); len(fields) > 0 {
		return nil, apperrors.NewValidationError("validation failed", fields...)
	}

	exists, err := s.teachers.ExistsByPersonalCodeOrPhone(ctx, req.PersonalCode, req.Phone, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking teacher uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("a teacher with this personal code or phone already exists")
	}

	teacher := &models.Teacher{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PersonalCode: req.PersonalCode,
		Phone:        req.Phone,
		IsActive:     true,
	}
	if err := s.teachers.Create(ctx, teacher); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("a teacher with this personal code or phone already exists")
		}
		return nil, fmt.Errorf("error creating teacher: %w", err)
	}

	return teacher, nil
}

// GetTeacherByID retrieves a teacher by ID
func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	if teacher == nil {
		return nil, apperrors.NewNotFoundError("teacher not found")
	}
	return teacher, nil
}

// GetAllTeachers retrieves teachers with pagination
func (s *teacherServiceImpl) GetAllTeachers(ctx context.Context, page, pageSize int) ([]*models.Teacher, helpers.PaginationInfo, error) {
	if page < 1 {
		page = helpers.DefaultPage
	}
	if pageSize <= 0 || pageSize > helpers.MaxPageSize {
		pageSize = helpers.DefaultPageSize
	}

	teachers, total, err := s.teachers.GetAll(ctx, page, pageSize)
	if err != nil {
		return nil, helpers.PaginationInfo{}, fmt.Errorf("error retrieving teachers: %w", err)
	}

	return teachers, helpers.NewPaginationInfo(total, page, pageSize), nil
}

// UpdateTeacher updates an existing teacher. The personal code is immutable.
func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, id int64, req *dto.UpdateTeacherRequest) (*models.Teacher, error) {
	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	if teacher == nil {
		return nil, apperrors.NewNotFoundError("teacher not found")
	}

	if req.FirstName != nil {
		teacher.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		teacher.LastName = *req.LastName
	}
	if req.Phone != nil {
		if !validation.IsPhone(*req.Phone) {
			return nil, apperrors.NewValidationError("validation failed",
				apperrors.FieldError{Message: "phone must be a 10 or 11 digit number starting with 0", Path: "phone"})
		}
		teacher.Phone = *req.Phone
	}
	if req.IsActive != nil {
		teacher.IsActive = *req.IsActive
	}

	exists, err := s.teachers.ExistsByPersonalCodeOrPhone(ctx, teacher.PersonalCode, teacher.Phone, id)
	if err != nil {
		return nil, fmt.Errorf("error checking teacher uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("a teacher with this personal code or phone already exists")
	}

	if err := s.teachers.Update(ctx, teacher); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("teacher not found")
		}
		return nil, fmt.Errorf("error updating teacher: %w", err)
	}

	return teacher, nil
}

// DeleteTeacher deletes a teacher by ID. The teacher's sessions survive with
// their teacher reference cleared.
func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id int64) error {
	if err := s.teachers.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("teacher not found")
		}
		return fmt.Errorf("error deleting teacher: %w", err)
	}
	return nil
}
