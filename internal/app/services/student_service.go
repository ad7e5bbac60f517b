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

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context, classID *int64, page, pageSize int) ([]*models.Student, helpers.PaginationInfo, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	students *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(students *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{students: students}
}

// CreateStudent creates a new student. New students start out unassigned;
// enrollment into a class goes through the class endpoints.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if !validation.IsNationalCode(req.NationalCode) {
		return nil, apperrors.NewValidationError("validation failed",
			apperrors.FieldError{Message: "nationalCode must be a 10 digit number", Path: "nationalCode"})
	}

	exists, err := s.students.ExistsByNationalCode(ctx, req.NationalCode, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking student uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("a student with this national code already exists")
	}

	student := &models.Student{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		NationalCode: req.NationalCode,
		Grade:        req.Grade,
	}
	if err := s.students.Create(ctx, student); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("a student with this national code already exists")
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return student, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.NewNotFoundError("student not found")
	}
	return student, nil
}

// GetAllStudents retrieves students with pagination, optionally filtered by
// class.
func (s *studentServiceImpl) GetAllStudents(ctx context.Context, classID *int64, page, pageSize int) ([]*models.Student, helpers.PaginationInfo, error) {
	if page < 1 {
		page = helpers.DefaultPage
	}
	if pageSize <= 0 || pageSize > helpers.MaxPageSize {
		pageSize = helpers.DefaultPageSize
	}

	students, total, err := s.students.GetAll(ctx, classID, page, pageSize)
	if err != nil {
		return nil, helpers.PaginationInfo{}, fmt.Errorf("error retrieving students: %w", err)
	}

	return students, helpers.NewPaginationInfo(total, page, pageSize), nil
}

// UpdateStudent updates an existing student. The national code is immutable;
// class membership changes go through the class endpoints.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.NewNotFoundError("student not found")
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.Grade != nil {
		if *req.Grade <= 0 {
			return nil, apperrors.NewValidationError("validation failed",
				apperrors.FieldError{Message: "grade must be a positive number", Path: "grade"})
		}
		student.Grade = *req.Grade
	}

	if err := s.students.Update(ctx, student); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("student not found")
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return student, nil
}

// DeleteStudent deletes a student by ID
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.students.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("student not found")
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
