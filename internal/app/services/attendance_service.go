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
)

// AttendanceService defines the interface for attendance operations
type AttendanceService interface {
	RecordAttendance(ctx context.Context, req *dto.RecordAttendanceRequest) (*models.Attendance, error)
	GetSessionAttendance(ctx context.Context, sessionID int64) ([]*models.Attendance, error)
	GetStudentAttendance(ctx context.Context, studentID int64) ([]*models.Attendance, error)
	DeleteAttendance(ctx context.Context, id int64) error
}

// attendanceSessionStore is the lookup the attendance service needs from the
// session side.
type attendanceSessionStore interface {
	GetByID(ctx context.Context, id int64) (*models.Session, error)
}

// attendanceServiceImpl implements the AttendanceService interface
type attendanceServiceImpl struct {
	attendances *repositories.AttendanceRepository
	students    studentGetter
	sessions    attendanceSessionStore
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(repos *repositories.Repositories) AttendanceService {
	return &attendanceServiceImpl{
		attendances: repos.AttendanceRepository,
		students:    repos.StudentRepository,
		sessions:    repos.SessionRepository,
	}
}

// RecordAttendance records the student's presence in one session. Recording
// twice for the same pair overwrites the earlier entry.
func (s *attendanceServiceImpl) RecordAttendance(ctx context.Context, req *dto.RecordAttendanceRequest) (*models.Attendance, error) {
	status := models.AttendanceStatus(req.Status)

	var fields []apperrors.FieldError
	if !models.IsValidAttendanceStatus(status) {
		fields = append(fields, apperrors.FieldError{Message: "status must be present, delay or absent", Path: "status"})
	}
	if status == models.AttendanceDelay {
		if req.DelayMinutes == nil || *req.DelayMinutes <= 0 {
			fields = append(fields, apperrors.FieldError{Message: "delayMinutes must be a positive number when status is delay", Path: "delayMinutes"})
		}
	} else if req.DelayMinutes != nil {
		fields = append(fields, apperrors.FieldError{Message: "delayMinutes is only allowed when status is delay", Path: "delayMinutes"})
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError("validation failed", fields...)
	}

	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.NewNotFoundError("student not found")
	}

	session, err := s.sessions.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}
	if session == nil {
		return nil, apperrors.NewNotFoundError("session not found")
	}

	// Attendance only makes sense for students of the session's class
	if session.ClassID == nil || student.ClassID == nil || *session.ClassID != *student.ClassID {
		return nil, apperrors.NewConflictError("student is not enrolled in the session's class")
	}

	att := &models.Attendance{
		StudentID: req.StudentID,
		SessionID: req.SessionID,
		Status:    status,
	}
	if status == models.AttendanceDelay {
		att.DelayMinutes = req.DelayMinutes
	}

	if err := s.attendances.Upsert(ctx, att); err != nil {
		return nil, fmt.Errorf("error recording attendance: %w", err)
	}

	return att, nil
}

// GetSessionAttendance retrieves all attendance records of one session
func (s *attendanceServiceImpl) GetSessionAttendance(ctx context.Context, sessionID int64) ([]*models.Attendance, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}
	if session == nil {
		return nil, apperrors.NewNotFoundError("session not found")
	}

	records, err := s.attendances.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance records: %w", err)
	}
	return records, nil
}

// GetStudentAttendance retrieves all attendance records of one student
func (s *attendanceServiceImpl) GetStudentAttendance(ctx context.Context, studentID int64) ([]*models.Attendance, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.NewNotFoundError("student not found")
	}

	records, err := s.attendances.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance records: %w", err)
	}
	return records, nil
}

// DeleteAttendance deletes an attendance record by ID
func (s *attendanceServiceImpl) DeleteAttendance(ctx context.Context, id int64) error {
	if err := s.attendances.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("attendance record not found")
		}
		return fmt.Errorf("error deleting attendance record: %w", err)
	}
	return nil
}
