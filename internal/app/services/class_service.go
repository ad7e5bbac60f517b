package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/db"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/auth"
	"github.com/yigit/schoolhub/internal/pkg/dberrors"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

// ClassService defines the interface for class and enrollment operations
type ClassService interface {
	CreateClass(ctx context.Context, req *dto.CreateClassRequest) (*models.Class, error)
	GetClassByID(ctx context.Context, id int64) (*models.Class, error)
	GetAllClasses(ctx context.Context) ([]*models.Class, error)
	UpdateClass(ctx context.Context, id int64, req *dto.UpdateClassRequest) (*models.Class, error)
	ChangeCapacity(ctx context.Context, id int64, newCapacity int) (*models.Class, error)
	AddStudents(ctx context.Context, id int64, req *dto.AddStudentsRequest) (*models.Class, error)
	RemoveStudent(ctx context.Context, classID, studentID int64) error
	DeleteClass(ctx context.Context, id int64) error
}

// classStore is the subset of ClassRepository the service needs.
type classStore interface {
	Create(ctx context.Context, class *models.Class) error
	GetByID(ctx context.Context, id int64) (*models.Class, error)
	GetAll(ctx context.Context) ([]*models.Class, error)
	ExistsByTitleOrNumber(ctx context.Context, title string, number int, excludeID int64) (bool, error)
	CountStudents(ctx context.Context, classID int64) (int, error)
	Update(ctx context.Context, class *models.Class) error
	UpdateCapacity(ctx context.Context, classID int64, capacity int) error
	Delete(ctx context.Context, id int64) error
}

// enrollmentStore is the subset of StudentRepository enrollment needs.
type enrollmentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Student, error)
	GetByNationalCodes(ctx context.Context, codes []string) ([]*models.Student, error)
	AssignClass(ctx context.Context, studentIDs []int64, classID int64) error
	ClearClass(ctx context.Context, studentID int64) error
}

// classServiceImpl implements the ClassService interface
type classServiceImpl struct {
	classes  classStore
	students enrollmentStore
	activity activityRecorder
	tx       TxRunner
	bind     func(tx pgx.Tx) (classStore, enrollmentStore)
}

// NewClassService creates a new class service instance
func NewClassService(repos *repositories.Repositories, database *db.PostgresDB) ClassService {
	return &classServiceImpl{
		classes:  repos.ClassRepository,
		students: repos.StudentRepository,
		activity: repos.ActivityLogRepository,
		tx:       database,
		bind: func(tx pgx.Tx) (classStore, enrollmentStore) {
			return repos.ClassRepository.WithTx(tx), repos.StudentRepository.WithTx(tx)
		},
	}
}

// CreateClass creates a new class
func (s *classServiceImpl) CreateClass(ctx context.Context, req *dto.CreateClassRequest) (*models.Class, error) {
	exists, err := s.classes.ExistsByTitleOrNumber(ctx, req.Title, req.Number, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking class uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("a class with this title or number already exists")
	}

	class := &models.Class{
		Title:    req.Title,
		Number:   req.Number,
		Capacity: req.Capacity,
	}
	if err := s.classes.Create(ctx, class); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("a class with this title or number already exists")
		}
		return nil, fmt.Errorf("error creating class: %w", err)
	}

	s.record(ctx, "class.create", map[string]any{"classId": class.ID, "title": class.Title})

	return class, nil
}

// GetClassByID retrieves a class with its current student count
func (s *classServiceImpl) GetClassByID(ctx context.Context, id int64) (*models.Class, error) {
	class, err := s.classes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}
	if class == nil {
		return nil, apperrors.NewNotFoundError("class not found")
	}

	count, err := s.classes.CountStudents(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error counting enrolled students: %w", err)
	}
	class.StudentCount = count

	return class, nil
}

// GetAllClasses retrieves all classes with their student counts
func (s *classServiceImpl) GetAllClasses(ctx context.Context) ([]*models.Class, error) {
	classes, err := s.classes.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving classes: %w", err)
	}
	return classes, nil
}

// UpdateClass updates title and/or number of an existing class
func (s *classServiceImpl) UpdateClass(ctx context.Context, id int64, req *dto.UpdateClassRequest) (*models.Class, error) {
	if req.Title == nil && req.Number == nil {
		return nil, apperrors.NewValidationError("at least one of title or number must be provided")
	}

	class, err := s.classes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}
	if class == nil {
		return nil, apperrors.NewNotFoundError("class not found")
	}

	if req.Title != nil {
		class.Title = *req.Title
	}
	if req.Number != nil {
		class.Number = *req.Number
	}

	exists, err := s.classes.ExistsByTitleOrNumber(ctx, class.Title, class.Number, id)
	if err != nil {
		return nil, fmt.Errorf("error checking class uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("a class with this title or number already exists")
	}

	if err := s.classes.Update(ctx, class); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("class not found")
		}
		return nil, fmt.Errorf("error updating class: %w", err)
	}

	s.record(ctx, "class.update", map[string]any{"classId": id})

	return class, nil
}

// ChangeCapacity sets a new capacity for the class. Shrinking below the
// current enrollment is rejected; the check and the write share one
// serializable transaction so a concurrent enrollment cannot slip past it.
func (s *classServiceImpl) ChangeCapacity(ctx context.Context, id int64, newCapacity int) (*models.Class, error) {
	if newCapacity <= 0 {
		return nil, apperrors.NewValidationError("validation failed",
			apperrors.FieldError{Message: "newCapacity must be a positive number", Path: "newCapacity"})
	}

	var class *models.Class
	err := s.tx.WithSerializableTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		classes, _ := s.bind(tx)

		var err error
		class, err = classes.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("error retrieving class: %w", err)
		}
		if class == nil {
			return apperrors.NewNotFoundError("class not found")
		}

		enrolled, err := classes.CountStudents(ctx, id)
		if err != nil {
			return fmt.Errorf("error counting enrolled students: %w", err)
		}
		if newCapacity < enrolled {
			return apperrors.NewConflictError(
				fmt.Sprintf("capacity %d is below the current enrollment of %d students", newCapacity, enrolled),
				apperrors.FieldError{Message: "newCapacity cannot be below the enrolled student count", Path: "newCapacity"})
		}

		class.Capacity = newCapacity
		class.StudentCount = enrolled
		return classes.UpdateCapacity(ctx, id, newCapacity)
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	s.record(ctx, "class.changeCapacity", map[string]any{"classId": id, "newCapacity": newCapacity})

	return class, nil
}

// AddStudents enrolls a batch of students identified by id and/or national
// code. Identifiers that resolve to no student are silently dropped and
// students already enrolled in this class are skipped; the rest of the batch
// is accepted or rejected as one unit: a student enrolled in a different
// class or a batch that would push the class past its capacity rejects the
// request without a partial write.
func (s *classServiceImpl) AddStudents(ctx context.Context, id int64, req *dto.AddStudentsRequest) (*models.Class, error) {
	ids, fields := parseStudentIDs(req.StudentIDs)
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError("validation failed", fields...)
	}
	if len(ids) == 0 && len(req.NationalCodes) == 0 {
		return nil, apperrors.NewValidationError("validation failed",
			apperrors.FieldError{Message: "studentIds or nationalCodes must be provided", Path: "studentIds"})
	}

	var class *models.Class
	err := s.tx.WithSerializableTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		classes, students := s.bind(tx)

		var err error
		class, err = classes.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("error retrieving class: %w", err)
		}
		if class == nil {
			return apperrors.NewNotFoundError("class not found")
		}

		batch, err := resolveStudents(ctx, students, ids, req.NationalCodes)
		if err != nil {
			return err
		}

		var conflicts []apperrors.FieldError
		assign := make([]int64, 0, len(batch))
		for _, student := range batch {
			if student.ClassID != nil {
				if *student.ClassID == id {
					// Re-adding a current member is a no-op
					continue
				}
				conflicts = append(conflicts, apperrors.FieldError{
					Message: fmt.Sprintf("student %d already belongs to another class", student.ID),
					Path:    "studentIds",
				})
				continue
			}
			assign = append(assign, student.ID)
		}
		if len(conflicts) > 0 {
			return apperrors.NewConflictError("some students cannot be enrolled", conflicts...)
		}

		enrolled, err := classes.CountStudents(ctx, id)
		if err != nil {
			return fmt.Errorf("error counting enrolled students: %w", err)
		}
		if len(assign) > 0 && enrolled >= class.Capacity {
			return apperrors.NewConflictError(
				fmt.Sprintf("class is already at its capacity of %d", class.Capacity))
		}
		if enrolled+len(assign) > class.Capacity {
			return apperrors.NewConflictError(
				fmt.Sprintf("adding %d students would exceed the class capacity of %d (%d enrolled)",
					len(assign), class.Capacity, enrolled))
		}

		if len(assign) > 0 {
			if err := students.AssignClass(ctx, assign, id); err != nil {
				return err
			}
		}

		class.StudentCount = enrolled + len(assign)
		return nil
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	s.record(ctx, "class.addStudents", map[string]any{"classId": id, "count": class.StudentCount})

	return class, nil
}

// parseStudentIDs converts the loosely typed identifier list into int64 ids,
// tagging every non-numeric entry.
func parseStudentIDs(list dto.StringList) ([]int64, []apperrors.FieldError) {
	var ids []int64
	var fields []apperrors.FieldError
	for _, raw := range list {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			fields = append(fields, apperrors.FieldError{
				Message: fmt.Sprintf("%q is not a valid student id", raw),
				Path:    "studentIds",
			})
			continue
		}
		ids = append(ids, id)
	}
	return ids, fields
}

// resolveStudents loads the batch by id and national code, deduplicated by
// student id. Identifiers that match nobody are silently dropped.
func resolveStudents(ctx context.Context, students enrollmentStore, ids []int64, codes []string) ([]*models.Student, error) {
	byID := make(map[int64]*models.Student)

	found, err := students.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error resolving students: %w", err)
	}
	for _, student := range found {
		byID[student.ID] = student
	}

	foundByCode, err := students.GetByNationalCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("error resolving students: %w", err)
	}
	for _, student := range foundByCode {
		byID[student.ID] = student
	}

	batch := make([]*models.Student, 0, len(byID))
	for _, student := range byID {
		batch = append(batch, student)
	}
	return batch, nil
}

// RemoveStudent unenrolls one student from the class.
func (s *classServiceImpl) RemoveStudent(ctx context.Context, classID, studentID int64) error {
	class, err := s.classes.GetByID(ctx, classID)
	if err != nil {
		return fmt.Errorf("error retrieving class: %w", err)
	}
	if class == nil {
		return apperrors.NewNotFoundError("class not found")
	}

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return apperrors.NewNotFoundError("student not found")
	}
	if student.ClassID == nil || *student.ClassID != classID {
		return apperrors.NewConflictError("student is not enrolled in this class")
	}

	if err := s.students.ClearClass(ctx, studentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("student not found")
		}
		return fmt.Errorf("error removing student from class: %w", err)
	}

	s.record(ctx, "class.removeStudent", map[string]any{"classId": classID, "studentId": studentID})

	return nil
}

// DeleteClass deletes a class by ID. Enrolled students stay, unassigned.
func (s *classServiceImpl) DeleteClass(ctx context.Context, id int64) error {
	if err := s.classes.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("class not found")
		}
		return fmt.Errorf("error deleting class: %w", err)
	}

	s.record(ctx, "class.delete", map[string]any{"classId": id})

	return nil
}

func (s *classServiceImpl) record(ctx context.Context, action string, details map[string]any) {
	entry := &models.ActivityLog{
		UserID:  auth.UserIDFromContext(ctx),
		Action:  action,
		Details: details,
	}
	if err := s.activity.Record(ctx, entry); err != nil {
		logger.Warn().Err(err).Str("action", action).Msg("Failed to record activity log entry")
	}
}
