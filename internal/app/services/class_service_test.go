package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

func newClassServiceForTest(school *fakeSchool) *classServiceImpl {
	enrollment := fakeEnrollment{school: school}
	return &classServiceImpl{
		classes:  school,
		students: enrollment,
		activity: &fakeActivity{},
		tx:       fakeTxRunner{},
		bind:     func(pgx.Tx) (classStore, enrollmentStore) { return school, enrollment },
	}
}

// seedSchool builds a class (id 1, capacity 3) with two enrolled students,
// one unassigned student and one student in another class.
func seedSchool() *fakeSchool {
	school := newFakeSchool()
	school.classes[1] = &models.Class{ID: 1, Title: "7-A", Number: 701, Capacity: 3}
	school.classes[2] = &models.Class{ID: 2, Title: "7-B", Number: 702, Capacity: 30}

	school.addStudent(&models.Student{ID: 1, FirstName: "Ali", NationalCode: "1111111111", Grade: 7, ClassID: int64Ptr(1)})
	school.addStudent(&models.Student{ID: 2, FirstName: "Niloofar", NationalCode: "2222222222", Grade: 7, ClassID: int64Ptr(1)})
	school.addStudent(&models.Student{ID: 3, FirstName: "Hasan", NationalCode: "3333333333", Grade: 7})
	school.addStudent(&models.Student{ID: 4, FirstName: "Mina", NationalCode: "4444444444", Grade: 7, ClassID: int64Ptr(2)})
	school.addStudent(&models.Student{ID: 5, FirstName: "Parsa", NationalCode: "5555555555", Grade: 7})
	return school
}

func TestChangeCapacity(t *testing.T) {
	school := seedSchool()
	svc := newClassServiceForTest(school)

	// Below the current enrollment of 2
	if _, err := svc.ChangeCapacity(context.Background(), 1, 1); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected conflict, got %v", err)
	}

	// Exactly the current enrollment is allowed
	class, err := svc.ChangeCapacity(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("ChangeCapacity() error = %v", err)
	}
	if class.Capacity != 2 || class.StudentCount != 2 {
		t.Errorf("capacity=%d studentCount=%d, want 2/2", class.Capacity, class.StudentCount)
	}

	// Non-positive capacity
	if _, err := svc.ChangeCapacity(context.Background(), 1, 0); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected validation error, got %v", err)
	}

	// Unknown class
	if _, err := svc.ChangeCapacity(context.Background(), 99, 10); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestAddStudents(t *testing.T) {
	school := seedSchool()
	svc := newClassServiceForTest(school)

	class, err := svc.AddStudents(context.Background(), 1, &dto.AddStudentsRequest{
		StudentIDs: dto.StringList{"3"},
	})
	if err != nil {
		t.Fatalf("AddStudents() error = %v", err)
	}
	if class.StudentCount != 3 {
		t.Errorf("StudentCount = %d, want 3", class.StudentCount)
	}
	if school.students[3].ClassID == nil || *school.students[3].ClassID != 1 {
		t.Error("student 3 was not assigned to class 1")
	}
}

func TestAddStudentsByNationalCode(t *testing.T) {
	school := seedSchool()
	svc := newClassServiceForTest(school)

	// The same student given both ways counts once
	class, err := svc.AddStudents(context.Background(), 1, &dto.AddStudentsRequest{
		StudentIDs:    dto.StringList{"3"},
		NationalCodes: dto.StringList{"3333333333"},
	})
	if err != nil {
		t.Fatalf("AddStudents() error = %v", err)
	}
	if class.StudentCount != 3 {
		t.Errorf("StudentCount = %d, want 3", class.StudentCount)
	}
}

func TestAddStudentsRejections(t *testing.T) {
	tests := []struct {
		name string
		req  *dto.AddStudentsRequest
		kind error
	}{
		{"empty request", &dto.AddStudentsRequest{}, apperrors.ErrValidationFailed},
		{"non-numeric id", &dto.AddStudentsRequest{StudentIDs: dto.StringList{"abc"}}, apperrors.ErrValidationFailed},
		{"enrolled elsewhere", &dto.AddStudentsRequest{StudentIDs: dto.StringList{"4"}}, apperrors.ErrConflict},
		{"enrolled elsewhere among valid ids", &dto.AddStudentsRequest{StudentIDs: dto.StringList{"3", "4"}}, apperrors.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			school := seedSchool()
			svc := newClassServiceForTest(school)

			_, err := svc.AddStudents(context.Background(), 1, tt.req)
			if !errors.Is(err, tt.kind) {
				t.Errorf("expected %v, got %v", tt.kind, err)
			}
		})
	}
}

func TestAddStudentsDropsUnknownIdentifiers(t *testing.T) {
	school := seedSchool()
	svc := newClassServiceForTest(school)

	// Unknown id 99 and an unknown national code resolve to nobody and are
	// dropped; the known student is still enrolled.
	class, err := svc.AddStudents(context.Background(), 1, &dto.AddStudentsRequest{
		StudentIDs:    dto.StringList{"3", "99"},
		NationalCodes: dto.StringList{"9999999999"},
	})
	if err != nil {
		t.Fatalf("AddStudents() error = %v", err)
	}
	if class.StudentCount != 3 {
		t.Errorf("StudentCount = %d, want 3", class.StudentCount)
	}
	if school.students[3].ClassID == nil || *school.students[3].ClassID != 1 {
		t.Error("student 3 was not assigned to class 1")
	}

	// A batch where nothing resolves is a no-op, not an error
	class, err = svc.AddStudents(context.Background(), 2, &dto.AddStudentsRequest{
		StudentIDs: dto.StringList{"99"},
	})
	if err != nil {
		t.Fatalf("AddStudents() error = %v", err)
	}
	if class.StudentCount != 1 {
		t.Errorf("StudentCount = %d, want the unchanged enrollment of 1", class.StudentCount)
	}
}

func TestAddStudentsSkipsCurrentMembers(t *testing.T) {
	school := seedSchool()
	svc := newClassServiceForTest(school)

	// Student 1 is already in class 1: re-adding is a harmless no-op and the
	// free student in the same batch still gets the remaining seat.
	class, err := svc.AddStudents(context.Background(), 1, &dto.AddStudentsRequest{
		StudentIDs: dto.StringList{"1", "3"},
	})
	if err != nil {
		t.Fatalf("AddStudents() error = %v", err)
	}
	if class.StudentCount != 3 {
		t.Errorf("StudentCount = %d, want 3", class.StudentCount)
	}
	if school.students[1].ClassID == nil || *school.students[1].ClassID != 1 {
		t.Error("student 1 must stay enrolled in class 1")
	}

	// With the class now full, re-adding a member alone still succeeds
	if _, err := svc.AddStudents(context.Background(), 1, &dto.AddStudentsRequest{
		StudentIDs: dto.StringList{"2"},
	}); err != nil {
		t.Errorf("re-adding a current member must be a no-op, got %v", err)
	}
}

func TestAddStudentsBatchOverflow(t *testing.T) {
	school := seedSchool()
	svc := newClassServiceForTest(school)

	// Capacity 3, enrolled 2: a batch of two free students overflows and the
	// whole batch is rejected, with no partial write.
	_, err := svc.AddStudents(context.Background(), 1, &dto.AddStudentsRequest{
		StudentIDs: dto.StringList{"3", "5"},
	})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if school.students[3].ClassID != nil || school.students[5].ClassID != nil {
		t.Error("overflowing batch must not enroll anyone")
	}

	// A batch that exactly fills the class is allowed
	class, err := svc.AddStudents(context.Background(), 1, &dto.AddStudentsRequest{
		StudentIDs: dto.StringList{"3"},
	})
	if err != nil {
		t.Fatalf("AddStudents() error = %v", err)
	}
	if class.StudentCount != class.Capacity {
		t.Errorf("StudentCount = %d, want %d", class.StudentCount, class.Capacity)
	}
}

func TestRemoveStudent(t *testing.T) {
	school := seedSchool()
	svc := newClassServiceForTest(school)

	if err := svc.RemoveStudent(context.Background(), 1, 1); err != nil {
		t.Fatalf("RemoveStudent() error = %v", err)
	}
	if school.students[1].ClassID != nil {
		t.Error("student 1 still assigned after removal")
	}

	// Not enrolled in this class
	if err := svc.RemoveStudent(context.Background(), 1, 4); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected conflict, got %v", err)
	}
	if err := svc.RemoveStudent(context.Background(), 1, 3); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected conflict for unassigned student, got %v", err)
	}

	// Unknown class and student
	if err := svc.RemoveStudent(context.Background(), 99, 1); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
	if err := svc.RemoveStudent(context.Background(), 1, 99); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected not found, got %v", err)
	}

	// Removal frees a seat
	if _, err := svc.AddStudents(context.Background(), 1, &dto.AddStudentsRequest{StudentIDs: dto.StringList{"1"}}); err != nil {
		t.Errorf("expected re-enrollment to succeed, got %v", err)
	}
}

func TestCreateClass(t *testing.T) {
	school := seedSchool()
	svc := newClassServiceForTest(school)

	class, err := svc.CreateClass(context.Background(), &dto.CreateClassRequest{Title: "8-A", Number: 801, Capacity: 25})
	if err != nil {
		t.Fatalf("CreateClass() error = %v", err)
	}
	if class.ID == 0 {
		t.Error("expected an assigned class id")
	}

	// Duplicate title
	if _, err := svc.CreateClass(context.Background(), &dto.CreateClassRequest{Title: "7-A", Number: 999, Capacity: 25}); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected conflict on duplicate title, got %v", err)
	}
	// Duplicate number
	if _, err := svc.CreateClass(context.Background(), &dto.CreateClassRequest{Title: "9-Z", Number: 701, Capacity: 25}); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected conflict on duplicate number, got %v", err)
	}
}

func TestGetClassByID(t *testing.T) {
	school := seedSchool()
	svc := newClassServiceForTest(school)

	class, err := svc.GetClassByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetClassByID() error = %v", err)
	}
	if class.StudentCount != 2 {
		t.Errorf("StudentCount = %d, want 2", class.StudentCount)
	}

	if _, err := svc.GetClassByID(context.Background(), 99); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
