package services

import (
	"context"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/db"
)

// Services defined in this package:
// - AuthService: Handles login and token issuing
// - SessionService: Handles session scheduling and conflict detection
// - ClassService: Handles classes, capacity and student enrollment
// - RoomService: Handles rooms
// - TeacherService: Handles teachers
// - StudentService: Handles students
// - AttendanceService: Handles per-session attendance records

// TxRunner runs a function inside a database transaction. *db.PostgresDB
// satisfies it; tests substitute a runner that skips the database.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
	WithSerializableTransaction(ctx context.Context, fn db.TransactionFn) error
}

// Narrow read interfaces shared by the services. The repositories satisfy
// them; tests use in-memory fakes.
type roomGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Room, error)
}

type classGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Class, error)
}

type teacherGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
}

type studentGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

type activityRecorder interface {
	Record(ctx context.Context, entry *models.ActivityLog) error
}
