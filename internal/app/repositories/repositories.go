package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx operations the repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so a repository can be rebound to a
// transaction with WithTx without changing any query code.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	RoomRepository        *RoomRepository
	ClassRepository       *ClassRepository
	TeacherRepository     *TeacherRepository
	StudentRepository     *StudentRepository
	SessionRepository     *SessionRepository
	AttendanceRepository  *AttendanceRepository
	ActivityLogRepository *ActivityLogRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		RoomRepository:        NewRoomRepository(db),
		ClassRepository:       NewClassRepository(db),
		TeacherRepository:     NewTeacherRepository(db),
		StudentRepository:     NewStudentRepository(db),
		SessionRepository:     NewSessionRepository(db),
		AttendanceRepository:  NewAttendanceRepository(db),
		ActivityLogRepository: NewActivityLogRepository(db),
	}
}
