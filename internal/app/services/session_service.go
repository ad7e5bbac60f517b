package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/db"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/auth"
	"github.com/yigit/schoolhub/internal/pkg/dberrors"
	"github.com/yigit/schoolhub/internal/pkg/logger"
	"github.com/yigit/schoolhub/internal/pkg/timeslot"
)

// SessionService defines the interface for session scheduling operations
type SessionService interface {
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*models.SessionDetail, error)
	GetSession(ctx context.Context, id int64) (*models.SessionDetail, error)
	ListSessions(ctx context.Context, q *dto.ListSessionsQuery) ([]*models.SessionDetail, error)
	UpdateSession(ctx context.Context, id int64, req *dto.UpdateSessionRequest) (*models.SessionDetail, error)
	ChangeRoom(ctx context.Context, id, roomID int64) (*models.SessionDetail, error)
	ChangeTeacher(ctx context.Context, id, teacherID int64) (*models.SessionDetail, error)
	DeleteSession(ctx context.Context, id int64) error
}

// sessionStore is the subset of SessionRepository the scheduler needs.
type sessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id int64) (*models.Session, error)
	GetDetail(ctx context.Context, id int64) (*models.SessionDetail, error)
	List(ctx context.Context, filter models.SessionFilter) ([]*models.SessionDetail, error)
	ListByRoomAndDay(ctx context.Context, roomID int64, day models.Day, excludeID int64) ([]*models.Session, error)
	ListByTeacherAndDay(ctx context.Context, teacherID int64, day models.Day, excludeID int64) ([]*models.Session, error)
	Update(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id int64) error
}

// sessionServiceImpl implements the SessionService interface
type sessionServiceImpl struct {
	sessions sessionStore
	rooms    roomGetter
	classes  classGetter
	teachers teacherGetter
	activity activityRecorder
	tx       TxRunner
	bind     func(tx pgx.Tx) sessionStore
}

// NewSessionService creates a new session service instance
func NewSessionService(repos *repositories.Repositories, database *db.PostgresDB) SessionService {
	return &sessionServiceImpl{
		sessions: repos.SessionRepository,
		rooms:    repos.RoomRepository,
		classes:  repos.ClassRepository,
		teachers: repos.TeacherRepository,
		activity: repos.ActivityLogRepository,
		tx:       database,
		bind:     func(tx pgx.Tx) sessionStore { return repos.SessionRepository.WithTx(tx) },
	}
}

// validateSlot checks day and HH:MM endpoints, collecting one field error per
// offending input. The interval is only meaningful when no errors came back.
func validateSlot(day, start, end string) (models.Day, timeslot.Interval, []apperrors.FieldError) {
	var fields []apperrors.FieldError

	if day == "" {
		fields = append(fields, apperrors.FieldError{Message: "day is required", Path: "day"})
	} else if !models.IsValidDay(models.Day(day)) {
		fields = append(fields, apperrors.FieldError{Message: "day must be a school day (Saturday through Wednesday)", Path: "day"})
	}

	if start == "" {
		fields = append(fields, apperrors.FieldError{Message: "startTime is required", Path: "startTime"})
	} else if !timeslot.IsClock(start) {
		fields = append(fields, apperrors.FieldError{Message: "startTime must be HH:MM", Path: "startTime"})
	}

	if end == "" {
		fields = append(fields, apperrors.FieldError{Message: "endTime is required", Path: "endTime"})
	} else if !timeslot.IsClock(end) {
		fields = append(fields, apperrors.FieldError{Message: "endTime must be HH:MM", Path: "endTime"})
	}

	if len(fields) > 0 {
		return "", timeslot.Interval{}, fields
	}

	slot, err := timeslot.NewInterval(start, end)
	if err != nil {
		return "", timeslot.Interval{}, []apperrors.FieldError{
			{Message: "startTime must be before endTime", Path: "startTime"},
		}
	}

	return models.Day(day), slot, nil
}

func sessionInterval(sess *models.Session) (timeslot.Interval, error) {
	slot, err := timeslot.NewInterval(sess.StartTime, sess.EndTime)
	if err != nil {
		return timeslot.Interval{}, fmt.Errorf("session %d has a corrupt time slot: %w", sess.ID, err)
	}
	return slot, nil
}

// firstOverlap returns the first session in existing whose slot overlaps the
// candidate slot, or nil if none does.
func firstOverlap(existing []*models.Session, slot timeslot.Interval) (*models.Session, error) {
	for _, sess := range existing {
		other, err := sessionInterval(sess)
		if err != nil {
			return nil, err
		}
		if slot.Overlaps(other) {
			return sess, nil
		}
	}
	return nil, nil
}

// checkRoomFree fails with a conflict when any other session occupies the
// room on the same day in an overlapping slot.
func checkRoomFree(ctx context.Context, store sessionStore, roomID int64, day models.Day, slot timeslot.Interval, excludeID int64) error {
	existing, err := store.ListByRoomAndDay(ctx, roomID, day, excludeID)
	if err != nil {
		return fmt.Errorf("error loading room schedule: %w", err)
	}

	hit, err := firstOverlap(existing, slot)
	if err != nil {
		return err
	}
	if hit != nil {
		return apperrors.NewConflictError(
			fmt.Sprintf("room is occupied on %s between %s and %s", day, hit.StartTime, hit.EndTime),
			apperrors.FieldError{Message: "session overlaps an existing session in this room", Path: "startTime"},
		)
	}
	return nil
}

// checkTeacherFree fails with a conflict when the teacher already holds an
// overlapping session on the same day, in any room.
func checkTeacherFree(ctx context.Context, store sessionStore, teacherID int64, day models.Day, slot timeslot.Interval, excludeID int64) error {
	existing, err := store.ListByTeacherAndDay(ctx, teacherID, day, excludeID)
	if err != nil {
		return fmt.Errorf("error loading teacher schedule: %w", err)
	}

	hit, err := firstOverlap(existing, slot)
	if err != nil {
		return err
	}
	if hit != nil {
		return apperrors.NewConflictError(
			fmt.Sprintf("teacher is busy on %s between %s and %s", day, hit.StartTime, hit.EndTime),
			apperrors.FieldError{Message: "teacher already has an overlapping session", Path: "teacherId"},
		)
	}
	return nil
}

// mapTxError turns serialization failures of the scheduling transaction into
// client-visible conflicts; everything else passes through unchanged.
func mapTxError(err error) error {
	if err == nil {
		return nil
	}
	if dberrors.IsSerializationFailure(err) {
		return apperrors.NewConflictError("a concurrent change conflicted with this request, please retry")
	}
	return err
}

// CreateSession validates the slot, checks room and teacher availability and
// inserts the session. The availability check and the insert run in one
// serializable transaction so two concurrent requests cannot both claim the
// same slot.
func (s *sessionServiceImpl) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*models.SessionDetail, error) {
	var fields []apperrors.FieldError
	if req.RoomID == nil {
		fields = append(fields, apperrors.FieldError{Message: "roomId is required", Path: "roomId"})
	}

	day, slot, slotFields := validateSlot(req.Day, req.StartTime, req.EndTime)
	fields = append(fields, slotFields...)
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError("validation failed", fields...)
	}

	room, err := s.rooms.GetByID(ctx, *req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}
	if room == nil {
		return nil, apperrors.NewNotFoundError("room not found")
	}

	session := &models.Session{
		Day:       day,
		StartTime: slot.Start.String(),
		EndTime:   slot.End.String(),
		Lesson:    req.Lesson,
		RoomID:    req.RoomID,
		ClassID:   req.ClassID,
		TeacherID: req.TeacherID,
	}

	err = s.tx.WithSerializableTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		store := s.bind(tx)

		// The room-dimension overlap gate comes before the reference checks,
		// so a conflicting slot wins over a dangling classId or teacherId.
		if err := checkRoomFree(ctx, store, *req.RoomID, day, slot, 0); err != nil {
			return err
		}

		if req.ClassID != nil {
			class, err := s.classes.GetByID(ctx, *req.ClassID)
			if err != nil {
				return fmt.Errorf("error retrieving class: %w", err)
			}
			if class == nil {
				return apperrors.NewNotFoundError("class not found")
			}
		}

		if req.TeacherID != nil {
			teacher, err := s.teachers.GetByID(ctx, *req.TeacherID)
			if err != nil {
				return fmt.Errorf("error retrieving teacher: %w", err)
			}
			if teacher == nil {
				return apperrors.NewNotFoundError("teacher not found")
			}
			if err := checkTeacherFree(ctx, store, *req.TeacherID, day, slot, 0); err != nil {
				return err
			}
		}

		return store.Create(ctx, session)
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	s.record(ctx, "session.create", map[string]any{
		"sessionId": session.ID,
		"roomId":    *req.RoomID,
		"day":       string(day),
		"slot":      slot.String(),
	})

	return s.detail(ctx, session.ID)
}

// GetSession retrieves a session joined with its room, class and teacher
func (s *sessionServiceImpl) GetSession(ctx context.Context, id int64) (*models.SessionDetail, error) {
	return s.detail(ctx, id)
}

func (s *sessionServiceImpl) detail(ctx context.Context, id int64) (*models.SessionDetail, error) {
	detail, err := s.sessions.GetDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}
	if detail == nil {
		return nil, apperrors.NewNotFoundError("session not found")
	}
	return detail, nil
}

// ListSessions retrieves all sessions matching every filter in the query.
// Filters combine conjunctively. An empty result is reported as not found,
// which the original API contract requires.
func (s *sessionServiceImpl) ListSessions(ctx context.Context, q *dto.ListSessionsQuery) ([]*models.SessionDetail, error) {
	filter := models.SessionFilter{
		RoomID:       q.RoomID,
		RoomNumber:   q.RoomNumber,
		ClassID:      q.ClassID,
		ClassNumber:  q.ClassNumber,
		TeacherID:    q.TeacherID,
		PersonalCode: q.PersonalCode,
		StudentID:    q.StudentID,
		NationalCode: q.NationalCode,
	}

	if q.Day != "" {
		if !models.IsValidDay(models.Day(q.Day)) {
			return nil, apperrors.NewValidationError("validation failed",
				apperrors.FieldError{Message: "day must be a school day (Saturday through Wednesday)", Path: "day"})
		}
		filter.Day = models.Day(q.Day)
	}

	if q.SlotTime != "" {
		slot, err := timeslot.ParseSlotRange(q.SlotTime)
		if err != nil {
			return nil, apperrors.NewValidationError("validation failed",
				apperrors.FieldError{Message: "slotTime must be HH:MM-HH:MM with start before end", Path: "slotTime"})
		}
		filter.SlotStart = slot.Start.String()
		filter.SlotEnd = slot.End.String()
	}

	sessions, err := s.sessions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing sessions: %w", err)
	}
	if len(sessions) == 0 {
		return nil, apperrors.NewNotFoundError("no sessions found")
	}

	return sessions, nil
}

// UpdateSession reschedules a session to a new day and/or slot. The merged
// slot is re-validated against both the room and the teacher schedule, the
// session itself excluded.
func (s *sessionServiceImpl) UpdateSession(ctx context.Context, id int64, req *dto.UpdateSessionRequest) (*models.SessionDetail, error) {
	if req.Day == nil && req.StartTime == nil && req.EndTime == nil {
		return nil, apperrors.NewValidationError("at least one of day, startTime or endTime must be provided")
	}

	err := s.tx.WithSerializableTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		store := s.bind(tx)

		session, err := store.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("error retrieving session: %w", err)
		}
		if session == nil {
			return apperrors.NewNotFoundError("session not found")
		}

		if req.Day != nil {
			session.Day = models.Day(*req.Day)
		}
		if req.StartTime != nil {
			session.StartTime = *req.StartTime
		}
		if req.EndTime != nil {
			session.EndTime = *req.EndTime
		}

		day, slot, fields := validateSlot(string(session.Day), session.StartTime, session.EndTime)
		if len(fields) > 0 {
			return apperrors.NewValidationError("validation failed", fields...)
		}
		session.Day = day
		session.StartTime = slot.Start.String()
		session.EndTime = slot.End.String()

		if session.RoomID != nil {
			if err := checkRoomFree(ctx, store, *session.RoomID, day, slot, session.ID); err != nil {
				return err
			}
		}
		if session.TeacherID != nil {
			if err := checkTeacherFree(ctx, store, *session.TeacherID, day, slot, session.ID); err != nil {
				return err
			}
		}

		return store.Update(ctx, session)
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	s.record(ctx, "session.update", map[string]any{"sessionId": id})

	return s.detail(ctx, id)
}

// ChangeRoom moves a session to another room after checking the target
// room's schedule for the session's day and slot.
func (s *sessionServiceImpl) ChangeRoom(ctx context.Context, id, roomID int64) (*models.SessionDetail, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}
	if room == nil {
		return nil, apperrors.NewNotFoundError("room not found")
	}

	err = s.tx.WithSerializableTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		store := s.bind(tx)

		session, err := store.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("error retrieving session: %w", err)
		}
		if session == nil {
			return apperrors.NewNotFoundError("session not found")
		}

		slot, err := sessionInterval(session)
		if err != nil {
			return err
		}

		if err := checkRoomFree(ctx, store, roomID, session.Day, slot, session.ID); err != nil {
			return err
		}

		session.RoomID = &roomID
		return store.Update(ctx, session)
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	s.record(ctx, "session.changeRoom", map[string]any{"sessionId": id, "roomId": roomID})

	return s.detail(ctx, id)
}

// ChangeTeacher reassigns a session to another teacher after checking the
// teacher's schedule for the session's day and slot.
func (s *sessionServiceImpl) ChangeTeacher(ctx context.Context, id, teacherID int64) (*models.SessionDetail, error) {
	teacher, err := s.teachers.GetByID(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	if teacher == nil {
		return nil, apperrors.NewNotFoundError("teacher not found")
	}
	if !teacher.IsActive {
		return nil, apperrors.NewConflictError("teacher is not active",
			apperrors.FieldError{Message: "an inactive teacher cannot take sessions", Path: "teacherId"})
	}

	err = s.tx.WithSerializableTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		store := s.bind(tx)

		session, err := store.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("error retrieving session: %w", err)
		}
		if session == nil {
			return apperrors.NewNotFoundError("session not found")
		}

		slot, err := sessionInterval(session)
		if err != nil {
			return err
		}

		if err := checkTeacherFree(ctx, store, teacherID, session.Day, slot, session.ID); err != nil {
			return err
		}

		session.TeacherID = &teacherID
		return store.Update(ctx, session)
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	s.record(ctx, "session.changeTeacher", map[string]any{"sessionId": id, "teacherId": teacherID})

	return s.detail(ctx, id)
}

// DeleteSession deletes a session by ID
func (s *sessionServiceImpl) DeleteSession(ctx context.Context, id int64) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("session not found")
		}
		return fmt.Errorf("error deleting session: %w", err)
	}

	s.record(ctx, "session.delete", map[string]any{"sessionId": id})

	return nil
}

// record writes an activity log entry. Logging is best effort; a failure
// never fails the operation that triggered it.
func (s *sessionServiceImpl) record(ctx context.Context, action string, details map[string]any) {
	entry := &models.ActivityLog{
		UserID:  auth.UserIDFromContext(ctx),
		Action:  action,
		Details: details,
	}
	if err := s.activity.Record(ctx, entry); err != nil {
		logger.Warn().Err(err).Str("action", action).Msg("Failed to record activity log entry")
	}
}
