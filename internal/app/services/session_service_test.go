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

func newSessionServiceForTest(store *fakeSessionStore, rooms fakeRooms, classes fakeClassGetter, teachers fakeTeachers) *sessionServiceImpl {
	return &sessionServiceImpl{
		sessions: store,
		rooms:    rooms,
		classes:  classes,
		teachers: teachers,
		activity: &fakeActivity{},
		tx:       fakeTxRunner{},
		bind:     func(pgx.Tx) sessionStore { return store },
	}
}

func defaultRooms() fakeRooms {
	return fakeRooms{
		1: {ID: 1, Title: "Physics Lab", Number: 101},
		2: {ID: 2, Title: "Chemistry Lab", Number: 102},
	}
}

func defaultTeachers() fakeTeachers {
	return fakeTeachers{
		1: {ID: 1, FirstName: "Sara", LastName: "Ahmadi", PersonalCode: "T-100", IsActive: true},
		2: {ID: 2, FirstName: "Omid", LastName: "Karimi", PersonalCode: "T-200", IsActive: true},
		3: {ID: 3, FirstName: "Reza", LastName: "Moradi", PersonalCode: "T-300", IsActive: false},
	}
}

func createReq(roomID int64, day, start, end string) *dto.CreateSessionRequest {
	return &dto.CreateSessionRequest{
		RoomID:    int64Ptr(roomID),
		Day:       day,
		StartTime: start,
		EndTime:   end,
	}
}

func TestCreateSession(t *testing.T) {
	store := newFakeSessionStore()
	svc := newSessionServiceForTest(store, defaultRooms(), fakeClassGetter{}, defaultTeachers())

	req := createReq(1, "Monday", "10:00", "11:30")
	req.TeacherID = int64Ptr(1)
	req.Lesson = strPtr("Mathematics")

	detail, err := svc.CreateSession(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if detail.ID == 0 {
		t.Error("expected an assigned session id")
	}
	if detail.Day != models.DayMonday || detail.StartTime != "10:00" || detail.EndTime != "11:30" {
		t.Errorf("unexpected slot: %s %s-%s", detail.Day, detail.StartTime, detail.EndTime)
	}
}

func TestCreateSessionValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *dto.CreateSessionRequest
		path string
	}{
		{"missing room", &dto.CreateSessionRequest{Day: "Monday", StartTime: "10:00", EndTime: "11:00"}, "roomId"},
		{"missing day", createReq(1, "", "10:00", "11:00"), "day"},
		{"invalid day", createReq(1, "Thursday", "10:00", "11:00"), "day"},
		{"missing start", createReq(1, "Monday", "", "11:00"), "startTime"},
		{"bad start format", createReq(1, "Monday", "25:00", "11:00"), "startTime"},
		{"bad end format", createReq(1, "Monday", "10:00", "10:5"), "endTime"},
		{"start equals end", createReq(1, "Monday", "10:00", "10:00"), "startTime"},
		{"start after end", createReq(1, "Monday", "12:00", "10:00"), "startTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeSessionStore()
			svc := newSessionServiceForTest(store, defaultRooms(), fakeClassGetter{}, defaultTeachers())

			_, err := svc.CreateSession(context.Background(), tt.req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("expected validation error, got %v", err)
			}

			var appErr *apperrors.Error
			if !errors.As(err, &appErr) {
				t.Fatalf("expected *apperrors.Error, got %T", err)
			}
			found := false
			for _, field := range appErr.Fields {
				if field.Path == tt.path {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a field error at %q, got %v", tt.path, appErr.Fields)
			}
		})
	}
}

func TestCreateSessionUnknownReferences(t *testing.T) {
	store := newFakeSessionStore()
	svc := newSessionServiceForTest(store, defaultRooms(), fakeClassGetter{}, defaultTeachers())

	if _, err := svc.CreateSession(context.Background(), createReq(99, "Monday", "10:00", "11:00")); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("unknown room: expected not found, got %v", err)
	}

	req := createReq(1, "Monday", "10:00", "11:00")
	req.ClassID = int64Ptr(99)
	if _, err := svc.CreateSession(context.Background(), req); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("unknown class: expected not found, got %v", err)
	}

	req = createReq(1, "Monday", "10:00", "11:00")
	req.TeacherID = int64Ptr(99)
	if _, err := svc.CreateSession(context.Background(), req); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("unknown teacher: expected not found, got %v", err)
	}
}

func TestCreateSessionRoomConflicts(t *testing.T) {
	tests := []struct {
		name     string
		roomID   int64
		day      string
		start    string
		end      string
		conflict bool
	}{
		{"partial overlap at end", 1, "Monday", "10:30", "11:30", true},
		{"partial overlap at start", 1, "Monday", "08:30", "09:30", true},
		{"fully contained", 1, "Monday", "09:30", "10:30", true},
		{"fully containing", 1, "Monday", "08:00", "12:00", true},
		{"identical slot", 1, "Monday", "09:00", "11:00", true},
		{"touching before", 1, "Monday", "08:00", "09:00", false},
		{"touching after", 1, "Monday", "11:00", "12:00", false},
		{"other day", 1, "Tuesday", "09:00", "11:00", false},
		{"other room", 2, "Monday", "09:00", "11:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeSessionStore()
			svc := newSessionServiceForTest(store, defaultRooms(), fakeClassGetter{}, defaultTeachers())

			// Existing booking: room 1, Monday 09:00-11:00
			if _, err := svc.CreateSession(context.Background(), createReq(1, "Monday", "09:00", "11:00")); err != nil {
				t.Fatalf("seed CreateSession() error = %v", err)
			}

			_, err := svc.CreateSession(context.Background(), createReq(tt.roomID, tt.day, tt.start, tt.end))
			if tt.conflict && !errors.Is(err, apperrors.ErrConflict) {
				t.Errorf("expected conflict, got %v", err)
			}
			if !tt.conflict && err != nil {
				t.Errorf("expected success, got %v", err)
			}
		})
	}
}

func TestCreateSessionConflictBeatsUnknownReferences(t *testing.T) {
	store := newFakeSessionStore()
	svc := newSessionServiceForTest(store, defaultRooms(), fakeClassGetter{}, defaultTeachers())

	if _, err := svc.CreateSession(context.Background(), createReq(1, "Monday", "09:00", "11:00")); err != nil {
		t.Fatalf("seed CreateSession() error = %v", err)
	}

	// The room-overlap gate runs before the class and teacher reference
	// checks: a request that both collides and dangles reports the conflict.
	req := createReq(1, "Monday", "10:00", "11:00")
	req.ClassID = int64Ptr(99)
	req.TeacherID = int64Ptr(99)
	if _, err := svc.CreateSession(context.Background(), req); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected room conflict to win, got %v", err)
	}
}

func TestCreateSessionTeacherConflict(t *testing.T) {
	store := newFakeSessionStore()
	svc := newSessionServiceForTest(store, defaultRooms(), fakeClassGetter{}, defaultTeachers())

	seed := createReq(1, "Monday", "09:00", "11:00")
	seed.TeacherID = int64Ptr(1)
	if _, err := svc.CreateSession(context.Background(), seed); err != nil {
		t.Fatalf("seed CreateSession() error = %v", err)
	}

	// Same teacher, different room, overlapping slot
	busy := createReq(2, "Monday", "10:00", "12:00")
	busy.TeacherID = int64Ptr(1)
	if _, err := svc.CreateSession(context.Background(), busy); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected teacher conflict, got %v", err)
	}

	// Different teacher, same slot, different room
	free := createReq(2, "Monday", "10:00", "12:00")
	free.TeacherID = int64Ptr(2)
	if _, err := svc.CreateSession(context.Background(), free); err != nil {
		t.Errorf("expected success for a different teacher, got %v", err)
	}
}

func TestUpdateSessionRevalidates(t *testing.T) {
	store := newFakeSessionStore()
	svc := newSessionServiceForTest(store, defaultRooms(), fakeClassGetter{}, defaultTeachers())

	first, err := svc.CreateSession(context.Background(), createReq(1, "Monday", "09:00", "10:00"))
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	second, err := svc.CreateSession(context.Background(), createReq(1, "Monday", "11:00", "12:00"))
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	// Moving the second session onto the first must fail
	_, err = svc.UpdateSession(context.Background(), second.ID,
		&dto.UpdateSessionRequest{StartTime: strPtr("09:30"), EndTime: strPtr("10:30")})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected conflict, got %v", err)
	}

	// A session never conflicts with itself
	updated, err := svc.UpdateSession(context.Background(), first.ID,
		&dto.UpdateSessionRequest{EndTime: strPtr("09:45")})
	if err != nil {
		t.Fatalf("UpdateSession() error = %v", err)
	}
	if updated.EndTime != "09:45" {
		t.Errorf("EndTime = %s, want 09:45", updated.EndTime)
	}

	// Empty patch is rejected
	if _, err := svc.UpdateSession(context.Background(), first.ID, &dto.UpdateSessionRequest{}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected validation error for empty patch, got %v", err)
	}

	// Unknown session
	if _, err := svc.UpdateSession(context.Background(), 999,
		&dto.UpdateSessionRequest{Day: strPtr("Tuesday")}); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestChangeRoom(t *testing.T) {
	store := newFakeSessionStore()
	svc := newSessionServiceForTest(store, defaultRooms(), fakeClassGetter{}, defaultTeachers())

	moved, err := svc.CreateSession(context.Background(), createReq(1, "Monday", "09:00", "10:00"))
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if _, err := svc.CreateSession(context.Background(), createReq(2, "Monday", "09:30", "10:30")); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	// Target room is occupied in the overlapping slot
	if _, err := svc.ChangeRoom(context.Background(), moved.ID, 2); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected conflict, got %v", err)
	}

	// Unknown target room
	if _, err := svc.ChangeRoom(context.Background(), moved.ID, 99); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected not found, got %v", err)
	}

	// Re-selecting the current room is a no-op move and must pass
	detail, err := svc.ChangeRoom(context.Background(), moved.ID, 1)
	if err != nil {
		t.Fatalf("ChangeRoom() error = %v", err)
	}
	if detail.RoomID == nil || *detail.RoomID != 1 {
		t.Errorf("RoomID = %v, want 1", detail.RoomID)
	}
}

func TestChangeTeacher(t *testing.T) {
	store := newFakeSessionStore()
	svc := newSessionServiceForTest(store, defaultRooms(), fakeClassGetter{}, defaultTeachers())

	seed := createReq(1, "Monday", "09:00", "10:00")
	seed.TeacherID = int64Ptr(1)
	if _, err := svc.CreateSession(context.Background(), seed); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	target, err := svc.CreateSession(context.Background(), createReq(2, "Monday", "09:30", "10:30"))
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	// Teacher 1 is busy in the overlapping slot
	if _, err := svc.ChangeTeacher(context.Background(), target.ID, 1); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected conflict, got %v", err)
	}

	// Teacher 3 exists but is inactive
	if _, err := svc.ChangeTeacher(context.Background(), target.ID, 3); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected conflict for inactive teacher, got %v", err)
	}

	// Teacher 2 is free
	detail, err := svc.ChangeTeacher(context.Background(), target.ID, 2)
	if err != nil {
		t.Fatalf("ChangeTeacher() error = %v", err)
	}
	if detail.TeacherID == nil || *detail.TeacherID != 2 {
		t.Errorf("TeacherID = %v, want 2", detail.TeacherID)
	}
}

func TestDeleteSession(t *testing.T) {
	store := newFakeSessionStore()
	svc := newSessionServiceForTest(store, defaultRooms(), fakeClassGetter{}, defaultTeachers())

	detail, err := svc.CreateSession(context.Background(), createReq(1, "Monday", "09:00", "10:00"))
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	if err := svc.DeleteSession(context.Background(), detail.ID); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	if _, err := svc.GetSession(context.Background(), detail.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected not found after delete, got %v", err)
	}
	if err := svc.DeleteSession(context.Background(), detail.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected not found on double delete, got %v", err)
	}

	// The freed slot can be booked again
	if _, err := svc.CreateSession(context.Background(), createReq(1, "Monday", "09:00", "10:00")); err != nil {
		t.Errorf("expected freed slot to be bookable, got %v", err)
	}
}

func TestListSessions(t *testing.T) {
	store := newFakeSessionStore()
	svc := newSessionServiceForTest(store, defaultRooms(), fakeClassGetter{}, defaultTeachers())

	// Empty store reports not found, matching the original API contract
	if _, err := svc.ListSessions(context.Background(), &dto.ListSessionsQuery{}); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found on empty result, got %v", err)
	}

	if _, err := svc.CreateSession(context.Background(), createReq(1, "Monday", "09:00", "10:00")); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if _, err := svc.CreateSession(context.Background(), createReq(2, "Monday", "09:00", "10:00")); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if _, err := svc.CreateSession(context.Background(), createReq(1, "Tuesday", "13:00", "14:00")); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	all, err := svc.ListSessions(context.Background(), &dto.ListSessionsQuery{})
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, want 3", len(all))
	}

	// Filters combine conjunctively
	monRoom1, err := svc.ListSessions(context.Background(), &dto.ListSessionsQuery{Day: "Monday", RoomID: 1})
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(monRoom1) != 1 {
		t.Errorf("len(monRoom1) = %d, want 1", len(monRoom1))
	}

	// Slot window keeps only sessions inside it
	afternoon, err := svc.ListSessions(context.Background(), &dto.ListSessionsQuery{SlotTime: "12:00-15:00"})
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(afternoon) != 1 || afternoon[0].Day != models.DayTuesday {
		t.Errorf("unexpected slot window result: %+v", afternoon)
	}

	// Invalid filter values
	if _, err := svc.ListSessions(context.Background(), &dto.ListSessionsQuery{Day: "Friday"}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected validation error for bad day, got %v", err)
	}
	if _, err := svc.ListSessions(context.Background(), &dto.ListSessionsQuery{SlotTime: "12:00"}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected validation error for bad slotTime, got %v", err)
	}

	// A filter matching nothing reports not found
	if _, err := svc.ListSessions(context.Background(), &dto.ListSessionsQuery{Day: "Wednesday"}); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected not found for unmatched filter, got %v", err)
	}
}
