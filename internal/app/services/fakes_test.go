package services

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/db"
)

// fakeTxRunner executes the callback directly, without a database. The
// services only ever touch the transaction through the bound stores, so a
// nil pgx.Tx is fine here.
type fakeTxRunner struct{}

func (fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, nil)
}

func (fakeTxRunner) WithSerializableTransaction(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, nil)
}

// fakeActivity collects recorded actions.
type fakeActivity struct {
	actions []string
}

func (f *fakeActivity) Record(_ context.Context, entry *models.ActivityLog) error {
	f.actions = append(f.actions, entry.Action)
	return nil
}

// fakeRooms is an in-memory roomGetter.
type fakeRooms map[int64]*models.Room

func (f fakeRooms) GetByID(_ context.Context, id int64) (*models.Room, error) {
	if room, ok := f[id]; ok {
		cp := *room
		return &cp, nil
	}
	return nil, nil
}

// fakeTeachers is an in-memory teacherGetter.
type fakeTeachers map[int64]*models.Teacher

func (f fakeTeachers) GetByID(_ context.Context, id int64) (*models.Teacher, error) {
	if teacher, ok := f[id]; ok {
		cp := *teacher
		return &cp, nil
	}
	return nil, nil
}

// fakeClassGetter is an in-memory classGetter.
type fakeClassGetter map[int64]*models.Class

func (f fakeClassGetter) GetByID(_ context.Context, id int64) (*models.Class, error) {
	if class, ok := f[id]; ok {
		cp := *class
		return &cp, nil
	}
	return nil, nil
}

// fakeSessionStore is an in-memory sessionStore.
type fakeSessionStore struct {
	sessions map[int64]*models.Session
	nextID   int64
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[int64]*models.Session), nextID: 1}
}

func (f *fakeSessionStore) Create(_ context.Context, session *models.Session) error {
	session.ID = f.nextID
	f.nextID++
	cp := *session
	f.sessions[session.ID] = &cp
	return nil
}

func (f *fakeSessionStore) GetByID(_ context.Context, id int64) (*models.Session, error) {
	if sess, ok := f.sessions[id]; ok {
		cp := *sess
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeSessionStore) GetDetail(ctx context.Context, id int64) (*models.SessionDetail, error) {
	sess, err := f.GetByID(ctx, id)
	if err != nil || sess == nil {
		return nil, err
	}
	return &models.SessionDetail{Session: *sess}, nil
}

func (f *fakeSessionStore) List(_ context.Context, filter models.SessionFilter) ([]*models.SessionDetail, error) {
	var out []*models.SessionDetail
	for _, sess := range f.ordered() {
		if filter.RoomID != 0 && (sess.RoomID == nil || *sess.RoomID != filter.RoomID) {
			continue
		}
		if filter.TeacherID != 0 && (sess.TeacherID == nil || *sess.TeacherID != filter.TeacherID) {
			continue
		}
		if filter.ClassID != 0 && (sess.ClassID == nil || *sess.ClassID != filter.ClassID) {
			continue
		}
		if filter.Day != "" && sess.Day != filter.Day {
			continue
		}
		if filter.SlotStart != "" && sess.StartTime < filter.SlotStart {
			continue
		}
		if filter.SlotEnd != "" && sess.EndTime > filter.SlotEnd {
			continue
		}
		cp := *sess
		out = append(out, &models.SessionDetail{Session: cp})
	}
	return out, nil
}

func (f *fakeSessionStore) ListByRoomAndDay(_ context.Context, roomID int64, day models.Day, excludeID int64) ([]*models.Session, error) {
	var out []*models.Session
	for _, sess := range f.ordered() {
		if sess.ID == excludeID || sess.Day != day {
			continue
		}
		if sess.RoomID == nil || *sess.RoomID != roomID {
			continue
		}
		cp := *sess
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeSessionStore) ListByTeacherAndDay(_ context.Context, teacherID int64, day models.Day, excludeID int64) ([]*models.Session, error) {
	var out []*models.Session
	for _, sess := range f.ordered() {
		if sess.ID == excludeID || sess.Day != day {
			continue
		}
		if sess.TeacherID == nil || *sess.TeacherID != teacherID {
			continue
		}
		cp := *sess
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeSessionStore) Update(_ context.Context, session *models.Session) error {
	if _, ok := f.sessions[session.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *session
	f.sessions[session.ID] = &cp
	return nil
}

func (f *fakeSessionStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.sessions[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionStore) ordered() []*models.Session {
	ids := make([]int64, 0, len(f.sessions))
	for id := range f.sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*models.Session, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.sessions[id])
	}
	return out
}

// fakeSchool is an in-memory classStore plus enrollmentStore sharing one
// student table, so capacity counts observe enrollment writes.
type fakeSchool struct {
	classes  map[int64]*models.Class
	students map[int64]*models.Student
}

func newFakeSchool() *fakeSchool {
	return &fakeSchool{
		classes:  make(map[int64]*models.Class),
		students: make(map[int64]*models.Student),
	}
}

func (f *fakeSchool) Create(_ context.Context, class *models.Class) error {
	class.ID = int64(len(f.classes) + 1)
	cp := *class
	f.classes[class.ID] = &cp
	return nil
}

func (f *fakeSchool) GetByID(_ context.Context, id int64) (*models.Class, error) {
	if class, ok := f.classes[id]; ok {
		cp := *class
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeSchool) GetAll(_ context.Context) ([]*models.Class, error) {
	var out []*models.Class
	for _, class := range f.classes {
		cp := *class
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeSchool) ExistsByTitleOrNumber(_ context.Context, title string, number int, excludeID int64) (bool, error) {
	for _, class := range f.classes {
		if class.ID == excludeID {
			continue
		}
		if class.Title == title || class.Number == number {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSchool) CountStudents(_ context.Context, classID int64) (int, error) {
	count := 0
	for _, student := range f.students {
		if student.ClassID != nil && *student.ClassID == classID {
			count++
		}
	}
	return count, nil
}

func (f *fakeSchool) Update(_ context.Context, class *models.Class) error {
	if _, ok := f.classes[class.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *class
	f.classes[class.ID] = &cp
	return nil
}

func (f *fakeSchool) UpdateCapacity(_ context.Context, classID int64, capacity int) error {
	class, ok := f.classes[classID]
	if !ok {
		return pgx.ErrNoRows
	}
	class.Capacity = capacity
	return nil
}

func (f *fakeSchool) Delete(_ context.Context, id int64) error {
	if _, ok := f.classes[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.classes, id)
	return nil
}

func (f *fakeSchool) addStudent(student *models.Student) {
	cp := *student
	f.students[student.ID] = &cp
}

// fakeEnrollment is the enrollmentStore view over the shared student table.
// It has to be a separate type because classStore and enrollmentStore both
// name a GetByID method.
type fakeEnrollment struct {
	school *fakeSchool
}

func (f fakeEnrollment) GetByID(_ context.Context, id int64) (*models.Student, error) {
	if student, ok := f.school.students[id]; ok {
		cp := *student
		return &cp, nil
	}
	return nil, nil
}

func (f fakeEnrollment) GetByIDs(_ context.Context, ids []int64) ([]*models.Student, error) {
	var out []*models.Student
	for _, id := range ids {
		if student, ok := f.school.students[id]; ok {
			cp := *student
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f fakeEnrollment) GetByNationalCodes(_ context.Context, codes []string) ([]*models.Student, error) {
	var out []*models.Student
	for _, code := range codes {
		for _, student := range f.school.students {
			if student.NationalCode == code {
				cp := *student
				out = append(out, &cp)
			}
		}
	}
	return out, nil
}

func (f fakeEnrollment) AssignClass(_ context.Context, studentIDs []int64, classID int64) error {
	for _, id := range studentIDs {
		if student, ok := f.school.students[id]; ok {
			cid := classID
			student.ClassID = &cid
		}
	}
	return nil
}

func (f fakeEnrollment) ClearClass(_ context.Context, studentID int64) error {
	student, ok := f.school.students[studentID]
	if !ok {
		return pgx.ErrNoRows
	}
	student.ClassID = nil
	return nil
}

func int64Ptr(i int64) *int64 { return &i }
func strPtr(s string) *string { return &s }
