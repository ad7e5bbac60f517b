package models

// Session defines a scheduled occupation of a room based on the 'sessions'
// table: a class taught by a teacher in a room, on a given day, within a
// start/end slot. Room, class and teacher are weak references; deleting a
// referenced row nulls the key here.
//
// Invariants guarded by the session service:
//   - no two sessions with the same room and day may have overlapping
//     [startTime, endTime) intervals
//   - no two sessions with the same teacher and day may have overlapping
//     [startTime, endTime) intervals
type Session struct {
	ID        int64   `json:"id" db:"id" example:"1"`
	Day       Day     `json:"day" db:"day" example:"Monday"`
	StartTime string  `json:"startTime" db:"start_time" example:"10:00"` // HH:MM, 24-hour
	EndTime   string  `json:"endTime" db:"end_time" example:"11:30"`     // HH:MM, 24-hour
	Lesson    *string `json:"lesson" db:"lesson" example:"Mathematics"`
	RoomID    *int64  `json:"roomId" db:"room_id" example:"2"`
	ClassID   *int64  `json:"classId" db:"class_id" example:"3"`
	TeacherID *int64  `json:"teacherId" db:"teacher_id" example:"4"`
}

// RoomRef is the room projection joined onto session views.
type RoomRef struct {
	ID     int64 `json:"id" example:"2"`
	Number int   `json:"number" example:"104"`
}

// ClassRef is the class projection joined onto session views.
type ClassRef struct {
	ID    int64  `json:"id" example:"3"`
	Title string `json:"title" example:"7-A"`
}

// TeacherRef is the teacher projection joined onto session views.
type TeacherRef struct {
	ID           int64  `json:"id" example:"4"`
	PersonalCode string `json:"personalCode" example:"T-1042"`
}

// SessionDetail is a session joined with its room, class and teacher plus the
// live count of students enrolled in the linked class.
type SessionDetail struct {
	Session
	Room         *RoomRef    `json:"room,omitempty"`
	Class        *ClassRef   `json:"class,omitempty"`
	Teacher      *TeacherRef `json:"teacher,omitempty"`
	StudentCount int         `json:"studentCount"`
}

// SessionFilter holds the independent, conjunctive filters of the session
// list query. Zero values mean "not set".
type SessionFilter struct {
	RoomID       int64
	RoomNumber   int
	ClassID      int64
	ClassNumber  string // matched against Class.title (legacy naming kept)
	TeacherID    int64
	PersonalCode string
	StudentID    int64
	NationalCode string
	Day          Day
	SlotStart    string // HH:MM, sessions with start_time >= SlotStart
	SlotEnd      string // HH:MM, sessions with end_time <= SlotEnd
}
