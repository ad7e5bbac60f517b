package dto

// CreateSessionRequest is the payload of POST /sessions/create.
// roomId, day, startTime and endTime are required; the rest is optional.
// Requiredness is checked in the service so each missing field produces its
// own field-tagged error instead of a single binding failure.
type CreateSessionRequest struct {
	RoomID    *int64  `json:"roomId"`
	Day       string  `json:"day"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Lesson    *string `json:"lesson"`
	ClassID   *int64  `json:"classId"`
	TeacherID *int64  `json:"teacherId"`
}

// UpdateSessionRequest is the payload of PATCH /sessions/:id/update. Only
// day, startTime and endTime are mutable through this path; room and teacher
// changes go through their dedicated endpoints.
type UpdateSessionRequest struct {
	Day       *string `json:"day"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

// ChangeRoomRequest is the payload of PATCH /sessions/:id/change-room.
type ChangeRoomRequest struct {
	RoomID int64 `json:"roomId" binding:"required"`
}

// ChangeTeacherRequest is the payload of PATCH /sessions/:id/change-teacher.
type ChangeTeacherRequest struct {
	TeacherID int64 `json:"teacherId" binding:"required"`
}

// ListSessionsQuery captures the conjunctive filters of GET /sessions/list.
type ListSessionsQuery struct {
	RoomID       int64  `form:"roomId"`
	RoomNumber   int    `form:"roomNumber"`
	ClassID      int64  `form:"classId"`
	ClassNumber  string `form:"classNumber"`
	TeacherID    int64  `form:"teacherId"`
	PersonalCode string `form:"personalCode"`
	StudentID    int64  `form:"studentId"`
	NationalCode string `form:"nationalCode"`
	Day          string `form:"day"`
	SlotTime     string `form:"slotTime"` // "HH:MM-HH:MM"
}
