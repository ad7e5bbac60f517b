package dto

// RecordAttendanceRequest is the payload of POST /attendance/create.
// delayMinutes is required iff status is "delay" and forbidden otherwise;
// the service enforces that dependency.
type RecordAttendanceRequest struct {
	StudentID    int64  `json:"studentId" binding:"required"`
	SessionID    int64  `json:"sessionId" binding:"required"`
	Status       string `json:"status" binding:"required"`
	DelayMinutes *int   `json:"delayMinutes"`
}
