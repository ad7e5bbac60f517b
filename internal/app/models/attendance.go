package models

// Attendance records a student's presence in one session.
// DelayMinutes is set iff Status is "delay".
type Attendance struct {
	ID           int64            `json:"id" db:"id" example:"1"`
	StudentID    int64            `json:"studentId" db:"student_id" example:"7"`
	SessionID    int64            `json:"sessionId" db:"session_id" example:"12"`
	Status       AttendanceStatus `json:"status" db:"status" example:"delay"`
	DelayMinutes *int             `json:"delayMinutes,omitempty" db:"delay_minutes" example:"15"`
}
