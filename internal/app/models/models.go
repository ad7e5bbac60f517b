package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleManager RoleType = "MANAGER"
)

// Day is a school day. The teaching week runs Saturday through Wednesday.
type Day string

// School week days
const (
	DaySaturday  Day = "Saturday"
	DaySunday    Day = "Sunday"
	DayMonday    Day = "Monday"
	DayTuesday   Day = "Tuesday"
	DayWednesday Day = "Wednesday"
)

// Days lists the valid school days in week order.
var Days = []Day{DaySaturday, DaySunday, DayMonday, DayTuesday, DayWednesday}

// IsValidDay reports whether d is one of the five school days.
func IsValidDay(d Day) bool {
	for _, day := range Days {
		if d == day {
			return true
		}
	}
	return false
}

// AttendanceStatus is the per-session presence state of a student.
type AttendanceStatus string

// Attendance statuses
const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceDelay   AttendanceStatus = "delay"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// IsValidAttendanceStatus reports whether s is a known status.
func IsValidAttendanceStatus(s AttendanceStatus) bool {
	return s == AttendancePresent || s == AttendanceDelay || s == AttendanceAbsent
}
