package models

// Class defines a school class based on the 'classes' table.
// The capacity invariant (enrolled students <= capacity) is enforced by the
// enrollment service at assignment time, not by a database constraint.
type Class struct {
	ID       int64  `json:"id" db:"id" example:"1"`
	Title    string `json:"title" db:"title" example:"7-A"` // Unique class title
	Number   int    `json:"number" db:"number" example:"701"`
	Capacity int    `json:"capacity" db:"capacity" example:"30"`

	// StudentCount is a derived value populated by joined queries
	StudentCount int `json:"studentCount,omitempty" db:"-"`
}
