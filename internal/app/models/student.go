package models

// Student defines a student based on the 'students' table
type Student struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	FirstName    string `json:"firstName" db:"first_name" example:"Omid"`
	LastName     string `json:"lastName" db:"last_name" example:"Karimi"`
	NationalCode string `json:"nationalCode" db:"national_code" example:"0012345678"` // Unique
	Grade        int    `json:"grade" db:"grade" example:"7"`
	ClassID      *int64 `json:"classId" db:"class_id" example:"3"` // Weak reference; nulled when the class is deleted

	// Relations (populated when needed)
	Class *Class `json:"class,omitempty"`
}
