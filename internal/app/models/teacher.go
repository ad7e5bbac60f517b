package models

// Teacher defines a teacher based on the 'teachers' table
type Teacher struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	FirstName    string `json:"firstName" db:"first_name" example:"Sara"`
	LastName     string `json:"lastName" db:"last_name" example:"Ahmadi"`
	PersonalCode string `json:"personalCode" db:"personal_code" example:"T-1042"` // Unique staff code
	Phone        string `json:"phone" db:"phone" example:"09121234567"`           // Unique
	IsActive     bool   `json:"isActive" db:"is_active"`
}
