package models

// Room defines a physical room based on the 'rooms' table
type Room struct {
	ID     int64  `json:"id" db:"id" example:"1"`
	Title  string `json:"title" db:"title" example:"Physics Lab"` // Free-text label
	Number int    `json:"number" db:"number" example:"104"`       // Globally unique room number
}
