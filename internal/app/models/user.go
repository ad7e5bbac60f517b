package models

// User defines an authenticated account based on the 'users' table. The
// session and enrollment services only ever consume the role and the
// superuser flag; credential handling stays in the auth service.
type User struct {
	ID           int64    `json:"id" db:"id" example:"1"`
	Username     string   `json:"username" db:"username" example:"admin"` // Unique
	PasswordHash string   `json:"-" db:"password_hash"`
	Role         RoleType `json:"role" db:"role" example:"ADMIN"`
	IsSuperuser  bool     `json:"isSuperuser" db:"is_superuser"`
}
