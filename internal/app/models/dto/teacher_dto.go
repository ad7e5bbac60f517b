package dto

// CreateTeacherRequest is the payload of POST /teachers/create.
type CreateTeacherRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	PersonalCode string `json:"personalCode" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
}

// UpdateTeacherRequest is the payload of PATCH /teachers/:id/update.
type UpdateTeacherRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	IsActive  *bool   `json:"isActive"`
}
