package dto

// CreateStudentRequest is the payload of POST /students/create.
type CreateStudentRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	NationalCode string `json:"nationalCode" binding:"required"`
	Grade        int    `json:"grade" binding:"required,gt=0"`
}

// UpdateStudentRequest is the payload of PATCH /students/:id/update.
type UpdateStudentRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Grade     *int    `json:"grade"`
}
