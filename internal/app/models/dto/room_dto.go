package dto

// CreateRoomRequest is the payload of POST /rooms/create.
type CreateRoomRequest struct {
	Title  string `json:"title" binding:"required"`
	Number int    `json:"number" binding:"required"`
}

// UpdateRoomRequest is the payload of PATCH /rooms/:id/update.
type UpdateRoomRequest struct {
	Title  *string `json:"title"`
	Number *int    `json:"number"`
}
