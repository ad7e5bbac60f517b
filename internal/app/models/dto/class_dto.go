package dto

import (
	"encoding/json"
	"strings"
)

// CreateClassRequest is the payload of POST /classes/create.
type CreateClassRequest struct {
	Title    string `json:"title" binding:"required"`
	Number   int    `json:"number" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
}

// UpdateClassRequest is the payload of PATCH /classes/:id/update.
type UpdateClassRequest struct {
	Title  *string `json:"title"`
	Number *int    `json:"number"`
}

// ChangeCapacityRequest is the payload of PATCH /classes/:id/change-capacity.
type ChangeCapacityRequest struct {
	NewCapacity int `json:"newCapacity"`
}

// StringList accepts either a JSON array of strings/numbers or a single
// comma-joined string ("1,2,3"). The original API took identifier lists in
// both shapes, so the decoder normalizes here.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (l *StringList) UnmarshalJSON(data []byte) error {
	// Try plain string first: "a,b,c"
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = splitList(single)
		return nil
	}

	// Fall back to an array of loosely typed items
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	out := make([]string, 0, len(items))
	for _, raw := range items {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			out = append(out, strings.TrimSpace(s))
			continue
		}
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return err
		}
		out = append(out, n.String())
	}
	*l = out
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// AddStudentsRequest is the payload of PATCH /classes/:id/students/add.
// Identifiers may be student ids, national codes, or both.
type AddStudentsRequest struct {
	StudentIDs    StringList `json:"studentIds"`
	NationalCodes StringList `json:"nationalCodes"`
}
