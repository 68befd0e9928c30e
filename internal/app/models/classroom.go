package models

// Classroom groups students into a roster that attendance is marked against.
type Classroom struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Students []*Student `json:"students,omitempty"`
}
