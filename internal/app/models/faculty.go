package models

// Faculty is the profile attached to a FACULTY account.
type Faculty struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	StaffCode string `json:"staffCode"`
	Dept      string `json:"dept"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`

	User *User `json:"user,omitempty"`
}
