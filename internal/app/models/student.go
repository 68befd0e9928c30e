package models

// Student is the profile attached to a STUDENT account.
type Student struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	RegdNumber string `json:"regdNumber"`
	Dept       string `json:"dept"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`

	// User is populated by joins where the caller needs the account.
	User *User `json:"user,omitempty"`
}
