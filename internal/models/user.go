package models

// User roles
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	Base
	Firstname string    `gorm:"not null" json:"firstname"`
	Lastname  string    `gorm:"not null" json:"lastname"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"not null;default:'USER'" json:"role"`
	Accounts  []Account `gorm:"foreignKey:UserID" json:"-"`
}

// CreateUserInput is the registration payload.
type CreateUserInput struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// UpdateUserInput overwrites all mutable user fields; the password is
// re-hashed unconditionally.
type UpdateUserInput struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}
