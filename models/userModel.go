package models

import "gorm.io/gorm"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model
	Fullname string `json:"fullname" binding:"required"`
	Username string `json:"username" binding:"required" gorm:"size:100;uniqueIndex"`
	Email    string `json:"email" binding:"required,email" gorm:"size:191;uniqueIndex"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" gorm:"size:20;default:user"`
}

type LoginData struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// Identity is the verified (user, role) pair extracted from a bearer token.
// It is the only thing the access policy ever looks at.
type Identity struct {
	UserID   uint
	Username string
	Role     string
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
