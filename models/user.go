package models

import "time"

// Role values stored in users.role.
const (
	RoleSubmitter = "submitter"
	RoleAdmin     = "admin"
)

type User struct {
	UserID    int       `gorm:"primaryKey;column:user_id" json:"user_id"`
	Email     string    `gorm:"column:email;unique" json:"email"`
	Password  string    `gorm:"column:password" json:"-"`
	Role      string    `gorm:"column:role;default:submitter" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
