package users

import "time"

const (
	RoleEmployee = "employee"
	RoleCustomer = "customer"
)

type User struct {
	ID           string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email" json:"email"`
	Role         string    `gorm:"type:varchar(16);not null;default:customer" json:"role"`
	AvatarURL    string    `gorm:"type:varchar(512)" json:"avatar_url"`
	Phone        string    `gorm:"type:varchar(32)" json:"phone"`
	PasswordHash string    `gorm:"type:varchar(255)" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
