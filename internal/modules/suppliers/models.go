package suppliers

import "time"

type Supplier struct {
	ID          string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	ContactName string    `gorm:"type:varchar(255)" json:"contact_name"`
	Email       string    `gorm:"type:varchar(255)" json:"email"`
	Phone       string    `gorm:"type:varchar(32)" json:"phone"`
	Address     string    `gorm:"type:varchar(512)" json:"address"`
	ImageURL    string    `gorm:"type:varchar(512)" json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Supplier) TableName() string { return "suppliers" }
