package products

import "time"

type Product struct {
	ID         string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_products_name" json:"name"`
	SalesPrice float64   `gorm:"type:decimal(12,2);not null;default:0" json:"sales_price"`
	CostPrice  float64   `gorm:"type:decimal(12,2);not null;default:0" json:"cost_price"`
	ImageURL   string    `gorm:"type:varchar(512)" json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Product) TableName() string { return "products" }
