package orders

import (
	"strings"
	"time"
	"unicode"
)

const (
	StatusPaid      = "paid"
	StatusRefunded  = "refunded"
	StatusCancelled = "cancelled"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPaid, StatusRefunded, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID              string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Date            time.Time `gorm:"not null" json:"date"`
	Status          string    `gorm:"type:varchar(16);not null" json:"status"`
	CustomerName    string    `gorm:"type:varchar(255)" json:"customer_name"`
	CustomerEmail   string    `gorm:"type:varchar(255)" json:"customer_email"`
	CustomerInitial string    `gorm:"type:char(1)" json:"customer_initial"`
	Discount        float64   `gorm:"type:decimal(5,2);not null;default:0" json:"discount"`
	Total           float64   `gorm:"type:decimal(12,2);not null;default:0" json:"total"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID          string    `gorm:"primaryKey;type:char(36)" json:"id"`
	OrderID     string    `gorm:"type:char(36);not null;index:ix_order_items_order_id" json:"order_id"`
	ProductID   string    `gorm:"type:char(36);not null" json:"product_id"`
	ProductName string    `gorm:"type:varchar(255)" json:"product_name"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	UnitPrice   float64   `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Discount    float64   `gorm:"type:decimal(5,2);not null;default:0" json:"discount"`
	CreatedAt   time.Time `json:"created_at"`
}

func (OrderItem) TableName() string { return "order_items" }

// LineTotal is quantity × unit price net of the item discount. Stored
// unrounded; rounding to two decimals happens at the view layer only.
func (it OrderItem) LineTotal() float64 {
	return float64(it.Quantity) * it.UnitPrice * (1 - it.Discount/100)
}

// Initial derives the single-letter avatar initial from a customer name.
// Backend rows may arrive without one; the boundary fills it in.
func Initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	r := []rune(name)[0]
	return string(unicode.ToUpper(r))
}
