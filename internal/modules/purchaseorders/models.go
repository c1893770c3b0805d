package purchaseorders

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusReceived  = "received"
	StatusCancelled = "cancelled"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusReceived, StatusCancelled:
		return true
	}
	return false
}

// NextStatus advances the status chip one click around the cycle.
func NextStatus(s string) string {
	switch s {
	case StatusPending:
		return StatusApproved
	case StatusApproved:
		return StatusReceived
	case StatusReceived:
		return StatusCancelled
	default:
		return StatusPending
	}
}

type PurchaseOrder struct {
	ID         string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Number     string    `gorm:"type:varchar(32);not null;index:ix_purchase_orders_number" json:"number"`
	Date       time.Time `gorm:"not null" json:"date"`
	Status     string    `gorm:"type:varchar(16);not null" json:"status"`
	SupplierID string    `gorm:"type:char(36);not null;index:ix_purchase_orders_supplier" json:"supplier_id"`
	Total      float64   `gorm:"type:decimal(12,2);not null;default:0" json:"total"`
	Notes      string    `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (PurchaseOrder) TableName() string { return "purchase_orders" }

type PurchaseOrderItem struct {
	ID              string    `gorm:"primaryKey;type:char(36)" json:"id"`
	PurchaseOrderID string    `gorm:"type:char(36);not null;index:ix_po_items_po_id" json:"purchase_order_id"`
	ProductID       string    `gorm:"type:char(36);not null" json:"product_id"`
	ProductName     string    `gorm:"type:varchar(255)" json:"product_name"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	UnitPrice       float64   `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	CreatedAt       time.Time `json:"created_at"`
}

func (PurchaseOrderItem) TableName() string { return "purchase_order_items" }

// NewNumber produces an order number like PO-20260831-0423. Four random
// digits, so uniqueness is not guaranteed; the column is indexed, not unique.
func NewNumber(at time.Time) string {
	return fmt.Sprintf("PO-%s-%04d", at.Format("20060102"), rand.Intn(10000))
}
