package purchaseorders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/shared/apperr"
)

type Store interface {
	InsertOrder(ctx context.Context, po *PurchaseOrder) error
	InsertItems(ctx context.Context, items []PurchaseOrderItem) error
	UpdateStatus(ctx context.Context, id, status string) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service { return &Service{store: store} }

type ItemInput struct {
	ProductID   string  `json:"product_id" binding:"required"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity" binding:"required,gte=1"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
}

type CreateInput struct {
	Date       time.Time   `json:"date"`
	SupplierID string      `json:"supplier_id" binding:"required"`
	Notes      string      `json:"notes"`
	Items      []ItemInput `json:"items" binding:"required,dive"`
}

// Create writes the purchase order, then its line items, sequentially and
// untransacted. A failed item insert leaves the order behind and surfaces
// as partial_write — the documented orphan, not silently repaired.
func (s *Service) Create(ctx context.Context, in CreateInput) (PurchaseOrder, []PurchaseOrderItem, error) {
	if len(in.Items) == 0 {
		return PurchaseOrder{}, nil, apperr.InvalidErr("Purchase order needs at least one item.", nil)
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	now := time.Now()
	po := PurchaseOrder{
		ID:         uuid.NewString(),
		Number:     NewNumber(date),
		Date:       date,
		Status:     StatusPending,
		SupplierID: in.SupplierID,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	items := make([]PurchaseOrderItem, len(in.Items))
	for i, it := range in.Items {
		items[i] = PurchaseOrderItem{
			ID:              uuid.NewString(),
			PurchaseOrderID: po.ID,
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			CreatedAt:       now,
		}
		po.Total += float64(it.Quantity) * it.UnitPrice
	}

	if err := s.store.InsertOrder(ctx, &po); err != nil {
		return PurchaseOrder{}, nil, apperr.Wrap(err)
	}
	if err := s.store.InsertItems(ctx, items); err != nil {
		return po, nil, apperr.PartialWriteErr("Failed to save items: purchase order was created without them.", err)
	}

	return po, items, nil
}

// CycleStatus moves the status chip one step forward and returns the new
// value. Concurrent clicks race last-write-wins, same as every other update.
func (s *Service) CycleStatus(ctx context.Context, id, current string) (string, error) {
	if !ValidStatus(current) {
		return "", apperr.InvalidErr("Unknown purchase order status.", nil)
	}
	next := NextStatus(current)
	if err := s.store.UpdateStatus(ctx, id, next); err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", apperr.NotFoundErr("Purchase order not found.")
		}
		return "", apperr.Wrap(err)
	}
	return next, nil
}
