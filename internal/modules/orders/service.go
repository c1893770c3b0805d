package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/validation"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/shared/apperr"
)

// Discount apply modes for order-level discounts when items carry their own.
// The SPA asked the operator through a confirm dialog; here the choice is an
// explicit field on the request.
const (
	DiscountOverwrite = "overwrite" // replace every item discount
	DiscountRaise     = "raise"     // only raise items below the order value
)

// Store is the slice of Repo the create path needs. Both writes go through
// it so tests can fail the second step deliberately.
type Store interface {
	InsertOrder(ctx context.Context, o *Order) error
	InsertItems(ctx context.Context, items []OrderItem) error
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
	Discount    float64 `json:"discount"` // clamped into [0,100], never rejected
}

type CreateInput struct {
	Date          time.Time   `json:"date"`
	Status        string      `json:"status" binding:"omitempty,oneof=paid refunded cancelled"`
	CustomerName  string      `json:"customer_name" binding:"required"`
	CustomerEmail string      `json:"customer_email" binding:"omitempty,email"`
	Discount      float64     `json:"discount"`
	DiscountMode  string      `json:"discount_mode" binding:"omitempty,oneof=overwrite raise"`
	Items         []ItemInput `json:"items" binding:"required,dive"`
}

// Create inserts the order, then its items, as two sequential writes with no
// transaction between them. If the item insert fails the order row stays
// behind and the caller gets a partial_write error naming the failed step.
func (s *Service) Create(ctx context.Context, in CreateInput) (Order, []OrderItem, error) {
	if len(in.Items) == 0 {
		return Order{}, nil, &apperr.AppError{
			Kind:      apperr.Invalid,
			PublicMsg: "Order needs at least one item.",
			Err:       ErrNoItems,
		}
	}

	orderDiscount := validation.ClampDiscount(in.Discount)
	items := make([]OrderItem, len(in.Items))
	customized := false
	for i, it := range in.Items {
		d := validation.ClampDiscount(it.Discount)
		if d != 0 && d != orderDiscount {
			customized = true
		}
		items[i] = OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Discount:    d,
		}
	}

	if orderDiscount > 0 {
		if customized && in.DiscountMode == "" {
			return Order{}, nil, &apperr.AppError{
				Kind:      apperr.Invalid,
				PublicMsg: "Items already carry their own discounts. Set discount_mode to overwrite or raise.",
				Err:       ErrDiscountUndecided,
			}
		}
		applyOrderDiscount(items, orderDiscount, in.DiscountMode)
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	status := in.Status
	if status == "" {
		status = StatusPaid
	}

	now := time.Now()
	o := Order{
		ID:              uuid.NewString(),
		Date:            date,
		Status:          status,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerInitial: Initial(in.CustomerName),
		Discount:        orderDiscount,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].OrderID = o.ID
		items[i].CreatedAt = now
		o.Total += items[i].LineTotal()
	}

	if err := s.store.InsertOrder(ctx, &o); err != nil {
		return Order{}, nil, apperr.Wrap(err)
	}
	if err := s.store.InsertItems(ctx, items); err != nil {
		// order row already persisted, no rollback
		return o, nil, apperr.PartialWriteErr("Failed to save items: order was created without them.", err)
	}

	return o, items, nil
}

// applyOrderDiscount propagates the order-level discount onto items.
// overwrite replaces everything; raise only lifts items below the value.
// Empty mode means no item had been customized, which is an overwrite.
func applyOrderDiscount(items []OrderItem, discount float64, mode string) {
	for i := range items {
		switch mode {
		case DiscountRaise:
			if items[i].Discount < discount {
				items[i].Discount = discount
			}
		default: // DiscountOverwrite or uncustomized items
			items[i].Discount = discount
		}
	}
}
