package orders

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

type ListParams struct {
	Q      string // customer name or email, case-insensitive substring
	Status string // empty or "all" = no filter
}

// List loads the whole collection the back-office way: no pagination, the
// screen derives its filter facets from what came back.
func (r *Repo) List(ctx context.Context, in ListParams) ([]Order, error) {
	q := r.db.WithContext(ctx).Model(&Order{})

	if status := normalizeFilter(in.Status); status != "" {
		q = q.Where("status = ?", status)
	}
	if s := strings.TrimSpace(in.Q); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(customer_name) LIKE ? OR LOWER(customer_email) LIKE ?)", like, like)
	}

	var items []Order
	err := q.Order("date DESC").Find(&items).Error
	return items, err
}

func (r *Repo) GetWithItems(ctx context.Context, id string) (Order, []OrderItem, error) {
	var o Order
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return Order{}, nil, err
	}
	var items []OrderItem
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items, "order_id = ?", id).Error; err != nil {
		return Order{}, nil, err
	}
	return o, items, nil
}

func (r *Repo) InsertOrder(ctx context.Context, o *Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *Repo) InsertItems(ctx context.Context, items []OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *Repo) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func normalizeFilter(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "all" {
		return ""
	}
	return s
}
