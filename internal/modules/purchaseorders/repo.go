package purchaseorders

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

type ListParams struct {
	Q          string // order number or notes, case-insensitive substring
	Status     string // empty or "all" = no filter
	SupplierID string // optional
}

func (r *Repo) List(ctx context.Context, in ListParams) ([]PurchaseOrder, error) {
	q := r.db.WithContext(ctx).Model(&PurchaseOrder{})

	if status := strings.TrimSpace(strings.ToLower(in.Status)); status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}
	if in.SupplierID != "" {
		q = q.Where("supplier_id = ?", in.SupplierID)
	}
	if s := strings.TrimSpace(in.Q); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(number) LIKE ? OR LOWER(notes) LIKE ?)", like, like)
	}

	var items []PurchaseOrder
	err := q.Order("date DESC").Find(&items).Error
	return items, err
}

func (r *Repo) GetWithItems(ctx context.Context, id string) (PurchaseOrder, []PurchaseOrderItem, error) {
	var po PurchaseOrder
	if err := r.db.WithContext(ctx).First(&po, "id = ?", id).Error; err != nil {
		return PurchaseOrder{}, nil, err
	}
	var items []PurchaseOrderItem
	if err := r.db.WithContext(ctx).Order("created_at ASC").
		Find(&items, "purchase_order_id = ?", id).Error; err != nil {
		return PurchaseOrder{}, nil, err
	}
	return po, items, nil
}

func (r *Repo) InsertOrder(ctx context.Context, po *PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(po).Error
}

func (r *Repo) InsertItems(ctx context.Context, items []PurchaseOrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *Repo) Update(ctx context.Context, id string, po PurchaseOrder) error {
	return r.db.WithContext(ctx).Model(&PurchaseOrder{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"date":       po.Date,
			"notes":      po.Notes,
			"updated_at": time.Now(),
		}).Error
}

func (r *Repo) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).Model(&PurchaseOrder{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
