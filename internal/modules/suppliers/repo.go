package suppliers

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

type ListParams struct {
	Q string // matches name or contact name, case-insensitive
}

func (r *Repo) List(ctx context.Context, in ListParams) ([]Supplier, error) {
	q := r.db.WithContext(ctx).Model(&Supplier{})
	if s := strings.TrimSpace(in.Q); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(name) LIKE ? OR LOWER(contact_name) LIKE ?)", like, like)
	}

	var items []Supplier
	err := q.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id string) (Supplier, error) {
	var s Supplier
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return s, err
}

func (r *Repo) Create(ctx context.Context, s Supplier) (Supplier, error) {
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return Supplier{}, err
	}
	return s, nil
}

func (r *Repo) Update(ctx context.Context, id string, s Supplier) error {
	return r.db.WithContext(ctx).Model(&Supplier{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":         s.Name,
			"contact_name": s.ContactName,
			"email":        s.Email,
			"phone":        s.Phone,
			"address":      s.Address,
			"image_url":    s.ImageURL,
			"updated_at":   time.Now(),
		}).Error
}
