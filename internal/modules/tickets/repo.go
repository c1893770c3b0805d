package tickets

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
	Q      string // subject or requester name, case-insensitive substring
	Status string // "", specific status, or "all"
}

// List orders by most recently updated. The default view hides closed
// tickets; pass status=all to see everything.
func (r *Repo) List(ctx context.Context, in ListParams) ([]Ticket, error) {
	q := r.db.WithContext(ctx).Model(&Ticket{})

	status := strings.TrimSpace(strings.ToLower(in.Status))
	switch status {
	case "", StatusOpen:
		q = q.Where("status = ?", StatusOpen)
	case "all":
		// no filter
	default:
		q = q.Where("status = ?", status)
	}

	if s := strings.TrimSpace(in.Q); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(subject) LIKE ? OR LOWER(requester_name) LIKE ?)", like, like)
	}

	var items []Ticket
	err := q.Order("updated_at DESC").Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id string) (Ticket, error) {
	var t Ticket
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return t, err
}

func (r *Repo) Activities(ctx context.Context, ticketID string) ([]Activity, error) {
	var out []Activity
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&out, "ticket_id = ?", ticketID).Error
	return out, err
}

func (r *Repo) Create(ctx context.Context, t Ticket) (Ticket, error) {
	t.ID = uuid.NewString()
	if t.Status == "" {
		t.Status = StatusOpen
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return Ticket{}, err
	}
	return t, nil
}

func (r *Repo) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).Model(&Ticket{}).
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

// InsertActivity appends to the ticket's timeline and bumps the ticket's
// updated_at so the list reorders.
func (r *Repo) InsertActivity(ctx context.Context, a Activity) (Activity, error) {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return Activity{}, err
	}
	_ = r.db.WithContext(ctx).Model(&Ticket{}).
		Where("id = ?", a.TicketID).
		Update("updated_at", a.CreatedAt).Error
	return a, nil
}
