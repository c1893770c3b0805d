package users

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

type ListParams struct {
	Q    string // name or email, case-insensitive substring
	Role string // empty or "all" = no filter
}

func (r *Repo) List(ctx context.Context, in ListParams) ([]User, error) {
	q := r.db.WithContext(ctx).Model(&User{})

	if role := strings.TrimSpace(strings.ToLower(in.Role)); role != "" && role != "all" {
		q = q.Where("role = ?", role)
	}
	if s := strings.TrimSpace(in.Q); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(name) LIKE ? OR LOWER(email) LIKE ?)", like, like)
	}

	var items []User
	err := q.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *Repo) GetByID(ctx context.Context, id string) (User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", strings.ToLower(email)).Error
	return u, err
}

// Upsert inserts by email or refreshes name/avatar on conflict. Role and
// password are never touched by an upsert; those go through Update.
func (r *Repo) Upsert(ctx context.Context, u User) (User, error) {
	u.Email = strings.ToLower(u.Email)
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "avatar_url", "updated_at"}),
		}).
		Create(&u).Error
	if err != nil {
		return User{}, err
	}
	return r.GetByEmail(ctx, u.Email)
}

func (r *Repo) Update(ctx context.Context, id string, u User) error {
	return r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":       u.Name,
			"role":       u.Role,
			"avatar_url": u.AvatarURL,
			"phone":      u.Phone,
			"updated_at": time.Now(),
		}).Error
}

func (r *Repo) UpdateAvatar(ctx context.Context, id, url string) error {
	res := r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"avatar_url": url,
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

// ActivePhoneNumbers feeds the SMS campaign fan-out. Empty values are
// filtered again by the campaign service; this just narrows the read.
func (r *Repo) ActivePhoneNumbers(ctx context.Context) ([]string, error) {
	var phones []string
	err := r.db.WithContext(ctx).Model(&User{}).
		Where("phone IS NOT NULL AND phone <> ''").
		Pluck("phone", &phones).Error
	return phones, err
}
