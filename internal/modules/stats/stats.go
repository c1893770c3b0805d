package stats

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"
)

const dayFormat = "2006-01-02"

// Overview is the dashboard aggregate set for the trailing 30-day window,
// with percent change against the 30 days before that.
type Overview struct {
	TotalSales         float64   `json:"total_sales"`
	OrderCount         int       `json:"order_count"`
	DistinctCustomers  int       `json:"distinct_customers"`
	SalesChangePct     float64   `json:"sales_change_pct"`
	OrdersChangePct    float64   `json:"orders_change_pct"`
	CustomersChangePct float64   `json:"customers_change_pct"`
	GeneratedAt        time.Time `json:"generated_at"`
}

// OrderRow is the minimal order projection the aggregates need.
type OrderRow struct {
	Date          time.Time
	Total         float64
	CustomerEmail string
}

// PctChange avoids the division by zero rather than doing true percent-change
// semantics: an empty previous window reports +100% when the current value is
// positive, 0% otherwise.
func PctChange(cur, prev float64) float64 {
	if prev == 0 {
		if cur > 0 {
			return 100
		}
		return 0
	}
	return (cur - prev) / prev * 100
}

// Compute buckets rows into the current and previous 30-day windows by
// comparing calendar-day strings, deliberately not timezone-aware.
// The current window is the 30 days ending today (days -29..0); the day
// exactly 30 days back is the last day of the previous window.
func Compute(rows []OrderRow, now time.Time) Overview {
	curStart := now.AddDate(0, 0, -30).Format(dayFormat)
	prevStart := now.AddDate(0, 0, -60).Format(dayFormat)
	today := now.Format(dayFormat)

	var cur, prev struct {
		sales     float64
		orders    int
		customers map[string]struct{}
	}
	cur.customers = make(map[string]struct{})
	prev.customers = make(map[string]struct{})

	for _, r := range rows {
		day := r.Date.Format(dayFormat)
		switch {
		case day > curStart && day <= today:
			cur.sales += r.Total
			cur.orders++
			if r.CustomerEmail != "" {
				cur.customers[r.CustomerEmail] = struct{}{}
			}
		case day > prevStart && day <= curStart:
			prev.sales += r.Total
			prev.orders++
			if r.CustomerEmail != "" {
				prev.customers[r.CustomerEmail] = struct{}{}
			}
		}
	}

	return Overview{
		TotalSales:         cur.sales,
		OrderCount:         cur.orders,
		DistinctCustomers:  len(cur.customers),
		SalesChangePct:     PctChange(cur.sales, prev.sales),
		OrdersChangePct:    PctChange(float64(cur.orders), float64(prev.orders)),
		CustomersChangePct: PctChange(float64(len(cur.customers)), float64(len(prev.customers))),
		GeneratedAt:        now,
	}
}

// Service fetches the raw order rows and keeps the latest computed snapshot
// behind a mutex for the dashboard endpoint and the poller to share.
type Service struct {
	db *gorm.DB

	mu     sync.RWMutex
	latest Overview
	ready  bool
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Refresh re-runs the fetch-and-derive pipeline and swaps the snapshot.
func (s *Service) Refresh(ctx context.Context) error {
	// both windows together cover the days strictly after now-60d
	since := time.Now().AddDate(0, 0, -60)

	var rows []OrderRow
	err := s.db.WithContext(ctx).
		Table("orders").
		Select("date, total, customer_email").
		Where("date >= ?", since).
		Scan(&rows).Error
	if err != nil {
		return err
	}

	ov := Compute(rows, time.Now())

	s.mu.Lock()
	s.latest = ov
	s.ready = true
	s.mu.Unlock()
	return nil
}

func (s *Service) Latest() (Overview, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.ready
}
