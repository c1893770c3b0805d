package stats_test

import (
	"testing"
	"time"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/stats"
)

func TestPctChange(t *testing.T) {
	cases := []struct {
		cur, prev, want float64
	}{
		{0, 0, 0},
		{5, 0, 100},
		{0, 5, -100},
		{150, 100, 50},
		{50, 100, -50},
	}
	for _, c := range cases {
		if got := stats.PctChange(c.cur, c.prev); got != c.want {
			t.Errorf("PctChange(%v, %v) = %v, want %v", c.cur, c.prev, got, c.want)
		}
	}
}

func TestCompute_WindowBucketing(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	rows := []stats.OrderRow{
		// current window: days -29..0
		{Date: now, Total: 100, CustomerEmail: "a@x.dk"},
		{Date: now.AddDate(0, 0, -29), Total: 50, CustomerEmail: "b@x.dk"},
		// previous window: days -59..-30
		{Date: now.AddDate(0, 0, -30), Total: 25, CustomerEmail: "a@x.dk"},
		{Date: now.AddDate(0, 0, -31), Total: 200, CustomerEmail: "c@x.dk"},
		// outside both windows
		{Date: now.AddDate(0, 0, -60), Total: 999, CustomerEmail: "d@x.dk"},
	}

	ov := stats.Compute(rows, now)

	if ov.TotalSales != 150 {
		t.Errorf("total sales = %v, want 150", ov.TotalSales)
	}
	if ov.OrderCount != 2 {
		t.Errorf("order count = %d, want 2", ov.OrderCount)
	}
	if ov.DistinctCustomers != 2 {
		t.Errorf("distinct customers = %d, want 2", ov.DistinctCustomers)
	}
	if want := (150.0 - 225.0) / 225.0 * 100; ov.SalesChangePct != want {
		t.Errorf("sales change = %v, want %v", ov.SalesChangePct, want)
	}
	if ov.OrdersChangePct != 0 {
		t.Errorf("orders change = %v, want 0", ov.OrdersChangePct)
	}
	// two distinct customers in each window
	if ov.CustomersChangePct != 0 {
		t.Errorf("customers change = %v, want 0", ov.CustomersChangePct)
	}
}

func TestCompute_WindowBoundaries(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	// the day exactly 30 days back closes the previous window, and the day
	// exactly 60 days back falls outside both
	rows := []stats.OrderRow{
		{Date: now.AddDate(0, 0, -30), Total: 10},
		{Date: now.AddDate(0, 0, -60), Total: 20},
	}

	ov := stats.Compute(rows, now)

	if ov.TotalSales != 0 || ov.OrderCount != 0 {
		t.Errorf("current window = %v sales / %d orders, want empty", ov.TotalSales, ov.OrderCount)
	}
	// previous window holds only the -30 row, so sales change is -100
	if ov.SalesChangePct != -100 {
		t.Errorf("sales change = %v, want -100", ov.SalesChangePct)
	}
}

func TestCompute_EmptyPreviousWindow(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	rows := []stats.OrderRow{
		{Date: now, Total: 80, CustomerEmail: "a@x.dk"},
	}

	ov := stats.Compute(rows, now)

	if ov.SalesChangePct != 100 {
		t.Errorf("sales change with empty previous window = %v, want 100", ov.SalesChangePct)
	}
}

func TestCompute_IgnoresEmptyEmails(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	rows := []stats.OrderRow{
		{Date: now, Total: 10},
		{Date: now, Total: 10, CustomerEmail: "a@x.dk"},
	}

	ov := stats.Compute(rows, now)

	if ov.DistinctCustomers != 1 {
		t.Errorf("distinct customers = %d, want 1 (blank emails skipped)", ov.DistinctCustomers)
	}
	if ov.OrderCount != 2 {
		t.Errorf("order count = %d, want 2", ov.OrderCount)
	}
}
