package view_test

import (
	"testing"
	"time"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/orders"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/pkg/view"
)

func TestNewOrderDetail(t *testing.T) {
	o := orders.Order{
		ID:           "o1",
		Date:         time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
		Status:       orders.StatusPaid,
		CustomerName: "alice",
		Total:        3*19.99*0.9 + 5.50, // stored unrounded
	}
	items := []orders.OrderItem{
		{ProductID: "p1", Quantity: 3, UnitPrice: 19.99, Discount: 10},
		{ProductID: "p2", Quantity: 1, UnitPrice: 5.50},
	}

	d := view.NewOrderDetail(o, items, "DKK")

	if d.Date != "2026-08-31" {
		t.Errorf("date = %q", d.Date)
	}
	// initial filled in at the view layer when the row lacks one
	if d.CustomerInitial != "A" {
		t.Errorf("initial = %q, want A", d.CustomerInitial)
	}
	if d.Total != 59.47 {
		t.Errorf("total = %v, want 59.47 (rounded for display)", d.Total)
	}
	if d.TotalDisplay != "kr 59.47" {
		t.Errorf("total display = %q, want %q", d.TotalDisplay, "kr 59.47")
	}
	if len(d.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(d.Items))
	}
	if d.Items[0].LineTotal != 53.97 {
		t.Errorf("line total = %v, want 53.97", d.Items[0].LineTotal)
	}
	if d.Items[0].LineTotalDisplay != "kr 53.97" {
		t.Errorf("line total display = %q, want %q", d.Items[0].LineTotalDisplay, "kr 53.97")
	}
}

func TestOrderList_CurrencyFormatting(t *testing.T) {
	rows := []orders.Order{{ID: "o1", Date: time.Now(), Status: orders.StatusPaid, Total: 100}}

	got := view.OrderList(rows, "EUR")

	if len(got) != 1 || got[0].TotalDisplay != "€100.00" {
		t.Errorf("list = %+v, want total display €100.00", got)
	}
}
