package orders_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/orders"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/shared/apperr"
)

type stubStore struct {
	order      *orders.Order
	items      []orders.OrderItem
	orderErr   error
	itemsErr   error
	orderCalls int
	itemsCalls int
}

func (s *stubStore) InsertOrder(ctx context.Context, o *orders.Order) error {
	s.orderCalls++
	if s.orderErr != nil {
		return s.orderErr
	}
	s.order = o
	return nil
}

func (s *stubStore) InsertItems(ctx context.Context, items []orders.OrderItem) error {
	s.itemsCalls++
	if s.itemsErr != nil {
		return s.itemsErr
	}
	s.items = items
	return nil
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCreate_TotalAndLineTotals(t *testing.T) {
	store := &stubStore{}
	svc := orders.NewService(store)

	o, items, err := svc.Create(context.Background(), orders.CreateInput{
		CustomerName: "Alice Jensen",
		Items: []orders.ItemInput{
			{ProductID: "p1", Quantity: 3, UnitPrice: 19.99, Discount: 10},
			{ProductID: "p2", Quantity: 1, UnitPrice: 5.50},
		},
	})
	if err != nil {
		t.Fatalf("Create returned unexpected error: %v", err)
	}

	// 3 × 19.99 × 0.9 + 1 × 5.50 = 53.973 + 5.5, stored unrounded
	want := 3*19.99*0.9 + 5.50
	if !almostEqual(o.Total, want) {
		t.Errorf("total = %v, want %v", o.Total, want)
	}
	if got := items[0].LineTotal(); !almostEqual(got, 3*19.99*0.9) {
		t.Errorf("line total = %v, want %v", got, 3*19.99*0.9)
	}
	if o.CustomerInitial != "A" {
		t.Errorf("customer initial = %q, want %q", o.CustomerInitial, "A")
	}
	if o.Status != orders.StatusPaid {
		t.Errorf("default status = %q, want %q", o.Status, orders.StatusPaid)
	}
}

func TestCreate_ClampsItemDiscounts(t *testing.T) {
	store := &stubStore{}
	svc := orders.NewService(store)

	_, items, err := svc.Create(context.Background(), orders.CreateInput{
		CustomerName: "Bob",
		Items: []orders.ItemInput{
			{ProductID: "p1", Quantity: 1, UnitPrice: 100, Discount: 150},
			{ProductID: "p2", Quantity: 1, UnitPrice: 100, Discount: -5},
		},
	})
	if err != nil {
		t.Fatalf("Create returned unexpected error: %v", err)
	}
	if items[0].Discount != 100 {
		t.Errorf("discount 150 clamped to %v, want 100", items[0].Discount)
	}
	if items[1].Discount != 0 {
		t.Errorf("discount -5 clamped to %v, want 0", items[1].Discount)
	}
}

func TestCreate_DiscountModeRequiredForCustomizedItems(t *testing.T) {
	svc := orders.NewService(&stubStore{})

	_, _, err := svc.Create(context.Background(), orders.CreateInput{
		CustomerName: "Carol",
		Discount:     20,
		Items: []orders.ItemInput{
			{ProductID: "p1", Quantity: 1, UnitPrice: 100, Discount: 5},
		},
	})
	ae, ok := apperr.As(err)
	if !ok || ae.Kind != apperr.Invalid {
		t.Fatalf("expected invalid error, got %v", err)
	}
	if !errors.Is(err, orders.ErrDiscountUndecided) {
		t.Errorf("err = %v, want ErrDiscountUndecided in the chain", err)
	}
}

func TestCreate_DiscountOverwrite(t *testing.T) {
	store := &stubStore{}
	svc := orders.NewService(store)

	_, items, err := svc.Create(context.Background(), orders.CreateInput{
		CustomerName: "Dave",
		Discount:     25,
		DiscountMode: orders.DiscountOverwrite,
		Items: []orders.ItemInput{
			{ProductID: "p1", Quantity: 1, UnitPrice: 100, Discount: 50},
			{ProductID: "p2", Quantity: 1, UnitPrice: 100, Discount: 10},
		},
	})
	if err != nil {
		t.Fatalf("Create returned unexpected error: %v", err)
	}
	for i, it := range items {
		if it.Discount != 25 {
			t.Errorf("item %d discount = %v, want 25 (overwrite)", i, it.Discount)
		}
	}
}

func TestCreate_DiscountRaise(t *testing.T) {
	store := &stubStore{}
	svc := orders.NewService(store)

	_, items, err := svc.Create(context.Background(), orders.CreateInput{
		CustomerName: "Eve",
		Discount:     25,
		DiscountMode: orders.DiscountRaise,
		Items: []orders.ItemInput{
			{ProductID: "p1", Quantity: 1, UnitPrice: 100, Discount: 50},
			{ProductID: "p2", Quantity: 1, UnitPrice: 100, Discount: 10},
		},
	})
	if err != nil {
		t.Fatalf("Create returned unexpected error: %v", err)
	}
	if items[0].Discount != 50 {
		t.Errorf("item above order discount changed to %v, want kept at 50", items[0].Discount)
	}
	if items[1].Discount != 25 {
		t.Errorf("item below order discount = %v, want raised to 25", items[1].Discount)
	}
}

func TestCreate_UniformItemsGetOrderDiscountWithoutMode(t *testing.T) {
	store := &stubStore{}
	svc := orders.NewService(store)

	_, items, err := svc.Create(context.Background(), orders.CreateInput{
		CustomerName: "Frank",
		Discount:     15,
		Items: []orders.ItemInput{
			{ProductID: "p1", Quantity: 2, UnitPrice: 10},
		},
	})
	if err != nil {
		t.Fatalf("Create returned unexpected error: %v", err)
	}
	if items[0].Discount != 15 {
		t.Errorf("item discount = %v, want 15", items[0].Discount)
	}
}

func TestCreate_ItemInsertFailureLeavesOrderBehind(t *testing.T) {
	store := &stubStore{itemsErr: errors.New("connection reset")}
	svc := orders.NewService(store)

	o, items, err := svc.Create(context.Background(), orders.CreateInput{
		CustomerName: "Grace",
		Items: []orders.ItemInput{
			{ProductID: "p1", Quantity: 1, UnitPrice: 10},
		},
	})

	ae, ok := apperr.As(err)
	if !ok || ae.Kind != apperr.PartialWrite {
		t.Fatalf("expected partial_write, got %v", err)
	}
	if !strings.Contains(ae.PublicMsg, "Failed to save items") {
		t.Errorf("public message = %q, want it to name the failed step", ae.PublicMsg)
	}
	if store.orderCalls != 1 {
		t.Errorf("order insert calls = %d, want 1", store.orderCalls)
	}
	if o.ID == "" {
		t.Error("expected the persisted order to be returned alongside the error")
	}
	if items != nil {
		t.Errorf("expected no items on partial failure, got %d", len(items))
	}
}

func TestCreate_EmptyItemsRejected(t *testing.T) {
	store := &stubStore{}
	svc := orders.NewService(store)

	_, _, err := svc.Create(context.Background(), orders.CreateInput{CustomerName: "Heidi"})
	ae, ok := apperr.As(err)
	if !ok || ae.Kind != apperr.Invalid {
		t.Fatalf("expected invalid error, got %v", err)
	}
	if !errors.Is(err, orders.ErrNoItems) {
		t.Errorf("err = %v, want ErrNoItems in the chain", err)
	}
	if store.orderCalls != 0 {
		t.Errorf("order insert calls = %d, want 0", store.orderCalls)
	}
}

func TestInitial(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"alice", "A"},
		{"  bob", "B"},
		{"Ægir", "Æ"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := orders.Initial(c.name); got != c.want {
			t.Errorf("Initial(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}
