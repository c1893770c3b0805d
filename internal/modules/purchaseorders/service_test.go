package purchaseorders_test

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/purchaseorders"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/shared/apperr"
)

type stubStore struct {
	po        *purchaseorders.PurchaseOrder
	itemsErr  error
	statusErr error
	statuses  map[string]string
}

func (s *stubStore) InsertOrder(ctx context.Context, po *purchaseorders.PurchaseOrder) error {
	s.po = po
	return nil
}

func (s *stubStore) InsertItems(ctx context.Context, items []purchaseorders.PurchaseOrderItem) error {
	return s.itemsErr
}

func (s *stubStore) UpdateStatus(ctx context.Context, id, status string) error {
	if s.statusErr != nil {
		return s.statusErr
	}
	if s.statuses == nil {
		s.statuses = map[string]string{}
	}
	s.statuses[id] = status
	return nil
}

func TestNewNumber_Format(t *testing.T) {
	at := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)
	re := regexp.MustCompile(`^PO-20260831-\d{4}$`)
	for i := 0; i < 20; i++ {
		n := purchaseorders.NewNumber(at)
		if !re.MatchString(n) {
			t.Fatalf("NewNumber = %q, want match for %s", n, re)
		}
	}
}

func TestNextStatus_Cycle(t *testing.T) {
	cases := map[string]string{
		purchaseorders.StatusPending:   purchaseorders.StatusApproved,
		purchaseorders.StatusApproved:  purchaseorders.StatusReceived,
		purchaseorders.StatusReceived:  purchaseorders.StatusCancelled,
		purchaseorders.StatusCancelled: purchaseorders.StatusPending,
	}
	for from, want := range cases {
		if got := purchaseorders.NextStatus(from); got != want {
			t.Errorf("NextStatus(%q) = %q, want %q", from, got, want)
		}
	}
}

func TestCreate_TotalAndDefaults(t *testing.T) {
	store := &stubStore{}
	svc := purchaseorders.NewService(store)

	po, items, err := svc.Create(context.Background(), purchaseorders.CreateInput{
		SupplierID: "s1",
		Items: []purchaseorders.ItemInput{
			{ProductID: "p1", Quantity: 10, UnitPrice: 4.25},
			{ProductID: "p2", Quantity: 2, UnitPrice: 12},
		},
	})
	if err != nil {
		t.Fatalf("Create returned unexpected error: %v", err)
	}
	if want := 10*4.25 + 2*12.0; po.Total != want {
		t.Errorf("total = %v, want %v", po.Total, want)
	}
	if po.Status != purchaseorders.StatusPending {
		t.Errorf("status = %q, want %q", po.Status, purchaseorders.StatusPending)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	for _, it := range items {
		if it.PurchaseOrderID != po.ID {
			t.Errorf("item parent = %q, want %q", it.PurchaseOrderID, po.ID)
		}
	}
}

func TestCreate_ItemInsertFailure(t *testing.T) {
	store := &stubStore{itemsErr: errors.New("duplicate entry")}
	svc := purchaseorders.NewService(store)

	po, _, err := svc.Create(context.Background(), purchaseorders.CreateInput{
		SupplierID: "s1",
		Items:      []purchaseorders.ItemInput{{ProductID: "p1", Quantity: 1, UnitPrice: 1}},
	})

	ae, ok := apperr.As(err)
	if !ok || ae.Kind != apperr.PartialWrite {
		t.Fatalf("expected partial_write, got %v", err)
	}
	if !strings.Contains(ae.PublicMsg, "Failed to save items") {
		t.Errorf("public message = %q, want it to name the failed step", ae.PublicMsg)
	}
	if store.po == nil || po.ID != store.po.ID {
		t.Error("expected the persisted purchase order to be returned alongside the error")
	}
}

func TestCycleStatus(t *testing.T) {
	store := &stubStore{}
	svc := purchaseorders.NewService(store)

	next, err := svc.CycleStatus(context.Background(), "po1", purchaseorders.StatusApproved)
	if err != nil {
		t.Fatalf("CycleStatus returned unexpected error: %v", err)
	}
	if next != purchaseorders.StatusReceived {
		t.Errorf("next = %q, want %q", next, purchaseorders.StatusReceived)
	}
	if store.statuses["po1"] != purchaseorders.StatusReceived {
		t.Errorf("persisted status = %q, want %q", store.statuses["po1"], purchaseorders.StatusReceived)
	}
}

func TestCycleStatus_UnknownStatus(t *testing.T) {
	svc := purchaseorders.NewService(&stubStore{})

	_, err := svc.CycleStatus(context.Background(), "po1", "shipped")
	ae, ok := apperr.As(err)
	if !ok || ae.Kind != apperr.Invalid {
		t.Fatalf("expected invalid error, got %v", err)
	}
}
