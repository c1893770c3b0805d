package view

import (
	"time"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/orders"
)

type OrderListItem struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	Status          string  `json:"status"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerInitial string  `json:"customer_initial"`
	Discount        float64 `json:"discount"`
	Total           float64 `json:"total"`
	TotalDisplay    string  `json:"total_display"` // e.g. "kr 249.00"
}

type OrderItemView struct {
	ProductID        string  `json:"product_id"`
	ProductName      string  `json:"product_name"`
	Quantity         int     `json:"quantity"`
	UnitPrice        float64 `json:"unit_price"`
	Discount         float64 `json:"discount"`
	LineTotal        float64 `json:"line_total"` // rounded for display
	LineTotalDisplay string  `json:"line_total_display"`
}

type OrderDetail struct {
	OrderListItem
	Items []OrderItemView `json:"items"`
}

func OrderList(rows []orders.Order, currency string) []OrderListItem {
	out := make([]OrderListItem, 0, len(rows))
	for _, o := range rows {
		out = append(out, orderListItem(o, currency))
	}
	return out
}

func orderListItem(o orders.Order, currency string) OrderListItem {
	initial := o.CustomerInitial
	if initial == "" {
		initial = orders.Initial(o.CustomerName)
	}
	return OrderListItem{
		ID:              o.ID,
		Date:            o.Date.Format(time.DateOnly),
		Status:          o.Status,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerInitial: initial,
		Discount:        o.Discount,
		Total:           Round2(o.Total),
		TotalDisplay:    Money(o.Total, currency),
	}
}

func NewOrderDetail(o orders.Order, items []orders.OrderItem, currency string) OrderDetail {
	d := OrderDetail{OrderListItem: orderListItem(o, currency)}
	for _, it := range items {
		d.Items = append(d.Items, OrderItemView{
			ProductID:        it.ProductID,
			ProductName:      it.ProductName,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			Discount:         it.Discount,
			LineTotal:        Round2(it.LineTotal()),
			LineTotalDisplay: Money(it.LineTotal(), currency),
		})
	}
	return d
}
