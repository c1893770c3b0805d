package view_test

import (
	"testing"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/pkg/view"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.005, 1.0}, // 1.005 is stored as 1.00499..., rounds down
		{1.015, 1.01},
		{2.675, 2.68}, // 2.675*100 lands on exactly 267.5, which rounds up
		{19.999, 20},
		{-1.255, -1.25},
		{123.456, 123.46},
	}
	for _, c := range cases {
		if got := view.Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestMoney(t *testing.T) {
	cases := []struct {
		v        float64
		currency string
		want     string
	}{
		{1234.5, "EUR", "€1234.50"},
		{0, "USD", "$0.00"},
		{9.999, "GBP", "£10.00"},
		{42, "DKK", "kr 42.00"},
		{5, "SEK", "SEK 5.00"},
	}
	for _, c := range cases {
		if got := view.Money(c.v, c.currency); got != c.want {
			t.Errorf("Money(%v, %q) = %q, want %q", c.v, c.currency, got, c.want)
		}
	}
}
