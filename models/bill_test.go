package models

import "testing"

func TestComputeBill(t *testing.T) {
	items := OrderItems{
		{Name: "Soup", Price: 100, Quantity: 2},
	}

	lines, subtotal, tax, service, total := ComputeBill(items, DefaultTaxPercent, DefaultServiceChargePercent)

	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Total != 200 {
		t.Errorf("line total: got %v, want 200", lines[0].Total)
	}
	if subtotal != 200 {
		t.Errorf("subtotal: got %v, want 200", subtotal)
	}
	if tax != 10 {
		t.Errorf("tax: got %v, want 10", tax)
	}
	if service != 4 {
		t.Errorf("service charge: got %v, want 4", service)
	}
	if total != 214 {
		t.Errorf("total: got %v, want 214", total)
	}
}

func TestComputeBillZeroPercentages(t *testing.T) {
	items := OrderItems{
		{Name: "Tea", Price: 25.50, Quantity: 3},
		{Name: "Samosa", Price: 15, Quantity: 2},
	}

	_, subtotal, tax, service, total := ComputeBill(items, 0, 0)

	if subtotal != 106.50 {
		t.Errorf("subtotal: got %v, want 106.50", subtotal)
	}
	if tax != 0 || service != 0 {
		t.Errorf("tax/service: got %v/%v, want 0/0", tax, service)
	}
	if total != subtotal {
		t.Errorf("total: got %v, want %v", total, subtotal)
	}
}

func TestComputeBillRoundsToCents(t *testing.T) {
	items := OrderItems{
		{Name: "Coffee", Price: 33.33, Quantity: 1},
	}

	_, subtotal, tax, _, _ := ComputeBill(items, 5, 2)

	if subtotal != 33.33 {
		t.Errorf("subtotal: got %v, want 33.33", subtotal)
	}
	// 5% of 33.33 is 1.6665, which must round to 1.67
	if tax != 1.67 {
		t.Errorf("tax: got %v, want 1.67", tax)
	}
}

func TestComputeBillEmptyOrder(t *testing.T) {
	lines, subtotal, tax, service, total := ComputeBill(nil, 5, 2)
	if len(lines) != 0 {
		t.Errorf("got %d lines, want 0", len(lines))
	}
	if subtotal != 0 || tax != 0 || service != 0 || total != 0 {
		t.Errorf("expected all-zero amounts, got %v/%v/%v/%v", subtotal, tax, service, total)
	}
}
