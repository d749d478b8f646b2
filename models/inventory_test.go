package models

import "testing"

func TestInventoryItemIsLowStock(t *testing.T) {
	tests := []struct {
		name      string
		quantity  float64
		threshold float64
		want      bool
	}{
		{name: "below threshold", quantity: 2, threshold: 5, want: true},
		{name: "equal to threshold", quantity: 5, threshold: 5, want: true},
		{name: "above threshold", quantity: 6, threshold: 5, want: false},
		{name: "zero quantity", quantity: 0, threshold: 5, want: true},
		{name: "zero threshold zero quantity", quantity: 0, threshold: 0, want: true},
		{name: "zero threshold positive quantity", quantity: 0.5, threshold: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := InventoryItem{Quantity: tt.quantity, LowStockThreshold: tt.threshold}
			if got := it.IsLowStock(); got != tt.want {
				t.Errorf("quantity %v threshold %v: got %v, want %v", tt.quantity, tt.threshold, got, tt.want)
			}
		})
	}
}
