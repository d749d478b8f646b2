package handlers

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ray-remotestate/rms/models"
)

func TestPaymentResponse(t *testing.T) {
	method := models.PayCash
	paidAt := time.Now()
	order := models.Order{
		ID:            uuid.New(),
		TableNumber:   4,
		Status:        models.OrderPaid,
		PaymentMethod: &method,
		PaidAt:        &paidAt,
	}
	bill := models.Bill{ID: uuid.New(), OrderID: order.ID, TotalAmount: 214}

	t.Run("fresh payment carries the bill", func(t *testing.T) {
		resp := paymentResponse(order, &bill, false)
		if resp["message"] != "order marked as paid" {
			t.Errorf("message: got %q", resp["message"])
		}
		got, ok := resp["bill"].(*models.Bill)
		if !ok || got.ID != bill.ID {
			t.Errorf("bill: got %v, want %v", resp["bill"], bill.ID)
		}
	})

	t.Run("repeat payment returns the existing bill", func(t *testing.T) {
		resp := paymentResponse(order, &bill, true)
		if resp["message"] != "order was already paid" {
			t.Errorf("message: got %q", resp["message"])
		}
		if _, ok := resp["bill"].(*models.Bill); !ok {
			t.Errorf("bill missing from response: %v", resp["bill"])
		}
	})

	t.Run("deleted bill is omitted, not zero-valued", func(t *testing.T) {
		resp := paymentResponse(order, nil, true)
		if _, present := resp["bill"]; present {
			t.Errorf("bill should be omitted, got %v", resp["bill"])
		}
		if resp["message"] != "order was already paid; its bill no longer exists" {
			t.Errorf("message: got %q", resp["message"])
		}
	})
}
