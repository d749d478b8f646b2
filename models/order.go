package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderCompleted OrderStatus = "completed"
	OrderDelivered OrderStatus = "delivered"
	OrderPaid      OrderStatus = "paid"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderCompleted, OrderDelivered, OrderPaid:
		return true
	}
	return false
}

// CanTransitionTo reports whether the order may move from s to next.
// paid is terminal; the flow only moves forward.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.IsValid() || s == OrderPaid {
		return false
	}
	switch s {
	case OrderPending:
		return next != OrderPending
	case OrderPreparing:
		return next == OrderCompleted || next == OrderDelivered || next == OrderPaid
	case OrderCompleted:
		return next == OrderDelivered || next == OrderPaid
	case OrderDelivered:
		return next == OrderPaid
	}
	return false
}

type PaymentMethod string

const (
	PayCash PaymentMethod = "Cash"
	PayCard PaymentMethod = "Card"
	PayUPI  PaymentMethod = "UPI"
)

func (m PaymentMethod) IsValid() bool {
	return m == PayCash || m == PayCard || m == PayUPI
}

// OrderItem is a denormalized copy of a menu item at order time.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderItems is stored as a jsonb column.
type OrderItems []OrderItem

func (i OrderItems) Value() (driver.Value, error) {
	return json.Marshal(i)
}

func (i *OrderItems) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for order items", src)
	}
	return json.Unmarshal(b, i)
}

type Order struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	TableNumber   TableNumber    `db:"table_number" json:"table"`
	Items         OrderItems     `db:"items" json:"items"`
	Total         float64        `db:"total" json:"total"`
	Status        OrderStatus    `db:"status" json:"status"`
	PaymentMethod *PaymentMethod `db:"payment_method" json:"paymentMethod,omitempty"`
	PaidAt        *time.Time     `db:"paid_at" json:"paidAt,omitempty"`
	CreatedAt     time.Time      `db:"created_at" json:"createdAt"`
}
