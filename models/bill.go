package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTaxPercent           = 5
	DefaultServiceChargePercent = 2
)

// BillItem is one priced line on a bill, frozen at payment time.
type BillItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

type BillItems []BillItem

func (i BillItems) Value() (driver.Value, error) {
	return json.Marshal(i)
}

func (i *BillItems) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for bill items", src)
	}
	return json.Unmarshal(b, i)
}

// Bill is a write-once snapshot of a paid order.
type Bill struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	OrderID       uuid.UUID     `db:"order_id" json:"orderId"`
	TableNumber   TableNumber   `db:"table_number" json:"tableNumber"`
	Items         BillItems     `db:"items" json:"items"`
	Subtotal      float64       `db:"subtotal" json:"subtotal"`
	Tax           float64       `db:"tax" json:"tax"`
	ServiceCharge float64       `db:"service_charge" json:"serviceCharge"`
	TotalAmount   float64       `db:"total_amount" json:"totalAmount"`
	PaymentMethod PaymentMethod `db:"payment_method" json:"paymentMethod"`
	CreatedAt     time.Time     `db:"created_at" json:"createdAt"`
}

// ComputeBill freezes order lines into bill lines and applies percentage
// tax and service charge on the subtotal. Amounts are rounded to cents.
func ComputeBill(items OrderItems, taxPercent, servicePercent float64) (BillItems, float64, float64, float64, float64) {
	lines := make(BillItems, 0, len(items))
	var subtotal float64
	for _, it := range items {
		lineTotal := roundCents(it.Price * float64(it.Quantity))
		lines = append(lines, BillItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			Total:    lineTotal,
		})
		subtotal += lineTotal
	}
	subtotal = roundCents(subtotal)
	tax := roundCents(subtotal * taxPercent / 100)
	service := roundCents(subtotal * servicePercent / 100)
	total := roundCents(subtotal + tax + service)
	return lines, subtotal, tax, service, total
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
