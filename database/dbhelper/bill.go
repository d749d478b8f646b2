package dbhelper

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/ray-remotestate/rms/database"
	"github.com/ray-remotestate/rms/models"
)

const billColumns = `id, order_id, table_number, items, subtotal, tax, service_charge, total_amount, payment_method, created_at`

func scanBill(row interface{ Scan(...interface{}) error }) (models.Bill, error) {
	var b models.Bill
	err := row.Scan(&b.ID, &b.OrderID, &b.TableNumber, &b.Items, &b.Subtotal, &b.Tax,
		&b.ServiceCharge, &b.TotalAmount, &b.PaymentMethod, &b.CreatedAt)
	return b, err
}

func CreateBill(tx *sql.Tx, b models.Bill) (models.Bill, error) {
	return scanBill(tx.QueryRow(`
		INSERT INTO bills (order_id, table_number, items, subtotal, tax, service_charge, total_amount, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+billColumns,
		b.OrderID, int(b.TableNumber), b.Items, b.Subtotal, b.Tax, b.ServiceCharge, b.TotalAmount, b.PaymentMethod))
}

func ListBills() ([]models.Bill, error) {
	rows, err := database.RMS.Query(`SELECT ` + billColumns + ` FROM bills ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bills := make([]models.Bill, 0)
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}

func GetBillByID(id uuid.UUID) (models.Bill, error) {
	return scanBill(database.RMS.QueryRow(`SELECT `+billColumns+` FROM bills WHERE id = $1`, id))
}

// GetBillByOrderID finds the bill for an already-paid order; payment is
// idempotent and returns this instead of writing a second snapshot.
func GetBillByOrderID(orderID uuid.UUID) (models.Bill, error) {
	return scanBill(database.RMS.QueryRow(`SELECT `+billColumns+` FROM bills WHERE order_id = $1`, orderID))
}

func DeleteBill(id uuid.UUID) error {
	res, err := database.RMS.Exec(`DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
