package dbhelper

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/ray-remotestate/rms/database"
	"github.com/ray-remotestate/rms/models"
)

const orderColumns = `id, table_number, items, total, status, payment_method, paid_at, created_at`

func scanOrder(row interface{ Scan(...interface{}) error }) (models.Order, error) {
	var o models.Order
	var method sql.NullString
	var paidAt sql.NullTime
	err := row.Scan(&o.ID, &o.TableNumber, &o.Items, &o.Total, &o.Status, &method, &paidAt, &o.CreatedAt)
	if err != nil {
		return o, err
	}
	if method.Valid {
		m := models.PaymentMethod(method.String)
		o.PaymentMethod = &m
	}
	if paidAt.Valid {
		t := paidAt.Time
		o.PaidAt = &t
	}
	return o, nil
}

func ListOrders(since time.Time) ([]models.Order, error) {
	rows, err := database.RMS.Query(`
		SELECT `+orderColumns+` FROM orders
		WHERE created_at >= $1
		ORDER BY created_at DESC`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func GetOrderByID(id uuid.UUID) (models.Order, error) {
	return scanOrder(database.RMS.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
}

// GetOrderForUpdate loads an order under a row lock so the payment workflow
// can check and flip its status without racing a concurrent pay call.
func GetOrderForUpdate(tx *sql.Tx, id uuid.UUID) (models.Order, error) {
	return scanOrder(tx.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id))
}

func CreateOrder(tx *sql.Tx, table models.TableNumber, items models.OrderItems, total float64, status models.OrderStatus) (models.Order, error) {
	return scanOrder(tx.QueryRow(`
		INSERT INTO orders (table_number, items, total, status)
		VALUES ($1, $2, $3, $4)
		RETURNING `+orderColumns,
		int(table), items, total, status))
}

func UpdateOrder(id uuid.UUID, table models.TableNumber, items models.OrderItems, total float64, status models.OrderStatus) (models.Order, error) {
	return scanOrder(database.RMS.QueryRow(`
		UPDATE orders SET table_number = $2, items = $3, total = $4, status = $5
		WHERE id = $1
		RETURNING `+orderColumns,
		id, int(table), items, total, status))
}

func UpdateOrderStatus(id uuid.UUID, status models.OrderStatus) (models.Order, error) {
	return scanOrder(database.RMS.QueryRow(`
		UPDATE orders SET status = $2
		WHERE id = $1
		RETURNING `+orderColumns,
		id, status))
}

func MarkOrderPaid(tx *sql.Tx, id uuid.UUID, method models.PaymentMethod, paidAt time.Time) error {
	_, err := tx.Exec(`
		UPDATE orders SET status = $2, payment_method = $3, paid_at = $4
		WHERE id = $1`,
		id, models.OrderPaid, method, paidAt)
	return err
}

func DeleteOrder(id uuid.UUID) error {
	res, err := database.RMS.Exec(`DELETE FROM orders WHERE id = $1`, id)
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
