package dbhelper

import (
	"time"

	"github.com/ray-remotestate/rms/database"
	"github.com/ray-remotestate/rms/models"
)

// ListPaidOrdersBetween returns paid orders whose payment timestamp falls
// inside [start, end], newest first.
func ListPaidOrdersBetween(start, end time.Time) ([]models.Order, error) {
	rows, err := database.RMS.Query(`
		SELECT `+orderColumns+` FROM orders
		WHERE status = $1 AND paid_at >= $2 AND paid_at <= $3
		ORDER BY paid_at DESC`,
		models.OrderPaid, start, end)
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
