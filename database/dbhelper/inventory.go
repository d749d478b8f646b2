package dbhelper

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/ray-remotestate/rms/database"
	"github.com/ray-remotestate/rms/models"
)

const inventoryColumns = `id, name, quantity, unit, low_stock_threshold, updated_at`

func scanInventory(rows *sql.Rows) ([]models.InventoryItem, error) {
	defer rows.Close()
	items := make([]models.InventoryItem, 0)
	for rows.Next() {
		var it models.InventoryItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Quantity, &it.Unit, &it.LowStockThreshold, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func ListInventory() ([]models.InventoryItem, error) {
	rows, err := database.RMS.Query(`SELECT ` + inventoryColumns + ` FROM inventory ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return scanInventory(rows)
}

func IsInventoryItemExists(name string) (bool, error) {
	var count int
	err := database.RMS.QueryRow(`SELECT COUNT(*) FROM inventory WHERE LOWER(name) = LOWER($1)`, name).Scan(&count)
	return count > 0, err
}

func CreateInventoryItem(name string, quantity float64, unit string, threshold float64) (models.InventoryItem, error) {
	var it models.InventoryItem
	err := database.RMS.QueryRow(`
		INSERT INTO inventory (name, quantity, unit, low_stock_threshold)
		VALUES ($1, $2, $3, $4)
		RETURNING `+inventoryColumns,
		name, quantity, unit, threshold).
		Scan(&it.ID, &it.Name, &it.Quantity, &it.Unit, &it.LowStockThreshold, &it.UpdatedAt)
	return it, err
}

func UpdateInventoryItem(id uuid.UUID, name string, quantity float64, unit string, threshold float64) (models.InventoryItem, error) {
	var it models.InventoryItem
	err := database.RMS.QueryRow(`
		UPDATE inventory SET name = $2, quantity = $3, unit = $4, low_stock_threshold = $5, updated_at = now()
		WHERE id = $1
		RETURNING `+inventoryColumns,
		id, name, quantity, unit, threshold).
		Scan(&it.ID, &it.Name, &it.Quantity, &it.Unit, &it.LowStockThreshold, &it.UpdatedAt)
	return it, err
}

func GetInventoryItemByID(id uuid.UUID) (models.InventoryItem, error) {
	var it models.InventoryItem
	err := database.RMS.QueryRow(`SELECT `+inventoryColumns+` FROM inventory WHERE id = $1`, id).
		Scan(&it.ID, &it.Name, &it.Quantity, &it.Unit, &it.LowStockThreshold, &it.UpdatedAt)
	return it, err
}

func DeleteInventoryItem(id uuid.UUID) error {
	res, err := database.RMS.Exec(`DELETE FROM inventory WHERE id = $1`, id)
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
