package dbhelper

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/ray-remotestate/rms/database"
	"github.com/ray-remotestate/rms/models"
)

func ListTables() ([]models.Table, error) {
	rows, err := database.RMS.Query(`
		SELECT id, number, capacity, status, created_at
		FROM tables
		ORDER BY number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]models.Table, 0)
	for rows.Next() {
		var t models.Table
		if err := rows.Scan(&t.ID, &t.Number, &t.Capacity, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func GetTableByID(id uuid.UUID) (models.Table, error) {
	var t models.Table
	err := database.RMS.QueryRow(`
		SELECT id, number, capacity, status, created_at
		FROM tables WHERE id = $1`, id).
		Scan(&t.ID, &t.Number, &t.Capacity, &t.Status, &t.CreatedAt)
	return t, err
}

// IsTableNumberTaken checks uniqueness, optionally excluding one table so an
// update does not collide with itself.
func IsTableNumberTaken(number models.TableNumber, excludeID uuid.UUID) (bool, error) {
	var count int
	err := database.RMS.QueryRow(`
		SELECT COUNT(*) FROM tables WHERE number = $1 AND id <> $2`,
		int(number), excludeID).Scan(&count)
	return count > 0, err
}

func CreateTable(number models.TableNumber, capacity int, status models.TableStatus) (models.Table, error) {
	var t models.Table
	err := database.RMS.QueryRow(`
		INSERT INTO tables (number, capacity, status)
		VALUES ($1, $2, $3)
		RETURNING id, number, capacity, status, created_at`,
		int(number), capacity, status).
		Scan(&t.ID, &t.Number, &t.Capacity, &t.Status, &t.CreatedAt)
	return t, err
}

func UpdateTable(id uuid.UUID, number models.TableNumber, capacity int, status models.TableStatus) (models.Table, error) {
	var t models.Table
	err := database.RMS.QueryRow(`
		UPDATE tables SET number = $2, capacity = $3, status = $4
		WHERE id = $1
		RETURNING id, number, capacity, status, created_at`,
		id, int(number), capacity, status).
		Scan(&t.ID, &t.Number, &t.Capacity, &t.Status, &t.CreatedAt)
	return t, err
}

func UpdateTableStatus(id uuid.UUID, status models.TableStatus) (models.Table, error) {
	var t models.Table
	err := database.RMS.QueryRow(`
		UPDATE tables SET status = $2
		WHERE id = $1
		RETURNING id, number, capacity, status, created_at`,
		id, status).
		Scan(&t.ID, &t.Number, &t.Capacity, &t.Status, &t.CreatedAt)
	return t, err
}

func DeleteTable(id uuid.UUID) error {
	res, err := database.RMS.Exec(`DELETE FROM tables WHERE id = $1`, id)
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

// SetTableStatusByNumber flips a table's status inside the order workflow
// transaction. Returns sql.ErrNoRows when no table has that number.
func SetTableStatusByNumber(tx *sql.Tx, number models.TableNumber, status models.TableStatus) error {
	res, err := tx.Exec(`UPDATE tables SET status = $2 WHERE number = $1`, int(number), status)
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
