package dbhelper

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/ray-remotestate/rms/database"
	"github.com/ray-remotestate/rms/models"
)

func ListMenu() ([]models.MenuItem, error) {
	rows, err := database.RMS.Query(`
		SELECT id, name, category, price, available, image, created_at
		FROM menu_items
		ORDER BY category, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menu := make([]models.MenuItem, 0)
	for rows.Next() {
		var m models.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.Price, &m.Available, &m.Image, &m.CreatedAt); err != nil {
			return nil, err
		}
		menu = append(menu, m)
	}
	return menu, rows.Err()
}

func CreateMenuItem(name, category string, price float64, available bool, image *string) (models.MenuItem, error) {
	var m models.MenuItem
	err := database.RMS.QueryRow(`
		INSERT INTO menu_items (name, category, price, available, image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, category, price, available, image, created_at`,
		name, category, price, available, image).
		Scan(&m.ID, &m.Name, &m.Category, &m.Price, &m.Available, &m.Image, &m.CreatedAt)
	return m, err
}

func UpdateMenuItem(id uuid.UUID, name, category string, price float64, available bool, image *string) (models.MenuItem, error) {
	var m models.MenuItem
	err := database.RMS.QueryRow(`
		UPDATE menu_items SET name = $2, category = $3, price = $4, available = $5, image = $6
		WHERE id = $1
		RETURNING id, name, category, price, available, image, created_at`,
		id, name, category, price, available, image).
		Scan(&m.ID, &m.Name, &m.Category, &m.Price, &m.Available, &m.Image, &m.CreatedAt)
	return m, err
}

func DeleteMenuItem(id uuid.UUID) error {
	res, err := database.RMS.Exec(`DELETE FROM menu_items WHERE id = $1`, id)
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
