package dbhelper

import (
	"database/sql"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ray-remotestate/rms/database"
	"github.com/ray-remotestate/rms/models"
)

func CreateStaff(name, email, hashedPassword string, role models.Role) (uuid.UUID, error) {
	var id uuid.UUID
	err := database.RMS.QueryRow(`
		INSERT INTO staff (name, email, password, role)
		VALUES ($1, LOWER($2), $3, $4)
		RETURNING id`,
		name, email, hashedPassword, role).Scan(&id)
	return id, err
}

func IsStaffExists(email string) (bool, error) {
	var count int
	err := database.RMS.QueryRow(`SELECT COUNT(*) FROM staff WHERE LOWER(email) = LOWER($1)`, email).Scan(&count)
	return count > 0, err
}

// GetStaffByEmailAndRole backs login: the account must match both the email
// and the role the client asked to sign in as.
func GetStaffByEmailAndRole(email string, role models.Role) (models.Staff, error) {
	var s models.Staff
	err := database.RMS.QueryRow(`
		SELECT id, name, email, password, role FROM staff
		WHERE LOWER(email) = LOWER($1) AND role = $2`,
		email, role).Scan(&s.ID, &s.Name, &s.Email, &s.Password, &s.Role)
	return s, err
}

func CheckStaffPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

func ListStaff() ([]models.Staff, error) {
	rows, err := database.RMS.Query(`
		SELECT id, name, email, role FROM staff
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staff := make([]models.Staff, 0)
	for rows.Next() {
		var s models.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Role); err != nil {
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

// UpdateStaff replaces name/email/role. The password is only re-hashed and
// stored when hashedPassword is non-empty; otherwise the stored hash stays.
func UpdateStaff(id uuid.UUID, name, email string, role models.Role, hashedPassword string) (models.Staff, error) {
	var s models.Staff
	var err error
	if hashedPassword != "" {
		err = database.RMS.QueryRow(`
			UPDATE staff SET name = $2, email = LOWER($3), role = $4, password = $5
			WHERE id = $1
			RETURNING id, name, email, role`,
			id, name, email, role, hashedPassword).Scan(&s.ID, &s.Name, &s.Email, &s.Role)
	} else {
		err = database.RMS.QueryRow(`
			UPDATE staff SET name = $2, email = LOWER($3), role = $4
			WHERE id = $1
			RETURNING id, name, email, role`,
			id, name, email, role).Scan(&s.ID, &s.Name, &s.Email, &s.Role)
	}
	return s, err
}

func DeleteStaff(id uuid.UUID) error {
	res, err := database.RMS.Exec(`DELETE FROM staff WHERE id = $1`, id)
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

// AdminExists reports whether any admin account is present; used by the
// startup seeder.
func AdminExists() (bool, error) {
	var exists bool
	err := database.RMS.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM staff WHERE role = 'admin')`).Scan(&exists)
	return exists, err
}
