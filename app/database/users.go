package database

import (
	"database/sql"
	"time"

	"github.com/mirr-x/smart-class-companion/app/models"
)

const userColumns = `id, username, email, password, first_name, last_name, role, bio, is_active, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.FirstName, &user.LastName, &user.Role, &user.Bio,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (username, email, password, first_name, last_name, role)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, is_active, created_at, updated_at`

	err := db.QueryRow(query,
		user.Username, user.Email, user.Password,
		user.FirstName, user.LastName, user.Role,
	).Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)

	if err != nil && isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND is_active = true`
	return scanUser(db.QueryRow(query, username))
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND is_active = true`
	return scanUser(db.QueryRow(query, email))
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND is_active = true`
	return scanUser(db.QueryRow(query, userID))
}

func UsernameTaken(db *sql.DB, username string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	return exists, err
}

func EmailTaken(db *sql.DB, email string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

func UpdateUserProfile(db *sql.DB, userID, firstName, lastName, bio string) error {
	query := `UPDATE users SET first_name = $1, last_name = $2, bio = $3, updated_at = NOW() WHERE id = $4`
	_, err := db.Exec(query, firstName, lastName, bio, userID)
	return err
}

func DeactivateUser(db *sql.DB, userID string) error {
	query := `UPDATE users SET is_active = false, deleted_at = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, time.Now(), userID)
	return err
}
