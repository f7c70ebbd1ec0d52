package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"poimap/errs"
	"poimap/models"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

// CreateUser inserts a user row. Duplicate usernames surface as the unique
// constraint violation, not as a check-then-insert race.
func (r *PostgresUserRepo) CreateUser(user *models.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	err := r.DB.QueryRow(`
		INSERT INTO users (username, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, user.Username, user.Password, user.Role, user.CreatedAt).Scan(&user.ID)
	if isUniqueViolation(err) {
		return errs.ErrConflict
	}
	return err
}

// GetUserByUsername fetches a user by username
func (r *PostgresUserRepo) GetUserByUsername(username string) (*models.User, error) {
	user := &models.User{}
	err := r.DB.QueryRow(`
		SELECT id, username, password_hash, role, created_at
		FROM users
		WHERE username=$1
	`, username).Scan(&user.ID, &user.Username, &user.Password, &user.Role, &user.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (r *PostgresUserRepo) ListUsers() ([]models.User, error) {
	rows, err := r.DB.Query(`
		SELECT id, username, password_hash, role, created_at
		FROM users
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// DeleteUser removes the user and its POIs in a single transaction, POIs
// first so a failure can never leave orphaned records behind a deleted owner.
func (r *PostgresUserRepo) DeleteUser(id int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM pois WHERE user_id=$1`, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return tx.Commit()
}

func (r *PostgresUserRepo) HasAdmin() (bool, error) {
	var count int64
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE role=$1`, models.RoleAdmin).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
