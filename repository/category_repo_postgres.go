package repository

import (
	"database/sql"

	"poimap/models"
)

type PostgresCategoryRepo struct {
	DB *sql.DB
}

func NewPostgresCategoryRepo(db *sql.DB) *PostgresCategoryRepo {
	return &PostgresCategoryRepo{DB: db}
}

func (r *PostgresCategoryRepo) ListCategories() ([]models.Category, error) {
	rows, err := r.DB.Query(`SELECT id, label, color FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Label, &c.Color); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresCategoryRepo) CountCategories() (int64, error) {
	var count int64
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&count)
	return count, err
}

// SeedCategories inserts by primary key, ignoring ids that already exist, so
// concurrent replicas seeding the same catalog cannot duplicate rows.
func (r *PostgresCategoryRepo) SeedCategories(categories []models.Category) error {
	for _, c := range categories {
		_, err := r.DB.Exec(`
			INSERT INTO categories (id, label, color)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO NOTHING
		`, c.ID, c.Label, c.Color)
		if err != nil {
			return err
		}
	}
	return nil
}
