package repository

import "poimap/models"

// CategoryRepository defines the category catalog surface.
type CategoryRepository interface {
	// ListCategories returns all categories sorted by id ascending.
	ListCategories() ([]models.Category, error)
	CountCategories() (int64, error)
	// SeedCategories inserts the given categories, skipping any id that is
	// already present. Safe to run from concurrent process replicas.
	SeedCategories(categories []models.Category) error
}
