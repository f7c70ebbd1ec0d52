// Package bootstrap reconciles the store's initial state before the service
// accepts traffic: exactly one admin account and a non-empty category catalog.
package bootstrap

import (
	"errors"
	"fmt"
	"log"

	"poimap/auth"
	"poimap/errs"
	"poimap/models"
	"poimap/repository"
)

// DefaultCategories is the canonical category set seeded into an empty
// catalog. Deployments may override it before Run.
var DefaultCategories = []models.Category{
	{ID: 1, Label: "Monument", Color: "blue"},
	{ID: 2, Label: "Park", Color: "green"},
	{ID: 3, Label: "Museum", Color: "purple"},
	{ID: 4, Label: "Restaurant", Color: "orange"},
	{ID: 5, Label: "Square", Color: "red"},
	{ID: 6, Label: "Market", Color: "black"},
	{ID: 7, Label: "Church", Color: "pink"},
	{ID: 8, Label: "Street", Color: "cyan"},
	{ID: 9, Label: "Hotel", Color: "yellow"},
}

// Reconciler guarantees an admin account and reference categories exist.
// Running it against an already-bootstrapped store is a no-op; it never
// mutates existing rows.
type Reconciler struct {
	Users         repository.UserRepository
	Categories    repository.CategoryRepository
	AdminPassword string
	CategorySet   []models.Category
}

// Run performs the reconciliation. Any storage error is returned to the
// caller and must abort startup.
func (r *Reconciler) Run() error {
	if err := r.ensureAdmin(); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	if err := r.ensureCategories(); err != nil {
		return fmt.Errorf("bootstrap categories: %w", err)
	}
	return nil
}

func (r *Reconciler) ensureAdmin() error {
	hasAdmin, err := r.Users.HasAdmin()
	if err != nil {
		return err
	}
	if hasAdmin {
		return nil
	}

	digest, err := auth.HashPassword(r.AdminPassword)
	if err != nil {
		return err
	}
	admin := &models.User{
		Username: "admin",
		Password: digest,
		Role:     models.RoleAdmin,
	}
	err = r.Users.CreateUser(admin)
	if errors.Is(err, errs.ErrConflict) {
		// Another replica won the race; the unique username constraint
		// guarantees a single admin row either way.
		return nil
	}
	if err != nil {
		return err
	}
	log.Println("created default admin account")
	return nil
}

func (r *Reconciler) ensureCategories() error {
	count, err := r.Categories.CountCategories()
	if err != nil {
		return err
	}
	if count > 0 {
		// The catalog is never auto-migrated once populated.
		return nil
	}

	set := r.CategorySet
	if len(set) == 0 {
		set = DefaultCategories
	}
	if err := r.Categories.SeedCategories(set); err != nil {
		return err
	}
	log.Printf("seeded %d categories", len(set))
	return nil
}
