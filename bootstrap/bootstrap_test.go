package bootstrap

import (
	"errors"
	"testing"

	"poimap/auth"
	"poimap/errs"
	"poimap/models"
	"poimap/repository"
)

type fakeUsers struct {
	byName map[string]*models.User
	nextID int64

	createErr   error
	hasAdminErr error
	creates     int
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func (f *fakeUsers) CreateUser(u *models.User) error {
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	if f.byName == nil {
		f.byName = map[string]*models.User{}
	}
	if _, exists := f.byName[u.Username]; exists {
		return errs.ErrConflict
	}
	f.nextID++
	u.ID = f.nextID
	cpy := *u
	f.byName[u.Username] = &cpy
	return nil
}

func (f *fakeUsers) GetUserByUsername(username string) (*models.User, error) {
	u, ok := f.byName[username]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (f *fakeUsers) ListUsers() ([]models.User, error) {
	var out []models.User
	for _, u := range f.byName {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUsers) DeleteUser(id int64) error {
	for name, u := range f.byName {
		if u.ID == id {
			delete(f.byName, name)
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeUsers) HasAdmin() (bool, error) {
	if f.hasAdminErr != nil {
		return false, f.hasAdminErr
	}
	for _, u := range f.byName {
		if u.Role == models.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

type fakeCategories struct {
	byID map[int64]models.Category

	countErr error
	seedErr  error
	seeds    int
}

var _ repository.CategoryRepository = (*fakeCategories)(nil)

func (f *fakeCategories) ListCategories() ([]models.Category, error) {
	var out []models.Category
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategories) CountCategories() (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.byID)), nil
}

func (f *fakeCategories) SeedCategories(categories []models.Category) error {
	f.seeds++
	if f.seedErr != nil {
		return f.seedErr
	}
	if f.byID == nil {
		f.byID = map[int64]models.Category{}
	}
	for _, c := range categories {
		if _, exists := f.byID[c.ID]; !exists {
			f.byID[c.ID] = c
		}
	}
	return nil
}

func TestReconciler_EmptyStore(t *testing.T) {
	users := &fakeUsers{}
	cats := &fakeCategories{}
	r := &Reconciler{Users: users, Categories: cats, AdminPassword: "admin123"}

	if err := r.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	admin, _ := users.GetUserByUsername("admin")
	if admin == nil || admin.Role != models.RoleAdmin {
		t.Fatalf("admin not created: %+v", admin)
	}
	if !auth.VerifyPassword("admin123", admin.Password) {
		t.Fatal("admin password digest does not verify")
	}
	if len(cats.byID) != len(DefaultCategories) {
		t.Fatalf("expected %d categories, got %d", len(DefaultCategories), len(cats.byID))
	}
}

func TestReconciler_Idempotent(t *testing.T) {
	users := &fakeUsers{}
	cats := &fakeCategories{}
	r := &Reconciler{Users: users, Categories: cats, AdminPassword: "admin123"}

	if err := r.Run(); err != nil {
		t.Fatalf("first run: %v", err)
	}
	adminBefore, _ := users.GetUserByUsername("admin")

	if err := r.Run(); err != nil {
		t.Fatalf("second run: %v", err)
	}

	if users.creates != 1 {
		t.Fatalf("expected 1 user insert, got %d", users.creates)
	}
	if cats.seeds != 1 {
		t.Fatalf("expected 1 seed, got %d", cats.seeds)
	}
	adminAfter, _ := users.GetUserByUsername("admin")
	if adminAfter.Password != adminBefore.Password {
		t.Fatal("admin credentials were mutated on restart")
	}
	if len(cats.byID) != len(DefaultCategories) {
		t.Fatalf("category count changed: %d", len(cats.byID))
	}
}

func TestReconciler_AdminMissingAmongUsers(t *testing.T) {
	users := &fakeUsers{}
	if err := users.CreateUser(&models.User{Username: "alice", Password: "x", Role: models.RoleUser}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	users.creates = 0
	cats := &fakeCategories{byID: map[int64]models.Category{1: {ID: 1, Label: "Monument", Color: "blue"}}}
	r := &Reconciler{Users: users, Categories: cats, AdminPassword: "admin123"}

	if err := r.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	if admin, _ := users.GetUserByUsername("admin"); admin == nil {
		t.Fatal("admin row not created alongside existing users")
	}
	if alice, _ := users.GetUserByUsername("alice"); alice == nil || alice.Password != "x" {
		t.Fatalf("existing user disturbed: %+v", alice)
	}
	if cats.seeds != 0 {
		t.Fatal("non-empty catalog was reseeded")
	}
}

func TestReconciler_ConcurrentReplicaConflict(t *testing.T) {
	// A duplicate-username conflict means another replica created the admin
	// first; the reconciler must treat that as success.
	users := &fakeUsers{createErr: errs.ErrConflict}
	cats := &fakeCategories{byID: map[int64]models.Category{1: {ID: 1}}}
	r := &Reconciler{Users: users, Categories: cats, AdminPassword: "admin123"}

	if err := r.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestReconciler_StorageErrorsAreFatal(t *testing.T) {
	boom := errors.New("store down")

	r := &Reconciler{Users: &fakeUsers{hasAdminErr: boom}, Categories: &fakeCategories{}, AdminPassword: "x"}
	if err := r.Run(); !errors.Is(err, boom) {
		t.Fatalf("expected admin-check error, got %v", err)
	}

	r = &Reconciler{Users: &fakeUsers{}, Categories: &fakeCategories{countErr: boom}, AdminPassword: "x"}
	if err := r.Run(); !errors.Is(err, boom) {
		t.Fatalf("expected category-count error, got %v", err)
	}

	r = &Reconciler{Users: &fakeUsers{}, Categories: &fakeCategories{seedErr: boom}, AdminPassword: "x"}
	if err := r.Run(); !errors.Is(err, boom) {
		t.Fatalf("expected seed error, got %v", err)
	}
}

func TestReconciler_CustomCategorySet(t *testing.T) {
	users := &fakeUsers{}
	cats := &fakeCategories{}
	set := []models.Category{{ID: 10, Label: "Viewpoint", Color: "teal"}}
	r := &Reconciler{Users: users, Categories: cats, AdminPassword: "x", CategorySet: set}

	if err := r.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(cats.byID) != 1 || cats.byID[10].Label != "Viewpoint" {
		t.Fatalf("custom set not seeded: %+v", cats.byID)
	}
}
