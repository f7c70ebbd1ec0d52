package handlers

import (
	"errors"
	"sort"

	"poimap/errs"
	"poimap/models"
	"poimap/repository"
)

var errTestStorage = errors.New("storage failure")

// fakePOIRepo is an in-memory POIRepository for handler tests.
type fakePOIRepo struct {
	byID   map[int64]*models.POI
	nextID int64

	failWith error
}

var _ repository.POIRepository = (*fakePOIRepo)(nil)

func newFakePOIRepo() *fakePOIRepo {
	return &fakePOIRepo{byID: map[int64]*models.POI{}}
}

func (f *fakePOIRepo) CreatePOI(poi *models.POI) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.nextID++
	poi.ID = f.nextID
	cpy := *poi
	f.byID[poi.ID] = &cpy
	return nil
}

func (f *fakePOIRepo) GetPOIByID(id int64) (*models.POI, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (f *fakePOIRepo) ListAllPOIs() ([]models.POI, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.list(func(*models.POI) bool { return true }), nil
}

func (f *fakePOIRepo) ListPOIsByOwner(ownerID int64) ([]models.POI, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.list(func(p *models.POI) bool { return p.OwnerID == ownerID }), nil
}

func (f *fakePOIRepo) list(keep func(*models.POI) bool) []models.POI {
	var out []models.POI
	for _, p := range f.byID {
		if keep(p) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakePOIRepo) UpdatePOI(poi *models.POI) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.byID[poi.ID]; !ok {
		return errs.ErrNotFound
	}
	cpy := *poi
	f.byID[poi.ID] = &cpy
	return nil
}

func (f *fakePOIRepo) DeletePOI(id int64) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.byID[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakePOIRepo) deleteByOwner(ownerID int64) {
	for id, p := range f.byID {
		if p.OwnerID == ownerID {
			delete(f.byID, id)
		}
	}
}

// fakeUserRepo is an in-memory UserRepository. When pois is set, DeleteUser
// cascades to it the way the real repositories do.
type fakeUserRepo struct {
	byID   map[int64]*models.User
	nextID int64
	pois   *fakePOIRepo

	failWith error
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(pois *fakePOIRepo) *fakeUserRepo {
	return &fakeUserRepo{byID: map[int64]*models.User{}, pois: pois}
}

func (f *fakeUserRepo) CreateUser(u *models.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, existing := range f.byID {
		if existing.Username == u.Username {
			return errs.ErrConflict
		}
	}
	f.nextID++
	u.ID = f.nextID
	cpy := *u
	f.byID[u.ID] = &cpy
	return nil
}

func (f *fakeUserRepo) GetUserByUsername(username string) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.byID {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListUsers() ([]models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.User
	for _, u := range f.byID {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) DeleteUser(id int64) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.byID[id]; !ok {
		return errs.ErrNotFound
	}
	if f.pois != nil {
		f.pois.deleteByOwner(id)
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeUserRepo) HasAdmin() (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	for _, u := range f.byID {
		if u.Role == models.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

// fakeCategoryRepo is an in-memory CategoryRepository.
type fakeCategoryRepo struct {
	categories []models.Category
	failWith   error
}

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

func (f *fakeCategoryRepo) ListCategories() ([]models.Category, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := append([]models.Category(nil), f.categories...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCategoryRepo) CountCategories() (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.categories)), nil
}

func (f *fakeCategoryRepo) SeedCategories(categories []models.Category) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, c := range categories {
		exists := false
		for _, have := range f.categories {
			if have.ID == c.ID {
				exists = true
				break
			}
		}
		if !exists {
			f.categories = append(f.categories, c)
		}
	}
	return nil
}
