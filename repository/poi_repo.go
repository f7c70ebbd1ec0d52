package repository

import "poimap/models"

// POIRepository defines the POI store surface. Ownership decisions are made
// by the caller; listing is the only role-scoped operation and is expressed
// through the two List variants.
type POIRepository interface {
	// CreatePOI inserts a POI and fills in its assigned ID.
	CreatePOI(poi *models.POI) error
	// GetPOIByID returns (nil, nil) when no such POI exists.
	GetPOIByID(id int64) (*models.POI, error)
	ListAllPOIs() ([]models.POI, error)
	ListPOIsByOwner(ownerID int64) ([]models.POI, error)
	// UpdatePOI rewrites the mutable fields of an existing POI.
	UpdatePOI(poi *models.POI) error
	DeletePOI(id int64) error
}
