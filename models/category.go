package models

// Category is immutable reference data: seeded once at bootstrap, read-only
// afterwards for every caller including admins.
type Category struct {
	ID    int64  `json:"id" bson:"_id" db:"id"`
	Label string `json:"label" bson:"label" db:"label"`
	Color string `json:"color" bson:"color" db:"color"`
}
