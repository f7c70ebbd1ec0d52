package models

import "time"

// POI is a geo-tagged point of interest owned by exactly one user.
// OwnerUsername is denormalized into the document on the Mongo backend and
// joined from the users table on Postgres.
type POI struct {
	ID            int64     `json:"id" bson:"_id,omitempty" db:"id"`
	OwnerID       int64     `json:"owner_id" bson:"owner_id" db:"user_id"`
	OwnerUsername string    `json:"owner_username" bson:"owner_username" db:"owner_username"`
	Name          string    `json:"name" bson:"name" db:"name"`
	Lat           float64   `json:"lat" bson:"lat" db:"lat"`
	Lng           float64   `json:"lng" bson:"lng" db:"lng"`
	CategoryID    int64     `json:"category_id" bson:"category_id" db:"category_id"`
	Note          string    `json:"note,omitempty" bson:"note,omitempty" db:"note"`
	Link          string    `json:"link,omitempty" bson:"link,omitempty" db:"link"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
