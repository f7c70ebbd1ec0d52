package repository

import (
	"database/sql"
	"time"

	"poimap/errs"
	"poimap/models"
)

type PostgresPOIRepo struct {
	DB *sql.DB
}

func NewPostgresPOIRepo(db *sql.DB) *PostgresPOIRepo {
	return &PostgresPOIRepo{DB: db}
}

func (r *PostgresPOIRepo) CreatePOI(poi *models.POI) error {
	if poi.CreatedAt.IsZero() {
		poi.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO pois (user_id, name, lat, lng, category_id, note, link, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, poi.OwnerID, poi.Name, poi.Lat, poi.Lng, poi.CategoryID, poi.Note, poi.Link, poi.CreatedAt).Scan(&poi.ID)
}

func (r *PostgresPOIRepo) GetPOIByID(id int64) (*models.POI, error) {
	poi := &models.POI{}
	err := r.DB.QueryRow(`
		SELECT p.id, p.user_id, u.username, p.name, p.lat, p.lng, p.category_id,
		       COALESCE(p.note, ''), COALESCE(p.link, ''), p.created_at
		FROM pois p
		JOIN users u ON u.id = p.user_id
		WHERE p.id=$1
	`, id).Scan(&poi.ID, &poi.OwnerID, &poi.OwnerUsername, &poi.Name, &poi.Lat, &poi.Lng,
		&poi.CategoryID, &poi.Note, &poi.Link, &poi.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return poi, nil
}

func (r *PostgresPOIRepo) ListAllPOIs() ([]models.POI, error) {
	return r.listPOIs(`
		SELECT p.id, p.user_id, u.username, p.name, p.lat, p.lng, p.category_id,
		       COALESCE(p.note, ''), COALESCE(p.link, ''), p.created_at
		FROM pois p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.id
	`)
}

func (r *PostgresPOIRepo) ListPOIsByOwner(ownerID int64) ([]models.POI, error) {
	return r.listPOIs(`
		SELECT p.id, p.user_id, u.username, p.name, p.lat, p.lng, p.category_id,
		       COALESCE(p.note, ''), COALESCE(p.link, ''), p.created_at
		FROM pois p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id=$1
		ORDER BY p.id
	`, ownerID)
}

func (r *PostgresPOIRepo) listPOIs(query string, args ...interface{}) ([]models.POI, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pois []models.POI
	for rows.Next() {
		var p models.POI
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.OwnerUsername, &p.Name, &p.Lat, &p.Lng,
			&p.CategoryID, &p.Note, &p.Link, &p.CreatedAt); err != nil {
			return nil, err
		}
		pois = append(pois, p)
	}
	return pois, rows.Err()
}

func (r *PostgresPOIRepo) UpdatePOI(poi *models.POI) error {
	res, err := r.DB.Exec(`
		UPDATE pois
		SET name=$2, lat=$3, lng=$4, category_id=$5, note=$6, link=$7
		WHERE id=$1
	`, poi.ID, poi.Name, poi.Lat, poi.Lng, poi.CategoryID, poi.Note, poi.Link)
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
	return nil
}

func (r *PostgresPOIRepo) DeletePOI(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM pois WHERE id=$1`, id)
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
	return nil
}
