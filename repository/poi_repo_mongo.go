package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"poimap/errs"
	"poimap/models"
)

type MongoPOIRepo struct {
	DB *mongo.Client
}

func NewMongoPOIRepo(db *mongo.Client) *MongoPOIRepo {
	return &MongoPOIRepo{DB: db}
}

func (r *MongoPOIRepo) CreatePOI(poi *models.POI) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	if poi.CreatedAt.IsZero() {
		poi.CreatedAt = time.Now().UTC()
	}
	id, err := nextSequence(ctx, db, "pois")
	if err != nil {
		return err
	}
	poi.ID = id

	_, err = db.Collection("pois").InsertOne(ctx, poi)
	return err
}

func (r *MongoPOIRepo) GetPOIByID(id int64) (*models.POI, error) {
	ctx := context.Background()
	poi := &models.POI{}

	err := r.DB.Database(mongoDatabase).Collection("pois").
		FindOne(ctx, bson.M{"_id": id}).Decode(poi)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return poi, nil
}

func (r *MongoPOIRepo) ListAllPOIs() ([]models.POI, error) {
	return r.listPOIs(bson.M{})
}

func (r *MongoPOIRepo) ListPOIsByOwner(ownerID int64) ([]models.POI, error) {
	return r.listPOIs(bson.M{"owner_id": ownerID})
}

func (r *MongoPOIRepo) listPOIs(filter bson.M) ([]models.POI, error) {
	ctx := context.Background()

	cur, err := r.DB.Database(mongoDatabase).Collection("pois").
		Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var pois []models.POI
	if err := cur.All(ctx, &pois); err != nil {
		return nil, err
	}
	return pois, nil
}

func (r *MongoPOIRepo) UpdatePOI(poi *models.POI) error {
	ctx := context.Background()

	res, err := r.DB.Database(mongoDatabase).Collection("pois").
		UpdateOne(ctx, bson.M{"_id": poi.ID}, bson.M{"$set": bson.M{
			"name":        poi.Name,
			"lat":         poi.Lat,
			"lng":         poi.Lng,
			"category_id": poi.CategoryID,
			"note":        poi.Note,
			"link":        poi.Link,
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *MongoPOIRepo) DeletePOI(id int64) error {
	ctx := context.Background()

	res, err := r.DB.Database(mongoDatabase).Collection("pois").
		DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}
