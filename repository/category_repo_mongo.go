package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"poimap/models"
)

type MongoCategoryRepo struct {
	DB *mongo.Client
}

func NewMongoCategoryRepo(db *mongo.Client) *MongoCategoryRepo {
	return &MongoCategoryRepo{DB: db}
}

func (r *MongoCategoryRepo) ListCategories() ([]models.Category, error) {
	ctx := context.Background()

	cur, err := r.DB.Database(mongoDatabase).Collection("categories").
		Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var categories []models.Category
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *MongoCategoryRepo) CountCategories() (int64, error) {
	ctx := context.Background()
	return r.DB.Database(mongoDatabase).Collection("categories").
		CountDocuments(ctx, bson.M{})
}

// SeedCategories upserts by id with $setOnInsert, so existing documents are
// never rewritten and concurrent replicas cannot duplicate them.
func (r *MongoCategoryRepo) SeedCategories(categories []models.Category) error {
	ctx := context.Background()
	coll := r.DB.Database(mongoDatabase).Collection("categories")

	for _, c := range categories {
		_, err := coll.UpdateOne(ctx,
			bson.M{"_id": c.ID},
			bson.M{"$setOnInsert": bson.M{"label": c.Label, "color": c.Color}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
