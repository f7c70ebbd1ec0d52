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

type MongoUserRepo struct {
	DB *mongo.Client
}

func NewMongoUserRepo(db *mongo.Client) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

// EnsureIndexes creates the unique username index the bootstrap race safety
// depends on. Must run before the reconciler.
func (r *MongoUserRepo) EnsureIndexes() error {
	ctx := context.Background()
	_, err := r.DB.Database(mongoDatabase).Collection("users").Indexes().CreateOne(ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
	return err
}

func (r *MongoUserRepo) CreateUser(user *models.User) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	id, err := nextSequence(ctx, db, "users")
	if err != nil {
		return err
	}
	user.ID = id

	_, err = db.Collection("users").InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return errs.ErrConflict
	}
	return err
}

func (r *MongoUserRepo) GetUserByUsername(username string) (*models.User, error) {
	ctx := context.Background()
	user := &models.User{}

	err := r.DB.Database(mongoDatabase).Collection("users").
		FindOne(ctx, bson.M{"username": username}).Decode(user)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (r *MongoUserRepo) ListUsers() ([]models.User, error) {
	ctx := context.Background()

	cur, err := r.DB.Database(mongoDatabase).Collection("users").
		Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes the user's POIs first and the user document last. The
// driver offers no multi-document transaction on standalone deployments, so
// a failure between the two deletes surfaces as an error with the user row
// still present; re-running the delete completes the cascade.
func (r *MongoUserRepo) DeleteUser(id int64) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	err := db.Collection("users").FindOne(ctx, bson.M{"_id": id}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return errs.ErrNotFound
		}
		return err
	}

	if _, err := db.Collection("pois").DeleteMany(ctx, bson.M{"owner_id": id}); err != nil {
		return err
	}
	res, err := db.Collection("users").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *MongoUserRepo) HasAdmin() (bool, error) {
	ctx := context.Background()

	count, err := r.DB.Database(mongoDatabase).Collection("users").
		CountDocuments(ctx, bson.M{"role": models.RoleAdmin}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
