package main

import (
	"log"
	"net/http"

	"poimap/auth"
	"poimap/bootstrap"
	"poimap/config"
	"poimap/db"
	"poimap/db/mongo"
	"poimap/db/postgres"
	"poimap/handlers"
	"poimap/repository"
	"poimap/routes"
)

func main() {
	// Load config from .env or environment
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var userRepo repository.UserRepository
	var poiRepo repository.POIRepository
	var categoryRepo repository.CategoryRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		// Run migrations first so the schema the repos expect exists.
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			log.Fatalf("postgres connect: %v", err)
		}
		defer pg.Disconnect()

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		poiRepo = repository.NewPostgresPOIRepo(pg.Conn)
		categoryRepo = repository.NewPostgresCategoryRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			log.Fatalf("mongo connect: %v", err)
		}
		defer mg.Disconnect()

		mongoUsers := repository.NewMongoUserRepo(mg.Client)
		if err := mongoUsers.EnsureIndexes(); err != nil {
			log.Fatalf("mongo indexes: %v", err)
		}
		userRepo = mongoUsers
		poiRepo = repository.NewMongoPOIRepo(mg.Client)
		categoryRepo = repository.NewMongoCategoryRepo(mg.Client)

	default:
		log.Fatalf("DB_TYPE %q not supported", cfg.DBType)
	}

	// Reconcile admin account and category catalog before serving.
	reconciler := &bootstrap.Reconciler{
		Users:         userRepo,
		Categories:    categoryRepo,
		AdminPassword: cfg.AdminPassword,
	}
	if err := reconciler.Run(); err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("token service: %v", err)
	}

	// Handlers
	authHandler := &handlers.AuthHandler{Repo: userRepo, Tokens: tokens}
	poiHandler := &handlers.POIHandler{Repo: poiRepo}
	categoryHandler := &handlers.CategoryHandler{Repo: categoryRepo}
	userHandler := &handlers.UserHandler{Repo: userRepo}

	routes.SetupRoutes(tokens, authHandler, poiHandler, categoryHandler, userHandler)

	log.Printf("server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatal(err)
	}
}
