package main

import (
	"context"
	"log"
	"time"
	"yuktah-service/internal/app/config"
	"yuktah-service/internal/app/drivers/database"
	"yuktah-service/internal/app/models"
	"yuktah-service/internal/pkg/constvars"
	"yuktah-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Creates the indexes the service relies on and seeds the first admin account
// when ADMIN_EMAIL / ADMIN_PASSWORD are set. Safe to run repeatedly.
func main() {
	driverConfig := config.NewDriverConfig()
	mongoClient := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := mongoClient.Database(driverConfig.MongoDB.DbName)

	createIndexes(ctx, db)
	seedAdmin(ctx, db)

	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Fatalf("Error disconnecting MongoDB: %v", err)
	}
	log.Println("Migration finished")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		constvars.MongoCollectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		constvars.MongoCollectionFacilities: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		constvars.MongoCollectionEmergencyTokens: {
			{Keys: bson.D{{Key: "token", Value: 1}}, Options: unique},
			// At most one active token per patient, enforced by the database
			// so two racing Issues cannot both land an active insert.
			{
				Keys: bson.D{{Key: "patientId", Value: 1}},
				Options: options.Index().
					SetUnique(true).
					SetPartialFilterExpression(bson.D{{Key: "active", Value: true}}),
			},
		},
		constvars.MongoCollectionStaff: {
			{Keys: bson.D{{Key: "facilityId", Value: 1}}},
		},
		constvars.MongoCollectionMedicines: {
			{Keys: bson.D{{Key: "patientId", Value: 1}}},
		},
		constvars.MongoCollectionMedicalInfo: {
			{Keys: bson.D{{Key: "patientId", Value: 1}}, Options: unique},
		},
		constvars.MongoCollectionLabReports: {
			{Keys: bson.D{{Key: "patientId", Value: 1}}},
		},
	}

	for collection, indexModels := range indexes {
		names, err := db.Collection(collection).Indexes().CreateMany(ctx, indexModels)
		if err != nil {
			log.Fatalf("Error creating indexes on %s: %v", collection, err)
		}
		log.Printf("Created indexes on %s: %v", collection, names)
	}
}

func seedAdmin(ctx context.Context, db *mongo.Database) {
	email := utils.GetEnvString("ADMIN_EMAIL", "")
	password := utils.GetEnvString("ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	collection := db.Collection(constvars.MongoCollectionUsers)

	count, err := collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		log.Fatalf("Error checking for existing admin: %v", err)
	}
	if count > 0 {
		log.Println("Admin account already exists, skipping seed")
		return
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Error hashing admin password: %v", err)
	}

	admin := &models.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: hashedPassword,
		Name:     "Administrator",
		Role:     constvars.RoleAdmin,
	}
	admin.SetCreatedAtUpdatedAt()

	if _, err := collection.InsertOne(ctx, admin); err != nil {
		log.Fatalf("Error seeding admin account: %v", err)
	}
	log.Printf("Seeded admin account %s", email)
}
