package medicines

import (
	"context"
	"yuktah-service/internal/app/contracts"
	"yuktah-service/internal/app/models"
	"yuktah-service/internal/pkg/constvars"
	"yuktah-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DispenseMongoRepository struct {
	Collection *mongo.Collection
}

func NewDispenseMongoRepository(db *mongo.Client, dbName string) contracts.DispenseRepository {
	return &DispenseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDispenses),
	}
}

func (r *DispenseMongoRepository) CreateDispense(ctx context.Context, dispense *models.Dispense) (string, error) {
	if dispense.ID == "" {
		dispense.ID = uuid.NewString()
	}
	_, err := r.Collection.InsertOne(ctx, dispense)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return dispense.ID, nil
}

func (r *DispenseMongoRepository) FindByFacilityID(ctx context.Context, facilityID string) ([]models.Dispense, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"facilityId": facilityID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var dispenses []models.Dispense
	if err := cursor.All(ctx, &dispenses); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return dispenses, nil
}
