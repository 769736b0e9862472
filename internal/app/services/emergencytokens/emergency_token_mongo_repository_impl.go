package emergencytokens

import (
	"context"
	"time"
	"yuktah-service/internal/app/contracts"
	"yuktah-service/internal/app/models"
	"yuktah-service/internal/pkg/constvars"
	"yuktah-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type EmergencyTokenMongoRepository struct {
	Collection *mongo.Collection
}

func NewEmergencyTokenMongoRepository(db *mongo.Client, dbName string) contracts.EmergencyTokenRepository {
	return &EmergencyTokenMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionEmergencyTokens),
	}
}

func (r *EmergencyTokenMongoRepository) FindActiveByPatientID(ctx context.Context, patientID string) ([]models.EmergencyToken, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID, "active": true})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var tokens []models.EmergencyToken
	if err := cursor.All(ctx, &tokens); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return tokens, nil
}

// DeactivateAllByPatientID is a single atomic UpdateMany. On its own it does
// not close the Issue race (two callers can both deactivate and then both
// insert); the partial unique index on active tokens rejects the second
// insert, and Issue re-runs the rotation.
func (r *EmergencyTokenMongoRepository) DeactivateAllByPatientID(ctx context.Context, patientID string) (int64, error) {
	now := time.Now()
	result, err := r.Collection.UpdateMany(ctx,
		bson.M{"patientId": patientID, "active": true},
		bson.M{"$set": bson.M{"active": false, "deactivatedAt": now}},
	)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

func (r *EmergencyTokenMongoRepository) CreateToken(ctx context.Context, token *models.EmergencyToken) error {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	_, err := r.Collection.InsertOne(ctx, token)
	if err != nil {
		// The partial unique index on {patientId} where active=true turns a
		// lost Issue race into a duplicate-key error instead of a second
		// active token.
		if mongo.IsDuplicateKeyError(err) {
			return contracts.ErrActiveTokenExists
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *EmergencyTokenMongoRepository) FindActiveByToken(ctx context.Context, token string) (*models.EmergencyToken, error) {
	var emergencyToken models.EmergencyToken
	err := r.Collection.FindOne(ctx, bson.M{"token": token, "active": true}).Decode(&emergencyToken)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &emergencyToken, nil
}
