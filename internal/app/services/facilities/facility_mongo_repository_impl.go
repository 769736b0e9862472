package facilities

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

type FacilityMongoRepository struct {
	Collection *mongo.Collection
}

func NewFacilityMongoRepository(db *mongo.Client, dbName string) contracts.FacilityRepository {
	return &FacilityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionFacilities),
	}
}

func (r *FacilityMongoRepository) CreateFacility(ctx context.Context, facility *models.Facility) (string, error) {
	if facility.ID == "" {
		facility.ID = uuid.NewString()
	}
	_, err := r.Collection.InsertOne(ctx, facility)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrEmailAlreadyExist(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return facility.ID, nil
}

func (r *FacilityMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Facility, error) {
	var facility models.Facility
	err := r.Collection.FindOne(ctx, bson.M{"email": email, "deletedAt": nil}).Decode(&facility)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &facility, nil
}

func (r *FacilityMongoRepository) FindByID(ctx context.Context, facilityID string) (*models.Facility, error) {
	var facility models.Facility
	err := r.Collection.FindOne(ctx, bson.M{"_id": facilityID, "deletedAt": nil}).Decode(&facility)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &facility, nil
}

func (r *FacilityMongoRepository) FindAll(ctx context.Context) ([]models.Facility, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"deletedAt": nil})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var facilities []models.Facility
	if err := cursor.All(ctx, &facilities); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return facilities, nil
}

func (r *FacilityMongoRepository) UpdateFacility(ctx context.Context, facility *models.Facility) error {
	facility.SetUpdatedAt()
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": facility.ID}, bson.M{"$set": facility})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrFacilityNotExist(nil)
	}
	return nil
}

func (r *FacilityMongoRepository) SetEnabled(ctx context.Context, facilityID string, enabled bool) error {
	facility := &models.Facility{}
	facility.SetUpdatedAt()
	result, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": facilityID, "deletedAt": nil},
		bson.M{"$set": bson.M{"enabled": enabled, "updatedAt": facility.UpdatedAt}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrFacilityNotExist(nil)
	}
	return nil
}
