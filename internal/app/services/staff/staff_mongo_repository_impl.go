package staff

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

type StaffMongoRepository struct {
	Collection *mongo.Collection
}

func NewStaffMongoRepository(db *mongo.Client, dbName string) contracts.StaffRepository {
	return &StaffMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionStaff),
	}
}

func (r *StaffMongoRepository) CreateStaff(ctx context.Context, staff *models.Staff) (string, error) {
	if staff.ID == "" {
		staff.ID = uuid.NewString()
	}
	_, err := r.Collection.InsertOne(ctx, staff)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return staff.ID, nil
}

func (r *StaffMongoRepository) FindByFacilityID(ctx context.Context, facilityID string) ([]models.Staff, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"facilityId": facilityID, "deletedAt": nil})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var staffRecords []models.Staff
	if err := cursor.All(ctx, &staffRecords); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return staffRecords, nil
}

func (r *StaffMongoRepository) FindByID(ctx context.Context, staffID string) (*models.Staff, error) {
	var staffRecord models.Staff
	err := r.Collection.FindOne(ctx, bson.M{"_id": staffID, "deletedAt": nil}).Decode(&staffRecord)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &staffRecord, nil
}

func (r *StaffMongoRepository) UpdateStaff(ctx context.Context, staff *models.Staff) error {
	staff.SetUpdatedAt()
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": staff.ID}, bson.M{"$set": staff})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDocumentNotFound(nil)
	}
	return nil
}

func (r *StaffMongoRepository) DeleteByID(ctx context.Context, staffID string) error {
	staffRecord := &models.Staff{}
	staffRecord.SetDeletedAt()
	result, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": staffID, "deletedAt": nil},
		bson.M{"$set": bson.M{"deletedAt": staffRecord.DeletedAt, "updatedAt": staffRecord.UpdatedAt}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDocumentNotFound(nil)
	}
	return nil
}
