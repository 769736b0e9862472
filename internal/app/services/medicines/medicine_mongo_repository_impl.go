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

type MedicineMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicineMongoRepository(db *mongo.Client, dbName string) contracts.MedicineRepository {
	return &MedicineMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicines),
	}
}

func (r *MedicineMongoRepository) CreateMedicine(ctx context.Context, medicine *models.Medicine) (string, error) {
	if medicine.ID == "" {
		medicine.ID = uuid.NewString()
	}
	_, err := r.Collection.InsertOne(ctx, medicine)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return medicine.ID, nil
}

func (r *MedicineMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Medicine, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID, "deletedAt": nil})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var medicines []models.Medicine
	if err := cursor.All(ctx, &medicines); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medicines, nil
}

func (r *MedicineMongoRepository) FindByID(ctx context.Context, medicineID string) (*models.Medicine, error) {
	var medicine models.Medicine
	err := r.Collection.FindOne(ctx, bson.M{"_id": medicineID, "deletedAt": nil}).Decode(&medicine)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &medicine, nil
}

func (r *MedicineMongoRepository) UpdateMedicine(ctx context.Context, medicine *models.Medicine) error {
	medicine.SetUpdatedAt()
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": medicine.ID}, bson.M{"$set": medicine})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDocumentNotFound(nil)
	}
	return nil
}

func (r *MedicineMongoRepository) DeleteByID(ctx context.Context, medicineID string) error {
	medicine := &models.Medicine{}
	medicine.SetDeletedAt()
	result, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": medicineID, "deletedAt": nil},
		bson.M{"$set": bson.M{"deletedAt": medicine.DeletedAt, "updatedAt": medicine.UpdatedAt}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDocumentNotFound(nil)
	}
	return nil
}
