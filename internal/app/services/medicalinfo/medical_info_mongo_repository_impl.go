package medicalinfo

import (
	"context"
	"yuktah-service/internal/app/contracts"
	"yuktah-service/internal/app/models"
	"yuktah-service/internal/pkg/constvars"
	"yuktah-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MedicalInfoMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicalInfoMongoRepository(db *mongo.Client, dbName string) contracts.MedicalInfoRepository {
	return &MedicalInfoMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicalInfo),
	}
}

// UpsertByPatientID replaces the snapshot document keyed by patient id,
// inserting it on first save.
func (r *MedicalInfoMongoRepository) UpsertByPatientID(ctx context.Context, info *models.MedicalInfo) error {
	info.SetUpdatedAt()
	update := bson.M{
		"$set": bson.M{
			"bloodGroup":            info.BloodGroup,
			"bloodGroupOther":       info.BloodGroupOther,
			"allergies":             info.Allergies,
			"allergiesOther":        info.AllergiesOther,
			"medications":           info.Medications,
			"medicationsOther":      info.MedicationsOther,
			"emergencyContact":      info.EmergencyContact,
			"emergencyContactOther": info.EmergencyContactOther,
			"updatedAt":             info.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":       uuid.NewString(),
			"patientId": info.PatientID,
			"createdAt": info.UpdatedAt,
		},
	}
	_, err := r.Collection.UpdateOne(ctx,
		bson.M{"patientId": info.PatientID},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *MedicalInfoMongoRepository) FindByPatientID(ctx context.Context, patientID string) (*models.MedicalInfo, error) {
	var info models.MedicalInfo
	err := r.Collection.FindOne(ctx, bson.M{"patientId": patientID}).Decode(&info)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &info, nil
}
