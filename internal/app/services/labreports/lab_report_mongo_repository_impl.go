package labreports

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

type LabReportMongoRepository struct {
	Collection *mongo.Collection
}

func NewLabReportMongoRepository(db *mongo.Client, dbName string) contracts.LabReportRepository {
	return &LabReportMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionLabReports),
	}
}

func (r *LabReportMongoRepository) CreateLabReport(ctx context.Context, report *models.LabReport) (string, error) {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	_, err := r.Collection.InsertOne(ctx, report)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return report.ID, nil
}

func (r *LabReportMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.LabReport, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID, "deletedAt": nil})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var reports []models.LabReport
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return reports, nil
}

func (r *LabReportMongoRepository) FindByID(ctx context.Context, reportID string) (*models.LabReport, error) {
	var report models.LabReport
	err := r.Collection.FindOne(ctx, bson.M{"_id": reportID, "deletedAt": nil}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &report, nil
}

func (r *LabReportMongoRepository) UpdateSummary(ctx context.Context, reportID, summary string) error {
	result, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": reportID, "deletedAt": nil},
		bson.M{"$set": bson.M{"summary": summary, "updatedAt": time.Now()}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDocumentNotFound(nil)
	}
	return nil
}

func (r *LabReportMongoRepository) DeleteByID(ctx context.Context, reportID string) error {
	report := &models.LabReport{}
	report.SetDeletedAt()
	result, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": reportID, "deletedAt": nil},
		bson.M{"$set": bson.M{"deletedAt": report.DeletedAt, "updatedAt": report.UpdatedAt}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDocumentNotFound(nil)
	}
	return nil
}
