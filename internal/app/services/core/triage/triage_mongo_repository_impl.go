package triage

import (
	"context"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TriageMongoRepository struct {
	Collection *mongo.Collection
}

func NewTriageMongoRepository(db *mongo.Client, dbName string) contracts.TriageRepository {
	return &TriageMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTriageAssessments),
	}
}

func (r *TriageMongoRepository) FindAll(ctx context.Context) ([]models.TriageAssessment, error) {
	opts := options.Find().SetSort(bson.D{{Key: constvars.MongoFieldCreatedAt, Value: -1}})

	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	assessmentList := make([]models.TriageAssessment, 0)
	if err := cursor.All(ctx, &assessmentList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return assessmentList, nil
}

func (r *TriageMongoRepository) FindByID(ctx context.Context, assessmentID string) (*models.TriageAssessment, error) {
	objectID, err := primitive.ObjectIDFromHex(assessmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var assessment models.TriageAssessment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&assessment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &assessment, nil
}

func (r *TriageMongoRepository) CreateAssessment(ctx context.Context, assessmentModel *models.TriageAssessment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, assessmentModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}
