package labtests

import (
	"context"
	"time"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LabTestMongoRepository struct {
	Collection *mongo.Collection
}

func NewLabTestMongoRepository(db *mongo.Client, dbName string) contracts.LabTestRepository {
	return &LabTestMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionLabTests),
	}
}

func (r *LabTestMongoRepository) FindAll(ctx context.Context) ([]models.LabTest, error) {
	return r.findWithFilter(ctx, bson.M{})
}

func (r *LabTestMongoRepository) FindByDoctor(ctx context.Context, doctorID string) ([]models.LabTest, error) {
	return r.findWithFilter(ctx, bson.M{"doctorId": doctorID})
}

func (r *LabTestMongoRepository) findWithFilter(ctx context.Context, filter bson.M) ([]models.LabTest, error) {
	opts := options.Find().SetSort(bson.D{{Key: constvars.MongoFieldCreatedAt, Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	labTestList := make([]models.LabTest, 0)
	if err := cursor.All(ctx, &labTestList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return labTestList, nil
}

func (r *LabTestMongoRepository) FindByID(ctx context.Context, labTestID string) (*models.LabTest, error) {
	objectID, err := primitive.ObjectIDFromHex(labTestID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var labTest models.LabTest
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&labTest)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &labTest, nil
}

func (r *LabTestMongoRepository) CreateLabTest(ctx context.Context, labTestModel *models.LabTest) (string, error) {
	result, err := r.Collection.InsertOne(ctx, labTestModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *LabTestMongoRepository) UpdateLabTestFields(ctx context.Context, labTestID string, fields map[string]interface{}) error {
	objectID, err := primitive.ObjectIDFromHex(labTestID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	fields[constvars.MongoFieldUpdatedAt] = time.Now()
	update := bson.M{"$set": fields}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
