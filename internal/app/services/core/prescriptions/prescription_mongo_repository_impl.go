package prescriptions

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

type PrescriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPrescriptionMongoRepository(db *mongo.Client, dbName string) contracts.PrescriptionRepository {
	return &PrescriptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPrescriptions),
	}
}

func (r *PrescriptionMongoRepository) FindAll(ctx context.Context) ([]models.Prescription, error) {
	return r.findWithFilter(ctx, bson.M{})
}

func (r *PrescriptionMongoRepository) FindByDoctor(ctx context.Context, doctorID string) ([]models.Prescription, error) {
	return r.findWithFilter(ctx, bson.M{"doctorId": doctorID})
}

func (r *PrescriptionMongoRepository) FindByStatus(ctx context.Context, status models.PrescriptionStatus) ([]models.Prescription, error) {
	return r.findWithFilter(ctx, bson.M{"status": status})
}

func (r *PrescriptionMongoRepository) findWithFilter(ctx context.Context, filter bson.M) ([]models.Prescription, error) {
	opts := options.Find().SetSort(bson.D{{Key: constvars.MongoFieldCreatedAt, Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	prescriptionList := make([]models.Prescription, 0)
	if err := cursor.All(ctx, &prescriptionList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return prescriptionList, nil
}

func (r *PrescriptionMongoRepository) FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	objectID, err := primitive.ObjectIDFromHex(prescriptionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var prescription models.Prescription
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&prescription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &prescription, nil
}

func (r *PrescriptionMongoRepository) CreatePrescription(ctx context.Context, prescriptionModel *models.Prescription) (string, error) {
	result, err := r.Collection.InsertOne(ctx, prescriptionModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PrescriptionMongoRepository) UpdatePrescriptionFields(ctx context.Context, prescriptionID string, fields map[string]interface{}) error {
	objectID, err := primitive.ObjectIDFromHex(prescriptionID)
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
