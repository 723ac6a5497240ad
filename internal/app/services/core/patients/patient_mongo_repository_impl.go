package patients

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

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (r *PatientMongoRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	return r.findWithFilter(ctx, bson.M{})
}

func (r *PatientMongoRepository) FindByAssignedDoctor(ctx context.Context, doctorID string) ([]models.Patient, error) {
	return r.findWithFilter(ctx, bson.M{constvars.MongoFieldAssignedDoctorID: doctorID})
}

// findWithFilter always sorts by creation time descending so the most
// recently registered patients come first.
func (r *PatientMongoRepository) findWithFilter(ctx context.Context, filter bson.M) ([]models.Patient, error) {
	opts := options.Find().SetSort(bson.D{{Key: constvars.MongoFieldCreatedAt, Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	patientList := make([]models.Patient, 0)
	if err := cursor.All(ctx, &patientList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patientList, nil
}

func (r *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var patient models.Patient
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) FindByClinicPatientID(ctx context.Context, clinicPatientID string) (*models.Patient, error) {
	var patient models.Patient
	err := r.Collection.FindOne(ctx, bson.M{"patientId": clinicPatientID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) CreatePatient(ctx context.Context, patientModel *models.Patient) (string, error) {
	result, err := r.Collection.InsertOne(ctx, patientModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// UpdatePatientFields merges the given fields into the stored document and
// refreshes the update timestamp in the same write.
func (r *PatientMongoRepository) UpdatePatientFields(ctx context.Context, patientID string, fields map[string]interface{}) error {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": stampUpdatedAt(fields)}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// stampUpdatedAt adds the update timestamp to a partial update document so
// every $set refreshes updatedAt in the same write.
func stampUpdatedAt(fields map[string]interface{}) map[string]interface{} {
	fields[constvars.MongoFieldUpdatedAt] = time.Now()
	return fields
}
