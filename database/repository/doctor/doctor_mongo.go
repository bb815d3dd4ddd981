// File: database/repository/doctor/doctor_mongo.go
package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/config"
	"medibook/database"
	"medibook/models"
	"medibook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a new MongoDB DoctorRepository.
func NewMongoDoctorRepo() DoctorRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoDoctorRepo{
		coll: db.Collection("doctors"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("doctor repo: failed to ensure indexes: %v", err)
	}
	return repo
}

func (r *mongoDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.Doctor
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch doctor %s: %w", id, err)
	}
	return &doc, nil
}

func (r *mongoDoctorRepo) GetAll(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("error decoding doctors: %w", err)
	}
	return doctors, nil
}

func (r *mongoDoctorRepo) GetBookedSlots(ctx context.Context, id string) (map[string][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc struct {
		SlotsBooked map[string][]string `bson:"slotsBooked"`
	}
	opts := bson.M{"id": id}
	err := r.coll.FindOne(ctx, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booked slots for doctor %s: %w", id, err)
	}
	if doc.SlotsBooked == nil {
		return map[string][]string{}, nil
	}
	return doc.SlotsBooked, nil
}
