// File: database/repository/scheduler/scheduler_mongo.go
package schedulerRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/config"
	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSchedulerRepo implements SchedulerRepository against the doctors and
// appointments collections.
type MongoSchedulerRepo struct {
	doctorColl      *mongo.Collection
	appointmentColl *mongo.Collection
}

// NewMongoSchedulerRepo constructs a new MongoDB SchedulerRepository.
func NewMongoSchedulerRepo() *MongoSchedulerRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoSchedulerRepo{
		doctorColl:      db.Collection("doctors"),
		appointmentColl: db.Collection("appointments"),
	}
}

func (repo *MongoSchedulerRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := repo.appointmentColl.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

func (repo *MongoSchedulerRepo) GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return repo.list(ctx, bson.M{"patientId": patientID})
}

func (repo *MongoSchedulerRepo) list(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.appointmentColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}
