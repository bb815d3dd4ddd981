// FILE: database/repository/scheduler/indexes.go
package schedulerRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the appointments collection.
// The partial unique index turns any race the conditional write misses into a
// rejected duplicate.
func (repo *MongoSchedulerRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on appointment ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Patient listing (newest first)
		{
			Keys:    bson.D{{Key: "patientId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("patient_created_idx"),
		},
		// Doctor listing
		{
			Keys:    bson.D{{Key: "doctorId", Value: 1}, {Key: "slotDate", Value: 1}},
			Options: options.Index().SetName("doctor_date_idx"),
		},
		// At most one Booked appointment per (doctor, date, time)
		{
			Keys: bson.D{
				{Key: "doctorId", Value: 1},
				{Key: "slotDate", Value: 1},
				{Key: "slotTime", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_booked_slot").
				SetPartialFilterExpression(bson.M{"status": models.StatusBooked}),
		},
	}

	_, err := repo.appointmentColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
