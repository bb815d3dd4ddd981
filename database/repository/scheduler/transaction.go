// File: database/repository/scheduler/transaction.go
package schedulerRepo

import (
	"context"
	"fmt"

	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// slotField addresses one date bucket of the embedded availability index.
// Date keys use the "d-M-yyyy" form and therefore never contain dots.
func slotField(dateKey string) string {
	return "slotsBooked." + dateKey
}

func (repo *MongoSchedulerRepo) ReserveSlot(ctx context.Context, appt *models.Appointment) error {
	return repo.withTransaction(ctx, func(sc mongo.SessionContext) error {
		// Check-and-insert in one conditional write: the update matches
		// only when the label is absent from the date bucket.
		field := slotField(appt.SlotDate)
		filter := bson.M{
			"id":  appt.DoctorID,
			field: bson.M{"$ne": appt.SlotTime},
		}
		update := bson.M{
			"$push": bson.M{field: appt.SlotTime},
		}

		res, err := repo.doctorColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("reserve slot update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			// Either the doctor is unknown or the slot is taken.
			count, err := repo.doctorColl.CountDocuments(sc, bson.M{"id": appt.DoctorID})
			if err != nil {
				return fmt.Errorf("reserve slot doctor lookup failed: %w", err)
			}
			if count == 0 {
				return ErrDoctorNotFound
			}
			return ErrSlotTaken
		}

		if _, err := repo.appointmentColl.InsertOne(sc, appt); err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	})
}

func (repo *MongoSchedulerRepo) ReleaseSlot(ctx context.Context, appointmentID, toStatus string) (*models.Appointment, error) {
	var released models.Appointment

	err := repo.withTransaction(ctx, func(sc mongo.SessionContext) error {
		// Conditional transition: only a Booked appointment may leave the
		// Booked status, and only one caller wins the transition.
		filter := bson.M{"id": appointmentID, "status": models.StatusBooked}
		update := bson.M{"$set": bson.M{"status": toStatus}}

		res, err := repo.appointmentColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("appointment transition failed: %w", err)
		}
		if res.MatchedCount == 0 {
			count, err := repo.appointmentColl.CountDocuments(sc, bson.M{"id": appointmentID})
			if err != nil {
				return fmt.Errorf("appointment lookup failed: %w", err)
			}
			if count == 0 {
				return ErrNotFound
			}
			return ErrNotBooked
		}

		if err := repo.appointmentColl.FindOne(sc, bson.M{"id": appointmentID}).Decode(&released); err != nil {
			return fmt.Errorf("fetch released appointment failed: %w", err)
		}

		pull := bson.M{
			"$pull": bson.M{slotField(released.SlotDate): released.SlotTime},
		}
		if _, err := repo.doctorColl.UpdateOne(sc, bson.M{"id": released.DoctorID}, pull); err != nil {
			return fmt.Errorf("release slot update failed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &released, nil
}

func (repo *MongoSchedulerRepo) withTransaction(ctx context.Context, txnFn func(mongo.SessionContext) error) error {
	client := repo.doctorColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
