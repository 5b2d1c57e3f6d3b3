package reservationRepo

import (
	"context"
	"errors"
	"time"

	"nutrify/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// List returns every reservation.
func (r *mongoReservationRepo) List(ctx context.Context) ([]models.Reservation, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// GetByID returns a reservation by id, or ErrNotFound.
func (r *mongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&reservation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

// Create inserts a new reservation and returns it with its generated id.
func (r *mongoReservationRepo) Create(ctx context.Context, reservation models.Reservation) (*models.Reservation, error) {
	if reservation.ID == "" {
		reservation.ID = uuid.New().String()
	}
	reservation.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// UpdateStatus sets the status of a reservation and returns the updated
// document, or ErrNotFound.
func (r *mongoReservationRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Reservation, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}
