package reservationRepo

import (
	"context"
	"errors"

	"nutrify/database"
	"nutrify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no reservation exists for an id.
var ErrNotFound = errors.New("reservation not found")

// Repository stores consultation reservations. Conflict checking lives in the
// booking service as a linear scan over List; the store enforces nothing.
type Repository interface {
	List(ctx context.Context) ([]models.Reservation, error)
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	Create(ctx context.Context, reservation models.Reservation) (*models.Reservation, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Reservation, error)
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo returns a Repository backed by MongoDB.
func NewMongoReservationRepo() Repository {
	db := database.MongoClient.Database("nutrify")
	return &mongoReservationRepo{
		coll: db.Collection("reservations"),
	}
}
