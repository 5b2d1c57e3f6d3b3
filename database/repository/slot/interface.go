package slotRepo

import (
	"context"
	"errors"

	"nutrify/database"
	"nutrify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no slot exists for an id.
var ErrNotFound = errors.New("slot not found")

// Repository stores the administratively maintained list of open
// consultation slots.
type Repository interface {
	List(ctx context.Context) ([]models.AvailableSlot, error)
	Create(ctx context.Context, slot models.AvailableSlot) (*models.AvailableSlot, error)
	Delete(ctx context.Context, id string) error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo returns a Repository backed by MongoDB.
func NewMongoSlotRepo() Repository {
	db := database.MongoClient.Database("nutrify")
	return &mongoSlotRepo{
		coll: db.Collection("slots"),
	}
}
