package slotRepo

import (
	"context"
	"time"

	"nutrify/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// List returns every slot. Ordering is left to the service layer.
func (r *mongoSlotRepo) List(ctx context.Context) ([]models.AvailableSlot, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.AvailableSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// Create inserts a new slot and returns it with its generated id.
func (r *mongoSlotRepo) Create(ctx context.Context, slot models.AvailableSlot) (*models.AvailableSlot, error) {
	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	slot.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

// Delete removes a slot by id, or returns ErrNotFound.
func (r *mongoSlotRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
