package booking

import (
	"context"

	"nutrify/models"
)

// Service coordinates consultation slots and reservations.
//
// The slot list is advisory: a reservation does not transactionally consume a
// slot, and the conflict check is a linear scan between read and insert. Two
// concurrent requests for the same (date, time) can both succeed; correctness
// under concurrent writers is an explicit non-goal.
type Service interface {
	ListSlots(ctx context.Context) ([]models.AvailableSlot, error)
	CreateSlot(ctx context.Context, date, timeOfDay string) (*models.AvailableSlot, error)
	DeleteSlot(ctx context.Context, id string) error

	ListReservations(ctx context.Context) ([]models.Reservation, error)
	CreateReservation(ctx context.Context, input models.ReservationInput) (*models.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id, status string) (*models.Reservation, error)
}
