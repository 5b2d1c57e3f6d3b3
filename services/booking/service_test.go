package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"

	reservationRepo "nutrify/database/repository/reservation"
	slotRepo "nutrify/database/repository/slot"
	"nutrify/models"

	"go.uber.org/zap"
)

type fakeSlotRepo struct {
	slots []models.AvailableSlot
	next  int
}

func (r *fakeSlotRepo) List(ctx context.Context) ([]models.AvailableSlot, error) {
	out := make([]models.AvailableSlot, len(r.slots))
	copy(out, r.slots)
	return out, nil
}

func (r *fakeSlotRepo) Create(ctx context.Context, slot models.AvailableSlot) (*models.AvailableSlot, error) {
	r.next++
	slot.ID = fmt.Sprintf("slot-%d", r.next)
	r.slots = append(r.slots, slot)
	return &slot, nil
}

func (r *fakeSlotRepo) Delete(ctx context.Context, id string) error {
	for i, slot := range r.slots {
		if slot.ID == id {
			r.slots = append(r.slots[:i], r.slots[i+1:]...)
			return nil
		}
	}
	return slotRepo.ErrNotFound
}

type fakeReservationRepo struct {
	reservations []models.Reservation
	next         int
}

func (r *fakeReservationRepo) List(ctx context.Context) ([]models.Reservation, error) {
	out := make([]models.Reservation, len(r.reservations))
	copy(out, r.reservations)
	return out, nil
}

func (r *fakeReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	for _, res := range r.reservations {
		if res.ID == id {
			return &res, nil
		}
	}
	return nil, reservationRepo.ErrNotFound
}

func (r *fakeReservationRepo) Create(ctx context.Context, reservation models.Reservation) (*models.Reservation, error) {
	r.next++
	reservation.ID = fmt.Sprintf("res-%d", r.next)
	r.reservations = append(r.reservations, reservation)
	return &reservation, nil
}

func (r *fakeReservationRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Reservation, error) {
	for i := range r.reservations {
		if r.reservations[i].ID == id {
			r.reservations[i].Status = status
			res := r.reservations[i]
			return &res, nil
		}
	}
	return nil, reservationRepo.ErrNotFound
}

func newTestBookingService() (*DefaultBookingService, *fakeSlotRepo, *fakeReservationRepo) {
	slots := &fakeSlotRepo{}
	reservations := &fakeReservationRepo{}
	svc := &DefaultBookingService{
		Slots:        slots,
		Reservations: reservations,
		Logger:       zap.NewNop(),
	}
	return svc, slots, reservations
}

func validInput() models.ReservationInput {
	return models.ReservationInput{
		UserName:  "Jana Nováková",
		UserEmail: "jana@example.com",
		Date:      "2026-09-15",
		Time:      "10:00",
		Service:   "konzultace",
	}
}

func TestListSlotsSorted(t *testing.T) {
	svc, slots, _ := newTestBookingService()
	ctx := context.Background()
	slots.slots = []models.AvailableSlot{
		{ID: "c", Date: "2026-09-16", Time: "09:00"},
		{ID: "a", Date: "2026-09-15", Time: "14:00"},
		{ID: "b", Date: "2026-09-15", Time: "10:00"},
	}

	got, err := svc.ListSlots(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"b", "a", "c"}
	for i, slot := range got {
		if slot.ID != want[i] {
			t.Fatalf("slot order = %v, want b,a,c", got)
		}
	}
}

func TestCreateSlotRejectsDuplicate(t *testing.T) {
	svc, _, _ := newTestBookingService()
	ctx := context.Background()

	slot, err := svc.CreateSlot(ctx, "2026-09-15", "10:00")
	if err != nil {
		t.Fatal(err)
	}
	if !slot.Available {
		t.Error("new slot should be available")
	}

	_, err = svc.CreateSlot(ctx, "2026-09-15", "10:00")
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConflictError, got %v", err)
	}

	// Same time on another date is fine.
	if _, err := svc.CreateSlot(ctx, "2026-09-16", "10:00"); err != nil {
		t.Fatalf("different date should be accepted: %v", err)
	}
}

func TestCreateSlotRequiresDateAndTime(t *testing.T) {
	svc, _, _ := newTestBookingService()

	_, err := svc.CreateSlot(context.Background(), " ", "10:00")
	var ierr *InvalidInputError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected *InvalidInputError, got %v", err)
	}
}

func TestDeleteSlotUnknown(t *testing.T) {
	svc, _, _ := newTestBookingService()

	err := svc.DeleteSlot(context.Background(), "missing")
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
}

func TestCreateReservationConflict(t *testing.T) {
	svc, _, _ := newTestBookingService()
	ctx := context.Background()

	first, err := svc.CreateReservation(ctx, validInput())
	if err != nil {
		t.Fatal(err)
	}
	if first.Status != models.ReservationPending {
		t.Errorf("new reservation status = %q, want pending", first.Status)
	}

	input := validInput()
	input.UserEmail = "petr@example.com"
	_, err = svc.CreateReservation(ctx, input)
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConflictError for the same date and time, got %v", err)
	}
}

func TestCancelledReservationStillBlocksSlot(t *testing.T) {
	svc, _, reservations := newTestBookingService()
	ctx := context.Background()

	first, err := svc.CreateReservation(ctx, validInput())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.UpdateReservationStatus(ctx, first.ID, models.ReservationCancelled); err != nil {
		t.Fatal(err)
	}

	_, err = svc.CreateReservation(ctx, validInput())
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("cancelled reservation must still block its slot, got %v", err)
	}
	if len(reservations.reservations) != 1 {
		t.Errorf("expected a single stored reservation, got %d", len(reservations.reservations))
	}
}

func TestCreateReservationRequiresContact(t *testing.T) {
	svc, _, _ := newTestBookingService()

	input := validInput()
	input.UserEmail = ""
	_, err := svc.CreateReservation(context.Background(), input)
	var ierr *InvalidInputError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected *InvalidInputError, got %v", err)
	}
}

func TestUpdateReservationStatusTransitions(t *testing.T) {
	svc, _, _ := newTestBookingService()
	ctx := context.Background()

	res, err := svc.CreateReservation(ctx, validInput())
	if err != nil {
		t.Fatal(err)
	}

	// Any transition between known statuses is allowed, including
	// resurrecting a cancelled reservation.
	for _, status := range []string{
		models.ReservationConfirmed,
		models.ReservationCancelled,
		models.ReservationConfirmed,
		models.ReservationPending,
	} {
		updated, err := svc.UpdateReservationStatus(ctx, res.ID, status)
		if err != nil {
			t.Fatalf("transition to %s: %v", status, err)
		}
		if updated.Status != status {
			t.Errorf("status = %q, want %q", updated.Status, status)
		}
	}
}

func TestUpdateReservationStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newTestBookingService()

	_, err := svc.UpdateReservationStatus(context.Background(), "res-1", "done")
	var ierr *InvalidInputError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected *InvalidInputError, got %v", err)
	}
}

func TestUpdateReservationStatusUnknownID(t *testing.T) {
	svc, _, _ := newTestBookingService()

	_, err := svc.UpdateReservationStatus(context.Background(), "missing", models.ReservationConfirmed)
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
}
