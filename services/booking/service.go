package booking

import (
	"context"
	"errors"
	"sort"
	"strings"

	"nutrify/cron"
	reservationRepo "nutrify/database/repository/reservation"
	slotRepo "nutrify/database/repository/slot"
	"nutrify/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation. Reminders is the
// asynq client for scheduling reminder emails; a nil client disables them.
type DefaultBookingService struct {
	Slots        slotRepo.Repository
	Reservations reservationRepo.Repository
	Reminders    *asynq.Client
	Logger       *zap.Logger
}

// ListSlots returns all slots ordered by (date, time).
func (s *DefaultBookingService) ListSlots(ctx context.Context) ([]models.AvailableSlot, error) {
	slots, err := s.Slots.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		return slots[i].Time < slots[j].Time
	})
	return slots, nil
}

// CreateSlot adds an open slot, rejecting an exact (date, time) duplicate.
func (s *DefaultBookingService) CreateSlot(ctx context.Context, date, timeOfDay string) (*models.AvailableSlot, error) {
	date = strings.TrimSpace(date)
	timeOfDay = strings.TrimSpace(timeOfDay)
	if date == "" || timeOfDay == "" {
		return nil, &InvalidInputError{Message: "date and time are required"}
	}

	existing, err := s.Slots.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, slot := range existing {
		if slot.Date == date && slot.Time == timeOfDay {
			return nil, NewConflictError("slot %s %s already exists", date, timeOfDay)
		}
	}

	return s.Slots.Create(ctx, models.AvailableSlot{
		Date:      date,
		Time:      timeOfDay,
		Available: true,
	})
}

func (s *DefaultBookingService) DeleteSlot(ctx context.Context, id string) error {
	if err := s.Slots.Delete(ctx, id); err != nil {
		if errors.Is(err, slotRepo.ErrNotFound) {
			return &NotFoundError{Resource: "slot", ID: id}
		}
		return err
	}
	return nil
}

func (s *DefaultBookingService) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	return s.Reservations.List(ctx)
}

// CreateReservation books a slot for a client. The conflict check scans all
// reservations for an equal (date, time) pair regardless of status, so a
// cancelled reservation still blocks the slot.
func (s *DefaultBookingService) CreateReservation(ctx context.Context, input models.ReservationInput) (*models.Reservation, error) {
	if strings.TrimSpace(input.UserEmail) == "" || strings.TrimSpace(input.UserName) == "" ||
		strings.TrimSpace(input.Date) == "" || strings.TrimSpace(input.Time) == "" {
		return nil, &InvalidInputError{Message: "userName, userEmail, date and time are required"}
	}

	existing, err := s.Reservations.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range existing {
		if r.Date == input.Date && r.Time == input.Time {
			return nil, NewConflictError("slot %s %s is already reserved", input.Date, input.Time)
		}
	}

	reservation, err := s.Reservations.Create(ctx, models.Reservation{
		DotaznikID: strings.TrimSpace(input.DotaznikID),
		UserEmail:  strings.TrimSpace(input.UserEmail),
		UserName:   strings.TrimSpace(input.UserName),
		Date:       input.Date,
		Time:       input.Time,
		Service:    strings.TrimSpace(input.Service),
		Status:     models.ReservationPending,
	})
	if err != nil {
		return nil, err
	}

	s.scheduleReminder(reservation)

	s.Logger.Info("booking: reservation created",
		zap.String("id", reservation.ID),
		zap.String("date", reservation.Date),
		zap.String("time", reservation.Time))
	return reservation, nil
}

// UpdateReservationStatus sets a reservation's status. Any transition between
// known statuses is allowed, including cancelled back to confirmed.
func (s *DefaultBookingService) UpdateReservationStatus(ctx context.Context, id, status string) (*models.Reservation, error) {
	if !models.ValidReservationStatus(status) {
		return nil, &InvalidInputError{Message: "status must be confirmed, pending or cancelled"}
	}

	reservation, err := s.Reservations.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			return nil, &NotFoundError{Resource: "reservation", ID: id}
		}
		return nil, err
	}
	return reservation, nil
}

// scheduleReminder enqueues the day-before reminder email. Best-effort: a
// missing queue client or an enqueue failure only logs.
func (s *DefaultBookingService) scheduleReminder(reservation *models.Reservation) {
	if s.Reminders == nil {
		return
	}

	task, fireAt, ok, err := cron.NewReminderTask(reservation)
	if err != nil {
		s.Logger.Warn("booking: reminder task build failed",
			zap.String("reservationId", reservation.ID), zap.Error(err))
		return
	}
	if !ok {
		return
	}

	if _, err := s.Reminders.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		s.Logger.Warn("booking: reminder enqueue failed",
			zap.String("reservationId", reservation.ID), zap.Error(err))
	}
}
