package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"nutrify/models"

	"github.com/hibiken/asynq"
)

const TypeReservationReminder = "reservation:reminder"

// reminderLeadTime is how far before the consultation the reminder email goes
// out.
const reminderLeadTime = 24 * time.Hour

// ReminderPayload is the queued reminder task body.
type ReminderPayload struct {
	ReservationID string `json:"reservationId"`
	UserEmail     string `json:"userEmail"`
	UserName      string `json:"userName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Service       string `json:"service"`
}

// NewReminderTask builds the reminder task for a reservation along with the
// moment it should fire. Returns ok=false when the consultation is too close
// for a reminder to make sense.
func NewReminderTask(reservation *models.Reservation) (*asynq.Task, time.Time, bool, error) {
	startsAt, err := time.ParseInLocation("2006-01-02 15:04", reservation.Date+" "+reservation.Time, time.Local)
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("reminder: parse reservation time: %w", err)
	}

	fireAt := startsAt.Add(-reminderLeadTime)
	if !fireAt.After(time.Now()) {
		return nil, time.Time{}, false, nil
	}

	payload, err := json.Marshal(ReminderPayload{
		ReservationID: reservation.ID,
		UserEmail:     reservation.UserEmail,
		UserName:      reservation.UserName,
		Date:          reservation.Date,
		Time:          reservation.Time,
		Service:       reservation.Service,
	})
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("reminder: marshal payload: %w", err)
	}

	return asynq.NewTask(TypeReservationReminder, payload), fireAt, true, nil
}
