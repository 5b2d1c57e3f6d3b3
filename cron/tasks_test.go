package cron

import (
	"encoding/json"
	"testing"
	"time"

	"nutrify/models"
)

func TestNewReminderTask(t *testing.T) {
	startsAt := time.Now().Add(72 * time.Hour)
	res := &models.Reservation{
		ID:        "res-1",
		UserEmail: "jana@example.com",
		UserName:  "Jana Nováková",
		Date:      startsAt.Format("2006-01-02"),
		Time:      startsAt.Format("15:04"),
		Service:   "konzultace",
	}

	task, fireAt, ok, err := NewReminderTask(res)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("reservation three days out should get a reminder")
	}
	if task.Type() != TypeReservationReminder {
		t.Errorf("task type = %q", task.Type())
	}

	var payload ReminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.ReservationID != "res-1" || payload.UserEmail != "jana@example.com" {
		t.Errorf("payload = %+v", payload)
	}

	lead := startsAt.Sub(fireAt)
	if lead < 23*time.Hour || lead > 25*time.Hour {
		t.Errorf("reminder fires %v before the consultation, want about 24h", lead)
	}
}

func TestNewReminderTaskTooClose(t *testing.T) {
	startsAt := time.Now().Add(2 * time.Hour)
	res := &models.Reservation{
		ID:   "res-2",
		Date: startsAt.Format("2006-01-02"),
		Time: startsAt.Format("15:04"),
	}

	_, _, ok, err := NewReminderTask(res)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("a consultation within the lead time should get no reminder")
	}
}

func TestNewReminderTaskBadTime(t *testing.T) {
	res := &models.Reservation{ID: "res-3", Date: "zítra", Time: "ráno"}

	_, _, _, err := NewReminderTask(res)
	if err == nil {
		t.Error("unparseable reservation time should error")
	}
}
