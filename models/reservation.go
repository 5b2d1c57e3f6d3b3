package models

import "time"

// Reservation statuses. Transitions are unrestricted; the administrator may
// move a reservation between any two statuses.
const (
	ReservationConfirmed = "confirmed"
	ReservationPending   = "pending"
	ReservationCancelled = "cancelled"
)

// ValidReservationStatus reports whether s is one of the known statuses.
func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationConfirmed, ReservationPending, ReservationCancelled:
		return true
	}
	return false
}

// Reservation records a client's claim on a consultation slot. DotaznikID
// links back to the questionnaire record's session identifier. The slot list
// and the reservation list are maintained independently; there is no atomic
// linkage between them.
type Reservation struct {
	ID         string    `bson:"id" json:"id"`
	DotaznikID string    `bson:"dotaznikId" json:"dotaznikId"`
	UserEmail  string    `bson:"userEmail" json:"userEmail"`
	UserName   string    `bson:"userName" json:"userName"`
	Date       string    `bson:"date" json:"date"`
	Time       string    `bson:"time" json:"time"`
	Service    string    `bson:"service" json:"service"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// ReservationInput is the client-supplied part of a new reservation.
type ReservationInput struct {
	DotaznikID string `json:"dotaznikId"`
	UserEmail  string `json:"userEmail"`
	UserName   string `json:"userName"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Service    string `json:"service"`
}
