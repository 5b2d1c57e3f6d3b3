package models

import "time"

// AvailableSlot is one bookable consultation window, created by the
// administrator. Date is "YYYY-MM-DD" and Time is "HH:MM"; the pair is the
// slot's identity for conflict checks.
type AvailableSlot struct {
	ID        string    `bson:"id" json:"id"`
	Date      string    `bson:"date" json:"date"`
	Time      string    `bson:"time" json:"time"`
	Available bool      `bson:"available" json:"available"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
