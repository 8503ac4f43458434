package models

import "time"

// ReservationTypeDining is the only reservation type the bot produces today.
const ReservationTypeDining = "Dining"

// ReservationRequest is the record handed to the suggestions queue at
// fulfillment time. Slot values are copied as-is; absent slots become empty
// strings. RequestID is generated per submission so the downstream worker can
// trace requests; a retried fulfillment still enqueues a new request.
type ReservationRequest struct {
	RequestID       string    `json:"request_id"`
	ReservationType string    `json:"reservation_type"`
	Location        string    `json:"location"`
	Cuisine         string    `json:"cuisine"`
	DiningDate      string    `json:"dining_date"`
	DiningTime      string    `json:"dining_time"`
	PartySize       string    `json:"party_size"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	SubmittedAt     time.Time `json:"submitted_at"`
}
