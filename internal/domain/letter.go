package domain

import "time"

// LetterFilter narrows a letter listing.
type LetterFilter struct {
	LetterType string
	Printed    *bool
	Limit      int
	Offset     int
}

// Letter lifecycle event names published on the signal channel.
const (
	EventLetterCreated = "letter.created"
	EventLetterPrinted = "letter.printed"
	EventLetterDeleted = "letter.deleted"
)

// LetterEvent is broadcast whenever a letter changes state.
type LetterEvent struct {
	Type            string    `json:"type"`
	LetterID        int64     `json:"letter_id"`
	ReferenceNumber string    `json:"reference_number"`
	Timestamp       time.Time `json:"timestamp"`
}
