package domain

import "time"

// Participant represents a person taking part in shared expenses.
type Participant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
