package model

import "time"

// Feedback is a single customer review of a service.
type Feedback struct {
	ID        int64
	Rating    int
	Comment   string
	Service   string
	Timestamp time.Time
}
