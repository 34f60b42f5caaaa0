package models

import "time"

// ConsentStatus is the user's storage consent decision.
type ConsentStatus string

const (
	ConsentUnset    ConsentStatus = ""
	ConsentAccepted ConsentStatus = "accepted"
	ConsentDeclined ConsentStatus = "declined"
)

// ConsentTTL is how long a consent decision is considered current.
const ConsentTTL = 365 * 24 * time.Hour

// ConsentRecord is the stored consent decision.
type ConsentRecord struct {
	Status    ConsentStatus `json:"status"`
	Timestamp *time.Time    `json:"timestamp,omitempty"`
	IsExpired bool          `json:"isExpired"`
}
