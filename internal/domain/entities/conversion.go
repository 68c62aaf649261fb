package entities

import "time"

// ConversionEventName enumerates the events reported to the ad platform.

type ConversionEventName string

const (
	ConversionEventLead     ConversionEventName = "Lead"
	ConversionEventPurchase ConversionEventName = "Purchase"
)

// ConversionEvent is one server-side conversion sent to the Facebook
// Conversions API. Email and Phone carry the raw values; the reporter hashes
// them per the platform's user_data contract before anything leaves the
// process.

type ConversionEvent struct {
	Name        ConversionEventName `json:"event_name"`
	EventID     string              `json:"event_id"`
	Time        time.Time           `json:"event_time"`
	Email       string              `json:"-"`
	Phone       string              `json:"-"`
	Value       float64             `json:"value"`
	Currency    string              `json:"currency"`
	Attribution map[string]string   `json:"attribution,omitempty"`
}
