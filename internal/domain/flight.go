package domain

import "strings"

// SeatsUnknown marks a flight record whose seats field could not be parsed.
// Such flights cannot be booked; a cancellation resets the count outright.
const SeatsUnknown = -1

type Flight struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	PriceCents  int64  `json:"price_cents"`
	Seats       int    `json:"seats"`
}

// NormalizeFlightID upper-cases a flight id; every read and write of the
// inventory file goes through this so lookups stay case-insensitive.
func NormalizeFlightID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
