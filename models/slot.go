package models

// Slot is a concrete offerable appointment window of exactly the requested
// duration. Slots are computed fresh on every request and never persisted.
type Slot struct {
	Start         string `json:"start"`    // ISO-8601 UTC instant
	End           string `json:"end"`      // ISO-8601 UTC instant
	Label         string `json:"label"`    // 24h wall clock in the operating timezone, e.g. "09:00"
	TimezoneLabel string `json:"timezone"` // display string, e.g. "UK Time"
}
