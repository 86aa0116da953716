package models

// APIUsage tracks how many AI calls were made on a given day. The counter
// resets when LastResetDate falls behind the current date.
type APIUsage struct {
	ID            string `json:"id" badgerhold:"key"`
	Count         int    `json:"count"`
	LastResetDate string `json:"lastResetDate"` // YYYY-MM-DD
}
