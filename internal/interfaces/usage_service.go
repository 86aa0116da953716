package interfaces

// UsageService enforces the daily AI-call allowance
type UsageService interface {
	// CanMakeCall reports whether another AI call is allowed today
	CanMakeCall() (bool, error)

	// RecordCall increments today's counter
	RecordCall() error

	// Remaining returns how many calls are left today
	Remaining() (int, error)

	// Limit returns the configured daily allowance
	Limit() int
}
