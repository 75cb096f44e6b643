package domain

import "time"

// CycleStats holds statistics about one full polling cycle.
type CycleStats struct {
	Handles     int
	Fetched     int
	New         int
	Delivered   int
	Quarantined int
	Skipped     int
	Errors      int
	Duration    time.Duration
}

// AuthFailure is the persisted snapshot of the most recent account-wide
// authorization failure, overwritten wholesale on each failure or
// resolution. It is consulted at startup to decide whether to retry
// login, wipe the cached session, or fail fast.
type AuthFailure struct {
	Errored   bool   `json:"error"`
	Message   string `json:"message"`
	Cookies   string `json:"cookies"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	ForcePush string `json:"force_push"`
}
