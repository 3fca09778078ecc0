package constants

// Redis key formats
const (
	// Sweep leader locks, one per background job
	KeySweepLock = "sweep:lock:%s" // Format: sweep:lock:{job_name}
)

// Background job names
const (
	JobTripStatusSweep   = "trip-status-sweep"
	JobPendingAutoCancel = "pending-auto-cancel"
)
