package scan

import "context"

// Scanner defines the interface for the background scan service.
type Scanner interface {
	// Start scans files and directories in the background and returns the job ID
	Start(ctx context.Context, paths []string) (string, error)

	// Drain removes and returns all queued events
	Drain() []Event

	// Busy reports whether a scan is running
	Busy() bool

	// Cancel stops the running scan, if any
	Cancel()

	// Forget makes a previously loaded path eligible for loading again
	Forget(path string)

	// Remember marks path as loaded so later scans skip it
	Remember(path string)

	// Reset forgets every loaded path
	Reset()

	// SetExtensions replaces the extensions used when expanding directories
	SetExtensions(exts []string)
}
