package scan

// Package scan finds font files on disk and reads their names on a
// background worker. Results are queued and drained by the UI on a timer,
// so the UI goroutine never blocks on disk or font parsing.
