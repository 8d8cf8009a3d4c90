package model

// Package model defines the data structures shared across the app: loaded
// font files with their candidate names, file statuses, descriptive name
// details and rename results. Structures are designed for direct binding in
// the UI and explicit state transitions.
