package platform

// Package platform contains OS integration glue: revealing files in the
// system file manager, opening fonts with the default viewer, locating the
// per-user font directories and small filesystem helpers.
