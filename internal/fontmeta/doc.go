package fontmeta

// Package fontmeta reads human-readable names from the `name` table of
// TrueType/OpenType fonts and font collections. Parsing and validation are
// delegated to golang.org/x/image/font/sfnt; the raw record walk only lists
// every name record so that language-specific names are not hidden behind
// the first English one.
