// Package watch notices loaded font files that disappear from disk while the
// application is open. It watches the parent directories of tracked files with
// fsnotify and reports removed or moved files in debounced batches.
package watch
