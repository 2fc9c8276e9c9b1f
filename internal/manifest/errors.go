package manifest

import "errors"

var (
	// ErrRootNotFound is returned when the audio root does not exist.
	ErrRootNotFound = errors.New("audio root not found")

	// ErrRootNotDir is returned when the audio root is not a directory.
	ErrRootNotDir = errors.New("audio root is not a directory")

	// ErrStale is returned when a written manifest differs from a fresh scan.
	ErrStale = errors.New("manifest is stale")
)
