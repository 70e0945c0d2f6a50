package beatmap

import "errors"

// Sentinel errors
var (
	// ErrInvalidBeatmap rejects beat times that are negative, non-finite or not strictly increasing
	ErrInvalidBeatmap = errors.New("invalid beatmap")

	// ErrMissingBeatmap is diagnostic only: a song with zero beats is valid and inert
	ErrMissingBeatmap = errors.New("beatmap has no beats")
)
