package view

import "errors"

var (
	// ErrNoRange is returned by LineGraph when the snapshot has no usable
	// extent axis (collapsed or unbounded range).
	ErrNoRange = errors.New("view: nothing to plot, the reaction cannot progress")

	// ErrUnknownFormat is returned for an image format other than png or svg.
	ErrUnknownFormat = errors.New("view: unknown image format")
)
