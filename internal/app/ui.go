// Package app wires the lookup, validation and bookmark components together
// behind a pluggable UI surface. It owns the single-flight lookup discipline,
// the current on-screen record and the bookmark edit session.
package app

import "github.com/ipmark/ipmark/internal/ipinfo"

// UI is the presentation surface the coordinator drives. Implementations
// render however they like (console, widget toolkit, tests); the coordinator
// only ever asks for these operations.
//
// All calls happen on the goroutine that runs the coordinator, never from a
// background task.
type UI interface {
	// RenderInfo shows the given record in the info panel; nil clears it.
	RenderInfo(rec *ipinfo.Record)

	// RenderMap centers the map on the given position; nil shows the
	// placeholder instead.
	RenderMap(pos *ipinfo.Coordinates)

	// RenderBookmarks redraws the bookmark list. editing is the index of
	// the row in inline-edit mode, or -1 when none is.
	RenderBookmarks(list []ipinfo.Record, editing int)

	// SetStatus updates the status surface.
	SetStatus(text string)

	// Confirm asks a yes/no question and reports the answer.
	Confirm(question string) bool

	// Warn shows a non-blocking warning.
	Warn(text string)

	// Error shows a blocking error.
	Error(text string)
}
