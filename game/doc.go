// Package game runs one Minesweeper session: it maps input events to board
// positions, applies click semantics, keeps flag counters and the timer,
// decides win and loss, and submits winning times to a Recorder.
//
// State machine
//
//	NotStarted ──first primary/double click──▶ Playing ──mine hit──▶ Lost
//	                                              │
//	                                              └─all mines flagged, no wrong flags──▶ Won
//
// The win rule is checked after every board event, so a board on which no
// mine could be placed is won by its opening reveal. Restart returns to
// NotStarted from any state with a fresh board and zeroed counters. Won and
// Lost ignore board input.
//
// Front ends that only see raw button releases call ReleasePrimary; the
// session tells single from double clicks with its double-click window.
//
// Timer
//
//	Elapsed time accumulates wall-clock deltas between Tick calls, and only
//	while Playing without an overlay shown. Pauses never count.
//
// Rendering
//
//	Snapshot returns everything a front end draws: per-cell views, the
//	remaining-mine counter (clamped at -99), elapsed seconds (clamped at
//	999), status and face.
package game
