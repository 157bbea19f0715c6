// Package cell models a single board square and resolves one action on it.
//
// A Cell is created empty, receives its mine and adjacency count once while
// mines are placed, and then only changes through ToggleFlag, Reveal and the
// forced reveals used when a game ends.
//
// Results
//
//   - ToggleFlag reports a FlagResult so the caller can keep flag counters.
//   - Reveal reports a RevealResult: Blocked, HitMine, NumberedStop or
//     QueueForFlood. Only a player-initiated reveal can hit a mine; a
//     flood-fill reveal never opens one.
//
// Rendering
//
//	View collapses the state into the single visual the presentation layer
//	draws: hidden, held, flagged, revealed-empty, revealed-numbered(n) or
//	revealed-mine(highlight).
package cell
