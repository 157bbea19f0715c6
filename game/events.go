package game

import (
	"time"

	"github.com/katalvlaran/minesweeper/board"
)

// EventKind tags an input event.
type EventKind int

const (
	PrimaryClick EventKind = iota + 1
	SecondaryClick
	DoubleClick
	Restart
)

// Event is one discrete input from the presentation layer. At is ignored
// for Restart.
type Event struct {
	Kind EventKind
	At   board.Point
}

// Primary is a primary-button release at pt.
func Primary(pt board.Point) Event { return Event{Kind: PrimaryClick, At: pt} }

// Secondary is a secondary-button press at pt.
func Secondary(pt board.Point) Event { return Event{Kind: SecondaryClick, At: pt} }

// Double is the second primary release of a double click at pt.
func Double(pt board.Point) Event { return Event{Kind: DoubleClick, At: pt} }

// RestartRequested asks for a new game.
func RestartRequested() Event { return Event{Kind: Restart} }

// ClickClassifier turns timestamped primary releases into Primary or
// Double events. A release closer than the window to the previous one is a
// double click, wherever it lands.
type ClickClassifier struct {
	window time.Duration
	last   time.Time
	seen   bool
}

// NewClickClassifier returns a classifier with the given window.
func NewClickClassifier(window time.Duration) *ClickClassifier {
	return &ClickClassifier{window: window}
}

// Release classifies a primary release at time at.
func (c *ClickClassifier) Release(at time.Time, pt board.Point) Event {
	double := c.seen && at.Sub(c.last) < c.window
	c.last, c.seen = at, true
	if double {
		return Double(pt)
	}
	return Primary(pt)
}
