package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/minesweeper/board"
	"github.com/katalvlaran/minesweeper/cell"
	"github.com/katalvlaran/minesweeper/gridgraph"
)

// ErrUnknownEvent is returned by Dispatch for an unrecognized event kind.
var ErrUnknownEvent = errors.New("game: unknown event")

// Display limits for the counters.
const (
	MinRemainingDisplay = -99
	MaxSecondsDisplay   = 999
)

// Status is the session state.
type Status int

const (
	NotStarted Status = iota
	Playing
	Won
	Lost
)

var statusNames = [...]string{"not-started", "playing", "won", "lost"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(statusNames) {
		return nil, fmt.Errorf("game: unknown status %d", int(s))
	}
	return []byte(statusNames[s]), nil
}

// Face is the look of the restart button.
type Face int

const (
	// Smile is the resting face.
	Smile Face = iota
	// Worried shows while a hidden cell is pressed.
	Worried
	// Dead shows after a loss.
	Dead
)

var faceNames = [...]string{"smile", "worried", "dead"}

func (f Face) String() string {
	if f < 0 || int(f) >= len(faceNames) {
		return "unknown"
	}
	return faceNames[f]
}

// MarshalText encodes the face by name.
func (f Face) MarshalText() ([]byte, error) {
	if f < 0 || int(f) >= len(faceNames) {
		return nil, fmt.Errorf("game: unknown face %d", int(f))
	}
	return []byte(faceNames[f]), nil
}

// Recorder stores winning times. *highscore.Store implements it.
type Recorder interface {
	TrySubmit(name string, seconds int) (bool, error)
}

// Outcome describes what one Dispatch did.
type Outcome struct {
	// Status after the event.
	Status Status
	// Pos is the cell under the event; OnBoard is false when it missed.
	Pos     gridgraph.Pos
	OnBoard bool
	// Reveal is set for reveals, Flag for flag toggles, Chord for chords.
	Reveal cell.RevealResult
	Flag   cell.FlagResult
	Chord  board.ChordOutcome
	// Exploded is the mine that ended the game, when Status is Lost.
	Exploded gridgraph.Pos
	// NewHighscore reports that a win entered the table.
	NewHighscore bool
	// SubmitErr carries a Recorder failure; the session itself is unaffected.
	SubmitErr error
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces time.Now, for tests and replays.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSeed makes every board of the session reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRecorder sets where winning times go. Without one, wins are not recorded.
func WithRecorder(r Recorder) Option {
	return func(s *Session) {
		s.recorder = r
	}
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}
