package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/minesweeper/board"
	"github.com/katalvlaran/minesweeper/cell"
	"github.com/katalvlaran/minesweeper/config"
	"github.com/katalvlaran/minesweeper/gridgraph"
	"github.com/katalvlaran/minesweeper/highscore"
)

// Session is one running game plus the state that survives restarts
// (configuration, player name, recorder). It is not safe for concurrent use;
// the presentation layer drives it from one loop.
type Session struct {
	cfg   config.Config
	board *board.Board

	status Status
	face   Face

	// mineTotal is the configured count before placement and the placed
	// count after it.
	mineTotal    int
	flaggedMines int
	flaggedEmpty int

	elapsed  time.Duration
	lastTick time.Time
	overlay  bool
	player   string

	clicks   *ClickClassifier
	rng      *rand.Rand
	now      func() time.Time
	recorder Recorder
	log      logrus.FieldLogger
}

// New validates cfg and starts a session in NotStarted.
func New(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	player, err := highscore.NormalizeName(cfg.PlayerName)
	if err != nil {
		return nil, err
	}
	s := &Session{
		cfg:    cfg,
		player: player,
		clicks: NewClickClassifier(cfg.DoubleClickWindow),
		now:    time.Now,
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err = s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// reset installs a fresh board and zeroes everything per game.
func (s *Session) reset() error {
	b, err := board.New(s.cfg.Width, s.cfg.Height,
		board.WithRand(s.rng),
		board.WithLayout(s.cfg.Layout),
		board.WithLogger(s.log),
	)
	if err != nil {
		return fmt.Errorf("game: new board: %w", err)
	}
	s.board = b
	s.status = NotStarted
	s.face = Smile
	s.mineTotal = s.cfg.MineCount
	s.flaggedMines, s.flaggedEmpty = 0, 0
	s.elapsed = 0
	s.lastTick = s.now()
	return nil
}

// Dispatch advances the timer and applies ev.
//
// Board input is ignored after a win or loss, while an overlay is shown,
// and when the event point misses the grid; Outcome.OnBoard tells these
// apart from a real no-op.
func (s *Session) Dispatch(ev Event) (Outcome, error) {
	s.Tick()
	switch ev.Kind {
	case Restart:
		if err := s.reset(); err != nil {
			return Outcome{Status: s.status}, err
		}
		s.log.WithField("board", fmt.Sprintf("%dx%d", s.cfg.Width, s.cfg.Height)).Debug("game restarted")
		return Outcome{Status: s.status}, nil
	case PrimaryClick, SecondaryClick, DoubleClick:
	default:
		return Outcome{Status: s.status}, fmt.Errorf("%w: kind %d", ErrUnknownEvent, int(ev.Kind))
	}

	s.ReleaseHold()
	out := Outcome{Status: s.status}
	if s.status == Won || s.status == Lost || s.overlay {
		return out, nil
	}
	p, ok := s.board.CellAt(ev.At)
	if !ok {
		return out, nil
	}
	out.Pos, out.OnBoard = p, true

	var err error
	switch ev.Kind {
	case PrimaryClick:
		err = s.reveal(p, &out)
	case DoubleClick:
		err = s.chord(p, &out)
	case SecondaryClick:
		err = s.flag(p, &out)
	}
	if err == nil {
		s.checkWin(&out)
	}
	out.Status = s.status
	return out, err
}

// checkWin ends the game once every placed mine carries a flag and no safe
// cell does. A board without mines is won by its first reveal.
func (s *Session) checkWin(out *Outcome) {
	if s.status == Playing && s.flaggedMines == s.mineTotal && s.flaggedEmpty == 0 {
		s.win(out)
	}
}

// ReleasePrimary is a primary-button release at pt, timed by the session
// clock. A release within the configured double-click window of the
// previous one is dispatched as a Double, any other as a Primary.
func (s *Session) ReleasePrimary(pt board.Point) (Outcome, error) {
	return s.Dispatch(s.clicks.Release(s.now(), pt))
}

// start places mines around the first click and starts the clock.
func (s *Session) start(first gridgraph.Pos) error {
	if s.status != NotStarted {
		return nil
	}
	placed, err := s.board.PlaceMines(s.cfg.MineCount, first, s.cfg.EmptyRadius)
	if err != nil {
		return err
	}
	s.mineTotal = placed
	s.status = Playing
	s.lastTick = s.now()
	s.log.WithFields(logrus.Fields{
		"first": first.String(),
		"mines": placed,
	}).Info("game started")
	return nil
}

func (s *Session) reveal(p gridgraph.Pos, out *Outcome) error {
	if err := s.start(p); err != nil {
		return err
	}
	res, err := s.board.Reveal(p)
	if err != nil {
		return err
	}
	out.Reveal = res
	if res == cell.HitMine {
		s.lose(p, out)
	}
	return nil
}

// chord falls back to a plain reveal on anything but a revealed cell.
func (s *Session) chord(p gridgraph.Pos, out *Outcome) error {
	if s.status == NotStarted {
		return s.reveal(p, out)
	}
	c, err := s.board.Cell(p)
	if err != nil {
		return err
	}
	if !c.IsRevealed() {
		return s.reveal(p, out)
	}
	res, err := s.board.Chord(p)
	if err != nil {
		return err
	}
	out.Chord = res.Outcome
	if res.Outcome == board.ChordExploded {
		s.lose(res.Mine, out)
	}
	return nil
}

// flag toggles a flag; flags cannot be placed before the first reveal.
func (s *Session) flag(p gridgraph.Pos, out *Outcome) error {
	if s.status == NotStarted {
		return nil
	}
	res, err := s.board.ToggleFlag(p)
	if err != nil {
		return err
	}
	out.Flag = res
	switch res {
	case cell.MinePlanted:
		s.flaggedMines++
	case cell.MineRemoved:
		s.flaggedMines--
	case cell.EmptyPlanted:
		s.flaggedEmpty++
	case cell.EmptyRemoved:
		s.flaggedEmpty--
	}
	return nil
}

func (s *Session) lose(mine gridgraph.Pos, out *Outcome) {
	s.status = Lost
	s.face = Dead
	s.board.ClearHeld()
	s.board.RevealAllMines()
	_ = s.board.SetHighlight(mine, cell.HighlightLoss)
	out.Exploded = mine
	s.log.WithFields(logrus.Fields{
		"mine":    mine.String(),
		"seconds": int(s.elapsed / time.Second),
	}).Info("game lost")
}

func (s *Session) win(out *Outcome) {
	s.status = Won
	s.face = Smile
	s.board.ClearHeld()
	s.board.RevealAll()
	seconds := int(s.elapsed / time.Second)
	entry := s.log.WithFields(logrus.Fields{
		"player":  s.player,
		"seconds": seconds,
	})
	entry.Info("game won")
	if s.recorder == nil {
		return
	}
	ok, err := s.recorder.TrySubmit(s.player, seconds)
	out.NewHighscore = ok
	if err != nil {
		out.SubmitErr = err
		entry.WithError(err).Warn("highscore not saved")
	}
}

// Tick adds the wall-clock time since the previous Tick while Playing with
// no overlay. The reference point always moves, so paused time is dropped.
func (s *Session) Tick() {
	now := s.now()
	if s.status == Playing && !s.overlay {
		if d := now.Sub(s.lastTick); d > 0 {
			s.elapsed += d
		}
	}
	s.lastTick = now
}

// SetOverlay shows or hides the highscore overlay. While shown the timer is
// paused and board input is ignored.
func (s *Session) SetOverlay(on bool) {
	s.Tick()
	s.overlay = on
}

// ToggleOverlay flips the overlay and returns the new state.
func (s *Session) ToggleOverlay() bool {
	s.SetOverlay(!s.overlay)
	return s.overlay
}

// Overlay reports whether the overlay is shown.
func (s *Session) Overlay() bool { return s.overlay }

// Press marks the hidden cell under pt as held while the primary button is
// down. The face turns Worried unless the cell is flagged.
func (s *Session) Press(pt board.Point) {
	s.ReleaseHold()
	if s.overlay || s.status == Won || s.status == Lost {
		return
	}
	p, ok := s.board.CellAt(pt)
	if !ok {
		return
	}
	c, err := s.board.Cell(p)
	if err != nil || c.IsRevealed() {
		return
	}
	_ = s.board.SetHeld(p)
	if !c.IsFlagged() {
		s.face = Worried
	}
}

// ReleaseHold clears any held cell.
func (s *Session) ReleaseHold() {
	s.board.ClearHeld()
	if s.face == Worried {
		s.face = Smile
	}
}

// SetPlayerName changes the name used for future highscores.
func (s *Session) SetPlayerName(name string) error {
	n, err := highscore.NormalizeName(name)
	if err != nil {
		return err
	}
	s.player = n
	return nil
}

// Player returns the normalized player name.
func (s *Session) Player() string { return s.player }

// Status returns the session state.
func (s *Session) Status() Status { return s.status }

// Face returns the restart button face.
func (s *Session) Face() Face { return s.face }

// Board exposes the current board for read-only use, e.g. debug dumps.
func (s *Session) Board() *board.Board { return s.board }

// Config returns the session configuration.
func (s *Session) Config() config.Config { return s.cfg }

// Elapsed returns the accumulated play time.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// ElapsedSeconds is the timer display value, capped at MaxSecondsDisplay.
func (s *Session) ElapsedSeconds() int {
	return min(int(s.elapsed/time.Second), MaxSecondsDisplay)
}

// RemainingMines is the mine counter: mines minus all flags, right or
// wrong, floored at MinRemainingDisplay.
func (s *Session) RemainingMines() int {
	return max(s.mineTotal-s.flaggedMines-s.flaggedEmpty, MinRemainingDisplay)
}
