package tiles

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const DefaultGracePeriod = 3 * time.Second

type State int

const (
	StateActive State = iota
	StateEnded
	StateReturnToMenu
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateEnded:
		return "ended"
	case StateReturnToMenu:
		return "return_to_menu"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeComplete
	OutcomeTimeUp
	OutcomeAbandoned
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeComplete:
		return "complete"
	case OutcomeTimeUp:
		return "time_up"
	case OutcomeAbandoned:
		return "abandoned"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

type SelectResult int

const (
	SelectIgnored SelectResult = iota
	SelectPending
	SelectMatched
	SelectMismatched
)

// Recorder receives the final score of a session.
type Recorder interface {
	Record(score int) ([]int, error)
}

type Option func(*Session)

func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

func WithBoardSize(rows, cols int) Option {
	return func(s *Session) { s.rows, s.cols = rows, cols }
}

func WithMusic(on bool) Option {
	return func(s *Session) { s.musicOn = on }
}

func WithGracePeriod(d time.Duration) Option {
	return func(s *Session) { s.grace = d }
}

// Session is one play-through: timer, selection, score and the end-of-game
// overlay deadline.
type Session struct {
	id    string
	rules Rules
	rec   Recorder

	board     *Board
	selection *Selection
	remaining time.Duration
	score     int
	state     State
	outcome   Outcome
	musicOn   bool
	recorded  bool
	endsAt    time.Time

	rows, cols int
	grace      time.Duration
	rng        *rand.Rand
	now        func() time.Time
	log        zerolog.Logger
}

func NewSession(rules Rules, rec Recorder, opts ...Option) (*Session, error) {
	s := &Session{
		id:      uuid.NewString(),
		rules:   rules,
		rec:     rec,
		rows:    Rows,
		cols:    Cols,
		grace:   DefaultGracePeriod,
		musicOn: true,
		now:     time.Now,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRand(0)
	}
	s.log = s.log.With().Str("session", s.id).Str("mode", rules.Mode.String()).Logger()

	b, err := Generate(rules, s.rows, s.cols, s.rng)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	s.board = b
	s.selection = NewSelection(rules.GroupSize)
	s.remaining = rules.TimeLimit
	s.state = StateActive

	s.log.Info().Dur("time_limit", rules.TimeLimit).Msg("session started")
	return s, nil
}

func (s *Session) ID() string { return s.id }
func (s *Session) Mode() Mode { return s.rules.Mode }
func (s *Session) Rules() Rules { return s.rules }
func (s *Session) Board() *Board { return s.board }
func (s *Session) Selection() []Pos { return s.selection.Cells() }
func (s *Session) Score() int { return s.score }
func (s *Session) Remaining() time.Duration { return s.remaining }
func (s *Session) State() State { return s.state }
func (s *Session) Outcome() Outcome { return s.outcome }
func (s *Session) MusicOn() bool { return s.musicOn }
func (s *Session) GameOver() bool { return s.outcome == OutcomeTimeUp }
func (s *Session) Complete() bool { return s.outcome == OutcomeComplete }

// GraceRemaining is how long the end-of-game overlay stays up.
func (s *Session) GraceRemaining() time.Duration {
	if s.state != StateEnded {
		return 0
	}
	d := s.endsAt.Sub(s.now())
	if d < 0 {
		return 0
	}
	return d
}

func (s *Session) Select(p Pos) SelectResult {
	if s.state != StateActive {
		return SelectIgnored
	}
	if s.board.At(p) == Empty {
		return SelectIgnored
	}
	if !s.selection.Add(p) {
		return SelectIgnored
	}
	if !s.selection.Full() {
		return SelectPending
	}

	sel := s.selection.Cells()
	s.selection.Reset()
	if CheckMatch(sel, s.board, s.rules.GroupSize) {
		s.score += s.rules.Points
		s.log.Debug().Int("score", s.score).Int("left", s.board.Remaining()).Msg("match")
		return SelectMatched
	}
	s.log.Debug().Msg("mismatch")
	return SelectMismatched
}

func (s *Session) ToggleMusic() bool {
	if s.state != StateReturnToMenu {
		s.musicOn = !s.musicOn
	}
	return s.musicOn
}

// Back abandons the session (or skips the end overlay) and records the score.
func (s *Session) Back() error {
	if s.state == StateReturnToMenu {
		return nil
	}
	if s.state == StateActive {
		s.outcome = OutcomeAbandoned
	}
	return s.leave()
}

// Tick advances one frame. Timer expiry and board completion are both
// detected on the frame that causes them.
func (s *Session) Tick(dt time.Duration) error {
	switch s.state {
	case StateActive:
		s.remaining -= dt
		// dt is time.Second/TPS truncated to whole nanoseconds, so the
		// frame that reaches the limit can leave a few nanoseconds over.
		if s.remaining < dt/2 {
			s.remaining = 0
		}
		if s.board.Cleared() {
			s.end(OutcomeComplete)
			return s.record()
		}
		if s.remaining <= 0 {
			s.remaining = 0
			s.end(OutcomeTimeUp)
		}
	case StateEnded:
		if !s.now().Before(s.endsAt) {
			return s.leave()
		}
	}
	return nil
}

func (s *Session) end(o Outcome) {
	s.outcome = o
	s.state = StateEnded
	s.endsAt = s.now().Add(s.grace)
	s.selection.Reset()
	s.log.Info().Str("outcome", o.String()).Int("score", s.score).Msg("session ended")
}

func (s *Session) leave() error {
	s.state = StateReturnToMenu
	return s.record()
}

func (s *Session) record() error {
	if s.recorded || s.rec == nil {
		return nil
	}
	s.recorded = true
	top, err := s.rec.Record(s.score)
	if err != nil {
		return fmt.Errorf("record score: %w", err)
	}
	s.log.Info().Int("score", s.score).Ints("top", top).Msg("score recorded")
	return nil
}
