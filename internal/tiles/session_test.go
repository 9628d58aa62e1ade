package tiles

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / 30

type fakeRecorder struct {
	scores []int
	err    error
}

func (f *fakeRecorder) Record(score int) ([]int, error) {
	f.scores = append(f.scores, score)
	return f.scores, f.err
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSession(t *testing.T, mode Mode, board *Board) (*Session, *fakeRecorder, *fakeClock) {
	t.Helper()
	rec := &fakeRecorder{}
	clk := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s, err := NewSession(mustRules(t, mode), rec, WithRand(NewRand(7)), WithClock(clk.Now))
	require.NoError(t, err)
	if board != nil {
		s.board = board
	}
	return s, rec, clk
}

func TestNewSessionStartsActive(t *testing.T) {
	s, _, _ := newTestSession(t, ModeTriple, nil)
	assert.Equal(t, StateActive, s.State())
	assert.Equal(t, 60*time.Second, s.Remaining())
	assert.Zero(t, s.Score())
	assert.Empty(t, s.Selection())
	assert.Equal(t, Rows*Cols, s.Board().Remaining())
	assert.NotEmpty(t, s.ID())
	assert.True(t, s.MusicOn())
}

func TestNewSessionRejectsInvalidMode(t *testing.T) {
	rules := Rules{Mode: Mode(9), GroupSize: 2, GroupSizes: []int{2}, Points: 1, TimeLimit: time.Second}
	_, err := NewSession(rules, nil)
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestPairMatchScoresOne(t *testing.T) {
	s, _, _ := newTestSession(t, ModePair, boardFrom(
		[]Pattern{1, 1},
		[]Pattern{2, 3},
	))
	assert.Equal(t, SelectPending, s.Select(Pos{0, 0}))
	assert.Equal(t, SelectMatched, s.Select(Pos{0, 1}))
	assert.Equal(t, 1, s.Score())
	assert.Empty(t, s.Selection())
	assert.Equal(t, Empty, s.Board().At(Pos{0, 0}))
}

func TestTripleMatchScoresThree(t *testing.T) {
	s, _, _ := newTestSession(t, ModeTriple, boardFrom(
		[]Pattern{4, 4, 4},
		[]Pattern{1, 2, 3},
	))
	s.Select(Pos{0, 0})
	s.Select(Pos{0, 1})
	assert.Equal(t, SelectMatched, s.Select(Pos{0, 2}))
	assert.Equal(t, 3, s.Score())
}

func TestMismatchScoresNothingAndClearsSelection(t *testing.T) {
	s, _, _ := newTestSession(t, ModePair, boardFrom(
		[]Pattern{1, 2},
		[]Pattern{1, 2},
	))
	s.Select(Pos{0, 0})
	assert.Equal(t, SelectMismatched, s.Select(Pos{0, 1}))
	assert.Zero(t, s.Score())
	assert.Empty(t, s.Selection())
	assert.Equal(t, 4, s.Board().Remaining())
}

func TestSelectIgnoresEmptyRepeatedAndOutOfRange(t *testing.T) {
	s, _, _ := newTestSession(t, ModePair, boardFrom(
		[]Pattern{0, 1},
		[]Pattern{1, 2},
	))
	assert.Equal(t, SelectIgnored, s.Select(Pos{0, 0}))
	assert.Equal(t, SelectIgnored, s.Select(Pos{9, 9}))
	assert.Equal(t, SelectPending, s.Select(Pos{0, 1}))
	assert.Equal(t, SelectIgnored, s.Select(Pos{0, 1}))
	assert.Equal(t, []Pos{{0, 1}}, s.Selection())
}

func TestTimerExpiryEndsSessionOnSameTick(t *testing.T) {
	s, rec, _ := newTestSession(t, ModePair, boardFrom(
		[]Pattern{1, 1},
		[]Pattern{2, 2},
	))
	ticks := int(s.Rules().TimeLimit / frame)
	require.Equal(t, 3600, ticks)
	for i := 0; i < ticks-1; i++ {
		require.NoError(t, s.Tick(frame))
		require.Equal(t, StateActive, s.State(), "tick %d", i)
	}
	require.NoError(t, s.Tick(frame))
	assert.Equal(t, StateEnded, s.State())
	assert.True(t, s.GameOver())
	assert.Zero(t, s.Remaining())
	assert.Empty(t, rec.scores, "time-up score is recorded after the grace period")

	assert.Equal(t, SelectIgnored, s.Select(Pos{0, 0}))
	assert.Equal(t, SelectIgnored, s.Select(Pos{0, 1}))
	assert.Zero(t, s.Score())
}

func TestTimeUpReturnsToMenuAfterGrace(t *testing.T) {
	s, rec, clk := newTestSession(t, ModePair, nil)
	require.NoError(t, s.Tick(s.Rules().TimeLimit))
	require.Equal(t, StateEnded, s.State())
	assert.Equal(t, DefaultGracePeriod, s.GraceRemaining())

	clk.Advance(2 * time.Second)
	require.NoError(t, s.Tick(frame))
	assert.Equal(t, StateEnded, s.State())
	assert.Equal(t, time.Second, s.GraceRemaining())

	clk.Advance(time.Second)
	require.NoError(t, s.Tick(frame))
	assert.Equal(t, StateReturnToMenu, s.State())
	assert.Equal(t, []int{0}, rec.scores)
}

func TestWinRecordedExactlyOnce(t *testing.T) {
	s, rec, clk := newTestSession(t, ModePair, boardFrom(
		[]Pattern{3, 3},
	))
	s.Select(Pos{0, 0})
	s.Select(Pos{0, 1})
	require.True(t, s.Board().Cleared())

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Tick(frame))
	}
	assert.True(t, s.Complete())
	assert.Equal(t, StateEnded, s.State())
	assert.Equal(t, []int{1}, rec.scores)

	clk.Advance(DefaultGracePeriod)
	require.NoError(t, s.Tick(frame))
	require.NoError(t, s.Back())
	assert.Equal(t, StateReturnToMenu, s.State())
	assert.Equal(t, []int{1}, rec.scores)
}

func TestWinBeatsTimeUpOnSameTick(t *testing.T) {
	s, _, _ := newTestSession(t, ModePair, boardFrom(
		[]Pattern{2, 2},
	))
	s.Select(Pos{0, 0})
	s.Select(Pos{0, 1})
	require.NoError(t, s.Tick(s.Rules().TimeLimit))
	assert.True(t, s.Complete())
	assert.False(t, s.GameOver())
}

func TestBackRecordsAndReturns(t *testing.T) {
	s, rec, _ := newTestSession(t, ModeTriple, boardFrom(
		[]Pattern{1, 1, 1, 2},
	))
	s.Select(Pos{0, 0})
	s.Select(Pos{0, 1})
	s.Select(Pos{0, 2})
	require.NoError(t, s.Back())
	assert.Equal(t, StateReturnToMenu, s.State())
	assert.Equal(t, OutcomeAbandoned, s.Outcome())
	assert.Equal(t, []int{3}, rec.scores)

	require.NoError(t, s.Back())
	require.NoError(t, s.Tick(frame))
	assert.Equal(t, []int{3}, rec.scores)
}

func TestBackDuringGraceSkipsOverlay(t *testing.T) {
	s, rec, _ := newTestSession(t, ModePair, nil)
	require.NoError(t, s.Tick(s.Rules().TimeLimit))
	require.NoError(t, s.Back())
	assert.Equal(t, StateReturnToMenu, s.State())
	assert.Equal(t, OutcomeTimeUp, s.Outcome())
	assert.Equal(t, []int{0}, rec.scores)
}

func TestRecorderErrorPropagates(t *testing.T) {
	s, rec, _ := newTestSession(t, ModePair, nil)
	rec.err = errors.New("disk full")
	err := s.Back()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestToggleMusicOnlyFlipsFlag(t *testing.T) {
	s, _, _ := newTestSession(t, ModePair, nil)
	before := s.Board().Remaining()
	assert.False(t, s.ToggleMusic())
	assert.True(t, s.ToggleMusic())
	assert.Equal(t, StateActive, s.State())
	assert.Equal(t, before, s.Board().Remaining())
	assert.Zero(t, s.Score())
}

func TestNewSessionRejectsNegativeBoardSize(t *testing.T) {
	_, err := NewSession(mustRules(t, ModePair), nil, WithBoardSize(-2, -3))
	assert.Error(t, err)
}

func TestTimerEndsOnExactFrame(t *testing.T) {
	for _, tc := range []struct {
		mode Mode
		tps  int
		want int
	}{
		{ModePair, 30, 3600},
		{ModeTriple, 30, 1800},
		{ModePair, 60, 7200},
		{ModeTriple, 144, 8640},
		{ModeTriple, 7, 420},
	} {
		s, _, _ := newTestSession(t, tc.mode, nil)
		dt := time.Second / time.Duration(tc.tps)
		n := 0
		for s.State() == StateActive {
			require.NoError(t, s.Tick(dt))
			n++
			require.LessOrEqual(t, n, tc.want, "%s at %d tps", tc.mode, tc.tps)
		}
		assert.Equal(t, tc.want, n, "%s at %d tps", tc.mode, tc.tps)
		assert.True(t, s.GameOver())
	}
}
