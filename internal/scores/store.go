// Package scores keeps the local top-3 leaderboard as a JSON array of
// integers.
package scores

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	MaxEntries  = 3
	defaultFile = "high_scores.json"
)

type Option func(*Store)

func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

type Store struct {
	path string
	log  zerolog.Logger
}

func NewStore(path string, opts ...Option) *Store {
	s := &Store{path: path, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Path() string { return s.path }

// DefaultPath places the score file in the user config directory, or the
// working directory when there is none.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return defaultFile
	}
	return filepath.Join(dir, "go-tilematch", defaultFile)
}

// Load returns the stored scores. A missing or malformed file reads as an
// empty list.
func (s *Store) Load() []int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Debug().Err(err).Str("path", s.path).Msg("read high scores")
		}
		return []int{}
	}
	out, ok := parse(data)
	if !ok {
		s.log.Debug().Str("path", s.path).Msg("malformed high score file")
		return []int{}
	}
	return out
}

func parse(data []byte) ([]int, bool) {
	if !gjson.ValidBytes(data) {
		return nil, false
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, false
	}
	out := []int{}
	ok := true
	doc.ForEach(func(_, v gjson.Result) bool {
		if v.Type != gjson.Number || v.Num != float64(v.Int()) {
			ok = false
			return false
		}
		out = append(out, int(v.Int()))
		return true
	})
	if !ok {
		return nil, false
	}
	return out, true
}

// Save overwrites the file with scores as given.
func (s *Store) Save(scores []int) error {
	data := []byte("[]")
	for _, v := range scores {
		var err error
		data, err = sjson.SetBytes(data, "-1", v)
		if err != nil {
			return fmt.Errorf("encode high scores: %w", err)
		}
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create score dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write high scores: %w", err)
	}
	return nil
}

// Record adds score to the leaderboard, keeping the best MaxEntries.
func (s *Store) Record(score int) ([]int, error) {
	list := append(s.Load(), score)
	sort.Sort(sort.Reverse(sort.IntSlice(list)))
	if len(list) > MaxEntries {
		list = list[:MaxEntries]
	}
	if err := s.Save(list); err != nil {
		return nil, err
	}
	s.log.Debug().Int("score", score).Ints("top", list).Msg("high scores updated")
	return list, nil
}
