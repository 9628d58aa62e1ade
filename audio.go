package main

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

const sampleRate = 44100

// music loops the background track for the whole process.
type music struct {
	player *audio.Player
}

func newMusic(data []byte) (*music, error) {
	ctx := audio.NewContext(sampleRate)
	stream, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode music: %w", err)
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	p, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("music player: %w", err)
	}
	return &music{player: p}, nil
}

func (m *music) set(on bool) {
	if m == nil {
		return
	}
	switch {
	case on && !m.player.IsPlaying():
		m.player.Play()
	case !on && m.player.IsPlaying():
		m.player.Pause()
	}
}
