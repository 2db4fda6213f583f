//go:build !headless

package audio

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Buzzer plays tones on the default sound device. Tone returns at once;
// each tone gets its own player, kept alive until it has drained.
type Buzzer struct {
	ctx  *oto.Context
	rate int

	mu      sync.Mutex
	players []*oto.Player
}

// NewBuzzer opens the sound device. Only one may exist per process.
func NewBuzzer(sampleRate int) (*Buzzer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open device: %w", err)
	}
	<-ready

	return &Buzzer{ctx: ctx, rate: sampleRate}, nil
}

// Tone implements core.Buzzer.
func (b *Buzzer) Tone(freqHz int, d time.Duration) {
	pcm := SquareWave(freqHz, d, b.rate)
	if len(pcm) == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.reap()
	p := b.ctx.NewPlayer(bytes.NewReader(pcm))
	p.Play()
	b.players = append(b.players, p)
}

// reap closes players that finished. Callers hold mu.
func (b *Buzzer) reap() {
	live := b.players[:0]
	for _, p := range b.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		p.Close()
	}
	b.players = live
}

// Close stops every playing tone.
func (b *Buzzer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, p := range b.players {
		p.Close()
	}
	b.players = nil
	return nil
}
