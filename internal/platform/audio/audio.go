// Package audio drives the console buzzer through the host sound card.
// Tones are square waves rendered to mono float32 PCM and handed to oto.
// Builds tagged headless have no sound device and always fall back to a
// silent buzzer.
package audio

import (
	"encoding/binary"
	"errors"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lcd-arcade/internal/config"
	"github.com/vovakirdan/lcd-arcade/internal/core"
)

// SampleRate is the output rate in Hz.
const SampleRate = 44100

// amplitude keeps the square wave well below full scale.
const amplitude = 0.2

// ErrUnavailable is returned when the build has no audio backend.
var ErrUnavailable = errors.New("audio: no audio backend in this build")

// Open returns a buzzer for cfg. Disabled audio, or a sound device that
// cannot be opened, yields a silent buzzer.
func Open(cfg config.AudioConfig, logger *log.Logger) core.Buzzer {
	if !cfg.Enabled {
		return core.NopBuzzer{}
	}
	b, err := NewBuzzer(SampleRate)
	if err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "err", err)
		}
		return core.NopBuzzer{}
	}
	return b
}

// SquareWave renders a square wave of freqHz lasting d as little-endian
// float32 mono samples at rate Hz.
func SquareWave(freqHz int, d time.Duration, rate int) []byte {
	if freqHz <= 0 || d <= 0 || rate <= 0 {
		return nil
	}

	n := int(int64(d) * int64(rate) / int64(time.Second))
	buf := make([]byte, n*4)
	period := float64(rate) / float64(freqHz)

	for i := 0; i < n; i++ {
		v := float32(amplitude)
		if math.Mod(float64(i), period) >= period/2 {
			v = -v
		}
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}
