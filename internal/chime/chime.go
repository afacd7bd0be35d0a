// Package chime plays the audible completion notice.
package chime

import (
	"bytes"
	"context"
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/Makepad-fr/countdown/internal/logger"
)

// Audio parameters for the generated tone.
const (
	SampleRate   = 44100
	ChannelCount = 1
)

// Ringer plays a completion sound.
type Ringer interface {
	Ring(ctx context.Context) error
}

// Option configures a Tone.
type Option func(*Tone)

// WithFrequency sets the pitch of each beep in Hz.
func WithFrequency(hz float64) Option {
	return func(t *Tone) {
		t.freq = hz
	}
}

// WithBeeps sets how many beeps make up one ring.
func WithBeeps(n int) Option {
	return func(t *Tone) {
		t.beeps = n
	}
}

// Tone rings by synthesizing short sine beeps and playing them through oto.
// The audio device is opened on the first ring.
type Tone struct {
	log   *logger.Logger
	freq  float64
	beeps int
	beep  time.Duration
	gap   time.Duration

	once    sync.Once
	ctx     *oto.Context
	initErr error
}

// NewTone creates a tone ringer.
func NewTone(log *logger.Logger, opts ...Option) *Tone {
	t := &Tone{
		log:   log,
		freq:  880,
		beeps: 3,
		beep:  180 * time.Millisecond,
		gap:   120 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tone) open() error {
	t.once.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: ChannelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		ctx, ready, err := oto.NewContext(op)
		if err != nil {
			t.initErr = err
			return
		}
		<-ready
		t.ctx = ctx
		t.log.Debug("chime: audio initialized (rate=%d)", SampleRate)
	})
	return t.initErr
}

// Ring plays the beeps and blocks until they finish or ctx is cancelled.
func (t *Tone) Ring(ctx context.Context) error {
	if err := t.open(); err != nil {
		return err
	}

	player := t.ctx.NewPlayer(bytes.NewReader(t.PCM()))
	player.Play()

	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()
	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			_ = player.Close()
			return ctx.Err()
		case <-tick.C:
		}
	}
	return player.Close()
}

// PCM returns the signed 16-bit little-endian samples for one ring.
func (t *Tone) PCM() []byte {
	beepN := samples(t.beep)
	gapN := samples(t.gap)

	var buf bytes.Buffer
	for i := 0; i < t.beeps; i++ {
		for n := 0; n < beepN; n++ {
			v := math.Sin(2 * math.Pi * t.freq * float64(n) / SampleRate)
			// Short linear fade at both ends to avoid clicks.
			env := math.Min(1, math.Min(float64(n), float64(beepN-n))/200)
			_ = binary.Write(&buf, binary.LittleEndian, int16(v*env*0.4*math.MaxInt16))
		}
		if i < t.beeps-1 {
			buf.Write(make([]byte, gapN*2))
		}
	}
	return buf.Bytes()
}

func samples(d time.Duration) int {
	return int(d.Seconds() * SampleRate)
}

// NoOp is a ringer that stays silent. Used when the chime is disabled.
type NoOp struct {
	log *logger.Logger
}

// NewNoOp creates a silent ringer.
func NewNoOp(log *logger.Logger) *NoOp {
	return &NoOp{log: log}
}

// Ring does nothing.
func (n *NoOp) Ring(ctx context.Context) error {
	n.log.Debug("chime no-op: would ring")
	return nil
}

// Compile-time interface checks.
var (
	_ Ringer = (*Tone)(nil)
	_ Ringer = (*NoOp)(nil)
)
