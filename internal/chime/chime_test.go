package chime

import (
	"context"
	"encoding/binary"
	"testing"
	"time"

	"github.com/Makepad-fr/countdown/internal/logger"
)

func TestTonePCMLength(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	tone := NewTone(log, WithBeeps(2))

	pcm := tone.PCM()
	want := (2*samples(180*time.Millisecond) + samples(120*time.Millisecond)) * 2
	if len(pcm) != want {
		t.Fatalf("PCM length = %d, want %d", len(pcm), want)
	}
}

func TestTonePCMFadesAndGaps(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	tone := NewTone(log, WithBeeps(2), WithFrequency(440))
	pcm := tone.PCM()

	sample := func(i int) int16 {
		return int16(binary.LittleEndian.Uint16(pcm[i*2:]))
	}
	if sample(0) != 0 {
		t.Fatalf("first sample should be silent, got %d", sample(0))
	}

	gapStart := samples(180 * time.Millisecond)
	for i := gapStart; i < gapStart+samples(120*time.Millisecond); i++ {
		if sample(i) != 0 {
			t.Fatalf("sample %d in gap is %d", i, sample(i))
		}
	}

	loud := false
	for i := 0; i < gapStart; i++ {
		if s := sample(i); s > 10000 || s < -10000 {
			loud = true
			break
		}
	}
	if !loud {
		t.Fatal("beep never reaches an audible amplitude")
	}
}

func TestNoOpRing(t *testing.T) {
	n := NewNoOp(logger.New(logger.LevelOff, nil))
	if err := n.Ring(context.Background()); err != nil {
		t.Fatalf("no-op ring: %v", err)
	}
}
