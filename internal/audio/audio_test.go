package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain reads a streamer to the end and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 10*time.Millisecond, wave, rate)
		n, peak := drain(t, osc)
		if n != 441 {
			t.Errorf("wave %d: streamed %d samples, expected 441", wave, n)
		}
		if peak > 1.0 {
			t.Errorf("wave %d: peak %f out of range", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // Constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("streamed %d samples, expected 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain should be full volume, got %f", buf[50][0])
	}
	if buf[99][0] >= buf[90][0] {
		t.Errorf("release should fade out: %f then %f", buf[90][0], buf[99][0])
	}
}

func TestSoundEffects(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 8000

	for s := SoundStart; s < soundTypeCount; s++ {
		streamer := GetSoundEffect(s, cfg)
		if streamer == nil {
			t.Fatalf("%s: no streamer", s)
		}
		n, peak := drain(t, streamer)
		if n == 0 {
			t.Errorf("%s: produced no samples", s)
		}
		if peak == 0 {
			t.Errorf("%s: produced only silence", s)
		}
	}

	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("unknown sound should have no streamer")
	}
}

func TestMutedEffectIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 8000
	cfg.MasterVolume = 0

	_, peak := drain(t, CreateCoinSound(cfg))
	if peak != 0 {
		t.Errorf("muted coin sound peak = %f, expected 0", peak)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("RACER_AUDIO_ENABLED", "true")
	t.Setenv("RACER_MASTER_VOLUME", "150")
	t.Setenv("RACER_SAMPLE_RATE", "bogus")

	cfg := LoadConfig()
	if !cfg.Enabled {
		t.Error("audio should be enabled")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("master volume = %f, expected clamp to 1", cfg.MasterVolume)
	}
	if cfg.SampleRate != DefaultConfig().SampleRate {
		t.Errorf("malformed sample rate should be ignored, got %d", cfg.SampleRate)
	}
}

// TestSoundManagerDisabled verifies a disabled manager never touches the
// audio device and drops every sound.
func TestSoundManagerDisabled(t *testing.T) {
	sm := NewSoundManager(DefaultConfig())

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize() with audio disabled should succeed, got %v", err)
	}
	if sm.Enabled() {
		t.Error("disabled manager should not report enabled")
	}

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked: %v", r)
		}
	}()
	for s := SoundStart; s < soundTypeCount; s++ {
		sm.Play(s)
	}
	sm.Close()
	sm.Close()
}
