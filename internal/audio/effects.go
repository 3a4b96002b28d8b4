// Package audio synthesizes the racer's sound effects with beep.
// Every effect is generated at runtime, so no audio assets ship with the game.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SoundType identifies a sound effect.
type SoundType int

const (
	SoundStart    SoundType = iota // Race started
	SoundCoin                      // Coin collected
	SoundCrash                     // Hit a competitor
	SoundGameOver                  // Out of lives
	soundTypeCount
)

// String returns a human-readable name for the sound.
func (s SoundType) String() string {
	switch s {
	case SoundStart:
		return "start"
	case SoundCoin:
		return "coin"
	case SoundCrash:
		return "crash"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Effect timings
const (
	coinNote1Duration = 60 * time.Millisecond
	coinNote2Duration = 220 * time.Millisecond
	coinAttack        = 5 * time.Millisecond
	coinNote1Release  = 30 * time.Millisecond
	coinNote2Release  = 160 * time.Millisecond

	crashDuration = 350 * time.Millisecond
	crashAttack   = 2 * time.Millisecond
	crashRelease  = 300 * time.Millisecond

	startNoteDuration = 120 * time.Millisecond
	startAttack       = 5 * time.Millisecond
	startRelease      = 60 * time.Millisecond

	gameOverNoteDuration = 260 * time.Millisecond
	gameOverAttack       = 10 * time.Millisecond
	gameOverRelease      = 180 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero or negative volume is silent,
// since the effect works in log2 and log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a single enveloped note.
func tone(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateCoinSound generates a bright two-note chime.
func CreateCoinSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(
		tone(987.77, coinNote1Duration, coinAttack, coinNote1Release, WaveSquare, rate),  // B5
		tone(1318.51, coinNote2Duration, coinAttack, coinNote2Release, WaveSquare, rate), // E6
	)
	return newVolume(seq, cfg.volume(SoundCoin))
}

// CreateCrashSound generates a noisy thud with a low rumble underneath.
func CreateCrashSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	mixed := beep.Mix(
		newVolume(tone(0, crashDuration, crashAttack, crashRelease, WaveNoise, rate), 0.6),
		newVolume(tone(70, crashDuration, crashAttack, crashRelease, WaveSaw, rate), 0.4),
	)
	return newVolume(mixed, cfg.volume(SoundCrash))
}

// CreateStartSound generates a short rising fanfare.
func CreateStartSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(
		tone(523.25, startNoteDuration, startAttack, startRelease, WaveSquare, rate), // C5
		tone(659.25, startNoteDuration, startAttack, startRelease, WaveSquare, rate), // E5
		tone(783.99, startNoteDuration, startAttack, startRelease, WaveSquare, rate), // G5
	)
	return newVolume(seq, cfg.volume(SoundStart))
}

// CreateGameOverSound generates a falling three-note phrase.
func CreateGameOverSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(
		tone(392.00, gameOverNoteDuration, gameOverAttack, gameOverRelease, WaveSine, rate),     // G4
		tone(311.13, gameOverNoteDuration, gameOverAttack, gameOverRelease, WaveSine, rate),     // D#4
		tone(261.63, 2*gameOverNoteDuration, gameOverAttack, 2*gameOverRelease, WaveSine, rate), // C4
	)
	return newVolume(seq, cfg.volume(SoundGameOver))
}

// GetSoundEffect returns a fresh streamer for the given sound.
func GetSoundEffect(sound SoundType, cfg Config) beep.Streamer {
	switch sound {
	case SoundStart:
		return CreateStartSound(cfg)
	case SoundCoin:
		return CreateCoinSound(cfg)
	case SoundCrash:
		return CreateCrashSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
