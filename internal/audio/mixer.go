// Package audio plays the game's music and sound effects through the beep
// speaker.
package audio

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate = beep.SampleRate(44100)
	// resampleQuality is the interpolation quality used when a file's
	// sample rate differs from the speaker's.
	resampleQuality = 4
)

// Sink plays named sounds.
type Sink interface {
	Play(name string)
}

// Nop is a Sink that plays nothing. It is used when audio is disabled.
type Nop struct{}

// Play does nothing.
func (Nop) Play(string) {}

// sound is a decoded effect kept in memory so it can be started many times.
type sound struct {
	buf    *beep.Buffer
	volume float64
}

// Mixer manages all game audio
type Mixer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	sounds      map[string]*sound
	initialized bool
}

// NewMixer creates a mixer with no sounds loaded.
func NewMixer() *Mixer {
	return &Mixer{
		mixer:  &beep.Mixer{},
		sounds: make(map[string]*sound),
	}
}

// Initialize opens the speaker and starts the mixer.
func (m *Mixer) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Load decodes the WAV file at path and registers it as name.
func (m *Mixer) Load(name, path string, volume float64) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open sound %s: %w", path, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode sound %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	if format.SampleRate == sampleRate {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer))
	}

	m.mu.Lock()
	m.sounds[name] = &sound{buf: buf, volume: volume}
	m.mu.Unlock()
	return nil
}

// Has reports whether a sound called name is loaded.
func (m *Mixer) Has(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sounds[name]
	return ok
}

// Play starts the sound once. Unknown names are ignored.
func (m *Mixer) Play(name string) {
	m.start(name, 1)
}

// Loop plays the sound forever.
func (m *Mixer) Loop(name string) {
	m.start(name, -1)
}

func (m *Mixer) start(name string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sounds[name]
	if !ok || !m.initialized {
		return
	}

	var streamer beep.Streamer = s.buf.Streamer(0, s.buf.Len())
	if count != 1 {
		streamer = beep.Loop(count, s.buf.Streamer(0, s.buf.Len()))
	}

	speaker.Lock()
	m.mixer.Add(withVolume(streamer, s.volume))
	speaker.Unlock()
}

// Cleanup stops all sounds.
func (m *Mixer) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// withVolume scales a streamer by a linear volume in [0, 1].
func withVolume(s beep.Streamer, volume float64) *effects.Volume {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
