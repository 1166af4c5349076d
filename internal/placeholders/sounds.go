package placeholders

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

// SampleRate of the generated sounds.
const SampleRate = beep.SampleRate(44100)

// Tone is a sequence of sine notes written as one WAV file.
type Tone struct {
	Path  string // relative to the data directory
	Notes []float64
	Note  time.Duration
}

// Tones are the placeholder sound effects and music.
var Tones = []Tone{
	{Path: "sfx/jump.wav", Notes: []float64{440, 660}, Note: 60 * time.Millisecond},
	{Path: "sfx/dash.wav", Notes: []float64{880, 660, 440}, Note: 40 * time.Millisecond},
	{Path: "sfx/hit.wav", Notes: []float64{220, 110}, Note: 120 * time.Millisecond},
	{Path: "sfx/shoot.wav", Notes: []float64{1320}, Note: 50 * time.Millisecond},
	{Path: "sfx/ambience.wav", Notes: []float64{110, 98, 110, 123}, Note: 750 * time.Millisecond},
	{Path: "music.wav", Notes: []float64{262, 330, 392, 330, 294, 349, 440, 349}, Note: 250 * time.Millisecond},
}

// WriteTone renders t as 16-bit stereo WAV under root.
func WriteTone(root string, t Tone) error {
	streams := make([]beep.Streamer, 0, len(t.Notes))
	for _, freq := range t.Notes {
		sine, err := generators.SineTone(SampleRate, freq)
		if err != nil {
			return fmt.Errorf("failed to generate %s: %w", t.Path, err)
		}
		streams = append(streams, beep.Take(SampleRate.N(t.Note), sine))
	}
	quiet := &effects.Volume{Streamer: beep.Seq(streams...), Base: 2, Volume: -2}

	path := filepath.Join(root, t.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	format := beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, quiet, format); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
