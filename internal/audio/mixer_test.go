package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWAV(t *testing.T, rate beep.SampleRate, samples int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jump.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Silence(samples), format))
	return path
}

func TestLoadDecodesWAV(t *testing.T) {
	m := NewMixer()
	require.NoError(t, m.Load("jump", writeWAV(t, sampleRate, 441), 0.7))

	assert.True(t, m.Has("jump"))
	assert.False(t, m.Has("dash"))
	assert.Equal(t, 441, m.sounds["jump"].buf.Len())
	assert.Equal(t, 0.7, m.sounds["jump"].volume)
}

func TestLoadResamples(t *testing.T) {
	m := NewMixer()
	require.NoError(t, m.Load("hit", writeWAV(t, 22050, 2205), 1))

	// 0.1s at the speaker rate, give or take the resampler's edges.
	assert.InDelta(t, 4410, m.sounds["hit"].buf.Len(), 50)
}

func TestLoadErrors(t *testing.T) {
	m := NewMixer()
	assert.Error(t, m.Load("x", filepath.Join(t.TempDir(), "missing.wav"), 1))

	bad := filepath.Join(t.TempDir(), "bad.wav")
	require.NoError(t, os.WriteFile(bad, []byte("not a wav file"), 0o644))
	assert.Error(t, m.Load("x", bad, 1))
}

func TestPlayBeforeInitializeIsSilent(t *testing.T) {
	m := NewMixer()
	require.NoError(t, m.Load("jump", writeWAV(t, sampleRate, 100), 1))

	m.Play("jump")
	m.Loop("jump")
	m.Play("unknown")
	assert.Equal(t, 0, m.mixer.Len())
}

func TestWithVolume(t *testing.T) {
	v := withVolume(beep.Silence(1), 0.5)
	assert.Equal(t, -1.0, v.Volume)
	assert.False(t, v.Silent)

	assert.True(t, withVolume(beep.Silence(1), 0).Silent)
}

func TestNopSink(t *testing.T) {
	var s Sink = Nop{}
	s.Play("anything")
}
