package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// ToneBank is the smoothing interface the scene drives. Gains only change
// through ramps so the output never steps.
type ToneBank interface {
	SetFrequency(t Tone, hz float64)
	RampGainTo(t Tone, gain, sec float64)
}

// NullBank discards every update. Used headless or when no device opens.
type NullBank struct{}

func (NullBank) SetFrequency(Tone, float64)        {}
func (NullBank) RampGainTo(Tone, float64, float64) {}

// RecordingBank keeps the last update per tone and counts calls.
type RecordingBank struct {
	Freq  [ToneCount]float64
	Gain  [ToneCount]float64
	Ramp  [ToneCount]float64
	Calls int
}

func (r *RecordingBank) SetFrequency(t Tone, hz float64) {
	r.Freq[t] = hz
	r.Calls++
}

func (r *RecordingBank) RampGainTo(t Tone, gain, sec float64) {
	r.Gain[t] = gain
	r.Ramp[t] = sec
	r.Calls++
}

// voice is one sine oscillator with a linear gain ramp.
type voice struct {
	freq   float64
	phase  float64 // [0, 1)
	gain   float64
	target float64
	step   float64 // gain change per sample
	left   int     // samples until target
}

func (v *voice) sample(rate float64) float64 {
	if v.left > 0 {
		v.gain += v.step
		v.left--
		if v.left == 0 {
			v.gain = v.target
		}
	}
	s := math.Sin(2*math.Pi*v.phase) * v.gain
	v.phase += v.freq / rate
	v.phase -= math.Floor(v.phase)
	return s
}

// SynthBank renders the five tones as summed sines.
//
// Parameter updates come from the tick goroutine while Stream runs on the
// speaker's goroutine. Once Start succeeds every update takes speaker.Lock.
type SynthBank struct {
	rate   beep.SampleRate
	voices [ToneCount]voice
	ctrl   *beep.Ctrl

	started bool
}

// NewSynthBank creates a silent bank at the given sample rate. It can be
// streamed directly without a device.
func NewSynthBank(sampleRate int) *SynthBank {
	b := &SynthBank{rate: beep.SampleRate(sampleRate)}
	for i := range b.voices {
		b.voices[i].freq = Frequencies[i]
	}
	return b
}

// Start opens the output device and begins playback.
func (b *SynthBank) Start(buffer time.Duration) error {
	if b.started {
		return nil
	}
	if err := speaker.Init(b.rate, b.rate.N(buffer)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	// Five full-scale tones can sum past 1; leave headroom.
	vol := &effects.Volume{Streamer: b, Base: 2, Volume: math.Log2(0.4)}
	b.ctrl = &beep.Ctrl{Streamer: vol}
	speaker.Play(b.ctrl)
	b.started = true
	return nil
}

// Close stops playback and releases the device.
func (b *SynthBank) Close() {
	if !b.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	b.started = false
}

// SetMuted pauses or resumes output without touching tone state.
func (b *SynthBank) SetMuted(muted bool) {
	if !b.started {
		return
	}
	speaker.Lock()
	b.ctrl.Paused = muted
	speaker.Unlock()
}

// Muted reports whether output is paused.
func (b *SynthBank) Muted() bool {
	if !b.started {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return b.ctrl.Paused
}

func (b *SynthBank) lock() {
	if b.started {
		speaker.Lock()
	}
}

func (b *SynthBank) unlock() {
	if b.started {
		speaker.Unlock()
	}
}

func (b *SynthBank) SetFrequency(t Tone, hz float64) {
	b.lock()
	b.voices[t].freq = hz
	b.unlock()
}

// RampGainTo moves the tone's gain linearly to gain over sec seconds.
// A non-positive duration still ramps over a single sample.
func (b *SynthBank) RampGainTo(t Tone, gain, sec float64) {
	n := b.rate.N(time.Duration(sec * float64(time.Second)))
	if n < 1 {
		n = 1
	}
	b.lock()
	v := &b.voices[t]
	v.target = gain
	v.step = (gain - v.gain) / float64(n)
	v.left = n
	b.unlock()
}

// Gain returns the tone's current gain.
func (b *SynthBank) Gain(t Tone) float64 {
	b.lock()
	defer b.unlock()
	return b.voices[t].gain
}

// Stream implements beep.Streamer. It never ends.
func (b *SynthBank) Stream(samples [][2]float64) (n int, ok bool) {
	rate := float64(b.rate)
	for i := range samples {
		var s float64
		for j := range b.voices {
			s += b.voices[j].sample(rate)
		}
		samples[i][0] = s
		samples[i][1] = s
	}
	return len(samples), true
}

func (b *SynthBank) Err() error { return nil }
