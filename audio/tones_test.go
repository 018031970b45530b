package audio

import (
	"math"
	"testing"
)

func TestSynthBankStartsSilent(t *testing.T) {
	b := NewSynthBank(48000)
	samples := make([][2]float64, 256)
	n, ok := b.Stream(samples)
	if n != 256 || !ok {
		t.Fatalf("Stream = (%d, %v), want (256, true)", n, ok)
	}
	for i, s := range samples {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, s)
		}
	}
	if b.Err() != nil {
		t.Errorf("Err() = %v", b.Err())
	}
}

func TestSynthBankRampIsGradual(t *testing.T) {
	b := NewSynthBank(1000)
	b.RampGainTo(ToneC4, 1, 0.1) // 100 samples

	samples := make([][2]float64, 50)
	b.Stream(samples)
	if g := b.Gain(ToneC4); math.Abs(g-0.5) > 1e-9 {
		t.Errorf("gain halfway through ramp = %v, want 0.5", g)
	}

	b.Stream(samples)
	if g := b.Gain(ToneC4); g != 1 {
		t.Errorf("gain after ramp = %v, want 1", g)
	}

	// Stays at target
	b.Stream(samples)
	if g := b.Gain(ToneC4); g != 1 {
		t.Errorf("gain drifted to %v", g)
	}
}

func TestSynthBankZeroRampIsOneSample(t *testing.T) {
	b := NewSynthBank(1000)
	b.RampGainTo(ToneE4, 0.3, 0)
	if b.Gain(ToneE4) != 0 {
		t.Error("gain must not step before streaming")
	}
	b.Stream(make([][2]float64, 1))
	if g := b.Gain(ToneE4); g != 0.3 {
		t.Errorf("gain = %v, want 0.3", g)
	}
}

func TestSynthBankOutputBounded(t *testing.T) {
	b := NewSynthBank(8000)
	for i := Tone(0); i < ToneCount; i++ {
		b.SetFrequency(i, Frequencies[i])
		b.RampGainTo(i, 0.5, 0.01)
	}
	samples := make([][2]float64, 4000)
	b.Stream(samples)
	nonzero := false
	for _, s := range samples {
		if math.Abs(s[0]) > 2.5 {
			t.Fatalf("sample %v exceeds summed gain", s[0])
		}
		if s[0] != s[1] {
			t.Fatal("channels should match")
		}
		nonzero = nonzero || s[0] != 0
	}
	if !nonzero {
		t.Error("bank produced silence with gains up")
	}
}

func TestSynthBankUnstartedMute(t *testing.T) {
	b := NewSynthBank(48000)
	b.SetMuted(true)
	if b.Muted() {
		t.Error("unstarted bank has no device to mute")
	}
	b.Close()
}

func TestNullBank(t *testing.T) {
	var b ToneBank = NullBank{}
	b.SetFrequency(ToneC4, 100)
	b.RampGainTo(ToneC4, 1, 1)
}
