// Package audio plays the runner's sound cues through the system speaker.
// Cues are synthesized, so no sample files ship with the binary.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-runner/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// Note is one tone of a cue.
type Note struct {
	Freq     float64 // Hz, 0 is a rest
	Duration time.Duration
	Wave     Wave
}

// cueNotes holds the arcade-style melodies for each cue.
var cueNotes = map[core.Cue][]Note{
	core.CueJump: {
		{Freq: 587, Duration: 40 * time.Millisecond, Wave: WaveSquare},
		{Freq: 880, Duration: 50 * time.Millisecond, Wave: WaveSquare},
	},
	core.CueLevelUp: {
		{Freq: 880, Duration: 90 * time.Millisecond, Wave: WaveSine},
		{Freq: 0, Duration: 30 * time.Millisecond},
		{Freq: 1319, Duration: 140 * time.Millisecond, Wave: WaveSine},
	},
	core.CueGameOver: {
		{Freq: 196, Duration: 120 * time.Millisecond, Wave: WaveSquare},
		{Freq: 0, Duration: 40 * time.Millisecond},
		{Freq: 147, Duration: 260 * time.Millisecond, Wave: WaveSquare},
	},
}

// tone generates a fixed-length wave with a short linear fade-out.
type tone struct {
	freq  float64
	wave  Wave
	phase float64
	pos   int
	total int
	fade  int
	rate  beep.SampleRate
}

func newTone(n Note, rate beep.SampleRate) *tone {
	total := rate.N(n.Duration)
	return &tone{
		freq:  n.Freq,
		wave:  n.Wave,
		total: total,
		fade:  min(rate.N(10*time.Millisecond), total),
		rate:  rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		var val float64
		if t.freq > 0 {
			switch t.wave {
			case WaveSquare:
				val = 1
				if t.phase >= 0.5 {
					val = -1
				}
			default:
				val = math.Sin(2 * math.Pi * t.phase)
			}
			if left := t.total - t.pos; left < t.fade {
				val *= float64(left) / float64(t.fade)
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// CueStreamer builds a finite streamer for c at the given volume, in the
// logarithmic scale of effects.Volume (0 is unchanged, -1 is half). It returns
// nil for cues without a melody.
func CueStreamer(c core.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, beep.Take(rate.N(n.Duration), newTone(n, rate)))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
	}
}

// CueDuration is the total length of the melody for c.
func CueDuration(c core.Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.Duration
	}
	return d
}
