package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Speaker plays cues on the default audio device. It satisfies
// core.CuePlayer and never blocks the caller for longer than a mixer lock.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewSpeaker creates a speaker. Volume uses the effects.Volume scale.
func NewSpeaker(volume float64, logger *log.Logger) *Speaker {
	return &Speaker{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Init opens the audio device and starts the mixer.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play queues the melody for c. Before Init it does nothing.
func (s *Speaker) Play(c core.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st := CueStreamer(c, sampleRate, s.volume)
	if st == nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()

	if s.logger != nil {
		s.logger.Debug("cue", "cue", c)
	}
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	s.initialized = false
}

// Nop discards every cue. It is used when muted and for SSH sessions, which
// have no local speaker.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.Cue) {}

var (
	_ core.CuePlayer = (*Speaker)(nil)
	_ core.CuePlayer = Nop{}
)
