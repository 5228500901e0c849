// Package audio is the sound backend: a continuous 440Hz square wave,
// sampled at 44100Hz mono, gated on and off by the CHIP-8 sound timer.
package audio

import (
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	frequency  = 440.0
	amplitude  = 0.25
)

// Speaker plays a single continuous square-wave stream for the lifetime of
// the process; Start/Stop just gate whether it's audible, matching how
// the frame loop only ever sends on/off edges (never raw samples).
type Speaker struct {
	active int32
	phase  float64
}

// New initializes the speaker device and starts its (silent) stream.
func New() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return nil, err
	}
	s := &Speaker{}
	speaker.Play(beep.StreamerFunc(s.stream))
	return s, nil
}

// Start makes the tone audible.
func (s *Speaker) Start() { atomic.StoreInt32(&s.active, 1) }

// Stop silences the tone.
func (s *Speaker) Stop() { atomic.StoreInt32(&s.active, 0) }

func (s *Speaker) stream(samples [][2]float64) (n int, ok bool) {
	inc := frequency / float64(sampleRate)
	on := atomic.LoadInt32(&s.active) == 1

	for i := range samples {
		var v float64
		if on {
			if s.phase <= 0.5 {
				v = amplitude
			} else {
				v = -amplitude
			}
		}
		s.phase += inc
		if s.phase >= 1 {
			s.phase -= 1
		}
		samples[i][0], samples[i][1] = v, v
	}
	return len(samples), true
}
