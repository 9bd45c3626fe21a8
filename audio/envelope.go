package audio

import "github.com/gopxl/beep"

// envelope applies a short attack and linear release to a finite streamer
type envelope struct {
	streamer beep.Streamer
	total    int
	attack   int
	pos      int
}

func newEnvelope(s beep.Streamer, total int) *envelope {
	attack := total / 20
	if attack < 1 {
		attack = 1
	}
	return &envelope{streamer: s, total: total, attack: attack}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := e.gain()
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

func (e *envelope) gain() float64 {
	if e.pos < e.attack {
		return float64(e.pos) / float64(e.attack)
	}
	if e.pos >= e.total {
		return 0
	}
	return float64(e.total-e.pos) / float64(e.total-e.attack)
}
