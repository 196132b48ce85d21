package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundFlap SoundKind = iota
	SoundScore
	SoundLevelUp
	SoundHit
	SoundGameOver
	SoundMenuSelect
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

var sfxVolume = 0.8

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect. Playback runs in
// its own goroutine; the sound is dropped if the context isn't ready yet.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation — no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x
}

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundFlap:
		return genFlap()
	case SoundScore:
		return genScore()
	case SoundLevelUp:
		return genLevelUp()
	case SoundHit:
		return genHit()
	case SoundGameOver:
		return genGameOver()
	case SoundMenuSelect:
		return genMenuSelect()
	}
	return nil
}

// genFlap: short upward chirp with a breathy noise layer — a wing beat.
func genFlap() []byte {
	n := SampleRate * 9 / 100 // 90ms
	buf := make([]byte, n*8)
	rng := NewRand(0xF1A9)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := 300.0 + 350.0*t
		phase += 2 * math.Pi * freq / SampleRate
		env := math.Exp(-5.0 * t)
		s := 0.5*math.Sin(phase) + 0.2*(rng.Float64()*2-1)*(1-t)
		putStereoF32(buf, i, softSat(s*env))
	}
	return buf
}

// genScore: two quick square-ish blips a fifth apart.
func genScore() []byte {
	n := SampleRate * 14 / 100 // 140ms
	buf := make([]byte, n*8)
	half := n / 2
	for i := 0; i < n; i++ {
		freq := 880.0
		k := i
		if i >= half {
			freq = 1320.0
			k = i - half
		}
		t := float64(k) / float64(half)
		env := math.Exp(-6.0 * t)
		s := math.Sin(2 * math.Pi * freq * float64(i) / SampleRate)
		s += 0.3 * math.Sin(2*math.Pi*freq*2*float64(i)/SampleRate)
		putStereoF32(buf, i, softSat(0.45*s*env))
	}
	return buf
}

// genLevelUp: three-note ascending arpeggio.
func genLevelUp() []byte {
	notes := []float64{660, 830, 990}
	per := SampleRate * 9 / 100
	n := per * len(notes)
	buf := make([]byte, n*8)
	for i := 0; i < n; i++ {
		idx := i / per
		if idx >= len(notes) {
			idx = len(notes) - 1
		}
		t := float64(i%per) / float64(per)
		env := math.Exp(-4.0 * t)
		s := math.Sin(2 * math.Pi * notes[idx] * float64(i) / SampleRate)
		s += 0.25 * math.Sin(2*math.Pi*notes[idx]*1.5*float64(i)/SampleRate)
		putStereoF32(buf, i, softSat(0.5*s*env))
	}
	return buf
}

// genHit: filtered noise thud.
func genHit() []byte {
	n := SampleRate * 16 / 100 // 160ms
	buf := make([]byte, n*8)
	rng := NewRand(0x417)
	prev := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		env := math.Exp(-9.0 * t)
		raw := rng.Float64()*2 - 1
		// One-pole low pass keeps the thud dark.
		prev += 0.22 * (raw - prev)
		s := prev*1.6 + 0.3*math.Sin(2*math.Pi*90*float64(i)/SampleRate)
		putStereoF32(buf, i, softSat(s*env))
	}
	return buf
}

// genGameOver: long descending slide.
func genGameOver() []byte {
	n := SampleRate * 6 / 10 // 600ms
	buf := make([]byte, n*8)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := 400.0 * math.Pow(0.3, t)
		phase += 2 * math.Pi * freq / SampleRate
		env := (1 - t) * (1 - t)
		s := 0.5*math.Sin(phase) + 0.2*math.Sin(phase*0.5)
		putStereoF32(buf, i, softSat(s*env))
	}
	return buf
}

// genMenuSelect: single bright blip.
func genMenuSelect() []byte {
	n := SampleRate * 6 / 100 // 60ms
	buf := make([]byte, n*8)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		env := math.Exp(-7.0 * t)
		s := math.Sin(2 * math.Pi * 1200 * float64(i) / SampleRate)
		putStereoF32(buf, i, softSat(0.4*s*env))
	}
	return buf
}
