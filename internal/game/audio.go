package game

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"go.uber.org/zap"

	"robot/internal/anim"
	"robot/internal/config"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

// AudioSystem plays the named cues the controller asks for. Only one cue
// sounds at a time; playing a new one replaces the old.
type AudioSystem struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	logger *zap.Logger

	mu     sync.Mutex
	player oto.Player
}

// InitAudio opens the output device.
func InitAudio(cfg config.Audio, logger *zap.Logger) (*AudioSystem, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &AudioSystem{ctx: ctx, ready: ready, volume: clampF(cfg.Volume, 0, 1), logger: logger}, nil
}

// Play starts the named cue looping. It returns immediately.
func (a *AudioSystem) Play(name string) {
	select {
	case <-a.ready:
	default:
		a.logger.Warn("audio: device not ready, dropping cue", zap.String("cue", name))
		return
	}
	var src io.Reader
	switch name {
	case anim.DanceCue:
		src = &grooveReader{seed: uint64(time.Now().UnixNano())}
	default:
		a.logger.Warn("audio: unknown cue", zap.String("cue", name))
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.closePlayer()
	player := a.ctx.NewPlayer(src)
	player.SetVolume(a.volume)
	player.Play()
	a.player = player
}

// Stop silences the current cue, if any.
func (a *AudioSystem) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closePlayer()
}

func (a *AudioSystem) closePlayer() {
	if a.player == nil {
		return
	}
	if err := a.player.Close(); err != nil {
		a.logger.Warn("audio: close player", zap.Error(err))
	}
	a.player = nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := 0; c < ChannelCount; c++ {
		o := i*8 + c*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// ---- Dance groove ----------------------------------------------------------

// A two-beat oom-pah: bass on the beat alternating root and fifth, a chord
// stab and snare on the off-beat, hats on every eighth, and a bouncy lead.
const grooveBPM = 132.0

type polkaChord struct {
	root, fifth float64
	stab        [3]float64
}

var polkaChords = []polkaChord{
	{root: 65.41, fifth: 98.00, stab: [3]float64{261.6, 329.6, 392.0}}, // C
	{root: 98.00, fifth: 73.42, stab: [3]float64{246.9, 293.7, 392.0}}, // G
	{root: 98.00, fifth: 73.42, stab: [3]float64{246.9, 293.7, 349.2}}, // G7
	{root: 65.41, fifth: 98.00, stab: [3]float64{261.6, 329.6, 392.0}}, // C
	{root: 87.31, fifth: 65.41, stab: [3]float64{261.6, 349.2, 440.0}}, // F
	{root: 65.41, fifth: 98.00, stab: [3]float64{261.6, 329.6, 392.0}}, // C
	{root: 98.00, fifth: 73.42, stab: [3]float64{246.9, 293.7, 349.2}}, // G7
	{root: 65.41, fifth: 98.00, stab: [3]float64{261.6, 329.6, 392.0}}, // C
}

// Lead line in eighths; zero rests.
var polkaLead = []float64{
	523.3, 0, 659.3, 587.3, 523.3, 0, 392.0, 0,
	493.9, 0, 587.3, 523.3, 493.9, 0, 392.0, 0,
	493.9, 523.3, 587.3, 0, 698.5, 659.3, 587.3, 0,
	659.3, 587.3, 523.3, 0, 523.3, 0, 0, 0,
}

type grooveReader struct {
	t    float64
	seed uint64
}

func (g *grooveReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	beatLen := 60.0 / grooveBPM
	eighthLen := beatLen / 2
	for i := 0; i < samples; i++ {
		beatPos := g.t / beatLen
		beat := int(beatPos)
		trig := g.t - float64(beat)*beatLen
		eighth := int(g.t / eighthLen)
		eTrig := g.t - float64(eighth)*eighthLen

		// One chord per two-beat bar.
		chord := polkaChords[(beat/2)%len(polkaChords)]

		s := kick(trig) * 0.55
		bass := chord.root
		if beat%2 == 1 {
			bass = chord.fifth
		}
		s += fmBass(g.t, bass, math.Exp(-trig*5.0)) * 0.7
		if eighth%2 == 1 {
			env := math.Exp(-eTrig * 16.0)
			for _, f := range chord.stab {
				s += fm(g.t, f, 1.0, 0.8*env) * env * 0.07
			}
			s += snare(eTrig, &g.seed) * 0.3
		}
		s += hihat(eTrig, &g.seed)
		if f := polkaLead[eighth%len(polkaLead)]; f > 0 {
			env := math.Exp(-eTrig * 7.0)
			vib := 1 + 0.008*math.Sin(2*math.Pi*5.5*g.t)
			s += fm(g.t, f*vib, 2.0, 1.6*env) * env * 0.16
		}

		putStereoF32(p, i, softSat(s*0.8))
		g.t += 1.0 / SampleRate
	}
	return samples * 8, nil
}

// kick returns a kick drum sample given time-since-trigger in seconds.
func kick(trig float64) float64 {
	if trig > 0.25 {
		return 0
	}
	phase := 2 * math.Pi * 150 / 12.5 * (1 - math.Exp(-trig*12.5))
	body := math.Sin(phase) * math.Exp(-trig*18.0) * 0.80
	click := math.Sin(2*math.Pi*2100*trig) * math.Exp(-trig*250.0) * 0.2
	return softSat(body + click)
}

func snare(trig float64, seed *uint64) float64 {
	if trig > 0.2 {
		return 0
	}
	env := math.Exp(-trig * 26.0)
	body := math.Sin(2*math.Pi*188*trig) * 0.24 * env
	noise := (lcg(seed) - lcg(seed)*0.55) * env * 0.5
	return softSat(body + noise)
}

// hihat is a short closed hat.
func hihat(trig float64, seed *uint64) float64 {
	if trig > 0.06 {
		return 0
	}
	metal := math.Sin(2*math.Pi*7300*trig) + math.Sin(2*math.Pi*9200*trig)*0.6
	s := (lcg(seed)*0.8 + metal*0.2) * math.Exp(-trig*42.0) * 0.06
	return softSat(s)
}

func fmBass(t, freq, env float64) float64 {
	b := fm(t, freq, 0.5, 1.25*env) * env * 0.48
	b += math.Sin(2*math.Pi*freq*t) * env * 0.26
	return softSat(b)
}
