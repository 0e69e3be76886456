// internal/sound/synth.go
package sound

import (
	"encoding/binary"
	"math"
	"math/rand"

	"go-knife-hit/internal/config"
)

const SampleRate = 48000

// tone — описание синтезируемого эффекта
type tone struct {
	from, to float64 // Частота в начале и в конце, Гц
	duration float64 // Сек
	noise    float64 // Доля шума 0..1
	square   bool
}

var tones = map[config.Clip][]tone{
	config.SfxButton:     {{from: 880, to: 880, duration: 0.05, square: true}},
	config.SfxTimer:      {{from: 1200, to: 1200, duration: 0.04, square: true}, {duration: 0.06}},
	config.SfxKnifeThrow: {{from: 300, to: 900, duration: 0.08, noise: 0.6}},
	config.SfxKnifeHit:   {{from: 180, to: 90, duration: 0.09, noise: 0.4}},
	config.SfxKnifeClash: {{from: 2400, to: 1800, duration: 0.15, square: true, noise: 0.2}},
	config.SfxApple:      {{from: 660, to: 990, duration: 0.07}, {from: 990, to: 1320, duration: 0.07}},
	config.SfxTargetDone: {{from: 120, to: 40, duration: 0.3, noise: 0.8}},
	config.SfxGameOver:   {{from: 440, to: 220, duration: 0.25}, {from: 220, to: 110, duration: 0.35}},
	"boss_start_1":       {{from: 110, to: 220, duration: 0.4, square: true}},
	"boss_start_2":       {{from: 98, to: 196, duration: 0.4, square: true, noise: 0.1}},
	"boss_end_1":         {{from: 523, to: 523, duration: 0.12}, {from: 659, to: 659, duration: 0.12}, {from: 784, to: 784, duration: 0.25}},
	"boss_end_2":         {{from: 392, to: 392, duration: 0.12}, {from: 523, to: 523, duration: 0.12}, {from: 659, to: 659, duration: 0.25}},
}

// Synthesize возвращает PCM 16 бит, стерео, little-endian. Для
// неизвестного клипа — nil.
func Synthesize(clip config.Clip, seed int64) []byte {
	parts, ok := tones[clip]
	if !ok {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))

	var total int
	for _, p := range parts {
		total += int(p.duration * SampleRate)
	}
	buf := make([]byte, 0, total*4)

	for _, p := range parts {
		n := int(p.duration * SampleRate)
		phase := 0.0
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n)
			freq := p.from + (p.to-p.from)*t
			phase += 2 * math.Pi * freq / SampleRate

			var v float64
			if freq > 0 {
				v = math.Sin(phase)
				if p.square {
					v = math.Copysign(1, v)
				}
			}
			v = v*(1-p.noise) + (rng.Float64()*2-1)*p.noise
			v *= envelope(t) * 0.5

			s := int16(v * math.MaxInt16)
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		}
	}
	return buf
}

// Короткая атака и линейное затухание, чтобы не щёлкало
func envelope(t float64) float64 {
	const attack = 0.05
	if t < attack {
		return t / attack
	}
	return 1 - (t-attack)/(1-attack)
}

// Clips — все клипы, которые умеет синтезатор
func Clips() []config.Clip {
	clips := make([]config.Clip, 0, len(tones))
	for c := range tones {
		clips = append(clips, c)
	}
	return clips
}
