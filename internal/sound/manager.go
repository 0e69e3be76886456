// internal/sound/manager.go
package sound

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"go-knife-hit/internal/config"
	"go-knife-hit/internal/logging"
)

// SoundManager проигрывает эффекты. Всё молчит, если звук выключен.
type SoundManager struct {
	context *audio.Context
	enabled bool
	clips   map[config.Clip][]byte
	timer   *audio.Player
	players []*audio.Player
}

func NewSoundManager(context *audio.Context, enabled bool) *SoundManager {
	m := &SoundManager{
		context: context,
		enabled: enabled,
		clips:   make(map[config.Clip][]byte),
	}
	for i, clip := range Clips() {
		m.clips[clip] = Synthesize(clip, int64(i+1))
	}
	return m
}

// PlaySingle проигрывает клип один раз
func (m *SoundManager) PlaySingle(clip config.Clip, volume float64) {
	if !m.enabled || m.context == nil {
		return
	}
	pcm, ok := m.clips[clip]
	if !ok {
		logging.Warnf("Unknown sound clip %q", clip)
		return
	}
	m.collect()
	p := m.context.NewPlayerFromBytes(pcm)
	p.SetVolume(volume)
	p.Play()
	m.players = append(m.players, p)
}

func (m *SoundManager) PlayButton() {
	m.PlaySingle(config.SfxButton, config.DefaultVolume)
}

// PlayTimerSound зацикливает тиканье таймера рекламы
func (m *SoundManager) PlayTimerSound() {
	if !m.enabled || m.context == nil || m.timer != nil {
		return
	}
	pcm := m.clips[config.SfxTimer]
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := m.context.NewPlayer(loop)
	if err != nil {
		logging.Warnf("Failed to create timer player: %v", err)
		return
	}
	p.Play()
	m.timer = p
}

func (m *SoundManager) StopTimerSound() {
	if m.timer == nil {
		return
	}
	m.timer.Pause()
	if err := m.timer.Close(); err != nil {
		logging.Debugf("Timer player close: %v", err)
	}
	m.timer = nil
}

func (m *SoundManager) SetEnabled(enabled bool) {
	m.enabled = enabled
	if !enabled {
		m.StopTimerSound()
	}
}

func (m *SoundManager) Enabled() bool {
	return m.enabled
}

// collect закрывает доигравшие плееры
func (m *SoundManager) collect() {
	alive := m.players[:0]
	for _, p := range m.players {
		if p.IsPlaying() {
			alive = append(alive, p)
			continue
		}
		p.Close()
	}
	m.players = alive
}
