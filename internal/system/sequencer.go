// internal/system/sequencer.go
package system

import (
	"go-knife-hit/internal/component"
	"go-knife-hit/internal/config"
	"go-knife-hit/internal/defs"
	"go-knife-hit/internal/event"
	"go-knife-hit/internal/logging"
	"go-knife-hit/internal/session"
	"go-knife-hit/internal/utils"
)

// SeqPhase — фаза последовательности стадий
type SeqPhase int

const (
	SeqIdle       SeqPhase = iota
	SeqPlaying             // Мишень на экране, игрок бросает ножи
	SeqBossIntro           // Баннер "бой с боссом", мишени нет
	SeqBossOutro           // Баннер "босс побеждён", мишени нет
	SeqTransition          // Короткая пауза перед следующей обычной мишенью
)

func (p SeqPhase) String() string {
	switch p {
	case SeqPlaying:
		return "playing"
	case SeqBossIntro:
		return "boss-intro"
	case SeqBossOutro:
		return "boss-outro"
	case SeqTransition:
		return "transition"
	default:
		return "idle"
	}
}

// StageSequencer решает, какая мишень появится на текущей стадии,
// и проводит игру через баннеры боссов.
type StageSequencer struct {
	session         *session.Session
	library         *defs.Library
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher

	phase   SeqPhase
	timer   float64
	current *component.Target

	// Босс выбирается в начале баннера, чтобы показать его имя
	nextDef  *defs.TargetDefinition
	nextBoss string
}

func NewStageSequencer(sess *session.Session, library *defs.Library, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *StageSequencer {
	return &StageSequencer{
		session:         sess,
		library:         library,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// SetLibrary подменяет определения; новая мишень возьмётся уже из них
func (s *StageSequencer) SetLibrary(library *defs.Library) {
	s.library = library
}

// Begin запускает текущую стадию сессии
func (s *StageSequencer) Begin(sess *session.Session) {
	s.session = sess
	s.current = nil
	s.nextDef = nil
	s.nextBoss = ""
	s.timer = 0
	if sess.IsBossStage() {
		s.startBossIntro()
		return
	}
	s.spawn()
}

func (s *StageSequencer) Update(deltaTime float64) {
	switch s.phase {
	case SeqBossIntro, SeqBossOutro, SeqTransition:
		s.timer -= deltaTime
		if s.timer <= 0 {
			s.spawn()
		}
	}
}

// NextLevel вызывается, когда в мишень воткнуты все ножи
func (s *StageSequencer) NextLevel() {
	if s.phase != SeqPlaying {
		return
	}
	logging.Debugf("Next level after stage %d", s.session.Stage)
	if s.current != nil {
		s.current.DestroyMeAndAllKnives()
		s.current = nil
	}
	cleared := s.session.Stage
	s.eventDispatcher.Dispatch(event.Event{Type: event.TargetCleared, Data: cleared})

	if session.IsBossStage(cleared) {
		s.session.AdvanceStage()
		s.eventDispatcher.Dispatch(event.Event{Type: event.StageAdvanced, Data: s.session.Stage})
		s.phase = SeqBossOutro
		s.timer = config.BossBannerDuration
		s.eventDispatcher.Dispatch(event.Event{Type: event.BossFightEnded, Data: cleared})
		return
	}

	s.session.AdvanceStage()
	s.eventDispatcher.Dispatch(event.Event{Type: event.StageAdvanced, Data: s.session.Stage})
	if s.session.IsBossStage() {
		s.startBossIntro()
		return
	}
	s.phase = SeqTransition
	s.timer = config.NextStageDelay
}

func (s *StageSequencer) startBossIntro() {
	def, name := s.pickTarget(s.session.Stage)
	s.nextDef, s.nextBoss = &def, name
	s.phase = SeqBossIntro
	s.timer = config.BossBannerDuration
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossFightStarted, Data: s.session.Stage})
}

func (s *StageSequencer) spawn() {
	var def defs.TargetDefinition
	var bossName string
	if s.nextDef != nil {
		def, bossName = *s.nextDef, s.nextBoss
		s.nextDef, s.nextBoss = nil, ""
	} else {
		def, bossName = s.pickTarget(s.session.Stage)
	}
	s.current = component.NewTarget(def, s.session.Stage, bossName)
	s.phase = SeqPlaying
	s.timer = 0
	if bossName != "" {
		logging.Infof("Stage %d: boss %s (%d knives)", s.session.Stage, bossName, def.TotalKnife)
	} else {
		logging.Debugf("Stage %d: target %s (%d knives)", s.session.Stage, def.ID, def.TotalKnife)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.TargetSpawned, Data: s.current})
}

func (s *StageSequencer) pickTarget(stage int) (defs.TargetDefinition, string) {
	if session.IsBossStage(stage) && len(s.library.Bosses) > 0 {
		b := s.library.Bosses[s.rng.Intn(len(s.library.Bosses))]
		return b.Target, b.Name
	}
	return s.library.Targets[TargetIndex(stage, len(s.library.Targets), s.rng)], ""
}

// TargetIndex — индекс обычной мишени для стадии. До LateStageThreshold
// мишень берётся по номеру стадии, дальше (или когда мишени кончились)
// случайно из [LateStageMinIndex, n-1).
func TargetIndex(stage, n int, rng *utils.PRNGService) int {
	if n <= 0 {
		return 0
	}
	if stage <= config.LateStageThreshold && stage-1 < n {
		if stage < 1 {
			return 0
		}
		return stage - 1
	}
	lo, hi := config.LateStageMinIndex, n-1
	if hi <= lo {
		lo, hi = 0, n
	}
	return rng.Range(lo, hi)
}

func (s *StageSequencer) Phase() SeqPhase {
	return s.phase
}

// Current — мишень на экране или nil во время баннеров и пауз
func (s *StageSequencer) Current() *component.Target {
	return s.current
}

// BossName — имя текущего босса или того, чей баннер сейчас показан
func (s *StageSequencer) BossName() string {
	if s.current != nil {
		return s.current.BossName
	}
	return s.nextBoss
}

// BannerRemaining — сколько секунд ещё показывается баннер или пауза
func (s *StageSequencer) BannerRemaining() float64 {
	if s.phase == SeqPlaying || s.timer < 0 {
		return 0
	}
	return s.timer
}
