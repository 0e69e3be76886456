// internal/system/adgate.go
package system

import (
	"math"

	"go-knife-hit/internal/config"
	"go-knife-hit/internal/event"
	"go-knife-hit/internal/logging"
	"go-knife-hit/internal/session"
)

// GatePhase — состояние предложения "посмотри рекламу и продолжи"
type GatePhase int

const (
	GateClosed     GatePhase = iota
	GateCountdown            // Идёт отсчёт, игрок может согласиться
	GateAwaitingAd           // Игрок согласился, ждём награду от рекламы
	GateRedeemed             // Награда получена, игра продолжается
	GateLapsed               // Время вышло или игрок отказался
)

func (p GatePhase) String() string {
	switch p {
	case GateCountdown:
		return "countdown"
	case GateAwaitingAd:
		return "awaiting-ad"
	case GateRedeemed:
		return "redeemed"
	case GateLapsed:
		return "lapsed"
	default:
		return "closed"
	}
}

var countdownTicks = int(math.Round(config.AdCountdownDuration / config.AdCountdownStep))

// AdGate — одноразовое предложение продолжить после проигрыша.
// Отсчёт и колбэк награды гонятся друг с другом; первый победивший
// фиксирует исход, второй игнорируется.
type AdGate struct {
	session         *session.Session
	eventDispatcher *event.Dispatcher

	phase     GatePhase
	ticksLeft int
	acc       float64
}

func NewAdGate(sess *session.Session, eventDispatcher *event.Dispatcher) *AdGate {
	return &AdGate{
		session:         sess,
		eventDispatcher: eventDispatcher,
	}
}

// Reset привязывает гейт к новой партии
func (g *AdGate) Reset(sess *session.Session) {
	g.session = sess
	g.phase = GateClosed
	g.ticksLeft = 0
	g.acc = 0
}

// CanOffer — предложение ещё не показывалось и продолжение не использовано
func (g *AdGate) CanOffer() bool {
	return !g.session.UsedAdContinue && !g.session.HasShownAdPopup
}

// Open запускает отсчёт. false — предлагать нельзя, сразу итоги.
func (g *AdGate) Open() bool {
	if !g.CanOffer() || g.Active() {
		return false
	}
	g.session.HasShownAdPopup = true
	g.phase = GateCountdown
	g.ticksLeft = countdownTicks
	g.acc = 0
	g.eventDispatcher.Dispatch(event.Event{Type: event.AdOffered})
	return true
}

// Accept — игрок нажал "смотреть рекламу". Отсчёт при этом не
// останавливается.
func (g *AdGate) Accept() bool {
	if g.phase != GateCountdown {
		return false
	}
	g.phase = GateAwaitingAd
	g.eventDispatcher.Dispatch(event.Event{Type: event.AdRequested})
	return true
}

// Redeem — пришла награда от рекламы
func (g *AdGate) Redeem() bool {
	if !g.Active() {
		logging.Debugf("Ad reward ignored, gate is %s", g.phase)
		return false
	}
	g.session.IsAdShown = true
	g.session.UsedAdContinue = true
	g.phase = GateRedeemed
	g.eventDispatcher.Dispatch(event.Event{Type: event.AdRedeemed})
	return true
}

// Skip — игрок закрыл предложение
func (g *AdGate) Skip() bool {
	if !g.Active() {
		return false
	}
	g.lapse()
	return true
}

func (g *AdGate) Update(deltaTime float64) {
	if !g.Active() {
		return
	}
	g.acc += deltaTime
	for g.ticksLeft > 0 && g.acc+1e-9 >= config.AdCountdownStep {
		g.acc -= config.AdCountdownStep
		g.ticksLeft--
	}
	if g.ticksLeft == 0 && !g.session.IsAdShown {
		g.lapse()
	}
}

func (g *AdGate) lapse() {
	g.phase = GateLapsed
	g.eventDispatcher.Dispatch(event.Event{Type: event.AdLapsed})
}

// Active — отсчёт идёт (с согласием игрока или без)
func (g *AdGate) Active() bool {
	return g.phase == GateCountdown || g.phase == GateAwaitingAd
}

func (g *AdGate) Phase() GatePhase {
	return g.phase
}

// Remaining — оставшееся время отсчёта в секундах
func (g *AdGate) Remaining() float64 {
	return float64(g.ticksLeft) * config.AdCountdownStep
}

// Fill — доля заполнения индикатора таймера, 1..0
func (g *AdGate) Fill() float64 {
	if countdownTicks == 0 {
		return 0
	}
	return float64(g.ticksLeft) / float64(countdownTicks)
}
