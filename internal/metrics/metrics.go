// internal/metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-knife-hit/internal/event"
)

const namespace = "knifehit"

// Collector считает игровые события для отладочного сервера
type Collector struct {
	registry *prometheus.Registry

	knivesThrown   prometheus.Counter
	knivesStuck    prometheus.Counter
	collisions     prometheus.Counter
	targetsCleared prometheus.Counter
	bossFights     *prometheus.CounterVec
	gameOvers      prometheus.Counter
	adGate         *prometheus.CounterVec
	stage          prometheus.Gauge
	highScore      prometheus.Gauge
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		knivesThrown: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "knives_thrown_total", Help: "Knives thrown.",
		}),
		knivesStuck: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "knives_stuck_total", Help: "Knives that stuck in a target.",
		}),
		collisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "knife_collisions_total", Help: "Knives that hit another knife.",
		}),
		targetsCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "targets_cleared_total", Help: "Targets filled with knives.",
		}),
		bossFights: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "boss_fights_total", Help: "Boss fights by phase.",
		}, []string{"phase"}),
		gameOvers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "game_overs_total", Help: "Lost games.",
		}),
		adGate: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "ad_gate_total", Help: "Continue-with-ad offers by step.",
		}, []string{"step"}),
		stage: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "stage", Help: "Current stage.",
		}),
		highScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "high_score", Help: "Best score.",
		}),
	}
	c.registry.MustRegister(
		c.knivesThrown, c.knivesStuck, c.collisions, c.targetsCleared,
		c.bossFights, c.gameOvers, c.adGate, c.stage, c.highScore,
		collectors.NewGoCollector(),
	)
	return c
}

// Subscribe подписывает сборщик на события игры
func (c *Collector) Subscribe(d *event.Dispatcher) {
	d.SubscribeMany(c,
		event.KnifeThrown, event.KnifeStuck, event.KnifeCollided, event.TargetCleared,
		event.BossFightStarted, event.BossFightEnded, event.GameOver, event.StageAdvanced,
		event.AdOffered, event.AdRequested, event.AdRedeemed, event.AdLapsed, event.AdUnavailable,
		event.NewBestScore,
	)
}

func (c *Collector) OnEvent(e event.Event) {
	switch e.Type {
	case event.KnifeThrown:
		c.knivesThrown.Inc()
	case event.KnifeStuck:
		c.knivesStuck.Inc()
	case event.KnifeCollided:
		c.collisions.Inc()
	case event.TargetCleared:
		c.targetsCleared.Inc()
	case event.BossFightStarted:
		c.bossFights.WithLabelValues("started").Inc()
	case event.BossFightEnded:
		c.bossFights.WithLabelValues("won").Inc()
	case event.GameOver:
		c.gameOvers.Inc()
	case event.StageAdvanced:
		if stage, ok := e.Data.(int); ok {
			c.stage.Set(float64(stage))
		}
	case event.NewBestScore:
		if score, ok := e.Data.(int); ok {
			c.highScore.Set(float64(score))
		}
	case event.AdOffered:
		c.adGate.WithLabelValues("offered").Inc()
	case event.AdRequested:
		c.adGate.WithLabelValues("requested").Inc()
	case event.AdRedeemed:
		c.adGate.WithLabelValues("redeemed").Inc()
	case event.AdLapsed:
		c.adGate.WithLabelValues("lapsed").Inc()
	case event.AdUnavailable:
		c.adGate.WithLabelValues("unavailable").Inc()
	}
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler — /metrics для отладочного сервера
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
