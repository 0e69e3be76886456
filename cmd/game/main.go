// cmd/game/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"go-knife-hit/internal/bootstrap"
	"go-knife-hit/internal/config"
	"go-knife-hit/internal/logging"
	"go-knife-hit/internal/metrics"
)

var (
	configPath string
	defsPath   string
	debugStage int
	seed       int64
	debugAddr  string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "knifehit",
	Short:         "Knife Hit: throw knives into a spinning target",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "knifehit.toml", "path to the TOML settings file")
	flags.StringVar(&defsPath, "defs", "", "path to the YAML stage definitions (hot reloaded)")
	flags.IntVar(&debugStage, "debug-stage", 0, "start directly at this stage, skipping the menu")
	flags.Int64Var(&seed, "seed", 0, "random seed, 0 means time based")
	flags.StringVar(&debugAddr, "debug-addr", "", "pprof and /metrics listen address, empty disables")
	flags.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings(configPath)
	if err != nil {
		logging.Warnf("Settings not loaded, using defaults: %v", err)
	}
	applyFlags(cmd, &settings)
	if err := logging.SetLevel(settings.LogLevel); err != nil {
		logging.Warnf("%v", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	game, err := bootstrap.New(ctx, settings)
	if err != nil {
		return err
	}
	defer func() {
		if err := game.Close(); err != nil {
			logging.Warnf("Shutdown: %v", err)
		}
	}()

	if settings.DebugAddr != "" {
		srv := debugServer(settings.DebugAddr, game.Metrics)
		defer func() {
			shutdownCtx, done := context.WithTimeout(context.Background(), time.Second)
			defer done()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Knife Hit")
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

// applyFlags переопределяет настройки явно заданными флагами
func applyFlags(cmd *cobra.Command, s *config.Settings) {
	flags := cmd.Flags()
	if flags.Changed("defs") {
		s.DefsPath = defsPath
	}
	if flags.Changed("debug-stage") {
		s.DebugStage = debugStage
	}
	if flags.Changed("seed") {
		s.Seed = seed
	}
	if flags.Changed("debug-addr") {
		s.DebugAddr = debugAddr
	}
	if flags.Changed("log-level") {
		s.LogLevel = logLevel
	}
}

func debugServer(addr string, collector *metrics.Collector) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warnf("Debug server: %v", err)
		}
	}()
	logging.Infof("Debug server on http://%s", addr)
	return srv
}
