// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"go-stealth/internal/config"
	"go-stealth/internal/logging"
	"go-stealth/internal/metrics"
	"go-stealth/internal/state"
	"go-stealth/internal/ui"
	"go-stealth/pkg/level"
)

const startFromGame = true // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	levelPath := flag.String("level", "", "path to a YAML level (overrides level.path)")
	flag.Parse()

	if err := run(*configPath, *levelPath); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run(configPath, levelPath string) error {
	settings, err := config.LoadSettings(configPath)
	if err != nil {
		return err
	}
	if levelPath != "" {
		settings.Level.Path = levelPath
	}

	logger, err := logging.Init(settings.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	lvl, err := level.Load(settings.Level.Path)
	if err != nil {
		return fmt.Errorf("failed to load level: %w", err)
	}

	m := metrics.New()
	if settings.Debug.Enabled {
		go serveDebug(settings.Debug.Addr, m)
	}

	face, err := ui.LoadFace(config.HUDFontSize)
	if err != nil {
		return err
	}
	session := &state.Session{Settings: settings, Level: lvl, Metrics: m, Font: face}

	sm := state.NewStateMachine()
	if startFromGame {
		gs, err := state.NewGameState(sm, session)
		if err != nil {
			return err
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, session))
	}

	logger.Info("starting",
		zap.String("level", lvl.Name),
		zap.Float64("arc_angle", settings.LOS.ArcAngle),
		zap.Float64("angle_step", settings.LOS.AngleStep),
		zap.Float64("radius", settings.LOS.Radius))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

// serveDebug exposes pprof and the Prometheus metrics.
func serveDebug(addr string, m *metrics.Metrics) {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/metrics", m.Handler())

	logging.L().Info("debug server listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.L().Warn("debug server stopped", zap.Error(err))
	}
}
