package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"neonshooter/game"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (NEONSHOOTER_* env vars override it)")
	profileDir := flag.String("profiles", "profiles", "directory for fps-drop captures")
	flag.Parse()

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if err := run(cfg, *profileDir); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run owns every resource of the windowed game so deferred cleanup runs
// before main exits
func run(cfg game.Config, profileDir string) error {
	out := os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	log := game.NewLogger(out, cfg.LogLevel, cfg.LogFile == "")

	opts := []game.Option{game.WithLogger(log)}
	if !cfg.Mute {
		opts = append(opts, game.WithAudio(NewAudioSink(cfg.Volume, log)))
	}
	session := game.NewSession(cfg, opts...)
	defer session.Teardown()
	if !cfg.RequireStartGesture {
		session.Start()
	}

	var profiler *Profiler
	if cfg.Profile {
		p, err := NewProfiler(profileDir, log)
		if err != nil {
			log.Warn().Err(err).Msg("profiling disabled")
		} else {
			profiler = p
		}
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Neon Shooter")
	ebiten.SetWindowResizable(true)

	log.Info().
		Int64("seed", cfg.Seed).
		Str("player_mode", string(cfg.PlayerMode)).
		Str("enemy_movement", string(cfg.EnemyMovement)).
		Str("aim_mode", string(cfg.AimMode)).
		Msg("starting")

	if err := ebiten.RunGame(NewApp(session, profiler, log)); err != nil {
		log.Error().Err(err).Msg("game loop failed")
		return fmt.Errorf("run game: %w", err)
	}
	p := session.Progress()
	log.Info().Int("score", p.Score).Int("level", p.Level).Bool("won", p.Won).Msg("exiting")
	return nil
}
