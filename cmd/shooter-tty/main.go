package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"neonshooter/game"
	"neonshooter/sfx"
	"neonshooter/tty"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (NEONSHOOTER_* env vars override it)")
	logPath := flag.String("log", "neonshooter-tty.log", "log file; the terminal belongs to the game")
	flag.Parse()

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if cfg.LogFile != "" {
		*logPath = cfg.LogFile
	}
	if err := run(cfg, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run owns the log file, speaker, screen and session so every deferred
// release happens before main exits
func run(cfg game.Config, logPath string) error {
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	log := game.NewLogger(logFile, cfg.LogLevel, false)

	opts := []game.Option{game.WithLogger(log)}
	if !cfg.Mute {
		speaker := sfx.NewSpeakerSink(cfg.Volume)
		if err := speaker.Init(); err != nil {
			// Non-fatal, the game runs silent
			log.Warn().Err(err).Msg("audio unavailable")
		} else {
			defer speaker.Close()
			opts = append(opts, game.WithAudio(speaker))
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Error().Err(err).Msg("create screen")
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		log.Error().Err(err).Msg("init screen")
		return fmt.Errorf("init screen: %w", err)
	}

	session := game.NewSession(cfg, opts...)
	defer session.Teardown()
	if !cfg.RequireStartGesture {
		session.Start()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Int64("seed", cfg.Seed).
		Str("player_mode", string(cfg.PlayerMode)).
		Str("aim_mode", string(cfg.AimMode)).
		Msg("terminal session starting")

	if err := tty.NewRunner(screen, session, log).Run(ctx); err != nil {
		log.Error().Err(err).Msg("run failed")
		return fmt.Errorf("run: %w", err)
	}
	logFinal(log, session.Progress())
	return nil
}

func logFinal(log zerolog.Logger, p game.Progress) {
	log.Info().
		Int("score", p.Score).
		Int("level", p.Level).
		Stringer("phase", p.Phase).
		Bool("won", p.Won).
		Msg("terminal session ended")
}
