package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"neonshooter/game"
)

// frameStep is the simulated wall time between frames
const frameStep = 16 * time.Millisecond

// Result summarises one headless run
type Result struct {
	Seed     int64
	Progress game.Progress
	Kills    int
	Pickups  int
	Elapsed  time.Duration
	Ticks    uint64
}

// simulate plays one session on a manual clock with auto-aim and auto-fire
// until it ends or limit of game time has passed
func simulate(ctx context.Context, cfg game.Config, seed int64, limit time.Duration, log zerolog.Logger) (Result, error) {
	cfg.Seed = seed
	cfg.AimMode = game.AimAuto
	cfg.AutoFire = true
	cfg.Mute = true

	start := time.Unix(0, 0)
	clock := game.NewManualClock(start)
	s := game.NewSession(cfg,
		game.WithClock(clock),
		game.WithRandom(game.NewPRNG(seed)),
		game.WithLogger(log.With().Int64("seed", seed).Logger()),
	)
	defer s.Teardown()

	res := Result{Seed: seed}
	s.Events().Subscribe(game.EventEnemyKilled, game.ListenerFunc(func(game.Event) { res.Kills++ }))
	s.Events().Subscribe(game.EventWeaponPickup, game.ListenerFunc(func(game.Event) { res.Pickups++ }))

	s.Start()
	for frame := 0; s.Phase() != game.PhaseGameOver; frame++ {
		if clock.Now().Sub(start) >= limit {
			break
		}
		if frame%600 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		s.Frame(clock.Advance(frameStep))
	}

	res.Progress = s.Progress()
	res.Elapsed = clock.Now().Sub(start)
	res.Ticks = s.Ticks()
	return res, nil
}

func main() {
	runs := flag.Int("runs", 32, "number of sessions to play")
	seed := flag.Int64("seed", 1, "seed of the first session; later runs add their index")
	limit := flag.Duration("limit", 10*time.Minute, "game time cap per session")
	parallel := flag.Int("parallel", runtime.NumCPU(), "sessions played at once")
	configPath := flag.String("config", "", "YAML config file")
	flag.Parse()

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	log := game.NewLogger(os.Stderr, cfg.LogLevel, true)

	results := make([]Result, *runs)
	var mu sync.Mutex
	wins := 0

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*parallel, 1))
	began := time.Now()
	for i := 0; i < *runs; i++ {
		g.Go(func() error {
			res, err := simulate(ctx, cfg, *seed+int64(i), *limit, log)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = res
			if res.Progress.Won {
				mu.Lock()
				wins++
				mu.Unlock()
			}
			log.Debug().
				Int64("seed", res.Seed).
				Int("score", res.Progress.Score).
				Int("level", res.Progress.Level).
				Bool("won", res.Progress.Won).
				Dur("game_time", res.Elapsed).
				Msg("run finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("autoplay failed")
	}

	summarize(log, results, wins, time.Since(began))
}

func summarize(log zerolog.Logger, results []Result, wins int, took time.Duration) {
	if len(results) == 0 {
		return
	}
	var total, kills, pickups, best int
	var ticks uint64
	levels := make(map[int]int)
	for _, r := range results {
		total += r.Progress.Score
		kills += r.Kills
		pickups += r.Pickups
		ticks += r.Ticks
		best = max(best, r.Progress.Score)
		levels[r.Progress.Level]++
	}

	ev := log.Info().
		Int("runs", len(results)).
		Int("wins", wins).
		Float64("mean_score", float64(total)/float64(len(results))).
		Int("best_score", best).
		Int("kills", kills).
		Int("pickups", pickups).
		Uint64("ticks", ticks).
		Dur("took", took)
	for lvl := 1; lvl <= game.MaxLevel; lvl++ {
		ev = ev.Int(fmt.Sprintf("ended_level_%d", lvl), levels[lvl])
	}
	ev.Msg("autoplay summary")
}
