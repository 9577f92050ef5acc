package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	errProfileCooldown = errors.New("capture on cooldown")
	errProfileBusy     = errors.New("already profiling")
)

// Profiler captures a CPU profile and an execution trace when the frame
// rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration
	log             zerolog.Logger
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, log zerolog.Logger) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profiles dir: %w", err)
	}
	return &Profiler{
		captureCooldown: 10 * time.Second,
		profilesDir:     dir,
		captureDuration: 5 * time.Second,
		log:             log.With().Str("component", "profiler").Logger(),
	}, nil
}

// CaptureProfile starts a background capture tagged with reason. It refuses
// while a capture runs or the cooldown has not elapsed.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if since := time.Since(p.lastCaptureTime); since < p.captureCooldown {
		return fmt.Errorf("%w (last capture was %v ago)", errProfileCooldown, since.Round(time.Millisecond))
	}
	if p.isProfiling {
		return errProfileBusy
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("fps-drop-%s-%s", time.Now().Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				p.log.Error().Err(err).Msg("cpu profile failed")
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				p.log.Error().Err(err).Msg("trace failed")
			}
		}()
		wg.Wait()

		p.analyzeProfile(baseName)
	}()
	return nil
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	p.log.Info().Str("path", path).Msg("cpu profile saved")
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".trace")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	p.log.Info().Str("path", path).Msg("trace saved")
	return nil
}

// analyzeProfile logs where the capture went and the heap state after it
func (p *Profiler) analyzeProfile(baseName string) {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	info, err := os.Stat(path)
	if err != nil {
		p.log.Warn().Err(err).Msg("could not analyze profile")
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.log.Info().
		Str("profile", path).
		Float64("size_kb", float64(info.Size())/1024).
		Uint64("alloc_kb", m.Alloc/1024).
		Uint64("sys_kb", m.Sys/1024).
		Uint32("num_gc", m.NumGC).
		Uint64("heap_objects", m.HeapObjects).
		Str("view", "go tool pprof -http=:8080 "+path).
		Msg("profile captured")
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
