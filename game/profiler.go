package game

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sync"
	"time"

	"go.uber.org/zap"
)

const profilerWindow = 30 // frames averaged before comparing to the threshold

// Profiler captures a CPU profile when the average frame time stays above a
// threshold. A nil *Profiler is valid and does nothing.
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
	threshold       time.Duration
	logger          *zap.Logger

	samples [profilerWindow]time.Duration
	next    int
	filled  bool
	sum     time.Duration

	// capture is swapped out in tests
	capture func(baseName string)
}

// NewProfiler creates a profiler writing into dir. A zero threshold returns nil
// (profiling disabled).
func NewProfiler(dir string, threshold time.Duration, logger *zap.Logger) *Profiler {
	if threshold <= 0 {
		return nil
	}
	p := &Profiler{
		captureCooldown: 10 * time.Second, // Don't capture more than once every 10 seconds
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
		threshold:       threshold,
		logger:          orNop(logger),
	}
	p.capture = p.captureCPUProfile
	return p
}

// Observe records one frame duration. It returns true when the observation
// started a profile capture.
func (p *Profiler) Observe(d time.Duration) bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sum += d - p.samples[p.next]
	p.samples[p.next] = d
	p.next = (p.next + 1) % profilerWindow
	if p.next == 0 {
		p.filled = true
	}
	if !p.filled {
		return false
	}

	avg := p.sum / profilerWindow
	if avg < p.threshold || p.isProfiling || time.Since(p.lastCaptureTime) < p.captureCooldown {
		return false
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("slow-frame-%s-%dus", time.Now().Format("20060102-150405"), avg.Microseconds())
	p.logger.Warn("slow frames detected, capturing profile",
		zap.Duration("avg_frame", avg),
		zap.Duration("threshold", p.threshold))

	// Capture in a goroutine to avoid blocking the game
	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()
		p.capture(baseName)
	}()
	return true
}

// captureCPUProfile records a CPU profile for captureDuration
func (p *Profiler) captureCPUProfile(baseName string) {
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		p.logger.Error("failed to create profile dir", zap.Error(err))
		return
	}
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		p.logger.Error("failed to create profile file", zap.Error(err))
		return
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		p.logger.Error("failed to start CPU profile", zap.Error(err))
		return
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	p.logger.Info("CPU profile saved",
		zap.String("path", profilePath),
		zap.String("view", "go tool pprof -http=:8080 "+profilePath))
}
