package animation

import (
	"log/slog"
	"sync"
	"time"

	"github.com/tejashwikalptaru/goindicators/internal/ports"
)

// DefaultFrameInterval is roughly 60 frames per second.
const DefaultFrameInterval = 16 * time.Millisecond

// DispatchFunc runs fn on the thread that owns the indicators (for Fyne, fyne.Do).
type DispatchFunc func(fn func())

var _ ports.FrameSource = (*FrameTicker)(nil)

// FrameTicker produces frame callbacks from a background goroutine.
// Each frame is handed to the dispatch function so that drivers are only ever
// touched from one thread; the ticker goroutine itself never calls onFrame directly
// unless dispatch does so.
type FrameTicker struct {
	logger   *slog.Logger
	interval time.Duration
	dispatch DispatchFunc
	onFrame  func()

	mu      sync.Mutex
	stop    chan struct{}
	wg      sync.WaitGroup
	running bool
}

// NewFrameTicker creates a stopped ticker.
// A nil dispatch calls onFrame on the ticker goroutine.
func NewFrameTicker(logger *slog.Logger, interval time.Duration, dispatch DispatchFunc, onFrame func()) *FrameTicker {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &FrameTicker{
		logger:   logger,
		interval: interval,
		dispatch: dispatch,
		onFrame:  onFrame,
	}
}

// Start begins producing frames. If already running, this is a no-op.
func (t *FrameTicker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return
	}
	t.running = true
	t.stop = make(chan struct{})
	t.wg.Add(1)

	go t.loop(t.stop)

	t.logger.Debug("frame ticker started", slog.Duration("interval", t.interval))
}

func (t *FrameTicker) loop(stop <-chan struct{}) {
	defer t.wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.dispatch(t.onFrame)
		}
	}
}

// Stop halts the ticker and waits for its goroutine to exit.
// Stop must not be called from inside a synchronous dispatch of onFrame.
func (t *FrameTicker) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	close(t.stop)
	t.mu.Unlock()

	t.wg.Wait()
	t.logger.Debug("frame ticker stopped")
}

// IsRunning reports whether the ticker is producing frames.
func (t *FrameTicker) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}
