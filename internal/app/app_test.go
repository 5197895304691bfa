package app

import (
	"io"
	"math/rand/v2"
	"runtime/debug"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejashwikalptaru/goindicators/internal/config"
	"github.com/tejashwikalptaru/goindicators/internal/domain"
	"github.com/tejashwikalptaru/goindicators/internal/testutil"
)

func testConfig(t *testing.T, indicators *config.Config) Config {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	cfg := DefaultConfig()
	cfg.Indicators = indicators
	cfg.TestFyneApp = a
	cfg.LogOutput = io.Discard
	cfg.Dispatch = func(func()) {} // frames are driven by hand
	cfg.Rand = rand.New(rand.NewPCG(1, 2))
	return cfg
}

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	app, err := NewApplication(testConfig(t, config.Default()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Shutdown() })
	return app
}

func TestNewApplication(t *testing.T) {
	app := newTestApplication(t)

	indicators := app.GetIndicators()
	require.Len(t, indicators, len(domain.Kinds()))
	for i, kind := range domain.Kinds() {
		assert.Equal(t, kind, indicators[i].Controller.Kind())
	}
	assert.Equal(t, "Circle", indicators[0].Name)

	assert.NotNil(t, app.GetEventBus())
	assert.NotNil(t, app.GetFyneApp())
}

func TestNewApplication_InvalidIndicator(t *testing.T) {
	cfg := config.Default()
	cfg.Indicators = append(cfg.Indicators, config.IndicatorConfig{Name: "bad", Shape: "hexagon"})

	_, err := NewApplication(testConfig(t, cfg))
	assert.ErrorIs(t, err, domain.ErrUnsupportedShape)
}

func TestApplication_DemoStepIndicatesInRange(t *testing.T) {
	app := newTestApplication(t)
	for _, w := range app.widgets {
		w.Resize(fyne.NewSize(120, 120))
	}

	app.demo.Step()

	for _, ind := range app.GetIndicators() {
		c := ind.Controller
		assert.True(t, c.IsAnimating(), ind.Name)
		assert.GreaterOrEqual(t, c.Target(), c.Min(), ind.Name)
		assert.LessOrEqual(t, c.Target(), c.Max(), ind.Name)
	}
}

func TestApplication_TickDrivesWidgets(t *testing.T) {
	app := newTestApplication(t)
	w := app.widgets[0]
	w.Resize(fyne.NewSize(120, 120))
	before, ok := w.Frame()
	require.True(t, ok)

	app.tick()

	after, ok := w.Frame()
	require.True(t, ok)
	assert.NotEqual(t, before.Foreground, after.Foreground, "the first frame moves towards the initial target")
}

func TestApplication_StartAndShutdown(t *testing.T) {
	app := newTestApplication(t)
	defer testutil.LeakCheck(t)()

	app.Start()
	assert.True(t, app.ticker.IsRunning())
	assert.True(t, app.demo.Running())

	require.NoError(t, app.Shutdown())
	assert.False(t, app.ticker.IsRunning())
	assert.False(t, app.demo.Running())

	// Shutdown again should not fail
	assert.NoError(t, app.Shutdown())
}

func TestApplication_DemoDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.App.DemoInterval = 0

	app, err := NewApplication(testConfig(t, cfg))
	require.NoError(t, err)
	defer app.Shutdown()

	app.Start()
	assert.False(t, app.demo.Running())
}

func TestDemo_PauseResume(t *testing.T) {
	app := newTestApplication(t)
	demo := NewDemo(app.logger, time.Hour, func(func()) {}, nil, nil)

	assert.False(t, demo.Running())
	demo.Resume()
	assert.True(t, demo.Running())
	demo.Pause()
	assert.False(t, demo.Running())
}

func TestVersionInfo_FullString(t *testing.T) {
	v := VersionInfo{Version: "dev", GitCommit: "abc123", BuildTime: "today"}
	assert.Equal(t, "goindicators dev (commit: abc123, built: today)", v.FullString())

	v.GitTag = "v1.2.0"
	assert.Equal(t, "goindicators v1.2.0 (commit: abc123, built: today)", v.FullString())
}

func TestVersionInfo_WithBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "deadbeef"},
			{Key: "vcs.time", Value: "2024-05-01T10:00:00Z"},
		},
	}

	v := VersionInfo{Version: "dev", GitCommit: "unknown", BuildTime: "unknown"}.withBuildInfo(info)
	assert.Equal(t, VersionInfo{Version: "v0.3.1", GitCommit: "deadbeef", BuildTime: "2024-05-01T10:00:00Z"}, v)

	injected := VersionInfo{Version: "1.0", GitCommit: "abc", BuildTime: "today"}
	assert.Equal(t, injected, injected.withBuildInfo(info), "ldflags win over build info")

	devel := &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}
	assert.Equal(t, "dev", VersionInfo{Version: "dev"}.withBuildInfo(devel).Version)
}
