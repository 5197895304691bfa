// Package app provides application-level orchestration and dependency injection.
// This package wires together all components and manages the application lifecycle.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"sync"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/tejashwikalptaru/goindicators/internal/adapter/eventbus"
	"github.com/tejashwikalptaru/goindicators/internal/adapter/render/raster"
	fyneui "github.com/tejashwikalptaru/goindicators/internal/adapter/ui/fyne"
	"github.com/tejashwikalptaru/goindicators/internal/adapter/ui/fyne/widgets"
	"github.com/tejashwikalptaru/goindicators/internal/animation"
	"github.com/tejashwikalptaru/goindicators/internal/config"
	"github.com/tejashwikalptaru/goindicators/internal/domain"
	"github.com/tejashwikalptaru/goindicators/internal/geometry"
	"github.com/tejashwikalptaru/goindicators/internal/logger"
	"github.com/tejashwikalptaru/goindicators/internal/ports"
	"github.com/tejashwikalptaru/goindicators/internal/service"
)

// Application is the root application structure that holds all dependencies.
// It follows the Dependency Injection pattern with constructor-based injection.
//
// The Application struct is responsible for:
// - Creating and wiring all dependencies
// - Managing the application lifecycle (startup, shutdown)
// - Providing a clean entry point for main.go
type Application struct {
	// Core dependencies
	logger  *slog.Logger
	fyneApp fyne.App
	config  *config.Config

	// Infrastructure
	eventBus *eventbus.SyncEventBus
	ticker   ports.FrameSource
	demo     *Demo

	// Indicators, in grid order
	indicators []fyneui.Indicator
	widgets    []*widgets.Indicator

	// UI
	presenter  *fyneui.Presenter
	mainWindow *fyneui.MainWindow

	shutdownOnce sync.Once
}

// Config holds application configuration.
type Config struct {
	// AppID is the unique application identifier
	AppID string

	// Indicators is the loaded showcase configuration (nil loads from the environment)
	Indicators *config.Config

	// LogOutput receives log records (nil for stderr)
	LogOutput io.Writer

	// Dispatch marshals ticks onto the UI thread (nil for fyne.Do)
	Dispatch animation.DispatchFunc

	// Rand drives the demo values (nil for a random seed)
	Rand *rand.Rand

	// TestFyneApp allows injecting a test Fyne app for testing (nil for production)
	TestFyneApp fyne.App
}

// DefaultConfig returns the default application configuration.
func DefaultConfig() Config {
	return Config{
		AppID: "com.goindicators.showcase",
	}
}

// NewApplication creates a new application with all dependencies wired.
// This is the main dependency injection function.
func NewApplication(cfg Config) (*Application, error) {
	app := &Application{}

	// Step 1: Load configuration
	app.config = cfg.Indicators
	if app.config == nil {
		loaded, err := config.LoadFromEnv()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		app.config = loaded
	}

	// Step 2: Create logger
	out := cfg.LogOutput
	if out == nil {
		out = os.Stderr
	}
	app.logger = logger.NewLoggerTo(out, logger.Config{
		Level:  logger.ParseLevel(app.config.App.LogLevel, slog.LevelInfo),
		Format: app.config.App.LogFormat,
	})
	app.logger.Info("initializing application",
		slog.String("version", GetVersionInfo().FullString()),
		slog.String("config", app.config.Source),
		slog.Int("indicators", len(app.config.Indicators)))

	// Step 3: Create Fyne application
	if cfg.TestFyneApp != nil {
		app.fyneApp = cfg.TestFyneApp
	} else {
		app.fyneApp = fyneapp.NewWithID(cfg.AppID)
	}

	dispatch := cfg.Dispatch
	if dispatch == nil {
		dispatch = fyne.Do
	}

	// Step 4: Create an event bus
	app.eventBus = eventbus.NewSyncEventBus(app.logger)
	app.eventBus.SubscribeAll(app.logEvent)

	// Step 5: Create the main window
	app.mainWindow = fyneui.NewMainWindow(app.fyneApp, fyneui.WindowConfig{
		Title:   app.config.App.Title,
		Width:   app.config.App.WindowWidth,
		Height:  app.config.App.WindowHeight,
		Columns: app.config.App.Columns,
	})

	// Step 6: Create one controller and widget per indicator
	entries, err := app.config.Resolve()
	if err != nil {
		return nil, err
	}
	controllers := make([]*service.IndicatorController, 0, len(entries))
	for _, entry := range entries {
		ind, w, err := app.newIndicator(entry)
		if err != nil {
			return nil, fmt.Errorf("failed to create indicator %q: %w", entry.Name, err)
		}
		app.indicators = append(app.indicators, ind)
		app.widgets = append(app.widgets, w)
		app.mainWindow.AddIndicator(ind.Name, w)
		controllers = append(controllers, ind.Controller)
	}

	// Step 7: Create frame ticker and demo
	app.ticker = animation.NewFrameTicker(
		app.logger.With(slog.String("component", "frame_ticker")),
		app.config.App.FrameInterval,
		dispatch,
		app.tick,
	)
	app.demo = NewDemo(
		app.logger.With(slog.String("component", "demo")),
		app.config.App.DemoInterval,
		dispatch,
		controllers,
		cfg.Rand,
	)

	// Step 8: Create Presenter and wire with UI
	app.presenter = fyneui.NewPresenter(
		app.logger.With(slog.String("component", "presenter")),
		app.eventBus,
		app.mainWindow,
		app.demo,
		app.indicators,
	)
	app.mainWindow.SetPresenter(app.presenter)
	app.mainWindow.SetOnBeforeClose(app.stopBackground)

	return app, nil
}

// newIndicator builds the widget first so the controller can render into it.
func (a *Application) newIndicator(entry config.Indicator) (fyneui.Indicator, *widgets.Indicator, error) {
	shape, err := geometry.New(entry.Options.Kind)
	if err != nil {
		return fyneui.Indicator{}, nil, err
	}
	pref := shape.PreferredSize(entry.Options.Shape)

	w := widgets.NewIndicator(
		raster.NewRenderer(entry.Palette, entry.TextSize),
		fyne.NewSize(float32(pref.Width), float32(pref.Height)),
	)

	ctrl, err := service.NewIndicatorController(a.logger, a.eventBus, w, nil, entry.Options)
	if err != nil {
		return fyneui.Indicator{}, nil, err
	}

	w.SetOnResize(func(size fyne.Size) {
		if err := ctrl.SetBounds(float64(size.Width), float64(size.Height)); err != nil {
			a.logger.Warn("failed to lay out indicator",
				slog.String("indicator", entry.Name),
				slog.Any("error", err))
		}
	})

	return fyneui.Indicator{Name: entry.Name, Controller: ctrl}, w, nil
}

// tick advances every indicator by one frame. It runs on the UI thread.
func (a *Application) tick() {
	for _, ind := range a.indicators {
		if err := ind.Controller.Tick(); err != nil {
			a.logger.Error("frame failed",
				slog.String("indicator", ind.Name),
				slog.Any("error", err))
		}
	}
}

func (a *Application) logEvent(e domain.Event) {
	a.logger.Debug("event", slog.String("type", string(e.Type())))
}

// Start starts the frame ticker and, unless disabled, the demo.
func (a *Application) Start() {
	a.ticker.Start()
	if a.config.App.DemoInterval > 0 {
		a.demo.Resume()
		a.mainWindow.SetDemoRunning(true)
	} else {
		a.mainWindow.SetDemoRunning(false)
	}
}

// Run starts the application.
// This is called from main.go after the application is created and blocks until the window closes.
func (a *Application) Run() {
	a.logger.Info("indicator showcase started")
	a.Start()
	a.mainWindow.ShowAndRun()
}

// stopBackground stops every goroutine that dispatches onto the UI thread.
func (a *Application) stopBackground() {
	a.demo.Pause()
	a.ticker.Stop()
}

// Shutdown gracefully shuts down the application.
// This should be called via deferring in main.go. It is safe to call multiple times.
func (a *Application) Shutdown() error {
	var err error
	a.shutdownOnce.Do(func() {
		a.logger.Info("shutting down application")

		a.stopBackground()
		if a.presenter != nil {
			a.presenter.Shutdown()
		}
		if a.eventBus != nil {
			err = errors.Join(err, a.eventBus.Close())
		}

		a.logger.Info("application shutdown complete")
	})
	return err
}

// GetEventBus returns the event bus.
func (a *Application) GetEventBus() ports.FilteringEventBus {
	return a.eventBus
}

// GetFyneApp returns the Fyne application.
func (a *Application) GetFyneApp() fyne.App {
	return a.fyneApp
}

// GetIndicators returns the hosted indicators in grid order.
func (a *Application) GetIndicators() []fyneui.Indicator {
	return a.indicators
}
