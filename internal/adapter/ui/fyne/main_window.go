package fyne

import (
	"fmt"
	"sync"
	"time"

	fyneapp "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Duration slider bounds in milliseconds.
const (
	minDurationMillis  = 0
	maxDurationMillis  = 3000
	durationStepMillis = 100
)

// WindowConfig sizes and titles the showcase window.
type WindowConfig struct {
	Title   string
	Width   float32
	Height  float32
	Columns int
}

// MainWindow is the showcase window implementing the ShowcaseView interface.
//
// The MainWindow follows the MVP pattern:
// - It's a "dumb view" that just displays data
// - All commands are forwarded to the Presenter
type MainWindow struct {
	app    fyneapp.App
	window fyneapp.Window

	// UI components
	grid           *fyneapp.Container
	status         *widget.Label
	durationLabel  *widget.Label
	durationSlider *widget.Slider
	demoButton     *widget.Button
	stopButton     *widget.Button
	valueButton    *widget.Button

	// Lifecycle management
	closeOnce     sync.Once
	onBeforeClose func()

	// Presenter (set after construction)
	presenter *Presenter
}

// NewMainWindow creates a new showcase window.
func NewMainWindow(app fyneapp.App, cfg WindowConfig) *MainWindow {
	w := &MainWindow{app: app}

	w.window = app.NewWindow(cfg.Title)
	w.buildUI(max(cfg.Columns, 1))
	w.window.Resize(fyneapp.NewSize(cfg.Width, cfg.Height))

	w.window.SetCloseIntercept(func() {
		if w.onBeforeClose != nil {
			w.onBeforeClose()
		}
		w.window.Close()
	})

	return w
}

// buildUI constructs the UI components.
func (w *MainWindow) buildUI(columns int) {
	w.grid = container.NewGridWithColumns(columns)

	w.status = widget.NewLabel("")
	w.status.Truncation = fyneapp.TextTruncateEllipsis

	w.durationLabel = widget.NewLabel("")
	w.durationSlider = widget.NewSlider(minDurationMillis, maxDurationMillis)
	w.durationSlider.Step = durationStepMillis

	w.demoButton = widget.NewButtonWithIcon("", theme.MediaPauseIcon(), nil)
	w.stopButton = widget.NewButtonWithIcon("", theme.MediaStopIcon(), nil)
	w.valueButton = widget.NewButtonWithIcon("Set value", theme.DocumentCreateIcon(), nil)

	buttons := container.NewHBox(w.demoButton, w.stopButton, w.valueButton)
	slider := container.NewBorder(nil, nil, widget.NewLabel("Duration"), w.durationLabel, w.durationSlider)
	controls := container.NewVBox(container.NewBorder(nil, nil, buttons, nil, w.status), slider)

	w.window.SetContent(container.NewPadded(container.NewBorder(nil, controls, nil, nil, w.grid)))
	w.window.SetMainMenu(fyneapp.NewMainMenu(w.createMenu()...))
}

// AddIndicator places an indicator widget with a caption in the next grid cell.
func (w *MainWindow) AddIndicator(name string, obj fyneapp.CanvasObject) {
	caption := widget.NewLabelWithStyle(name, fyneapp.TextAlignCenter, fyneapp.TextStyle{Bold: true})
	w.grid.Add(container.NewBorder(caption, nil, nil, nil, obj))
}

// SetPresenter connects the presenter to this view.
// This must be called before showing the window.
func (w *MainWindow) SetPresenter(presenter *Presenter) {
	w.presenter = presenter
	w.wirePresenterHandlers()
	w.addShortcuts()
}

// SetOnBeforeClose registers a callback run before the window closes.
func (w *MainWindow) SetOnBeforeClose(fn func()) {
	w.onBeforeClose = fn
}

// wirePresenterHandlers connects UI events to presenter handlers.
func (w *MainWindow) wirePresenterHandlers() {
	if w.presenter == nil {
		return
	}

	w.demoButton.OnTapped = w.presenter.OnDemoToggled
	w.stopButton.OnTapped = w.presenter.OnStopAll
	w.valueButton.OnTapped = w.showValueDialog

	// OnChangeEnded so dragging doesn't restart every indicator on each step.
	w.durationSlider.OnChangeEnded = func(ms float64) {
		w.presenter.OnDurationChanged(time.Duration(ms) * time.Millisecond)
	}
}

// createMenu creates the application menu.
func (w *MainWindow) createMenu() []*fyneapp.Menu {
	toggleDemo := fyneapp.NewMenuItem("Pause / Resume Demo", func() {
		if w.presenter != nil {
			w.presenter.OnDemoToggled()
		}
	})
	setValue := fyneapp.NewMenuItem("Set Value...", w.showValueDialog)
	stopAll := fyneapp.NewMenuItem("Stop Animations", func() {
		if w.presenter != nil {
			w.presenter.OnStopAll()
		}
	})

	return []*fyneapp.Menu{
		fyneapp.NewMenu("Indicators", toggleDemo, setValue, stopAll),
	}
}

// showValueDialog asks for an indicator and a value.
func (w *MainWindow) showValueDialog() {
	if w.presenter == nil {
		return
	}
	NewValueDialog(w.window, w.presenter.IndicatorNames(), w.presenter.OnValueEntered).Show()
}

// addShortcuts adds keyboard shortcuts.
func (w *MainWindow) addShortcuts() {
	step := func(delta float64) func(fyneapp.Shortcut) {
		return func(fyneapp.Shortcut) {
			v := min(max(w.durationSlider.Value+delta, minDurationMillis), maxDurationMillis)
			w.durationSlider.SetValue(v)
			w.presenter.OnDurationChanged(time.Duration(v) * time.Millisecond)
		}
	}

	w.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyneapp.KeyUp,
		Modifier: fyneapp.KeyModifierAlt,
	}, step(durationStepMillis))

	w.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyneapp.KeyDown,
		Modifier: fyneapp.KeyModifierAlt,
	}, step(-durationStepMillis))
}

// ShowAndRun shows the window and runs the application.
func (w *MainWindow) ShowAndRun() {
	w.window.ShowAndRun()
}

// Close closes the window. It's safe to call multiple times (idempotent).
func (w *MainWindow) Close() {
	w.closeOnce.Do(func() {
		w.window.Close()
	})
}

// GetWindow returns the underlying Fyne window.
func (w *MainWindow) GetWindow() fyneapp.Window {
	return w.window
}

// ShowcaseView interface implementation

// SetStatus replaces the status line.
func (w *MainWindow) SetStatus(text string) {
	w.status.SetText(text)
}

// SetDuration moves the slider and its caption to d.
func (w *MainWindow) SetDuration(d time.Duration) {
	ms := float64(d.Milliseconds())
	w.durationSlider.Value = ms
	w.durationSlider.Refresh()
	w.durationLabel.SetText(fmt.Sprintf("%d ms", d.Milliseconds()))
}

// SetDemoRunning swaps the demo button icon.
func (w *MainWindow) SetDemoRunning(running bool) {
	if running {
		w.demoButton.SetIcon(theme.MediaPauseIcon())
	} else {
		w.demoButton.SetIcon(theme.MediaPlayIcon())
	}
}

// ShowError displays err in a dialog.
func (w *MainWindow) ShowError(err error) {
	dialog.ShowError(err, w.window)
}

// Verify ShowcaseView implementation
var _ ShowcaseView = (*MainWindow)(nil)
