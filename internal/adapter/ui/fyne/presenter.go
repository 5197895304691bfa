// Package fyne provides Fyne UI adapter implementations.
// This package hosts indicator controllers in a showcase window.
package fyne

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tejashwikalptaru/goindicators/internal/domain"
	"github.com/tejashwikalptaru/goindicators/internal/ports"
	"github.com/tejashwikalptaru/goindicators/internal/service"
)

// ShowcaseView defines the interface for UI updates.
// The actual UI implementation (MainWindow) must implement this interface.
type ShowcaseView interface {
	SetStatus(text string)
	SetDuration(d time.Duration)
	SetDemoRunning(running bool)
	ShowError(err error)
}

// DemoControl starts and stops the random value generator.
type DemoControl interface {
	Pause()
	Resume()
	Running() bool
}

// Indicator pairs a controller with its display name.
type Indicator struct {
	Name       string
	Controller *service.IndicatorController
}

// Presenter implements the Presenter pattern (MVP architecture).
// It maps indicator events to status text and routes user commands to the controllers.
//
// Event handlers run on the thread that publishes, which is the Fyne thread for
// controllers driven by the frame ticker.
type Presenter struct {
	// Dependencies
	logger *slog.Logger
	bus    ports.FilteringEventBus
	view   ShowcaseView
	demo   DemoControl

	indicators []Indicator
	names      map[string]string // controller id -> display name

	mu            sync.Mutex
	completed     int
	subscriptions []domain.SubscriptionID
	shutdownOnce  sync.Once
}

// NewPresenter creates a presenter and subscribes it to the events of indicators.
// demo may be nil.
func NewPresenter(
	logger *slog.Logger,
	bus ports.FilteringEventBus,
	view ShowcaseView,
	demo DemoControl,
	indicators []Indicator,
) *Presenter {
	p := &Presenter{
		logger:     logger,
		bus:        bus,
		view:       view,
		demo:       demo,
		indicators: indicators,
		names:      make(map[string]string, len(indicators)),
	}
	for _, ind := range indicators {
		p.names[ind.Controller.ID()] = ind.Name
	}

	p.subscribeToEvents()
	p.syncInitialState()

	return p
}

// subscribeToEvents subscribes to the events of the hosted indicators only.
func (p *Presenter) subscribeToEvents() {
	hosted := func(e domain.Event) bool {
		_, ok := p.names[indicatorID(e)]
		return ok
	}

	subscriptions := map[domain.EventType]domain.EventHandler{
		domain.EventAnimationCompleted: p.onCompleted,
		domain.EventAnimationCancelled: p.onCancelled,
		domain.EventValueOutOfRange:    p.onOutOfRange,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for eventType, handler := range subscriptions {
		p.subscriptions = append(p.subscriptions, p.bus.SubscribeFiltered(eventType, hosted, handler))
	}
}

func (p *Presenter) syncInitialState() {
	if len(p.indicators) > 0 {
		p.view.SetDuration(p.indicators[0].Controller.Duration())
	}
	p.view.SetDemoRunning(p.demo != nil && p.demo.Running())
	p.view.SetStatus(fmt.Sprintf("%d indicators ready", len(p.indicators)))
}

// Event handlers

func (p *Presenter) onCompleted(event domain.Event) {
	e, ok := event.(domain.AnimationCompletedEvent)
	if !ok {
		return
	}

	p.mu.Lock()
	p.completed++
	n := p.completed
	p.mu.Unlock()

	p.view.SetStatus(fmt.Sprintf("%s reached %s (%d runs)", p.names[e.IndicatorID], formatValue(e.Target), n))
}

func (p *Presenter) onCancelled(event domain.Event) {
	e, ok := event.(domain.AnimationCancelledEvent)
	if !ok {
		return
	}
	p.logger.Debug("run interrupted",
		slog.String("indicator", p.names[e.IndicatorID]),
		slog.Float64("target", e.Target),
		slog.Float64("current", e.Current))
}

func (p *Presenter) onOutOfRange(event domain.Event) {
	e, ok := event.(domain.ValueOutOfRangeEvent)
	if !ok {
		return
	}
	p.view.SetStatus(fmt.Sprintf("%s ignored %s, outside [%s, %s]",
		p.names[e.IndicatorID], formatValue(e.Value), formatValue(e.Range.Min), formatValue(e.Range.Max)))
}

// UI commands

// OnDurationChanged applies a new animation duration to every indicator.
func (p *Presenter) OnDurationChanged(d time.Duration) {
	for _, ind := range p.indicators {
		if err := ind.Controller.SetAnimationDuration(d); err != nil {
			p.logger.Warn("failed to set duration", slog.String("indicator", ind.Name), slog.Any("error", err))
			p.view.ShowError(err)
			return
		}
	}
	p.view.SetDuration(d)
}

// OnValueEntered parses text and sends it to the indicator at index.
func (p *Presenter) OnValueEntered(index int, text string) {
	if index < 0 || index >= len(p.indicators) {
		return
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		p.view.ShowError(fmt.Errorf("%q is not a number", text))
		return
	}
	if err := p.indicators[index].Controller.Indicate(v); err != nil {
		p.view.ShowError(err)
	}
}

// OnDemoToggled pauses or resumes the demo.
func (p *Presenter) OnDemoToggled() {
	if p.demo == nil {
		return
	}
	if p.demo.Running() {
		p.demo.Pause()
	} else {
		p.demo.Resume()
	}
	p.view.SetDemoRunning(p.demo.Running())
}

// OnStopAll cancels every running animation, leaving the indicators where they are.
func (p *Presenter) OnStopAll() {
	stopped := 0
	for _, ind := range p.indicators {
		if ind.Controller.CancelAnimation() {
			stopped++
		}
	}
	p.view.SetStatus(fmt.Sprintf("stopped %d animations", stopped))
}

// IndicatorNames returns the display names in grid order.
func (p *Presenter) IndicatorNames() []string {
	names := make([]string, len(p.indicators))
	for i, ind := range p.indicators {
		names[i] = ind.Name
	}
	return names
}

// Shutdown unsubscribes from the event bus. It is safe to call multiple times.
func (p *Presenter) Shutdown() {
	p.shutdownOnce.Do(func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for _, id := range p.subscriptions {
			p.bus.Unsubscribe(id)
		}
		p.subscriptions = nil
	})
}

// indicatorID extracts the publishing controller from an indicator event.
func indicatorID(e domain.Event) string {
	switch v := e.(type) {
	case domain.AnimationStartedEvent:
		return v.IndicatorID
	case domain.AnimationCompletedEvent:
		return v.IndicatorID
	case domain.AnimationCancelledEvent:
		return v.IndicatorID
	case domain.ValueOutOfRangeEvent:
		return v.IndicatorID
	case domain.IndicatorConfiguredEvent:
		return v.IndicatorID
	}
	return ""
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
