// Package domain defines events for the event-driven architecture.
// Events let hosts observe indicator animations without registering listeners on each controller.
package domain

import (
	"time"
)

// Event is the base interface for all events in the system.
// All events must implement this interface to be published via the event bus.
type Event interface {
	// Type returns the event type identifier
	Type() EventType

	// Timestamp returns when the event occurred
	Timestamp() time.Time
}

// EventType is a string identifier for different event types.
type EventType string

// Event type constants define all possible events in the system.
const (
	// Animation events
	EventAnimationStarted   EventType = "indicator.animation_started"
	EventAnimationCompleted EventType = "indicator.animation_completed"
	EventAnimationCancelled EventType = "indicator.animation_cancelled"

	// Value events
	EventValueOutOfRange EventType = "indicator.value_out_of_range"

	// Configuration events
	EventIndicatorConfigured EventType = "indicator.configured"
)

// EventHandler is a function that handles events.
type EventHandler func(event Event)

// SubscriptionID uniquely identifies an event subscription.
type SubscriptionID string

// baseEvent provides common event functionality.
// All concrete events should embed this struct.
type baseEvent struct {
	timestamp   time.Time
	IndicatorID string
}

// Timestamp returns when the event occurred.
func (e baseEvent) Timestamp() time.Time {
	return e.timestamp
}

// newBaseEvent creates a new base event with the current timestamp.
func newBaseEvent(indicatorID string) baseEvent {
	return baseEvent{timestamp: time.Now(), IndicatorID: indicatorID}
}

// AnimationStartedEvent is published when a run towards a new target begins.
type AnimationStartedEvent struct {
	baseEvent
	Kind     Kind
	From     float64 // value the run starts from
	Target   float64
	Duration time.Duration
}

// Type returns the event type.
func (e AnimationStartedEvent) Type() EventType {
	return EventAnimationStarted
}

// NewAnimationStartedEvent creates a new AnimationStartedEvent.
func NewAnimationStartedEvent(id string, kind Kind, from, target float64, duration time.Duration) AnimationStartedEvent {
	return AnimationStartedEvent{
		baseEvent: newBaseEvent(id),
		Kind:      kind,
		From:      from,
		Target:    target,
		Duration:  duration,
	}
}

// AnimationCompletedEvent is published when a run reaches its target.
type AnimationCompletedEvent struct {
	baseEvent
	Kind   Kind
	Target float64
}

// Type returns the event type.
func (e AnimationCompletedEvent) Type() EventType {
	return EventAnimationCompleted
}

// NewAnimationCompletedEvent creates a new AnimationCompletedEvent.
func NewAnimationCompletedEvent(id string, kind Kind, target float64) AnimationCompletedEvent {
	return AnimationCompletedEvent{
		baseEvent: newBaseEvent(id),
		Kind:      kind,
		Target:    target,
	}
}

// AnimationCancelledEvent is published when a run is cancelled or replaced.
type AnimationCancelledEvent struct {
	baseEvent
	Kind    Kind
	Target  float64
	Current float64 // native value left on screen
}

// Type returns the event type.
func (e AnimationCancelledEvent) Type() EventType {
	return EventAnimationCancelled
}

// NewAnimationCancelledEvent creates a new AnimationCancelledEvent.
func NewAnimationCancelledEvent(id string, kind Kind, target, current float64) AnimationCancelledEvent {
	return AnimationCancelledEvent{
		baseEvent: newBaseEvent(id),
		Kind:      kind,
		Target:    target,
		Current:   current,
	}
}

// ValueOutOfRangeEvent is published when indicate is called with a value outside the range.
type ValueOutOfRangeEvent struct {
	baseEvent
	Value float64
	Range Range
}

// Type returns the event type.
func (e ValueOutOfRangeEvent) Type() EventType {
	return EventValueOutOfRange
}

// NewValueOutOfRangeEvent creates a new ValueOutOfRangeEvent.
func NewValueOutOfRangeEvent(id string, value float64, r Range) ValueOutOfRangeEvent {
	return ValueOutOfRangeEvent{
		baseEvent: newBaseEvent(id),
		Value:     value,
		Range:     r,
	}
}

// IndicatorConfiguredEvent is published after range or shape configuration changes.
type IndicatorConfiguredEvent struct {
	baseEvent
	Kind  Kind
	Range Range
}

// Type returns the event type.
func (e IndicatorConfiguredEvent) Type() EventType {
	return EventIndicatorConfigured
}

// NewIndicatorConfiguredEvent creates a new IndicatorConfiguredEvent.
func NewIndicatorConfiguredEvent(id string, kind Kind, r Range) IndicatorConfiguredEvent {
	return IndicatorConfiguredEvent{
		baseEvent: newBaseEvent(id),
		Kind:      kind,
		Range:     r,
	}
}
