// Package events carries the shell controller's observations: every window
// action, message and shortcut change is published here in dispatch order.
package events

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/scribe-app/scribe-shell/internal/constants"
)

// EventType defines the types of events that can be emitted
type EventType string

const (
	// Window actions
	EventWindowCreated     EventType = "window_created"
	EventWindowShown       EventType = "window_shown"
	EventWindowFocused     EventType = "window_focused"
	EventWindowRestored    EventType = "window_restored"
	EventWindowMinimized   EventType = "window_minimized"
	EventWindowMaximized   EventType = "window_maximized"
	EventWindowUnmaximized EventType = "window_unmaximized"
	EventWindowReleased    EventType = "window_released" // reference cleared after close
	EventLoadFinished      EventType = "load_finished"

	// Messages
	EventMessageSent     EventType = "message_sent"     // controller -> content
	EventMessageReceived EventType = "message_received" // content -> controller
	EventMessageDropped  EventType = "message_dropped"  // no window to deliver to

	// Shortcuts
	EventShortcutRegistered    EventType = "shortcut_registered"
	EventShortcutFired         EventType = "shortcut_fired"
	EventShortcutsUnregistered EventType = "shortcuts_unregistered"

	// Application
	EventDialogRequested EventType = "dialog_requested"
	EventQuitRequested   EventType = "quit_requested"
	EventError           EventType = "error"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
	Timestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	EventType EventType
	Time      time.Time
}

func (e BaseEvent) Type() EventType      { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }

// WindowEvent records an action on the primary window.
type WindowEvent struct {
	BaseEvent
	WindowID string
}

// MessageEvent records a message crossing the controller/content boundary.
type MessageEvent struct {
	BaseEvent
	WindowID string
	Name     string
	Payload  []interface{}
}

// ShortcutEvent records a global shortcut change or press.
type ShortcutEvent struct {
	BaseEvent
	Accelerator string // empty for EventShortcutsUnregistered
}

// AppEvent records application-level requests (dialogs, quit).
type AppEvent struct {
	BaseEvent
	Detail string
}

// ErrorEvent records a host failure the controller absorbed.
type ErrorEvent struct {
	BaseEvent
	Stage string
	Error error
}

// NewWindowEvent builds a WindowEvent stamped with the current time.
func NewWindowEvent(t EventType, windowID string) *WindowEvent {
	return &WindowEvent{BaseEvent: BaseEvent{EventType: t, Time: time.Now()}, WindowID: windowID}
}

// NewMessageEvent builds a MessageEvent stamped with the current time.
func NewMessageEvent(t EventType, windowID, name string, payload []interface{}) *MessageEvent {
	return &MessageEvent{
		BaseEvent: BaseEvent{EventType: t, Time: time.Now()},
		WindowID:  windowID,
		Name:      name,
		Payload:   payload,
	}
}

// NewShortcutEvent builds a ShortcutEvent stamped with the current time.
func NewShortcutEvent(t EventType, accelerator string) *ShortcutEvent {
	return &ShortcutEvent{BaseEvent: BaseEvent{EventType: t, Time: time.Now()}, Accelerator: accelerator}
}

// NewAppEvent builds an AppEvent stamped with the current time.
func NewAppEvent(t EventType, detail string) *AppEvent {
	return &AppEvent{BaseEvent: BaseEvent{EventType: t, Time: time.Now()}, Detail: detail}
}

// NewErrorEvent builds an ErrorEvent stamped with the current time.
func NewErrorEvent(stage string, err error) *ErrorEvent {
	return &ErrorEvent{BaseEvent: BaseEvent{EventType: EventError, Time: time.Now()}, Stage: stage, Error: err}
}

// EventBus manages event subscriptions and publishing
type EventBus struct {
	subscribers   map[EventType][]chan Event
	all           []chan Event // Subscribers to all events
	mu            sync.RWMutex
	bufferSize    int
	closed        bool
	droppedEvents atomic.Int64 // Count of dropped events due to full buffers
}

// NewEventBus creates a new event bus with specified buffer size
func NewEventBus(bufferSize int) *EventBus {
	if bufferSize <= 0 {
		bufferSize = constants.EventBusDefaultBuffer
	}
	if bufferSize > constants.EventBusMaxBuffer {
		bufferSize = constants.EventBusMaxBuffer
	}
	return &EventBus{
		subscribers: make(map[EventType][]chan Event),
		all:         make([]chan Event, 0),
		bufferSize:  bufferSize,
	}
}

// Subscribe creates a subscription to a specific event type
func (eb *EventBus) Subscribe(eventType EventType) <-chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}

	ch := make(chan Event, eb.bufferSize)
	eb.subscribers[eventType] = append(eb.subscribers[eventType], ch)
	return ch
}

// SubscribeAll creates a subscription to all events
func (eb *EventBus) SubscribeAll() <-chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}

	ch := make(chan Event, eb.bufferSize)
	eb.all = append(eb.all, ch)
	return ch
}

// Publish sends an event to all subscribers without blocking. A full
// subscriber buffer drops the event and bumps the dropped counter.
func (eb *EventBus) Publish(event Event) {
	if eb == nil {
		return
	}
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return
	}

	for _, ch := range eb.subscribers[event.Type()] {
		select {
		case ch <- event:
		default:
			eb.droppedEvents.Add(1)
		}
	}

	for _, ch := range eb.all {
		select {
		case ch <- event:
		default:
			eb.droppedEvents.Add(1)
		}
	}
}

// Close shuts down the event bus and closes all channels
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return
	}

	eb.closed = true

	for _, channels := range eb.subscribers {
		for _, ch := range channels {
			close(ch)
		}
	}

	for _, ch := range eb.all {
		close(ch)
	}
}

// Unsubscribe removes a subscription channel from a specific event type
func (eb *EventBus) Unsubscribe(eventType EventType, ch <-chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return
	}

	subscribers := eb.subscribers[eventType]
	for i, subCh := range subscribers {
		if subCh == ch {
			subscribers[i] = subscribers[len(subscribers)-1]
			eb.subscribers[eventType] = subscribers[:len(subscribers)-1]
			break
		}
	}
}

// UnsubscribeAll removes a subscription channel from every event type and
// from the all-events list.
func (eb *EventBus) UnsubscribeAll(ch <-chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return
	}

	for eventType, subscribers := range eb.subscribers {
		for i, subCh := range subscribers {
			if subCh == ch {
				subscribers[i] = subscribers[len(subscribers)-1]
				eb.subscribers[eventType] = subscribers[:len(subscribers)-1]
				break
			}
		}
	}

	for i, subCh := range eb.all {
		if subCh == ch {
			eb.all[i] = eb.all[len(eb.all)-1]
			eb.all = eb.all[:len(eb.all)-1]
			break
		}
	}
}

// GetDroppedEventCount returns the total number of events dropped due to full buffers
func (eb *EventBus) GetDroppedEventCount() int64 {
	return eb.droppedEvents.Load()
}
