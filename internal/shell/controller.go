// Package shell is the application shell controller: it owns the primary
// window, relays named messages between the host runtime and the window's
// content, and manages the global shortcuts.
//
// Every host callback and content message is funneled through one dispatch
// goroutine (Run). Handlers run to completion in arrival order, so the
// window reference needs no locking.
package shell

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/scribe-app/scribe-shell/internal/constants"
	"github.com/scribe-app/scribe-shell/internal/events"
	"github.com/scribe-app/scribe-shell/internal/logging"
)

// shortcutBinding ties an accelerator to the message its press delivers.
type shortcutBinding struct {
	accelerator string
	msg         Outbound
}

// defaultShortcuts is the fixed shortcut table.
var defaultShortcuts = []shortcutBinding{
	{constants.ShortcutNewFile, NewFile{}},
	{constants.ShortcutOpen, OpenFile{}},
	{constants.ShortcutClose, CloseFile{}},
}

// Options configures a Controller.
type Options struct {
	// LaunchArgs are delivered via openFiles after each initial content load.
	LaunchArgs []string

	// Bus receives an observation for every action. Optional.
	Bus *events.EventBus

	// Logger defaults to a no-op logger.
	Logger *logging.Logger
}

type envelope struct {
	ev   HostEvent
	msg  Inbound
	done chan struct{}
}

// Controller is the application shell controller.
type Controller struct {
	host      Host
	shortcuts Shortcuts
	bus       *events.EventBus
	log       *logging.Logger
	args      []string

	queue   chan envelope
	stopped chan struct{}
	running atomic.Bool

	// Loop-owned state. Only touched from Run's goroutine.
	window   Window
	loaded   bool
	pending  []OpenFiles // duplicate launches that arrived before load
	started  bool
	quitting bool
}

// New creates a controller. Nothing happens until Run is started and the
// host dispatches Ready.
func New(host Host, shortcuts Shortcuts, opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	args := make([]string, len(opts.LaunchArgs))
	copy(args, opts.LaunchArgs)

	return &Controller{
		host:      host,
		shortcuts: shortcuts,
		bus:       opts.Bus,
		log:       log,
		args:      args,
		queue:     make(chan envelope, constants.DispatchQueueSize),
		stopped:   make(chan struct{}),
	}
}

// Run processes events until ctx is cancelled. It may be called only once.
// Events still queued when Run returns are released unhandled.
func (c *Controller) Run(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer c.drain()

	for {
		select {
		case <-ctx.Done():
			return nil
		case env := <-c.queue:
			if env.ev != nil {
				c.handleEvent(env.ev)
			} else {
				c.handleMessage(env.msg)
			}
			close(env.done)
		}
	}
}

func (c *Controller) drain() {
	close(c.stopped)
	for {
		select {
		case env := <-c.queue:
			close(env.done)
		default:
			return
		}
	}
}

// Dispatch queues a host event. The returned channel closes once the event
// has been handled, or once the loop has stopped.
func (c *Controller) Dispatch(ev HostEvent) <-chan struct{} {
	return c.enqueue(envelope{ev: ev, done: make(chan struct{})})
}

// Receive queues a content message. The returned channel closes once the
// message has been handled, or once the loop has stopped.
func (c *Controller) Receive(msg Inbound) <-chan struct{} {
	return c.enqueue(envelope{msg: msg, done: make(chan struct{})})
}

func (c *Controller) enqueue(env envelope) <-chan struct{} {
	select {
	case <-c.stopped:
		close(env.done)
		return env.done
	default:
	}
	select {
	case c.queue <- env:
	case <-c.stopped:
		close(env.done)
	}
	return env.done
}

func (c *Controller) handleEvent(ev HostEvent) {
	switch e := ev.(type) {
	case Ready:
		c.onReady()
	case DidFinishLoad:
		c.onDidFinishLoad(e.WindowID)
	case WindowMaximized:
		if c.isCurrent(e.WindowID) {
			c.send(Maximized{})
		}
	case WindowUnmaximized:
		if c.isCurrent(e.WindowID) {
			c.send(Unmaximized{})
		}
	case WindowClosed:
		c.onWindowClosed(e.WindowID)
	case AllWindowsClosed:
		c.onAllWindowsClosed()
	case Activate:
		c.onActivate()
	case SecondInstance:
		c.onSecondInstance(e)
	case WillQuit:
		c.onWillQuit()
	case shortcutPressed:
		c.onShortcut(e)
	default:
		c.log.Warn().Str("event", fmt.Sprintf("%T", ev)).Msg("Ignoring unknown host event")
	}
}

func (c *Controller) handleMessage(msg Inbound) {
	windowID := ""
	if c.window != nil {
		windowID = c.window.ID()
	}
	c.bus.Publish(events.NewMessageEvent(events.EventMessageReceived, windowID, msg.Name(), nil))

	switch m := msg.(type) {
	case Minimize:
		if w := c.requireWindow(msg); w != nil {
			w.Minimise()
			c.publishWindow(events.EventWindowMinimized, w)
		}
	case ToggleMaximize:
		if w := c.requireWindow(msg); w != nil {
			if w.IsMaximised() {
				w.Unmaximise()
				c.publishWindow(events.EventWindowUnmaximized, w)
			} else {
				w.Maximise()
				c.publishWindow(events.EventWindowMaximized, w)
			}
		}
	case Quit:
		c.quit("close message")
	case Show:
		c.log.Debug().Msg("show message accepted; nothing to do")
	case ShowMessageBox:
		c.bus.Publish(events.NewAppEvent(events.EventDialogRequested, m.Options.Title))
		c.host.ShowMessageBox(m.Options)
	default:
		c.log.Warn().Str("message", msg.Name()).Msg("Ignoring unknown content message")
	}
}

func (c *Controller) onReady() {
	if c.started {
		c.log.Debug().Msg("Duplicate ready event ignored")
		return
	}
	c.started = true

	c.createWindow()
	c.registerShortcuts()
}

func (c *Controller) createWindow() {
	w, err := c.host.CreateWindow(DefaultWindowOptions())
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to create primary window")
		c.bus.Publish(events.NewErrorEvent("create window", err))
		return
	}
	c.window = w
	c.loaded = false
	c.pending = nil
	c.publishWindow(events.EventWindowCreated, w)
	c.log.Info().Str("window", w.ID()).Msg("Primary window created")
}

func (c *Controller) registerShortcuts() {
	for _, b := range defaultShortcuts {
		err := c.shortcuts.Register(b.accelerator, func() {
			c.Dispatch(shortcutPressed{accelerator: b.accelerator, msg: b.msg})
		})
		if err != nil {
			c.log.Error().Err(err).Str("accelerator", b.accelerator).Msg("Failed to register shortcut")
			c.bus.Publish(events.NewErrorEvent("register shortcut "+b.accelerator, err))
			continue
		}
		c.bus.Publish(events.NewShortcutEvent(events.EventShortcutRegistered, b.accelerator))
	}
}

func (c *Controller) onDidFinishLoad(windowID string) {
	if !c.isCurrent(windowID) {
		return
	}
	w := c.window
	c.loaded = true
	c.publishWindow(events.EventLoadFinished, w)
	w.Show()
	c.publishWindow(events.EventWindowShown, w)
	c.send(OpenFiles{Args: c.args})

	pending := c.pending
	c.pending = nil
	for _, msg := range pending {
		c.send(msg)
	}
}

func (c *Controller) onWindowClosed(windowID string) {
	if !c.isCurrent(windowID) {
		return
	}
	c.publishWindow(events.EventWindowReleased, c.window)
	c.log.Debug().Str("window", c.window.ID()).Msg("Primary window released")
	c.window = nil
	c.loaded = false
	c.pending = nil
}

func (c *Controller) onAllWindowsClosed() {
	if c.host.Platform() == "darwin" {
		c.log.Debug().Msg("All windows closed; staying alive for activation")
		return
	}
	c.quit("all windows closed")
}

func (c *Controller) onActivate() {
	// Before Ready the pending ready handler creates the window.
	if !c.started || c.window != nil || c.quitting {
		return
	}
	c.createWindow()
}

func (c *Controller) onSecondInstance(e SecondInstance) {
	c.log.Info().Strs("args", e.Args).Str("cwd", e.WorkingDir).Msg("Second instance launch refused")
	w := c.window
	if w == nil {
		return
	}
	if !c.loaded {
		// The window is still hidden and the content cannot receive yet.
		c.pending = append(c.pending, OpenFiles{Args: e.Args})
		c.log.Debug().Int("pending", len(c.pending)).Msg("Content not loaded; holding duplicate launch args")
		return
	}
	if w.IsMinimised() {
		w.Restore()
		c.publishWindow(events.EventWindowRestored, w)
	}
	w.Focus()
	c.publishWindow(events.EventWindowFocused, w)
	c.send(OpenFiles{Args: e.Args})
}

func (c *Controller) onWillQuit() {
	c.quitting = true
	c.shortcuts.UnregisterAll()
	c.bus.Publish(events.NewShortcutEvent(events.EventShortcutsUnregistered, ""))
}

func (c *Controller) onShortcut(e shortcutPressed) {
	if c.quitting {
		return
	}
	c.bus.Publish(events.NewShortcutEvent(events.EventShortcutFired, e.accelerator))
	c.send(e.msg)
}

func (c *Controller) quit(reason string) {
	c.log.Info().Str("reason", reason).Msg("Quitting")
	c.bus.Publish(events.NewAppEvent(events.EventQuitRequested, reason))
	c.host.Quit()
}

// send delivers msg to the current window's content, or drops it when there
// is no window.
func (c *Controller) send(msg Outbound) {
	if c.window == nil {
		c.log.Debug().Str("message", msg.Name()).Msg("No window; message dropped")
		c.bus.Publish(events.NewMessageEvent(events.EventMessageDropped, "", msg.Name(), msg.Payload()))
		return
	}
	c.window.Send(msg)
	c.bus.Publish(events.NewMessageEvent(events.EventMessageSent, c.window.ID(), msg.Name(), msg.Payload()))
}

func (c *Controller) requireWindow(msg Inbound) Window {
	if c.window == nil {
		c.log.Debug().Str("message", msg.Name()).Msg("No window; message ignored")
	}
	return c.window
}

// isCurrent reports whether windowID names the live window. "" means current.
func (c *Controller) isCurrent(windowID string) bool {
	if c.window == nil {
		return false
	}
	return windowID == "" || windowID == c.window.ID()
}

func (c *Controller) publishWindow(t events.EventType, w Window) {
	c.bus.Publish(events.NewWindowEvent(t, w.ID()))
}
