package shell

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/scribe-app/scribe-shell/internal/dialog"
	"github.com/scribe-app/scribe-shell/internal/events"
)

// fakeHost records every call in order so tests can assert on the trace.
type fakeHost struct {
	mu        sync.Mutex
	platform  string
	createErr error
	windows   []*fakeWindow
	trace     []string
	quits     int
	dialogs   []dialog.Options
}

func (h *fakeHost) record(s string) {
	h.trace = append(h.trace, s)
}

func (h *fakeHost) CreateWindow(opts WindowOptions) (Window, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.createErr != nil {
		return nil, h.createErr
	}
	w := &fakeWindow{
		id:      fmt.Sprintf("w%d", len(h.windows)+1),
		host:    h,
		opts:    opts,
		visible: !opts.Hidden,
	}
	h.windows = append(h.windows, w)
	h.record("create " + w.id)
	return w, nil
}

func (h *fakeHost) ShowMessageBox(opts dialog.Options) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dialogs = append(h.dialogs, opts)
	h.record("dialog")
}

func (h *fakeHost) Quit() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.quits++
	h.record("quit")
}

func (h *fakeHost) Platform() string {
	if h.platform == "" {
		return "linux"
	}
	return h.platform
}

func (h *fakeHost) setCreateErr(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.createErr = err
}

func (h *fakeHost) windowCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.windows)
}

func (h *fakeHost) window(i int) *fakeWindow {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.windows[i]
}

func (h *fakeHost) quitCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.quits
}

func (h *fakeHost) traceCopy() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.trace))
	copy(out, h.trace)
	return out
}

type fakeWindow struct {
	id   string
	host *fakeHost
	opts WindowOptions

	visible   bool
	minimised bool
	maximised bool
	focused   int
	sent      []Outbound
}

func (w *fakeWindow) do(action string, fn func()) {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	fn()
	w.host.record(action + " " + w.id)
}

func (w *fakeWindow) ID() string { return w.id }
func (w *fakeWindow) Show()      { w.do("show", func() { w.visible = true }) }
func (w *fakeWindow) Focus()     { w.do("focus", func() { w.focused++ }) }
func (w *fakeWindow) Restore()   { w.do("restore", func() { w.minimised = false }) }
func (w *fakeWindow) Minimise()  { w.do("minimise", func() { w.minimised = true }) }
func (w *fakeWindow) Maximise() {
	w.do("maximise", func() { w.maximised, w.minimised = true, false })
}
func (w *fakeWindow) Unmaximise() { w.do("unmaximise", func() { w.maximised = false }) }

func (w *fakeWindow) IsMinimised() bool {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	return w.minimised
}

func (w *fakeWindow) IsMaximised() bool {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	return w.maximised
}

func (w *fakeWindow) Send(msg Outbound) {
	w.do("send:"+msg.Name(), func() { w.sent = append(w.sent, msg) })
}

func (w *fakeWindow) state() (visible, minimised, maximised bool) {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	return w.visible, w.minimised, w.maximised
}

func (w *fakeWindow) messages() []Outbound {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	out := make([]Outbound, len(w.sent))
	copy(out, w.sent)
	return out
}

// fakeShortcuts keeps handlers in memory; press simulates a key press.
type fakeShortcuts struct {
	mu          sync.Mutex
	handlers    map[string]func()
	order       []string
	failOn      map[string]error
	unregisters int
}

func newFakeShortcuts() *fakeShortcuts {
	return &fakeShortcuts{handlers: make(map[string]func()), failOn: make(map[string]error)}
}

func (s *fakeShortcuts) Register(accel string, fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failOn[accel]; err != nil {
		return err
	}
	s.handlers[accel] = fn
	s.order = append(s.order, accel)
	return nil
}

func (s *fakeShortcuts) UnregisterAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unregisters++
	s.handlers = make(map[string]func())
}

// press fires accel if it is still registered. It reports whether it fired.
func (s *fakeShortcuts) press(accel string) bool {
	s.mu.Lock()
	fn := s.handlers[accel]
	s.mu.Unlock()
	if fn == nil {
		return false
	}
	fn()
	return true
}

func (s *fakeShortcuts) handler(accel string) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handlers[accel]
}

func (s *fakeShortcuts) registered() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.handlers))
	for _, a := range s.order {
		if _, ok := s.handlers[a]; ok {
			out = append(out, a)
		}
	}
	return out
}

func (s *fakeShortcuts) unregisterCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unregisters
}

// harness runs a controller against the fakes.
type harness struct {
	t     *testing.T
	c     *Controller
	host  *fakeHost
	keys  *fakeShortcuts
	bus   *events.EventBus
	trace <-chan events.Event
}

func newHarness(t *testing.T, host *fakeHost, args ...string) *harness {
	t.Helper()
	if host == nil {
		host = &fakeHost{}
	}
	bus := events.NewEventBus(1024)
	h := &harness{
		t:     t,
		host:  host,
		keys:  newFakeShortcuts(),
		bus:   bus,
		trace: bus.SubscribeAll(),
	}
	h.c = New(host, h.keys, Options{LaunchArgs: args, Bus: bus})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.c.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		bus.Close()
	})
	return h
}

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Timeout waiting for controller")
	}
}

func (h *harness) event(ev HostEvent) {
	h.t.Helper()
	wait(h.t, h.c.Dispatch(ev))
}

func (h *harness) message(m Inbound) {
	h.t.Helper()
	wait(h.t, h.c.Receive(m))
}

// flush waits until everything queued so far has been handled. A maximize
// event for a window that never existed is a no-op.
func (h *harness) flush() {
	h.t.Helper()
	h.event(WindowMaximized{WindowID: "flush"})
}

// observed drains the event trace collected so far.
func (h *harness) observed() []events.Event {
	var out []events.Event
	for {
		select {
		case ev := <-h.trace:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func countType(evs []events.Event, t events.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type() == t {
			n++
		}
	}
	return n
}
