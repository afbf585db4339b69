package shortcut

import (
	"fmt"
	"sort"
	"sync"

	"golang.design/x/hotkey"

	"github.com/scribe-app/scribe-shell/internal/logging"
)

// binding is the slice of *hotkey.Hotkey the registry drives.
type binding interface {
	Register() error
	Unregister() error
	Keydown() <-chan hotkey.Event
	Keyup() <-chan hotkey.Event
}

// Binder creates an unregistered binding for a parsed accelerator.
type Binder func(mods []hotkey.Modifier, key hotkey.Key) binding

func hotkeyBinder(mods []hotkey.Modifier, key hotkey.Key) binding {
	return hotkey.New(mods, key)
}

type entry struct {
	accel Accelerator
	b     binding
	stop  chan struct{}
}

// Registry owns the process's global shortcut registrations.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	bind    Binder
	entries map[string]*entry
	log     *logging.Logger
}

// NewRegistry creates a registry backed by OS-level hotkeys.
func NewRegistry(log *logging.Logger) *Registry {
	return newRegistry(hotkeyBinder, log)
}

func newRegistry(bind Binder, log *logging.Logger) *Registry {
	if log == nil {
		log = logging.Nop()
	}
	return &Registry{
		bind:    bind,
		entries: make(map[string]*entry),
		log:     log,
	}
}

// Register binds accel and calls fn on every key press until UnregisterAll.
// fn runs on a listener goroutine; callers that need ordering should hand
// the press off to their own loop.
func (r *Registry) Register(accel string, fn func()) error {
	a, err := Parse(accel)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[a.Canonical]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, a.Canonical)
	}

	b := r.bind(a.Mods, a.Key)
	if err := b.Register(); err != nil {
		return fmt.Errorf("register %s: %w", a.Canonical, err)
	}

	e := &entry{accel: a, b: b, stop: make(chan struct{})}
	r.entries[a.Canonical] = e
	go listen(e, fn)

	r.log.Debug().Str("accelerator", a.Canonical).Msg("Shortcut registered")
	return nil
}

func listen(e *entry, fn func()) {
	keydown := e.b.Keydown()
	// Releases are unused but the hotkey package buffers them without limit.
	keyup := e.b.Keyup()
	for {
		select {
		case <-e.stop:
			return
		case _, ok := <-keyup:
			if !ok {
				keyup = nil
			}
		case _, ok := <-keydown:
			if !ok {
				return
			}
			// Both channels may be ready at once; stop wins.
			select {
			case <-e.stop:
				return
			default:
			}
			fn()
		}
	}
}

// UnregisterAll stops every listener and releases every hotkey. It is safe
// to call any number of times, including when nothing is registered.
func (r *Registry) UnregisterAll() {
	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[string]*entry)
	r.mu.Unlock()

	for name, e := range entries {
		close(e.stop)
		if err := e.b.Unregister(); err != nil {
			r.log.Warn().Err(err).Str("accelerator", name).Msg("Failed to unregister shortcut")
		}
	}
	if len(entries) > 0 {
		r.log.Debug().Int("count", len(entries)).Msg("Shortcuts unregistered")
	}
}

// Registered returns the canonical accelerators currently bound, sorted.
func (r *Registry) Registered() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
