package wailsapp

import (
	"context"
	"time"

	"github.com/scribe-app/scribe-shell/internal/shell"
)

// maximizeWatcher turns the window's maximized state into host events. Wails
// v2 reports no maximize/unmaximize callbacks, so the state is polled.
type maximizeWatcher struct {
	interval time.Duration
	sample   func() (windowID string, maximised, ok bool)
	dispatch func(shell.HostEvent)
}

// Run polls until ctx is cancelled. The first successful sample only records
// the state; later changes are dispatched. A failed sample (no runtime yet)
// forgets the last state.
func (w *maximizeWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	known := false
	last := false
	lastID := ""
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			id, maximised, ok := w.sample()
			if !ok {
				known = false
				continue
			}
			if known && id == lastID && maximised != last {
				if maximised {
					w.dispatch(shell.WindowMaximized{WindowID: id})
				} else {
					w.dispatch(shell.WindowUnmaximized{WindowID: id})
				}
			}
			known, last, lastID = true, maximised, id
		}
	}
}

// hostSampler reads the maximized state of the host's current window.
func hostSampler(h *wailsHost) func() (string, bool, bool) {
	return func() (string, bool, bool) {
		id := h.currentID()
		rt := h.currentRuntime()
		if id == "" || rt == nil {
			return "", false, false
		}
		return id, rt.IsMaximised(), true
	}
}
