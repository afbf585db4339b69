package wailsapp

import (
	"context"
	goruntime "runtime"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/scribe-app/scribe-shell/internal/dialog"
	"github.com/scribe-app/scribe-shell/internal/logging"
	"github.com/scribe-app/scribe-shell/internal/shell"
)

// wailsHost adapts the single Wails window to shell.Host. Wails owns exactly
// one native window for the life of the process, so "creating" a window hands
// out a fresh generation ID and, after the first time, reloads the content.
type wailsHost struct {
	mu      sync.Mutex
	rt      windowRuntime
	current *wailsWindow
	created int

	quitting atomic.Bool
	log      *logging.Logger
}

func newWailsHost(log *logging.Logger) *wailsHost {
	return &wailsHost{log: log}
}

// bind attaches the runtime once Wails has started.
func (h *wailsHost) bind(ctx context.Context) {
	h.setRuntime(wailsRuntime{ctx: ctx})
}

func (h *wailsHost) setRuntime(rt windowRuntime) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rt = rt
}

func (h *wailsHost) currentRuntime() windowRuntime {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rt
}

// CreateWindow ignores opts: the window parameters were fixed when wails.Run
// built the native window from the same shell.DefaultWindowOptions.
func (h *wailsHost) CreateWindow(opts shell.WindowOptions) (shell.Window, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rt == nil {
		return nil, ErrNotStarted
	}

	w := &wailsWindow{id: uuid.NewString(), rt: h.rt}
	h.current = w
	h.created++
	if h.created > 1 {
		// The window was hidden on close. Reloading gives the content a fresh
		// initial load so DomReady fires again.
		h.rt.Reload()
	}
	h.log.Debug().Str("window", w.id).Int("generation", h.created).Msg("Window generation started")
	return w, nil
}

// currentID is the generation ID of the live window, or "" before the first.
func (h *wailsHost) currentID() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current == nil {
		return ""
	}
	return h.current.id
}

func (h *wailsHost) ShowMessageBox(opts dialog.Options) {
	rt := h.currentRuntime()
	if rt == nil {
		h.log.Warn().Msg("Message box requested before startup; ignored")
		return
	}
	go func() {
		if _, err := rt.MessageDialog(dialogOptions(opts)); err != nil {
			h.log.Error().Err(err).Str("title", opts.Title).Msg("Message box failed")
		}
	}()
}

func (h *wailsHost) Quit() {
	h.quitting.Store(true)
	if rt := h.currentRuntime(); rt != nil {
		rt.Quit()
	}
}

func (h *wailsHost) Platform() string {
	return goruntime.GOOS
}

// isQuitting reports whether Quit has been called.
func (h *wailsHost) isQuitting() bool {
	return h.quitting.Load()
}

// dialogOptions maps decoded content options onto a native dialog request.
func dialogOptions(opts dialog.Options) runtime.MessageDialogOptions {
	out := runtime.MessageDialogOptions{
		Title:         opts.Title,
		Message:       opts.Text(),
		Buttons:       opts.Buttons,
		DefaultButton: opts.DefaultButton(),
		CancelButton:  opts.CancelButton(),
	}
	switch opts.Kind() {
	case dialog.KindWarning:
		out.Type = runtime.WarningDialog
	case dialog.KindError:
		out.Type = runtime.ErrorDialog
	case dialog.KindQuestion:
		out.Type = runtime.QuestionDialog
	default:
		out.Type = runtime.InfoDialog
	}
	return out
}

// wailsWindow is one generation of the native window.
type wailsWindow struct {
	id string
	rt windowRuntime
}

func (w *wailsWindow) ID() string        { return w.id }
func (w *wailsWindow) Show()             { w.rt.Show() }
func (w *wailsWindow) Restore()          { w.rt.Unminimise() }
func (w *wailsWindow) Minimise()         { w.rt.Minimise() }
func (w *wailsWindow) Maximise()         { w.rt.Maximise() }
func (w *wailsWindow) Unmaximise()       { w.rt.Unmaximise() }
func (w *wailsWindow) IsMinimised() bool { return w.rt.IsMinimised() }
func (w *wailsWindow) IsMaximised() bool { return w.rt.IsMaximised() }

// Focus raises the window above others without pinning it there. It never
// shows a hidden window.
func (w *wailsWindow) Focus() {
	w.rt.SetAlwaysOnTop(true)
	w.rt.SetAlwaysOnTop(false)
}

// Send emits msg on the Wails event channel named after it.
func (w *wailsWindow) Send(msg shell.Outbound) {
	w.rt.Emit(msg.Name(), msg.Payload()...)
}
