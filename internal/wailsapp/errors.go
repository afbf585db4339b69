package wailsapp

import "errors"

var (
	// ErrNoDisplay is returned on Linux when neither X11 nor Wayland is available.
	ErrNoDisplay = errors.New("no display detected: DISPLAY and WAYLAND_DISPLAY are not set")

	// ErrNotStarted is returned when a window is requested before the runtime is up.
	ErrNotStarted = errors.New("wails runtime not started")
)
