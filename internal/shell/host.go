package shell

import (
	"github.com/scribe-app/scribe-shell/internal/constants"
	"github.com/scribe-app/scribe-shell/internal/dialog"
)

// WindowOptions are the creation parameters of the primary window.
type WindowOptions struct {
	MinWidth   int
	MinHeight  int
	Frameless  bool
	Hidden     bool
	FontFamily string
	Source     string
}

// DefaultWindowOptions returns the fixed primary-window parameters.
func DefaultWindowOptions() WindowOptions {
	return WindowOptions{
		MinWidth:   constants.WindowMinWidth,
		MinHeight:  constants.WindowMinHeight,
		Frameless:  constants.WindowFrameless,
		Hidden:     constants.WindowStartHidden,
		FontFamily: constants.WindowFontFamily,
		Source:     constants.WindowSource,
	}
}

// Host is the windowing runtime the controller drives.
type Host interface {
	// CreateWindow creates the primary window. It must stay hidden until Show.
	CreateWindow(opts WindowOptions) (Window, error)

	// ShowMessageBox displays a native modal dialog and returns immediately.
	ShowMessageBox(opts dialog.Options)

	// Quit starts application shutdown. The host later reports WillQuit.
	Quit()

	// Platform is the runtime.GOOS value the host runs on.
	Platform() string
}

// Window is a handle to the primary window.
type Window interface {
	// ID is unique per created window, so stale events can be told apart.
	ID() string

	Show()
	Focus()
	Restore()
	Minimise()
	Maximise()
	Unmaximise()
	IsMinimised() bool
	IsMaximised() bool

	// Send delivers a message to the window's content asynchronously.
	Send(msg Outbound)
}

// Shortcuts registers process-wide keyboard shortcuts.
type Shortcuts interface {
	Register(accelerator string, fn func()) error
	UnregisterAll()
}
