package shell

// HostEvent is a lifecycle notification from the host runtime.
type HostEvent interface {
	hostEvent()
}

// Ready fires once the host can create windows.
type Ready struct{}

// DidFinishLoad fires when the window's content has finished its initial load.
// An empty WindowID means the current window.
type DidFinishLoad struct {
	WindowID string
}

// WindowMaximized fires when the window becomes maximized by any means.
type WindowMaximized struct {
	WindowID string
}

// WindowUnmaximized fires when the window leaves the maximized state.
type WindowUnmaximized struct {
	WindowID string
}

// WindowClosed fires after the primary window has closed.
type WindowClosed struct {
	WindowID string
}

// AllWindowsClosed fires after the last window has closed.
type AllWindowsClosed struct{}

// Activate fires when the user re-activates the application (dock click,
// relaunch).
type Activate struct{}

// SecondInstance fires in the primary process when a duplicate launch was
// refused. Args are the duplicate's launch arguments, verbatim.
type SecondInstance struct {
	Args       []string
	WorkingDir string
}

// WillQuit fires once shutdown has started.
type WillQuit struct{}

// shortcutPressed is posted by shortcut listeners so presses are handled on
// the loop like every other event.
type shortcutPressed struct {
	accelerator string
	msg         Outbound
}

func (Ready) hostEvent()             {}
func (DidFinishLoad) hostEvent()     {}
func (WindowMaximized) hostEvent()   {}
func (WindowUnmaximized) hostEvent() {}
func (WindowClosed) hostEvent()      {}
func (AllWindowsClosed) hostEvent()  {}
func (Activate) hostEvent()          {}
func (SecondInstance) hostEvent()    {}
func (WillQuit) hostEvent()          {}
func (shortcutPressed) hostEvent()   {}
