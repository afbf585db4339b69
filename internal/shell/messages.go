package shell

import (
	"fmt"

	"github.com/scribe-app/scribe-shell/internal/constants"
	"github.com/scribe-app/scribe-shell/internal/dialog"
)

// Outbound is a controller -> content message.
type Outbound interface {
	// Name is the wire name the content listens on.
	Name() string
	// Payload is the argument list delivered with the message.
	Payload() []interface{}
	outbound()
}

// OpenFiles asks the content to open the given launch arguments.
type OpenFiles struct {
	Args []string
}

// Maximized tells the content the window is now maximized.
type Maximized struct{}

// Unmaximized tells the content the window is back to its restored size.
type Unmaximized struct{}

// NewFile asks the content to start an empty document.
type NewFile struct{}

// OpenFile asks the content to prompt for a file.
type OpenFile struct{}

// CloseFile asks the content to close the active document.
type CloseFile struct{}

func (OpenFiles) Name() string   { return constants.MsgOpenFiles }
func (Maximized) Name() string   { return constants.MsgMax }
func (Unmaximized) Name() string { return constants.MsgUnmax }
func (NewFile) Name() string     { return constants.MsgNewFile }
func (OpenFile) Name() string    { return constants.MsgOpen }
func (CloseFile) Name() string   { return constants.MsgClose }

// Payload carries the argument list as a single element, the way the content
// receives it: one ordered array of strings.
func (m OpenFiles) Payload() []interface{} {
	args := make([]string, len(m.Args))
	copy(args, m.Args)
	return []interface{}{args}
}

func (Maximized) Payload() []interface{}   { return nil }
func (Unmaximized) Payload() []interface{} { return nil }
func (NewFile) Payload() []interface{}     { return nil }
func (OpenFile) Payload() []interface{}    { return nil }
func (CloseFile) Payload() []interface{}   { return nil }

func (OpenFiles) outbound()   {}
func (Maximized) outbound()   {}
func (Unmaximized) outbound() {}
func (NewFile) outbound()     {}
func (OpenFile) outbound()    {}
func (CloseFile) outbound()   {}

// Inbound is a content -> controller message.
type Inbound interface {
	Name() string
	inbound()
}

// Minimize minimizes the primary window.
type Minimize struct{}

// ToggleMaximize flips the primary window between maximized and restored.
type ToggleMaximize struct{}

// Quit terminates the application, not just the window.
type Quit struct{}

// Show is reserved. It is accepted and has no effect.
type Show struct{}

// ShowMessageBox opens a native modal dialog. There is no reply.
type ShowMessageBox struct {
	Options dialog.Options
}

func (Minimize) Name() string       { return constants.InMin }
func (ToggleMaximize) Name() string { return constants.InMax }
func (Quit) Name() string           { return constants.InClose }
func (Show) Name() string           { return constants.InShow }
func (ShowMessageBox) Name() string { return constants.InShowMessageBox }

func (Minimize) inbound()       {}
func (ToggleMaximize) inbound() {}
func (Quit) inbound()           {}
func (Show) inbound()           {}
func (ShowMessageBox) inbound() {}

// ParseInbound maps a wire name and its arguments onto an Inbound variant.
// Messages without a payload ignore any extra arguments.
func ParseInbound(name string, payload []interface{}) (Inbound, error) {
	switch name {
	case constants.InMin:
		return Minimize{}, nil
	case constants.InMax:
		return ToggleMaximize{}, nil
	case constants.InClose:
		return Quit{}, nil
	case constants.InShow:
		return Show{}, nil
	case constants.InShowMessageBox:
		var raw interface{}
		if len(payload) > 0 {
			raw = payload[0]
		}
		opts, err := dialog.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, name, err)
		}
		return ShowMessageBox{Options: opts}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, name)
	}
}
