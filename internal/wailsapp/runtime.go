package wailsapp

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// windowRuntime is the slice of the Wails runtime the host drives. Tests swap
// it for a recorder.
type windowRuntime interface {
	Show()
	Hide()
	Minimise()
	Unminimise()
	Maximise()
	Unmaximise()
	IsMinimised() bool
	IsMaximised() bool
	SetAlwaysOnTop(onTop bool)
	Reload()
	Emit(name string, data ...interface{})
	MessageDialog(opts runtime.MessageDialogOptions) (string, error)
	Quit()
}

// wailsRuntime forwards to the Wails runtime package using the startup context.
type wailsRuntime struct {
	ctx context.Context
}

func (r wailsRuntime) Show()             { runtime.WindowShow(r.ctx) }
func (r wailsRuntime) Hide()             { runtime.WindowHide(r.ctx) }
func (r wailsRuntime) Minimise()         { runtime.WindowMinimise(r.ctx) }
func (r wailsRuntime) Unminimise()       { runtime.WindowUnminimise(r.ctx) }
func (r wailsRuntime) Maximise()         { runtime.WindowMaximise(r.ctx) }
func (r wailsRuntime) Unmaximise()       { runtime.WindowUnmaximise(r.ctx) }
func (r wailsRuntime) IsMinimised() bool { return runtime.WindowIsMinimised(r.ctx) }
func (r wailsRuntime) IsMaximised() bool { return runtime.WindowIsMaximised(r.ctx) }
func (r wailsRuntime) Reload()           { runtime.WindowReloadApp(r.ctx) }
func (r wailsRuntime) Quit()             { runtime.Quit(r.ctx) }

func (r wailsRuntime) SetAlwaysOnTop(onTop bool) {
	runtime.WindowSetAlwaysOnTop(r.ctx, onTop)
}

func (r wailsRuntime) Emit(name string, data ...interface{}) {
	runtime.EventsEmit(r.ctx, name, data...)
}

func (r wailsRuntime) MessageDialog(opts runtime.MessageDialogOptions) (string, error) {
	return runtime.MessageDialog(r.ctx, opts)
}
