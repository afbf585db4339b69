// Package wailsapp hosts the shell controller on Wails v2: it owns the native
// window, translates Wails lifecycle callbacks into shell host events and binds
// the content's message channel.
package wailsapp

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"

	"github.com/scribe-app/scribe-shell/internal/config"
	"github.com/scribe-app/scribe-shell/internal/constants"
	"github.com/scribe-app/scribe-shell/internal/events"
	"github.com/scribe-app/scribe-shell/internal/logging"
	"github.com/scribe-app/scribe-shell/internal/shell"
	"github.com/scribe-app/scribe-shell/internal/shortcut"
	"github.com/scribe-app/scribe-shell/internal/version"
)

// Assets holds the embedded frontend files, passed in from main package.
var Assets embed.FS

// assetRoot is the directory inside Assets that holds the content.
const assetRoot = "frontend/dist"

var (
	// wailsLogger is the package-level logger for the host
	wailsLogger *logging.Logger
)

// dispatcher is the part of the controller the lifecycle hooks feed.
type dispatcher interface {
	Dispatch(ev shell.HostEvent) <-chan struct{}
}

// App wires the Wails lifecycle to the shell controller.
type App struct {
	ctx        context.Context
	host       *wailsHost
	controller dispatcher
	cfg        config.Config

	trace *traceForwarder

	watchCancel context.CancelFunc
	watchDone   chan struct{}
}

func newApp(host *wailsHost, controller dispatcher, cfg config.Config) *App {
	return &App{host: host, controller: controller, cfg: cfg}
}

// startup is called when the app starts. The context is saved so the host
// can call the Wails runtime.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.host.bind(ctx)

	if a.trace != nil {
		if err := a.trace.Start(); err != nil {
			wailsLogger.Error().Err(err).Msg("Failed to start trace forwarder")
		}
	}

	watchCtx, cancel := context.WithCancel(ctx)
	a.watchCancel = cancel
	a.watchDone = make(chan struct{})
	watcher := &maximizeWatcher{
		interval: a.cfg.WatchInterval,
		sample:   hostSampler(a.host),
		dispatch: func(ev shell.HostEvent) { a.controller.Dispatch(ev) },
	}
	go func() {
		defer close(a.watchDone)
		watcher.Run(watchCtx)
	}()

	a.controller.Dispatch(shell.Ready{})
	wailsLogger.Info().Msg("Wails application started")
}

// domReady fires after every content load, including reloads for a new
// window generation.
func (a *App) domReady(ctx context.Context) {
	wailsLogger.Debug().Msg("Frontend DOM ready")
	a.controller.Dispatch(shell.DidFinishLoad{WindowID: a.host.currentID()})
}

// beforeClose is called when the window close is requested. Return true to
// prevent closing. Outside of a quit the native window is kept and hidden;
// the controller decides whether the application goes with it.
func (a *App) beforeClose(ctx context.Context) bool {
	if a.host.isQuitting() {
		return false
	}
	id := a.host.currentID()
	a.host.currentRuntime().Hide()
	a.controller.Dispatch(shell.WindowClosed{WindowID: id})
	a.controller.Dispatch(shell.AllWindowsClosed{})
	return true
}

// shutdown is called at application termination.
func (a *App) shutdown(ctx context.Context) {
	wailsLogger.Info().Msg("Wails application shutting down")

	if a.watchCancel != nil {
		a.watchCancel()
		<-a.watchDone
	}

	select {
	case <-a.controller.Dispatch(shell.WillQuit{}):
	case <-time.After(constants.ShutdownDrainTimeout):
		wailsLogger.Warn().Dur("timeout", constants.ShutdownDrainTimeout).Msg("Controller did not acknowledge shutdown")
	}

	if a.trace != nil {
		a.trace.Stop()
	}
}

// secondInstance runs in the primary process when a duplicate launch was
// refused by the instance lock. The relaunch also counts as an activation.
func (a *App) secondInstance(data options.SecondInstanceData) {
	a.controller.Dispatch(shell.SecondInstance{Args: data.Args, WorkingDir: data.WorkingDirectory})
	a.controller.Dispatch(shell.Activate{})
}

// Run launches the shell. args are forwarded verbatim to the content.
func Run(args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.FileLogging {
		if err := logging.InitFileLogger(cfg.LogDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
		}
		defer logging.CloseFileLogger()
	}
	wailsLogger = logging.NewLogger("wails", nil)
	logging.ConfigureLevel(cfg.Debug)
	if cfg.Debug {
		wailsLogger.Info().Msg("Debug logging enabled")
	}

	if runtime.GOOS == "linux" {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return ErrNoDisplay
		}
	}

	assets, err := fs.Sub(Assets, assetRoot)
	if err != nil {
		return fmt.Errorf("failed to open embedded assets: %w", err)
	}

	bus := events.NewEventBus(constants.EventBusDefaultBuffer)
	defer bus.Close()

	host := newWailsHost(wailsLogger.Child("host"))
	shortcuts := shortcut.NewRegistry(wailsLogger.Child("shortcut"))
	controller := shell.New(host, shortcuts, shell.Options{
		LaunchArgs: args,
		Bus:        bus,
		Logger:     wailsLogger.Child("shell"),
	})

	loopCtx, stopLoop := context.WithCancel(context.Background())
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		if err := controller.Run(loopCtx); err != nil {
			wailsLogger.Error().Err(err).Msg("Controller loop failed")
		}
	}()
	defer func() {
		stopLoop()
		<-loopDone
	}()

	app := newApp(host, controller, cfg)
	app.trace = newTraceForwarder(bus, wailsLogger.Child("trace"))
	bridge := newBridge(controller, wailsLogger.Child("bridge"))

	var menuBar *menu.Menu
	if runtime.GOOS == "darwin" {
		menuBar = appMenu(func() { controller.Receive(shell.Quit{}) })
	}

	win := shell.DefaultWindowOptions()
	err = wails.Run(&options.App{
		Title:       constants.AppName,
		Width:       win.MinWidth,
		Height:      win.MinHeight,
		MinWidth:    win.MinWidth,
		MinHeight:   win.MinHeight,
		Frameless:   win.Frameless,
		StartHidden: win.Hidden,
		Menu:        menuBar,
		AssetServer: &assetserver.Options{
			Assets:     assets,
			Middleware: windowMiddleware(win),
		},
		OnStartup:     app.startup,
		OnDomReady:    app.domReady,
		OnBeforeClose: app.beforeClose,
		OnShutdown:    app.shutdown,
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId:               cfg.AppID,
			OnSecondInstanceLaunch: app.secondInstance,
		},
		Bind: []interface{}{
			bridge,
		},
		Mac: &mac.Options{
			TitleBar: mac.TitleBarHiddenInset(),
			About: &mac.AboutInfo{
				Title:   constants.AppName,
				Message: fmt.Sprintf("Version %s", version.Version),
			},
		},
		Windows: &windows.Options{
			DisableFramelessWindowDecorations: false,
			WebviewBrowserPath:                getWebView2BrowserPath(),
		},
		Linux: &linux.Options{
			ProgramName: constants.AppName,
		},
	})

	if err != nil {
		return fmt.Errorf("wails application error: %w", err)
	}

	return nil
}

// getWebView2BrowserPath returns the path to a bundled WebView2 Fixed Version
// Runtime next to the executable, or "" to use the system-installed one.
func getWebView2BrowserPath() string {
	if runtime.GOOS != "windows" {
		return ""
	}

	exePath, err := os.Executable()
	if err != nil {
		return ""
	}

	webview2Dir := filepath.Join(filepath.Dir(exePath), "webview2")
	if info, err := os.Stat(webview2Dir); err == nil && info.IsDir() {
		if _, err := os.Stat(filepath.Join(webview2Dir, "msedgewebview2.exe")); err == nil {
			return webview2Dir
		}
	}

	return ""
}
