package constants

import (
	"time"
)

// Application identity
const (
	// AppName is shown in logs and used for per-user directories.
	AppName = "Scribe"

	// DefaultAppID is the single-instance lock identifier.
	// Overridable via the app_id config key for side-by-side dev builds.
	DefaultAppID = "com.scribe.shell"

	// EnvPrefix prefixes every environment override (SCRIBE_DEBUG, SCRIBE_APP_ID, ...).
	EnvPrefix = "SCRIBE"
)

// Primary window parameters. Fixed at build time, not configurable.
const (
	// WindowMinWidth - minimum window width in pixels
	WindowMinWidth = 600

	// WindowMinHeight - minimum window height in pixels
	WindowMinHeight = 600

	// WindowFrameless - no native title bar; the content draws its own chrome
	WindowFrameless = true

	// WindowStartHidden - the window stays hidden until the content reports load
	WindowStartHidden = true

	// WindowFontFamily - default font family for the content
	WindowFontFamily = "serif"

	// WindowSource - content entry page, relative to the embedded asset root
	WindowSource = "main.html"
)

// Controller -> content message names
const (
	MsgOpenFiles = "openFiles"
	MsgMax       = "max"
	MsgUnmax     = "unmax"
	MsgNewFile   = "newFile"
	MsgOpen      = "open"
	MsgClose     = "close"
)

// Content -> controller message names
const (
	InMin            = "min"
	InMax            = "max"
	InClose          = "close"
	InShow           = "show"
	InShowMessageBox = "showMessageBox"
)

// Global shortcut accelerators. Three bindings; there is no fourth.
const (
	ShortcutNewFile = "ctrl+n"
	ShortcutOpen    = "ctrl+o"
	ShortcutClose   = "ctrl+w"
)

// Event loop
const (
	// DispatchQueueSize - buffered capacity of the controller's event queue
	DispatchQueueSize = 64

	// ShutdownDrainTimeout - how long OnShutdown waits for the will-quit handler
	ShutdownDrainTimeout = 2 * time.Second

	// DefaultWatchInterval - maximize-state poll interval (250ms)
	// Wails v2 has no native maximize event, so the host polls.
	DefaultWatchInterval = 250 * time.Millisecond
)

// Event System
const (
	// EventBusDefaultBuffer - default buffer size for event channels
	EventBusDefaultBuffer = 256

	// EventBusMaxBuffer - maximum buffer size for trace subscribers
	EventBusMaxBuffer = 4096
)

// Log file rotation
const (
	LogFileName       = "scribe.log"
	LogFileMaxSizeMB  = 10
	LogFileMaxBackups = 5
	LogFileMaxAgeDays = 30
)
