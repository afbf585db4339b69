// Scribe - desktop shell for the Scribe editor.
//
// The process owns one frameless window, relays messages between the native
// host and the editor content, and forwards its launch arguments to the
// content verbatim. There are no flags: every argument belongs to the content.
//
// Build with: wails build
package main

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/scribe-app/scribe-shell/internal/wailsapp"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	// Wails uses its own webview input handling; ibus is unnecessary.
	if runtime.GOOS == "linux" && os.Getenv("GTK_IM_MODULE") == "" {
		os.Setenv("GTK_IM_MODULE", "none")
	}

	wailsapp.Assets = assets
	if err := wailsapp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, wailsapp.ErrNoDisplay) {
			fmt.Fprintln(os.Stderr, "Scribe needs a graphical session (X11 or Wayland).")
		}
		os.Exit(1)
	}
}
