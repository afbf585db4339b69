package wailsapp

import (
	"fmt"
	"net/http"

	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/scribe-app/scribe-shell/internal/shell"
)

// shellStylePath is served by the middleware rather than from the embedded
// assets, so the window font follows the window options.
const shellStylePath = "/shell.css"

// windowMiddleware serves the window's content document at "/" and the
// generated shell stylesheet. Everything else falls through to the assets.
func windowMiddleware(opts shell.WindowOptions) assetserver.Middleware {
	source := "/" + opts.Source
	style := []byte(fmt.Sprintf("html, body { font-family: %s; }\n", opts.FontFamily))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/", "":
				r.URL.Path = source
			case shellStylePath:
				w.Header().Set("Content-Type", "text/css; charset=utf-8")
				w.Write(style)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
