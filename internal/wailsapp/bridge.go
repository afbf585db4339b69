package wailsapp

import (
	"github.com/scribe-app/scribe-shell/internal/logging"
	"github.com/scribe-app/scribe-shell/internal/shell"
	"github.com/scribe-app/scribe-shell/internal/version"
)

// receiver is the part of the controller the bridge feeds.
type receiver interface {
	Receive(msg shell.Inbound) <-chan struct{}
}

// Bridge is bound to the frontend. Its exported methods are the only way the
// window content talks to Go.
type Bridge struct {
	controller receiver
	log        *logging.Logger
}

func newBridge(controller receiver, log *logging.Logger) *Bridge {
	return &Bridge{controller: controller, log: log}
}

// Send delivers a named message from the content. It returns once the message
// is queued; an unknown name or a malformed payload is reported back to the
// caller and nothing is queued.
func (b *Bridge) Send(name string, payload []interface{}) error {
	msg, err := shell.ParseInbound(name, payload)
	if err != nil {
		b.log.Warn().Err(err).Str("message", name).Msg("Rejected content message")
		return err
	}
	b.controller.Receive(msg)
	return nil
}

// AppInfoDTO describes the running build.
type AppInfoDTO struct {
	Version   string `json:"version"`
	BuildTime string `json:"buildTime"`
}

// AppInfo returns version information for an about box.
func (b *Bridge) AppInfo() AppInfoDTO {
	return AppInfoDTO{
		Version:   version.Version,
		BuildTime: version.BuildTime,
	}
}
