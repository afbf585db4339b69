// Package dialog decodes message-box options sent by the window content.
//
// The content sends a plain options object (type, title, message, detail,
// buttons, defaultId, cancelId). Options normalizes that into what a
// native message dialog needs.
package dialog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// ErrInvalidOptions is returned when the payload is not an options object.
var ErrInvalidOptions = errors.New("message box options must be an object")

// Kind is the normalized dialog type.
type Kind string

const (
	KindInfo     Kind = "info"
	KindWarning  Kind = "warning"
	KindError    Kind = "error"
	KindQuestion Kind = "question"
)

// Options is a decoded showMessageBox request. Index fields are pointers so
// "absent" and "0" stay distinguishable.
type Options struct {
	Type      string   `mapstructure:"type"`
	Title     string   `mapstructure:"title"`
	Message   string   `mapstructure:"message"`
	Detail    string   `mapstructure:"detail"`
	Buttons   []string `mapstructure:"buttons"`
	DefaultID *int     `mapstructure:"defaultId"`
	CancelID  *int     `mapstructure:"cancelId"`
}

// Decode turns a content payload into Options. JSON numbers arrive as
// float64, so decoding is weakly typed. Unknown keys are ignored.
func Decode(payload interface{}) (Options, error) {
	var opts Options
	if payload == nil {
		return opts, nil
	}
	if _, ok := payload.(map[string]interface{}); !ok {
		return opts, fmt.Errorf("%w: got %T", ErrInvalidOptions, payload)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &opts,
	})
	if err != nil {
		return opts, fmt.Errorf("message box decoder: %w", err)
	}
	if err := dec.Decode(payload); err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return opts, nil
}

// Kind maps the type string onto a native dialog kind.
// "none", "" and anything unrecognized become info.
func (o Options) Kind() Kind {
	switch strings.ToLower(strings.TrimSpace(o.Type)) {
	case "warning":
		return KindWarning
	case "error":
		return KindError
	case "question":
		return KindQuestion
	default:
		return KindInfo
	}
}

// Text joins message and detail with a blank line.
func (o Options) Text() string {
	switch {
	case o.Detail == "":
		return o.Message
	case o.Message == "":
		return o.Detail
	default:
		return o.Message + "\n\n" + o.Detail
	}
}

// DefaultButton returns the label at defaultId, or "" when unset or out of range.
func (o Options) DefaultButton() string {
	return o.button(o.DefaultID)
}

// CancelButton returns the label at cancelId, or "" when unset or out of range.
func (o Options) CancelButton() string {
	return o.button(o.CancelID)
}

func (o Options) button(idx *int) string {
	if idx == nil || *idx < 0 || *idx >= len(o.Buttons) {
		return ""
	}
	return o.Buttons[*idx]
}
