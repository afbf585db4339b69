package shell

import "errors"

var (
	// ErrUnknownMessage is returned for a content message name outside the contract.
	ErrUnknownMessage = errors.New("unknown message")

	// ErrInvalidPayload is returned when a known message carries a payload it cannot use.
	ErrInvalidPayload = errors.New("invalid message payload")

	// ErrAlreadyRunning is returned when Run is called a second time.
	ErrAlreadyRunning = errors.New("controller loop already running")
)
