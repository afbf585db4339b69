package wailsapp

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/scribe-app/scribe-shell/internal/events"
	"github.com/scribe-app/scribe-shell/internal/logging"
)

// traceForwarder writes every controller observation on the event bus to the
// log at debug level.
type traceForwarder struct {
	eventBus     *events.EventBus
	subscription <-chan events.Event
	log          *logging.Logger

	stopC   chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
}

func newTraceForwarder(eventBus *events.EventBus, log *logging.Logger) *traceForwarder {
	return &traceForwarder{
		eventBus: eventBus,
		log:      log,
		stopC:    make(chan struct{}),
	}
}

// Start begins forwarding. A second Start is ignored.
func (tf *traceForwarder) Start() error {
	tf.mu.Lock()
	defer tf.mu.Unlock()

	if tf.started {
		tf.log.Warn().Msg("Trace forwarder already started, ignoring duplicate Start()")
		return nil
	}

	tf.subscription = tf.eventBus.SubscribeAll()
	if tf.subscription == nil {
		return fmt.Errorf("trace forwarder: failed to subscribe to event bus")
	}

	tf.started = true
	tf.wg.Add(1)
	go tf.forwardLoop()
	return nil
}

// Stop stops forwarding and waits for the loop to exit.
func (tf *traceForwarder) Stop() {
	tf.mu.Lock()
	if !tf.started {
		tf.mu.Unlock()
		return
	}
	tf.started = false
	sub := tf.subscription
	tf.mu.Unlock()

	close(tf.stopC)
	tf.wg.Wait()
	tf.eventBus.UnsubscribeAll(sub)

	if dropped := tf.eventBus.GetDroppedEventCount(); dropped > 0 {
		tf.log.Warn().Int64("dropped", dropped).Msg("Observations dropped on a full subscriber buffer")
	}
}

func (tf *traceForwarder) forwardLoop() {
	defer tf.wg.Done()

	for {
		select {
		case event, ok := <-tf.subscription:
			if !ok {
				return
			}
			tf.forwardEvent(event)

		case <-tf.stopC:
			return
		}
	}
}

func (tf *traceForwarder) forwardEvent(event events.Event) {
	var entry *zerolog.Event
	if e, ok := event.(*events.ErrorEvent); ok {
		entry = tf.log.Warn().Str("stage", e.Stage).Err(e.Error)
	} else {
		entry = tf.log.Debug()
	}
	entry = entry.Str("event", string(event.Type())).Time("at", event.Timestamp())

	switch e := event.(type) {
	case *events.WindowEvent:
		entry = entry.Str("window", e.WindowID)
	case *events.MessageEvent:
		entry = entry.Str("window", e.WindowID).Str("message", e.Name).Int("args", len(e.Payload))
	case *events.ShortcutEvent:
		if e.Accelerator != "" {
			entry = entry.Str("accelerator", e.Accelerator)
		}
	case *events.AppEvent:
		entry = entry.Str("detail", e.Detail)
	}
	entry.Msg("shell")
}
