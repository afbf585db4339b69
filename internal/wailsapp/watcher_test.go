package wailsapp

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/scribe-app/scribe-shell/internal/shell"
)

// scriptedSampler replays a fixed sequence of sample results, then repeats the last.
type scriptedSampler struct {
	mu    sync.Mutex
	steps []sampleResult
	next  int
}

type sampleResult struct {
	id        string
	maximised bool
	ok        bool
}

func (p *scriptedSampler) sample() (string, bool, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	r := p.steps[p.next]
	if p.next < len(p.steps)-1 {
		p.next++
	}
	return r.id, r.maximised, r.ok
}

func (p *scriptedSampler) exhausted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.next == len(p.steps)-1
}

func runWatcher(t *testing.T, steps []sampleResult) []shell.HostEvent {
	t.Helper()
	p := &scriptedSampler{steps: steps}
	d := &recordingDispatcher{}
	w := &maximizeWatcher{
		interval: time.Millisecond,
		sample:   p.sample,
		dispatch: func(ev shell.HostEvent) { d.Dispatch(ev) },
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()

	deadline := time.After(time.Second)
	for !p.exhausted() {
		select {
		case <-deadline:
			t.Fatal("Timeout waiting for watcher")
		case <-time.After(time.Millisecond):
		}
	}
	// One more tick so the final step has been observed.
	time.Sleep(10 * time.Millisecond)
	cancel()
	<-done
	return d.snapshot()
}

func TestMaximizeWatcher(t *testing.T) {
	tests := []struct {
		name  string
		steps []sampleResult
		want  []shell.HostEvent
	}{
		{
			name:  "initial state is not reported",
			steps: []sampleResult{{"w1", true, true}, {"w1", true, true}},
			want:  nil,
		},
		{
			name: "maximize then restore",
			steps: []sampleResult{
				{"w1", false, true},
				{"w1", true, true},
				{"w1", true, true},
				{"w1", false, true},
			},
			want: []shell.HostEvent{
				shell.WindowMaximized{WindowID: "w1"},
				shell.WindowUnmaximized{WindowID: "w1"},
			},
		},
		{
			name: "unavailable runtime resets the baseline",
			steps: []sampleResult{
				{"w1", false, true},
				{"", false, false},
				{"w1", true, true},
			},
			want: nil,
		},
		{
			name: "new generation resets the baseline",
			steps: []sampleResult{
				{"w1", false, true},
				{"w2", true, true},
				{"w2", false, true},
			},
			want: []shell.HostEvent{shell.WindowUnmaximized{WindowID: "w2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runWatcher(t, tt.steps)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Event %d: expected %#v, got %#v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestHostSampler(t *testing.T) {
	h := newWailsHost(nopLogger())
	sample := hostSampler(h)

	if _, _, ok := sample(); ok {
		t.Error("Sampling must fail before startup")
	}

	rt := newFakeRuntime()
	h.setRuntime(rt)
	if _, _, ok := sample(); ok {
		t.Error("Sampling must fail before the first window")
	}

	w, _ := h.CreateWindow(shell.DefaultWindowOptions())
	rt.setMaximised(true)
	id, maximised, ok := sample()
	if !ok || id != w.ID() || !maximised {
		t.Errorf("Expected (%s, true, true), got (%s, %v, %v)", w.ID(), id, maximised, ok)
	}
}
