package typewriter

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"k8s.io/utils/clock"
	testingclock "k8s.io/utils/clock/testing"
)

// stopCountingClock records how many of the tickers it hands out were stopped.
type stopCountingClock struct {
	*testingclock.FakeClock

	mu      sync.Mutex
	tickers int
	stopped int
}

type countedTicker struct {
	clock.Ticker
	c    *stopCountingClock
	once sync.Once
}

func (t *countedTicker) Stop() {
	t.Ticker.Stop()
	t.once.Do(func() {
		t.c.mu.Lock()
		t.c.stopped++
		t.c.mu.Unlock()
	})
}

func newStopCountingClock() *stopCountingClock {
	return &stopCountingClock{FakeClock: testingclock.NewFakeClock(time.Unix(0, 0))}
}

func (c *stopCountingClock) NewTicker(d time.Duration) clock.Ticker {
	c.mu.Lock()
	c.tickers++
	c.mu.Unlock()
	return &countedTicker{Ticker: c.FakeClock.NewTicker(d), c: c}
}

func (c *stopCountingClock) counts() (tickers, stopped int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tickers, c.stopped
}

func TestRevealIsMonotonicAndCompletes(t *testing.T) {
	src := "const x = 'héllo';"
	r := NewReveal(src)

	prev := r.Len()
	for r.Tick() {
		if r.Len() < prev {
			t.Fatalf("prefix shrank from %d to %d", prev, r.Len())
		}
		prev = r.Len()
		if got := r.Text(); got != string([]rune(src)[:r.Len()]) {
			t.Fatalf("expected prefix of source, got %q", got)
		}
	}

	if !r.Done() || r.Text() != src || r.Len() != r.Total() {
		t.Fatalf("expected full text after completion, got %q", r.Text())
	}

	for i := 0; i < 5; i++ {
		if r.Tick() {
			t.Fatalf("expected tick after completion to be inert")
		}
	}
	if r.Text() != src {
		t.Fatalf("text changed after completion")
	}
}

func TestRevealComplete(t *testing.T) {
	r := NewReveal("abc")
	r.Complete()
	if r.Text() != "abc" || !r.Done() {
		t.Fatalf("expected complete reveal, got %q", r.Text())
	}
}

func TestCursorBlinks(t *testing.T) {
	c := NewCursor()
	if !c.Visible {
		t.Fatalf("expected cursor visible at start")
	}
	if c.Blink() || !c.Blink() {
		t.Fatalf("expected cursor to alternate")
	}
}

type runner struct {
	clock  *stopCountingClock
	events chan Event
	errc   chan error
	cancel context.CancelFunc
}

func startRun(t *testing.T, cfg Config, source string) *runner {
	t.Helper()
	fc := newStopCountingClock()
	ctx, cancel := context.WithCancel(context.Background())
	r := &runner{
		clock:  fc,
		events: make(chan Event, 1024),
		errc:   make(chan error, 1),
		cancel: cancel,
	}
	go func() {
		r.errc <- Run(ctx, fc, cfg, source, func(e Event) error {
			r.events <- e
			return nil
		})
	}()

	first := r.next(t)
	if first.Kind != EventCursor || !first.Cursor {
		t.Fatalf("expected initial visible cursor event, got %+v", first)
	}
	return r
}

func (r *runner) next(t *testing.T) Event {
	t.Helper()
	select {
	case e := <-r.events:
		return e
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for event")
		return Event{}
	}
}

func (r *runner) stop(t *testing.T) error {
	t.Helper()
	r.cancel()
	select {
	case err := <-r.errc:
		if tickers, stopped := r.clock.counts(); tickers != 2 || stopped != 2 {
			t.Fatalf("expected both tickers stopped, got %d of %d", stopped, tickers)
		}
		return err
	case <-time.After(2 * time.Second):
		t.Fatalf("run did not stop after cancel")
		return nil
	}
}

func TestRunRevealsOneCharacterPerTick(t *testing.T) {
	cfg := Config{TypingInterval: 30 * time.Millisecond, CursorInterval: time.Hour}
	r := startRun(t, cfg, "let a")

	for want := 1; want <= 5; want++ {
		r.clock.Step(cfg.TypingInterval)
		e := r.next(t)
		if e.Kind != EventFrame {
			t.Fatalf("expected frame, got %+v", e)
		}
		if e.Length != want || e.Text != "let a"[:want] {
			t.Fatalf("expected %d characters, got %q", want, e.Text)
		}
	}

	done := r.next(t)
	if done.Kind != EventDone || done.Text != "let a" {
		t.Fatalf("expected done event with full text, got %+v", done)
	}

	for i := 0; i < 10; i++ {
		r.clock.Step(cfg.TypingInterval)
	}

	if err := r.stop(t); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(r.events) != 0 {
		t.Fatalf("expected no events after completion, got %+v", <-r.events)
	}
}

func TestRunBlinksCursor(t *testing.T) {
	cfg := Config{TypingInterval: time.Hour, CursorInterval: 500 * time.Millisecond}
	r := startRun(t, cfg, "abc")

	want := false
	for i := 0; i < 4; i++ {
		r.clock.Step(cfg.CursorInterval)
		e := r.next(t)
		if e.Kind != EventCursor || e.Cursor != want {
			t.Fatalf("blink %d: expected cursor %v, got %+v", i, want, e)
		}
		want = !want
	}

	if err := r.stop(t); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunEmptySourceIsDoneImmediately(t *testing.T) {
	r := startRun(t, Config{}, "")
	e := r.next(t)
	if e.Kind != EventDone || e.Length != 0 {
		t.Fatalf("expected immediate done, got %+v", e)
	}
	if err := r.stop(t); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunStopsOnEmitError(t *testing.T) {
	boom := errors.New("client gone")
	fc := newStopCountingClock()
	err := Run(context.Background(), fc, Config{}, "abc", func(Event) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected emit error, got %v", err)
	}
	if tickers, stopped := fc.counts(); tickers != 2 || stopped != 2 {
		t.Fatalf("expected both tickers stopped, got %d of %d", stopped, tickers)
	}
}
