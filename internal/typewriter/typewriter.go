// Package typewriter reveals a fixed text one character per tick while a
// second, independent ticker blinks a cursor.
package typewriter

import (
	"context"
	"time"

	"k8s.io/utils/clock"
)

const (
	DefaultTypingInterval = 30 * time.Millisecond
	DefaultCursorInterval = 500 * time.Millisecond
)

// Reveal is the progress of the typewriter over its source text.
type Reveal struct {
	src []rune
	n   int
}

func NewReveal(source string) *Reveal {
	return &Reveal{src: []rune(source)}
}

// Tick shows one more character. It reports false once everything is shown,
// and the shown prefix no longer changes from then on.
func (r *Reveal) Tick() bool {
	if r.n >= len(r.src) {
		return false
	}
	r.n++
	return true
}

// Complete shows the whole source at once.
func (r *Reveal) Complete() { r.n = len(r.src) }

func (r *Reveal) Text() string { return string(r.src[:r.n]) }
func (r *Reveal) Len() int     { return r.n }
func (r *Reveal) Total() int   { return len(r.src) }
func (r *Reveal) Done() bool   { return r.n >= len(r.src) }

// Cursor is the blinking caret, visible at start.
type Cursor struct {
	Visible bool
}

func NewCursor() *Cursor { return &Cursor{Visible: true} }

func (c *Cursor) Blink() bool {
	c.Visible = !c.Visible
	return c.Visible
}

type EventKind string

const (
	EventFrame  EventKind = "frame"
	EventCursor EventKind = "cursor"
	EventDone   EventKind = "done"
)

// Event is one observable change of the typewriter.
type Event struct {
	Kind   EventKind
	Text   string
	Length int
	Cursor bool
}

type Config struct {
	TypingInterval time.Duration
	CursorInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.TypingInterval <= 0 {
		c.TypingInterval = DefaultTypingInterval
	}
	if c.CursorInterval <= 0 {
		c.CursorInterval = DefaultCursorInterval
	}
	return c
}

// Run drives the reveal and the cursor from two tickers on clk and reports every
// change to emit. The reveal ticker stops once the text is complete; the cursor
// keeps blinking until ctx is cancelled, at which point both tickers are stopped
// and ctx.Err() is returned. An emit error ends the run.
func Run(ctx context.Context, clk clock.WithTicker, cfg Config, source string, emit func(Event) error) error {
	cfg = cfg.withDefaults()
	reveal := NewReveal(source)
	cursor := NewCursor()

	typing := clk.NewTicker(cfg.TypingInterval)
	defer typing.Stop()
	blink := clk.NewTicker(cfg.CursorInterval)
	defer blink.Stop()

	if err := emit(Event{Kind: EventCursor, Cursor: cursor.Visible}); err != nil {
		return err
	}

	typingC := typing.C()
	if reveal.Done() {
		typing.Stop()
		typingC = nil
		if err := emit(Event{Kind: EventDone, Text: reveal.Text(), Length: reveal.Len()}); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-typingC:
			if !reveal.Tick() {
				continue
			}
			if err := emit(Event{Kind: EventFrame, Text: reveal.Text(), Length: reveal.Len()}); err != nil {
				return err
			}
			if reveal.Done() {
				typing.Stop()
				typingC = nil
				if err := emit(Event{Kind: EventDone, Text: reveal.Text(), Length: reveal.Len()}); err != nil {
					return err
				}
			}

		case <-blink.C():
			if err := emit(Event{Kind: EventCursor, Cursor: cursor.Blink()}); err != nil {
				return err
			}
		}
	}
}
