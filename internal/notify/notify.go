// Package notify delivers short user-facing messages ("toasts") raised by
// core operations. Delivery is best effort: failures are logged by the
// notifier and never reach the caller.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

type Notification struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Variant     Variant `json:"variant,omitempty"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Console prints notifications to a terminal.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Notify(_ context.Context, n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mark := "*"
	if n.Variant == VariantDestructive {
		mark = "!"
	}
	if n.Description == "" {
		fmt.Fprintf(c.w, "%s %s\n", mark, n.Title)
		return
	}
	fmt.Fprintf(c.w, "%s %s: %s\n", mark, n.Title, n.Description)
}

// Fanout forwards each notification to every notifier in order.
type Fanout []Notifier

func (f Fanout) Notify(ctx context.Context, n Notification) {
	for _, x := range f {
		if x != nil {
			x.Notify(ctx, n)
		}
	}
}

// Nop drops everything.
type Nop struct{}

func (Nop) Notify(context.Context, Notification) {}

// Recorder keeps notifications in memory.
type Recorder struct {
	mu   sync.Mutex
	sent []Notification
}

func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

// Notifications returns a copy of everything recorded so far.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.sent))
	copy(out, r.sent)
	return out
}

// Last returns the latest notification, or the zero value.
func (r *Recorder) Last() Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return Notification{}
	}
	return r.sent[len(r.sent)-1]
}
