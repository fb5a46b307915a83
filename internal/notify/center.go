// Package notify holds the per-session ephemeral notification queue.
// Entries self-expire: each one owns a cancellable removal timer, so an
// early dismiss and the scheduled expiry never race into a double
// removal.
package notify

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	Success Type = "success"
	Error   Type = "error"
	Warning Type = "warning"
	Info    Type = "info"
)

// DefaultDuration applies when a notification is pushed without one.
const DefaultDuration = 5 * time.Second

type Notification struct {
	ID       string        `json:"id"`
	Type     Type          `json:"type"`
	Title    string        `json:"title"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"-"`
	Action   *Action       `json:"action,omitempty"`
	Created  time.Time     `json:"created"`
}

// MarshalJSON emits duration in milliseconds, the unit the storefront
// expects, instead of Go's nanosecond encoding.
func (n Notification) MarshalJSON() ([]byte, error) {
	type plain Notification
	return json.Marshal(struct {
		plain
		DurationMS int64 `json:"duration"`
	}{plain(n), n.Duration.Milliseconds()})
}

// Action is an optional follow-up the client may render, e.g. a "view
// cart" link on an added-to-cart toast.
type Action struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type entry struct {
	notification Notification
	timer        *time.Timer
}

// Center is one session's notification queue. Insertion order is
// preserved for listing.
type Center struct {
	mu      sync.Mutex
	entries map[string]*entry
	order   []string
}

func NewCenter() *Center {
	return &Center{entries: make(map[string]*entry)}
}

// Push appends a notification and schedules its removal after its
// duration. A zero duration gets DefaultDuration. Returns the assigned
// id.
func (c *Center) Push(n Notification) string {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Duration <= 0 {
		n.Duration = DefaultDuration
	}
	n.Created = time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	id := n.ID
	c.entries[id] = &entry{
		notification: n,
		timer:        time.AfterFunc(n.Duration, func() { c.Dismiss(id) }),
	}
	c.order = append(c.order, id)
	return id
}

// Dismiss removes a notification. Removing an id that is already gone
// is a no-op.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[id]
	if !ok {
		return
	}
	e.timer.Stop()
	delete(c.entries, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// ClearAll empties the queue unconditionally, cancelling every pending
// expiry. Used to suppress a just-shown toast when the user immediately
// acts on it.
func (c *Center) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		e.timer.Stop()
	}
	c.entries = make(map[string]*entry)
	c.order = nil
}

// List returns the live notifications in insertion order.
func (c *Center) List() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, 0, len(c.order))
	for _, id := range c.order {
		if e, ok := c.entries[id]; ok {
			out = append(out, e.notification)
		}
	}
	return out
}

// ShowSuccess, ShowError and friends mirror the helpers the storefront
// UI dispatches.

func (c *Center) ShowSuccess(title, message string, action *Action) string {
	return c.Push(Notification{Type: Success, Title: title, Message: message, Action: action})
}

func (c *Center) ShowError(title, message string) string {
	return c.Push(Notification{Type: Error, Title: title, Message: message})
}

func (c *Center) ShowWarning(title, message string) string {
	return c.Push(Notification{Type: Warning, Title: title, Message: message})
}

func (c *Center) ShowInfo(title, message string) string {
	return c.Push(Notification{Type: Info, Title: title, Message: message})
}
