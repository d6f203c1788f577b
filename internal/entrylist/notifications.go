package entrylist

import (
	"time"

	"github.com/google/uuid"
)

// Level is the severity of a notification.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notification is a transient, dismissible message for the user.
type Notification struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// maxNotifications bounds the queue; the oldest are dropped first.
const maxNotifications = 10

type notifications struct {
	items []Notification
	now   func() time.Time
}

func (n *notifications) push(level Level, title, message string) Notification {
	item := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Title:     title,
		Message:   message,
		CreatedAt: n.now(),
	}
	n.items = append(n.items, item)
	if len(n.items) > maxNotifications {
		n.items = n.items[len(n.items)-maxNotifications:]
	}
	return item
}

func (n *notifications) dismiss(id string) bool {
	for i, item := range n.items {
		if item.ID == id {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return true
		}
	}
	return false
}

func (n *notifications) list() []Notification {
	out := make([]Notification, len(n.items))
	copy(out, n.items)
	return out
}
